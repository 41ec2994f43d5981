package schedule

// Snapshot is the raw game-schedule document for one season, stored
// verbatim in the bronze layer. Each ingest replaces the whole payload;
// there is no history.
type Snapshot struct {
	SeasonUUID string
	RawJSON    string
}
