package teamdata

const (
	EntityTeamInfo   = "team_info"
	EntityTeamRoster = "team_roster"
)

// Snapshot is a raw team document (info or roster) from the upstream
// API, stored verbatim in the bronze layer keyed by team uuid and
// entity type.
type Snapshot struct {
	TeamUUID   string
	EntityType string
	RawJSON    string
}
