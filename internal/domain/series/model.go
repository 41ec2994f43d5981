package series

import "fmt"

// Series is a competition tier (SHL, HockeyAllsvenskan, ...) from the
// upstream filter catalog.
type Series struct {
	UUID string
	Code string
	Name string
}

func (s Series) Validate() error {
	if s.UUID == "" {
		return fmt.Errorf("series uuid is required")
	}
	if s.Code == "" {
		return fmt.Errorf("series code is required")
	}

	return nil
}
