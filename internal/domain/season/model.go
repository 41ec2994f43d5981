package season

import "fmt"

// Season is one SHL season as published by the upstream filter catalog.
type Season struct {
	UUID      string
	Code      string
	Name      string
	IsCurrent bool
}

func (s Season) Validate() error {
	if s.UUID == "" {
		return fmt.Errorf("season uuid is required")
	}
	if s.Code == "" {
		return fmt.Errorf("season code is required")
	}

	return nil
}
