package gametype

import "fmt"

// GameType distinguishes regular-season games from playoffs and
// qualifiers in the upstream filter catalog.
type GameType struct {
	UUID string
	Code string
	Name string
}

func (g GameType) Validate() error {
	if g.UUID == "" {
		return fmt.Errorf("game type uuid is required")
	}
	if g.Code == "" {
		return fmt.Errorf("game type code is required")
	}

	return nil
}
