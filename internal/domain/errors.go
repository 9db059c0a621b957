package domain

import "fmt"

// ProfileNotFoundError reports a --config value naming no registered profile.
type ProfileNotFoundError struct {
	Name string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("the configuration %q is not defined", e.Name)
}

// UnknownLevelError reports a --level value outside psr1, psr2 and all.
type UnknownLevelError struct {
	Value string
}

func (e *UnknownLevelError) Error() string {
	return fmt.Sprintf("the level %q is not defined", e.Value)
}
