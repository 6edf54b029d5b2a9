package planner

import (
	"errors"
	"fmt"
)

// NotReadyError means no snapshot has been built yet, so planning cannot run.
var NotReadyError = errors.New("no network snapshot has been built yet")

type StationNotFoundError struct {
	StationRef string
	Reason     string
}

func (e *StationNotFoundError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}

	return fmt.Sprintf("no station matching identifier %q in the current snapshot", e.StationRef)
}
