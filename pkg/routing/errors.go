package routing

import (
	"errors"
	"fmt"
)

// NoPathError means the graph holds no route between the requested pair,
// for example when every connecting line is under maintenance closure.
var NoPathError = errors.New("no route exists between origin and destination")

// SearchBudgetExceededError is the defensive bound on frontier pops. It is a
// retryable failure, not a data error.
type SearchBudgetExceededError struct {
	FrontierPops int
}

func (e *SearchBudgetExceededError) Error() string {
	return fmt.Sprintf("route search exceeded its budget of %d frontier pops", e.FrontierPops)
}
