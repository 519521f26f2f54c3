package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrInvalidEndpoint indicates start or goal is outside the grid or blocked.
	ErrInvalidEndpoint = errors.New("search: endpoint is outside the grid or blocked")

	// ErrNotFound indicates the search exhausted without reaching the goal.
	ErrNotFound = errors.New("search: no path between start and goal")

	// ErrStepLimit is the abort cause when WithMaxSteps is exceeded.
	ErrStepLimit = errors.New("search: step limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrInvalidPath is reported by ValidatePath.
	ErrInvalidPath = errors.New("search: invalid path")
)

// Status classifies how a search terminated.
type Status int

const (
	// NotFound means the frontier (or stack) emptied before the goal.
	NotFound Status = iota
	// Found means Result.Path runs from start to goal.
	Found
	// InvalidEndpoint means start or goal is not a free in-bounds cell.
	InvalidEndpoint
	// Aborted means a context, hook, or step limit stopped the search.
	Aborted
)

// String returns the lowercase name of s.
func (s Status) String() string {
	switch s {
	case NotFound:
		return "not-found"
	case Found:
		return "found"
	case InvalidEndpoint:
		return "invalid-endpoint"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of a single search invocation.
//   - Path: start..goal inclusive when Status == Found, nil otherwise.
//   - Expanded: positions finalized, advanced into, or moved to.
type Result struct {
	Status   Status
	Path     []gridgraph.Position
	Expanded int

	err error
}

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Status == Found }

// Len returns the number of positions in the path (0 when none).
func (r Result) Len() int { return len(r.Path) }

// Err returns nil for Found, ErrNotFound for NotFound, and the recorded
// cause for InvalidEndpoint and Aborted results.
func (r Result) Err() error {
	switch r.Status {
	case Found:
		return nil
	case NotFound:
		return ErrNotFound
	}
	return r.err
}

// Success builds a Found result.
func Success(path []gridgraph.Position, expanded int) Result {
	return Result{Status: Found, Path: path, Expanded: expanded}
}

// Exhausted builds a NotFound result.
func Exhausted(expanded int) Result {
	return Result{Status: NotFound, Expanded: expanded}
}

// Rejected builds an InvalidEndpoint result from a CheckEndpoints error.
func Rejected(cause error) Result {
	return Result{Status: InvalidEndpoint, err: cause}
}

// Abort builds an Aborted result.
func Abort(cause error, expanded int) Result {
	return Result{Status: Aborted, Expanded: expanded, err: cause}
}

// StepKind classifies an intermediate search event.
type StepKind int

const (
	// StepEnqueue: a position entered the frontier.
	StepEnqueue StepKind = iota
	// StepExpand: a position left the frontier and was finalized.
	StepExpand
	// StepAdvance: the walker or current path moved onto a position.
	StepAdvance
	// StepRetreat: a dead end was undone.
	StepRetreat
	// StepRuleSwitch: the wall follower switched to the left-hand rule.
	StepRuleSwitch
)

// String returns the lowercase name of k.
func (k StepKind) String() string {
	switch k {
	case StepEnqueue:
		return "enqueue"
	case StepExpand:
		return "expand"
	case StepAdvance:
		return "advance"
	case StepRetreat:
		return "retreat"
	case StepRuleSwitch:
		return "rule-switch"
	}
	return fmt.Sprintf("StepKind(%d)", int(k))
}

// Step is one intermediate state of a search.
// Cost is the path cost g for best-first searches, the BFS depth for
// flood fill, and the stack depth for backtracking and wall following.
type Step struct {
	Kind StepKind
	Pos  gridgraph.Position
	Cost int
}
