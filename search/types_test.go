package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/internal/fixture"
	"github.com/katalvlaran/gridpath/search"
)

func TestStatusAndKindNames(t *testing.T) {
	assert.Equal(t, "not-found", search.NotFound.String())
	assert.Equal(t, "found", search.Found.String())
	assert.Equal(t, "invalid-endpoint", search.InvalidEndpoint.String())
	assert.Equal(t, "aborted", search.Aborted.String())
	assert.Equal(t, "Status(9)", search.Status(9).String())

	assert.Equal(t, "enqueue", search.StepEnqueue.String())
	assert.Equal(t, "expand", search.StepExpand.String())
	assert.Equal(t, "advance", search.StepAdvance.String())
	assert.Equal(t, "retreat", search.StepRetreat.String())
	assert.Equal(t, "rule-switch", search.StepRuleSwitch.String())
	assert.Equal(t, "StepKind(-1)", search.StepKind(-1).String())
}

func TestResultErr(t *testing.T) {
	ok := search.Success(fixture.Path([2]int{0, 0}), 0)
	assert.True(t, ok.Found())
	assert.Equal(t, 1, ok.Len())
	assert.NoError(t, ok.Err())

	miss := search.Exhausted(7)
	assert.False(t, miss.Found())
	assert.Zero(t, miss.Len())
	assert.ErrorIs(t, miss.Err(), search.ErrNotFound)

	bad := search.Rejected(search.ErrInvalidEndpoint)
	assert.Equal(t, search.InvalidEndpoint, bad.Status)
	assert.ErrorIs(t, bad.Err(), search.ErrInvalidEndpoint)

	stop := search.Abort(context.Canceled, 3)
	assert.Equal(t, 3, stop.Expanded)
	assert.ErrorIs(t, stop.Err(), context.Canceled)
}

func TestBuild(t *testing.T) {
	o, err := search.Build()
	require.NoError(t, err)
	assert.NotNil(t, o.Ctx)
	assert.NotNil(t, o.OnStep)
	assert.Zero(t, o.MaxSteps)

	// nil values are ignored
	o, err = search.Build(search.WithContext(nil), search.WithOnStep(nil), search.WithMaxSteps(4))
	require.NoError(t, err)
	assert.NotNil(t, o.Ctx)
	assert.NotNil(t, o.OnStep)
	assert.Equal(t, 4, o.MaxSteps)

	_, err = search.Build(search.WithMaxSteps(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestTracer(t *testing.T) {
	o, err := search.Build(search.WithMaxSteps(2))
	require.NoError(t, err)
	tr := search.NewTracer(o)
	require.NoError(t, tr.Tick())
	require.NoError(t, tr.Tick())
	assert.ErrorIs(t, tr.Tick(), search.ErrStepLimit)
	assert.Equal(t, 2, tr.Expanded())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o, _ = search.Build(search.WithContext(ctx))
	assert.ErrorIs(t, search.NewTracer(o).Tick(), context.Canceled)
}

func TestHookErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	g := fixture.Grid(fixture.ReferenceMaze)

	var seen int
	res := astar.AStar(g, fixture.P(0, 0), fixture.P(5, 5), search.WithOnStep(func(search.Step) error {
		seen++
		if seen == 4 {
			return boom
		}
		return nil
	}))
	assert.Equal(t, search.Aborted, res.Status)
	assert.ErrorIs(t, res.Err(), boom)
	assert.Nil(t, res.Path)
	assert.Equal(t, 4, seen)
}

func TestTrace(t *testing.T) {
	g := fixture.Grid(fixture.ReferenceMaze)

	var all []search.Step
	for st := range search.Trace(astar.Solver{}, g, fixture.P(0, 0), fixture.P(5, 5)) {
		all = append(all, st)
	}
	require.NotEmpty(t, all)
	assert.Equal(t, search.StepEnqueue, all[0].Kind)
	assert.Equal(t, fixture.P(0, 0), all[0].Pos)
	assert.Equal(t, fixture.P(5, 5), all[len(all)-1].Pos)

	var first []search.Step
	for st := range search.Trace(astar.Solver{}, g, fixture.P(0, 0), fixture.P(5, 5)) {
		first = append(first, st)
		if len(first) == 3 {
			break
		}
	}
	assert.Equal(t, all[:3], first)
}
