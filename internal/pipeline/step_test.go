package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoBranchIDs names the nodes wired up by twoBranch.
type twoBranchIDs struct {
	left, right, add, sinkA, sinkB NodeID
}

// twoBranch wires the layout shared by the scheduler scenarios:
//
//	left ─┐
//	      ├─ add ─ sinkA
//	right ┤
//	      └──────── sinkB
func twoBranch(t *testing.T, p *Pipeline, left, right Node) (ids twoBranchIDs, outA, outB *strings.Builder) {
	t.Helper()
	outA = &strings.Builder{}
	outB = &strings.Builder{}

	ids.left = p.CreateNode(left)
	ids.right = p.CreateNode(right)
	ids.add = p.CreateNode(newAddNode())
	ids.sinkA = p.CreateNode(newCaptureSink(outA))
	ids.sinkB = p.CreateNode(newCaptureSink(outB))

	require.NoError(t, p.Connect(ids.left, ids.add, 0))
	require.NoError(t, p.Connect(ids.right, ids.add, 1))
	require.NoError(t, p.Connect(ids.add, ids.sinkA, 0))
	require.NoError(t, p.Connect(ids.right, ids.sinkB, 0))
	require.True(t, p.Valid())
	return ids, outA, outB
}

func TestStep_ClosurePropagatesDownstream(t *testing.T) {
	p := New()
	_, outA, outB := twoBranch(t, p, newBoundedSource(5), newBoundedSource(10))

	// The bound-5 branch closes on tick 6; the bound-10 branch keeps
	// the pipeline alive until tick 11.
	for i := 0; i < 10; i++ {
		assert.False(t, p.Step(), "tick %d should leave a live sink", i+1)
	}
	assert.True(t, p.Step(), "tick 11: every sink is closed")

	assert.Equal(t, "2 4 6 8 10 ", outA.String())
	assert.Equal(t, "1 2 3 4 5 6 7 8 9 10 ", outB.String())
}

func TestStep_EmptySkipsDependentsForTheTick(t *testing.T) {
	p := New()
	_, outA, outB := twoBranch(t, p, newSkippingSource(6), newBoundedSource(10))

	for i := 0; i < 10; i++ {
		assert.False(t, p.Step())
	}
	assert.True(t, p.Step())

	// On empty ticks the adder and its sink are skipped, not polled,
	// so only every second sum appears; the unrelated branch is
	// unaffected.
	assert.Equal(t, "4 8 12 ", outA.String())
	assert.Equal(t, "1 2 3 4 5 6 7 8 9 10 ", outB.String())
}

func TestStep_ReplacedSourceReopensBranch(t *testing.T) {
	p := New()
	ids, outA, outB := twoBranch(t, p, newBoundedSource(5), newBoundedSource(10))

	for i := 0; i < 6; i++ {
		require.False(t, p.Step())
	}
	require.Equal(t, "2 4 6 8 10 ", outA.String(), "left branch closed after 5 values")

	// Swap the exhausted source for a fresh one. Closure is resolved
	// per tick, so the branch comes straight back to life.
	replacement := p.CreateNode(newBoundedSource(5))
	require.NoError(t, p.EraseNode(ids.left))
	require.NoError(t, p.Connect(replacement, ids.add, 0))
	require.True(t, p.Valid())

	for i := 0; i < 4; i++ {
		require.False(t, p.Step())
	}
	assert.True(t, p.Step())

	assert.Equal(t, "2 4 6 8 10 8 10 12 14 ", outA.String(),
		"new values append to the prior sink output")
	assert.Equal(t, "1 2 3 4 5 6 7 8 9 10 ", outB.String())
}

func TestStep_FanOutPollsEachNodeOncePerTick(t *testing.T) {
	p := New()
	out1 := &strings.Builder{}
	out2 := &strings.Builder{}

	src := p.CreateNode(newBoundedSource(3))
	sink1 := p.CreateNode(newCaptureSink(out1))
	sink2 := p.CreateNode(newCaptureSink(out2))
	require.NoError(t, p.Connect(src, sink1, 0))
	require.NoError(t, p.Connect(src, sink2, 0))

	require.False(t, p.Step())

	// If the shared source were polled once per sink, the sinks would
	// observe different values.
	assert.Equal(t, "1 ", out1.String())
	assert.Equal(t, "1 ", out2.String())
}

func TestStep_NoSinksReportsAllClosed(t *testing.T) {
	p := New()
	p.CreateNode(newBoundedSource(5))
	assert.True(t, p.Step(), "with no sinks there is nothing left to close")
}

func TestRun_UntilAllSinksClosed(t *testing.T) {
	p := New()
	_, outA, outB := twoBranch(t, p, newBoundedSource(5), newBoundedSource(10))

	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, "2 4 6 8 10 ", outA.String())
	assert.Equal(t, "1 2 3 4 5 6 7 8 9 10 ", outB.String())
}

func TestRun_SkippingSource(t *testing.T) {
	p := New()
	_, outA, outB := twoBranch(t, p, newSkippingSource(6), newBoundedSource(10))

	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, "4 8 12 ", outA.String())
	assert.Equal(t, "1 2 3 4 5 6 7 8 9 10 ", outB.String())
}

func TestRun_AgainAfterReplacingSources(t *testing.T) {
	p := New()
	ids, outA, outB := twoBranch(t, p, newSkippingSource(6), newBoundedSource(10))

	require.NoError(t, p.Run(context.Background()))
	require.Equal(t, "4 8 12 ", outA.String())
	require.Equal(t, "1 2 3 4 5 6 7 8 9 10 ", outB.String())

	// Replace both exhausted sources and run the same graph again.
	require.NoError(t, p.EraseNode(ids.left))
	require.NoError(t, p.EraseNode(ids.right))
	newLeft := p.CreateNode(newSkippingSource(6))
	newRight := p.CreateNode(newBoundedSource(10))
	require.NoError(t, p.Connect(newLeft, ids.add, 0))
	require.NoError(t, p.Connect(newRight, ids.add, 1))
	require.NoError(t, p.Connect(newRight, ids.sinkB, 0))
	require.True(t, p.Valid())

	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, "4 8 12 4 8 12 ", outA.String())
	assert.Equal(t, "1 2 3 4 5 6 7 8 9 10 1 2 3 4 5 6 7 8 9 10 ", outB.String())
}

func TestRun_HonorsCancellation(t *testing.T) {
	p := New()
	// A lone pair where the source never closes.
	src := p.CreateNode(newSkippingSource(1 << 30))
	sink := p.CreateNode(newCaptureSink(&strings.Builder{}))
	require.NoError(t, p.Connect(src, sink, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
