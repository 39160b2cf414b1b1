package pipeline

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Test nodes used across the package tests: a bounded number source, a
// source that alternates empty and ready ticks, a two-input adder, and
// sinks that capture what they consume.

// boundedSource emits 1..limit as cty numbers, then closes.
type boundedSource struct {
	limit   int
	current int
}

func newBoundedSource(limit int) *boundedSource {
	return &boundedSource{limit: limit}
}

func (s *boundedSource) Name() string {
	return fmt.Sprintf("BoundedSource(%d)", s.limit)
}

func (s *boundedSource) InputTypes() []cty.Type { return nil }
func (s *boundedSource) OutputType() cty.Type   { return cty.Number }
func (s *boundedSource) Bind(int, Node)         {}

func (s *boundedSource) Poll() Poll {
	if s.current >= s.limit {
		return Closed
	}
	s.current++
	return Ready
}

func (s *boundedSource) Value() cty.Value {
	return cty.NumberIntVal(int64(s.current))
}

// skippingSource counts like boundedSource but reports Empty on every
// other tick, so only the even numbers 2, 4, ... are ever observable.
type skippingSource struct {
	limit   int
	current int
}

func newSkippingSource(limit int) *skippingSource {
	return &skippingSource{limit: limit}
}

func (s *skippingSource) Name() string {
	return fmt.Sprintf("SkippingSource(%d)", s.limit)
}

func (s *skippingSource) InputTypes() []cty.Type { return nil }
func (s *skippingSource) OutputType() cty.Type   { return cty.Number }
func (s *skippingSource) Bind(int, Node)         {}

func (s *skippingSource) Poll() Poll {
	if s.current >= s.limit {
		return Closed
	}
	skip := s.current%2 == 0
	s.current++
	if skip {
		return Empty
	}
	return Ready
}

func (s *skippingSource) Value() cty.Value {
	return cty.NumberIntVal(int64(s.current))
}

// addNode sums its two number inputs every ready tick.
type addNode struct {
	inputs [2]Producer
	value  cty.Value
}

func newAddNode() *addNode {
	return &addNode{value: cty.Zero}
}

func (c *addNode) Name() string { return "Add" }

func (c *addNode) InputTypes() []cty.Type {
	return []cty.Type{cty.Number, cty.Number}
}

func (c *addNode) OutputType() cty.Type { return cty.Number }

func (c *addNode) Bind(slot int, source Node) {
	if slot < 0 || slot >= len(c.inputs) {
		return
	}
	if source == nil {
		c.inputs[slot] = nil
		return
	}
	c.inputs[slot], _ = source.(Producer)
}

func (c *addNode) Poll() Poll {
	c.value = c.inputs[0].Value().Add(c.inputs[1].Value())
	return Ready
}

func (c *addNode) Value() cty.Value { return c.value }

// captureSink records each consumed number, space-separated, into a
// strings.Builder owned by the test.
type captureSink struct {
	out   *strings.Builder
	input Producer
}

func newCaptureSink(out *strings.Builder) *captureSink {
	return &captureSink{out: out}
}

func (s *captureSink) Name() string { return "CaptureSink" }

func (s *captureSink) InputTypes() []cty.Type {
	return []cty.Type{cty.Number}
}

func (s *captureSink) OutputType() cty.Type { return cty.NilType }

func (s *captureSink) Bind(slot int, source Node) {
	if slot != 0 {
		return
	}
	if source == nil {
		s.input = nil
		return
	}
	s.input, _ = source.(Producer)
}

func (s *captureSink) Poll() Poll {
	s.out.WriteString(formatNumber(s.input.Value()) + " ")
	return Ready
}

// stringSink consumes strings; used to provoke type mismatches against
// the number-typed sources above.
type stringSink struct {
	input Producer
}

func (s *stringSink) Name() string { return "StringSink" }

func (s *stringSink) InputTypes() []cty.Type {
	return []cty.Type{cty.String}
}

func (s *stringSink) OutputType() cty.Type { return cty.NilType }

func (s *stringSink) Bind(slot int, source Node) {
	if slot != 0 {
		return
	}
	if source == nil {
		s.input = nil
		return
	}
	s.input, _ = source.(Producer)
}

func (s *stringSink) Poll() Poll { return Ready }

func formatNumber(v cty.Value) string {
	bf := v.AsBigFloat()
	if i, acc := bf.Int64(); acc == big.Exact {
		return strconv.FormatInt(i, 10)
	}
	return bf.Text('g', -1)
}
