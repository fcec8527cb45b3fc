package match

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/ib-77/exl/pkg/exl"
	"github.com/stretchr/testify/assert"
)

func describe(r exl.Outcome[int, string]) string {
	return Outcome(r,
		func(x int) string { return "ok:" + strconv.Itoa(x) },
		func(s string) string { return "err:" + s })
}

func TestOutcome_DispatchesActiveAlternative(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok:5", describe(exl.Ok[int, string](5)))
	assert.Equal(t, "err:bad", describe(exl.Err[int]("bad")))
}

func TestMatch2_OnlyActiveHandlerRuns(t *testing.T) {
	t.Parallel()

	var firstCalls, secondCalls int
	c := exl.Second[int]("x")

	got := Match2(c,
		func(int) bool { firstCalls++; return false },
		func(string) bool { secondCalls++; return true })

	assert.True(t, got)
	assert.Equal(t, 0, firstCalls)
	assert.Equal(t, 1, secondCalls)
}

func TestMatch2_OptionalCell(t *testing.T) {
	t.Parallel()

	show := func(o exl.Optional[int]) string {
		return Match2(o,
			func(v int) string { return fmt.Sprint(v) },
			func(exl.Empty) string { return "nothing" })
	}

	assert.Equal(t, "nothing", show(exl.None[int]()))
	assert.Equal(t, "9", show(exl.Some(9)))
}

func TestOption(t *testing.T) {
	t.Parallel()

	double := func(o exl.Optional[int]) int {
		return Option(o, func(v int) int { return v * 2 }, func() int { return -1 })
	}

	assert.Equal(t, 8, double(exl.Some(4)))
	assert.Equal(t, -1, double(exl.None[int]()))
}

func TestMatch3(t *testing.T) {
	t.Parallel()

	kind := func(c exl.Cell3[int, string, bool]) string {
		return Match3(c,
			func(int) string { return "int" },
			func(string) string { return "string" },
			func(bool) string { return "bool" })
	}

	assert.Equal(t, "int", kind(exl.First3[int, string, bool](1)))
	assert.Equal(t, "string", kind(exl.Second3[int, string, bool]("s")))
	assert.Equal(t, "bool", kind(exl.Third3[int, string](true)))
}
