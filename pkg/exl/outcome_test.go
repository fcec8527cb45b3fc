package exl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pathError struct{}

func (*pathError) Error() string { return "path" }

func TestOutcome_OkAndErrAreExclusive(t *testing.T) {
	t.Parallel()

	ok := Ok[int, string](5)
	assert.True(t, ok.IsOk())
	assert.False(t, ok.IsErr())
	assert.True(t, ok.Ok().IsSome())
	assert.True(t, ok.Err().IsNone())
	assert.Equal(t, 5, ok.Ok().Unwrap())

	bad := Err[int]("bad")
	assert.True(t, bad.IsErr())
	assert.False(t, bad.IsOk())
	assert.True(t, bad.Ok().IsNone())
	assert.True(t, bad.Err().IsSome())
	assert.Equal(t, "bad", bad.Err().Unwrap())
}

func TestOutcome_TotalAccessors(t *testing.T) {
	t.Parallel()

	ok := Ok[int, string](5)
	bad := Err[int]("bad")

	assert.Equal(t, 5, ok.Unwrap())
	assert.Equal(t, 5, ok.Expect("never"))
	assert.Equal(t, "bad", bad.UnwrapErr())
	assert.Equal(t, "bad", bad.ExpectErr("never"))

	assert.Equal(t, 5, ok.UnwrapOr(1))
	assert.Equal(t, 1, bad.UnwrapOr(1))
	assert.Equal(t, 0, bad.UnwrapOrDefault())
	assert.Equal(t, 7, bad.UnwrapOrElse(func() int { return 7 }))
	assert.Equal(t, 5, ok.UnwrapOrElse(func() int { return 7 }))
}

func TestOutcome_FromPair(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var typedNil *pathError

	assert.Equal(t, 3, FromPair(3, nil).Unwrap())
	assert.ErrorIs(t, FromPair(3, boom).UnwrapErr(), boom)
	assert.True(t, FromPair(3, error(typedNil)).IsOk())
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ok(1)", Ok[int, string](1).String())
	assert.Equal(t, "Err(no)", Err[int]("no").String())
}

func TestOutcome_FatalAccessors(t *testing.T) {
	out := expectFatal(t, func() { _ = Err[int]("disk full").Unwrap() })
	assert.Contains(t, out, "unwrap of an Err Outcome: disk full")

	out = expectFatal(t, func() { _ = Err[int]("x").Expect("loading settings") })
	assert.Contains(t, out, "'loading settings'")

	out = expectFatal(t, func() { _ = Ok[int, string](1).UnwrapErr() })
	assert.Contains(t, out, "unwrap_err of an Ok Outcome")
}
