package match

import "github.com/ib-77/exl/pkg/exl"

// Match2 invokes exactly the handler bound to the active alternative.
func Match2[A, B, R any](u exl.Union2[A, B], onFirst func(A) R, onSecond func(B) R) R {
	c := u.Cell()
	if v, ok := c.TryFirst(); ok {
		return onFirst(v)
	}
	return onSecond(c.Second())
}

func Match3[A, B, C, R any](u exl.Union3[A, B, C],
	onFirst func(A) R, onSecond func(B) R, onThird func(C) R) R {

	c := u.Cell()
	switch c.Tag() {
	case exl.TagFirst:
		return onFirst(c.First())
	case exl.TagSecond:
		return onSecond(c.Second())
	}
	return onThird(c.Third())
}

// Option matches an Optional, Some first.
func Option[T, R any](o exl.Optional[T], onSome func(T) R, onNone func() R) R {
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

// Outcome matches an Outcome, Ok first.
func Outcome[T, E, R any](r exl.Outcome[T, E], onOk func(T) R, onErr func(E) R) R {
	return Match2[T, E, R](r, onOk, onErr)
}
