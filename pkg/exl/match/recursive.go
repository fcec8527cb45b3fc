package match

import "github.com/ib-77/exl/pkg/exl"

// Recursive2 closes over the two handlers and passes each of them the
// dispatch itself as recurse. There is no depth limit; base-case handlers
// must not recurse.
func Recursive2[A, B, R any](
	onFirst func(recurse func(exl.Cell2[A, B]) R, a A) R,
	onSecond func(recurse func(exl.Cell2[A, B]) R, b B) R) func(exl.Cell2[A, B]) R {

	var dispatch func(exl.Cell2[A, B]) R
	dispatch = func(c exl.Cell2[A, B]) R {
		if v, ok := c.TryFirst(); ok {
			return onFirst(dispatch, v)
		}
		return onSecond(dispatch, c.Second())
	}
	return dispatch
}

func Recursive3[A, B, C, R any](
	onFirst func(recurse func(exl.Cell3[A, B, C]) R, a A) R,
	onSecond func(recurse func(exl.Cell3[A, B, C]) R, b B) R,
	onThird func(recurse func(exl.Cell3[A, B, C]) R, c C) R) func(exl.Cell3[A, B, C]) R {

	var dispatch func(exl.Cell3[A, B, C]) R
	dispatch = func(c exl.Cell3[A, B, C]) R {
		switch c.Tag() {
		case exl.TagFirst:
			return onFirst(dispatch, c.First())
		case exl.TagSecond:
			return onSecond(dispatch, c.Second())
		}
		return onThird(dispatch, c.Third())
	}
	return dispatch
}

// Fix2 runs factory once with a recurse function and returns that same
// function bound to the composed handler set.
func Fix2[A, B, R any](
	factory func(recurse func(exl.Cell2[A, B]) R) (Matcher2[A, B, R], error)) (func(exl.Cell2[A, B]) R, error) {

	var m Matcher2[A, B, R]
	recurse := func(c exl.Cell2[A, B]) R {
		return m.Match(c)
	}

	built, err := factory(recurse)
	if err != nil {
		return nil, err
	}
	m = built
	return recurse, nil
}

func Fix3[A, B, C, R any](
	factory func(recurse func(exl.Cell3[A, B, C]) R) (Matcher3[A, B, C, R], error)) (func(exl.Cell3[A, B, C]) R, error) {

	var m Matcher3[A, B, C, R]
	recurse := func(c exl.Cell3[A, B, C]) R {
		return m.Match(c)
	}

	built, err := factory(recurse)
	if err != nil {
		return nil, err
	}
	m = built
	return recurse, nil
}
