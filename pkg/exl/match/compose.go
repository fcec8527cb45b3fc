package match

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ib-77/exl/pkg/exl"
	"github.com/ib-77/exl/pkg/exl/fault"
)

var (
	ErrMissingHandler       = errors.New("match: alternative has no handler")
	ErrDuplicateHandler     = errors.New("match: alternative has more than one handler")
	ErrUnknownAlternative   = errors.New("match: handler binds a type that is not an alternative")
	ErrAmbiguousAlternative = errors.New("match: alternatives share a type, bind them positionally")
	ErrNilHandler           = errors.New("match: nil handler")
)

// Case is one handler bound to the alternative type it accepts.
type Case[R any] struct {
	alt     reflect.Type
	handler any
}

func On[A, R any](h func(A) R) Case[R] {
	c := Case[R]{alt: reflect.TypeOf((*A)(nil)).Elem()}
	if h != nil {
		c.handler = h
	}
	return c
}

func (c Case[R]) Alternative() reflect.Type {
	return c.alt
}

// bind assigns every case to the index of its alternative.
func bind[R any](alts []reflect.Type, cases []Case[R]) ([]any, error) {
	for i, a := range alts {
		for _, prev := range alts[:i] {
			if prev == a {
				return nil, fmt.Errorf("%w: %s", ErrAmbiguousAlternative, a)
			}
		}
	}

	bound := make([]any, len(alts))
	for _, c := range cases {
		if c.alt == nil {
			return nil, ErrUnknownAlternative
		}
		idx := -1
		for i, a := range alts {
			if a == c.alt {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAlternative, c.alt)
		}
		if c.handler == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilHandler, c.alt)
		}
		if bound[idx] != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateHandler, c.alt)
		}
		bound[idx] = c.handler
	}

	var missing []error
	for i, h := range bound {
		if h == nil {
			missing = append(missing, fmt.Errorf("%w: %s", ErrMissingHandler, alts[i]))
		}
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}
	return bound, nil
}

// Matcher2 is a composed, exhaustive handler set over Cell2[A, B].
type Matcher2[A, B, R any] struct {
	onFirst  func(A) R
	onSecond func(B) R
}

func Compose2[A, B, R any](cases ...Case[R]) (Matcher2[A, B, R], error) {
	bound, err := bind([]reflect.Type{reflect.TypeOf((*A)(nil)).Elem(), reflect.TypeOf((*B)(nil)).Elem()}, cases)
	if err != nil {
		return Matcher2[A, B, R]{}, err
	}
	return Matcher2[A, B, R]{
		onFirst:  bound[0].(func(A) R),
		onSecond: bound[1].(func(B) R),
	}, nil
}

// MustCompose2 is Compose2 with a composition error treated as fatal.
func MustCompose2[A, B, R any](cases ...Case[R]) Matcher2[A, B, R] {
	m, err := Compose2[A, B, R](cases...)
	if err != nil {
		fault.Panic(err.Error())
	}
	return m
}

func (m Matcher2[A, B, R]) Composed() bool {
	return m.onFirst != nil && m.onSecond != nil
}

func (m Matcher2[A, B, R]) Match(u exl.Union2[A, B]) R {
	if !m.Composed() {
		fault.Panic("match: dispatch through a matcher that was never composed")
	}
	return Match2(u, m.onFirst, m.onSecond)
}

// Matcher3 is a composed, exhaustive handler set over Cell3[A, B, C].
type Matcher3[A, B, C, R any] struct {
	onFirst  func(A) R
	onSecond func(B) R
	onThird  func(C) R
}

func Compose3[A, B, C, R any](cases ...Case[R]) (Matcher3[A, B, C, R], error) {
	bound, err := bind([]reflect.Type{reflect.TypeOf((*A)(nil)).Elem(), reflect.TypeOf((*B)(nil)).Elem(), reflect.TypeOf((*C)(nil)).Elem()}, cases)
	if err != nil {
		return Matcher3[A, B, C, R]{}, err
	}
	return Matcher3[A, B, C, R]{
		onFirst:  bound[0].(func(A) R),
		onSecond: bound[1].(func(B) R),
		onThird:  bound[2].(func(C) R),
	}, nil
}

func MustCompose3[A, B, C, R any](cases ...Case[R]) Matcher3[A, B, C, R] {
	m, err := Compose3[A, B, C, R](cases...)
	if err != nil {
		fault.Panic(err.Error())
	}
	return m
}

func (m Matcher3[A, B, C, R]) Composed() bool {
	return m.onFirst != nil && m.onSecond != nil && m.onThird != nil
}

func (m Matcher3[A, B, C, R]) Match(u exl.Union3[A, B, C]) R {
	if !m.Composed() {
		fault.Panic("match: dispatch through a matcher that was never composed")
	}
	return Match3(u, m.onFirst, m.onSecond, m.onThird)
}
