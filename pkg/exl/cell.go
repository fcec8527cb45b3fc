package exl

import (
	"fmt"
	"reflect"

	"github.com/ib-77/exl/pkg/exl/fault"
)

// Tag is the discriminant of a cell: the index of its active alternative.
type Tag uint8

const (
	TagFirst Tag = iota
	TagSecond
	TagThird
)

// Empty is the alternative that carries no value.
type Empty struct{}

func (Empty) String() string {
	return "None"
}

// Cell2 holds exactly one of A or B. The zero value holds the zero A.
type Cell2[A, B any] struct {
	tag    Tag
	first  A
	second B
}

func First[A, B any](a A) Cell2[A, B] {
	return Cell2[A, B]{tag: TagFirst, first: a}
}

func Second[A, B any](b B) Cell2[A, B] {
	return Cell2[A, B]{tag: TagSecond, second: b}
}

func (c Cell2[A, B]) Cell() Cell2[A, B] {
	return c
}

func (c Cell2[A, B]) Tag() Tag {
	return c.tag
}

func (c Cell2[A, B]) IsFirst() bool {
	return c.tag == TagFirst
}

func (c Cell2[A, B]) IsSecond() bool {
	return c.tag == TagSecond
}

// First returns the first alternative; any other active alternative is fatal.
func (c Cell2[A, B]) First() A {
	if c.tag != TagFirst {
		fault.Panic(mismatch(c.tag, c.active(), TagFirst, typeName[A]()))
	}
	return c.first
}

// Second returns the second alternative; any other active alternative is fatal.
func (c Cell2[A, B]) Second() B {
	if c.tag != TagSecond {
		fault.Panic(mismatch(c.tag, c.active(), TagSecond, typeName[B]()))
	}
	return c.second
}

func (c Cell2[A, B]) TryFirst() (A, bool) {
	return c.first, c.tag == TagFirst
}

func (c Cell2[A, B]) TrySecond() (B, bool) {
	return c.second, c.tag == TagSecond
}

// Swap installs next and returns the previous contents intact.
func (c *Cell2[A, B]) Swap(next Cell2[A, B]) Cell2[A, B] {
	prev := *c
	*c = next
	return prev
}

// Take returns the previous contents and resets the cell to its zero value.
func (c *Cell2[A, B]) Take() Cell2[A, B] {
	return c.Swap(Cell2[A, B]{})
}

// Value returns the active alternative boxed.
func (c Cell2[A, B]) Value() any {
	if c.tag == TagSecond {
		return c.second
	}
	return c.first
}

func (c Cell2[A, B]) String() string {
	return fmt.Sprint(c.Value())
}

func (c Cell2[A, B]) active() string {
	if c.tag == TagSecond {
		return typeName[B]()
	}
	return typeName[A]()
}

// Cell3 holds exactly one of A, B or C. The zero value holds the zero A.
type Cell3[A, B, C any] struct {
	tag    Tag
	first  A
	second B
	third  C
}

func First3[A, B, C any](a A) Cell3[A, B, C] {
	return Cell3[A, B, C]{tag: TagFirst, first: a}
}

func Second3[A, B, C any](b B) Cell3[A, B, C] {
	return Cell3[A, B, C]{tag: TagSecond, second: b}
}

func Third3[A, B, C any](c C) Cell3[A, B, C] {
	return Cell3[A, B, C]{tag: TagThird, third: c}
}

func (c Cell3[A, B, C]) Cell() Cell3[A, B, C] {
	return c
}

func (c Cell3[A, B, C]) Tag() Tag {
	return c.tag
}

func (c Cell3[A, B, C]) IsFirst() bool {
	return c.tag == TagFirst
}

func (c Cell3[A, B, C]) IsSecond() bool {
	return c.tag == TagSecond
}

func (c Cell3[A, B, C]) IsThird() bool {
	return c.tag == TagThird
}

func (c Cell3[A, B, C]) First() A {
	if c.tag != TagFirst {
		fault.Panic(mismatch(c.tag, c.active(), TagFirst, typeName[A]()))
	}
	return c.first
}

func (c Cell3[A, B, C]) Second() B {
	if c.tag != TagSecond {
		fault.Panic(mismatch(c.tag, c.active(), TagSecond, typeName[B]()))
	}
	return c.second
}

func (c Cell3[A, B, C]) Third() C {
	if c.tag != TagThird {
		fault.Panic(mismatch(c.tag, c.active(), TagThird, typeName[C]()))
	}
	return c.third
}

func (c Cell3[A, B, C]) TryFirst() (A, bool) {
	return c.first, c.tag == TagFirst
}

func (c Cell3[A, B, C]) TrySecond() (B, bool) {
	return c.second, c.tag == TagSecond
}

func (c Cell3[A, B, C]) TryThird() (C, bool) {
	return c.third, c.tag == TagThird
}

func (c *Cell3[A, B, C]) Swap(next Cell3[A, B, C]) Cell3[A, B, C] {
	prev := *c
	*c = next
	return prev
}

func (c *Cell3[A, B, C]) Take() Cell3[A, B, C] {
	return c.Swap(Cell3[A, B, C]{})
}

func (c Cell3[A, B, C]) Value() any {
	switch c.tag {
	case TagSecond:
		return c.second
	case TagThird:
		return c.third
	}
	return c.first
}

func (c Cell3[A, B, C]) String() string {
	return fmt.Sprint(c.Value())
}

func (c Cell3[A, B, C]) active() string {
	switch c.tag {
	case TagSecond:
		return typeName[B]()
	case TagThird:
		return typeName[C]()
	}
	return typeName[A]()
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func mismatch(active Tag, activeName string, wanted Tag, wantedName string) string {
	return fmt.Sprintf("exl: cell holds alternative %d (%s), accessed as alternative %d (%s)",
		active, activeName, wanted, wantedName)
}
