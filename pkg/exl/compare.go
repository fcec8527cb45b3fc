package exl

import "cmp"

// Equal2 compares discriminants first, then the active values.
func Equal2[A, B comparable](x, y Cell2[A, B]) bool {
	if x.tag != y.tag {
		return false
	}
	if x.tag == TagSecond {
		return x.second == y.second
	}
	return x.first == y.first
}

// Compare2 orders by discriminant, then by the active value.
func Compare2[A, B cmp.Ordered](x, y Cell2[A, B]) int {
	if c := cmp.Compare(x.tag, y.tag); c != 0 {
		return c
	}
	if x.tag == TagSecond {
		return cmp.Compare(x.second, y.second)
	}
	return cmp.Compare(x.first, y.first)
}

func Equal3[A, B, C comparable](x, y Cell3[A, B, C]) bool {
	if x.tag != y.tag {
		return false
	}
	switch x.tag {
	case TagSecond:
		return x.second == y.second
	case TagThird:
		return x.third == y.third
	}
	return x.first == y.first
}

func Compare3[A, B, C cmp.Ordered](x, y Cell3[A, B, C]) int {
	if c := cmp.Compare(x.tag, y.tag); c != 0 {
		return c
	}
	switch x.tag {
	case TagSecond:
		return cmp.Compare(x.second, y.second)
	case TagThird:
		return cmp.Compare(x.third, y.third)
	}
	return cmp.Compare(x.first, y.first)
}

// EqualOptional treats two empty values as equal.
func EqualOptional[T comparable](x, y Optional[T]) bool {
	return Equal2(x.cell, y.cell)
}

// CompareOptional orders any Some before None.
func CompareOptional[T cmp.Ordered](x, y Optional[T]) int {
	if c := cmp.Compare(y.cell.tag, x.cell.tag); c != 0 {
		return c
	}
	return cmp.Compare(x.cell.second, y.cell.second)
}

func EqualOutcome[T, E comparable](x, y Outcome[T, E]) bool {
	return Equal2(x.cell, y.cell)
}

// CompareOutcome orders any Ok before any Err.
func CompareOutcome[T, E cmp.Ordered](x, y Outcome[T, E]) int {
	return Compare2(x.cell, y.cell)
}
