package exl

// Union2 is implemented by every two-alternative value: Cell2 itself,
// Optional and Outcome.
type Union2[A, B any] interface {
	// Cell exposes the underlying tagged cell
	Cell() Cell2[A, B]
}

// Union3 is implemented by three-alternative values.
type Union3[A, B, C any] interface {
	Cell() Cell3[A, B, C]
}
