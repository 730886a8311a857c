package collections

// CompareFunc is a total order over T. It returns a negative value when a
// orders before b, zero when they are equivalent, and a positive value when
// a orders after b. The order-aware containers (binaryheap, minstack) hold
// a CompareFunc as first-class configuration rather than requiring T to
// implement an interface.
type CompareFunc[T any] func(a, b T) int
