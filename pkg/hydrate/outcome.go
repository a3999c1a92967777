package hydrate

// ItemWithChildren pairs one loaded item with its loaded children.
type ItemWithChildren[T, C any] struct {
	Item T

	// Children holds the loaded children in extraction order. The i-th
	// element corresponds to the i-th identifier returned by the
	// ChildExtractor, never to completion order.
	Children []C
}

// Outcome is the settled result of loading one identifier: either a
// value or an error, never both.
type Outcome[T any] struct {
	ID    string
	Value T
	Err   error
}

// Failed reports whether the outcome is a failure.
func (o Outcome[T]) Failed() bool {
	return o.Err != nil
}

// Success is one successfully loaded identifier within a Partitioned result.
type Success[T any] struct {
	ID    string
	Value T
}

// Failure is one failed identifier within a Partitioned result.
type Failure struct {
	ID  string
	Err error
}

// Partitioned splits a batch's outcomes into successes and failures.
//
// For an input of N identifiers, len(Successes)+len(Failures) == N,
// every identifier appears in exactly one of the two slices (duplicates
// once per occurrence), and each slice is ordered by the identifier's
// position in the original input.
type Partitioned[T any] struct {
	Successes []Success[T]
	Failures  []Failure
}

// Len returns the total number of settled identifiers.
func (p Partitioned[T]) Len() int {
	return len(p.Successes) + len(p.Failures)
}

// FailureFor returns the error recorded for id, or nil if id did not
// fail. With duplicate identifiers the first failure in input order wins.
func (p Partitioned[T]) FailureFor(id string) error {
	for _, f := range p.Failures {
		if f.ID == id {
			return f.Err
		}
	}
	return nil
}
