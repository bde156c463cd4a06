package test

import (
	"fmt"

	"go.uber.org/mock/gomock"
)

type predicateMatcher[T any] struct {
	predicate func(v T) bool
	last      any
}

func (p *predicateMatcher[T]) Matches(x any) bool {
	p.last = x
	v, ok := x.(T)
	return ok && p.predicate(v)
}

func (p *predicateMatcher[T]) String() string {
	var zero T
	return fmt.Sprintf("%T satisfying the predicate (last got %v)", zero, p.last)
}

// Match returns a gomock matcher accepting arguments of type T for which
// the predicate holds.
func Match[T any](predicate func(v T) bool) gomock.Matcher {
	return &predicateMatcher[T]{predicate: predicate}
}
