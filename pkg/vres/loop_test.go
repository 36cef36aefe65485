package vres

import (
	"testing"

	"github.com/ib-77/vres/pkg/vres/either"
)

func TestLoopSuccess_CountsDownWithoutRecursion(t *testing.T) {
	t.Parallel()
	steps := 0
	got := LoopSuccess(Success[string](100000),
		func(v int) either.Either[string, Result[string, int]] {
			steps++
			if v == 0 {
				return either.Left[string, Result[string, int]]("done")
			}
			return either.Right[string](Success[string](v - 1))
		},
		func(e string) string { return "failed: " + e })
	if got != "done" {
		t.Fatalf("expected terminal 'done', got %q", got)
	}
	if steps != 100001 {
		t.Fatalf("expected 100001 steps, got %d", steps)
	}
}

func TestLoopSuccess_FailureTerminates(t *testing.T) {
	t.Parallel()
	got := LoopSuccess(Success[string](3),
		func(v int) either.Either[string, Result[string, int]] {
			if v == 1 {
				return either.Right[string](Fail[string, int]("hit bottom"))
			}
			return either.Right[string](Success[string](v - 1))
		},
		func(e string) string { return "failed: " + e })
	if got != "failed: hit bottom" {
		t.Fatalf("expected failure handler output, got %q", got)
	}
}

func TestLoopFailure_RetriesUntilSuccess(t *testing.T) {
	t.Parallel()
	attempts := 0
	got := LoopFailure(Fail[int, string](3),
		func(remaining int) either.Either[string, Result[int, string]] {
			attempts++
			if remaining == 0 {
				return either.Left[string, Result[int, string]]("gave up")
			}
			if remaining == 1 {
				return either.Right[string](Success[int]("recovered"))
			}
			return either.Right[string](Fail[int, string](remaining - 1))
		},
		func(v string) string { return v })
	if got != "recovered" {
		t.Fatalf("expected 'recovered', got %q", got)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}
