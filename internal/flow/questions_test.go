package flow

import "testing"

func TestQuestionAtInitialList(t *testing.T) {
	initial := []string{"i0", "i1", "i2"}
	pool := []string{"p0", "p1", "p2", "p3"}

	for i, want := range initial {
		if got := QuestionAt(initial, pool, i, 0); got != want {
			t.Errorf("QuestionAt(%d, 0) = %q, want %q", i, got, want)
		}
	}
}

func TestQuestionAtPoolIsDeterministicModulo(t *testing.T) {
	initial := []string{"i0", "i1", "i2"}
	pool := []string{"p0", "p1", "p2", "p3"}

	for index := 0; index < 10; index++ {
		for depth := 1; depth < 5; depth++ {
			want := pool[(index+depth)%len(pool)]
			if got := QuestionAt(initial, pool, index, depth); got != want {
				t.Errorf("QuestionAt(%d, %d) = %q, want %q", index, depth, got, want)
			}
			// Same pair, same question, every time.
			if again := QuestionAt(initial, pool, index, depth); again != want {
				t.Errorf("QuestionAt(%d, %d) not deterministic: %q then %q", index, depth, want, again)
			}
		}
	}
}

func TestQuestionAtDepthZeroPastInitialUsesPool(t *testing.T) {
	initial := []string{"i0", "i1"}
	pool := []string{"p0", "p1", "p2"}

	if got, want := QuestionAt(initial, pool, 2, 0), "p2"; got != want {
		t.Errorf("QuestionAt(2, 0) = %q, want %q", got, want)
	}
}

func TestDefaultQuestionLists(t *testing.T) {
	if len(DefaultInitialQuestions) != 3 {
		t.Errorf("initial questions = %d, want 3", len(DefaultInitialQuestions))
	}
	if len(DefaultDeepeningQuestions) == 0 {
		t.Error("deepening pool must not be empty")
	}
}
