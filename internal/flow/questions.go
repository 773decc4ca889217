// Package flow sequences the guided inquiry: fixed initial questions,
// deterministically selected deepening follow-ups, committed entries,
// and the Welcome/Inquiry/Processing/Output screen transitions.
package flow

// DefaultInitialQuestions are the fixed questions every session starts
// with, asked in order at depth 0.
var DefaultInitialQuestions = []string{
	"What do you feel right now?",
	"Where do you feel it in your body?",
	"What does this feeling need?",
}

// DefaultDeepeningQuestions is the pool that follow-up questions are
// drawn from once the initial questions are answered.
var DefaultDeepeningQuestions = []string{
	"What is underneath that feeling?",
	"When did you first notice it today?",
	"If the feeling could speak, what would it say?",
	"What would it be like to let it soften a little?",
	"What is this feeling protecting you from?",
	"What small shift feels possible right now?",
}

// QuestionAt selects the question for the given position. At depth 0
// the fixed initial list is walked in order; past it, selection is a
// pure function of the two counters, so identical (index, depth) pairs
// always yield the same question.
func QuestionAt(initial, pool []string, index, depth int) string {
	if depth == 0 && index < len(initial) {
		return initial[index]
	}
	return pool[(index+depth)%len(pool)]
}
