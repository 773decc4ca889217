package flow

import (
	"fmt"

	"github.com/roseyseyewear/what-do-you-feel/internal/summary"
)

// Placeholder fills summary fields that no answer covers.
const Placeholder = "(not put into words this time)"

// Fallback synthesizes a summary deterministically from the committed
// entries. It is a pure function so the no-network path is testable in
// isolation, and it is what keeps Processing from ever ending in a
// visible error state.
func Fallback(entries []summary.Entry) summary.Result {
	var initial, deeper []summary.Entry
	for _, e := range entries {
		if e.Depth == 0 {
			initial = append(initial, e)
		} else {
			deeper = append(deeper, e)
		}
	}

	pick := func(list []summary.Entry, i int) string {
		if i < len(list) {
			return list[i].Answer
		}
		return Placeholder
	}

	need := pick(initial, 2)
	if len(deeper) > 0 {
		need = deeper[len(deeper)-1].Answer
	}

	var integration, shift string
	if len(deeper) > 0 {
		integration = fmt.Sprintf(
			"Across %d answers you stayed with the feeling past the surface. Let what came up in the deeper questions settle next to what you first named.",
			len(entries))
		shift = "Notice whether naming what sits underneath has already loosened its hold a little."
	} else {
		integration = fmt.Sprintf(
			"You put %d things about this feeling into words. Having them in words at all is a step toward the feeling, not away from it.",
			len(entries))
		shift = "When you are ready, ask what one small shift the feeling is pointing to."
	}

	return summary.Result{
		CoreFeeling:    pick(initial, 0),
		BodyWisdom:     pick(initial, 1),
		UnderlyingNeed: need,
		Integration:    integration,
		Shift:          shift,
	}
}
