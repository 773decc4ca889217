// Package summary defines the summarization wire contract and the two
// sides of it: the HTTP client used by the inquiry flow and the proxy
// server that delegates to a language model or echoes deterministically.
package summary

import "strings"

// Entry is one committed question/answer pair with its deepening depth.
// Depth 0 marks the fixed initial questions, >=1 the follow-ups.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Depth    int    `json:"depth"`
}

// Result is the five-field narrative summary for the depth-aware flow.
type Result struct {
	CoreFeeling    string `json:"coreFeeling"`
	BodyWisdom     string `json:"bodyWisdom"`
	UnderlyingNeed string `json:"underlyingNeed"`
	Integration    string `json:"integration"`
	Shift          string `json:"shift"`
}

// Empty reports whether no field of the result carries text.
func (r Result) Empty() bool {
	return r.CoreFeeling == "" && r.BodyWisdom == "" && r.UnderlyingNeed == "" &&
		r.Integration == "" && r.Shift == ""
}

// SimpleResult is the three-field summary for the simplified flow.
type SimpleResult struct {
	Feeling  string `json:"feeling"`
	Location string `json:"location"`
	Need     string `json:"need"`
}

// Empty reports whether no field of the result carries text.
func (r SimpleResult) Empty() bool {
	return r.Feeling == "" && r.Location == "" && r.Need == ""
}

// Request is a summarization request body. Modern clients send Entries;
// the legacy flat shape is still accepted and normalized on the server.
type Request struct {
	Entries []Entry `json:"entries,omitempty"`

	// Legacy flat shape.
	WhatYouFeel    string `json:"whatYouFeel,omitempty"`
	WhereYouFeelIt string `json:"whereYouFeelIt,omitempty"`
	WhatItNeeds    string `json:"whatItNeeds,omitempty"`
}

// Normalize returns the modern entry list for the request. Legacy
// fields are converted in order; missing or empty ones are dropped.
func (r Request) Normalize() []Entry {
	if len(r.Entries) > 0 {
		return r.Entries
	}

	var entries []Entry
	add := func(question, answer string) {
		if strings.TrimSpace(answer) == "" {
			return
		}
		entries = append(entries, Entry{Question: question, Answer: answer})
	}
	add("What do you feel right now?", r.WhatYouFeel)
	add("Where do you feel it in your body?", r.WhereYouFeelIt)
	add("What does this feeling need?", r.WhatItNeeds)
	return entries
}

// StripCodeFence removes a Markdown code fence wrapper from a model
// reply, returning the inner payload. Replies without a fence pass
// through trimmed.
func StripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if i := strings.Index(trimmed, "\n"); i >= 0 {
		trimmed = trimmed[i+1:] // drop the language tag line
	} else {
		trimmed = strings.TrimSpace(trimmed)
	}
	if i := strings.LastIndex(trimmed, "```"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return strings.TrimSpace(trimmed)
}
