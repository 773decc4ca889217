package summary

import "testing"

func TestNormalizePrefersModernShape(t *testing.T) {
	req := Request{
		Entries:     []Entry{{Question: "q1", Answer: "a1", Depth: 0}},
		WhatYouFeel: "ignored",
	}
	entries := req.Normalize()
	if len(entries) != 1 || entries[0].Answer != "a1" {
		t.Errorf("Normalize() = %+v, want the modern entries untouched", entries)
	}
}

func TestNormalizeLegacyShape(t *testing.T) {
	req := Request{
		WhatYouFeel:    "tightness",
		WhereYouFeelIt: "chest",
		WhatItNeeds:    "rest",
	}
	entries := req.Normalize()
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	if entries[0].Answer != "tightness" || entries[1].Answer != "chest" || entries[2].Answer != "rest" {
		t.Errorf("legacy answers out of order: %+v", entries)
	}
	for i, e := range entries {
		if e.Depth != 0 {
			t.Errorf("entries[%d].Depth = %d, want 0", i, e.Depth)
		}
		if e.Question == "" {
			t.Errorf("entries[%d].Question is empty", i)
		}
	}
}

func TestNormalizeDropsEmptyLegacyFields(t *testing.T) {
	req := Request{
		WhatYouFeel: "heaviness",
		WhatItNeeds: "   ", // whitespace-only is dropped too
	}
	entries := req.Normalize()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Answer != "heaviness" {
		t.Errorf("entries[0].Answer = %q", entries[0].Answer)
	}
}

func TestNormalizeEmptyRequest(t *testing.T) {
	if entries := (Request{}).Normalize(); len(entries) != 0 {
		t.Errorf("entries = %v, want none", entries)
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain JSON", `{"coreFeeling":"calm"}`, `{"coreFeeling":"calm"}`},
		{"fenced", "```\n{\"coreFeeling\":\"calm\"}\n```", `{"coreFeeling":"calm"}`},
		{"fenced with language tag", "```json\n{\"coreFeeling\":\"calm\"}\n```", `{"coreFeeling":"calm"}`},
		{"surrounding whitespace", "  \n```json\n{}\n```\n  ", "{}"},
		{"no closing fence", "```json\n{}", "{}"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.input); got != tt.want {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResultEmpty(t *testing.T) {
	if !(Result{}).Empty() {
		t.Error("zero Result should be empty")
	}
	if (Result{Shift: "x"}).Empty() {
		t.Error("Result with a field should not be empty")
	}
}
