package flow

import (
	"strings"
	"testing"

	"github.com/roseyseyewear/what-do-you-feel/internal/summary"
)

func TestFallbackThreeInitialAnswers(t *testing.T) {
	entries := []summary.Entry{
		{Question: "q1", Answer: "a1", Depth: 0},
		{Question: "q2", Answer: "a2", Depth: 0},
		{Question: "q3", Answer: "a3", Depth: 0},
	}

	got := Fallback(entries)
	if got.CoreFeeling != "a1" {
		t.Errorf("CoreFeeling = %q, want %q", got.CoreFeeling, "a1")
	}
	if got.BodyWisdom != "a2" {
		t.Errorf("BodyWisdom = %q, want %q", got.BodyWisdom, "a2")
	}
	if got.UnderlyingNeed != "a3" {
		t.Errorf("UnderlyingNeed = %q, want %q", got.UnderlyingNeed, "a3")
	}
	if !strings.Contains(got.Integration, "3") {
		t.Errorf("Integration should mention the entry count: %q", got.Integration)
	}
}

func TestFallbackDeepeningAnswerWinsTertiary(t *testing.T) {
	entries := []summary.Entry{
		{Question: "q1", Answer: "a1", Depth: 0},
		{Question: "q2", Answer: "a2", Depth: 0},
		{Question: "q3", Answer: "a3", Depth: 0},
		{Question: "q4", Answer: "a4", Depth: 1},
	}

	got := Fallback(entries)
	if got.UnderlyingNeed != "a4" {
		t.Errorf("UnderlyingNeed = %q, want the deepening answer %q", got.UnderlyingNeed, "a4")
	}
	// The narrative template differs once deepening happened.
	noDeeper := Fallback(entries[:3])
	if got.Integration == noDeeper.Integration {
		t.Error("deepening should select the deeper integration template")
	}
}

func TestFallbackLastDeepeningAnswerUsed(t *testing.T) {
	entries := []summary.Entry{
		{Question: "q1", Answer: "a1", Depth: 0},
		{Question: "d1", Answer: "first deep", Depth: 1},
		{Question: "d2", Answer: "last deep", Depth: 1},
	}
	if got := Fallback(entries).UnderlyingNeed; got != "last deep" {
		t.Errorf("UnderlyingNeed = %q, want %q", got, "last deep")
	}
}

func TestFallbackEmptyEntries(t *testing.T) {
	got := Fallback(nil)
	if got.CoreFeeling != Placeholder || got.BodyWisdom != Placeholder || got.UnderlyingNeed != Placeholder {
		t.Errorf("empty entries should yield placeholders, got %+v", got)
	}
	if got.Integration == "" || got.Shift == "" {
		t.Error("narrative fields must never be empty")
	}
}

func TestFallbackIsDeterministic(t *testing.T) {
	entries := []summary.Entry{
		{Question: "q1", Answer: "a1", Depth: 0},
		{Question: "d1", Answer: "d", Depth: 2},
	}
	if Fallback(entries) != Fallback(entries) {
		t.Error("fallback must be deterministic for identical entries")
	}
}

func TestFallbackTwoInitialOnly(t *testing.T) {
	entries := []summary.Entry{
		{Question: "q1", Answer: "a1", Depth: 0},
		{Question: "q2", Answer: "a2", Depth: 0},
	}
	got := Fallback(entries)
	if got.UnderlyingNeed != Placeholder {
		t.Errorf("UnderlyingNeed = %q, want placeholder with only two initial answers", got.UnderlyingNeed)
	}
}
