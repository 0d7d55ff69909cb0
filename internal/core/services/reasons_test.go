package services

import (
	"strings"
	"testing"

	"github.com/hartwell-audio/daymix/internal/core/domain"
)

func TestReasonSignalsPerIntent(t *testing.T) {
	item := fixtureItems()[0]

	book := NewReasonBook()
	_, signal := book.Reason(item, domain.IntentFocus)
	if signal != "Low distraction" {
		t.Fatalf("focus signal = %q, want %q", signal, "Low distraction")
	}

	for intent := range reasonTemplates {
		if reasonSignals[intent] == "" {
			t.Errorf("intent %s has no reason signal", intent)
		}
	}
}

func TestReasonTemplatesCoverAllIntents(t *testing.T) {
	intents := []domain.Intent{
		domain.IntentEnergy, domain.IntentFocus, domain.IntentChill,
		domain.IntentThrowback, domain.IntentDiscovery, domain.IntentReset,
		domain.IntentRamp, domain.IntentSocial,
	}
	for _, intent := range intents {
		if len(reasonTemplates[intent]) < 2 {
			t.Errorf("intent %s has %d templates, want at least 2", intent, len(reasonTemplates[intent]))
		}
	}
}

func TestReasonAntiRepetition(t *testing.T) {
	items := fixtureItems()
	book := NewReasonBook()

	// Three distinct items under the same intent must draw three
	// distinct templates before any cycling starts.
	seen := map[string]bool{}
	for _, item := range items[:3] {
		reason, _ := book.Reason(item, domain.IntentEnergy)
		if reason == "" {
			t.Fatal("primary mode produced an empty reason")
		}
		if seen[reason] {
			t.Fatalf("reason repeated within one block: %q", reason)
		}
		seen[reason] = true
	}
}

func TestReasonTemplateCycling(t *testing.T) {
	items := fixtureItems()
	book := NewReasonBook()

	count := len(reasonTemplates[domain.IntentEnergy])
	// Exhaust every template, then one more: the extra draw must cycle
	// back to index count % len == 0 rather than fail.
	for i := 0; i <= count; i++ {
		reason, _ := book.Reason(items[i%len(items)], domain.IntentEnergy)
		if reason == "" {
			t.Fatalf("draw %d produced empty reason", i)
		}
	}
}

func TestReasonHookScarcity(t *testing.T) {
	base := fixtureItems()[0]
	twin := base
	twin.ID = "twin"
	// Same hook phrase on both items: only the first explanation may
	// cite it.
	book := NewReasonBook()

	first, _ := book.Reason(base, domain.IntentEnergy)
	second, _ := book.Reason(twin, domain.IntentEnergy)

	if !strings.Contains(first, base.Profile.HookPhrase) {
		t.Fatalf("first reason should cite the hook phrase, got %q", first)
	}
	if strings.Contains(second, base.Profile.HookPhrase) {
		t.Fatalf("second reason cites an already-spent hook: %q", second)
	}
}

func TestReasonEmptyHookFallsBack(t *testing.T) {
	item := fixtureItems()[0]
	item.Profile.HookPhrase = ""

	book := NewReasonBook()
	reason, _ := book.Reason(item, domain.IntentEnergy)
	if reason == "" {
		t.Fatal("hook-free item still needs a reason")
	}
}
