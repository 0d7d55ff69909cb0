package services

import (
	"testing"

	"github.com/hartwell-audio/daymix/internal/core/domain"
)

func TestScoreBaseMatch(t *testing.T) {
	items := fixtureItems()
	energy := items[0] // e1, tagged energy only
	chill := items[5]  // c1, tagged chill only

	none := map[string]bool{}
	if got := Score(energy, domain.IntentEnergy, domain.TweakNone, domain.SituationAuto, 0, none); got != 6 {
		t.Fatalf("tag match score = %v, want 6", got)
	}
	if got := Score(chill, domain.IntentEnergy, domain.TweakNone, domain.SituationAuto, 0, none); got != 0 {
		t.Fatalf("non-match score = %v, want 0", got)
	}
}

func TestScoreDiscoveryBaseline(t *testing.T) {
	items := fixtureItems()
	discovery := items[9] // d1
	plain := items[5]     // c1

	none := map[string]bool{}
	if got := Score(discovery, domain.IntentDiscovery, domain.TweakNone, domain.SituationAuto, 0, none); got != 7 {
		t.Fatalf("discovery tag match = %v, want 6+1", got)
	}
	// Every item gets the baseline under the discovery intent,
	// tag match or not.
	if got := Score(plain, domain.IntentDiscovery, domain.TweakNone, domain.SituationAuto, 0, none); got != 1 {
		t.Fatalf("discovery baseline = %v, want 1", got)
	}
}

func TestScoreTweaks(t *testing.T) {
	items := fixtureItems()
	throwback := items[7] // t1, tagged throwback
	fresh := items[9]     // d1, no throwback tag

	none := map[string]bool{}
	tests := []struct {
		name  string
		item  domain.CatalogItem
		tweak domain.Tweak
		want  float64
	}{
		{name: "favor_new penalizes throwbacks", item: throwback, tweak: domain.TweakFavorNew, want: 6 - 2},
		{name: "favor_new boosts everything else", item: fresh, tweak: domain.TweakFavorNew, want: 0 + 2},
		{name: "favor_familiar boosts throwbacks", item: throwback, tweak: domain.TweakFavorFamiliar, want: 6 + 3},
		{name: "favor_familiar leaves others alone", item: fresh, tweak: domain.TweakFavorFamiliar, want: 0},
		{name: "no_repeats does not touch scores", item: throwback, tweak: domain.TweakNoRepeats, want: 6},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.item, domain.IntentThrowback, tc.tweak, domain.SituationAuto, 0, none)
			if got != tc.want {
				t.Fatalf("score = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoreSituationBias(t *testing.T) {
	items := fixtureItems()
	e2 := items[1] // tags: energy, social; intensity 80

	none := map[string]bool{}
	// working_out: energy weight +3, applied at half strength per carried
	// tag; social carries no positive weight for working_out.
	got := Score(e2, domain.IntentEnergy, domain.TweakNone, domain.SituationWorkingOut, 0, none)
	want := 6.0 + 0.5*3
	if got != want {
		t.Fatalf("working_out bias score = %v, want %v", got, want)
	}
}

func TestScoreNegativeWeightsNotApplied(t *testing.T) {
	items := fixtureItems()
	c1 := items[5] // chill only, intensity 25

	none := map[string]bool{}
	// party weights chill at -3, but negative weights bias planning,
	// not item scoring. c1 still takes the raw-attribute party nudges
	// (low intensity, low tempo).
	got := Score(c1, domain.IntentChill, domain.TweakNone, domain.SituationParty, 0, none)
	want := 6.0 - 2 - 1
	if got != want {
		t.Fatalf("party score for chill item = %v, want %v", got, want)
	}
}

func TestScoreSituationNudges(t *testing.T) {
	items := fixtureItems()
	quiet := items[3] // f1: noise low, intensity 30, tempo 90
	loud := items[0]  // e1: noise high, intensity 85, tempo 150

	none := map[string]bool{}
	tests := []struct {
		name      string
		item      domain.CatalogItem
		intent    domain.Intent
		situation domain.Situation
		want      float64
	}{
		{name: "studying boosts quiet items", item: quiet, intent: domain.IntentFocus, situation: domain.SituationStudying, want: 6 + 0.5*3 + 2},
		{name: "studying penalizes loud items", item: loud, intent: domain.IntentFocus, situation: domain.SituationStudying, want: 0 - 2},
		{name: "working_out penalizes low intensity", item: quiet, intent: domain.IntentFocus, situation: domain.SituationWorkingOut, want: 6 - 1},
		{name: "dinner penalizes high intensity", item: loud, intent: domain.IntentEnergy, situation: domain.SituationDinner, want: 6 - 2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.item, tc.intent, domain.TweakNone, tc.situation, 0, none)
			if got != tc.want {
				t.Fatalf("score = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoreDuplicatePenalty(t *testing.T) {
	items := fixtureItems()
	e1 := items[0]
	chosen := map[string]bool{"e1": true}

	early := Score(e1, domain.IntentEnergy, domain.TweakNone, domain.SituationAuto, 0, chosen)
	if early != 6-earlyDuplicatePenalty {
		t.Fatalf("early duplicate score = %v, want %v", early, 6-earlyDuplicatePenalty)
	}

	late := Score(e1, domain.IntentEnergy, domain.TweakNone, domain.SituationAuto, 3, chosen)
	if late != 6-lateDuplicatePenalty {
		t.Fatalf("late duplicate score = %v, want %v", late, 6-lateDuplicatePenalty)
	}
}
