package services

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hartwell-audio/daymix/internal/catalog"
	"github.com/hartwell-audio/daymix/internal/core/domain"
)

func testMixer() *Mixer {
	m := NewMixer(catalog.NewStatic(), DefaultItemsPerBlock, zerolog.Nop())
	m.Now = fixedClock(12, 0)
	return m
}

func testContext(overrides func(*domain.Context)) domain.Context {
	c := domain.Context{
		Bucket:      domain.BucketMorning,
		Situation:   domain.SituationAuto,
		Tweak:       domain.TweakNone,
		Engine:      domain.EnginePrimary,
		TimeLiteral: "08:30",
		LocalTime:   time.Date(2026, time.March, 14, 8, 30, 0, 0, time.UTC),
	}
	if overrides != nil {
		overrides(&c)
	}
	return c
}

func TestBuildMixDeterminism(t *testing.T) {
	m := testMixer()
	a := m.BuildMix(testContext(nil))
	b := m.BuildMix(testContext(nil))

	if !reflect.DeepEqual(a.Blocks, b.Blocks) {
		t.Fatal("two runs on the same context produced different blocks")
	}
}

func TestBuildMixMorningExample(t *testing.T) {
	// time=08:30, situation=auto, tweak=none.
	m := testMixer()
	res := m.BuildMix(testContext(nil))

	if res.Bucket != domain.BucketMorning {
		t.Fatalf("bucket = %s, want morning", res.Bucket)
	}
	if res.LocalTimeDisplay != "8:30 AM" {
		t.Fatalf("local time display = %q, want %q", res.LocalTimeDisplay, "8:30 AM")
	}
	if len(res.Blocks) == 0 {
		t.Fatal("no blocks returned")
	}

	first := res.Blocks[0]
	wantIntent := PlanBlocks(domain.BucketMorning, domain.SituationAuto)[0].Intent
	if wantIntent != domain.IntentEnergy {
		t.Fatalf("first morning preset intent = %s, want energy", wantIntent)
	}
	if len(first.Items) != DefaultItemsPerBlock {
		t.Fatalf("first block has %d items, want %d", len(first.Items), DefaultItemsPerBlock)
	}
	for _, si := range first.Items {
		if si.Reason == "" {
			t.Errorf("primary mode item %s has empty reason", si.Item.ID)
		}
	}
}

func TestBuildMixCardinality(t *testing.T) {
	m := testMixer()
	for _, situation := range []domain.Situation{
		domain.SituationAuto, domain.SituationWorkingOut, domain.SituationStudying,
		domain.SituationDinner, domain.SituationParty, domain.SituationCommuting,
		domain.SituationRelaxing,
	} {
		res := m.BuildMix(testContext(func(c *domain.Context) { c.Situation = situation }))
		for _, block := range res.Blocks {
			if len(block.Items) != DefaultItemsPerBlock {
				t.Errorf("situation %s block %s has %d items, want %d",
					situation, block.ID, len(block.Items), DefaultItemsPerBlock)
			}
		}
	}
}

func TestBuildMixNoRepeatsLaw(t *testing.T) {
	m := testMixer()
	res := m.BuildMix(testContext(func(c *domain.Context) { c.Tweak = domain.TweakNoRepeats }))

	// Catalog holds 40 items; 5 blocks x 5 items fits without reuse.
	seen := map[string]bool{}
	for _, block := range res.Blocks {
		for _, si := range block.Items {
			if seen[si.Item.ID] {
				t.Fatalf("item %s appears twice under no_repeats", si.Item.ID)
			}
			seen[si.Item.ID] = true
		}
	}
}

func TestBuildMixSituationOverride(t *testing.T) {
	m := testMixer()
	for _, literal := range []string{"08:30", "23:00"} {
		res := m.BuildMix(testContext(func(c *domain.Context) {
			c.Situation = domain.SituationWorkingOut
			c.TimeLiteral = literal
		}))
		want := situationPresets[domain.SituationWorkingOut]
		if len(res.Blocks) != len(want) {
			t.Fatalf("block count = %d, want %d", len(res.Blocks), len(want))
		}
		for i, block := range res.Blocks {
			if block.Title != want[i].Title {
				t.Fatalf("block %d title = %q, want preset %q regardless of time", i, block.Title, want[i].Title)
			}
		}
	}
}

func TestBuildMixHookScarcityPerBlock(t *testing.T) {
	m := testMixer()
	res := m.BuildMix(testContext(nil))

	for _, block := range res.Blocks {
		hooks := map[string]int{}
		for _, si := range block.Items {
			hook := si.Item.Profile.HookPhrase
			if hook == "" {
				continue
			}
			if strings.Contains(si.Reason, hook) {
				hooks[hook]++
			}
		}
		for hook, n := range hooks {
			if n > 1 {
				t.Errorf("block %s cites hook %q in %d reasons", block.ID, hook, n)
			}
		}
	}
}

func TestBuildMixBaselineMode(t *testing.T) {
	m := testMixer()
	res := m.BuildMix(testContext(func(c *domain.Context) { c.Engine = domain.EngineBaseline }))

	genericTitles := map[string]bool{}
	for _, spec := range baselineTitles {
		genericTitles[spec.Title] = true
	}

	for _, block := range res.Blocks {
		if !genericTitles[block.Title] {
			t.Errorf("baseline block title %q is not from the generic rotation", block.Title)
		}
		if block.WhyNow != "" {
			t.Errorf("baseline block %s has why_now %q", block.ID, block.WhyNow)
		}
		for _, si := range block.Items {
			if si.Reason != "" || si.ReasonSignal != "" {
				t.Errorf("baseline item %s carries an explanation", si.Item.ID)
			}
		}
	}
}

func TestBuildMixWhyNowMentionsContext(t *testing.T) {
	m := testMixer()
	res := m.BuildMix(testContext(func(c *domain.Context) { c.Situation = domain.SituationStudying }))
	for _, block := range res.Blocks {
		if block.WhyNow == "" {
			t.Errorf("block %s missing why_now", block.ID)
		}
	}
}
