package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hartwell-audio/daymix/internal/core/domain"
	"github.com/hartwell-audio/daymix/internal/core/ports"
)

// DefaultItemsPerBlock is how many items each block carries when the
// catalog is large enough.
const DefaultItemsPerBlock = 5

// baselineTitles is the generic label rotation used in baseline mode to
// simulate an opaque feed, decoupled from any situational semantics.
var baselineTitles = []domain.BlockSpec{
	{Title: "Daily Mix", Subtitle: "Based on your listening"},
	{Title: "Made For You", Subtitle: "A personalized selection"},
	{Title: "Popular Right Now", Subtitle: "What everyone is playing"},
	{Title: "Your Mix", Subtitle: "Songs you might like"},
	{Title: "On Repeat", Subtitle: "More of what you know"},
}

var bucketPhrases = map[domain.TimeBucket]string{
	domain.BucketMorning:   "It's morning",
	domain.BucketMidday:    "It's the middle of the day",
	domain.BucketEvening:   "The evening is settling in",
	domain.BucketLateNight: "It's late",
}

var situationPhrases = map[domain.Situation]string{
	domain.SituationWorkingOut: "You're working out",
	domain.SituationStudying:   "You're studying",
	domain.SituationDinner:     "It's dinner time",
	domain.SituationParty:      "You've got people over",
	domain.SituationCommuting:  "You're on the move",
	domain.SituationRelaxing:   "You're off the clock",
}

var intentLeans = map[domain.Intent]string{
	domain.IntentEnergy:    "toward tracks that push the pace",
	domain.IntentFocus:     "toward tracks that stay out of your way",
	domain.IntentChill:     "toward softer, slower picks",
	domain.IntentThrowback: "toward songs you already trust",
	domain.IntentDiscovery: "toward things you haven't heard yet",
	domain.IntentReset:     "toward short, clearing listens",
	domain.IntentRamp:      "toward builds instead of drops",
	domain.IntentSocial:    "toward picks a whole room can agree on",
}

// Mixer runs one full engine pass: plan, select, explain, assemble.
// It is a pure function of its inputs plus the immutable catalog; the
// only injected impurity is the clock used for the GeneratedAt stamp.
type Mixer struct {
	catalog       ports.CatalogSource
	itemsPerBlock int
	logger        zerolog.Logger
	Now           func() time.Time
}

// NewMixer constructs a Mixer over a catalog source.
func NewMixer(catalog ports.CatalogSource, itemsPerBlock int, logger zerolog.Logger) *Mixer {
	if itemsPerBlock < 1 {
		itemsPerBlock = DefaultItemsPerBlock
	}
	return &Mixer{
		catalog:       catalog,
		itemsPerBlock: itemsPerBlock,
		logger:        logger.With().Str("component", "mixer").Logger(),
		Now:           time.Now,
	}
}

// BuildMix produces the full response for a resolved context. It cannot
// fail: every malformed input was already normalized away by the
// resolver, and the catalog is immutable.
func (m *Mixer) BuildMix(reqCtx domain.Context) domain.MixResult {
	items := m.catalog.Items()
	seed := DeriveSeed(reqCtx)
	specs := PlanBlocks(reqCtx.Bucket, reqCtx.Situation)

	m.logger.Debug().
		Uint32("seed", seed).
		Str("bucket", string(reqCtx.Bucket)).
		Str("situation", string(reqCtx.Situation)).
		Str("tweak", string(reqCtx.Tweak)).
		Str("engine", string(reqCtx.Engine)).
		Int("blocks", len(specs)).
		Msg("building mix")

	blocks := make([]domain.Block, 0, len(specs))
	state := NewSelectionState()
	for i, spec := range specs {
		var picked []domain.CatalogItem
		picked, state = Pick(items, blockSeed(seed, i), spec.Intent, reqCtx.Tweak, reqCtx.Situation, i, m.itemsPerBlock, state)
		blocks = append(blocks, m.assembleBlock(reqCtx, spec, i, picked))
	}

	return domain.MixResult{
		GeneratedAt:      m.Now().UTC(),
		LocalTimeDisplay: reqCtx.LocalTime.Format("3:04 PM"),
		Bucket:           reqCtx.Bucket,
		Blocks:           blocks,
	}
}

func (m *Mixer) assembleBlock(reqCtx domain.Context, spec domain.BlockSpec, index int, picked []domain.CatalogItem) domain.Block {
	selected := make([]domain.SelectedItem, 0, len(picked))
	book := NewReasonBook()
	for _, item := range picked {
		si := domain.SelectedItem{Item: item}
		if reqCtx.Engine == domain.EnginePrimary {
			si.Reason, si.ReasonSignal = book.Reason(item, spec.Intent)
		}
		selected = append(selected, si)
	}

	block := domain.Block{
		ID:    fmt.Sprintf("%s-%d", spec.Intent, index),
		Items: selected,
	}
	if reqCtx.Engine == domain.EngineBaseline {
		generic := baselineTitles[index%len(baselineTitles)]
		block.Title = generic.Title
		block.Subtitle = generic.Subtitle
		return block
	}

	block.Title = spec.Title
	block.Subtitle = spec.Subtitle
	block.WhyNow = whyNow(reqCtx, spec.Intent)
	return block
}

// whyNow explains the block itself: the declared situation when there is
// one, otherwise the time of day, plus the direction the intent leans.
func whyNow(reqCtx domain.Context, intent domain.Intent) string {
	phrase, ok := situationPhrases[reqCtx.Situation]
	if !ok {
		phrase = bucketPhrases[reqCtx.Bucket]
	}
	return fmt.Sprintf("%s, so this one leans %s.", phrase, intentLeans[intent])
}
