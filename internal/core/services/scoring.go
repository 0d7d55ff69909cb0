package services

import "github.com/hartwell-audio/daymix/internal/core/domain"

const (
	tagMatchScore     = 6.0
	discoveryBaseline = 1.0

	// Duplicate penalties: the first few blocks claim the best fits
	// outright; later blocks may reuse an item only when nothing else
	// scores competitively.
	earlyDuplicatePenalty = 100.0
	lateDuplicatePenalty  = 6.0
	earlyBlockCount       = 3
)

// situationBias maps each situation to signed intent weights. Positive
// weights nudge item scores (at half strength); negative weights exist to
// document what the situation avoids and bias only block planning, so
// items are not penalized twice.
var situationBias = map[domain.Situation]map[domain.Intent]float64{
	domain.SituationWorkingOut: {
		domain.IntentEnergy: 3,
		domain.IntentRamp:   2,
		domain.IntentChill:  -2,
	},
	domain.SituationStudying: {
		domain.IntentFocus:  3,
		domain.IntentChill:  1,
		domain.IntentEnergy: -2,
	},
	domain.SituationDinner: {
		domain.IntentChill:  2,
		domain.IntentSocial: 2,
		domain.IntentEnergy: -2,
	},
	domain.SituationParty: {
		domain.IntentEnergy: 3,
		domain.IntentSocial: 2,
		domain.IntentChill:  -3,
	},
	domain.SituationCommuting: {
		domain.IntentRamp:      2,
		domain.IntentDiscovery: 1,
	},
	domain.SituationRelaxing: {
		domain.IntentChill:  3,
		domain.IntentReset:  1,
		domain.IntentEnergy: -2,
	},
}

// Score rates one catalog item for one block. Pure: identical inputs give
// identical scores; chosen is the only cross-block state and is passed in
// explicitly.
func Score(item domain.CatalogItem, intent domain.Intent, tweak domain.Tweak, situation domain.Situation, blockIndex int, chosen map[string]bool) float64 {
	score := 0.0

	// Base intent match. Discovery matches loosely: being new to the
	// listener is not a property a tag can capture exactly.
	if item.HasTag(intent) {
		score += tagMatchScore
	}
	if intent == domain.IntentDiscovery {
		score += discoveryBaseline
	}

	switch tweak {
	case domain.TweakFavorNew:
		if item.HasTag(domain.IntentThrowback) {
			score -= 2
		} else {
			score += 2
		}
	case domain.TweakFavorFamiliar:
		if item.HasTag(domain.IntentThrowback) {
			score += 3
		}
	}

	if bias, ok := situationBias[situation]; ok {
		for _, tag := range item.Tags {
			if w := bias[tag]; w > 0 {
				score += 0.5 * w
			}
		}
	}

	score += situationNudge(item, situation)

	if chosen[item.ID] {
		if blockIndex < earlyBlockCount {
			score -= earlyDuplicatePenalty
		} else {
			score -= lateDuplicatePenalty
		}
	}

	return score
}

// situationNudge applies small additive adjustments on raw profile
// attributes for situations with strong texture requirements.
func situationNudge(item domain.CatalogItem, situation domain.Situation) float64 {
	switch situation {
	case domain.SituationStudying:
		// Low-distraction semantics.
		switch item.Profile.NoiseLevel {
		case domain.NoiseLow:
			return 2
		case domain.NoiseHigh:
			return -2
		}
	case domain.SituationParty:
		nudge := 0.0
		if item.Profile.Intensity < 55 {
			nudge -= 2
		}
		if item.Profile.Tempo < 110 {
			nudge--
		}
		return nudge
	case domain.SituationWorkingOut:
		if item.Profile.Intensity < 50 {
			return -1
		}
	case domain.SituationDinner, domain.SituationRelaxing:
		if item.Profile.Intensity > 70 {
			return -2
		}
	}
	return 0
}
