package domain

import (
	"regexp"
	"strings"
	"time"
)

// TimeBucket is a named slice of the day used as default temporal context.
type TimeBucket string

const (
	BucketMorning   TimeBucket = "morning"
	BucketMidday    TimeBucket = "midday"
	BucketEvening   TimeBucket = "evening"
	BucketLateNight TimeBucket = "late_night"
)

// Situation is a user-declared activity label. If set to anything other than
// SituationAuto it overrides time-of-day as the primary driver of block selection.
type Situation string

const (
	SituationAuto       Situation = "auto"
	SituationWorkingOut Situation = "working_out"
	SituationStudying   Situation = "studying"
	SituationDinner     Situation = "dinner"
	SituationParty      Situation = "party"
	SituationCommuting  Situation = "commuting"
	SituationRelaxing   Situation = "relaxing"
)

// Tweak is a user-declared global bias affecting novelty vs. familiarity
// and duplicate tolerance across blocks.
type Tweak string

const (
	TweakNone          Tweak = "none"
	TweakFavorNew      Tweak = "favor_new"
	TweakFavorFamiliar Tweak = "favor_familiar"
	TweakNoRepeats     Tweak = "no_repeats"
)

// EngineMode selects between the explaining engine and a generic,
// unexplained comparison feed.
type EngineMode string

const (
	EnginePrimary  EngineMode = "primary"
	EngineBaseline EngineMode = "baseline"
)

// Intent is the semantic purpose of one block. Blocks filter and score
// catalog items against it; items declare the intents they match via Tags.
type Intent string

const (
	IntentEnergy    Intent = "energy"
	IntentFocus     Intent = "focus"
	IntentChill     Intent = "chill"
	IntentThrowback Intent = "throwback"
	IntentDiscovery Intent = "discovery"
	IntentReset     Intent = "reset"
	IntentRamp      Intent = "ramp"
	IntentSocial    Intent = "social"
)

// Context carries the fully normalized request context. Immutable once built.
type Context struct {
	Bucket    TimeBucket
	Situation Situation
	Tweak     Tweak
	Engine    EngineMode

	// TimeLiteral is the raw HH:MM override when one was given and valid,
	// or the literal token "now". It feeds seed derivation only.
	TimeLiteral string

	// LocalTime is the resolved wall-clock time the bucket was derived from.
	LocalTime time.Time
}

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ValidClock reports whether raw is a well-formed 24-hour HH:MM string.
func ValidClock(raw string) bool {
	return clockPattern.MatchString(raw)
}

// BucketForMinutes maps minutes-since-midnight to a TimeBucket.
// Minutes in [120,420) (02:00-07:00) classify as late_night; there is
// no pre-dawn bucket.
func BucketForMinutes(m int) TimeBucket {
	switch {
	case m >= 420 && m < 720:
		return BucketMorning
	case m >= 720 && m < 1020:
		return BucketMidday
	case m >= 1020 && m < 1320:
		return BucketEvening
	default:
		return BucketLateNight
	}
}

// situationAliases resolves free-text situation tokens to the fixed
// vocabulary. Unrecognized tokens resolve to SituationAuto.
var situationAliases = map[string]Situation{
	"working_out": SituationWorkingOut,
	"workout":     SituationWorkingOut,
	"gym":         SituationWorkingOut,
	"exercise":    SituationWorkingOut,
	"running":     SituationWorkingOut,
	"studying":    SituationStudying,
	"study":       SituationStudying,
	"homework":    SituationStudying,
	"reading":     SituationStudying,
	"dinner":      SituationDinner,
	"cooking":     SituationDinner,
	"date_night":  SituationDinner,
	"party":       SituationParty,
	"pregame":     SituationParty,
	"commuting":   SituationCommuting,
	"commute":     SituationCommuting,
	"driving":     SituationCommuting,
	"travel":      SituationCommuting,
	"relaxing":    SituationRelaxing,
	"relax":       SituationRelaxing,
	"chill":       SituationRelaxing,
	"unwind":      SituationRelaxing,
	"winding_down": SituationRelaxing,
}

var tokenSeparators = strings.NewReplacer("-", "_", " ", "_")

// ParseSituation normalizes a raw situation string: lowercase, trim,
// collapse whitespace and hyphens to underscores, then resolve through
// the alias table.
func ParseSituation(raw string) Situation {
	token := strings.ToLower(strings.TrimSpace(raw))
	token = tokenSeparators.Replace(strings.Join(strings.Fields(token), " "))
	if s, ok := situationAliases[token]; ok {
		return s
	}
	return SituationAuto
}

// ParseTweak resolves a raw tweak value, falling back to TweakNone.
func ParseTweak(raw string) Tweak {
	switch Tweak(strings.ToLower(strings.TrimSpace(raw))) {
	case TweakFavorNew:
		return TweakFavorNew
	case TweakFavorFamiliar:
		return TweakFavorFamiliar
	case TweakNoRepeats:
		return TweakNoRepeats
	default:
		return TweakNone
	}
}

// ParseEngineMode resolves a raw engine value, falling back to EnginePrimary.
func ParseEngineMode(raw string) EngineMode {
	if EngineMode(strings.ToLower(strings.TrimSpace(raw))) == EngineBaseline {
		return EngineBaseline
	}
	return EnginePrimary
}
