package services

import (
	"fmt"

	"github.com/hartwell-audio/daymix/internal/core/domain"
)

// reasonTemplate produces one explanation sentence. Every template is
// written as a hook/no-hook pair: With may cite the item's hook phrase,
// Without must read well when the phrase is already spent.
type reasonTemplate struct {
	With    func(item domain.CatalogItem) string
	Without func(item domain.CatalogItem) string
}

func leadVibe(item domain.CatalogItem) string {
	if len(item.Profile.VibeWords) > 0 {
		return item.Profile.VibeWords[0]
	}
	return item.Profile.Genre
}

// reasonTemplates holds the fixed ordered template lists per intent.
var reasonTemplates = map[domain.Intent][]reasonTemplate{
	domain.IntentEnergy: {
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Comes in hot at %d BPM, and %s keeps it there.", i.Profile.Tempo, i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Comes in hot at %d BPM and never lets up.", i.Profile.Tempo)
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Pure %s fuel, worth it alone for %s.", leadVibe(i), i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Pure %s fuel from the first bar to the last.", leadVibe(i))
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("An instant lift whenever the meter dips, thanks to %s.", i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("An instant lift from %s whenever the meter dips.", i.Creator)
			},
		},
	},
	domain.IntentFocus: {
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Sits behind your work without going soft, and %s rewards the rare moment you tune in.", i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return "Sits behind your work without going soft."
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("A steady %d BPM with nothing grabbing for attention, just %s.", i.Profile.Tempo, i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("A steady %d BPM with nothing grabbing for attention.", i.Profile.Tempo)
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("%s without demanding anything back; %s does the heavy lifting quietly.", capitalize(leadVibe(i)), i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("%s without demanding anything back.", capitalize(leadVibe(i)))
			},
		},
	},
	domain.IntentChill: {
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Soft edges and no hurry, plus %s.", i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return "Soft edges and no hurry anywhere in it."
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("The kind of %s that lowers the room's shoulders; %s helps.", leadVibe(i), i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("The kind of %s that lowers the room's shoulders.", leadVibe(i))
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("%s at an unhurried %d BPM, built around %s.", capitalize(i.Profile.Genre), i.Profile.Tempo, i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("%s at an unhurried %d BPM.", capitalize(i.Profile.Genre), i.Profile.Tempo)
			},
		},
	},
	domain.IntentThrowback: {
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Straight out of the %s, and %s still lands.", i.Profile.Era, i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Straight out of the %s and it still lands.", i.Profile.Era)
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("A %s staple you already know by heart, down to %s.", i.Profile.Era, i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("A %s staple you already know by heart.", i.Profile.Era)
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("%s aged better than most of the %s; %s is why.", i.Title, i.Profile.Era, i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("%s aged better than most of the %s.", i.Title, i.Profile.Era)
			},
		},
	},
	domain.IntentDiscovery: {
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Probably new to you, and %s makes a strong first impression.", i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Probably new to you, from the %s side of %s.", leadVibe(i), i.Profile.Genre)
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("If you like %s, %s will make the case for %s.", i.Profile.Genre, i.Profile.HookPhrase, i.Creator)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("If you like %s, %s deserves a first listen.", i.Profile.Genre, i.Creator)
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("A left-field pick that earns its slot with %s.", i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return "A left-field pick that earns its slot fast."
			},
		},
	},
	domain.IntentReset: {
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Three minutes of clean air; %s does most of the clearing.", i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return "Three minutes of clean air between whatever came before and whatever is next."
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("A palate cleanser with %s tucked inside.", i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("A palate cleanser in %s form.", leadVibe(i))
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Drops the tempo to %d and lets %s do the rest.", i.Profile.Tempo, i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Drops the tempo to %d and holds it there.", i.Profile.Tempo)
			},
		},
	},
	domain.IntentRamp: {
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Starts quiet and climbs; by the time %s arrives you're moving.", i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return "Starts quiet and climbs until you're moving."
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("A %d BPM on-ramp, with %s as the merge point.", i.Profile.Tempo, i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("A %d BPM on-ramp to wherever you're headed.", i.Profile.Tempo)
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Builds like a %s sunrise; %s is the payoff.", leadVibe(i), i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Builds steadily without ever tipping into %s overload.", leadVibe(i))
			},
		},
	},
	domain.IntentSocial: {
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("A room-filler everyone half knows, and %s seals it.", i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return "A room-filler everyone in the room half knows."
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("Keeps conversation moving without fighting it; %s is the bit people hum later.", i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return "Keeps conversation moving without fighting it."
			},
		},
		{
			With: func(i domain.CatalogItem) string {
				return fmt.Sprintf("%s from %s that plays well to a crowd, especially %s.", capitalize(i.Profile.Genre), i.Creator, i.Profile.HookPhrase)
			},
			Without: func(i domain.CatalogItem) string {
				return fmt.Sprintf("%s from %s that plays well to a crowd.", capitalize(i.Profile.Genre), i.Creator)
			},
		},
	},
}

// reasonSignals are fixed per-intent category tags, independent of the
// generated sentence.
var reasonSignals = map[domain.Intent]string{
	domain.IntentEnergy:    "High energy",
	domain.IntentFocus:     "Low distraction",
	domain.IntentChill:     "Easy listening",
	domain.IntentThrowback: "Familiar favorite",
	domain.IntentDiscovery: "Something new",
	domain.IntentReset:     "Quick reset",
	domain.IntentRamp:      "Steady build",
	domain.IntentSocial:    "Crowd friendly",
}

// ReasonBook tracks which templates and hook phrases one block has
// already spent, so no two explanations in a block repeat a template or
// cite the same hook. Scope is a single block; build a fresh one per block.
type ReasonBook struct {
	usedTemplates map[domain.Intent]map[int]bool
	counts        map[domain.Intent]int
	usedHooks     map[string]bool
}

// NewReasonBook returns an empty per-block book.
func NewReasonBook() *ReasonBook {
	return &ReasonBook{
		usedTemplates: map[domain.Intent]map[int]bool{},
		counts:        map[domain.Intent]int{},
		usedHooks:     map[string]bool{},
	}
}

// Reason produces the explanation sentence and signal tag for one
// selected item.
func (b *ReasonBook) Reason(item domain.CatalogItem, intent domain.Intent) (string, string) {
	templates := reasonTemplates[intent]
	if len(templates) == 0 {
		return "", reasonSignals[intent]
	}

	idx := b.pickTemplate(intent, len(templates))
	tpl := templates[idx]

	hook := item.Profile.HookPhrase
	if hook != "" && !b.usedHooks[hook] {
		b.usedHooks[hook] = true
		return tpl.With(item), reasonSignals[intent]
	}
	return tpl.Without(item), reasonSignals[intent]
}

// pickTemplate prefers the first unused template index; once every
// template has been used it cycles by count mod template-count.
func (b *ReasonBook) pickTemplate(intent domain.Intent, count int) int {
	used := b.usedTemplates[intent]
	if used == nil {
		used = map[int]bool{}
		b.usedTemplates[intent] = used
	}

	idx := -1
	for i := 0; i < count; i++ {
		if !used[i] {
			idx = i
			break
		}
	}
	if idx == -1 {
		idx = b.counts[intent] % count
	}

	used[idx] = true
	b.counts[intent]++
	return idx
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
