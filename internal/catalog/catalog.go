// Package catalog holds the fixed item table the engine selects from.
// The table is authored here, not fetched: catalog storage is an external
// concern and this service only ever reads it.
package catalog

import (
	"github.com/hartwell-audio/daymix/internal/core/domain"
	"github.com/hartwell-audio/daymix/internal/core/ports"
)

// Static is the in-repo catalog source.
type Static struct {
	items []domain.CatalogItem
}

var _ ports.CatalogSource = (*Static)(nil)

// NewStatic returns the built-in catalog.
func NewStatic() *Static {
	return &Static{items: items}
}

// Items returns a fresh slice over the immutable catalog entries.
func (s *Static) Items() []domain.CatalogItem {
	out := make([]domain.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

func track(id string) string {
	return "https://open.spotify.com/track/" + id
}

var items = []domain.CatalogItem{
	{
		ID: "one-more-time", Title: "One More Time", Creator: "Daft Punk",
		ExternalURL: track("0DiWol3AO6WpXZgp0goxAV"),
		Tags:        []domain.Intent{domain.IntentEnergy, domain.IntentSocial, domain.IntentThrowback},
		Profile: domain.Profile{
			Genre: "french house", Era: "2000s",
			VibeWords:  []string{"euphoric", "relentless", "warm"},
			HookPhrase: "that filtered horn loop that never wears out",
			NoiseLevel: domain.NoiseHigh, Tempo: 123, Intensity: 82, Positivity: 95,
		},
	},
	{
		ID: "dog-days", Title: "Dog Days Are Over", Creator: "Florence + The Machine",
		ExternalURL: track("1YrnDTqvcnUKxAIeXyaEmU"),
		Tags:        []domain.Intent{domain.IntentEnergy, domain.IntentRamp, domain.IntentSocial},
		Profile: domain.Profile{
			Genre: "indie pop", Era: "2000s",
			VibeWords:  []string{"cathartic", "galloping", "bright"},
			HookPhrase: "the handclap break before the final chorus",
			NoiseLevel: domain.NoiseHigh, Tempo: 150, Intensity: 78, Positivity: 80,
		},
	},
	{
		ID: "dont-stop-me-now", Title: "Don't Stop Me Now", Creator: "Queen",
		ExternalURL: track("7hQJA50XrCWABAu5v6QZ4i"),
		Tags:        []domain.Intent{domain.IntentEnergy, domain.IntentThrowback, domain.IntentSocial},
		Profile: domain.Profile{
			Genre: "rock", Era: "70s",
			VibeWords:  []string{"jubilant", "breakneck", "theatrical"},
			HookPhrase: "the piano run that kicks the tempo into overdrive",
			NoiseLevel: domain.NoiseHigh, Tempo: 156, Intensity: 88, Positivity: 97,
		},
	},
	{
		ID: "titanium", Title: "Titanium", Creator: "David Guetta ft. Sia",
		ExternalURL: track("0lHAMNU8RGiIObScrsRgmP"),
		Tags:        []domain.Intent{domain.IntentEnergy, domain.IntentRamp},
		Profile: domain.Profile{
			Genre: "edm", Era: "2010s",
			VibeWords:  []string{"soaring", "defiant", "huge"},
			HookPhrase: "the drop that arrives exactly when you need it",
			NoiseLevel: domain.NoiseHigh, Tempo: 126, Intensity: 85, Positivity: 74,
		},
	},
	{
		ID: "lose-yourself", Title: "Lose Yourself", Creator: "Eminem",
		ExternalURL: track("5Z01UMMf7V1o0MzF86s6WJ"),
		Tags:        []domain.Intent{domain.IntentEnergy, domain.IntentThrowback},
		Profile: domain.Profile{
			Genre: "hip hop", Era: "2000s",
			VibeWords:  []string{"urgent", "gritty", "locked-in"},
			HookPhrase: "that guitar loop that tightens every lap",
			NoiseLevel: domain.NoiseHigh, Tempo: 171, Intensity: 90, Positivity: 55,
		},
	},
	{
		ID: "physical", Title: "Physical", Creator: "Dua Lipa",
		ExternalURL: track("3AzjcOeAmA57TIOr9zF1ZW"),
		Tags:        []domain.Intent{domain.IntentEnergy, domain.IntentSocial},
		Profile: domain.Profile{
			Genre: "dance pop", Era: "2020s",
			VibeWords:  []string{"driving", "neon", "insistent"},
			HookPhrase: "a pre-chorus that shifts up like a gear change",
			NoiseLevel: domain.NoiseHigh, Tempo: 147, Intensity: 84, Positivity: 82,
		},
	},
	{
		ID: "uptown-funk", Title: "Uptown Funk", Creator: "Mark Ronson ft. Bruno Mars",
		ExternalURL: track("32OlwWuMpZ6b0aN2RZOeMS"),
		Tags:        []domain.Intent{domain.IntentSocial, domain.IntentEnergy},
		Profile: domain.Profile{
			Genre: "funk pop", Era: "2010s",
			VibeWords:  []string{"strutting", "brassy", "grinning"},
			HookPhrase: "the horn stabs that make strangers dance",
			NoiseLevel: domain.NoiseHigh, Tempo: 115, Intensity: 80, Positivity: 96,
		},
	},
	{
		ID: "september", Title: "September", Creator: "Earth, Wind & Fire",
		ExternalURL: track("2grjqo0Frpf2okIBiifQKs"),
		Tags:        []domain.Intent{domain.IntentSocial, domain.IntentThrowback},
		Profile: domain.Profile{
			Genre: "disco funk", Era: "70s",
			VibeWords:  []string{"joyous", "gleaming", "unified"},
			HookPhrase: "the ba-dee-ya everyone sings wrong and loves anyway",
			NoiseLevel: domain.NoiseHigh, Tempo: 126, Intensity: 76, Positivity: 98,
		},
	},
	{
		ID: "dancing-queen", Title: "Dancing Queen", Creator: "ABBA",
		ExternalURL: track("0GjEhVFGZW8afUYGChu3Rr"),
		Tags:        []domain.Intent{domain.IntentSocial, domain.IntentThrowback},
		Profile: domain.Profile{
			Genre: "pop", Era: "70s",
			VibeWords:  []string{"glittering", "generous", "wistful"},
			HookPhrase: "that piano glissando straight into the chorus",
			NoiseLevel: domain.NoiseMedium, Tempo: 101, Intensity: 65, Positivity: 92,
		},
	},
	{
		ID: "mr-brightside", Title: "Mr. Brightside", Creator: "The Killers",
		ExternalURL: track("003vvx7Niy0yvhvHt4a68B"),
		Tags:        []domain.Intent{domain.IntentSocial, domain.IntentThrowback, domain.IntentEnergy},
		Profile: domain.Profile{
			Genre: "indie rock", Era: "2000s",
			VibeWords:  []string{"anthemic", "restless", "communal"},
			HookPhrase: "a first line an entire bar will shout on cue",
			NoiseLevel: domain.NoiseHigh, Tempo: 148, Intensity: 83, Positivity: 70,
		},
	},
	{
		ID: "night-owl", Title: "Night Owl", Creator: "Galimatias",
		ExternalURL: track("1Fid2jjqsHViMX6xNH70hE"),
		Tags:        []domain.Intent{domain.IntentChill, domain.IntentDiscovery},
		Profile: domain.Profile{
			Genre: "electronic soul", Era: "2010s",
			VibeWords:  []string{"velvet", "nocturnal", "patient"},
			HookPhrase: "a bassline that moves like slow water",
			NoiseLevel: domain.NoiseLow, Tempo: 92, Intensity: 35, Positivity: 60,
		},
	},
	{
		ID: "intro-xx", Title: "Intro", Creator: "The xx",
		ExternalURL: track("2usEOm7XFjrXQCDlVS7YXE"),
		Tags:        []domain.Intent{domain.IntentFocus, domain.IntentRamp, domain.IntentChill},
		Profile: domain.Profile{
			Genre: "indie electronic", Era: "2000s",
			VibeWords:  []string{"spacious", "simmering", "monochrome"},
			HookPhrase: "the guitar line that circles without ever resolving",
			NoiseLevel: domain.NoiseLow, Tempo: 100, Intensity: 45, Positivity: 50,
		},
	},
	{
		ID: "strobe", Title: "Strobe", Creator: "deadmau5",
		ExternalURL: track("1GKIlPFdcewHtpLib9gBXu"),
		Tags:        []domain.Intent{domain.IntentFocus, domain.IntentRamp},
		Profile: domain.Profile{
			Genre: "progressive house", Era: "2000s",
			VibeWords:  []string{"glacial", "cresting", "hypnotic"},
			HookPhrase: "a ten-minute build that actually earns its peak",
			NoiseLevel: domain.NoiseLow, Tempo: 128, Intensity: 60, Positivity: 62,
		},
	},
	{
		ID: "an-ending", Title: "An Ending (Ascent)", Creator: "Brian Eno",
		ExternalURL: track("6t1FK9K4lQnzqphmiWAUC2"),
		Tags:        []domain.Intent{domain.IntentReset, domain.IntentFocus, domain.IntentChill},
		Profile: domain.Profile{
			Genre: "ambient", Era: "80s",
			VibeWords:  []string{"weightless", "glowing", "still"},
			HookPhrase: "the chord swell that feels like altitude",
			NoiseLevel: domain.NoiseLow, Tempo: 60, Intensity: 10, Positivity: 70,
		},
	},
	{
		ID: "gymnopedie-1", Title: "Gymnopédie No. 1", Creator: "Erik Satie",
		ExternalURL: track("5NGtFXVpXSvwunEIGeviY3"),
		Tags:        []domain.Intent{domain.IntentFocus, domain.IntentReset, domain.IntentChill},
		Profile: domain.Profile{
			Genre: "classical", Era: "classical",
			VibeWords:  []string{"unhurried", "melancholy", "clear"},
			HookPhrase: "three notes that slow a whole room down",
			NoiseLevel: domain.NoiseLow, Tempo: 66, Intensity: 8, Positivity: 55,
		},
	},
	{
		ID: "time-inception", Title: "Time", Creator: "Hans Zimmer",
		ExternalURL: track("6ZFbXIJkuI1dVNWvzJzown"),
		Tags:        []domain.Intent{domain.IntentFocus, domain.IntentRamp},
		Profile: domain.Profile{
			Genre: "film score", Era: "2010s",
			VibeWords:  []string{"towering", "inevitable", "cinematic"},
			HookPhrase: "the same four bars growing until they fill the sky",
			NoiseLevel: domain.NoiseLow, Tempo: 62, Intensity: 55, Positivity: 58,
		},
	},
	{
		ID: "weightless", Title: "Weightless", Creator: "Marconi Union",
		ExternalURL: track("6kkwzB6hXLIONkEk9JciA6"),
		Tags:        []domain.Intent{domain.IntentReset, domain.IntentChill},
		Profile: domain.Profile{
			Genre: "ambient", Era: "2010s",
			VibeWords:  []string{"floating", "slow-breathing", "soft"},
			HookPhrase: "a pulse engineered to lower your own",
			NoiseLevel: domain.NoiseLow, Tempo: 60, Intensity: 5, Positivity: 60,
		},
	},
	{
		ID: "holocene", Title: "Holocene", Creator: "Bon Iver",
		ExternalURL: track("4fbvXwMTXPWaFyaMWUm9CR"),
		Tags:        []domain.Intent{domain.IntentChill, domain.IntentReset},
		Profile: domain.Profile{
			Genre: "indie folk", Era: "2010s",
			VibeWords:  []string{"wintry", "aching", "wide"},
			HookPhrase: "the line about being magnificent that lands like weather",
			NoiseLevel: domain.NoiseLow, Tempo: 73, Intensity: 25, Positivity: 48,
		},
	},
	{
		ID: "nightcall", Title: "Nightcall", Creator: "Kavinsky",
		ExternalURL: track("0U0ldCRmgCqhVvD6ksG63j"),
		Tags:        []domain.Intent{domain.IntentChill, domain.IntentDiscovery, domain.IntentRamp},
		Profile: domain.Profile{
			Genre: "synthwave", Era: "2010s",
			VibeWords:  []string{"chrome", "midnight", "cool"},
			HookPhrase: "the vocoder verse that sounds like a passing car",
			NoiseLevel: domain.NoiseMedium, Tempo: 94, Intensity: 50, Positivity: 45,
		},
	},
	{
		ID: "sunday-morning", Title: "Sunday Morning", Creator: "The Velvet Underground",
		ExternalURL: track("3p0Gvs8HLHWBv3lskzEqLY"),
		Tags:        []domain.Intent{domain.IntentChill, domain.IntentThrowback},
		Profile: domain.Profile{
			Genre: "art rock", Era: "60s",
			VibeWords:  []string{"hazy", "tender", "morning-lit"},
			HookPhrase: "the celesta twinkle that opens it like curtains",
			NoiseLevel: domain.NoiseLow, Tempo: 112, Intensity: 20, Positivity: 68,
		},
	},
	{
		ID: "dreams-fleetwood", Title: "Dreams", Creator: "Fleetwood Mac",
		ExternalURL: track("0ofHAoxe9vBkTCp2UQIavz"),
		Tags:        []domain.Intent{domain.IntentChill, domain.IntentThrowback, domain.IntentSocial},
		Profile: domain.Profile{
			Genre: "soft rock", Era: "70s",
			VibeWords:  []string{"spun-gold", "unbothered", "smooth"},
			HookPhrase: "a drum groove you could coast on forever",
			NoiseLevel: domain.NoiseMedium, Tempo: 120, Intensity: 40, Positivity: 72,
		},
	},
	{
		ID: "come-away", Title: "Come Away With Me", Creator: "Norah Jones",
		ExternalURL: track("75nKyKNfLHfhCWoVBpBggq"),
		Tags:        []domain.Intent{domain.IntentChill, domain.IntentFocus},
		Profile: domain.Profile{
			Genre: "jazz pop", Era: "2000s",
			VibeWords:  []string{"candlelit", "hushed", "close"},
			HookPhrase: "a voice that never rises above the table lamp",
			NoiseLevel: domain.NoiseLow, Tempo: 79, Intensity: 15, Positivity: 66,
		},
	},
	{
		ID: "la-vie-en-rose", Title: "La Vie en rose", Creator: "Édith Piaf",
		ExternalURL: track("0PDUDa38GO8lMxLCRc4lL1"),
		Tags:        []domain.Intent{domain.IntentChill, domain.IntentThrowback},
		Profile: domain.Profile{
			Genre: "chanson", Era: "40s",
			VibeWords:  []string{"rosy", "timeless", "cinema-grain"},
			HookPhrase: "strings that make any kitchen a Paris café",
			NoiseLevel: domain.NoiseLow, Tempo: 72, Intensity: 18, Positivity: 85,
		},
	},
	{
		ID: "harvest-moon", Title: "Harvest Moon", Creator: "Neil Young",
		ExternalURL: track("5LYJ631w9ps5h9tdvac7yP"),
		Tags:        []domain.Intent{domain.IntentChill, domain.IntentThrowback},
		Profile: domain.Profile{
			Genre: "folk rock", Era: "90s",
			VibeWords:  []string{"amber", "devoted", "slow-danced"},
			HookPhrase: "the brushed snare that sounds like falling leaves",
			NoiseLevel: domain.NoiseLow, Tempo: 110, Intensity: 22, Positivity: 78,
		},
	},
	{
		ID: "superstition", Title: "Superstition", Creator: "Stevie Wonder",
		ExternalURL: track("1h2xVEoJORqrg71HocgqXd"),
		Tags:        []domain.Intent{domain.IntentThrowback, domain.IntentSocial, domain.IntentEnergy},
		Profile: domain.Profile{
			Genre: "funk", Era: "70s",
			VibeWords:  []string{"swampy", "clavinet-drunk", "alive"},
			HookPhrase: "the clav riff that bends every neck in range",
			NoiseLevel: domain.NoiseHigh, Tempo: 100, Intensity: 75, Positivity: 88,
		},
	},
	{
		ID: "take-on-me", Title: "Take On Me", Creator: "a-ha",
		ExternalURL: track("2WfaOiMkCvy7F5fcp2zZ8L"),
		Tags:        []domain.Intent{domain.IntentThrowback, domain.IntentEnergy, domain.IntentSocial},
		Profile: domain.Profile{
			Genre: "synth pop", Era: "80s",
			VibeWords:  []string{"sprinting", "pencil-sketched", "sky-high"},
			HookPhrase: "that falsetto leap nobody hits and everyone tries",
			NoiseLevel: domain.NoiseHigh, Tempo: 169, Intensity: 77, Positivity: 90,
		},
	},
	{
		ID: "bohemian-like-you", Title: "Bohemian Like You", Creator: "The Dandy Warhols",
		ExternalURL: track("1GcVa4jFySlun4jLSuMhiq"),
		Tags:        []domain.Intent{domain.IntentThrowback, domain.IntentDiscovery, domain.IntentSocial},
		Profile: domain.Profile{
			Genre: "alt rock", Era: "2000s",
			VibeWords:  []string{"swaggering", "scuffed", "singalong"},
			HookPhrase: "the woo-hoos that hijack the back seat",
			NoiseLevel: domain.NoiseHigh, Tempo: 114, Intensity: 68, Positivity: 84,
		},
	},
	{
		ID: "running-up", Title: "Running Up That Hill", Creator: "Kate Bush",
		ExternalURL: track("75FEaRjZTKLhTrFGsfMUXR"),
		Tags:        []domain.Intent{domain.IntentThrowback, domain.IntentRamp},
		Profile: domain.Profile{
			Genre: "art pop", Era: "80s",
			VibeWords:  []string{"mythic", "pounding", "windswept"},
			HookPhrase: "the drum pattern that runs uphill with you",
			NoiseLevel: domain.NoiseMedium, Tempo: 108, Intensity: 62, Positivity: 58,
		},
	},
	{
		ID: "heroes", Title: "Heroes", Creator: "David Bowie",
		ExternalURL: track("7Jh1bpe76CNTCgdgAdBw4Z"),
		Tags:        []domain.Intent{domain.IntentThrowback, domain.IntentRamp},
		Profile: domain.Profile{
			Genre: "art rock", Era: "70s",
			VibeWords:  []string{"triumphant", "wall-of-sound", "defiant"},
			HookPhrase: "six minutes that build from murmur to roar",
			NoiseLevel: domain.NoiseMedium, Tempo: 112, Intensity: 66, Positivity: 75,
		},
	},
	{
		ID: "myth-beach-house", Title: "Myth", Creator: "Beach House",
		ExternalURL: track("1zB4vmk8tFRmM9UULNzbLB"),
		Tags:        []domain.Intent{domain.IntentDiscovery, domain.IntentChill, domain.IntentFocus},
		Profile: domain.Profile{
			Genre: "dream pop", Era: "2010s",
			VibeWords:  []string{"gauzy", "slow-blooming", "half-remembered"},
			HookPhrase: "the arpeggio that shimmers like heat haze",
			NoiseLevel: domain.NoiseLow, Tempo: 88, Intensity: 38, Positivity: 52,
		},
	},
	{
		ID: "redbone", Title: "Redbone", Creator: "Childish Gambino",
		ExternalURL: track("0wXuerDYiBnERgIpbb3JBR"),
		Tags:        []domain.Intent{domain.IntentDiscovery, domain.IntentChill, domain.IntentSocial},
		Profile: domain.Profile{
			Genre: "psychedelic soul", Era: "2010s",
			VibeWords:  []string{"woozy", "falsetto-lit", "late"},
			HookPhrase: "a bass tone thick enough to lean on",
			NoiseLevel: domain.NoiseMedium, Tempo: 80, Intensity: 48, Positivity: 62,
		},
	},
	{
		ID: "rainy-season", Title: "Rainy Season", Creator: "Haruka Nakamura",
		ExternalURL: track("3vPDzeqdvyGWNdrJdJMRlN"),
		Tags:        []domain.Intent{domain.IntentDiscovery, domain.IntentFocus, domain.IntentReset},
		Profile: domain.Profile{
			Genre: "modern classical", Era: "2010s",
			VibeWords:  []string{"rain-glass", "tender", "minimal"},
			HookPhrase: "piano notes spaced like drops on a window",
			NoiseLevel: domain.NoiseLow, Tempo: 70, Intensity: 12, Positivity: 57,
		},
	},
	{
		ID: "cut-your-teeth", Title: "Cut Your Teeth", Creator: "Kyla La Grange",
		ExternalURL: track("6dBUzqjtbnIa1TwYbyw5CM"),
		Tags:        []domain.Intent{domain.IntentDiscovery, domain.IntentRamp},
		Profile: domain.Profile{
			Genre: "electro pop", Era: "2010s",
			VibeWords:  []string{"coiled", "minimal", "after-dark"},
			HookPhrase: "the whispered hook that grows teeth by the end",
			NoiseLevel: domain.NoiseMedium, Tempo: 120, Intensity: 52, Positivity: 50,
		},
	},
	{
		ID: "kids-again", Title: "Kids Again", Creator: "Artist Unknown Orchestra",
		ExternalURL: track("2hJPCSrgzccUt1L5uZvBbx"),
		Tags:        []domain.Intent{domain.IntentDiscovery, domain.IntentEnergy},
		Profile: domain.Profile{
			Genre: "nu disco", Era: "2020s",
			VibeWords:  []string{"glittery", "rushing", "young"},
			HookPhrase: "a string stab lifted straight from a block party",
			NoiseLevel: domain.NoiseHigh, Tempo: 118, Intensity: 72, Positivity: 89,
		},
	},
	{
		ID: "wake-up-boniver", Title: "Perth", Creator: "Bon Iver",
		ExternalURL: track("3BcLY4cGUQEHMMTqrwU9Sq"),
		Tags:        []domain.Intent{domain.IntentRamp, domain.IntentReset},
		Profile: domain.Profile{
			Genre: "indie folk", Era: "2010s",
			VibeWords:  []string{"marching", "dawning", "layered"},
			HookPhrase: "the military snare that carries sunrise in",
			NoiseLevel: domain.NoiseMedium, Tempo: 76, Intensity: 42, Positivity: 60,
		},
	},
	{
		ID: "sunrise-norah", Title: "Sunrise", Creator: "Norah Jones",
		ExternalURL: track("1IZGdjEzfnmNYdpqfStprd"),
		Tags:        []domain.Intent{domain.IntentRamp, domain.IntentChill},
		Profile: domain.Profile{
			Genre: "jazz pop", Era: "2000s",
			VibeWords:  []string{"yawning", "buttery", "first-light"},
			HookPhrase: "a chorus that stretches like a slow morning",
			NoiseLevel: domain.NoiseLow, Tempo: 104, Intensity: 24, Positivity: 80,
		},
	},
	{
		ID: "breathe-telepopmusik", Title: "Breathe", Creator: "Télépopmusik",
		ExternalURL: track("6dfoqZwmtouAHEqSBBSUVa"),
		Tags:        []domain.Intent{domain.IntentReset, domain.IntentChill, domain.IntentDiscovery},
		Profile: domain.Profile{
			Genre: "downtempo", Era: "2000s",
			VibeWords:  []string{"airy", "looping", "calm"},
			HookPhrase: "the exhale of a refrain that resets your pulse",
			NoiseLevel: domain.NoiseLow, Tempo: 93, Intensity: 28, Positivity: 64,
		},
	},
	{
		ID: "clair-de-lune", Title: "Clair de lune", Creator: "Claude Debussy",
		ExternalURL: track("5mHdCZtVyb4DcJw8799hZp"),
		Tags:        []domain.Intent{domain.IntentReset, domain.IntentFocus},
		Profile: domain.Profile{
			Genre: "classical", Era: "classical",
			VibeWords:  []string{"moonlit", "suspended", "weightless"},
			HookPhrase: "the run that falls like light through water",
			NoiseLevel: domain.NoiseLow, Tempo: 66, Intensity: 10, Positivity: 65,
		},
	},
	{
		ID: "midnight-city", Title: "Midnight City", Creator: "M83",
		ExternalURL: track("1eyzqe2QqGZUmfcPZtrIyt"),
		Tags:        []domain.Intent{domain.IntentRamp, domain.IntentEnergy, domain.IntentSocial},
		Profile: domain.Profile{
			Genre: "synth pop", Era: "2010s",
			VibeWords:  []string{"neon", "rising", "wide-eyed"},
			HookPhrase: "the saxophone outro nobody saw coming",
			NoiseLevel: domain.NoiseHigh, Tempo: 105, Intensity: 70, Positivity: 78,
		},
	},
	{
		ID: "good-days", Title: "Good Days", Creator: "SZA",
		ExternalURL: track("4PMqSO5qyjpvzhlLI5GnID"),
		Tags:        []domain.Intent{domain.IntentChill, domain.IntentDiscovery},
		Profile: domain.Profile{
			Genre: "alt r&b", Era: "2020s",
			VibeWords:  []string{"drifting", "sunlit", "open"},
			HookPhrase: "a beat switch that feels like stepping outside",
			NoiseLevel: domain.NoiseLow, Tempo: 121, Intensity: 36, Positivity: 76,
		},
	},
}
