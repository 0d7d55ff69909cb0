package services

import "github.com/hartwell-audio/daymix/internal/core/domain"

// fixtureItems is a small catalog used across engine tests. Twelve items,
// enough to fill two five-item blocks without repeats.
func fixtureItems() []domain.CatalogItem {
	mk := func(id string, tags []domain.Intent, noise domain.NoiseLevel, tempo, intensity int, hook string) domain.CatalogItem {
		return domain.CatalogItem{
			ID:          id,
			Title:       "Title " + id,
			Creator:     "Creator " + id,
			ExternalURL: "https://open.spotify.com/track/" + id,
			Tags:        tags,
			Profile: domain.Profile{
				Genre:      "genre",
				Era:        "90s",
				VibeWords:  []string{"vivid"},
				HookPhrase: hook,
				NoiseLevel: noise,
				Tempo:      tempo,
				Intensity:  intensity,
				Positivity: 50,
			},
		}
	}

	return []domain.CatalogItem{
		mk("e1", []domain.Intent{domain.IntentEnergy}, domain.NoiseHigh, 150, 85, "hook e1"),
		mk("e2", []domain.Intent{domain.IntentEnergy, domain.IntentSocial}, domain.NoiseHigh, 128, 80, "hook e2"),
		mk("e3", []domain.Intent{domain.IntentEnergy, domain.IntentThrowback}, domain.NoiseHigh, 140, 75, "hook e3"),
		mk("f1", []domain.Intent{domain.IntentFocus}, domain.NoiseLow, 90, 30, "hook f1"),
		mk("f2", []domain.Intent{domain.IntentFocus, domain.IntentChill}, domain.NoiseLow, 80, 20, "hook f2"),
		mk("c1", []domain.Intent{domain.IntentChill}, domain.NoiseLow, 75, 25, "hook c1"),
		mk("c2", []domain.Intent{domain.IntentChill, domain.IntentReset}, domain.NoiseLow, 70, 15, "hook c2"),
		mk("t1", []domain.Intent{domain.IntentThrowback}, domain.NoiseMedium, 110, 60, "hook t1"),
		mk("t2", []domain.Intent{domain.IntentThrowback, domain.IntentSocial}, domain.NoiseMedium, 115, 65, "hook t2"),
		mk("d1", []domain.Intent{domain.IntentDiscovery}, domain.NoiseMedium, 100, 50, "hook d1"),
		mk("r1", []domain.Intent{domain.IntentRamp}, domain.NoiseMedium, 105, 55, "hook r1"),
		mk("s1", []domain.Intent{domain.IntentSocial}, domain.NoiseHigh, 120, 70, "hook s1"),
	}
}
