package domain

// NoiseLevel is an ordinal measure of how much a track intrudes on
// whatever else the listener is doing.
type NoiseLevel string

const (
	NoiseLow    NoiseLevel = "low"
	NoiseMedium NoiseLevel = "medium"
	NoiseHigh   NoiseLevel = "high"
)

// Profile holds the structured attributes the scoring and explanation
// layers read. HookPhrase is a scarce resource: two explanations in the
// same block must never cite the same one.
type Profile struct {
	Genre      string
	Era        string
	VibeWords  []string
	HookPhrase string
	NoiseLevel NoiseLevel
	Tempo      int
	Intensity  int // 0-100
	Positivity int // 0-100
}

// CatalogItem is one entry of the fixed catalog. Immutable; ID is globally
// unique and Tags is non-empty.
type CatalogItem struct {
	ID          string
	Title       string
	Creator     string
	ExternalURL string
	Tags        []Intent
	Profile     Profile
}

// HasTag reports whether the item carries the given intent tag.
func (i CatalogItem) HasTag(intent Intent) bool {
	for _, t := range i.Tags {
		if t == intent {
			return true
		}
	}
	return false
}

// Enrichment is third-party display metadata for a catalog item. It is a
// side lookup only; a miss degrades to fallback values and never fails
// the response.
type Enrichment struct {
	Name       string
	Artist     string
	ArtworkURL string
	RawTitle   string
}
