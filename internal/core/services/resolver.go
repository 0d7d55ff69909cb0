package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/hartwell-audio/daymix/internal/core/domain"
)

// Resolver normalizes raw request inputs into a domain.Context.
// Now and Location are injectable so bucket boundaries stay deterministic
// in tests and across deployments.
type Resolver struct {
	Now      func() time.Time
	Location *time.Location
}

// NewResolver builds a Resolver on the given canonical timezone.
func NewResolver(loc *time.Location) Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return Resolver{Now: time.Now, Location: loc}
}

func (r Resolver) now() time.Time {
	if r.Now != nil {
		return r.Now().In(r.Location)
	}
	return time.Now().In(r.Location)
}

// Resolve builds the full request context. A malformed time override is
// ignored, never rejected; unknown tweak/engine/situation values fall back
// to their neutral defaults.
func (r Resolver) Resolve(rawTime, rawSituation, rawTweak, rawEngine string) domain.Context {
	now := r.now()

	localTime := now
	timeLiteral := "now"
	if trimmed := strings.TrimSpace(rawTime); domain.ValidClock(trimmed) {
		parts := strings.SplitN(trimmed, ":", 2)
		hour, _ := strconv.Atoi(parts[0])
		minute, _ := strconv.Atoi(parts[1])
		localTime = time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, r.Location)
		timeLiteral = trimmed
	}

	return domain.Context{
		Bucket:      domain.BucketForMinutes(localTime.Hour()*60 + localTime.Minute()),
		Situation:   domain.ParseSituation(rawSituation),
		Tweak:       domain.ParseTweak(rawTweak),
		Engine:      domain.ParseEngineMode(rawEngine),
		TimeLiteral: timeLiteral,
		LocalTime:   localTime,
	}
}
