package services

import "github.com/hartwell-audio/daymix/internal/core/domain"

// bucketPresets are the curated block plans used when no situation is
// declared. Each bucket only lists intents that make sense at that hour;
// the tables themselves are the restriction, there is no separate filter.
var bucketPresets = map[domain.TimeBucket][]domain.BlockSpec{
	domain.BucketMorning: {
		{Title: "Morning Boost", Subtitle: "Wake your ears up", Intent: domain.IntentEnergy},
		{Title: "Slow Build", Subtitle: "Ease into the day", Intent: domain.IntentRamp},
		{Title: "Head Down", Subtitle: "For the first deep stretch", Intent: domain.IntentFocus},
		{Title: "Fresh This Morning", Subtitle: "Something you haven't worn out", Intent: domain.IntentDiscovery},
		{Title: "Clean Slate", Subtitle: "Shake off yesterday", Intent: domain.IntentReset},
	},
	domain.BucketMidday: {
		{Title: "Midday Focus", Subtitle: "Hold the line until the slump", Intent: domain.IntentFocus},
		{Title: "Afternoon Kick", Subtitle: "Beat the post-lunch dip", Intent: domain.IntentEnergy},
		{Title: "Hard Reset", Subtitle: "Five minutes between meetings", Intent: domain.IntentReset},
		{Title: "Lunch Break Finds", Subtitle: "New stuff while you step away", Intent: domain.IntentDiscovery},
	},
	domain.BucketEvening: {
		{Title: "Wind Down", Subtitle: "The day is done", Intent: domain.IntentChill},
		{Title: "Golden Hour Rewind", Subtitle: "Ones you already love", Intent: domain.IntentThrowback},
		{Title: "Company Coming", Subtitle: "For a full room", Intent: domain.IntentSocial},
		{Title: "Decompress", Subtitle: "Put the day down gently", Intent: domain.IntentReset},
		{Title: "Evening Finds", Subtitle: "Low-stakes listening", Intent: domain.IntentDiscovery},
	},
	domain.BucketLateNight: {
		{Title: "After Hours", Subtitle: "Keep it low", Intent: domain.IntentChill},
		{Title: "Night Shift", Subtitle: "For the stubbornly awake", Intent: domain.IntentFocus},
		{Title: "Small Hours Rewind", Subtitle: "Old favorites, quieter now", Intent: domain.IntentThrowback},
		{Title: "Come Down", Subtitle: "Land the plane", Intent: domain.IntentReset},
	},
}

// situationPresets override bucket plans when the listener declares what
// they are doing. Time of day still flows into explanation text, just not
// into block selection.
var situationPresets = map[domain.Situation][]domain.BlockSpec{
	domain.SituationWorkingOut: {
		{Title: "Max Effort", Subtitle: "Top of the range", Intent: domain.IntentEnergy},
		{Title: "Warm-Up", Subtitle: "Build to it", Intent: domain.IntentRamp},
		{Title: "Power Rewind", Subtitle: "Proven fuel", Intent: domain.IntentThrowback},
		{Title: "New Fuel", Subtitle: "Untested, high output", Intent: domain.IntentDiscovery},
	},
	domain.SituationStudying: {
		{Title: "Deep Focus", Subtitle: "Nothing that grabs the mic", Intent: domain.IntentFocus},
		{Title: "Background Calm", Subtitle: "Present but quiet", Intent: domain.IntentChill},
		{Title: "Break Timer", Subtitle: "Between chapters", Intent: domain.IntentReset},
		{Title: "Quiet Finds", Subtitle: "New, but not loud about it", Intent: domain.IntentDiscovery},
	},
	domain.SituationDinner: {
		{Title: "Table Setting", Subtitle: "Warm and unhurried", Intent: domain.IntentChill},
		{Title: "Dinner Party", Subtitle: "Keeps conversation moving", Intent: domain.IntentSocial},
		{Title: "Kitchen Classics", Subtitle: "Everyone knows the words", Intent: domain.IntentThrowback},
		{Title: "Side Dish", Subtitle: "Something new between courses", Intent: domain.IntentDiscovery},
	},
	domain.SituationParty: {
		{Title: "Peak Hours", Subtitle: "No dips", Intent: domain.IntentEnergy},
		{Title: "Crowd Pleasers", Subtitle: "For the whole room", Intent: domain.IntentSocial},
		{Title: "Bring It Up", Subtitle: "Early-room momentum", Intent: domain.IntentRamp},
		{Title: "Singalong Hour", Subtitle: "Instant recognition", Intent: domain.IntentThrowback},
	},
	domain.SituationCommuting: {
		{Title: "Rolling Start", Subtitle: "Match the traffic", Intent: domain.IntentRamp},
		{Title: "Fast Lane", Subtitle: "For the open stretch", Intent: domain.IntentEnergy},
		{Title: "New For The Route", Subtitle: "Fresh listening, old roads", Intent: domain.IntentDiscovery},
		{Title: "Route Replay", Subtitle: "Windows-down memories", Intent: domain.IntentThrowback},
	},
	domain.SituationRelaxing: {
		{Title: "Soft Landing", Subtitle: "Nowhere to be", Intent: domain.IntentChill},
		{Title: "Exhale", Subtitle: "Put the day down", Intent: domain.IntentReset},
		{Title: "Comfort Listening", Subtitle: "Familiar on purpose", Intent: domain.IntentThrowback},
		{Title: "Gentle Finds", Subtitle: "New without the edges", Intent: domain.IntentDiscovery},
	},
}

// PlanBlocks returns the ordered block plan for a context. A declared
// situation wins over the time bucket.
func PlanBlocks(bucket domain.TimeBucket, situation domain.Situation) []domain.BlockSpec {
	var preset []domain.BlockSpec
	if situation != domain.SituationAuto {
		preset = situationPresets[situation]
	} else {
		preset = bucketPresets[bucket]
	}

	specs := make([]domain.BlockSpec, len(preset))
	copy(specs, preset)
	return specs
}
