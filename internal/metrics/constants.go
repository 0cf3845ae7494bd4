package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameEconomyDeltas    = "economy_deltas_total"
	MetricNameGachaSpins       = "gacha_spins_total"
	MetricNamePityTriggers     = "gacha_pity_triggers_total"
	MetricNamePetFeeds         = "pet_feeds_total"
	MetricNamePetPlays         = "pet_plays_total"
	MetricNamePetLevelUps      = "pet_level_ups_total"
	MetricNameQuestCompletions = "quest_completions_total"
	MetricNameQuestResets      = "quest_resets_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextEconomyDeltas    = "Total number of XP/coin ledger deltas applied"
	HelpTextGachaSpins       = "Total number of gacha spins performed"
	HelpTextPityTriggers     = "Total number of pity-guaranteed gacha draws"
	HelpTextPetFeeds         = "Total number of pet feed actions"
	HelpTextPetPlays         = "Total number of pet play actions"
	HelpTextPetLevelUps      = "Total number of pet level ups"
	HelpTextQuestCompletions = "Total number of quests completed"
	HelpTextQuestResets      = "Total number of quest set resets"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelReason = "reason"
	LabelRarity = "rarity"
	LabelPeriod = "period"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
