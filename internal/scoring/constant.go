package scoring

import "regexp"

// Keyword sets. Matching is case-insensitive substring counting, so a keyword
// inside a longer word counts ("bug" in "debugging").
var (
	urgencyKeywords = []string{
		"urgent", "asap", "immediately", "now", "today", "critical", "emergency",
		"blocking", "broken", "down", "bug", "crash", "issue", "problem",
		"deadline", "due", "overdue", "late",
	}

	importanceKeywords = []string{
		"important", "critical", "essential", "key", "major", "significant",
		"revenue", "security", "data", "user", "customer", "client",
		"launch", "release", "deploy", "production", "feature", "functionality",
	}

	lowPriorityKeywords = []string{
		"nice to have", "optional", "enhancement", "improvement", "polish",
		"minor", "small", "tiny", "cosmetic", "documentation", "comment",
		"research", "explore", "consider", "maybe", "someday",
	}
)

type patternBonus struct {
	re    *regexp.Regexp
	bonus int
}

// Whole-word pattern bonuses, each applied at most once.
var (
	urgencyPatterns = []patternBonus{
		{regexp.MustCompile(`(?i)\b(today|now|asap|immediately)\b`), 3},
		{regexp.MustCompile(`(?i)\b(this week|urgent|critical)\b`), 2},
		{regexp.MustCompile(`(?i)\b(next week|soon)\b`), 1},
	}

	importancePatterns = []patternBonus{
		{regexp.MustCompile(`(?i)\b(revenue|money|profit|cost|budget)\b`), 3},
		{regexp.MustCompile(`(?i)\b(security|data|backup|recovery)\b`), 3},
		{regexp.MustCompile(`(?i)\b(user|customer|client)\b`), 2},
		{regexp.MustCompile(`(?i)\b(feature|functionality|capability)\b`), 1},
	}
)

const (
	maxRaw = 5

	keywordWeight    = 2
	importanceWeight = 1.2
	combinedDivisor  = 2.2

	urgentThreshold    = 2.5
	importantThreshold = 2.5

	minScore = 1
	maxScore = 10
)
