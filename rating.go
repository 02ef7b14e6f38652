package folio

import "strings"

// ratingLabels maps a provider recommendation key to its display label.
// Unknown or absent keys fall through to "N/A".
var ratingLabels = map[string]string{
	"buy":         "Buy",
	"hold":        "Hold",
	"sell":        "Sell",
	"strong_buy":  "Strong Buy",
	"strong_sell": "Strong Sell",
	"underperform": "Underperform",
	"overperform":  "Overperform",
}

// RatingLabel returns the display label for a provider recommendation key.
func RatingLabel(key string) string {
	if label, ok := ratingLabels[strings.ToLower(key)]; ok {
		return label
	}
	return "N/A"
}

// Naive keyword lists for headline scoring. This is a toy heuristic kept
// for parity with the original dashboards, not a sentiment model.
var (
	positiveWords = []string{
		"beat", "beats", "gain", "gains", "growth", "jump", "jumps",
		"profit", "rally", "record", "rise", "rises", "soars", "surge",
		"up", "upgrade", "win", "wins",
	}
	negativeWords = []string{
		"crash", "cut", "cuts", "decline", "down", "downgrade", "drop",
		"drops", "fall", "falls", "fears", "loss", "losses", "miss",
		"plunge", "slump", "tumble", "warn", "warns",
	}
)

// SentimentScore counts positive minus negative keyword hits in a headline.
func SentimentScore(headline string) int {
	score := 0
	for _, word := range strings.Fields(strings.ToLower(headline)) {
		word = strings.Trim(word, ".,:;!?'\"()")
		for _, p := range positiveWords {
			if word == p {
				score++
			}
		}
		for _, n := range negativeWords {
			if word == n {
				score--
			}
		}
	}
	return score
}

// SentimentLabel maps a headline score to its display label.
func SentimentLabel(score int) string {
	switch {
	case score > 0:
		return "Positive"
	case score < 0:
		return "Negative"
	default:
		return "Neutral"
	}
}
