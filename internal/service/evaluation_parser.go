package service

import (
	"strconv"
	"strings"
)

const scoreMarker = "Score:"

// scoreWindow is how many characters after the marker are inspected. The
// evaluator is prompted to answer "Score: NN/100", so four characters cover
// the value plus its "/" divider.
const scoreWindow = 4

// ParseEvaluationScore pulls the numeric score out of a free-text evaluation.
// The value is expected inside a fixed-width window right after the "Score:"
// marker, read up to but not including a "/" divider. It reports false on any
// malformed input instead of guessing; callers fall back to basic scoring.
func ParseEvaluationScore(evaluation string) (float64, bool) {
	idx := strings.Index(evaluation, scoreMarker)
	if idx == -1 {
		return 0, false
	}

	start := idx + len(scoreMarker)
	end := start + scoreWindow
	if end > len(evaluation) {
		end = len(evaluation)
	}

	raw := strings.TrimSpace(evaluation[start:end])
	raw = strings.TrimSpace(strings.SplitN(raw, "/", 2)[0])

	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return score, true
}
