package service

import (
	"context"
	"errors"
	"fmt"
)

// stubTextGen is a scriptable TextGenService for tests. Zero value succeeds
// with canned output; flip the fail flags to simulate provider outages.
type stubTextGen struct {
	failQuestions  bool
	failEvaluation bool
	failFeedback   bool

	evaluationText string

	questionCalls   int
	evaluationCalls int
	feedbackCalls   int
}

var errProviderDown = errors.New("provider unavailable")

func (s *stubTextGen) GenerateQuestion(_ context.Context, jobRole, domain, difficultyLabel, _ string) (string, error) {
	s.questionCalls++
	if s.failQuestions {
		return "", errProviderDown
	}
	return fmt.Sprintf("Generated %s question #%d on %s for a %s.", difficultyLabel, s.questionCalls, domain, jobRole), nil
}

func (s *stubTextGen) EvaluateAnswer(_ context.Context, _, _, _ string) (string, error) {
	s.evaluationCalls++
	if s.failEvaluation {
		return "", errProviderDown
	}
	if s.evaluationText != "" {
		return s.evaluationText, nil
	}
	return "A reasonable answer. Score: 80/100. Add more depth next time.", nil
}

func (s *stubTextGen) GenerateFeedback(_ context.Context, _, _ []string, overallScore float64) (string, error) {
	s.feedbackCalls++
	if s.failFeedback {
		return "", errProviderDown
	}
	return fmt.Sprintf("You scored %.1f overall. Keep it up.", overallScore), nil
}
