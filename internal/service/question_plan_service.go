package service

import (
	"context"
	"fmt"

	"github.com/lshigami/Marmosets/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuestionPlanService builds the fixed, ordered question plan for a new
// interview. One question record is created per slot whether or not the AI
// provider cooperates; questions are never shared across interviews.
type QuestionPlanService interface {
	GeneratePlan(ctx context.Context, tx *gorm.DB, jobRole, domain string, count int, resumeContext string) ([]uint, error)
}

type questionPlanService struct {
	textGen TextGenService
}

func NewQuestionPlanService(textGen TextGenService) QuestionPlanService {
	return &questionPlanService{textGen: textGen}
}

// The numeric difficulty cycles 1..5 while the legacy label cycles over three
// values; the two are intentionally uncorrelated. Do not "fix" this without
// confirming intent with the product side.
var difficultyLabels = []string{"Easy", "Medium", "Hard"}

const planQuestionTimeLimitSeconds = 120

var fallbackQuestionTemplates = map[string][]string{
	"DSA": {
		"Explain the difference between an array and a linked list, and when you would choose each.",
		"Describe how a hash table works internally and what makes a good hash function.",
		"Walk through how you would detect a cycle in a linked list.",
		"Compare quicksort and mergesort in terms of complexity and practical behavior.",
	},
	"System Design": {
		"Design a URL shortening service and describe its main components.",
		"How would you scale a read-heavy web application? Discuss caching and replication.",
		"Explain the trade-offs between SQL and NoSQL databases for a new product.",
		"Describe how you would design a rate limiter for a public API.",
	},
	"HR": {
		"Tell me about a time you had to resolve a conflict within your team.",
		"Describe a situation where you missed a deadline. What did you learn?",
		"Why are you interested in this role, and where do you see yourself in five years?",
		"Tell me about a piece of critical feedback you received and how you handled it.",
	},
}

var genericQuestionTemplates = []string{
	"Explain a core concept of %s that every %s should understand, with an example.",
	"Describe a challenging problem you solved in the %s area as a %s.",
	"What recent developments in %s do you find most relevant for a %s, and why?",
}

func fallbackQuestionText(domain, jobRole string, slot int) string {
	if templates, ok := fallbackQuestionTemplates[domain]; ok {
		return templates[slot%len(templates)]
	}
	template := genericQuestionTemplates[slot%len(genericQuestionTemplates)]
	return fmt.Sprintf(template, domain, jobRole)
}

// GeneratePlan creates count question records inside the caller's transaction
// and returns their IDs in plan order. A provider failure on any slot degrades
// that slot to a template question; a persistence failure aborts the plan.
func (s *questionPlanService) GeneratePlan(ctx context.Context, tx *gorm.DB, jobRole, domain string, count int, resumeContext string) ([]uint, error) {
	if count <= 0 {
		return nil, fmt.Errorf("question count must be positive, got %d", count)
	}

	questionIDs := make([]uint, 0, count)
	for i := 0; i < count; i++ {
		difficulty := (i % 5) + 1
		label := difficultyLabels[i%len(difficultyLabels)]

		text, err := s.textGen.GenerateQuestion(ctx, jobRole, domain, label, resumeContext)
		createdBy := model.CreatedByAI
		if err != nil {
			log.Warn().Err(err).Int("slot", i).Str("domain", domain).Msg("AI question generation failed, using fallback template")
			text = fallbackQuestionText(domain, jobRole, i)
			createdBy = model.CreatedByFallback
		}

		question := model.InterviewQuestion{
			Question:         text,
			Type:             model.QuestionTechnical,
			Domain:           domain,
			JobRole:          jobRole,
			Difficulty:       difficulty,
			TimeLimitSeconds: planQuestionTimeLimitSeconds,
			IsActive:         true,
			CreatedBy:        createdBy,
		}
		if err := tx.Create(&question).Error; err != nil {
			return nil, fmt.Errorf("failed to persist question for slot %d: %w", i, err)
		}
		questionIDs = append(questionIDs, question.ID)
	}

	return questionIDs, nil
}
