package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/lshigami/Marmosets/internal/model"
	"github.com/lshigami/Marmosets/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// InterviewService owns one interview's lifecycle: plan creation, question
// sequencing, answer admission and scoring, and completion with feedback and
// analytics side effects.
type InterviewService interface {
	StartInterview(ctx context.Context, userID uint, jobRole, domain string, numberOfQuestions int, resumeContext string) (*model.Interview, error)
	GetInterviewByID(id uint) (*model.Interview, error)
	GetUserInterviews(userID uint) ([]model.Interview, error)
	// GetNextQuestion returns the first planned question without an answer, in
	// plan order. A nil question with a nil error means there is no next
	// question (interview not in progress, quota reached, or plan exhausted).
	GetNextQuestion(interviewID uint) (*model.InterviewQuestion, error)
	// GetInterviewQuestions returns the whole plan's questions in plan order.
	GetInterviewQuestions(interviewID uint) ([]model.InterviewQuestion, error)
	GetInterviewFeedback(interviewID uint) (*model.Feedback, error)
	SubmitAnswer(ctx context.Context, interviewID, questionID uint, answerText, answerAudio string, timeTakenSeconds int) (*model.Answer, error)
	CompleteInterview(ctx context.Context, interviewID uint) (*model.Interview, error)
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
	questionRepo  repository.QuestionRepository
	answerRepo    repository.AnswerRepository
	feedbackRepo  repository.FeedbackRepository
	planService   QuestionPlanService
	analytics     AnalyticsService
	textGen       TextGenService
	db            *gorm.DB
}

func NewInterviewService(
	interviewRepo repository.InterviewRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	feedbackRepo repository.FeedbackRepository,
	planService QuestionPlanService,
	analytics AnalyticsService,
	textGen TextGenService,
	db *gorm.DB,
) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		questionRepo:  questionRepo,
		answerRepo:    answerRepo,
		feedbackRepo:  feedbackRepo,
		planService:   planService,
		analytics:     analytics,
		textGen:       textGen,
		db:            db,
	}
}

// Domain means at or above strengthThreshold are reported as strengths, below
// weaknessThreshold as weaknesses. Means in between are reported as neither.
const (
	strengthThreshold = 75.0
	weaknessThreshold = 60.0
)

const basicScoringNotice = "Answer evaluated with basic scoring (AI evaluator unavailable)."

// fallbackScore is the word-count heuristic used when no AI score is
// available: 2.5 points per word, capped at 85.
func fallbackScore(answerText string) float64 {
	score := float64(len(strings.Fields(answerText))) * 2.5
	if score > 85 {
		score = 85
	}
	return score
}

// StartInterview creates the session and populates its plan in a single
// transaction. A persistence failure on any plan slot aborts the whole start.
func (s *interviewService) StartInterview(ctx context.Context, userID uint, jobRole, domain string, numberOfQuestions int, resumeContext string) (*model.Interview, error) {
	if numberOfQuestions <= 0 {
		return nil, fmt.Errorf("number of questions must be positive, got %d", numberOfQuestions)
	}

	interview := model.Interview{
		UserID:            userID,
		JobRole:           jobRole,
		Domain:            domain,
		Status:            model.StatusInProgress,
		StartTime:         time.Now(),
		TotalQuestions:    numberOfQuestions,
		ResumeContextUsed: resumeContext,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&interview).Error; err != nil {
			return fmt.Errorf("failed to create interview: %w", err)
		}

		questionIDs, err := s.planService.GeneratePlan(ctx, tx, jobRole, domain, numberOfQuestions, resumeContext)
		if err != nil {
			return err
		}

		slots := make([]model.PlanSlot, len(questionIDs))
		for i, qid := range questionIDs {
			slots[i] = model.PlanSlot{InterviewID: interview.ID, QuestionID: qid, Position: i}
		}
		if err := tx.Create(&slots).Error; err != nil {
			return fmt.Errorf("failed to persist interview plan: %w", err)
		}
		interview.PlanSlots = slots
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("StartInterview: transaction failed")
		return nil, err
	}

	log.Info().Uint("interviewID", interview.ID).Int("questions", numberOfQuestions).Str("domain", domain).Msg("Interview started")
	return &interview, nil
}

func (s *interviewService) GetInterviewByID(id uint) (*model.Interview, error) {
	interview, err := s.interviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return interview, nil
}

func (s *interviewService) GetUserInterviews(userID uint) ([]model.Interview, error) {
	return s.interviewRepo.FindAllByUser(userID)
}

func (s *interviewService) GetNextQuestion(interviewID uint) (*model.InterviewQuestion, error) {
	interview, err := s.interviewRepo.FindByIDWithPlan(interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}

	if interview.Status != model.StatusInProgress ||
		interview.QuestionsAnswered >= interview.TotalQuestions ||
		len(interview.PlanSlots) == 0 {
		return nil, nil
	}

	answers, err := s.answerRepo.FindByInterviewID(interviewID)
	if err != nil {
		return nil, err
	}
	answered := make(map[uint]bool, len(answers))
	for _, a := range answers {
		answered[a.QuestionID] = true
	}

	for _, slot := range interview.PlanSlots {
		if answered[slot.QuestionID] {
			continue
		}
		question, err := s.questionRepo.FindByID(slot.QuestionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrQuestionNotFound
			}
			return nil, err
		}
		return question, nil
	}
	return nil, nil
}

func (s *interviewService) GetInterviewQuestions(interviewID uint) ([]model.InterviewQuestion, error) {
	interview, err := s.interviewRepo.FindByIDWithPlan(interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}

	ids := make([]uint, len(interview.PlanSlots))
	for i, slot := range interview.PlanSlots {
		ids[i] = slot.QuestionID
	}

	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	// FindByIDs does not guarantee plan order; re-sort by slot position.
	byID := make(map[uint]model.InterviewQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]model.InterviewQuestion, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered, nil
}

func (s *interviewService) GetInterviewFeedback(interviewID uint) (*model.Feedback, error) {
	if _, err := s.interviewRepo.FindByID(interviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}

	feedback, err := s.feedbackRepo.FindByInterviewID(interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotAvailable
		}
		return nil, err
	}
	return feedback, nil
}

// SubmitAnswer validates the submission against the interview's state and
// plan, scores it (AI evaluator or fallback heuristic), and persists the
// answer together with the questions_answered increment in one transaction.
func (s *interviewService) SubmitAnswer(ctx context.Context, interviewID, questionID uint, answerText, answerAudio string, timeTakenSeconds int) (*model.Answer, error) {
	interview, err := s.interviewRepo.FindByIDWithPlan(interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}

	if interview.Status != model.StatusInProgress {
		return nil, ErrInterviewNotInProgress
	}
	if interview.QuestionsAnswered >= interview.TotalQuestions {
		return nil, ErrQuotaExhausted
	}

	inPlan := false
	for _, slot := range interview.PlanSlots {
		if slot.QuestionID == questionID {
			inPlan = true
			break
		}
	}
	if !inPlan {
		return nil, ErrQuestionNotInPlan
	}

	exists, err := s.answerRepo.ExistsForQuestion(interviewID, questionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateAnswer
	}

	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	evaluation, score := s.scoreAnswer(ctx, question.Question, answerText, interview.Domain)

	answer := model.Answer{
		InterviewID:      interviewID,
		QuestionID:       questionID,
		AnswerText:       answerText,
		AnswerAudio:      answerAudio,
		TimeTakenSeconds: timeTakenSeconds,
		AnsweredAt:       time.Now(),
		Score:            &score,
		AIEvaluation:     evaluation,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&answer).Error; err != nil {
			return fmt.Errorf("failed to persist answer: %w", err)
		}
		// The predicate re-checks the quota inside the transaction so two
		// concurrent submissions cannot both pass the read above.
		res := tx.Model(&model.Interview{}).
			Where("id = ? AND questions_answered < total_questions", interviewID).
			UpdateColumn("questions_answered", gorm.Expr("questions_answered + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrQuotaExhausted
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("interviewID", interviewID).Uint("questionID", questionID).Msg("SubmitAnswer: transaction failed")
		return nil, err
	}

	return &answer, nil
}

// scoreAnswer runs the external evaluator and extracts a score from its
// output. Provider and parse failures both degrade to the word-count
// heuristic; only a provider failure replaces the evaluation text with the
// basic-scoring notice.
func (s *interviewService) scoreAnswer(ctx context.Context, questionText, answerText, domain string) (string, float64) {
	evaluation, err := s.textGen.EvaluateAnswer(ctx, questionText, answerText, domain)
	if err != nil {
		log.Warn().Err(err).Str("domain", domain).Msg("Answer evaluation failed, applying basic scoring")
		return basicScoringNotice, fallbackScore(answerText)
	}

	score, ok := ParseEvaluationScore(evaluation)
	if !ok {
		log.Warn().Str("domain", domain).Msg("Could not parse score from evaluation, applying basic scoring")
		return evaluation, fallbackScore(answerText)
	}
	return evaluation, score
}

// CompleteInterview transitions IN_PROGRESS to COMPLETED, computes the
// overall score, derives and persists feedback, and feeds the analytics
// accumulator. The status flip is a conditional update: a second completion
// attempt is rejected rather than recomputing side effects. Everything runs
// in one transaction, so a persistence failure anywhere rolls the flip back
// and the interview stays IN_PROGRESS for a retry.
func (s *interviewService) CompleteInterview(ctx context.Context, interviewID uint) (*model.Interview, error) {
	if _, err := s.interviewRepo.FindByID(interviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}

	endTime := time.Now()
	var interview *model.Interview
	var overallScore float64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		txInterviews := s.interviewRepo.WithTx(tx)

		rows, err := txInterviews.CompleteIfInProgress(interviewID, endTime)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrInterviewNotInProgress
		}

		answers, err := s.answerRepo.WithTx(tx).FindByInterviewIDWithQuestions(interviewID)
		if err != nil {
			return err
		}

		overallScore = overallMean(answers)
		if err := tx.Model(&model.Interview{}).Where("id = ?", interviewID).
			UpdateColumn("overall_score", overallScore).Error; err != nil {
			return err
		}

		interview, err = txInterviews.FindByID(interviewID)
		if err != nil {
			return err
		}

		domainScores := domainMeans(answers)
		if err := s.generateFeedback(ctx, tx, interview, domainScores); err != nil {
			return err
		}

		if err := s.analytics.RecordCompletion(tx, interview.UserID, interview, overallScore); err != nil {
			return err
		}
		return s.analytics.RecordDomainPerformance(tx, interview.UserID, domainScores)
	})
	if err != nil {
		if !errors.Is(err, ErrInterviewNotInProgress) {
			log.Error().Err(err).Uint("interviewID", interviewID).Msg("CompleteInterview: transaction rolled back")
		}
		return nil, err
	}

	log.Info().Uint("interviewID", interviewID).Float64("overallScore", overallScore).Msg("Interview completed")
	return interview, nil
}

// overallMean averages all recorded answer scores, counting a missing score
// as 0. No answers means an overall score of 0.
func overallMean(answers []model.Answer) float64 {
	if len(answers) == 0 {
		return 0
	}
	total := 0.0
	for _, a := range answers {
		if a.Score != nil {
			total += *a.Score
		}
	}
	return total / float64(len(answers))
}

// domainMeans groups answers by their question's domain and averages the
// scores per domain (missing scores count as 0 here too).
func domainMeans(answers []model.Answer) map[string]float64 {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, a := range answers {
		domain := a.Question.Domain
		if a.Score != nil {
			totals[domain] += *a.Score
		}
		counts[domain]++
	}
	means := make(map[string]float64, len(totals))
	for domain, count := range counts {
		means[domain] = totals[domain] / float64(count)
	}
	return means
}

// splitDomainPerformance partitions per-domain means into strength and
// weakness labels of the form "domain (NN%)". Iteration is sorted so the
// resulting text is deterministic.
func splitDomainPerformance(domainScores map[string]float64) (strengths, weaknesses []string) {
	domains := make([]string, 0, len(domainScores))
	for domain := range domainScores {
		domains = append(domains, domain)
	}
	sort.Strings(domains)

	for _, domain := range domains {
		mean := domainScores[domain]
		label := fmt.Sprintf("%s (%d%%)", domain, int(math.Round(mean)))
		switch {
		case mean >= strengthThreshold:
			strengths = append(strengths, label)
		case mean < weaknessThreshold:
			weaknesses = append(weaknesses, label)
		}
	}
	return strengths, weaknesses
}

func (s *interviewService) generateFeedback(ctx context.Context, tx *gorm.DB, interview *model.Interview, domainScores map[string]float64) error {
	strengths, weaknesses := splitDomainPerformance(domainScores)

	comments, err := s.textGen.GenerateFeedback(ctx, strengths, weaknesses, interview.OverallScore)
	if err != nil {
		log.Warn().Err(err).Uint("interviewID", interview.ID).Msg("AI feedback generation failed, using templated narrative")
		comments = templatedFeedback(interview.OverallScore, strengths, weaknesses)
	}

	feedback := model.Feedback{
		InterviewID:     interview.ID,
		Strengths:       strings.Join(strengths, ", "),
		Weaknesses:      strings.Join(weaknesses, ", "),
		OverallComments: comments,
		OverallScore:    interview.OverallScore,
		GeneratedAt:     time.Now(),
	}
	return s.feedbackRepo.WithTx(tx).Create(&feedback)
}

func templatedFeedback(overallScore float64, strengths, weaknesses []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You completed this interview with an overall score of %.1f/100. ", overallScore))
	if len(strengths) > 0 {
		sb.WriteString(fmt.Sprintf("You performed well in: %s. ", strings.Join(strengths, ", ")))
	}
	if len(weaknesses) > 0 {
		sb.WriteString(fmt.Sprintf("Focus your preparation on: %s. ", strings.Join(weaknesses, ", ")))
	}
	sb.WriteString("Review your answers and practice regularly to improve your performance.")
	return sb.String()
}
