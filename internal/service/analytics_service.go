package service

import (
	"errors"
	"math"
	"time"

	"github.com/lshigami/Marmosets/internal/model"
	"github.com/lshigami/Marmosets/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnalyticsService is the single owner of the per-user aggregate. All
// analytics writes go through here so the zero-as-unset best/worst convention
// lives in exactly one place.
//
// Known quirks, kept on purpose:
//   - BestScore/WorstScore treat a stored 0 as "unset", so a genuine overall
//     score of 0 is indistinguishable from no score at all.
//   - The incremental running average includes every completion score (zeros
//     too), while RecomputeFromHistory averages only scores > 0 and rounds to
//     one decimal. The two paths diverge when an interview scores exactly 0.
type AnalyticsService interface {
	// GetUserAnalytics lazily creates the row with zeroed counters.
	GetUserAnalytics(userID uint) (*model.Analytics, error)
	// RecordCompletion and RecordDomainPerformance write through the caller's
	// transaction so a completion rollback takes the analytics writes with it.
	RecordCompletion(tx *gorm.DB, userID uint, interview *model.Interview, score float64) error
	RecordDomainPerformance(tx *gorm.DB, userID uint, domainScores map[string]float64) error
	// RecomputeFromHistory re-derives the aggregate purely from the stored
	// interview history and overwrites the row. Used to repair drift.
	RecomputeFromHistory(userID uint) (*model.Analytics, error)
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	interviewRepo repository.InterviewRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, interviewRepo repository.InterviewRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo, interviewRepo: interviewRepo}
}

func (s *analyticsService) GetUserAnalytics(userID uint) (*model.Analytics, error) {
	return getOrCreate(s.analyticsRepo, userID)
}

func getOrCreate(repo repository.AnalyticsRepository, userID uint) (*model.Analytics, error) {
	analytics, err := repo.FindByUserID(userID)
	if err == nil {
		return analytics, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &model.Analytics{UserID: userID, LastUpdated: time.Now()}
	if err := repo.Create(created); err != nil {
		return nil, err
	}
	log.Info().Uint("userID", userID).Msg("Created analytics record")
	return created, nil
}

func (s *analyticsService) RecordCompletion(tx *gorm.DB, userID uint, interview *model.Interview, score float64) error {
	repo := s.analyticsRepo.WithTx(tx)
	analytics, err := getOrCreate(repo, userID)
	if err != nil {
		return err
	}

	oldTotal := float64(analytics.TotalInterviews)
	analytics.AverageScore = (analytics.AverageScore*oldTotal + score) / (oldTotal + 1)
	analytics.TotalInterviews++
	analytics.CompletedInterviews++

	// A stored 0 means "unset": the first real score claims both slots.
	if analytics.BestScore == 0 || score > analytics.BestScore {
		analytics.BestScore = score
	}
	if analytics.WorstScore == 0 || score < analytics.WorstScore {
		analytics.WorstScore = score
	}

	completedAt := time.Now()
	if interview.EndTime != nil {
		completedAt = *interview.EndTime
	}
	analytics.LastInterviewDate = &completedAt
	analytics.LastUpdated = completedAt

	return repo.Update(analytics)
}

func (s *analyticsService) RecordDomainPerformance(tx *gorm.DB, userID uint, domainScores map[string]float64) error {
	if len(domainScores) == 0 {
		return nil
	}

	repo := s.analyticsRepo.WithTx(tx)
	analytics, err := getOrCreate(repo, userID)
	if err != nil {
		return err
	}

	strengths, weaknesses := splitDomainPerformance(domainScores)
	analytics.TopicStrengths = appendJoined(analytics.TopicStrengths, strengths)
	analytics.TopicWeaknesses = appendJoined(analytics.TopicWeaknesses, weaknesses)
	analytics.LastUpdated = time.Now()

	return repo.Update(analytics)
}

// appendJoined grows the cumulative comma-joined text field. The history is
// unbounded: no deduplication, no trimming.
func appendJoined(existing string, items []string) string {
	if len(items) == 0 {
		return existing
	}
	joined := ""
	for i, item := range items {
		if i > 0 {
			joined += ", "
		}
		joined += item
	}
	if existing == "" {
		return joined
	}
	return existing + ", " + joined
}

func (s *analyticsService) RecomputeFromHistory(userID uint) (*model.Analytics, error) {
	interviews, err := s.interviewRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	analytics, err := s.GetUserAnalytics(userID)
	if err != nil {
		return nil, err
	}

	var completed []model.Interview
	for _, iv := range interviews {
		if iv.Status == model.StatusCompleted {
			completed = append(completed, iv)
		}
	}

	analytics.TotalInterviews = len(interviews)
	analytics.CompletedInterviews = len(completed)
	analytics.AverageScore = 0
	analytics.BestScore = 0
	analytics.WorstScore = 0

	// Unlike the incremental path, only valid (> 0) scores enter the mean.
	var valid []float64
	for _, iv := range completed {
		if iv.OverallScore > 0 {
			valid = append(valid, iv.OverallScore)
		}
	}
	if len(valid) > 0 {
		sum, best, worst := 0.0, valid[0], valid[0]
		for _, v := range valid {
			sum += v
			if v > best {
				best = v
			}
			if v < worst {
				worst = v
			}
		}
		analytics.AverageScore = roundToTenth(sum / float64(len(valid)))
		analytics.BestScore = roundToTenth(best)
		analytics.WorstScore = roundToTenth(worst)
	}

	var latest *time.Time
	for i := range completed {
		st := completed[i].StartTime
		if latest == nil || st.After(*latest) {
			latest = &st
		}
	}
	analytics.LastInterviewDate = latest
	analytics.LastUpdated = time.Now()

	if err := s.analyticsRepo.Update(analytics); err != nil {
		return nil, err
	}

	log.Info().Uint("userID", userID).
		Int("total", analytics.TotalInterviews).
		Int("completed", analytics.CompletedInterviews).
		Float64("average", analytics.AverageScore).
		Msg("Analytics recalculated from history")
	return analytics, nil
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
