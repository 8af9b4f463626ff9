package controller

import (
	"math"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Marmosets/internal/dto"
	"github.com/lshigami/Marmosets/internal/middleware"
	"github.com/lshigami/Marmosets/internal/model"
	"github.com/lshigami/Marmosets/internal/service"
	"github.com/rs/zerolog/log"
)

type AnalyticsController struct {
	analyticsService service.AnalyticsService
	interviewService service.InterviewService
}

func NewAnalyticsController(analyticsService service.AnalyticsService, interviewService service.InterviewService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService, interviewService: interviewService}
}

const historyLimit = 10

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// GetMyAnalytics godoc
// @Summary Get the caller's aggregated analytics
// @Description Running aggregate plus the last completed interviews and per-domain performance.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AnalyticsResponseDTO
// @Router /analytics/my-analytics [get]
func (c *AnalyticsController) GetMyAnalytics(ctx *gin.Context) {
	userID := middleware.CurrentUserID(ctx)

	analytics, err := c.analyticsService.GetUserAnalytics(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetMyAnalytics: failed to load analytics")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load analytics"})
		return
	}

	interviews, err := c.interviewService.GetUserInterviews(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load interview history"})
		return
	}

	var completed []model.Interview
	for _, iv := range interviews {
		if iv.Status == model.StatusCompleted {
			completed = append(completed, iv)
		}
	}
	// History shows the earliest completions: ascending start time, first 10.
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].StartTime.Before(completed[j].StartTime)
	})

	history := make([]dto.InterviewHistoryEntryDTO, 0, historyLimit)
	for i := 0; i < len(completed) && i < historyLimit; i++ {
		iv := completed[i]
		history = append(history, dto.InterviewHistoryEntryDTO{
			ID:      iv.ID,
			JobRole: iv.JobRole,
			Domain:  iv.Domain,
			Score:   roundTenth(iv.OverallScore),
			Date:    iv.StartTime,
		})
	}

	domainTotals := make(map[string]float64)
	domainCounts := make(map[string]int)
	for _, iv := range completed {
		domainTotals[iv.Domain] += iv.OverallScore
		domainCounts[iv.Domain]++
	}
	domainPerformance := make(map[string]float64, len(domainTotals))
	for domain, count := range domainCounts {
		domainPerformance[domain] = domainTotals[domain] / float64(count)
	}

	resp := dto.AnalyticsResponseDTO{
		TotalInterviews:     analytics.TotalInterviews,
		CompletedInterviews: analytics.CompletedInterviews,
		AverageScore:        roundTenth(analytics.AverageScore),
		BestScore:           roundTenth(analytics.BestScore),
		WorstScore:          roundTenth(analytics.WorstScore),
		TopicStrengths:      analytics.TopicStrengths,
		TopicWeaknesses:     analytics.TopicWeaknesses,
		LastInterviewDate:   analytics.LastInterviewDate,
		InterviewHistory:    history,
		DomainPerformance:   domainPerformance,
	}
	ctx.JSON(http.StatusOK, resp)
}

// RecalculateAnalytics godoc
// @Summary Rebuild the caller's analytics from interview history
// @Description Overwrites the running aggregate with values re-derived from stored interviews. Repairs drift.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AnalyticsResponseDTO
// @Router /analytics/recalculate [get]
func (c *AnalyticsController) RecalculateAnalytics(ctx *gin.Context) {
	userID := middleware.CurrentUserID(ctx)

	analytics, err := c.analyticsService.RecomputeFromHistory(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("RecalculateAnalytics: recompute failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to recalculate analytics"})
		return
	}

	ctx.JSON(http.StatusOK, dto.AnalyticsResponseDTO{
		TotalInterviews:     analytics.TotalInterviews,
		CompletedInterviews: analytics.CompletedInterviews,
		AverageScore:        analytics.AverageScore,
		BestScore:           analytics.BestScore,
		WorstScore:          analytics.WorstScore,
		TopicStrengths:      analytics.TopicStrengths,
		TopicWeaknesses:     analytics.TopicWeaknesses,
		LastInterviewDate:   analytics.LastInterviewDate,
	})
}
