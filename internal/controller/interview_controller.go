package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Marmosets/internal/dto"
	"github.com/lshigami/Marmosets/internal/middleware"
	"github.com/lshigami/Marmosets/internal/service"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewService service.InterviewService
}

func NewInterviewController(interviewService service.InterviewService) *InterviewController {
	return &InterviewController{interviewService: interviewService}
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

// StartInterview godoc
// @Summary Start a new interview session
// @Description Creates an IN_PROGRESS interview and generates its fixed question plan.
// @Tags Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body dto.InterviewStartDTO true "Session parameters"
// @Success 200 {object} dto.InterviewResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 500 {object} dto.ErrorResponse "Plan generation failed"
// @Router /interviews/start [post]
func (c *InterviewController) StartInterview(ctx *gin.Context) {
	var req dto.InterviewStartDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID := middleware.CurrentUserID(ctx)
	interview, err := c.interviewService.StartInterview(ctx.Request.Context(), userID, req.JobRole, req.Domain, req.NumberOfQuestions, req.ResumeContent)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("StartInterview: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to start interview", Details: []string{err.Error()}})
		return
	}

	var resp dto.InterviewResponseDTO
	copier.Copy(&resp, interview)
	ctx.JSON(http.StatusOK, resp)
}

// GetInterview godoc
// @Summary Get one interview
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{interview_id} [get]
func (c *InterviewController) GetInterview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	interview, err := c.interviewService.GetInterviewByID(id)
	if err != nil {
		if errors.Is(err, service.ErrInterviewNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load interview"})
		return
	}

	var resp dto.InterviewResponseDTO
	copier.Copy(&resp, interview)
	ctx.JSON(http.StatusOK, resp)
}

// GetNextQuestion godoc
// @Summary Get the next unanswered planned question
// @Description Returns the first question in plan order without an answer, or a null question when the session has none left.
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{interview_id}/next-question [get]
func (c *InterviewController) GetNextQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	question, err := c.interviewService.GetNextQuestion(id)
	if err != nil {
		if errors.Is(err, service.ErrInterviewNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load next question"})
		return
	}
	if question == nil {
		ctx.JSON(http.StatusOK, gin.H{"question": nil, "message": "All questions completed"})
		return
	}

	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, question)
	resp.Type = string(question.Type)
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer for a planned question
// @Description Validates the submission against the session state and plan, scores it, and records it.
// @Tags Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Param answer body dto.SubmitAnswerDTO true "Answer payload"
// @Success 200 {object} dto.AnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 404 {object} dto.ErrorResponse "Interview or question not found"
// @Failure 409 {object} dto.ErrorResponse "Precondition violated (not in progress, quota, plan, duplicate)"
// @Router /interviews/{interview_id}/submit-answer [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	var req dto.SubmitAnswerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	answer, err := c.interviewService.SubmitAnswer(ctx.Request.Context(), id, req.QuestionID, req.AnswerText, req.AnswerAudio, req.TimeTakenSeconds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInterviewNotFound), errors.Is(err, service.ErrQuestionNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrInterviewNotInProgress),
			errors.Is(err, service.ErrQuotaExhausted),
			errors.Is(err, service.ErrQuestionNotInPlan),
			errors.Is(err, service.ErrDuplicateAnswer):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Uint("interviewID", id).Msg("SubmitAnswer: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit answer"})
		}
		return
	}

	var resp dto.AnswerResponseDTO
	copier.Copy(&resp, answer)
	ctx.JSON(http.StatusOK, resp)
}

// CompleteInterview godoc
// @Summary Complete an interview session
// @Description Transitions the session to COMPLETED, computes the overall score, and generates feedback and analytics.
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Failure 409 {object} dto.ErrorResponse "Interview already completed"
// @Router /interviews/{interview_id}/complete [post]
func (c *InterviewController) CompleteInterview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	interview, err := c.interviewService.CompleteInterview(ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInterviewNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrInterviewNotInProgress):
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Uint("interviewID", id).Msg("CompleteInterview: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to complete interview"})
		}
		return
	}

	var resp dto.InterviewResponseDTO
	copier.Copy(&resp, interview)
	ctx.JSON(http.StatusOK, resp)
}

// GetMyInterviews godoc
// @Summary List the caller's interviews
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.InterviewResponseDTO
// @Router /interviews/my-interviews [get]
func (c *InterviewController) GetMyInterviews(ctx *gin.Context) {
	userID := middleware.CurrentUserID(ctx)
	interviews, err := c.interviewService.GetUserInterviews(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load interviews"})
		return
	}

	resp := make([]dto.InterviewResponseDTO, len(interviews))
	for i := range interviews {
		copier.Copy(&resp[i], &interviews[i])
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetInterviewQuestions godoc
// @Summary List the interview's planned questions in order
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interviews/{interview_id}/questions [get]
func (c *InterviewController) GetInterviewQuestions(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	questions, err := c.interviewService.GetInterviewQuestions(id)
	if err != nil {
		if errors.Is(err, service.ErrInterviewNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load interview questions"})
		return
	}

	resp := make([]dto.QuestionResponseDTO, len(questions))
	for i := range questions {
		copier.Copy(&resp[i], &questions[i])
		resp[i].Type = string(questions[i].Type)
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetFeedback godoc
// @Summary Get the feedback generated for a completed interview
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.FeedbackResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Interview not found or feedback not available"
// @Router /interviews/{interview_id}/feedback [get]
func (c *InterviewController) GetFeedback(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	feedback, err := c.interviewService.GetInterviewFeedback(id)
	if err != nil {
		if errors.Is(err, service.ErrInterviewNotFound) || errors.Is(err, service.ErrFeedbackNotAvailable) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load feedback"})
		return
	}

	var resp dto.FeedbackResponseDTO
	copier.Copy(&resp, feedback)
	ctx.JSON(http.StatusOK, resp)
}
