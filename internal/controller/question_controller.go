package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Marmosets/internal/dto"
	"github.com/lshigami/Marmosets/internal/model"
	"github.com/lshigami/Marmosets/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

func questionsToDTO(questions []model.InterviewQuestion) []dto.QuestionResponseDTO {
	resp := make([]dto.QuestionResponseDTO, len(questions))
	for i := range questions {
		copier.Copy(&resp[i], &questions[i])
		resp[i].Type = string(questions[i].Type)
	}
	return resp
}

// GetAllQuestions godoc
// @Summary List all active catalog questions
// @Tags Questions
// @Produce json
// @Success 200 {array} dto.QuestionResponseDTO
// @Router /questions [get]
func (c *QuestionController) GetAllQuestions(ctx *gin.Context) {
	questions, err := c.questionService.GetAllActiveQuestions()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load questions"})
		return
	}
	ctx.JSON(http.StatusOK, questionsToDTO(questions))
}

// GetQuestionsByDomain godoc
// @Summary List questions for a domain and job role
// @Tags Questions
// @Produce json
// @Param domain path string true "Domain"
// @Param job_role path string true "Job role"
// @Success 200 {array} dto.QuestionResponseDTO
// @Router /questions/domain/{domain}/{job_role} [get]
func (c *QuestionController) GetQuestionsByDomain(ctx *gin.Context) {
	questions, err := c.questionService.GetQuestionsByDomainAndJobRole(ctx.Param("domain"), ctx.Param("job_role"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load questions"})
		return
	}
	ctx.JSON(http.StatusOK, questionsToDTO(questions))
}

// GetQuestionsByDifficulty godoc
// @Summary List active questions for a domain at a difficulty level
// @Tags Questions
// @Produce json
// @Param domain path string true "Domain"
// @Param difficulty path int true "Difficulty (1-5)"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid difficulty"
// @Router /questions/difficulty/{domain}/{difficulty} [get]
func (c *QuestionController) GetQuestionsByDifficulty(ctx *gin.Context) {
	difficulty, err := strconv.Atoi(ctx.Param("difficulty"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid difficulty format"})
		return
	}

	questions, err := c.questionService.GetQuestionsByDifficulty(ctx.Param("domain"), difficulty)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load questions"})
		return
	}
	ctx.JSON(http.StatusOK, questionsToDTO(questions))
}

// GetQuestionByID godoc
// @Summary Get one catalog question
// @Tags Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{question_id} [get]
func (c *QuestionController) GetQuestionByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question_id format"})
		return
	}

	question, err := c.questionService.GetQuestionByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load question"})
		return
	}

	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, question)
	resp.Type = string(question.Type)
	ctx.JSON(http.StatusOK, resp)
}

// GetQuestionsByType godoc
// @Summary List questions of a type within a domain
// @Tags Questions
// @Produce json
// @Param type path string true "Question type (TECHNICAL, BEHAVIORAL, CODING)"
// @Param domain path string true "Domain"
// @Success 200 {array} dto.QuestionResponseDTO
// @Router /questions/type/{type}/{domain} [get]
func (c *QuestionController) GetQuestionsByType(ctx *gin.Context) {
	questionType := model.QuestionType(strings.ToUpper(ctx.Param("type")))
	questions, err := c.questionService.GetQuestionsByType(questionType, ctx.Param("domain"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load questions"})
		return
	}
	ctx.JSON(http.StatusOK, questionsToDTO(questions))
}
