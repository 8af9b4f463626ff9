package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Marmosets/internal/dto"
	"github.com/lshigami/Marmosets/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuestionController struct {
	questionService service.QuestionService
}

func NewAdminQuestionController(questionService service.QuestionService) *AdminQuestionController {
	return &AdminQuestionController{questionService: questionService}
}

func parseID(ctx *gin.Context) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return 0, false
	}
	return uint(val), true
}

// CreateQuestion godoc
// @Summary (Admin) Author a catalog question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.CreateQuestion(req)
	if err != nil {
		log.Error().Err(err).Msg("CreateQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create question"})
		return
	}

	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, question)
	resp.Type = string(question.Type)
	ctx.JSON(http.StatusOK, resp)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a catalog question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{question_id} [put]
func (c *AdminQuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.UpdateQuestion(id, req)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update question"})
		return
	}

	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, question)
	resp.Type = string(question.Type)
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a catalog question
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{question_id} [delete]
func (c *AdminQuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.questionService.DeleteQuestion(id); err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete question"})
		return
	}
	ctx.Status(http.StatusNoContent)
}
