package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"daleel-cms/helper"
	"daleel-cms/models"
	"daleel-cms/repositories"
	"daleel-cms/services"
)

type QuestionHandler struct {
	questionService services.QuestionService
	helper          *helper.HTTPHelper
	log             *zap.Logger
}

func NewQuestionHandler(questionService services.QuestionService, h *helper.HTTPHelper, log *zap.Logger) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, helper: h, log: log}
}

func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	questions, err := h.questionService.GetQuestions()
	if err != nil {
		h.log.Error("get questions failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get questions")
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	question, err := h.questionService.GetQuestion(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Question")
			return
		}
		h.log.Error("get question failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get question")
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) GetQuestionsByStatus(c *gin.Context) {
	status := c.Param("status")
	questions, err := h.questionService.GetQuestionsByStatus(status)
	if err != nil {
		h.log.Error("get questions by status failed", zap.String("status", status), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to get questions")
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) SubmitQuestion(c *gin.Context) {
	var req models.InsertQuestion
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	question, err := h.questionService.SubmitQuestion(req)
	if err != nil {
		h.log.Error("add question failed", zap.Error(err))
		h.helper.SendInternalError(c, "Failed to add question")
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) UpdateStatus(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))

	var req models.UpdateQuestionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendValidationError(c, err)
		return
	}

	question, err := h.questionService.UpdateStatus(id, req.Status, req.ResponseArticleID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Question")
			return
		}
		h.log.Error("update question status failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to update question status")
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id := helper.ParseID(c.Param("id"))
	if err := h.questionService.DeleteQuestion(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.helper.SendNotFound(c, "Question")
			return
		}
		h.log.Error("delete question failed", zap.Int("id", id), zap.Error(err))
		h.helper.SendInternalError(c, "Failed to delete question")
		return
	}
	h.helper.SendMessage(c, "Question deleted successfully")
}
