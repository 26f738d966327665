package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"career-match/internal/domain"
	"career-match/internal/questionnaire"
)

// QuestionHandler expone el banco de preguntas y el avance de un set de respuestas.
type QuestionHandler struct {
	logger *zap.Logger
	bank   *questionnaire.Bank
}

func NewQuestionHandler(logger *zap.Logger, bank *questionnaire.Bank) *QuestionHandler {
	return &QuestionHandler{logger: logger, bank: bank}
}

// ListQuestions maneja GET /questions?category=.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions := h.bank.Questions()
	if category := c.Query("category"); category != "" {
		questions = h.bank.ByCategory(domain.QuestionCategory(category))
	}
	if questions == nil {
		questions = []domain.Question{}
	}
	c.JSON(http.StatusOK, gin.H{
		"questions":  questions,
		"categories": h.bank.Categories(),
	})
}

// GetQuestion maneja GET /questions/:id.
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question id must be a number"})
		return
	}
	q, err := h.bank.Question(id)
	if err != nil {
		if errors.Is(err, questionnaire.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
			return
		}
		h.logger.Error("get question failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load question"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"question": q})
}

// CompletionStatus maneja POST /questions/status.
func (h *QuestionHandler) CompletionStatus(c *gin.Context) {
	var req answersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid completion status request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	answers, err := h.bank.DecodeAnswers(req.Answers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"status": h.bank.CompletionStatus(answers)}
	if next, ok := h.bank.NextQuestion(-1, answers); ok {
		resp["next_question"] = next
	}
	c.JSON(http.StatusOK, resp)
}
