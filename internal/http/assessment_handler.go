package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"career-match/internal/domain"
	"career-match/internal/metrics"
	"career-match/internal/questionnaire"
	"career-match/internal/service"
)

// AssessmentHandler expone el flujo de assessment.
type AssessmentHandler struct {
	logger  *zap.Logger
	svc     *service.AssessmentService
	limiter service.SubmissionLimiter
}

func NewAssessmentHandler(logger *zap.Logger, svc *service.AssessmentService, limiter service.SubmissionLimiter) *AssessmentHandler {
	return &AssessmentHandler{
		logger:  logger,
		svc:     svc,
		limiter: limiter,
	}
}

type answersRequest struct {
	Answers map[string]json.RawMessage `json:"answers" binding:"required"`
}

// CreateAssessment maneja POST /assessments.
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var req answersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	answers, err := h.svc.Bank().DecodeAnswers(req.Answers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Las respuestas inválidas no consumen cupo del limitador.
	if _, err := h.svc.Bank().Validate(answers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := authUserID(c)
	if h.limiter != nil {
		key := userID
		if key == "" {
			key = c.ClientIP()
		}
		if !h.limiter.Allow(key) {
			metrics.SubmissionsLimited.Inc()
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many assessments, try again later"})
			return
		}
	}

	assessment, err := h.svc.Assess(c.Request.Context(), userID, answers)
	if err != nil {
		if errors.Is(err, questionnaire.ErrInvalidAnswers) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("assessment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process assessment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"assessment": assessment})
}

// GetAssessment maneja GET /assessments/:id.
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	assessment, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessment": assessment})
}

// ListAssessments maneja GET /assessments y devuelve los del usuario autenticado.
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	userID := authUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	list, err := h.svc.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		h.logger.Error("list assessments failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list assessments"})
		return
	}
	if list == nil {
		list = []domain.Assessment{}
	}
	c.JSON(http.StatusOK, gin.H{"assessments": list})
}

// SimilarAssessments maneja GET /assessments/:id/similar.
func (h *AssessmentHandler) SimilarAssessments(c *gin.Context) {
	if _, ok := h.load(c); !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	similar, err := h.svc.Similar(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		h.logger.Error("similar assessments failed", zap.String("assessment_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not find similar assessments"})
		return
	}
	type similarItem struct {
		ID       string              `json:"id"`
		Distance float64             `json:"distance"`
		Traits   domain.TraitVector  `json:"traits"`
		TopMatch *domain.MatchRecord `json:"top_match,omitempty"`
	}
	out := make([]similarItem, 0, len(similar))
	for _, s := range similar {
		item := similarItem{ID: s.Assessment.ID, Distance: s.Distance, Traits: s.Assessment.Traits}
		if len(s.Assessment.Matches) > 0 {
			top := s.Assessment.Matches[0]
			item.TopMatch = &top
		}
		out = append(out, item)
	}
	c.JSON(http.StatusOK, gin.H{"similar": out})
}

// load busca el assessment del path y verifica que pertenezca al usuario autenticado.
func (h *AssessmentHandler) load(c *gin.Context) (domain.Assessment, bool) {
	id := c.Param("id")
	assessment, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAssessmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
			return domain.Assessment{}, false
		}
		h.logger.Error("get assessment failed", zap.String("assessment_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load assessment"})
		return domain.Assessment{}, false
	}
	if userID := authUserID(c); userID != "" && assessment.UserID != "" && assessment.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
		return domain.Assessment{}, false
	}
	return assessment, true
}
