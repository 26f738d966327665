package http

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"career-match/internal/catalog"
	"career-match/internal/domain"
)

// CareerHandler expone el catálogo de carreras.
type CareerHandler struct {
	logger  *zap.Logger
	catalog *catalog.Catalog
}

func NewCareerHandler(logger *zap.Logger, cat *catalog.Catalog) *CareerHandler {
	return &CareerHandler{logger: logger, catalog: cat}
}

// ListCareers maneja GET /careers?category=&q=&skills=. q y skills aceptan varios valores
// separados por coma.
func (h *CareerHandler) ListCareers(c *gin.Context) {
	category := c.Query("category")
	keywords := splitCSV(c.Query("q"))
	skills := splitCSV(c.Query("skills"))

	var careers []domain.CareerRecord
	if category == "" && len(keywords) == 0 {
		careers = h.catalog.All()
	} else {
		careers = h.catalog.Search(category, keywords)
	}
	if len(skills) > 0 {
		careers = h.filterBySkills(careers, skills)
	}
	if careers == nil {
		careers = []domain.CareerRecord{}
	}
	c.JSON(http.StatusOK, gin.H{
		"careers":    careers,
		"categories": h.catalog.Categories(),
	})
}

// GetCareer maneja GET /careers/:id.
func (h *CareerHandler) GetCareer(c *gin.Context) {
	career, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrCareerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "career not found"})
			return
		}
		h.logger.Error("get career failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load career"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"career": career})
}

// filterBySkills deja las carreras que requieren alguna de las skills, primero las que
// requieren más; los empates conservan el orden del catálogo.
func (h *CareerHandler) filterBySkills(careers []domain.CareerRecord, skills []string) []domain.CareerRecord {
	counts := h.catalog.BySkills(skills)
	out := careers[:0]
	for _, rec := range careers {
		if counts[rec.ID] > 0 {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := counts[out[i].ID], counts[out[j].ID]
		if ci != cj {
			return ci > cj
		}
		return h.catalog.Position(out[i].ID) < h.catalog.Position(out[j].ID)
	})
	return out
}

func splitCSV(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
