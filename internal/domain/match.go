package domain

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidWeights = errors.New("invalid match weights")

// MatchBreakdown contiene los cinco sub-puntajes que alimentan el compuesto.
type MatchBreakdown struct {
	Personality float64 `json:"personality"`
	Skills      float64 `json:"skills"`
	Interests   float64 `json:"interests"`
	Values      float64 `json:"values"`
	WorkStyle   float64 `json:"work_style"`
}

// MatchWeights pondera cada componente. Siempre debe sumar 1.0.
type MatchWeights struct {
	Personality float64 `json:"personality"`
	Skills      float64 `json:"skills"`
	Interests   float64 `json:"interests"`
	Values      float64 `json:"values"`
	WorkStyle   float64 `json:"work_style"`
}

// DefaultMatchWeights son los pesos base del algoritmo.
func DefaultMatchWeights() MatchWeights {
	return MatchWeights{
		Personality: 0.35,
		Skills:      0.25,
		Interests:   0.20,
		Values:      0.15,
		WorkStyle:   0.05,
	}
}

func (w MatchWeights) Sum() float64 {
	return w.Personality + w.Skills + w.Interests + w.Values + w.WorkStyle
}

// Normalize reescala los pesos para que sumen 1.0.
func (w MatchWeights) Normalize() MatchWeights {
	total := w.Sum()
	if total <= 0 {
		return DefaultMatchWeights()
	}
	return MatchWeights{
		Personality: w.Personality / total,
		Skills:      w.Skills / total,
		Interests:   w.Interests / total,
		Values:      w.Values / total,
		WorkStyle:   w.WorkStyle / total,
	}
}

// Validate exige pesos no negativos que sumen 1.0 (tolerancia 0.001).
func (w MatchWeights) Validate() error {
	for _, v := range []float64{w.Personality, w.Skills, w.Interests, w.Values, w.WorkStyle} {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%w: negative weight %f", ErrInvalidWeights, v)
		}
	}
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("%w: weights sum to %.4f, must sum to 1.0", ErrInvalidWeights, w.Sum())
	}
	return nil
}

// Apply calcula la suma ponderada de un breakdown.
func (w MatchWeights) Apply(b MatchBreakdown) float64 {
	return b.Personality*w.Personality +
		b.Skills*w.Skills +
		b.Interests*w.Interests +
		b.Values*w.Values +
		b.WorkStyle*w.WorkStyle
}

const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"

	GrowthHigh     = "High"
	GrowthModerate = "Moderate"
	GrowthLimited  = "Limited"
)

// PersonalityFit resume como encaja cada rasgo con el objetivo de la carrera.
type PersonalityFit struct {
	StrongMatches       []Trait `json:"strong_matches"`
	GoodMatches         []Trait `json:"good_matches"`
	PotentialChallenges []Trait `json:"potential_challenges"`
	DevelopmentAreas    []Trait `json:"development_areas"`
}

// MatchRecord es el resultado de evaluar una carrera contra un perfil.
type MatchRecord struct {
	CareerID        string         `json:"career_id"`
	Career          CareerRecord   `json:"career"`
	Position        int            `json:"position"`
	MatchScore      float64        `json:"match_score"`
	Breakdown       MatchBreakdown `json:"breakdown"`
	Weights         MatchWeights   `json:"weights"`
	Bonus           float64        `json:"bonus"`
	ConfidenceLevel string         `json:"confidence_level"`
	GrowthPotential string         `json:"growth_potential"`
	MatchLevel      string         `json:"match_level"`
	PersonalityFit  PersonalityFit `json:"personality_fit"`
	MissingSkills   []string       `json:"missing_skills,omitempty"`
}

// RankedMatch asocia un id de carrera con su match, para vistas agrupadas.
type RankedMatch struct {
	CareerID string      `json:"career_id"`
	Match    MatchRecord `json:"match"`
}

// MatchLevel traduce el puntaje compuesto a una etiqueta descriptiva.
func MatchLevel(score float64) string {
	switch {
	case score >= 0.85:
		return "Excellent Match"
	case score >= 0.70:
		return "Good Match"
	case score >= 0.55:
		return "Fair Match"
	case score >= 0.40:
		return "Potential Match"
	default:
		return "Limited Match"
	}
}
