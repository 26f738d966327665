package service

import (
	"sort"

	"career-match/internal/domain"
)

// QuestionTraitWeights asigna a cada pregunta su aporte a uno o más rasgos.
type QuestionTraitWeights map[int]map[domain.Trait]float64

// DefaultQuestionTraitWeights es la tabla fija de aportes por pregunta (ids 0-19).
func DefaultQuestionTraitWeights() QuestionTraitWeights {
	o, c, e, a, n := domain.TraitOpenness, domain.TraitConscientiousness, domain.TraitExtraversion, domain.TraitAgreeableness, domain.TraitNeuroticism
	return QuestionTraitWeights{
		0:  {o: 0.3, c: 0.2},
		1:  {c: 0.4, o: 0.3},
		2:  {o: 0.6, e: 0.1},
		3:  {e: 0.5, a: 0.3},
		4:  {a: 0.5, c: 0.2},
		5:  {e: -0.4, c: 0.2},
		6:  {o: 0.2, e: 0.1},
		7:  {c: 0.3, n: 0.2},
		8:  {e: 0.3, a: 0.2},
		9:  {e: 0.6, a: 0.3},
		10: {c: 0.4, n: 0.2},
		11: {o: 0.5, c: 0.2},
		12: {a: 0.4, e: 0.3},
		13: {n: 0.4, c: 0.2},
		14: {o: 0.4, e: 0.2},
		15: {c: 0.5, n: 0.2},
		16: {e: 0.5, a: 0.2},
		17: {o: 0.3, c: 0.4},
		18: {a: 0.5, e: 0.2},
		19: {c: 0.4, o: 0.2},
	}
}

// Rango teórico del acumulado por rasgo antes de reescalar a [0,1].
const (
	traitScoreMin = -2.0
	traitScoreMax = 2.0
)

// TraitScorer convierte respuestas ordinales en el vector de cinco rasgos.
type TraitScorer struct {
	weights QuestionTraitWeights
}

func NewTraitScorer() *TraitScorer {
	return &TraitScorer{weights: DefaultQuestionTraitWeights()}
}

// NewTraitScorerWithWeights permite inyectar otra tabla de aportes.
func NewTraitScorerWithWeights(weights QuestionTraitWeights) *TraitScorer {
	if weights == nil {
		weights = QuestionTraitWeights{}
	}
	return &TraitScorer{weights: weights}
}

// Score acumula (valor-3)*peso por rasgo y reescala de [-2,2] a [0,1] con recorte.
// Solo consume respuestas ordinales; los tokens desconocidos valen 3 (neutral).
// Un rasgo sin aportes queda en 0.5.
func (s *TraitScorer) Score(answers domain.Answers) domain.TraitVector {
	totals := make(map[domain.Trait]float64, len(domain.Traits))
	for _, t := range domain.Traits {
		totals[t] = 0
	}

	// Orden fijo para que la suma en punto flotante sea reproducible.
	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		ordinal, ok := answers[id].(domain.OrdinalResponse)
		if !ok {
			continue
		}
		traitWeights, ok := s.weights[id]
		if !ok {
			continue
		}
		centered := float64(ordinal.Value() - 3)
		for trait, w := range traitWeights {
			if !trait.Valid() {
				continue
			}
			totals[trait] += centered * w
		}
	}

	scores := make(map[domain.Trait]float64, len(totals))
	for trait, total := range totals {
		scores[trait] = (total - traitScoreMin) / (traitScoreMax - traitScoreMin)
	}
	return domain.NewTraitVector(scores)
}
