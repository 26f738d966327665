package questionnaire

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"career-match/internal/domain"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidAnswers   = errors.New("invalid answers")
)

// Umbrales de completitud: 80% global y 60% por categoría.
const (
	MinCompletion         = 0.8
	MinCategoryCompletion = 0.6
)

// Bank es el banco de preguntas, de solo lectura.
type Bank struct {
	questions []domain.Question
	byID      map[int]int
}

// New devuelve el banco estático de 50 preguntas.
func New() *Bank {
	return NewWithQuestions(bank())
}

// NewWithQuestions arma un banco a partir de preguntas arbitrarias (tests, variantes).
func NewWithQuestions(questions []domain.Question) *Bank {
	b := &Bank{
		questions: append([]domain.Question(nil), questions...),
		byID:      make(map[int]int, len(questions)),
	}
	for i, q := range b.questions {
		b.byID[q.ID] = i
	}
	return b
}

func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions devuelve todas las preguntas en orden.
func (b *Bank) Questions() []domain.Question {
	out := make([]domain.Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = cloneQuestion(q)
	}
	return out
}

// Question busca una pregunta por id.
func (b *Bank) Question(id int) (domain.Question, error) {
	i, ok := b.byID[id]
	if !ok {
		return domain.Question{}, fmt.Errorf("%w: %d", ErrQuestionNotFound, id)
	}
	return cloneQuestion(b.questions[i]), nil
}

func (b *Bank) ByCategory(category domain.QuestionCategory) []domain.Question {
	var out []domain.Question
	for _, q := range b.questions {
		if q.Category == category {
			out = append(out, cloneQuestion(q))
		}
	}
	return out
}

// Categories devuelve la metadata de cada categoría en orden.
func (b *Bank) Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(domain.QuestionCategories))
	for _, c := range domain.QuestionCategories {
		out = append(out, categoryInfo[c])
	}
	return out
}

// NextQuestion devuelve la siguiente pregunta sin responder después de current.
// ok es false cuando no quedan preguntas.
func (b *Bank) NextQuestion(current int, answers domain.Answers) (int, bool) {
	start := 0
	if i, ok := b.byID[current]; ok {
		start = i + 1
	}
	for _, q := range b.questions[start:] {
		if _, answered := answers[q.ID]; !answered {
			return q.ID, true
		}
	}
	return 0, false
}

// DecodeAnswers convierte respuestas crudas ({"0": "agree", "36": ["crm_systems"]}) al
// caso de Response que corresponde al tipo de cada pregunta. No valida opciones; eso
// queda para Validate.
func (b *Bank) DecodeAnswers(raw map[string]json.RawMessage) (domain.Answers, error) {
	answers := make(domain.Answers, len(raw))
	for key, msg := range raw {
		id, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("%w: question id %q is not a number", ErrInvalidAnswers, key)
		}
		q, err := b.Question(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
		}
		resp, err := decodeResponse(q, msg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
		}
		answers[id] = resp
	}
	return answers, nil
}

func decodeResponse(q domain.Question, msg json.RawMessage) (domain.Response, error) {
	switch q.Type.ResponseKind() {
	case domain.ResponseOrdinal, domain.ResponseChoice:
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return nil, fmt.Errorf("question %d expects a single value", q.ID)
		}
		if q.Type.ResponseKind() == domain.ResponseOrdinal {
			return domain.OrdinalResponse{Token: s}, nil
		}
		return domain.ChoiceResponse{Option: s}, nil
	default:
		var list []string
		if err := json.Unmarshal(msg, &list); err != nil {
			return nil, fmt.Errorf("question %d expects a list of values", q.ID)
		}
		if q.Type.ResponseKind() == domain.ResponseRanking {
			return domain.RankingResponse{Order: list}, nil
		}
		return domain.MultiSelectResponse{Options: list}, nil
	}
}

// Validate aplica las reglas de cada tipo de pregunta y devuelve la confianza por respuesta.
// Ante la primera respuesta inválida (en orden de id) devuelve ErrInvalidAnswers.
func (b *Bank) Validate(answers domain.Answers) (map[int]float64, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: no answers", ErrInvalidAnswers)
	}
	confidence := make(map[int]float64, len(answers))
	for _, id := range sortedIDs(answers) {
		q, err := b.Question(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
		}
		c, err := q.Validate(answers[id])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAnswers, err)
		}
		confidence[id] = c
	}
	return confidence, nil
}

// CompletionStatus resume el avance global y por categoría. Las respuestas inválidas
// cuentan como respondidas pero no aportan a la confianza promedio.
func (b *Bank) CompletionStatus(answers domain.Answers) domain.CompletionStatus {
	status := domain.CompletionStatus{
		TotalQuestions:     len(b.questions),
		CategoryCompletion: make(map[domain.QuestionCategory]domain.CategoryCompletion, len(domain.QuestionCategories)),
	}

	totals := make(map[domain.QuestionCategory]int)
	answered := make(map[domain.QuestionCategory]int)
	var confSum float64
	var confN int
	for _, q := range b.questions {
		totals[q.Category]++
		resp, ok := answers[q.ID]
		if !ok {
			continue
		}
		answered[q.Category]++
		status.AnsweredQuestions++
		if c, err := q.Validate(resp); err == nil {
			confSum += c
			confN++
		}
	}

	if status.TotalQuestions > 0 {
		status.CompletionPercentage = float64(status.AnsweredQuestions) / float64(status.TotalQuestions) * 100
	}
	if confN > 0 {
		status.AverageConfidence = confSum / float64(confN)
	}

	status.AllCategoriesRepresented = true
	for _, c := range domain.QuestionCategories {
		total := totals[c]
		if total == 0 {
			continue
		}
		pct := float64(answered[c]) / float64(total) * 100
		status.CategoryCompletion[c] = domain.CategoryCompletion{
			Answered:   answered[c],
			Total:      total,
			Percentage: pct,
		}
		if pct < MinCategoryCompletion*100 {
			status.AllCategoriesRepresented = false
		}
	}
	overallOK := status.TotalQuestions > 0 &&
		float64(status.AnsweredQuestions)/float64(status.TotalQuestions) >= MinCompletion
	status.IsCompleteEnough = overallOK && status.AllCategoriesRepresented
	return status
}

func sortedIDs(answers domain.Answers) []int {
	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func cloneQuestion(q domain.Question) domain.Question {
	q.Options = append([]domain.Option(nil), q.Options...)
	return q
}
