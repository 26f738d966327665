package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidResponse = errors.New("invalid response")

// QuestionCategory agrupa preguntas del cuestionario.
type QuestionCategory string

const (
	CategoryPersonality QuestionCategory = "personality"
	CategoryInterests   QuestionCategory = "interests"
	CategorySkills      QuestionCategory = "skills"
	CategoryValues      QuestionCategory = "values"
	CategoryWorkStyle   QuestionCategory = "work_style"
)

// QuestionCategories en el orden en que aparecen en el cuestionario.
var QuestionCategories = []QuestionCategory{
	CategoryPersonality,
	CategoryInterests,
	CategorySkills,
	CategoryValues,
	CategoryWorkStyle,
}

// QuestionType define la forma de respuesta esperada.
type QuestionType string

const (
	QuestionLikert         QuestionType = "likert"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionSelfAssessment QuestionType = "self_assessment"
	QuestionMultipleSelect QuestionType = "multiple_select"
	QuestionRanking        QuestionType = "ranking"
)

// ResponseKind identifica el caso concreto de Response.
type ResponseKind string

const (
	ResponseOrdinal     ResponseKind = "ordinal"
	ResponseChoice      ResponseKind = "choice"
	ResponseMultiSelect ResponseKind = "multi_select"
	ResponseRanking     ResponseKind = "ranking"
)

// ResponseKind devuelve la forma de respuesta que acepta el tipo de pregunta.
func (t QuestionType) ResponseKind() ResponseKind {
	switch t {
	case QuestionLikert:
		return ResponseOrdinal
	case QuestionMultipleSelect:
		return ResponseMultiSelect
	case QuestionRanking:
		return ResponseRanking
	default:
		return ResponseChoice
	}
}

// Tokens de la escala de acuerdo de cinco puntos.
const (
	StronglyDisagree = "strongly_disagree"
	Disagree         = "disagree"
	Neutral          = "neutral"
	Agree            = "agree"
	StronglyAgree    = "strongly_agree"
)

var agreementValues = map[string]int{
	StronglyDisagree: 1,
	Disagree:         2,
	Neutral:          3,
	Agree:            4,
	StronglyAgree:    5,
}

// AgreementValue convierte un token de acuerdo a 1..5.
func AgreementValue(token string) (int, bool) {
	v, ok := agreementValues[strings.TrimSpace(strings.ToLower(token))]
	return v, ok
}

type Option struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// Question es una entrada del banco de preguntas. Solo uno de los campos de dimensión
// (Trait, InterestArea, SkillType, ValueType, StyleType) suele estar presente.
type Question struct {
	ID            int              `json:"id"`
	Category      QuestionCategory `json:"category"`
	Type          QuestionType     `json:"type"`
	Text          string           `json:"question"`
	Options       []Option         `json:"options"`
	Weight        float64          `json:"weight"`
	Trait         Trait            `json:"trait,omitempty"`
	InterestArea  string           `json:"interest_area,omitempty"`
	SkillType     string           `json:"skill_type,omitempty"`
	ValueType     string           `json:"value_type,omitempty"`
	StyleType     string           `json:"style_type,omitempty"`
	ReverseScored bool             `json:"reverse_scored,omitempty"`
}

func (q Question) hasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Validate comprueba la respuesta contra las reglas del tipo de pregunta y devuelve
// la confianza asociada (0..1).
func (q Question) Validate(r Response) (float64, error) {
	if r == nil {
		return 0, fmt.Errorf("%w: question %d has no response", ErrInvalidResponse, q.ID)
	}
	if r.Kind() != q.Type.ResponseKind() {
		return 0, fmt.Errorf("%w: question %d expects %s, got %s", ErrInvalidResponse, q.ID, q.Type.ResponseKind(), r.Kind())
	}
	return r.validate(q)
}

// Response es la respuesta a una pregunta. El conjunto de casos es cerrado:
// OrdinalResponse, ChoiceResponse, MultiSelectResponse y RankingResponse.
type Response interface {
	Kind() ResponseKind
	validate(q Question) (float64, error)
}

// OrdinalResponse es un token de la escala de acuerdo.
type OrdinalResponse struct {
	Token string `json:"token"`
}

func (OrdinalResponse) Kind() ResponseKind { return ResponseOrdinal }

// Value devuelve 1..5; los tokens desconocidos valen 3 (neutral).
func (r OrdinalResponse) Value() int {
	if v, ok := AgreementValue(r.Token); ok {
		return v
	}
	return 3
}

func (r OrdinalResponse) validate(q Question) (float64, error) {
	if !q.hasOption(r.Token) {
		return 0, fmt.Errorf("%w: question %d: %q is not on the agreement scale", ErrInvalidResponse, q.ID, r.Token)
	}
	if r.Token == Neutral {
		return 0.7, nil
	}
	return 1.0, nil
}

// ChoiceResponse es una opción seleccionada (multiple choice o autoevaluación).
type ChoiceResponse struct {
	Option string `json:"option"`
}

func (ChoiceResponse) Kind() ResponseKind { return ResponseChoice }

func (r ChoiceResponse) validate(q Question) (float64, error) {
	if !q.hasOption(r.Option) {
		return 0, fmt.Errorf("%w: question %d: unknown option %q", ErrInvalidResponse, q.ID, r.Option)
	}
	return 1.0, nil
}

// MultiSelectResponse es un conjunto de opciones.
type MultiSelectResponse struct {
	Options []string `json:"options"`
}

func (MultiSelectResponse) Kind() ResponseKind { return ResponseMultiSelect }

func (r MultiSelectResponse) validate(q Question) (float64, error) {
	for _, o := range r.Options {
		if !q.hasOption(o) {
			return 0, fmt.Errorf("%w: question %d: unknown option %q", ErrInvalidResponse, q.ID, o)
		}
	}
	return Clamp01(0.8 + float64(len(r.Options))*0.1), nil
}

// RankingResponse es un orden total de las opciones, la primera es la más importante.
type RankingResponse struct {
	Order []string `json:"order"`
}

func (RankingResponse) Kind() ResponseKind { return ResponseRanking }

func (r RankingResponse) validate(q Question) (float64, error) {
	if len(r.Order) != len(q.Options) {
		return 0, fmt.Errorf("%w: question %d: must rank all %d options exactly once", ErrInvalidResponse, q.ID, len(q.Options))
	}
	seen := make(map[string]struct{}, len(r.Order))
	for _, o := range r.Order {
		if !q.hasOption(o) {
			return 0, fmt.Errorf("%w: question %d: unknown option %q", ErrInvalidResponse, q.ID, o)
		}
		if _, dup := seen[o]; dup {
			return 0, fmt.Errorf("%w: question %d: option %q ranked twice", ErrInvalidResponse, q.ID, o)
		}
		seen[o] = struct{}{}
	}
	return 0.95, nil
}

// Answers mapea id de pregunta a respuesta.
type Answers map[int]Response

// MarshalJSON serializa las respuestas en su forma cruda: un string para respuestas
// ordinales o de opción única, y una lista para selección multiple o ranking.
func (a Answers) MarshalJSON() ([]byte, error) {
	raw := make(map[string]any, len(a))
	for id, r := range a {
		key := strconv.Itoa(id)
		switch v := r.(type) {
		case OrdinalResponse:
			raw[key] = v.Token
		case ChoiceResponse:
			raw[key] = v.Option
		case MultiSelectResponse:
			raw[key] = append([]string{}, v.Options...)
		case RankingResponse:
			raw[key] = append([]string{}, v.Order...)
		}
	}
	return json.Marshal(raw)
}
