package domain

import (
	"errors"
	"time"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

// WorkPreferences describe el entorno de trabajo preferido según el perfil.
type WorkPreferences struct {
	Environment string `json:"environment"`
	Tasks       string `json:"tasks"`
	Management  string `json:"management"`
	Pace        string `json:"pace"`
}

// PersonalityProfile es la lectura cualitativa del TraitVector.
type PersonalityProfile struct {
	Scores          TraitVector     `json:"scores"`
	PrimaryTraits   []Trait         `json:"primary_traits"`
	Description     string          `json:"description"`
	Strengths       []string        `json:"strengths"`
	Considerations  []string        `json:"considerations"`
	WorkPreferences WorkPreferences `json:"work_preferences"`
}

// TraitDescription detalla el nivel de un rasgo puntual.
type TraitDescription struct {
	Trait              Trait    `json:"trait"`
	Name               string   `json:"name"`
	Level              string   `json:"level"`
	Description        string   `json:"description"`
	Characteristics    []string `json:"characteristics"`
	CareerImplications string   `json:"career_implications"`
}

type DevelopmentRecommendation struct {
	Trait      string   `json:"trait"`
	Suggestion string   `json:"suggestion"`
	Activities []string `json:"activities"`
}

// ExtractedProfile reúne lo que el extractor obtiene de las respuestas, además de los rasgos.
type ExtractedProfile struct {
	Skills    map[string]float64 `json:"skills"`
	Interests []string           `json:"interests"`
	Values    []string           `json:"values"`
	WorkStyle map[string]float64 `json:"work_style"`
}

// CategoryCompletion es el avance de una categoría del cuestionario.
type CategoryCompletion struct {
	Answered   int     `json:"answered"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// CompletionStatus resume qué tan completo está un set de respuestas.
type CompletionStatus struct {
	TotalQuestions           int                                     `json:"total_questions"`
	AnsweredQuestions        int                                     `json:"answered_questions"`
	CompletionPercentage     float64                                 `json:"completion_percentage"`
	CategoryCompletion       map[QuestionCategory]CategoryCompletion `json:"category_completion"`
	AverageConfidence        float64                                 `json:"average_confidence"`
	AllCategoriesRepresented bool                                    `json:"all_categories_represented"`
	IsCompleteEnough         bool                                    `json:"is_complete_enough"`
}

// ActionPlan sugiere recursos para las skills faltantes y un camino de crecimiento
// para la carrera mejor rankeada.
type ActionPlan struct {
	CareerID          string              `json:"career_id"`
	CareerTitle       string              `json:"career_title"`
	RecommendedSkills map[string][]string `json:"recommended_skills"`
	GrowthPath        []string            `json:"growth_path"`
	NextSteps         []string            `json:"next_steps"`
}

// AssessmentResult es todo lo que se calcula a partir de las respuestas. Es cacheable
// por fingerprint porque no depende del usuario ni del momento.
type AssessmentResult struct {
	Traits       TraitVector                 `json:"traits"`
	Profile      PersonalityProfile          `json:"profile"`
	TraitDetails []TraitDescription          `json:"trait_details"`
	Extracted    ExtractedProfile            `json:"extracted"`
	Matches      []MatchRecord               `json:"matches"`
	Development  []DevelopmentRecommendation `json:"development,omitempty"`
	ActionPlan   *ActionPlan                 `json:"action_plan,omitempty"`
}

// Assessment es el resultado completo de procesar un set de respuestas.
type Assessment struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id,omitempty"`
	Fingerprint string    `json:"fingerprint"`
	Answers     Answers   `json:"answers"`
	CreatedAt   time.Time `json:"created_at"`
	AssessmentResult
}
