package service

import "career-match/internal/domain"

// Tablas de referencia del algoritmo de matching. Son datos versionados: cambiarlas
// cambia los puntajes, por eso cada una tiene sus propios tests.

// traitImportance pondera cada rasgo dentro del match de personalidad.
var traitImportance = map[domain.Trait]float64{
	domain.TraitConscientiousness: 1.2,
	domain.TraitOpenness:          1.1,
	domain.TraitExtraversion:      1.0,
	domain.TraitAgreeableness:     1.0,
	domain.TraitNeuroticism:       0.9,
}

// skillRelations agrupa skills que se consideran relacionadas aunque no compartan texto.
var skillRelations = []struct {
	base    string
	related []string
}{
	{"python", []string{"programming", "coding", "software development"}},
	{"javascript", []string{"web development", "frontend", "programming"}},
	{"communication", []string{"presentation", "writing", "interpersonal"}},
	{"leadership", []string{"management", "team lead", "supervision"}},
	{"analytics", []string{"analysis", "data analysis", "statistics"}},
	{"design", []string{"creative", "visual design", "ui/ux"}},
	{"problem solving", []string{"critical thinking", "analytical", "troubleshooting"}},
}

// interestCategories define las cinco categorías amplias por pertenencia de palabras clave.
// El nombre de la categoría no cuenta como palabra clave.
var interestCategories = []struct {
	name     string
	keywords []string
}{
	{"technology", []string{"programming", "computers", "software", "digital"}},
	{"creative", []string{"art", "design", "writing", "music", "innovation"}},
	{"people", []string{"helping", "teaching", "healthcare", "social"}},
	{"business", []string{"finance", "marketing", "sales", "entrepreneurship"}},
	{"science", []string{"research", "analysis", "experiments", "data"}},
}

// valueImportance es el peso de cada valor de carrera; los ausentes pesan 1.0.
var valueImportance = map[string]float64{
	"helping_others": 1.2,
	"stability":      1.1,
	"growth":         1.1,
	"creativity":     1.0,
	"innovation":     1.0,
	"flexibility":    0.9,
	"achievement":    1.0,
	"collaboration":  0.9,
}

// valueRelations da crédito parcial cuando el usuario tiene un valor emparentado.
var valueRelations = map[string][]string{
	"helping_others": {"service", "impact", "social_good"},
	"stability":      {"security", "predictability", "steady_income"},
	"growth":         {"advancement", "learning", "development"},
	"creativity":     {"innovation", "artistic", "original"},
	"flexibility":    {"work_life_balance", "autonomy", "freedom"},
}

const relatedValueCredit = 0.7

// workStyleFactors son los ocho factores comparables de estilo de trabajo.
var workStyleFactors = []string{
	"independent",
	"collaborative",
	"structured",
	"flexible",
	"detail_oriented",
	"big_picture",
	"fast_paced",
	"methodical",
}

// highDemandSkills suman bonus cuando la carrera las pide y el usuario las tiene.
var highDemandSkills = []string{
	"python",
	"machine learning",
	"data analysis",
	"digital marketing",
	"project management",
}

// Bonus aplicados después del compuesto.
const (
	bonusExcellentOutlook = 0.05
	bonusGoodOutlook      = 0.02
	bonusHighDemandSkill  = 0.02
	bonusSeniorSalary     = 0.03
	seniorSalaryThreshold = 150000
)

// Ajuste dinámico de pesos.
const (
	strongComponentThreshold = 0.8
	weightBoost              = 0.10
	weightPenalty            = 0.05
)

// DefaultMatchThreshold es el puntaje mínimo (exclusivo) para incluir una carrera.
const DefaultMatchThreshold = 0.25
