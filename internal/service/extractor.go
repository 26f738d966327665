package service

import (
	"sort"

	"career-match/internal/domain"
	"career-match/internal/questionnaire"
)

// skillMappings traduce el nivel de acuerdo de ciertas preguntas likert a skills.
var skillMappings = map[string]map[string]map[string]float64{
	"enjoys_programming": {
		domain.StronglyAgree: {"programming": 0.9, "analytical": 0.7},
		domain.Agree:         {"programming": 0.7, "analytical": 0.5},
		domain.Neutral:       {"programming": 0.3},
	},
	"likes_data_analysis": {
		domain.StronglyAgree: {"data_analysis": 0.9, "analytical": 0.8},
		domain.Agree:         {"data_analysis": 0.7, "analytical": 0.6},
		domain.Neutral:       {"data_analysis": 0.3},
	},
	"creative_projects": {
		domain.StronglyAgree: {"creative": 0.9, "design": 0.7},
		domain.Agree:         {"creative": 0.7, "design": 0.5},
		domain.Neutral:       {"creative": 0.3},
	},
	"leading_teams": {
		domain.StronglyAgree: {"leadership": 0.9, "communication": 0.7},
		domain.Agree:         {"leadership": 0.7, "communication": 0.5},
		domain.Neutral:       {"leadership": 0.3},
	},
	"helping_others": {
		domain.StronglyAgree: {"healthcare": 0.6, "education": 0.6, "communication": 0.5},
		domain.Agree:         {"healthcare": 0.4, "education": 0.4, "communication": 0.3},
	},
	"business_strategy": {
		domain.StronglyAgree: {"business": 0.9, "analytical": 0.6},
		domain.Agree:         {"business": 0.7, "analytical": 0.4},
		domain.Neutral:       {"business": 0.3},
	},
}

// skillMappingQuestions indica que pregunta alimenta cada tabla de skillMappings.
var skillMappingQuestions = map[int]string{
	5:  "leading_teams",
	15: "enjoys_programming",
	16: "creative_projects",
	17: "helping_others",
	18: "business_strategy",
	19: "likes_data_analysis",
}

// selfAssessmentSkills mapea el skill_type de autoevaluación al nombre de skill.
var selfAssessmentSkills = map[string]string{
	"technical":     "programming",
	"analytical":    "analytical",
	"communication": "communication",
	"leadership":    "leadership",
	"creative":      "creative",
}

var skillLevels = map[string]float64{
	questionnaire.LevelNone:         0,
	questionnaire.LevelBeginner:     0.25,
	questionnaire.LevelIntermediate: 0.5,
	questionnaire.LevelAdvanced:     0.75,
	questionnaire.LevelExpert:       1.0,
}

// toolSkills son las skills que aporta cada herramienta seleccionada.
var toolSkills = map[string]map[string]float64{
	"microsoft_office":      {"excel": 0.7},
	"google_workspace":      {"communication": 0.4},
	"adobe_creative":        {"adobe_creative_suite": 0.8, "design": 0.6},
	"programming_languages": {"programming": 0.8, "python": 0.6},
	"database_tools":        {"sql": 0.8},
	"analytics_tools":       {"data_analysis": 0.8, "analytics": 0.7},
	"design_software":       {"design": 0.8, "figma": 0.6},
	"project_management":    {"project_management": 0.8},
	"social_media":          {"digital_marketing": 0.6, "social_media": 0.8},
	"crm_systems":           {"crm_systems": 0.8, "sales": 0.5},
}

// interestAreaTags expande cada área de interés en los tags que usa el catálogo.
var interestAreaTags = map[string][]string{
	"technology":    {"technology"},
	"creative":      {"creativity", "design", "art"},
	"people":        {"people", "helping_others"},
	"business":      {"business", "entrepreneurship", "strategy"},
	"science":       {"science", "research", "data"},
	"healthcare":    {"healthcare"},
	"education":     {"education", "knowledge"},
	"finance":       {"finance", "numbers", "economics"},
	"communication": {"communication", "writing"},
	"innovation":    {"innovation"},
}

var environmentInterests = map[string]string{
	"remote":     "digital",
	"field":      "social",
	"laboratory": "research",
	"healthcare": "healthcare",
}

// rankingValues traduce las opciones del ranking de valores a tags de valor.
var rankingValues = map[string]string{
	"high_salary":       "high_salary",
	"job_security":      "security",
	"work_life_balance": "work_life_balance",
	"career_growth":     "advancement",
	"meaningful_work":   "impact",
	"creativity":        "creativity",
	"autonomy":          "autonomy",
	"recognition":       "achievement",
}

const rankingTopValues = 3

var motivationValues = map[string]string{
	"achievement": "achievement",
	"service":     "service",
	"expertise":   "continuous_learning",
	"leadership":  "leadership",
	"creativity":  "original",
	"variety":     "flexibility",
}

var collaborationStyles = map[string]map[string]float64{
	"individual": {"independent": 0.9, "collaborative": 0.3},
	"small_team": {"collaborative": 0.7, "independent": 0.5},
	"large_team": {"collaborative": 0.9, "independent": 0.2},
	"leadership": {"collaborative": 0.8, "big_picture": 0.7},
	"flexible":   {"collaborative": 0.6, "independent": 0.6, "flexible": 0.7},
}

var feedbackStyles = map[string]map[string]float64{
	"daily":   {"structured": 0.7},
	"weekly":  {"structured": 0.6},
	"minimal": {"independent": 0.8},
}

// Extractor obtiene skills, intereses, valores y estilo de trabajo de las respuestas.
// Es determinista: las listas salen ordenadas.
type Extractor struct {
	bank *questionnaire.Bank
}

func NewExtractor(bank *questionnaire.Bank) *Extractor {
	if bank == nil {
		bank = questionnaire.New()
	}
	return &Extractor{bank: bank}
}

func (e *Extractor) Extract(answers domain.Answers) domain.ExtractedProfile {
	skills := map[string]float64{}
	workStyle := map[string]float64{}
	interests := map[string]struct{}{}
	values := map[string]struct{}{}

	for id, resp := range answers {
		q, err := e.bank.Question(id)
		if err != nil {
			continue
		}
		switch r := resp.(type) {
		case domain.OrdinalResponse:
			e.extractOrdinal(q, r, skills, workStyle, interests, values)
		case domain.ChoiceResponse:
			e.extractChoice(q, r, skills, workStyle, interests, values)
		case domain.MultiSelectResponse:
			if id == questionnaire.QuestionTools {
				for _, tool := range r.Options {
					mergeMax(skills, toolSkills[tool])
				}
			}
		case domain.RankingResponse:
			if id == questionnaire.QuestionValueRanking {
				for i, option := range r.Order {
					if i >= rankingTopValues {
						break
					}
					if v, ok := rankingValues[option]; ok {
						values[v] = struct{}{}
					}
				}
			}
		}
	}

	return domain.ExtractedProfile{
		Skills:    skills,
		Interests: sortedKeys(interests),
		Values:    sortedKeys(values),
		WorkStyle: workStyle,
	}
}

func (e *Extractor) extractOrdinal(q domain.Question, r domain.OrdinalResponse, skills, workStyle map[string]float64, interests, values map[string]struct{}) {
	level := float64(r.Value()-1) / 4
	agreed := r.Value() >= 4

	if key, ok := skillMappingQuestions[q.ID]; ok {
		mergeMax(skills, skillMappings[key][r.Token])
	}

	switch q.Category {
	case domain.CategoryInterests:
		if agreed && q.InterestArea != "" {
			tags, ok := interestAreaTags[q.InterestArea]
			if !ok {
				tags = []string{q.InterestArea}
			}
			for _, t := range tags {
				interests[t] = struct{}{}
			}
		}
	case domain.CategorySkills:
		if q.SkillType != "" && level > 0 {
			mergeMax(skills, map[string]float64{q.SkillType: level})
		}
		if q.SkillType == "attention_to_detail" {
			mergeMax(workStyle, map[string]float64{"detail_oriented": level})
		}
	case domain.CategoryValues:
		if agreed && q.ValueType != "" {
			values[q.ValueType] = struct{}{}
		}
	case domain.CategoryWorkStyle:
		switch q.StyleType {
		case "pace":
			mergeMax(workStyle, map[string]float64{"fast_paced": level, "methodical": 1 - level})
		case "structure":
			mergeMax(workStyle, map[string]float64{"structured": level, "flexible": 1 - level})
		case "risk_tolerance":
			mergeMax(workStyle, map[string]float64{"big_picture": level})
		}
	}
}

func (e *Extractor) extractChoice(q domain.Question, r domain.ChoiceResponse, skills, workStyle map[string]float64, interests, values map[string]struct{}) {
	switch q.ID {
	case questionnaire.QuestionEnvironment:
		if tag, ok := environmentInterests[r.Option]; ok {
			interests[tag] = struct{}{}
		}
	case questionnaire.QuestionMotivation:
		if v, ok := motivationValues[r.Option]; ok {
			values[v] = struct{}{}
		}
	case questionnaire.QuestionSalary:
		if r.Option == "primary" || r.Option == "important" {
			values["high_salary"] = struct{}{}
		}
	case questionnaire.QuestionCollaboration:
		mergeMax(workStyle, collaborationStyles[r.Option])
	case questionnaire.QuestionFeedback:
		mergeMax(workStyle, feedbackStyles[r.Option])
	default:
		if q.Type == domain.QuestionSelfAssessment {
			if skill, ok := selfAssessmentSkills[q.SkillType]; ok {
				if level := skillLevels[r.Option]; level > 0 {
					mergeMax(skills, map[string]float64{skill: level})
				}
			}
		}
	}
}

// mergeMax combina puntajes quedándose con el máximo por clave.
func mergeMax(dst, src map[string]float64) {
	for k, v := range src {
		if cur, ok := dst[k]; !ok || v > cur {
			dst[k] = v
		}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
