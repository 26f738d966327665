package service

import (
	"strings"

	"career-match/internal/domain"
)

// Umbrales fijos de lectura de rasgos.
const (
	highTraitThreshold = 0.6
	lowTraitThreshold  = 0.4

	descriptionHighThreshold = 0.7
	descriptionLowThreshold  = 0.3
)

type traitFragments struct {
	highDescription  string
	lowDescription   string
	highStrength     string
	lowStrength      string
	lowConsideration string
}

// profileFragments son las frases fijas por rasgo para armar la descripción del perfil.
var profileFragments = map[domain.Trait]traitFragments{
	domain.TraitOpenness: {
		highDescription: "creative and open to new experiences",
		lowDescription:  "practical and detail-focused",
		highStrength:    "Innovation and creative problem-solving",
		lowStrength:     "Attention to detail and systematic thinking",
	},
	domain.TraitConscientiousness: {
		highDescription:  "organized and reliable",
		lowDescription:   "flexible and adaptable",
		highStrength:     "Strong work ethic and dependability",
		lowConsideration: "May benefit from structured environments",
	},
	domain.TraitExtraversion: {
		highDescription: "outgoing and energetic",
		lowDescription:  "thoughtful and independent",
		highStrength:    "Strong communication and leadership skills",
		lowStrength:     "Deep focus and analytical thinking",
	},
	domain.TraitAgreeableness: {
		highDescription: "cooperative and trusting",
		lowDescription:  "assertive and competitive",
		highStrength:    "Team collaboration and empathy",
		lowStrength:     "Strategic thinking and negotiation",
	},
	domain.TraitNeuroticism: {
		highDescription:  "emotionally stable and calm",
		lowDescription:   "emotionally sensitive and reactive",
		highStrength:     "Stress management and composure",
		lowConsideration: "May benefit from stress management techniques",
	},
}

type traitDefinition struct {
	name                string
	description         string
	highCharacteristics []string
	lowCharacteristics  []string
	careersHigh         []string
	careersLow          []string
}

var traitDefinitions = map[domain.Trait]traitDefinition{
	domain.TraitOpenness: {
		name:                "Openness to Experience",
		description:         "Appreciation for art, emotion, adventure, unusual ideas, curiosity, and variety of experience",
		highCharacteristics: []string{"Creative", "Imaginative", "Open to new experiences", "Intellectually curious"},
		lowCharacteristics:  []string{"Practical", "Conventional", "Prefers routine", "Traditional"},
		careersHigh:         []string{"artist", "researcher", "entrepreneur", "designer", "writer"},
		careersLow:          []string{"accountant", "administrator", "technician", "operator"},
	},
	domain.TraitConscientiousness: {
		name:                "Conscientiousness",
		description:         "Tendency to be organized, dependable, and show self-discipline",
		highCharacteristics: []string{"Organized", "Responsible", "Dependable", "Persistent", "Detail-oriented"},
		lowCharacteristics:  []string{"Spontaneous", "Flexible", "Casual", "Adaptable"},
		careersHigh:         []string{"project_manager", "accountant", "surgeon", "lawyer", "engineer"},
		careersLow:          []string{"artist", "salesperson", "entertainer", "journalist"},
	},
	domain.TraitExtraversion: {
		name:                "Extraversion",
		description:         "Energy from interacting with people and the external world",
		highCharacteristics: []string{"Outgoing", "Social", "Talkative", "Assertive", "Energetic"},
		lowCharacteristics:  []string{"Reserved", "Independent", "Reflective", "Quiet"},
		careersHigh:         []string{"salesperson", "teacher", "manager", "consultant", "politician"},
		careersLow:          []string{"programmer", "researcher", "writer", "analyst", "technician"},
	},
	domain.TraitAgreeableness: {
		name:                "Agreeableness",
		description:         "Tendency to be compassionate and cooperative toward others",
		highCharacteristics: []string{"Helpful", "Trusting", "Empathetic", "Cooperative", "Modest"},
		lowCharacteristics:  []string{"Competitive", "Critical", "Challenging", "Detached"},
		careersHigh:         []string{"counselor", "teacher", "nurse", "social_worker", "therapist"},
		careersLow:          []string{"lawyer", "executive", "scientist", "critic", "military_officer"},
	},
	domain.TraitNeuroticism: {
		name:                "Emotional Stability",
		description:         "Tendency toward emotional stability and even-temperedness",
		highCharacteristics: []string{"Calm", "Relaxed", "Secure", "Optimistic", "Stress-resistant"},
		lowCharacteristics:  []string{"Anxious", "Temperamental", "Self-conscious", "Emotional"},
		careersHigh:         []string{"pilot", "surgeon", "executive", "emergency_responder", "military"},
		careersLow:          []string{"artist", "writer", "researcher", "analyst"},
	},
}

// ProfileBuilder deriva la lectura cualitativa de un TraitVector. No tiene estado.
type ProfileBuilder struct{}

// Build arma rasgos primarios (> 0.6), descripción, fortalezas, consideraciones y
// preferencias de trabajo.
func (ProfileBuilder) Build(traits domain.TraitVector) domain.PersonalityProfile {
	profile := domain.PersonalityProfile{
		Scores:         traits,
		PrimaryTraits:  []domain.Trait{},
		Strengths:      []string{},
		Considerations: []string{},
	}

	var descriptions []string
	for _, trait := range domain.Traits {
		score := traits.Score(trait)
		if score > highTraitThreshold {
			profile.PrimaryTraits = append(profile.PrimaryTraits, trait)
		}
		frag := profileFragments[trait]
		switch {
		case score > highTraitThreshold:
			descriptions = append(descriptions, frag.highDescription)
			if frag.highStrength != "" {
				profile.Strengths = append(profile.Strengths, frag.highStrength)
			}
		case score < lowTraitThreshold:
			descriptions = append(descriptions, frag.lowDescription)
			if frag.lowStrength != "" {
				profile.Strengths = append(profile.Strengths, frag.lowStrength)
			}
			if frag.lowConsideration != "" {
				profile.Considerations = append(profile.Considerations, frag.lowConsideration)
			}
		}
	}

	profile.Description = "You are " + strings.Join(descriptions, ", ") + "."
	if len(descriptions) == 0 {
		profile.Description = "You have a balanced personality profile."
	}
	profile.WorkPreferences = workPreferences(traits)
	return profile
}

func workPreferences(traits domain.TraitVector) domain.WorkPreferences {
	prefs := domain.WorkPreferences{
		Environment: "Quiet, focused work spaces",
		Tasks:       "Structured, well-defined assignments",
		Management:  "Direct, results-oriented leadership",
		Pace:        "Flexible, adaptable schedules",
	}
	if traits.Score(domain.TraitExtraversion) > highTraitThreshold {
		prefs.Environment = "Collaborative, team-oriented environments"
	}
	if traits.Score(domain.TraitOpenness) > highTraitThreshold {
		prefs.Tasks = "Varied, creative, and innovative projects"
	}
	if traits.Score(domain.TraitAgreeableness) > highTraitThreshold {
		prefs.Management = "Supportive, collaborative leadership"
	}
	if traits.Score(domain.TraitConscientiousness) > highTraitThreshold {
		prefs.Pace = "Planned, deadline-driven work"
	}
	return prefs
}

// DescribeTrait devuelve el nivel (High > 0.7, Low < 0.3, Moderate) y sus implicancias.
// ok es false si el rasgo no pertenece al modelo.
func (ProfileBuilder) DescribeTrait(trait domain.Trait, score float64) (domain.TraitDescription, bool) {
	def, ok := traitDefinitions[trait]
	if !ok {
		return domain.TraitDescription{}, false
	}
	out := domain.TraitDescription{
		Trait:       trait,
		Name:        def.name,
		Description: def.description,
	}
	switch {
	case score > descriptionHighThreshold:
		out.Level = "High"
		out.Characteristics = append([]string(nil), def.highCharacteristics...)
		out.CareerImplications = "Well-suited for " + strings.Join(def.careersHigh, ", ")
	case score < descriptionLowThreshold:
		out.Level = "Low"
		out.Characteristics = append([]string(nil), def.lowCharacteristics...)
		out.CareerImplications = "Well-suited for " + strings.Join(def.careersLow, ", ")
	default:
		out.Level = "Moderate"
		out.Characteristics = append(append([]string(nil), def.highCharacteristics[:2]...), def.lowCharacteristics[:2]...)
		out.CareerImplications = "Flexible across various career types"
	}
	return out, true
}

// DescribeTraits aplica DescribeTrait a los cinco rasgos en orden canónico.
func (b ProfileBuilder) DescribeTraits(traits domain.TraitVector) []domain.TraitDescription {
	out := make([]domain.TraitDescription, 0, len(domain.Traits))
	for _, t := range domain.Traits {
		if d, ok := b.DescribeTrait(t, traits.Score(t)); ok {
			out = append(out, d)
		}
	}
	return out
}

// DevelopmentRecommendations sugiere trabajo sobre responsabilidad, extraversion y
// estabilidad emocional cuando quedan por debajo de 0.4.
func (ProfileBuilder) DevelopmentRecommendations(traits domain.TraitVector) []domain.DevelopmentRecommendation {
	var out []domain.DevelopmentRecommendation
	if traits.Score(domain.TraitConscientiousness) < lowTraitThreshold {
		out = append(out, domain.DevelopmentRecommendation{
			Trait:      "Conscientiousness",
			Suggestion: "Practice time management and organizational skills",
			Activities: []string{"Use task management apps", "Set daily routines", "Break large tasks into smaller steps"},
		})
	}
	if traits.Score(domain.TraitExtraversion) < lowTraitThreshold {
		out = append(out, domain.DevelopmentRecommendation{
			Trait:      "Extraversion",
			Suggestion: "Gradually build communication and social skills",
			Activities: []string{"Join professional groups", "Practice public speaking", "Participate in team activities"},
		})
	}
	if traits.Score(domain.TraitNeuroticism) < lowTraitThreshold {
		out = append(out, domain.DevelopmentRecommendation{
			Trait:      "Emotional Stability",
			Suggestion: "Develop stress management and emotional regulation skills",
			Activities: []string{"Practice mindfulness", "Learn relaxation techniques", "Seek feedback on stress reactions"},
		})
	}
	return out
}
