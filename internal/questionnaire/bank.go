package questionnaire

import "career-match/internal/domain"

// CategoryInfo describe una categoría del cuestionario.
type CategoryInfo struct {
	Category    domain.QuestionCategory `json:"category"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Weight      float64                 `json:"weight"`
}

var categoryInfo = map[domain.QuestionCategory]CategoryInfo{
	domain.CategoryPersonality: {domain.CategoryPersonality, "Personality Traits", "Understanding your core personality characteristics", 0.30},
	domain.CategoryInterests:   {domain.CategoryInterests, "Career Interests", "What activities and subjects engage you most", 0.25},
	domain.CategorySkills:      {domain.CategorySkills, "Skills & Abilities", "Your current and potential skill areas", 0.20},
	domain.CategoryValues:      {domain.CategoryValues, "Work Values", "What matters most to you in a career", 0.15},
	domain.CategoryWorkStyle:   {domain.CategoryWorkStyle, "Work Style Preferences", "Your preferred work environment and approach", 0.10},
}

func likertOptions() []domain.Option {
	return []domain.Option{
		{Value: domain.StronglyDisagree, Text: "Strongly Disagree"},
		{Value: domain.Disagree, Text: "Disagree"},
		{Value: domain.Neutral, Text: "Neutral"},
		{Value: domain.Agree, Text: "Agree"},
		{Value: domain.StronglyAgree, Text: "Strongly Agree"},
	}
}

// Niveles de autoevaluación de skills.
const (
	LevelNone         = "none"
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

func skillLevelOptions() []domain.Option {
	return []domain.Option{
		{Value: LevelNone, Text: "No experience"},
		{Value: LevelBeginner, Text: "Beginner - Basic knowledge"},
		{Value: LevelIntermediate, Text: "Intermediate - Some experience"},
		{Value: LevelAdvanced, Text: "Advanced - Extensive experience"},
		{Value: LevelExpert, Text: "Expert - Could teach others"},
	}
}

func likert(id int, cat domain.QuestionCategory, text string, weight float64) domain.Question {
	return domain.Question{
		ID:       id,
		Category: cat,
		Type:     domain.QuestionLikert,
		Text:     text,
		Options:  likertOptions(),
		Weight:   weight,
	}
}

func personality(id int, trait domain.Trait, text string, weight float64, reverse bool) domain.Question {
	q := likert(id, domain.CategoryPersonality, text, weight)
	q.Trait = trait
	q.ReverseScored = reverse
	return q
}

func interest(id int, area, text string, weight float64) domain.Question {
	q := likert(id, domain.CategoryInterests, text, weight)
	q.InterestArea = area
	return q
}

func selfAssessment(id int, skill, text string) domain.Question {
	return domain.Question{
		ID:        id,
		Category:  domain.CategorySkills,
		Type:      domain.QuestionSelfAssessment,
		SkillType: skill,
		Text:      text,
		Options:   skillLevelOptions(),
		Weight:    1.0,
	}
}

func skillLikert(id int, skill, text string, weight float64) domain.Question {
	q := likert(id, domain.CategorySkills, text, weight)
	q.SkillType = skill
	return q
}

func value(id int, valueType, text string, weight float64) domain.Question {
	q := likert(id, domain.CategoryValues, text, weight)
	q.ValueType = valueType
	return q
}

func styleLikert(id int, style, text string, weight float64) domain.Question {
	q := likert(id, domain.CategoryWorkStyle, text, weight)
	q.StyleType = style
	return q
}

func choice(id int, cat domain.QuestionCategory, text string, weight float64, opts ...domain.Option) domain.Question {
	return domain.Question{
		ID:       id,
		Category: cat,
		Type:     domain.QuestionMultipleChoice,
		Text:     text,
		Options:  opts,
		Weight:   weight,
	}
}

func opt(value, text string) domain.Option {
	return domain.Option{Value: value, Text: text}
}

// Ids de preguntas con tratamiento especial en la extracción.
const (
	QuestionEnvironment   = 24
	QuestionSchedule      = 25
	QuestionTools         = 36
	QuestionValueRanking  = 37
	QuestionMotivation    = 43
	QuestionSalary        = 44
	QuestionCollaboration = 47
	QuestionFeedback      = 49
)

// bank construye el banco de 50 preguntas. Los ids son consecutivos desde 0.
func bank() []domain.Question {
	questions := []domain.Question{
		personality(0, domain.TraitOpenness, "I enjoy exploring new ideas and concepts, even if they seem unconventional.", 0.8, false),
		personality(1, domain.TraitOpenness, "I prefer trying new approaches rather than sticking to proven methods.", 0.7, false),
		personality(2, domain.TraitConscientiousness, "I am very organized and like to plan things in advance.", 0.9, false),
		personality(3, domain.TraitConscientiousness, "I always complete tasks thoroughly, even when no one is checking my work.", 0.8, false),
		personality(4, domain.TraitExtraversion, "I feel energized when working with groups of people.", 0.9, false),
		personality(5, domain.TraitExtraversion, "I often take the lead in group discussions and meetings.", 0.7, false),
		personality(6, domain.TraitAgreeableness, "I prioritize maintaining harmony in team relationships.", 0.8, false),
		personality(7, domain.TraitAgreeableness, "I find it easy to trust others and assume positive intentions.", 0.6, false),
		personality(8, domain.TraitNeuroticism, "I remain calm and composed even in stressful situations.", 0.9, true),
		personality(9, domain.TraitOpenness, "I enjoy creative activities like art, music, or writing.", 0.6, false),
		personality(10, domain.TraitConscientiousness, "I set high standards for myself and work hard to meet them.", 0.7, false),
		personality(11, domain.TraitExtraversion, "I prefer working alone rather than in large groups.", 0.8, true),
		personality(12, domain.TraitAgreeableness, "I enjoy helping others succeed, even if it means less recognition for myself.", 0.9, false),
		personality(13, domain.TraitNeuroticism, "I worry frequently about making mistakes or failing.", 0.7, false),
		personality(14, domain.TraitOpenness, "I enjoy learning about diverse cultures and perspectives.", 0.5, false),

		interest(15, "technology", "I find working with computers and technology fascinating.", 1.0),
		interest(16, "creative", "I enjoy creative problem-solving and artistic expression.", 1.0),
		interest(17, "people", "I am drawn to careers that involve helping and supporting others.", 1.0),
		interest(18, "business", "I am interested in business strategy and entrepreneurship.", 1.0),
		interest(19, "science", "I enjoy conducting research and analyzing data to find insights.", 1.0),
		interest(20, "healthcare", "I am passionate about health, wellness, and medical care.", 1.0),
		interest(21, "education", "I enjoy teaching and sharing knowledge with others.", 1.0),
		interest(22, "finance", "I find financial markets and economic analysis interesting.", 1.0),
		interest(23, "communication", "I enjoy writing, speaking, and communicating ideas effectively.", 1.0),
		choice(QuestionEnvironment, domain.CategoryInterests, "Which type of work environment appeals to you most?", 0.8,
			opt("office_traditional", "Traditional office with colleagues"),
			opt("office_modern", "Modern, flexible office space"),
			opt("remote", "Remote work from home"),
			opt("hybrid", "Hybrid office and remote"),
			opt("field", "Field work or travel-based"),
			opt("laboratory", "Laboratory or research facility"),
			opt("healthcare", "Hospital or medical facility"),
		),
		choice(QuestionSchedule, domain.CategoryInterests, "What type of work schedule do you prefer?", 0.6,
			opt("standard", "Standard business hours (9-5)"),
			opt("flexible", "Flexible hours with core requirements"),
			opt("early", "Early morning start"),
			opt("evening", "Evening or night shifts"),
			opt("varies", "Variable schedule based on projects"),
			opt("seasonal", "Seasonal work patterns"),
		),
		interest(26, "innovation", "I am excited by cutting-edge technologies and innovations.", 0.9),

		selfAssessment(27, "technical", "Rate your current level of programming/coding skills:"),
		selfAssessment(28, "analytical", "Rate your ability to analyze data and identify patterns:"),
		selfAssessment(29, "communication", "Rate your verbal and written communication skills:"),
		selfAssessment(30, "leadership", "Rate your leadership and team management abilities:"),
		selfAssessment(31, "creative", "Rate your creative and design abilities:"),
		skillLikert(32, "problem_solving", "I excel at breaking down complex problems into manageable parts.", 0.9),
		skillLikert(33, "learning", "I quickly learn new skills and adapt to new technologies.", 0.8),
		skillLikert(34, "attention_to_detail", "I consistently catch errors and maintain high accuracy in my work.", 0.7),
		skillLikert(35, "multitasking", "I effectively manage multiple projects and deadlines simultaneously.", 0.6),
		{
			ID:       QuestionTools,
			Category: domain.CategorySkills,
			Type:     domain.QuestionMultipleSelect,
			Text:     "Which technical tools are you comfortable using? (Select all that apply)",
			Options: []domain.Option{
				opt("microsoft_office", "Microsoft Office Suite"),
				opt("google_workspace", "Google Workspace"),
				opt("adobe_creative", "Adobe Creative Suite"),
				opt("programming_languages", "Programming Languages"),
				opt("database_tools", "Database Management Tools"),
				opt("analytics_tools", "Data Analytics Tools"),
				opt("design_software", "Design Software"),
				opt("project_management", "Project Management Tools"),
				opt("social_media", "Social Media Management"),
				opt("crm_systems", "CRM Systems"),
			},
			Weight: 0.5,
		},

		{
			ID:       QuestionValueRanking,
			Category: domain.CategoryValues,
			Type:     domain.QuestionRanking,
			Text:     "Rank these work values in order of importance to you (1 = most important):",
			Options: []domain.Option{
				opt("high_salary", "High salary and financial rewards"),
				opt("job_security", "Job security and stability"),
				opt("work_life_balance", "Work-life balance"),
				opt("career_growth", "Career advancement opportunities"),
				opt("meaningful_work", "Meaningful, impactful work"),
				opt("creativity", "Creative freedom and expression"),
				opt("autonomy", "Independence and autonomy"),
				opt("recognition", "Recognition and prestige"),
			},
			Weight: 1.0,
		},
		value(38, "impact", "It is important for me to make a positive impact on society through my work.", 0.9),
		value(39, "innovation", "I value working in innovative, forward-thinking organizations.", 0.8),
		value(40, "collaboration", "I prefer collaborative environments over competitive ones.", 0.7),
		value(41, "stability", "I value predictability and routine in my work environment.", 0.6),
		value(42, "learning", "Continuous learning and professional development are essential to me.", 0.8),
		choice(QuestionMotivation, domain.CategoryValues, "What motivates you most in your career?", 0.9,
			opt("achievement", "Achieving challenging goals and objectives"),
			opt("service", "Serving others and making a difference"),
			opt("expertise", "Becoming an expert in my field"),
			opt("leadership", "Leading teams and organizations"),
			opt("creativity", "Creating something new and original"),
			opt("variety", "Having variety and new experiences"),
		),
		choice(QuestionSalary, domain.CategoryValues, "How important is salary compared to other job factors?", 0.7,
			opt("primary", "Primary consideration - most important factor"),
			opt("important", "Important but not the only factor"),
			opt("moderate", "Moderately important"),
			opt("secondary", "Secondary to other factors like fulfillment"),
			opt("minimal", "Not a major consideration"),
		),

		styleLikert(45, "pace", "I prefer fast-paced, dynamic work environments over steady, methodical ones.", 0.8),
		styleLikert(46, "structure", "I work better with clear guidelines and structured processes.", 0.7),
		choice(QuestionCollaboration, domain.CategoryWorkStyle, "How do you prefer to work on projects?", 0.9,
			opt("individual", "Independently with minimal supervision"),
			opt("small_team", "In small teams (2-4 people)"),
			opt("large_team", "In larger teams (5+ people)"),
			opt("leadership", "Leading and directing others"),
			opt("flexible", "Flexible - depends on the project"),
		),
		styleLikert(48, "risk_tolerance", "I am comfortable taking calculated risks for potentially greater rewards.", 0.6),
		choice(QuestionFeedback, domain.CategoryWorkStyle, "How often do you prefer to receive feedback on your work?", 0.5,
			opt("daily", "Daily check-ins and feedback"),
			opt("weekly", "Weekly progress reviews"),
			opt("monthly", "Monthly formal reviews"),
			opt("project_based", "At major project milestones"),
			opt("minimal", "Minimal feedback - prefer autonomy"),
		),
	}
	questions[QuestionCollaboration].StyleType = "collaboration"
	questions[QuestionFeedback].StyleType = "feedback"
	return questions
}
