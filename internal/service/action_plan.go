package service

import (
	"fmt"
	"strings"

	"career-match/internal/domain"
)

var skillResources = map[string][]string{
	"python":        {"Codecademy Python", "LeetCode", "Automate the Boring Stuff"},
	"data analysis": {"Kaggle", "Coursera Data Science"},
	"design":        {"Figma Tutorials", "UX Collective"},
	"leadership":    {"Harvard Business Review", "LinkedIn Learning Leadership"},
}

var defaultSkillResources = []string{"General skill-building resources"}

var careerGrowthPaths = map[string][]string{
	"software engineer": {"Junior Developer", "Mid-Level Engineer", "Senior Engineer", "Tech Lead"},
	"data scientist":    {"Data Analyst", "Junior DS", "Senior DS", "ML Engineer"},
	"ux designer":       {"UI Designer", "UX Specialist", "Senior Designer", "Design Manager"},
}

var defaultGrowthPath = []string{"Entry-level role", "Mid-level role", "Senior role", "Leadership role"}

// RecommendSkills asigna recursos de aprendizaje a cada skill faltante.
func RecommendSkills(missing []string) map[string][]string {
	out := make(map[string][]string, len(missing))
	for _, skill := range missing {
		resources, ok := skillResources[strings.ToLower(strings.TrimSpace(skill))]
		if !ok {
			resources = defaultSkillResources
		}
		out[skill] = append([]string(nil), resources...)
	}
	return out
}

// GrowthPath devuelve la progresión típica para un título de carrera.
func GrowthPath(careerTitle string) []string {
	path, ok := careerGrowthPaths[strings.ToLower(strings.TrimSpace(careerTitle))]
	if !ok {
		path = defaultGrowthPath
	}
	return append([]string(nil), path...)
}

// BuildActionPlan arma el plan para el mejor match. Sin matches devuelve nil.
func BuildActionPlan(matches []domain.MatchRecord) *domain.ActionPlan {
	if len(matches) == 0 {
		return nil
	}
	top := matches[0]
	plan := &domain.ActionPlan{
		CareerID:          top.CareerID,
		CareerTitle:       top.Career.Title,
		RecommendedSkills: RecommendSkills(top.MissingSkills),
		GrowthPath:        GrowthPath(top.Career.Title),
	}
	for _, skill := range top.MissingSkills {
		plan.NextSteps = append(plan.NextSteps, fmt.Sprintf("Complete one project applying %s", skill))
	}
	if len(plan.NextSteps) == 0 {
		plan.NextSteps = []string{"Continue building expertise in your current skills."}
	}
	return plan
}
