package service

import (
	"sort"

	"career-match/internal/domain"
)

// TopMatches ordena por puntaje descendente; los empates conservan el orden del catálogo.
// Con limit <= 0 devuelve todos.
func TopMatches(matches map[string]domain.MatchRecord, limit int) []domain.MatchRecord {
	out := make([]domain.MatchRecord, 0, len(matches))
	for _, m := range matches {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].CareerID < out[j].CareerID
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GroupByCategory agrupa por categoría de carrera; cada grupo queda ordenado como TopMatches.
func GroupByCategory(matches map[string]domain.MatchRecord) map[string][]domain.RankedMatch {
	groups := make(map[string][]domain.RankedMatch)
	for _, m := range TopMatches(matches, 0) {
		category := m.Career.Category
		groups[category] = append(groups[category], domain.RankedMatch{CareerID: m.CareerID, Match: m})
	}
	return groups
}
