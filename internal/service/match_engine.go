package service

import (
	"fmt"
	"math"
	"strings"

	"career-match/internal/catalog"
	"career-match/internal/domain"
)

// MatchEngine puntúa cada carrera del catálogo contra un perfil. Es puro y sin estado
// mutable: el mismo input y el mismo catálogo producen siempre el mismo resultado.
type MatchEngine struct {
	catalog   *catalog.Catalog
	weights   domain.MatchWeights
	threshold float64
}

// NewMatchEngine valida los pesos base (deben sumar 1.0). Un threshold negativo usa 0.25.
func NewMatchEngine(cat *catalog.Catalog, weights domain.MatchWeights, threshold float64) (*MatchEngine, error) {
	if cat == nil {
		return nil, fmt.Errorf("match engine: nil catalog")
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if threshold < 0 || math.IsNaN(threshold) {
		threshold = DefaultMatchThreshold
	}
	return &MatchEngine{catalog: cat, weights: weights, threshold: threshold}, nil
}

// Weights devuelve los pesos base.
func (m *MatchEngine) Weights() domain.MatchWeights {
	return m.weights
}

func (m *MatchEngine) Threshold() float64 {
	return m.threshold
}

// Career busca una carrera del catálogo. Devuelve catalog.ErrCareerNotFound si no existe.
func (m *MatchEngine) Career(id string) (domain.CareerRecord, error) {
	return m.catalog.Get(id)
}

// ComputeMatches evalúa todas las carreras y devuelve solo las que superan el umbral.
// Los datos faltantes nunca producen error: cada componente cae a 0.5.
func (m *MatchEngine) ComputeMatches(
	traits domain.TraitVector,
	skills map[string]float64,
	interests []string,
	values []string,
	workStyle map[string]float64,
) map[string]domain.MatchRecord {
	out := make(map[string]domain.MatchRecord)
	m.catalog.Each(func(pos int, career domain.CareerRecord) {
		rec := m.evaluate(pos, career, traits, skills, interests, values, workStyle)
		if rec.MatchScore > m.threshold {
			out[career.ID] = rec
		}
	})
	return out
}

func (m *MatchEngine) evaluate(
	pos int,
	career domain.CareerRecord,
	traits domain.TraitVector,
	skills map[string]float64,
	interests []string,
	values []string,
	workStyle map[string]float64,
) domain.MatchRecord {
	skillsScore, missing := skillsMatch(career.SkillsRequired, skills)
	breakdown := domain.MatchBreakdown{
		Personality: PersonalityMatch(career.TraitTargets, traits),
		Skills:      skillsScore,
		Interests:   InterestsMatch(career.Interests, interests),
		Values:      ValuesMatch(career.Values, values),
		WorkStyle:   WorkStyleMatch(career.WorkStyle, workStyle),
	}

	weights := m.AdjustWeights(breakdown.Personality, breakdown.Skills)
	bonus := CareerBonus(career, skills)
	score := domain.Clamp01(weights.Apply(breakdown) + bonus)

	return domain.MatchRecord{
		CareerID:        career.ID,
		Career:          career.Clone(),
		Position:        pos,
		MatchScore:      score,
		Breakdown:       breakdown,
		Weights:         weights,
		Bonus:           bonus,
		ConfidenceLevel: ConfidenceLevel(score),
		GrowthPotential: GrowthPotential(career, score),
		MatchLevel:      domain.MatchLevel(score),
		PersonalityFit:  AnalyzePersonalityFit(career.TraitTargets, traits),
		MissingSkills:   missing,
	}
}

// AdjustWeights desplaza peso hacia los componentes fuertes (> 0.8) y renormaliza a 1.0.
func (m *MatchEngine) AdjustWeights(personality, skills float64) domain.MatchWeights {
	w := m.weights
	if personality > strongComponentThreshold {
		w.Personality += weightBoost
		w.Skills -= weightPenalty
		w.Interests -= weightPenalty
	}
	if skills > strongComponentThreshold {
		w.Skills += weightBoost
		w.Personality -= weightPenalty
		w.Values -= weightPenalty
	}
	// Con pesos base custom una penalización puede dejar un peso negativo.
	w.Personality = math.Max(0, w.Personality)
	w.Skills = math.Max(0, w.Skills)
	w.Interests = math.Max(0, w.Interests)
	w.Values = math.Max(0, w.Values)
	return w.Normalize()
}

// PersonalityMatch promedia, ponderado por importancia, el ajuste por bandas de tolerancia
// de cada rasgo que la carrera especifica. Sin requisitos devuelve 0.5.
func PersonalityMatch(targets map[domain.Trait]float64, traits domain.TraitVector) float64 {
	var total, totalWeight float64
	for _, trait := range domain.Traits {
		required, ok := targets[trait]
		if !ok {
			continue
		}
		weight, ok := traitImportance[trait]
		if !ok {
			weight = 1.0
		}
		total += toleranceScore(math.Abs(traits.Score(trait)-required)) * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return domain.NeutralScore
	}
	return domain.Clamp01(total / totalWeight)
}

func toleranceScore(diff float64) float64 {
	switch {
	case diff <= 0.1:
		return 1.0
	case diff <= 0.2:
		return 0.8
	case diff <= 0.4:
		return 0.6
	default:
		return math.Max(0.2, 1-diff)
	}
}

// SkillsMatch promedia el mejor match por skill requerida y suma un bonus de cobertura.
func SkillsMatch(required []string, user map[string]float64) float64 {
	score, _ := skillsMatch(required, user)
	return score
}

// skillsMatch devuelve también las skills requeridas que no alcanzan 0.3.
func skillsMatch(required []string, user map[string]float64) (float64, []string) {
	if len(required) == 0 {
		return domain.NeutralScore, nil
	}
	var total float64
	var matched int
	var missing []string
	for _, req := range required {
		reqNorm := normalizeSkill(req)
		best := 0.0
		for userSkill, proficiency := range user {
			userNorm := normalizeSkill(userSkill)
			if userNorm == "" || reqNorm == "" || !skillsRelated(reqNorm, userNorm) {
				continue
			}
			best = math.Max(best, skillSimilarity(reqNorm, userNorm)*domain.Clamp01(proficiency))
		}
		total += best
		if best > 0.3 {
			matched++
		} else {
			missing = append(missing, req)
		}
	}
	n := float64(len(required))
	coverage := float64(matched) / n * 0.2
	return math.Min(1.0, total/n+coverage), missing
}

// normalizeSkill compara skills sin distinguir mayúsculas ni "_" frente a espacios.
func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "_", " ")))
}

func skillsRelated(a, b string) bool {
	if a == b || strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	for _, rel := range skillRelations {
		if strings.Contains(a, rel.base) && containsAny(b, rel.related) {
			return true
		}
		if strings.Contains(b, rel.base) && containsAny(a, rel.related) {
			return true
		}
	}
	return false
}

func skillSimilarity(a, b string) float64 {
	switch {
	case a == b:
		return 1.0
	case strings.Contains(a, b) || strings.Contains(b, a):
		return 0.8
	default:
		return 0.6
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// InterestsMatch cuenta coincidencias directas más 0.5 por categoría amplia compartida,
// dividido por la cantidad de intereses de la carrera.
func InterestsMatch(career, user []string) float64 {
	if len(career) == 0 || len(user) == 0 {
		return domain.NeutralScore
	}
	userSet := make(map[string]struct{}, len(user))
	for _, u := range user {
		userSet[u] = struct{}{}
	}
	seen := make(map[string]struct{}, len(career))
	var total float64
	for _, c := range career {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if _, ok := userSet[c]; ok {
			total++
		}
	}

	careerText := strings.Join(career, " ")
	userText := strings.Join(user, " ")
	for _, cat := range interestCategories {
		if containsAny(careerText, cat.keywords) && containsAny(userText, cat.keywords) {
			total += 0.5
		}
	}
	return math.Min(1.0, total/float64(len(career)))
}

// ValuesMatch pondera cada valor de la carrera: 1.0 si el usuario lo tiene, 0.7 si tiene
// uno emparentado, 0 si no.
func ValuesMatch(career, user []string) float64 {
	if len(career) == 0 || len(user) == 0 {
		return domain.NeutralScore
	}
	userSet := make(map[string]struct{}, len(user))
	for _, u := range user {
		userSet[u] = struct{}{}
	}
	var total, totalWeight float64
	for _, v := range career {
		weight, ok := valueImportance[v]
		if !ok {
			weight = 1.0
		}
		if _, ok := userSet[v]; ok {
			total += weight
		} else {
			total += relatedValueScore(v, userSet) * weight
		}
		totalWeight += weight
	}
	if totalWeight == 0 {
		return domain.NeutralScore
	}
	return domain.Clamp01(total / totalWeight)
}

func relatedValueScore(target string, user map[string]struct{}) float64 {
	for _, rel := range valueRelations[target] {
		if _, ok := user[rel]; ok {
			return relatedValueCredit
		}
	}
	return 0
}

// WorkStyleMatch compara el nivel objetivo de la carrera contra el del usuario en cada
// factor presente en ambos: 1 - |carrera - usuario|, promediado.
func WorkStyleMatch(career, user map[string]float64) float64 {
	if len(career) == 0 || len(user) == 0 {
		return domain.NeutralScore
	}
	var total float64
	var n int
	for _, factor := range workStyleFactors {
		careerLevel, ok := career[factor]
		if !ok {
			continue
		}
		userLevel, ok := user[factor]
		if !ok {
			continue
		}
		total += domain.Clamp01(1 - math.Abs(domain.Clamp01(careerLevel)-domain.Clamp01(userLevel)))
		n++
	}
	if n == 0 {
		return domain.NeutralScore
	}
	return total / float64(n)
}

// CareerBonus suma los bonus de outlook, skills de alta demanda y salario senior.
func CareerBonus(career domain.CareerRecord, skills map[string]float64) float64 {
	var bonus float64
	outlook := strings.ToLower(career.GrowthOutlook)
	if strings.Contains(outlook, "excellent") {
		bonus += bonusExcellentOutlook
	} else if strings.Contains(outlook, "good") {
		bonus += bonusGoodOutlook
	}

	userSkills := make(map[string]struct{}, len(skills))
	for s := range skills {
		userSkills[normalizeSkill(s)] = struct{}{}
	}
	for _, hd := range highDemandSkills {
		if !requiresSkill(career.SkillsRequired, hd) {
			continue
		}
		if _, ok := userSkills[hd]; ok {
			bonus += bonusHighDemandSkill
		}
	}

	if career.SeniorSalaryMax() > seniorSalaryThreshold {
		bonus += bonusSeniorSalary
	}
	return bonus
}

func requiresSkill(required []string, skill string) bool {
	for _, r := range required {
		if strings.Contains(strings.ToLower(r), skill) {
			return true
		}
	}
	return false
}

// ConfidenceLevel: High >= 0.75, Medium >= 0.5, Low en otro caso.
func ConfidenceLevel(score float64) string {
	switch {
	case score >= 0.75:
		return domain.ConfidenceHigh
	case score >= 0.5:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// GrowthPotential combina el bucket de outlook de la carrera con el puntaje del match.
func GrowthPotential(career domain.CareerRecord, score float64) string {
	points := 0
	switch career.OutlookBucket() {
	case domain.OutlookExcellent:
		points += 2
	case domain.OutlookGood:
		points++
	}
	switch {
	case score >= 0.7:
		points += 2
	case score >= 0.5:
		points++
	}
	switch {
	case points >= 3:
		return domain.GrowthHigh
	case points >= 2:
		return domain.GrowthModerate
	default:
		return domain.GrowthLimited
	}
}

// AnalyzePersonalityFit clasifica cada rasgo requerido según la distancia al objetivo.
func AnalyzePersonalityFit(targets map[domain.Trait]float64, traits domain.TraitVector) domain.PersonalityFit {
	fit := domain.PersonalityFit{
		StrongMatches:       []domain.Trait{},
		GoodMatches:         []domain.Trait{},
		PotentialChallenges: []domain.Trait{},
		DevelopmentAreas:    []domain.Trait{},
	}
	for _, trait := range domain.Traits {
		required, ok := targets[trait]
		if !ok {
			continue
		}
		user := traits.Score(trait)
		diff := math.Abs(user - required)
		switch {
		case diff <= 0.1:
			fit.StrongMatches = append(fit.StrongMatches, trait)
		case diff <= 0.3:
			fit.GoodMatches = append(fit.GoodMatches, trait)
		case diff > 0.5:
			fit.PotentialChallenges = append(fit.PotentialChallenges, trait)
			if user < required {
				fit.DevelopmentAreas = append(fit.DevelopmentAreas, trait)
			}
		}
	}
	return fit
}
