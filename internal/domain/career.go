package domain

import "strings"

const (
	SalaryTierEntry  = "entry"
	SalaryTierMid    = "mid"
	SalaryTierSenior = "senior"
)

// SalaryBand es un rango de compensación anual (bajo, alto).
type SalaryBand struct {
	Low  int `yaml:"low" json:"low"`
	High int `yaml:"high" json:"high"`
}

// OutlookBucket clasifica el texto libre de perspectivas de crecimiento.
type OutlookBucket string

const (
	OutlookExcellent OutlookBucket = "Excellent"
	OutlookGood      OutlookBucket = "Good"
	OutlookAverage   OutlookBucket = "Average"
	OutlookUnknown   OutlookBucket = "Unknown"
)

// ClassifyOutlook mapea el texto de outlook a un bucket cualitativo.
func ClassifyOutlook(text string) OutlookBucket {
	l := strings.ToLower(strings.TrimSpace(text))
	switch {
	case l == "":
		return OutlookUnknown
	case strings.Contains(l, "excellent"):
		return OutlookExcellent
	case strings.Contains(l, "good"):
		return OutlookGood
	default:
		return OutlookAverage
	}
}

// CareerRecord es una entrada del catálogo estático. Se carga una vez y nunca se muta.
type CareerRecord struct {
	ID              string                `yaml:"id" json:"id"`
	Title           string                `yaml:"title" json:"title"`
	Category        string                `yaml:"category" json:"category"`
	Description     string                `yaml:"description" json:"description,omitempty"`
	SkillsRequired  []string              `yaml:"skills_required" json:"skills_required"`
	TraitTargets    map[Trait]float64     `yaml:"traits" json:"traits,omitempty"`
	Interests       []string              `yaml:"interests" json:"interests"`
	Values          []string              `yaml:"values" json:"values"`
	WorkStyle       map[string]float64    `yaml:"work_style" json:"work_style,omitempty"`
	SalaryRange     map[string]SalaryBand `yaml:"salary_range" json:"salary_range,omitempty"`
	GrowthOutlook   string                `yaml:"growth_outlook" json:"growth_outlook"`
	WorkEnvironment string                `yaml:"work_environment" json:"work_environment,omitempty"`
}

// SeniorSalaryMax devuelve el tope de la banda senior, o 0 si no existe.
func (c CareerRecord) SeniorSalaryMax() int {
	band, ok := c.SalaryRange[SalaryTierSenior]
	if !ok {
		return 0
	}
	return band.High
}

func (c CareerRecord) OutlookBucket() OutlookBucket {
	return ClassifyOutlook(c.GrowthOutlook)
}

// Clone devuelve una copia profunda para que los llamadores no compartan mapas ni slices del catálogo.
func (c CareerRecord) Clone() CareerRecord {
	out := c
	out.SkillsRequired = append([]string(nil), c.SkillsRequired...)
	out.Interests = append([]string(nil), c.Interests...)
	out.Values = append([]string(nil), c.Values...)
	if c.TraitTargets != nil {
		out.TraitTargets = make(map[Trait]float64, len(c.TraitTargets))
		for k, v := range c.TraitTargets {
			out.TraitTargets[k] = v
		}
	}
	if c.WorkStyle != nil {
		out.WorkStyle = make(map[string]float64, len(c.WorkStyle))
		for k, v := range c.WorkStyle {
			out.WorkStyle[k] = v
		}
	}
	if c.SalaryRange != nil {
		out.SalaryRange = make(map[string]SalaryBand, len(c.SalaryRange))
		for k, v := range c.SalaryRange {
			out.SalaryRange[k] = v
		}
	}
	return out
}
