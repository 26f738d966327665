package config

import (
	"time"

	"github.com/caarlos0/env/v10"

	"career-match/internal/domain"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL   string `env:"DATABASE_URL"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	JWTSecret     string `env:"JWT_SECRET"`
	LogJSON       bool   `env:"LOG_JSON" envDefault:"true"`
	LogDebug      bool   `env:"LOG_DEBUG" envDefault:"false"`

	CatalogPath    string        `env:"CATALOG_PATH"`
	MatchThreshold float64       `env:"MATCH_THRESHOLD" envDefault:"0.25"`
	TopN           int           `env:"TOP_N" envDefault:"10"`
	CacheTTL       time.Duration `env:"CACHE_TTL" envDefault:"24h"`

	SubmissionWindow time.Duration `env:"SUBMISSION_WINDOW" envDefault:"1m"`
	SubmissionMax    int           `env:"SUBMISSION_MAX" envDefault:"10"`

	WeightPersonality float64 `env:"MATCH_WEIGHT_PERSONALITY" envDefault:"0.35"`
	WeightSkills      float64 `env:"MATCH_WEIGHT_SKILLS" envDefault:"0.25"`
	WeightInterests   float64 `env:"MATCH_WEIGHT_INTERESTS" envDefault:"0.20"`
	WeightValues      float64 `env:"MATCH_WEIGHT_VALUES" envDefault:"0.15"`
	WeightWorkStyle   float64 `env:"MATCH_WEIGHT_WORK_STYLE" envDefault:"0.05"`
}

// MatchWeights arma los pesos configurados. La validación la hace el motor.
func (c *Config) MatchWeights() domain.MatchWeights {
	return domain.MatchWeights{
		Personality: c.WeightPersonality,
		Skills:      c.WeightSkills,
		Interests:   c.WeightInterests,
		Values:      c.WeightValues,
		WorkStyle:   c.WeightWorkStyle,
	}
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
