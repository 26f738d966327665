package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"career-match/internal/domain"
	"career-match/internal/logger"
	"career-match/internal/metrics"
	"career-match/internal/questionnaire"
	"career-match/internal/repository"
)

const (
	defaultTopN     = 10
	defaultCacheTTL = 24 * time.Hour
)

// AssessmentOptions ajusta el comportamiento del servicio. Los ceros usan los defaults.
type AssessmentOptions struct {
	TopN     int
	CacheTTL time.Duration
}

// AssessmentService orquesta el flujo completo: validar, puntuar rasgos, extraer el perfil,
// matchear contra el catálogo, rankear, persistir y cachear.
type AssessmentService struct {
	logger    *zap.Logger
	bank      *questionnaire.Bank
	scorer    *TraitScorer
	extractor *Extractor
	engine    *MatchEngine
	profiles  ProfileBuilder
	repo      repository.AssessmentRepository
	cache     ResultCache
	topN      int
	cacheTTL  time.Duration
	now       func() time.Time
}

func NewAssessmentService(
	logger *zap.Logger,
	bank *questionnaire.Bank,
	engine *MatchEngine,
	repo repository.AssessmentRepository,
	cache ResultCache,
	opts AssessmentOptions,
) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if bank == nil {
		bank = questionnaire.New()
	}
	if repo == nil {
		repo = repository.NewMemoryAssessmentRepository()
	}
	if cache == nil {
		cache = NewMemoryResultCache()
	}
	if opts.TopN <= 0 {
		opts.TopN = defaultTopN
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	return &AssessmentService{
		logger:    logger,
		bank:      bank,
		scorer:    NewTraitScorer(),
		extractor: NewExtractor(bank),
		engine:    engine,
		repo:      repo,
		cache:     cache,
		topN:      opts.TopN,
		cacheTTL:  opts.CacheTTL,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *AssessmentService) Bank() *questionnaire.Bank {
	return s.bank
}

// Assess procesa un set de respuestas. Los errores de cache y de persistencia se loguean
// pero no hacen fallar el assessment.
func (s *AssessmentService) Assess(ctx context.Context, userID string, answers domain.Answers) (domain.Assessment, error) {
	start := time.Now()
	if _, err := s.bank.Validate(answers); err != nil {
		metrics.AssessmentsTotal.WithLabelValues("invalid").Inc()
		return domain.Assessment{}, err
	}

	fingerprint, err := Fingerprint(answers)
	if err != nil {
		metrics.AssessmentsTotal.WithLabelValues("error").Inc()
		return domain.Assessment{}, err
	}
	log := s.logger.With(
		zap.String("user_id", userID),
		zap.String("fingerprint", logger.ShortFingerprint(fingerprint)),
	)

	result, hit := s.cached(ctx, log, fingerprint)
	if !hit {
		result = s.Compute(answers)
		if err := s.cache.Set(ctx, fingerprint, result, s.cacheTTL); err != nil {
			log.Warn("result cache store failed", zap.Error(err))
		}
	}

	assessment := domain.Assessment{
		ID:               uuid.NewString(),
		UserID:           strings.TrimSpace(userID),
		Fingerprint:      fingerprint,
		Answers:          answers,
		CreatedAt:        s.now(),
		AssessmentResult: result,
	}
	if err := s.repo.Create(ctx, assessment); err != nil {
		log.Error("persist assessment failed", zap.String("assessment_id", assessment.ID), zap.Error(err))
	}

	metrics.AssessmentsTotal.WithLabelValues("ok").Inc()
	metrics.AssessmentDuration.Observe(time.Since(start).Seconds())
	metrics.MatchesReturned.Observe(float64(len(result.Matches)))
	if len(result.Matches) > 0 {
		metrics.TopMatchScore.Observe(result.Matches[0].MatchScore)
	}

	log.Info("assessment completed",
		zap.String("assessment_id", assessment.ID),
		zap.Bool("cache_hit", hit),
		zap.Int("matches", len(result.Matches)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return assessment, nil
}

func (s *AssessmentService) cached(ctx context.Context, log *zap.Logger, fingerprint string) (domain.AssessmentResult, bool) {
	result, ok, err := s.cache.Get(ctx, fingerprint)
	if err != nil {
		log.Warn("result cache lookup failed", zap.Error(err))
		metrics.CacheMisses.Inc()
		return domain.AssessmentResult{}, false
	}
	if !ok {
		metrics.CacheMisses.Inc()
		return domain.AssessmentResult{}, false
	}
	metrics.CacheHits.Inc()
	return result, true
}

// Compute corre el pipeline puro sobre respuestas ya validadas.
func (s *AssessmentService) Compute(answers domain.Answers) domain.AssessmentResult {
	traits := s.scorer.Score(answers)
	extracted := s.extractor.Extract(answers)
	all := s.engine.ComputeMatches(traits, extracted.Skills, extracted.Interests, extracted.Values, extracted.WorkStyle)
	top := TopMatches(all, s.topN)

	return domain.AssessmentResult{
		Traits:       traits,
		Profile:      s.profiles.Build(traits),
		TraitDetails: s.profiles.DescribeTraits(traits),
		Extracted:    extracted,
		Matches:      top,
		Development:  s.profiles.DevelopmentRecommendations(traits),
		ActionPlan:   BuildActionPlan(top),
	}
}

func (s *AssessmentService) Get(ctx context.Context, id string) (domain.Assessment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AssessmentService) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Assessment, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

// Similar devuelve los assessments guardados con rasgos más cercanos al indicado.
func (s *AssessmentService) Similar(ctx context.Context, id string, limit int) ([]repository.SimilarAssessment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	similar, err := s.repo.Nearest(ctx, a.Traits, a.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("nearest assessments: %w", err)
	}
	return similar, nil
}

// Fingerprint es el sha256 de la forma JSON canónica de las respuestas (claves ordenadas).
func Fingerprint(answers domain.Answers) (string, error) {
	raw, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("fingerprint answers: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
