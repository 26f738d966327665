package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"career-match/internal/catalog"
	"career-match/internal/domain"
	"career-match/internal/questionnaire"
	"career-match/internal/repository"
)

type failingAssessmentRepo struct {
	*repository.MemoryAssessmentRepository
	createCalls int
}

func (r *failingAssessmentRepo) Create(_ context.Context, _ domain.Assessment) error {
	r.createCalls++
	return errors.New("db down")
}

type countingCache struct {
	ResultCache
	gets, sets int
	getErr     error
}

func (c *countingCache) Get(ctx context.Context, fp string) (domain.AssessmentResult, bool, error) {
	c.gets++
	if c.getErr != nil {
		return domain.AssessmentResult{}, false, c.getErr
	}
	return c.ResultCache.Get(ctx, fp)
}

func (c *countingCache) Set(ctx context.Context, fp string, r domain.AssessmentResult, ttl time.Duration) error {
	c.sets++
	return c.ResultCache.Set(ctx, fp, r, ttl)
}

// fullAnswers responde todo el banco: likert con el token dado, opciones con la primera,
// multi-select con la primera opción y ranking en el orden del banco.
func fullAnswers(bank *questionnaire.Bank, token string) domain.Answers {
	answers := make(domain.Answers, bank.Len())
	for _, q := range bank.Questions() {
		switch q.Type.ResponseKind() {
		case domain.ResponseOrdinal:
			answers[q.ID] = domain.OrdinalResponse{Token: token}
		case domain.ResponseChoice:
			answers[q.ID] = domain.ChoiceResponse{Option: q.Options[0].Value}
		case domain.ResponseMultiSelect:
			answers[q.ID] = domain.MultiSelectResponse{Options: []string{q.Options[0].Value}}
		case domain.ResponseRanking:
			order := make([]string, len(q.Options))
			for i, o := range q.Options {
				order[i] = o.Value
			}
			answers[q.ID] = domain.RankingResponse{Order: order}
		}
	}
	return answers
}

func newTestAssessmentService(t *testing.T, repo repository.AssessmentRepository, cache ResultCache) *AssessmentService {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	engine, err := NewMatchEngine(cat, domain.DefaultMatchWeights(), DefaultMatchThreshold)
	require.NoError(t, err)
	return NewAssessmentService(zap.NewNop(), questionnaire.New(), engine, repo, cache, AssessmentOptions{TopN: 5})
}

func TestAssessmentService_Assess(t *testing.T) {
	repo := repository.NewMemoryAssessmentRepository()
	svc := newTestAssessmentService(t, repo, nil)
	answers := fullAnswers(svc.Bank(), domain.StronglyAgree)

	a, err := svc.Assess(context.Background(), "u1", answers)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "u1", a.UserID)
	assert.Len(t, a.Fingerprint, 64)
	assert.NotEmpty(t, a.Matches)
	assert.LessOrEqual(t, len(a.Matches), 5)
	for i := 1; i < len(a.Matches); i++ {
		assert.GreaterOrEqual(t, a.Matches[i-1].MatchScore, a.Matches[i].MatchScore)
	}
	require.NotNil(t, a.ActionPlan)
	assert.Equal(t, a.Matches[0].CareerID, a.ActionPlan.CareerID)
	assert.Len(t, a.TraitDetails, len(domain.Traits))

	stored, err := svc.Get(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint, stored.Fingerprint)

	list, err := svc.ListByUser(context.Background(), "u1", 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAssessmentService_InvalidAnswers(t *testing.T) {
	svc := newTestAssessmentService(t, nil, nil)

	_, err := svc.Assess(context.Background(), "", domain.Answers{})
	assert.ErrorIs(t, err, questionnaire.ErrInvalidAnswers)

	_, err = svc.Assess(context.Background(), "", domain.Answers{0: domain.OrdinalResponse{Token: "sometimes"}})
	assert.ErrorIs(t, err, questionnaire.ErrInvalidAnswers)
	assert.ErrorIs(t, err, domain.ErrInvalidResponse)
}

func TestAssessmentService_CacheHitSkipsComputation(t *testing.T) {
	cache := &countingCache{ResultCache: NewMemoryResultCache()}
	svc := newTestAssessmentService(t, nil, cache)
	answers := fullAnswers(svc.Bank(), domain.Agree)

	fp, err := Fingerprint(answers)
	require.NoError(t, err)
	sentinel := domain.AssessmentResult{
		Traits:  domain.NeutralTraitVector(),
		Matches: []domain.MatchRecord{{CareerID: "from_cache", MatchScore: 0.42}},
	}
	require.NoError(t, cache.ResultCache.Set(context.Background(), fp, sentinel, time.Hour))

	a, err := svc.Assess(context.Background(), "", answers)
	require.NoError(t, err)
	require.Len(t, a.Matches, 1)
	assert.Equal(t, "from_cache", a.Matches[0].CareerID)
	assert.Equal(t, 1, cache.gets)
	assert.Equal(t, 0, cache.sets)

	b, err := svc.Assess(context.Background(), "", answers)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID, "each submission gets its own assessment id")
}

func TestAssessmentService_CacheMissStoresResult(t *testing.T) {
	cache := &countingCache{ResultCache: NewMemoryResultCache()}
	svc := newTestAssessmentService(t, nil, cache)
	answers := fullAnswers(svc.Bank(), domain.Disagree)

	first, err := svc.Assess(context.Background(), "", answers)
	require.NoError(t, err)
	second, err := svc.Assess(context.Background(), "", answers)
	require.NoError(t, err)

	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.Equal(t, first.Matches, second.Matches)
}

func TestAssessmentService_StoreAndCacheFailuresDoNotFail(t *testing.T) {
	repo := &failingAssessmentRepo{MemoryAssessmentRepository: repository.NewMemoryAssessmentRepository()}
	cache := &countingCache{ResultCache: NewMemoryResultCache(), getErr: errors.New("redis down")}
	svc := newTestAssessmentService(t, repo, cache)

	a, err := svc.Assess(context.Background(), "u1", fullAnswers(svc.Bank(), domain.Neutral))
	require.NoError(t, err)
	assert.NotEmpty(t, a.Matches)
	assert.Equal(t, 1, repo.createCalls)
}

func TestAssessmentService_Similar(t *testing.T) {
	svc := newTestAssessmentService(t, nil, nil)
	ctx := context.Background()

	base, err := svc.Assess(ctx, "u1", fullAnswers(svc.Bank(), domain.Agree))
	require.NoError(t, err)
	near, err := svc.Assess(ctx, "u2", fullAnswers(svc.Bank(), domain.StronglyAgree))
	require.NoError(t, err)
	far, err := svc.Assess(ctx, "u3", fullAnswers(svc.Bank(), domain.StronglyDisagree))
	require.NoError(t, err)

	similar, err := svc.Similar(ctx, base.ID, 5)
	require.NoError(t, err)
	require.Len(t, similar, 2)
	assert.Equal(t, near.ID, similar[0].Assessment.ID)
	assert.Equal(t, far.ID, similar[1].Assessment.ID)

	_, err = svc.Similar(ctx, "missing", 5)
	assert.ErrorIs(t, err, domain.ErrAssessmentNotFound)
}

func TestFingerprintIsOrderIndependent(t *testing.T) {
	a := domain.Answers{0: domain.OrdinalResponse{Token: domain.Agree}, 36: domain.MultiSelectResponse{Options: []string{"programming_languages"}}}
	b := domain.Answers{36: domain.MultiSelectResponse{Options: []string{"programming_languages"}}, 0: domain.OrdinalResponse{Token: domain.Agree}}

	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, err := Fingerprint(b)
	require.NoError(t, err)
	assert.Equal(t, fa, fb)

	c := domain.Answers{0: domain.OrdinalResponse{Token: domain.Disagree}}
	fc, _ := Fingerprint(c)
	assert.NotEqual(t, fa, fc)
}
