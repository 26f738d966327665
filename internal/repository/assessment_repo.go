package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"career-match/internal/domain"
)

// AnswerDecoder reconstruye respuestas tipadas desde su forma cruda. El banco de
// preguntas lo implementa porque el tipo de cada respuesta depende de la pregunta.
type AnswerDecoder interface {
	DecodeAnswers(raw map[string]json.RawMessage) (domain.Answers, error)
}

// SimilarAssessment es un assessment cercano en el espacio de rasgos.
type SimilarAssessment struct {
	Assessment domain.Assessment `json:"assessment"`
	Distance   float64           `json:"distance"`
}

type AssessmentRepository interface {
	Create(ctx context.Context, assessment domain.Assessment) error
	GetByID(ctx context.Context, id string) (domain.Assessment, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Assessment, error)
	Nearest(ctx context.Context, traits domain.TraitVector, excludeID string, k int) ([]SimilarAssessment, error)
}

type PgAssessmentRepository struct {
	pool    *pgxpool.Pool
	decoder AnswerDecoder
}

func NewPgAssessmentRepository(pool *pgxpool.Pool, decoder AnswerDecoder) *PgAssessmentRepository {
	return &PgAssessmentRepository{pool: pool, decoder: decoder}
}

func (r *PgAssessmentRepository) Create(ctx context.Context, a domain.Assessment) error {
	answers, err := json.Marshal(a.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	result, err := json.Marshal(a.AssessmentResult)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	var topCareer interface{}
	var topScore interface{}
	if len(a.Matches) > 0 {
		topCareer = a.Matches[0].CareerID
		topScore = a.Matches[0].MatchScore
	}
	var userID interface{}
	if a.UserID != "" {
		userID = a.UserID
	}

	const query = `
		INSERT INTO assessments (
			id, user_id, fingerprint, answers, result, trait_vector, top_career_id, top_score, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.pool.Exec(ctx, query,
		a.ID,
		userID,
		a.Fingerprint,
		answers,
		result,
		pgvector.NewVector(a.Traits.Float32s()),
		topCareer,
		topScore,
		a.CreatedAt,
	)
	return err
}

func (r *PgAssessmentRepository) GetByID(ctx context.Context, id string) (domain.Assessment, error) {
	const query = `
		SELECT id, COALESCE(user_id, ''), fingerprint, answers, result, created_at
		FROM assessments
		WHERE id = $1
	`
	a, err := r.scanAssessment(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Assessment{}, fmt.Errorf("%w: %s", domain.ErrAssessmentNotFound, id)
	}
	return a, err
}

func (r *PgAssessmentRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Assessment, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
		SELECT id, COALESCE(user_id, ''), fingerprint, answers, result, created_at
		FROM assessments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Assessment
	for rows.Next() {
		a, err := r.scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Nearest busca los assessments con rasgos más cercanos (distancia L2 de pgvector).
func (r *PgAssessmentRepository) Nearest(ctx context.Context, traits domain.TraitVector, excludeID string, k int) ([]SimilarAssessment, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT id, COALESCE(user_id, ''), fingerprint, answers, result, created_at, trait_vector <-> $1 AS distance
		FROM assessments
		WHERE id::text <> $2
		ORDER BY trait_vector <-> $1
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, pgvector.NewVector(traits.Float32s()), excludeID, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SimilarAssessment
	for rows.Next() {
		var (
			a        domain.Assessment
			answers  []byte
			result   []byte
			distance float64
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.Fingerprint, &answers, &result, &a.CreatedAt, &distance); err != nil {
			return nil, err
		}
		if err := r.decode(&a, answers, result); err != nil {
			return nil, err
		}
		out = append(out, SimilarAssessment{Assessment: a, Distance: distance})
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *PgAssessmentRepository) scanAssessment(row rowScanner) (domain.Assessment, error) {
	var (
		a       domain.Assessment
		answers []byte
		result  []byte
	)
	if err := row.Scan(&a.ID, &a.UserID, &a.Fingerprint, &answers, &result, &a.CreatedAt); err != nil {
		return domain.Assessment{}, err
	}
	if err := r.decode(&a, answers, result); err != nil {
		return domain.Assessment{}, err
	}
	return a, nil
}

func (r *PgAssessmentRepository) decode(a *domain.Assessment, answers, result []byte) error {
	if err := json.Unmarshal(result, &a.AssessmentResult); err != nil {
		return fmt.Errorf("decode result %s: %w", a.ID, err)
	}
	if r.decoder == nil || len(answers) == 0 {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(answers, &raw); err != nil {
		return fmt.Errorf("decode answers %s: %w", a.ID, err)
	}
	decoded, err := r.decoder.DecodeAnswers(raw)
	if err != nil {
		return fmt.Errorf("decode answers %s: %w", a.ID, err)
	}
	a.Answers = decoded
	return nil
}

// MemoryAssessmentRepository guarda assessments en memoria. Se usa cuando no hay
// DATABASE_URL y en tests.
type MemoryAssessmentRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Assessment
	order []string
}

func NewMemoryAssessmentRepository() *MemoryAssessmentRepository {
	return &MemoryAssessmentRepository{items: make(map[string]domain.Assessment)}
}

func (r *MemoryAssessmentRepository) Create(_ context.Context, a domain.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[a.ID]; !ok {
		r.order = append(r.order, a.ID)
	}
	r.items[a.ID] = a
	return nil
}

func (r *MemoryAssessmentRepository) GetByID(_ context.Context, id string) (domain.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return domain.Assessment{}, fmt.Errorf("%w: %s", domain.ErrAssessmentNotFound, id)
	}
	return a, nil
}

func (r *MemoryAssessmentRepository) ListByUser(_ context.Context, userID string, limit int) ([]domain.Assessment, error) {
	if limit <= 0 {
		limit = 20
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Assessment
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		a := r.items[r.order[i]]
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *MemoryAssessmentRepository) Nearest(_ context.Context, traits domain.TraitVector, excludeID string, k int) ([]SimilarAssessment, error) {
	if k <= 0 {
		k = 5
	}
	r.mu.RLock()
	out := make([]SimilarAssessment, 0, len(r.order))
	for _, id := range r.order {
		if id == excludeID {
			continue
		}
		a := r.items[id]
		out = append(out, SimilarAssessment{Assessment: a, Distance: traits.Distance(a.Traits)})
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	if len(out) > k {
		out = out[:k]
	}
	return out, nil
}
