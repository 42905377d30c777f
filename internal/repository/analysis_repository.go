package repository

import (
	"context"
	"errors"

	"careercraft/internal/database"
	"careercraft/internal/domain/analysis"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AnalysisRepository interface {
	Create(ctx context.Context, rec analysis.Record) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]analysis.Record, error)
	LatestByUser(ctx context.Context, userID uuid.UUID) (analysis.Record, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type PostgresAnalysisRepository struct {
	db database.DB
}

func NewPostgresAnalysisRepository(db database.DB) *PostgresAnalysisRepository {
	return &PostgresAnalysisRepository{db: db}
}

func (r *PostgresAnalysisRepository) Create(ctx context.Context, rec analysis.Record) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO resume_analyses (id, user_id, filename, score, sections_found, skills_found, suggestions, word_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.UserID, rec.Filename, rec.Score,
		encodeJSON(rec.SectionsFound), encodeJSON(rec.SkillsFound), encodeJSON(rec.Suggestions),
		rec.WordCount,
	)
	return err
}

func (r *PostgresAnalysisRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]analysis.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, filename, score, sections_found, skills_found, suggestions, word_count, analyzed_at
		 FROM resume_analyses WHERE user_id = $1 ORDER BY analyzed_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]analysis.Record, 0)
	for rows.Next() {
		rec, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAnalysisRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (analysis.Record, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, filename, score, sections_found, skills_found, suggestions, word_count, analyzed_at
		 FROM resume_analyses WHERE user_id = $1 ORDER BY analyzed_at DESC LIMIT 1`,
		userID,
	)
	rec, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return analysis.Record{}, analysis.ErrNotFound
		}
		return analysis.Record{}, err
	}
	return rec, nil
}

func (r *PostgresAnalysisRepository) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM resume_analyses WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresAnalysisRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.db.Exec(ctx, `DELETE FROM resume_analyses WHERE user_id = $1`, userID)
}

func scanAnalysis(row database.Row) (analysis.Record, error) {
	var rec analysis.Record
	var sections, skills, suggestions []byte
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Filename, &rec.Score, &sections, &skills, &suggestions, &rec.WordCount, &rec.AnalyzedAt)
	if err != nil {
		return analysis.Record{}, err
	}
	rec.SectionsFound = decodeBoolMap(sections)
	rec.SkillsFound = decodeStringList(skills)
	rec.Suggestions = decodeStringList(suggestions)
	return rec, nil
}
