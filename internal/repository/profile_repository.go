package repository

import (
	"context"
	"errors"

	"careercraft/internal/database"
	"careercraft/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	Upsert(ctx context.Context, p profile.Profile) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, full_name, phone, location, linkedin, summary, skills, updated_at
		 FROM user_profiles WHERE user_id = $1`,
		userID,
	)

	var p profile.Profile
	var skills []byte
	err := row.Scan(&p.ID, &p.UserID, &p.FullName, &p.Phone, &p.Location, &p.LinkedIn, &p.Summary, &skills, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	p.Skills = decodeStringList(skills)
	return p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p profile.Profile) error {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_profiles (id, user_id, full_name, phone, location, linkedin, summary, skills, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		 ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			linkedin = EXCLUDED.linkedin,
			summary = EXCLUDED.summary,
			skills = EXCLUDED.skills,
			updated_at = now()`,
		id, p.UserID, p.FullName, p.Phone, p.Location, p.LinkedIn, p.Summary, encodeJSON(p.Skills),
	)
	return err
}
