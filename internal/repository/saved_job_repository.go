package repository

import (
	"context"

	"careercraft/internal/database"
	"careercraft/internal/domain/job"

	"github.com/google/uuid"
)

type SavedJobRepository interface {
	// Save stores the job for the user. Saving the same job twice is not an
	// error; the second call reports alreadySaved=true and changes nothing.
	Save(ctx context.Context, sj job.SavedJob) (alreadySaved bool, err error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]job.SavedJob, error)
	Delete(ctx context.Context, userID uuid.UUID, jobID string) (bool, error)
}

type PostgresSavedJobRepository struct {
	db database.DB
}

func NewPostgresSavedJobRepository(db database.DB) *PostgresSavedJobRepository {
	return &PostgresSavedJobRepository{db: db}
}

func (r *PostgresSavedJobRepository) Save(ctx context.Context, sj job.SavedJob) (bool, error) {
	id := sj.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	affected, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (id, user_id, job_id, title, company, location, salary_min, salary_max, description, redirect_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (user_id, job_id) DO NOTHING`,
		id, sj.UserID, sj.JobID, sj.Title, sj.Company, sj.Location, sj.SalaryMin, sj.SalaryMax, sj.Description, sj.RedirectURL,
	)
	if err != nil {
		return false, err
	}
	return affected == 0, nil
}

func (r *PostgresSavedJobRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]job.SavedJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, job_id, title, company, location, salary_min, salary_max, description, redirect_url, saved_at
		 FROM saved_jobs WHERE user_id = $1 ORDER BY saved_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.SavedJob, 0)
	for rows.Next() {
		var sj job.SavedJob
		err := rows.Scan(&sj.ID, &sj.UserID, &sj.JobID, &sj.Title, &sj.Company, &sj.Location,
			&sj.SalaryMin, &sj.SalaryMax, &sj.Description, &sj.RedirectURL, &sj.SavedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, sj)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSavedJobRepository) Delete(ctx context.Context, userID uuid.UUID, jobID string) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
