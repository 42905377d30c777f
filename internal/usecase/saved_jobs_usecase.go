package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"careercraft/internal/domain/job"
	"careercraft/internal/repository"
)

var ErrSavedJobNotFound = errors.New("saved job not found")

type SaveJobInput struct {
	JobID       string
	Title       string
	Company     string
	Location    string
	SalaryMin   *float64
	SalaryMax   *float64
	Description string
	RedirectURL string
}

type SavedJobsUsecase interface {
	Save(ctx context.Context, userID uuid.UUID, in SaveJobInput) (alreadySaved bool, err error)
	List(ctx context.Context, userID uuid.UUID) ([]job.SavedJob, error)
	Remove(ctx context.Context, userID uuid.UUID, jobID string) error
}

type SavedJobs struct {
	repo repository.SavedJobRepository
}

func NewSavedJobsUsecase(repo repository.SavedJobRepository) *SavedJobs {
	return &SavedJobs{repo: repo}
}

// Save bookmarks a posting. Saving one the user already has is not an
// error; the caller learns via alreadySaved.
func (u *SavedJobs) Save(ctx context.Context, userID uuid.UUID, in SaveJobInput) (bool, error) {
	jobID := strings.TrimSpace(in.JobID)
	if jobID == "" {
		return false, ErrInvalidInput
	}

	already, err := u.repo.Save(ctx, job.SavedJob{
		ID:          uuid.New(),
		UserID:      userID,
		JobID:       jobID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		SalaryMin:   in.SalaryMin,
		SalaryMax:   in.SalaryMax,
		Description: in.Description,
		RedirectURL: in.RedirectURL,
	})
	if err != nil {
		return false, ErrInternal
	}
	return already, nil
}

func (u *SavedJobs) List(ctx context.Context, userID uuid.UUID) ([]job.SavedJob, error) {
	out, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *SavedJobs) Remove(ctx context.Context, userID uuid.UUID, jobID string) error {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ErrInvalidInput
	}

	deleted, err := u.repo.Delete(ctx, userID, jobID)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return ErrSavedJobNotFound
	}
	return nil
}
