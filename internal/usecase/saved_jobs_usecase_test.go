package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"careercraft/internal/domain/job"
)

type mockSavedJobRepo struct {
	jobs map[string]job.SavedJob
}

func newMockSavedJobRepo() *mockSavedJobRepo {
	return &mockSavedJobRepo{jobs: map[string]job.SavedJob{}}
}

func savedKey(userID uuid.UUID, jobID string) string {
	return userID.String() + "/" + jobID
}

func (m *mockSavedJobRepo) Save(_ context.Context, sj job.SavedJob) (bool, error) {
	key := savedKey(sj.UserID, sj.JobID)
	if _, ok := m.jobs[key]; ok {
		return true, nil
	}
	m.jobs[key] = sj
	return false, nil
}

func (m *mockSavedJobRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]job.SavedJob, error) {
	out := make([]job.SavedJob, 0)
	for _, sj := range m.jobs {
		if sj.UserID == userID {
			out = append(out, sj)
		}
	}
	return out, nil
}

func (m *mockSavedJobRepo) Delete(_ context.Context, userID uuid.UUID, jobID string) (bool, error) {
	key := savedKey(userID, jobID)
	if _, ok := m.jobs[key]; !ok {
		return false, nil
	}
	delete(m.jobs, key)
	return true, nil
}

func TestSaveJob_FirstSaveThenDuplicate(t *testing.T) {
	repo := newMockSavedJobRepo()
	uc := NewSavedJobsUsecase(repo)
	userID := uuid.New()

	already, err := uc.Save(context.Background(), userID, SaveJobInput{JobID: "42", Title: "Go Developer"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if already {
		t.Fatalf("first save must not report alreadySaved")
	}

	already, err = uc.Save(context.Background(), userID, SaveJobInput{JobID: "42", Title: "Go Developer"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !already {
		t.Fatalf("second save must report alreadySaved")
	}
	if len(repo.jobs) != 1 {
		t.Fatalf("duplicate save must not add a row")
	}
}

func TestSaveJob_EmptyJobID(t *testing.T) {
	uc := NewSavedJobsUsecase(newMockSavedJobRepo())

	_, err := uc.Save(context.Background(), uuid.New(), SaveJobInput{JobID: "  "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSaveJob_ScopedToUser(t *testing.T) {
	repo := newMockSavedJobRepo()
	uc := NewSavedJobsUsecase(repo)
	alice := uuid.New()
	bob := uuid.New()

	if _, err := uc.Save(context.Background(), alice, SaveJobInput{JobID: "42"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	already, err := uc.Save(context.Background(), bob, SaveJobInput{JobID: "42"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if already {
		t.Fatalf("another user's bookmark must not count as a duplicate")
	}

	mine, err := uc.List(context.Background(), alice)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 job for alice, got %d", len(mine))
	}
}

func TestRemoveJob_NotFound(t *testing.T) {
	uc := NewSavedJobsUsecase(newMockSavedJobRepo())

	err := uc.Remove(context.Background(), uuid.New(), "missing")
	if !errors.Is(err, ErrSavedJobNotFound) {
		t.Fatalf("expected ErrSavedJobNotFound, got %v", err)
	}
}

func TestRemoveJob_Success(t *testing.T) {
	repo := newMockSavedJobRepo()
	uc := NewSavedJobsUsecase(repo)
	userID := uuid.New()

	if _, err := uc.Save(context.Background(), userID, SaveJobInput{JobID: "42"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.Remove(context.Background(), userID, "42"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	rest, err := uc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("expected empty list after removal, got %d", len(rest))
	}
}
