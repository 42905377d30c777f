package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"careercraft/internal/domain/analysis"
	"careercraft/internal/domain/profile"
	"careercraft/internal/repository"
)

type UpdateProfileInput struct {
	FullName string
	Phone    string
	Location string
	LinkedIn string
	Summary  string
}

// ProfileView bundles the profile with its resume-analysis context: the
// latest report plus a short history, the way the profile page shows it.
type ProfileView struct {
	Profile         profile.Profile   `json:"profile"`
	LatestAnalysis  *analysis.Record  `json:"latest_analysis,omitempty"`
	AnalysisHistory []analysis.Record `json:"analysis_history"`
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (ProfileView, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (profile.Profile, error)
}

type Profile struct {
	profiles repository.ProfileRepository
	analyses repository.AnalysisRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository, analyses repository.AnalysisRepository) *Profile {
	return &Profile{profiles: profiles, analyses: analyses}
}

// GetProfile returns the profile together with the latest analysis and
// up to five history entries. A user who never built a profile gets an
// empty one, not an error.
func (u *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (ProfileView, error) {
	view := ProfileView{AnalysisHistory: []analysis.Record{}}

	p, err := u.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		view.Profile = p
	case errors.Is(err, profile.ErrNotFound):
		view.Profile = profile.Profile{UserID: userID, Skills: []string{}}
	default:
		return ProfileView{}, ErrInternal
	}

	latest, err := u.analyses.LatestByUser(ctx, userID)
	if err == nil {
		view.LatestAnalysis = &latest
	} else if !errors.Is(err, analysis.ErrNotFound) {
		return ProfileView{}, ErrInternal
	}

	history, err := u.analyses.ListByUser(ctx, userID, 5)
	if err != nil {
		return ProfileView{}, ErrInternal
	}
	view.AnalysisHistory = history

	return view, nil
}

// UpdateProfile writes the manually editable fields. Skills are owned by
// resume analysis and survive manual edits untouched.
func (u *Profile) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (profile.Profile, error) {
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			return profile.Profile{}, ErrInternal
		}
		p = profile.Profile{UserID: userID, Skills: []string{}}
	}

	p.FullName = strings.TrimSpace(in.FullName)
	p.Phone = strings.TrimSpace(in.Phone)
	p.Location = strings.TrimSpace(in.Location)
	p.LinkedIn = strings.TrimSpace(in.LinkedIn)
	p.Summary = strings.TrimSpace(in.Summary)

	if err := u.profiles.Upsert(ctx, p); err != nil {
		return profile.Profile{}, ErrInternal
	}

	updated, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return profile.Profile{}, ErrInternal
	}
	return updated, nil
}
