package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"careercraft/internal/domain/analysis"
	"careercraft/internal/domain/profile"
	"careercraft/internal/domain/resume"
	"careercraft/internal/repository"
)

var (
	ErrNoFile          = errors.New("no file uploaded")
	ErrUnsupportedFile = errors.New("invalid file type")
	ErrExtractionFail  = errors.New("could not extract text from file")
)

// TextExtractor pulls plain text out of an uploaded document.
type TextExtractor func(filename string, data []byte) (string, error)

// AnalysisNotifier pushes an out-of-band event once an analysis is
// stored. Best-effort; delivery failure never fails the upload.
type AnalysisNotifier interface {
	AnalysisCompleted(userID uuid.UUID, rec analysis.Record)
}

type AnalyzeResumeOutput struct {
	Report   resume.Report `json:"report"`
	RecordID uuid.UUID     `json:"record_id"`
}

type AnalyzerUsecase interface {
	AnalyzeResume(ctx context.Context, userID uuid.UUID, filename string, data []byte) (AnalyzeResumeOutput, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]analysis.Record, error)
	DeleteAnalysis(ctx context.Context, userID, id uuid.UUID) error
	DeleteAllAnalyses(ctx context.Context, userID uuid.UUID) (int64, error)
}

type Analyzer struct {
	extract  TextExtractor
	allowed  func(filename string) bool
	analyses repository.AnalysisRepository
	profiles repository.ProfileRepository
	notifier AnalysisNotifier
	logger   *log.Logger
}

func NewAnalyzerUsecase(extract TextExtractor, allowed func(string) bool, analyses repository.AnalysisRepository, profiles repository.ProfileRepository, notifier AnalysisNotifier, logger *log.Logger) *Analyzer {
	return &Analyzer{
		extract:  extract,
		allowed:  allowed,
		analyses: analyses,
		profiles: profiles,
		notifier: notifier,
		logger:   logger,
	}
}

// AnalyzeResume runs the full upload pipeline: extract text, normalize,
// score, persist the report, then fold the extracted skills and summary
// into the user's profile. The stored report is returned as-is; an empty
// document is still a valid (low-scoring) analysis.
func (u *Analyzer) AnalyzeResume(ctx context.Context, userID uuid.UUID, filename string, data []byte) (AnalyzeResumeOutput, error) {
	if filename == "" || len(data) == 0 {
		return AnalyzeResumeOutput{}, ErrNoFile
	}
	if !u.allowed(filename) {
		return AnalyzeResumeOutput{}, ErrUnsupportedFile
	}

	rawText, err := u.extract(filename, data)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Analyzer] extraction failed file=%s err=%v", filename, err)
		}
		return AnalyzeResumeOutput{}, ErrExtractionFail
	}

	normalized := resume.Normalize(rawText)
	report := resume.Analyze(normalized)

	// Summary extraction wants line structure, which normalization
	// collapses, so it reads the raw text.
	extracted := resume.ExtractProfile(rawText, report)

	rec := analysis.Record{
		ID:            uuid.New(),
		UserID:        userID,
		Filename:      filename,
		Score:         report.Score,
		SectionsFound: report.SectionsFound,
		SkillsFound:   report.SkillsFound,
		Suggestions:   report.Suggestions,
		WordCount:     report.WordCount,
	}
	if err := u.analyses.Create(ctx, rec); err != nil {
		return AnalyzeResumeOutput{}, ErrInternal
	}

	if err := u.mergeProfile(ctx, userID, extracted); err != nil && u.logger != nil {
		// The analysis is already stored; a profile write failure is
		// logged and swallowed.
		u.logger.Printf("[Analyzer] profile merge failed user=%s err=%v", userID, err)
	}

	if u.notifier != nil {
		u.notifier.AnalysisCompleted(userID, rec)
	}

	return AnalyzeResumeOutput{Report: report, RecordID: rec.ID}, nil
}

// mergeProfile folds analysis output into the profile. Empty extracted
// values never clobber existing ones.
func (u *Analyzer) mergeProfile(ctx context.Context, userID uuid.UUID, extracted resume.Extracted) error {
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, profile.ErrNotFound) {
			return err
		}
		p = profile.Profile{UserID: userID, Skills: []string{}}
	}

	if len(extracted.Skills) > 0 {
		p.Skills = extracted.Skills
	}
	if extracted.Summary != "" {
		p.Summary = extracted.Summary
	}

	return u.profiles.Upsert(ctx, p)
}

func (u *Analyzer) History(ctx context.Context, userID uuid.UUID, limit int) ([]analysis.Record, error) {
	out, err := u.analyses.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Analyzer) DeleteAnalysis(ctx context.Context, userID, id uuid.UUID) error {
	deleted, err := u.analyses.Delete(ctx, userID, id)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return analysis.ErrNotFound
	}
	return nil
}

func (u *Analyzer) DeleteAllAnalyses(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := u.analyses.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, ErrInternal
	}
	return n, nil
}
