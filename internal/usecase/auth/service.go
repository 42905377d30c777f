package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"careercraft/internal/domain/user"
	"careercraft/internal/repository"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidOTP             = errors.New("invalid or expired OTP")
	ErrAlreadyVerified        = errors.New("email already verified")
	ErrNotVerified            = errors.New("email not verified")
	ErrInternal               = errors.New("internal error")
)

const otpTTL = 10 * time.Minute

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// OTPStore holds verification codes with expiry. Backed by redis; the
// code must actually persist, so store faults surface as errors rather
// than silent bypasses.
type OTPStore interface {
	SetValue(ctx context.Context, key, value string, ttl time.Duration) error
	GetValue(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}

// Mailer delivers the verification code.
type Mailer interface {
	SendOTP(email, code string) error
}

type Service struct {
	users repository.UserRepository
	otps  OTPStore
	mail  Mailer
}

func NewService(users repository.UserRepository, otps OTPStore, mail Mailer) *Service {
	return &Service{users: users, otps: otps, mail: mail}
}

// Register creates an unverified account and sends a one-time code to
// the given address. A pre-existing unverified account gets a fresh
// code instead of an error, so an abandoned signup can be retried.
func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return user.User{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return user.User{}, ErrInvalidInput
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.IsVerified {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		if err := s.issueOTP(ctx, email); err != nil {
			return user.User{}, err
		}
		return sanitizeUser(existing), nil
	case errors.Is(err, user.ErrNotFound):
	default:
		return user.User{}, ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.CreateUser(ctx, u); err != nil {
		exists, exErr := s.users.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	if err := s.issueOTP(ctx, email); err != nil {
		return user.User{}, err
	}

	created, err := s.users.GetUserByID(ctx, u.ID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(created), nil
}

// VerifyOTP checks the code for the address and marks the account
// verified on a match. Codes are single-use.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) (user.User, error) {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return user.User{}, ErrInvalidInput
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidOTP
		}
		return user.User{}, ErrInternal
	}
	if u.IsVerified {
		return user.User{}, ErrAlreadyVerified
	}

	stored, found, err := s.otps.GetValue(ctx, otpKey(email))
	if err != nil {
		return user.User{}, ErrInternal
	}
	if !found || stored != code {
		return user.User{}, ErrInvalidOTP
	}

	if err := s.users.MarkVerified(ctx, u.ID); err != nil {
		return user.User{}, ErrInternal
	}
	_ = s.otps.Delete(ctx, otpKey(email))

	u.IsVerified = true
	return sanitizeUser(u), nil
}

// ResendOTP replaces any pending code for an unverified account.
func (s *Service) ResendOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return ErrInvalidInput
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrInvalidInput
		}
		return ErrInternal
	}
	if u.IsVerified {
		return ErrAlreadyVerified
	}

	return s.issueOTP(ctx, email)
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return user.User{}, ErrInvalidCredentials
	}
	if in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	if !u.IsVerified {
		return user.User{}, ErrNotVerified
	}

	return sanitizeUser(u), nil
}

func (s *Service) issueOTP(ctx context.Context, email string) error {
	code, err := generateOTP()
	if err != nil {
		return ErrInternal
	}
	if err := s.otps.SetValue(ctx, otpKey(email), code, otpTTL); err != nil {
		return ErrInternal
	}
	if err := s.mail.SendOTP(email, code); err != nil {
		return ErrInternal
	}
	return nil
}

func otpKey(email string) string {
	return "otp:" + email
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	pw = strings.TrimSpace(pw)
	return len(pw) >= 8
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
