package service

import (
	"context"
	"strings"
	"time"

	"github.com/storelane/storelane/internal/auth/domain"
	"github.com/storelane/storelane/internal/auth/password"
	"github.com/storelane/storelane/internal/auth/token"
	"github.com/storelane/storelane/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	maxUsernameLength = 100
	minPasswordLength = 8
)

type Params struct {
	fx.In

	Log    *zap.Logger
	Repo   domain.Repository
	Issuer *token.Issuer
}

type Service struct {
	log    *zap.Logger
	repo   domain.Repository
	issuer *token.Issuer
}

func New(p Params) domain.Service {
	return &Service{
		log:    p.Log.Named("auth.service"),
		repo:   p.Repo,
		issuer: p.Issuer,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResult, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	errs := validation.FieldErrors{}
	if username == "" {
		errs["username"] = "Username is required"
	} else if len(username) > maxUsernameLength {
		errs["username"] = "Username must be at most 100 characters"
	}
	if email == "" {
		errs["email"] = "Email is required"
	} else if !strings.Contains(email, "@") {
		errs["email"] = "Enter a valid email address"
	}
	if req.Password == "" {
		errs["password"] = "Password is required"
	} else if len(req.Password) < minPasswordLength {
		errs["password"] = "Password must be at least 8 characters"
	}
	if len(errs) > 0 {
		return domain.AuthResult{}, errs
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return domain.AuthResult{}, err
	}

	user := domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, &user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.AuthResult{}, duplicateUserError(err)
		}
		return domain.AuthResult{}, err
	}

	tokens, err := s.issuer.Pair(user.ID.Hex())
	if err != nil {
		return domain.AuthResult{}, err
	}

	s.log.Info("user registered", zap.String("user_id", user.ID.Hex()))
	return domain.AuthResult{
		User:   user,
		Tokens: domain.TokenPair{Access: tokens.Access, Refresh: tokens.Refresh},
	}, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResult, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return domain.AuthResult{}, domain.ErrMissingCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return domain.AuthResult{}, err
	}
	if user == nil || !password.Verify(req.Password, user.PasswordHash) {
		return domain.AuthResult{}, domain.ErrInvalidCredentials
	}

	tokens, err := s.issuer.Pair(user.ID.Hex())
	if err != nil {
		return domain.AuthResult{}, err
	}

	return domain.AuthResult{
		User:   *user,
		Tokens: domain.TokenPair{Access: tokens.Access, Refresh: tokens.Refresh},
	}, nil
}

// Refresh does not invalidate previously issued refresh tokens; they stay
// valid until expiry.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.issuer.Verify(refreshToken, token.TypeRefresh)
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	user, err := s.resolveSubject(ctx, claims.Subject)
	if err != nil {
		return "", err
	}
	return s.issuer.Access(user.ID.Hex())
}

func (s *Service) ResolveUser(ctx context.Context, accessToken string) (domain.User, error) {
	claims, err := s.issuer.Verify(accessToken, token.TypeAccess)
	if err != nil {
		return domain.User{}, domain.ErrInvalidToken
	}
	return s.resolveSubject(ctx, claims.Subject)
}

// resolveSubject tries the subject as an ObjectID first and falls back to a
// raw string id.
func (s *Service) resolveSubject(ctx context.Context, subject string) (domain.User, error) {
	if subject == "" {
		return domain.User{}, domain.ErrInvalidToken
	}

	var user *domain.User
	var err error
	if oid, parseErr := primitive.ObjectIDFromHex(subject); parseErr == nil {
		user, err = s.repo.FindByID(ctx, oid)
	}
	if err != nil {
		return domain.User{}, err
	}
	if user == nil {
		user, err = s.repo.FindByID(ctx, subject)
		if err != nil {
			return domain.User{}, err
		}
	}
	if user == nil {
		return domain.User{}, domain.ErrUserNotFound
	}
	return *user, nil
}

// duplicateUserError maps a unique-index violation to the offending field.
func duplicateUserError(err error) error {
	if strings.Contains(err.Error(), "username") {
		return validation.New("username", "A user with that username already exists")
	}
	return validation.New("email", "A user with that email already exists")
}
