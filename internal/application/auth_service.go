package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
	"github.com/kepl/map2-server/pkg/helpers"
	"github.com/kepl/map2-server/pkg/mailer"
)

// MinPasswordLen is the signup minimum password length.
const MinPasswordLen = 6

// AuthService owns signup, login, and the token/session lifecycle. Identity
// is carried by signed tokens plus a Redis session, never by request
// parameters.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger

	// Pub enqueues the welcome email on signup when mail is enabled.
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailEnabled bool) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Redis: rdb, Logger: logger, Pub: pub, MailEnabled: mailEnabled}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

type SignupInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,pwd"`
	IsBusker   bool   `json:"isBusker"`
	IsBusiness bool   `json:"isBusiness"`
}

// Signup registers a new account. The stored role is always USER; elevation
// happens only through admin user management.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if len(in.Password) < MinPasswordLen {
		return nil, validationf("password must be at least %d characters", MinPasswordLen)
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:      in.Email,
		Password:   hash,
		Name:       in.Name,
		Role:       entity.RoleUser,
		IsBusker:   in.IsBusker,
		IsBusiness: in.IsBusiness,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if s.Pub != nil && s.MailEnabled {
		job := mailer.EmailJob{
			To:      u.Email,
			Subject: "Welcome to Map2",
			Text:    "Hi " + u.Name + ", your Map2 account is ready. Pin something on the map!",
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email enqueue failed")
		}
	}
	return u, nil
}

// Authenticate validates email/password and returns the user without issuing
// tokens. An unknown email reports ErrNotFound so the client can distinguish
// a missing account from a wrong password.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueTokens generates an access/refresh pair and records a session in Redis.
func (s *AuthService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, err
	}

	if s.Redis != nil {
		key := sessionKey(u.ID)
		fields := map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"role":       string(u.Role),
			"sid":        sid,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		}
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, 24*time.Hour)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Refresh rotates the session id and both tokens. The refresh token's sid
// must match the live session.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	if s.Redis != nil {
		data, rErr := s.Redis.HGetAll(ctx, sessionKey(u.ID)).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, ErrInvalidCredentials
		}
	}
	return s.IssueTokens(ctx, u)
}

// Logout drops the server-side session.
func (s *AuthService) Logout(ctx context.Context, userID string) {
	if s.Redis == nil || userID == "" {
		return
	}
	if err := s.Redis.Del(ctx, sessionKey(userID)).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("session delete failed")
	}
}
