package application

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/philgetzen/favorites-tracker-sub003/internal/domain/entity"
	repo "github.com/philgetzen/favorites-tracker-sub003/internal/domain/repository"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/helpers"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/mailer"
	"github.com/philgetzen/favorites-tracker-sub003/pkg/mailer/templates"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotSignedIn        = errors.New("not signed in")
)

// AuthService drives the sign-in lifecycle: credentials through the auth
// repository, token issuance and session rotation through Redis, and the
// verification email through the outbound queue.
type AuthService struct {
	Auth           repo.AuthRepository
	Users          repo.UserRepository
	JWT            *helpers.JWTManager
	Redis          *redis.Client
	Logger         *logrus.Logger
	Queue          *helpers.RabbitPublisher
	AppURL         string
	VerifyEmailURL string
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

type LoginResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func NewAuthService(auth repo.AuthRepository, users repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger, queue *helpers.RabbitPublisher, appURL, verifyEmailURL string) *AuthService {
	return &AuthService{
		Auth:           auth,
		Users:          users,
		JWT:            jwt,
		Redis:          rdb,
		Logger:         logger,
		Queue:          queue,
		AppURL:         appURL,
		VerifyEmailURL: verifyEmailURL,
	}
}

// Register creates the account, its profile, and queues the verification
// email. The queue publish is best effort; a lost email never fails signup.
func (s *AuthService) Register(ctx context.Context, email, password, displayName string) (*entity.User, error) {
	u, err := s.Auth.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	u.DisplayName = displayName
	u.Touch()
	if err := s.Users.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	p := entity.NewUserProfile(u.ID, displayName)
	if err := s.Users.CreateProfile(ctx, p); err != nil {
		return nil, err
	}

	s.enqueueVerifyEmail(ctx, u)
	return u, nil
}

func keyVerifyToken(t string) string { return "email:verify:token:" + t }

func genToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (s *AuthService) enqueueVerifyEmail(ctx context.Context, u *entity.User) {
	if s.Queue == nil || s.Redis == nil {
		return
	}
	tok, err := genToken(32)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, keyVerifyToken(tok), u.ID, 24*time.Hour).Err(); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("store verify token failed")
		}
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: templates.VerifyEmail,
		Data: templates.Data{
			Name:      u.DisplayName,
			Email:     u.Email,
			VerifyURL: s.VerifyEmailURL + "?token=" + tok,
			AppURL:    s.AppURL,
		},
	}
	if err := s.Queue.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("enqueue verify email failed")
	}
}

// VerifyEmail redeems a verification token and marks the account verified.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	if s.Redis == nil {
		return repo.Unavailable("verification unavailable")
	}
	uid, err := s.Redis.Get(ctx, keyVerifyToken(token)).Result()
	if err != nil || uid == "" {
		return repo.Unauthorized("invalid or expired token")
	}
	u, err := s.Users.GetUser(ctx, uid)
	if err != nil {
		return err
	}
	if !u.IsVerified {
		u.IsVerified = true
		u.Touch()
		if err := s.Users.UpdateUser(ctx, u); err != nil {
			return err
		}
	}
	s.Redis.Del(ctx, keyVerifyToken(token))
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, TokenPair, error) {
	u, err := s.Auth.SignIn(ctx, email, password)
	if err != nil {
		if repo.IsKind(err, repo.KindUnauthorized) {
			return nil, TokenPair{}, ErrInvalidCredentials
		}
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	resp := &LoginResponse{UserID: u.ID, Email: u.Email, Name: u.DisplayName}
	return resp, pair, nil
}

// IssueTokens generates an access/refresh pair and records the session in
// Redis under a fresh session id.
func (s *AuthService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate refresh token failed")
		}
		return TokenPair{}, err
	}

	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.DisplayName,
			"photo_url":  u.PhotoURL,
			"sid":        sid,
			"logged_in":  true,
			"created_at": nowRFC3339(),
		})
		pipe.Expire(ctx, key, 24*time.Hour)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Refresh validates the refresh token against the recorded session, then
// rotates the session id and both tokens.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	u, err := s.Users.GetUser(ctx, claims.UserID)
	if err != nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	if s.Redis != nil {
		data, rErr := s.Redis.HGetAll(ctx, sessionKey(u.ID)).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, "", ErrInvalidCredentials
		}
	}

	sid := uuid.NewString()
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, "", err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		return TokenPair{}, "", err
	}
	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{"sid": sid, "updated_at": nowRFC3339()})
		pipe.Expire(ctx, key, 24*time.Hour)
		_, _ = pipe.Exec(ctx)
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, u.ID, nil
}

// Logout clears the signed-in state and drops the Redis session. The local
// sign-out always happens; a Redis failure is logged, not surfaced.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.Auth.SignOut(ctx); err != nil {
		return err
	}
	if s.Redis != nil {
		if err := s.Redis.Del(ctx, sessionKey(userID)).Err(); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("drop session failed")
		}
	}
	return nil
}

// CurrentUser returns the cached auth state without touching the backend.
func (s *AuthService) CurrentUser() *entity.User {
	return s.Auth.CurrentUser()
}

// DeleteAccount removes the account and everything under it, then drops the
// session.
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.Auth.DeleteAccount(ctx); err != nil {
		return err
	}
	if s.Redis != nil {
		_ = s.Redis.Del(ctx, sessionKey(userID)).Err()
	}
	return nil
}
