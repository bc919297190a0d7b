package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
	"github.com/tranquilify/tranquilify-api/internal/domain/repository"
	"github.com/tranquilify/tranquilify-api/pkg/helpers"
	"github.com/tranquilify/tranquilify-api/pkg/mailer"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
)

const resetTokenTTL = time.Hour

type UserService struct {
	Repo      repository.UserRepository
	JWT       *helpers.JWTManager
	GCS       *storage.Client
	GCSBucket string
	Redis     *redis.Client
	Logger    *logrus.Logger
	Pub       *helpers.RabbitPublisher
	ResetURL  string
	MailOn    bool
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, gcs *storage.Client, gcsBucket string, rdb *redis.Client, logger *logrus.Logger, pub *helpers.RabbitPublisher, resetURL string, mailOn bool) *UserService {
	return &UserService{
		Repo:      repo,
		JWT:       jwt,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		Redis:     rdb,
		Logger:    logger,
		Pub:       pub,
		ResetURL:  resetURL,
		MailOn:    mailOn,
	}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

type UserProfile struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

func sessionKey(userID string) string { return "user:session:" + userID }
func resetKey(token string) string    { return "pwd:reset:token:" + token }
func nowRFC3339() string              { return time.Now().UTC().Format(time.RFC3339Nano) }

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Register creates an account, queues the welcome email and logs the user
// straight in.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*UserProfile, TokenPair, error) {
	if existing, err := s.Repo.GetByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, TokenPair{}, ErrEmailTaken
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	u := &entity.User{Email: in.Email, Password: hash, Name: in.Name}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, TokenPair{}, err
	}

	if s.Pub != nil && s.MailOn {
		job := mailer.EmailJob{
			To:       u.Email,
			Template: mailer.TemplateWelcome,
			Data:     map[string]any{"Name": u.Name},
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
		}
	}

	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return &UserProfile{UserID: u.ID, Email: u.Email, Name: u.Name}, pair, nil
}

// Authenticate validates email/password and returns the user without issuing tokens.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueTokens generates access/refresh tokens and records a session in Redis.
func (s *UserService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
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
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"avatar_url": u.AvatarURL,
			"sid":        sid,
			"created_at": nowRFC3339(),
		})
		pipe.Expire(ctx, key, 24*time.Hour)
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*UserProfile, TokenPair, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return &UserProfile{UserID: u.ID, Email: u.Email, Name: u.Name}, pair, nil
}

func (s *UserService) Logout(ctx context.Context, userID string) {
	if s.Redis != nil && userID != "" {
		_ = s.Redis.Del(ctx, sessionKey(userID)).Err()
	}
}

func (s *UserService) Refresh(ctx context.Context, refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	u, err := s.Repo.GetByID(ctx, claims.UserID)
	if err != nil || u == nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	// The token's sid must still match the active session.
	if s.Redis != nil {
		data, rErr := s.Redis.HGetAll(ctx, sessionKey(u.ID)).Result()
		if rErr != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			return TokenPair{}, "", ErrInvalidCredentials
		}
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return TokenPair{}, "", err
	}
	return pair, u.ID, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

type UpdateProfileInput struct {
	Name      string
	AvatarURL string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.AvatarURL != "" {
		u.AvatarURL = in.AvatarURL
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		key := sessionKey(u.ID)
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"name":       u.Name,
			"avatar_url": u.AvatarURL,
			"updated_at": nowRFC3339(),
		})
		if ttl, tErr := s.Redis.TTL(ctx, key).Result(); tErr == nil && ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		if _, pErr := pipe.Exec(ctx); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}
	return u, nil
}

// UploadAvatar stores a profile image in GCS and records its public URL.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return "", ErrUserNotFound
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	u.AvatarURL = url
	if err := s.Repo.Update(ctx, u); err != nil {
		return "", err
	}
	if s.Redis != nil {
		s.Redis.HSet(ctx, sessionKey(u.ID), map[string]any{
			"avatar_url": u.AvatarURL,
			"updated_at": nowRFC3339(),
		})
	}
	return url, nil
}

// ResetInit issues a password reset token and queues the reset email. It
// reports success regardless of whether the email is registered so the
// endpoint cannot be used to probe accounts.
func (s *UserService) ResetInit(ctx context.Context, email string) error {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil
	}
	token := uuid.NewString()
	if s.Redis == nil {
		return errors.New("redis not configured")
	}
	if err := s.Redis.Set(ctx, resetKey(token), u.ID, resetTokenTTL).Err(); err != nil {
		return err
	}
	if s.Pub != nil && s.MailOn {
		job := mailer.EmailJob{
			To:       u.Email,
			Template: mailer.TemplatePasswordReset,
			Data: map[string]any{
				"Name":      u.Name,
				"ResetURL":  s.ResetURL + "?token=" + token,
				"ExpiresIn": resetTokenTTL.String(),
			},
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("reset email enqueue failed")
		}
	}
	return nil
}

// ResetConfirm consumes a reset token and replaces the password. The
// active session is dropped so stolen cookies die with the old password.
func (s *UserService) ResetConfirm(ctx context.Context, token, newPassword string) error {
	if s.Redis == nil {
		return errors.New("redis not configured")
	}
	uid, err := s.Redis.Get(ctx, resetKey(token)).Result()
	if err != nil || uid == "" {
		return ErrResetTokenInvalid
	}
	u, err := s.Repo.GetByID(ctx, uid)
	if err != nil || u == nil {
		return ErrResetTokenInvalid
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	u.Password = hash
	if err := s.Repo.Update(ctx, u); err != nil {
		return err
	}
	_ = s.Redis.Del(ctx, resetKey(token), sessionKey(uid)).Err()
	return nil
}

// ResetData wipes the user's wellness data but keeps the account.
func (s *UserService) ResetData(ctx context.Context, userID string) error {
	return s.Repo.PurgeData(ctx, userID)
}

// DeleteAccount removes the account, its data and its session.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.Repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if s.Redis != nil {
		_ = s.Redis.Del(ctx, sessionKey(userID)).Err()
	}
	return nil
}
