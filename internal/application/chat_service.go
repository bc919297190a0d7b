package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/tranquilify/tranquilify-api/pkg/helpers"
)

var ErrChatUnavailable = errors.New("assistant unavailable")

const chatSystemPrompt = "You are Tranquil, a calm and friendly mental wellness companion. " +
	"Offer short, supportive, practical guidance on stress, mood and healthy habits. " +
	"You are not a medical professional; suggest seeking one for serious concerns."

const fallbackTip = "Take three slow breaths: in for four counts, hold for four, out for six. " +
	"A single mindful minute can reset a stressful moment."

const tipCacheKey = "ai:daily_tip"

type cachedTip struct {
	Tip         string `json:"tip"`
	GeneratedOn string `json:"generated_on"`
}

type ChatService struct {
	Client *genai.Client
	Model  string
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewChatService(client *genai.Client, model string, rdb *redis.Client, logger *logrus.Logger) *ChatService {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &ChatService{Client: client, Model: model, Redis: rdb, Logger: logger}
}

// Chat sends one user message to the assistant and returns the reply.
func (s *ChatService) Chat(ctx context.Context, message string) (string, error) {
	if s.Client == nil {
		return "", ErrChatUnavailable
	}
	c, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	contents := []*genai.Content{genai.NewContentFromText(message, genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatSystemPrompt, genai.RoleUser),
	}
	res, err := s.Client.Models.GenerateContent(c, s.Model, contents, cfg)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("genai chat failed")
		}
		return "", ErrChatUnavailable
	}
	reply := strings.TrimSpace(res.Text())
	if reply == "" {
		return "", ErrChatUnavailable
	}
	return reply, nil
}

// DailyTip returns a short wellness tip. The tip is generated once per day
// and cached in Redis until local midnight; a static tip covers outages.
func (s *ChatService) DailyTip(ctx context.Context) (string, error) {
	if s.Redis != nil {
		var cached cachedTip
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, tipCacheKey, &cached); err == nil && ok && cached.Tip != "" {
			return cached.Tip, nil
		}
	}

	tip, err := s.Chat(ctx, "Give one short daily wellness tip, two sentences at most.")
	if err != nil {
		return fallbackTip, nil
	}

	if s.Redis != nil {
		entry := cachedTip{Tip: tip, GeneratedOn: time.Now().Format("2006-01-02")}
		if err := helpers.RedisSetJSON(ctx, s.Redis, tipCacheKey, entry, untilMidnight()); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("tip cache write failed")
		}
	}
	return tip, nil
}

func untilMidnight() time.Duration {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return time.Until(midnight)
}
