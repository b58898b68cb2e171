package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dafibh/budgetly/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	AdvisorPersona       = "You're a friendly and helpful retirement advisor."
	AdvisorTemperature   = 0.4
	AdvisorTimeout       = 30 * time.Second
	DefaultAdvisorModel  = "gpt-3.5-turbo"
	AdvisorEmptyPrompt   = "Please provide a question about retirement planning, saving, or investing."
	AdvisorFallbackTip   = "(Advisor in fallback mode) Tip: automate monthly savings, build a 3–6 month emergency fund, and keep a diversified allocation aligned with your risk tolerance."
	advisorFailurePrefix = "(Temporary advisor fallback) Consider raising contributions yearly. Details: "
)

// AdvisorConfig holds the advisory credential and model settings
type AdvisorConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// AdvisorService answers free-text questions through a chat-completion API and
// falls back to canned advice when it cannot
type AdvisorService struct {
	cfg    AdvisorConfig
	client domain.ChatClient
}

// NewAdvisorService creates a new AdvisorService. An empty APIKey puts it in
// fallback mode and client is never called.
func NewAdvisorService(cfg AdvisorConfig, client domain.ChatClient) *AdvisorService {
	if cfg.Model == "" {
		cfg.Model = DefaultAdvisorModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = AdvisorTimeout
	}
	return &AdvisorService{cfg: cfg, client: client}
}

// FallbackMode reports whether live calls are disabled
func (s *AdvisorService) FallbackMode() bool {
	return s.cfg.APIKey == "" || s.client == nil
}

// Ask returns the advisor's answer. It never fails; every error is folded
// into the returned text.
func (s *AdvisorService) Ask(ctx context.Context, prompt string) string {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return AdvisorEmptyPrompt
	}
	if s.FallbackMode() {
		return AdvisorFallbackTip
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	answer, err := s.client.Complete(ctx, domain.ChatRequest{
		Model: s.cfg.Model,
		Messages: []domain.ChatMessage{
			{Role: domain.ChatRoleSystem, Content: AdvisorPersona},
			{Role: domain.ChatRoleUser, Content: prompt},
		},
		Temperature: AdvisorTemperature,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn().Err(err).Dur("timeout", s.cfg.Timeout).Msg("Advisor call timed out")
		} else {
			log.Warn().Err(err).Msg("Advisor call failed")
		}
		return fmt.Sprintf("%s%v", advisorFailurePrefix, err)
	}

	return answer
}
