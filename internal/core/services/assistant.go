package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/logger"
)

// Ensure AssistantService implements the interface.
var _ driving.AssistantService = (*AssistantService)(nil)

// AssistantService answers questions with the catalog matcher.
type AssistantService struct {
	catalog driving.CatalogService
	latency driven.Latency
	delay   time.Duration
}

// NewAssistantService creates a new assistant service.
// delay is passed to latency before each reply resolves.
func NewAssistantService(catalog driving.CatalogService, latency driven.Latency, delay time.Duration) *AssistantService {
	if latency == nil {
		latency = NoLatency{}
	}
	return &AssistantService{
		catalog: catalog,
		latency: latency,
		delay:   delay,
	}
}

// Ask matches query, preferring the current topic.
func (s *AssistantService) Ask(ctx context.Context, query string, current domain.TopicID) (domain.Reply, error) {
	if strings.TrimSpace(query) == "" {
		return domain.Reply{}, domain.ErrEmptyQuery
	}

	var cur *domain.Topic
	if current != "" {
		t, err := s.catalog.Get(current)
		switch {
		case err == nil:
			cur = t
		case errors.Is(err, domain.ErrNotFound):
			logger.Warn("Assistant: current topic %q not in catalog", current)
		default:
			return domain.Reply{}, err
		}
	}

	if err := s.latency.Wait(ctx, s.delay); err != nil {
		return domain.Reply{}, fmt.Errorf("assistant: %w", err)
	}

	reply, _ := Match(s.catalog.Topics(), query, cur)
	logger.Debug("Assistant: %q -> %s (%s)", query, reply.Kind, reply.TopicID)
	return reply, nil
}

// Welcome returns the message that opens every conversation.
func (s *AssistantService) Welcome() domain.ChatMessage {
	return domain.ChatMessage{Role: domain.RoleAssistant, Text: domain.WelcomeText}
}
