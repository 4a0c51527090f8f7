package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/logger"
)

// Ensure QuizService implements the interface.
var _ driving.QuizService = (*QuizService)(nil)

// QuizConfig tunes question selection.
type QuizConfig struct {
	// Size is the maximum number of questions drawn.
	Size int

	// Delay is passed to the latency boundary before a quiz resolves.
	Delay time.Duration

	// Rand shuffles banks. nil seeds a fresh generator.
	Rand *rand.Rand
}

// QuizService draws questions from topic banks.
type QuizService struct {
	catalog driving.CatalogService
	latency driven.Latency
	codec   driven.QuizDecoder
	size    int
	delay   time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuizService creates a new quiz service.
// codec is optional; without it Decode and Encode fail.
func NewQuizService(
	catalog driving.CatalogService,
	latency driven.Latency,
	codec driven.QuizDecoder,
	cfg QuizConfig,
) *QuizService {
	if latency == nil {
		latency = NoLatency{}
	}
	if cfg.Size <= 0 {
		cfg.Size = domain.DefaultQuizSize
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &QuizService{
		catalog: catalog,
		latency: latency,
		codec:   codec,
		size:    cfg.Size,
		delay:   cfg.Delay,
		rng:     cfg.Rand,
	}
}

// Select draws up to the configured number of questions from the topic's bank.
func (s *QuizService) Select(ctx context.Context, id domain.TopicID) ([]domain.QuizQuestion, error) {
	var bank []domain.QuizQuestion
	if id != "" {
		t, err := s.catalog.Get(id)
		if err != nil {
			return nil, err
		}
		bank = t.Quizzes
	}

	if err := s.latency.Wait(ctx, s.delay); err != nil {
		return nil, fmt.Errorf("quiz: %w", err)
	}

	if len(bank) == 0 {
		logger.Debug("Quiz: no bank for %q, serving fallback", id)
		return []domain.QuizQuestion{domain.FallbackQuestion()}, nil
	}
	return s.draw(bank), nil
}

// ForText picks the topic named by text and draws from it.
// Text that names no topic draws from current.
func (s *QuizService) ForText(
	ctx context.Context, text string, current domain.TopicID,
) ([]domain.QuizQuestion, domain.TopicID, error) {
	id := current
	if hits := HeaderSearch(s.catalog.Topics(), text, 1); len(hits) > 0 {
		id = hits[0].TopicID
	}
	questions, err := s.Select(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return questions, id, nil
}

// Decode validates a quiz JSON document.
func (s *QuizService) Decode(data []byte) ([]domain.QuizQuestion, error) {
	if s.codec == nil {
		return nil, fmt.Errorf("quiz codec: %w", domain.ErrNotFound)
	}
	return s.codec.Decode(data)
}

// Encode renders questions as quiz JSON.
func (s *QuizService) Encode(questions []domain.QuizQuestion) ([]byte, error) {
	if s.codec == nil {
		return nil, fmt.Errorf("quiz codec: %w", domain.ErrNotFound)
	}
	return s.codec.Encode(questions)
}

// draw shuffles a copy of bank and keeps the first size entries.
func (s *QuizService) draw(bank []domain.QuizQuestion) []domain.QuizQuestion {
	shuffled := make([]domain.QuizQuestion, len(bank))
	copy(shuffled, bank)

	s.mu.Lock()
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()

	if len(shuffled) > s.size {
		shuffled = shuffled[:s.size]
	}
	return shuffled
}
