package main

import (
	"context"
	"fmt"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/catalog"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/clipboard"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/config/file"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/export"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/quizjson"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/speech"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/storage/memory"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/storage/sqlite"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/cli"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/services"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/logger"
)

// bootstrap wires adapters into services for the global flags in opts.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, func(), error) {
	var closers []func() error
	done := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("Shutdown: %v", err)
			}
		}
	}

	configStore, err := openConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}

	catalogService, err := services.NewCatalogService(ctx, catalog.NewSource(settings.Catalog.Path))
	if err != nil {
		return nil, nil, fmt.Errorf("loading catalog: %w", err)
	}
	logger.Info("Catalog: %d topics", len(catalogService.Topics()))

	progressStore, feedbackStore, closeStore, err := openStores(opts)
	if err != nil {
		return nil, nil, err
	}
	if closeStore != nil {
		closers = append(closers, closeStore)
	}

	codec, err := quizjson.NewCodec()
	if err != nil {
		done()
		return nil, nil, err
	}

	latency := services.TimerLatency{}
	quizService := services.NewQuizService(catalogService, latency, codec, services.QuizConfig{
		Size:  settings.Quiz.Size,
		Delay: settings.Quiz.Delay,
	})

	recognizer, closeSpeech := openSpeech(settings.Speech)
	if closeSpeech != nil {
		closers = append(closers, closeSpeech)
	}

	svc := &cli.Services{
		Catalog:   catalogService,
		Assistant: services.NewAssistantService(catalogService, latency, settings.Assistant.Delay),
		Search:    services.NewSearchService(catalogService, settings.Search.Limit),
		Quiz:      quizService,
		Progress:  services.NewProgressService(catalogService, progressStore, feedbackStore, export.NewXLSX()),
		Feedback:  services.NewFeedbackService(catalogService, feedbackStore),
		Settings:  settingsService,
		Actions:   services.NewActionService(clipboard.New(), quizService),
		Speech:    services.NewSpeechService(recognizer),
	}

	if settings.Catalog.Watch && settings.Catalog.Path != "" {
		w, err := catalog.NewWatcher(settings.Catalog.Path)
		if err != nil {
			logger.Warn("Catalog watch disabled: %v", err)
		} else {
			svc.Watcher = w
		}
	}

	return svc, done, nil
}

func openConfig(opts cli.Options) (driven.ConfigStore, error) {
	if opts.Ephemeral {
		logger.Info("Config: in memory")
		return memory.NewConfigStore(), nil
	}
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	logger.Info("Config: %s", store.Path())
	return store, nil
}

func openStores(opts cli.Options) (driven.ProgressStore, driven.FeedbackStore, func() error, error) {
	if opts.Ephemeral {
		logger.Info("Storage: in memory")
		return memory.NewProgressStore(), memory.NewFeedbackStore(), nil, nil
	}
	store, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening database: %w", err)
	}
	logger.Info("Storage: %s", store.Path())
	return store.ProgressStore(), store.FeedbackStore(), store.Close, nil
}

// openSpeech returns the cloud recognizer when voice input is configured,
// and Unsupported otherwise.
func openSpeech(s domain.SpeechSettings) (driven.SpeechRecognizer, func() error) {
	if !s.IsConfigured() {
		return speech.Unsupported{}, nil
	}
	recorder, err := speech.NewCommandRecorder(s.RecordCommand)
	if err != nil {
		logger.Warn("Speech disabled: %v", err)
		return speech.Unsupported{}, nil
	}
	cloud := speech.NewCloud(recorder, speech.Config{
		Language:        s.Language,
		SampleRate:      s.SampleRate,
		CredentialsFile: s.CredentialsFile,
	})
	return cloud, cloud.Close
}
