package speech

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	speechapi "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/googleapis/gax-go/v2"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/logger"
)

// Ensure Cloud implements the interface.
var _ driven.SpeechRecognizer = (*Cloud)(nil)

// DefaultMinInterval spaces consecutive recognition requests.
const DefaultMinInterval = 2 * time.Second

// recognizeClient is the subset of the Speech-to-Text client used here.
type recognizeClient interface {
	Recognize(ctx context.Context, req *speechpb.RecognizeRequest, opts ...gax.CallOption) (*speechpb.RecognizeResponse, error)
	Close() error
}

// Config configures a Cloud recognizer.
type Config struct {
	Language        string
	SampleRate      int
	CredentialsFile string
	MinInterval     time.Duration
}

// Cloud recognizes speech with Google Cloud Speech-to-Text.
type Cloud struct {
	recorder Recorder
	cfg      Config

	mu      sync.Mutex
	client  recognizeClient
	dial    func(ctx context.Context) (recognizeClient, error)
	limiter *rate.Limiter
}

// NewCloud creates a recognizer. The API client is dialled lazily on the
// first capture so startup never blocks on credentials.
func NewCloud(recorder Recorder, cfg Config) *Cloud {
	if cfg.Language == "" {
		cfg.Language = domain.DefaultSpeechLanguage
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = domain.DefaultSampleRate
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = DefaultMinInterval
	}

	c := &Cloud{
		recorder: recorder,
		cfg:      cfg,
		limiter:  rate.NewLimiter(rate.Every(cfg.MinInterval), 1),
	}
	c.dial = c.dialGoogle
	return c
}

func (c *Cloud) dialGoogle(ctx context.Context) (recognizeClient, error) {
	var opts []option.ClientOption
	if c.cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(c.cfg.CredentialsFile))
	}
	client, err := speechapi.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create speech client: %w", err)
	}
	return client, nil
}

// Supported reports whether a recorder is present and, for command
// recorders, whether its program is installed.
func (c *Cloud) Supported() bool {
	if c.recorder == nil {
		return false
	}
	if r, ok := c.recorder.(interface{ Available() bool }); ok {
		return r.Available()
	}
	return true
}

// Recognize records one utterance and returns the best transcript.
func (c *Cloud) Recognize(ctx context.Context) (string, error) {
	if !c.Supported() {
		return "", domain.ErrSpeechUnsupported
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	audio, err := c.recorder.Record(ctx)
	if err != nil {
		return "", err
	}
	if len(audio) == 0 {
		return "", domain.ErrNoSpeechResult
	}
	logger.Debug("Speech: recorded %d bytes", len(audio))

	client, err := c.getClient(ctx)
	if err != nil {
		return "", err
	}

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz: int32(c.cfg.SampleRate), //nolint:gosec // sample rates are small
			LanguageCode:    c.cfg.Language,
			MaxAlternatives: 1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("recognize speech: %w", err)
	}

	var parts []string
	for _, result := range resp.GetResults() {
		if alts := result.GetAlternatives(); len(alts) > 0 {
			if t := strings.TrimSpace(alts[0].GetTranscript()); t != "" {
				parts = append(parts, t)
			}
		}
	}
	if len(parts) == 0 {
		return "", domain.ErrNoSpeechResult
	}
	return strings.Join(parts, " "), nil
}

func (c *Cloud) getClient(ctx context.Context) (recognizeClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return c.client, nil
	}
	client, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}
	c.client = client
	return client, nil
}

// Close releases the API client if one was created.
func (c *Cloud) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}
