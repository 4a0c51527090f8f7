package speech

import (
	"context"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
)

// Ensure Unsupported implements the interface.
var _ driven.SpeechRecognizer = Unsupported{}

// Unsupported reports no speech capability.
type Unsupported struct{}

// Supported always returns false.
func (Unsupported) Supported() bool { return false }

// Recognize always fails with domain.ErrSpeechUnsupported.
func (Unsupported) Recognize(context.Context) (string, error) {
	return "", domain.ErrSpeechUnsupported
}
