package driven

import (
	"context"
	"io"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// ProgressExporter writes a progress report in some document format.
type ProgressExporter interface {
	// Export writes report to w.
	Export(ctx context.Context, w io.Writer, report *domain.ProgressReport) error

	// Extension is the file extension including the dot.
	Extension() string
}
