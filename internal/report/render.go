package report

import (
	"errors"
	"log/slog"

	"github.com/avelis/revu/internal/review"
)

// Renderer produces a PDF artifact from a finished run. Implementations
// must render sentinel scores ("N/A", "Error") as plain text.
type Renderer interface {
	Name() string
	Render(reviews []review.Review, textReport string, meta Meta, outPath string) error
}

// ErrNoRenderer is returned when every renderer in the chain failed.
var ErrNoRenderer = errors.New("PDF generation failed: no renderer succeeded; install wkhtmltopdf (https://wkhtmltopdf.org) for styled output")

// DefaultRenderers returns the renderer chain in preference order: the
// styled HTML path first, the direct document model as fallback.
func DefaultRenderers() []Renderer {
	return []Renderer{&HTMLRenderer{}, &DocRenderer{}}
}

// RenderPDF tries each renderer in order until one writes outPath,
// returning the name of the renderer that succeeded.
func RenderPDF(reviews []review.Review, textReport string, meta Meta, outPath string, log *slog.Logger, renderers ...Renderer) (string, error) {
	if log == nil {
		log = slog.Default()
	}
	if len(renderers) == 0 {
		renderers = DefaultRenderers()
	}

	for _, r := range renderers {
		if err := r.Render(reviews, textReport, meta, outPath); err != nil {
			log.Warn("PDF renderer failed", "renderer", r.Name(), "err", err)
			continue
		}
		log.Info("PDF generated", "renderer", r.Name(), "path", outPath)
		return r.Name(), nil
	}
	return "", ErrNoRenderer
}
