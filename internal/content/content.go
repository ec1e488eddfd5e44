// Package content contains transformers that rewrite the visible text and
// links of HTML documents.
package content

import (
	"log/slog"

	"github.com/stolasapp/tmrewrite/internal/config"
)

// Rewriter builds the document pipeline described by cfg: absolute links to
// the origin are made root-relative, then every word of exactly
// cfg.WordLength letters in the visible text is suffixed with [Marker].
func Rewriter(cfg *config.Config, logger *slog.Logger) (Pipeline, error) {
	hostPrefix, err := cfg.HostPrefix()
	if err != nil {
		return Pipeline{}, err
	}
	stripHost, err := NewHostStripper(hostPrefix)
	if err != nil {
		return Pipeline{}, err
	}
	annotate, err := NewSuffixAnnotator(cfg.WordLength)
	if err != nil {
		return Pipeline{}, err
	}
	scanner, err := NewMarkupScanner(annotate)
	if err != nil {
		return Pipeline{}, err
	}

	logger.Debug("rewriter configured",
		slog.String("host_prefix", stripHost.HostPrefix()),
		slog.Int("word_length", annotate.WordLength()))

	return NewPipeline(stripHost, scanner)
}
