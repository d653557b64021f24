package openapi

import (
	"context"

	"github.com/gbifargentina/gbif-api/pkg/search"
)

// Parser extracts search parameter descriptors from the
// components.parameters section of an OpenAPI document.
type Parser interface {
	Parameters(ctx context.Context, doc Document) ([]search.Descriptor, error)
}

// ParserOptions exposes parsing toggles.
type ParserOptions struct {
	// ResolveReferences controls whether the parser eagerly resolves $ref
	// pointers and validates the document. Defaults to off so
	// component-only registry documents parse without paths.
	ResolveReferences bool

	// AllowEmpty accepts documents that declare no parameters instead of
	// failing.
	AllowEmpty bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithReferenceResolution toggles eager reference resolution.
func WithReferenceResolution(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ResolveReferences = enabled
	}
}

// WithAllowEmpty accepts parameter-less documents.
func WithAllowEmpty(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowEmpty = enabled
	}
}

// NewParserOptions applies the options and returns the configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
