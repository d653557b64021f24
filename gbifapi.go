// Package gbifapi bundles the name rendering and search parameter
// validation cores behind a thin convenience surface. The implementation
// lives in pkg/name, pkg/search and pkg/vocabulary; this package re-exports
// the common entry points and wires the OpenAPI registry pipeline together.
package gbifapi

import (
	"context"
	"fmt"

	internalloader "github.com/gbifargentina/gbif-api/internal/openapi/loader"
	internalparser "github.com/gbifargentina/gbif-api/internal/openapi/parser"
	"github.com/gbifargentina/gbif-api/pkg/name"
	pkgopenapi "github.com/gbifargentina/gbif-api/pkg/openapi"
	"github.com/gbifargentina/gbif-api/pkg/search"
)

// Name aliases the atomised scientific name record.
type Name = name.Name

// NameParts aliases the raw construction input for a Name.
type NameParts = name.Parts

// RenderOptions aliases the rendering configuration.
type RenderOptions = name.Options

// NewName normalises raw parts into a Name, stripping hybrid markers into
// the notho field and canonicalising the rank marker.
func NewName(p NameParts) Name {
	return name.New(p)
}

// Descriptor aliases a search parameter declaration.
type Descriptor = search.Descriptor

// Registry aliases a search parameter registry.
type Registry = search.Registry

// NewLoader constructs a registry-document loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return internalloader.New(pkgopenapi.NewLoaderOptions(options...))
}

// NewParser constructs a registry-document parser backed by the internal
// kin-openapi implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	return internalparser.New(pkgopenapi.NewParserOptions(options...))
}

// LoadParameters fetches an OpenAPI registry document from the source,
// parses its parameter declarations and returns them as a ready registry.
func LoadParameters(ctx context.Context, src pkgopenapi.Source, loaderOpts []pkgopenapi.LoaderOption, parserOpts ...pkgopenapi.ParserOption) (*search.Registry, error) {
	doc, err := NewLoader(loaderOpts...).Load(ctx, src)
	if err != nil {
		return nil, err
	}
	descriptors, err := NewParser(parserOpts...).Parameters(ctx, doc)
	if err != nil {
		return nil, err
	}

	registry := search.NewRegistry()
	for _, d := range descriptors {
		if err := registry.Register(d); err != nil {
			return nil, fmt.Errorf("load parameters from %s: %w", doc.Location(), err)
		}
	}
	return registry, nil
}
