// Package openapi exposes the public contracts for declaring search
// parameter registries in OpenAPI documents: a Source/Document pair for
// fetching the raw payload and a Parser that turns the document's
// components.parameters section into search descriptors. Implementations
// live under internal/openapi so the kin-openapi dependency stays hidden
// from consumers.
package openapi
