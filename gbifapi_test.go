package gbifapi

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/gbifargentina/gbif-api/pkg/openapi"
	"github.com/gbifargentina/gbif-api/pkg/search"
)

const registryDocument = `
openapi: "3.0.0"
info:
  title: Occurrence search parameters
  version: "1.0.0"
paths: {}
components:
  parameters:
    year:
      name: YEAR
      in: query
      schema:
        type: integer
    geometry:
      name: GEOMETRY
      in: query
      x-gbif-type: geometry
      schema:
        type: string
`

func TestLoadParameters_EndToEnd(t *testing.T) {
	files := fstest.MapFS{
		"registry.yaml": &fstest.MapFile{Data: []byte(registryDocument)},
	}

	reg, err := LoadParameters(context.Background(),
		openapi.SourceFromFS("registry.yaml"),
		[]openapi.LoaderOption{openapi.WithFileSystem(files)})
	if err != nil {
		t.Fatalf("load parameters: %v", err)
	}

	if got := reg.List(); len(got) != 2 {
		t.Fatalf("expected 2 parameters, got %v", got)
	}

	if err := reg.Validate("YEAR", "1991"); err != nil {
		t.Fatalf("expected valid year: %v", err)
	}
	if err := reg.Validate("YEAR", "199.1"); err == nil {
		t.Fatalf("expected fractional year to fail")
	}
	if err := reg.Validate("GEOMETRY", "POLYGON ((30 10, 10 20, 20 40, 30 10))"); err != nil {
		t.Fatalf("expected valid polygon: %v", err)
	}

	d, err := reg.Get("GEOMETRY")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if d.Type != search.TypeGeometry {
		t.Fatalf("expected geometry type, got %q", d.Type)
	}
}

func TestRenderingAndValidationSurface(t *testing.T) {
	n := NewName(NameParts{GenusOrAbove: "Abies", SpecificEpithet: "alba", Authorship: "Mill."})
	if got := n.CanonicalComplete(); got != "Abies alba Mill." {
		t.Fatalf("got %q", got)
	}
}
