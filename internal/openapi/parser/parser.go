package parser

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/gbifargentina/gbif-api/pkg/openapi"
	"github.com/gbifargentina/gbif-api/pkg/search"
)

// typeExtensionKey lets a registry document pin a parameter to one of the
// value types OpenAPI schemas cannot express on their own.
const typeExtensionKey = "x-gbif-type"

// Parser implements pkgopenapi.Parser using kin-openapi. It reads the
// components.parameters section of a document and maps each schema to a
// search descriptor.
type Parser struct {
	options pkgopenapi.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	return &Parser{options: options}
}

// Parameters converts a Document into the descriptors it declares, sorted by
// parameter name.
func (p *Parser) Parameters(ctx context.Context, doc pkgopenapi.Document) ([]search.Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.ResolveReferences,
	}
	oas, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}
	if p.options.ResolveReferences {
		if err := oas.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	if oas.Components == nil || len(oas.Components.Parameters) == 0 {
		if p.options.AllowEmpty {
			return nil, nil
		}
		return nil, errors.New("openapi parser: document declares no parameters")
	}

	descriptors := make([]search.Descriptor, 0, len(oas.Components.Parameters))
	for key, ref := range oas.Components.Parameters {
		if ref == nil || ref.Value == nil {
			continue
		}
		d, err := descriptorFromParameter(key, ref.Value)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}
	sort.Slice(descriptors, func(i, j int) bool { return descriptors[i].Name < descriptors[j].Name })

	if len(descriptors) == 0 && !p.options.AllowEmpty {
		return nil, errors.New("openapi parser: no parameters extracted")
	}
	return descriptors, nil
}

func descriptorFromParameter(key string, param *openapi3.Parameter) (search.Descriptor, error) {
	name := param.Name
	if name == "" {
		name = key
	}

	d := search.Descriptor{Name: name}

	var schema *openapi3.Schema
	if param.Schema != nil {
		schema = param.Schema.Value
	}
	if schema == nil {
		return search.Descriptor{}, fmt.Errorf("openapi parser: parameter %q has no schema", name)
	}

	d.Type = mapSchemaType(schema)
	if override, ok := typeOverride(param.Extensions, schema.Extensions); ok {
		d.Type = override
	}

	if d.Type == search.TypeEnum {
		for _, member := range schema.Enum {
			if s, ok := member.(string); ok && s != "" {
				d.Enum = append(d.Enum, s)
			}
		}
		if len(d.Enum) == 0 {
			return search.Descriptor{}, fmt.Errorf("openapi parser: enum parameter %q declares no members", name)
		}
	}

	if schema.Min != nil {
		v := *schema.Min
		d.Min = &v
	}
	if schema.Max != nil {
		v := *schema.Max
		d.Max = &v
	}
	return d, nil
}

func mapSchemaType(schema *openapi3.Schema) search.Type {
	switch firstSchemaType(schema.Type) {
	case "integer":
		return search.TypeInteger
	case "number":
		return search.TypeDouble
	case "boolean":
		return search.TypeBoolean
	default:
		if len(schema.Enum) > 0 {
			return search.TypeEnum
		}
		switch strings.ToLower(schema.Format) {
		case "uuid":
			return search.TypeUUID
		case "date", "date-time":
			return search.TypeDate
		}
		// unknown schema types degrade to free text
		return search.TypeString
	}
}

func typeOverride(paramExt, schemaExt map[string]any) (search.Type, bool) {
	for _, ext := range []map[string]any{paramExt, schemaExt} {
		raw, ok := ext[typeExtensionKey]
		if !ok {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "geometry":
			return search.TypeGeometry, true
		case "country":
			return search.TypeCountry, true
		case "uuid":
			return search.TypeUUID, true
		case "date":
			return search.TypeDate, true
		}
	}
	return "", false
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
