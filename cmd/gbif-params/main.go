// Command gbif-params validates raw search parameter values against a
// parameter registry, either the built-in occurrence/checklist registries
// or one parsed from an OpenAPI document.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	gbifapi "github.com/gbifargentina/gbif-api"
	"github.com/gbifargentina/gbif-api/pkg/openapi"
	"github.com/gbifargentina/gbif-api/pkg/search"
)

func main() {
	registry := flag.String("registry", "occurrence", "built-in registry: occurrence or checklist")
	source := flag.String("source", "", "path or URL of an OpenAPI document (overrides -registry)")
	param := flag.String("param", "", "parameter name to validate against")
	value := flag.String("value", "", "raw value to validate")
	interactive := flag.Bool("interactive", false, "prompt for parameters and values")
	list := flag.Bool("list", false, "list the registry parameters and exit")
	flag.Parse()

	reg, err := buildRegistry(*registry, *source)
	if err != nil {
		log.Fatalf("failed to build registry: %v", err)
	}

	switch {
	case *list:
		printParameters(reg)
	case *interactive:
		if err := runInteractive(reg); err != nil {
			log.Fatalf("interactive session failed: %v", err)
		}
	default:
		if *param == "" {
			log.Fatal("either -param, -list or -interactive is required")
		}
		if err := reg.Validate(*param, *value); err != nil {
			log.Fatalf("invalid: %v", err)
		}
		fmt.Printf("valid: %s=%s\n", *param, *value)
	}
}

func buildRegistry(builtin, source string) (*search.Registry, error) {
	if source != "" {
		src := openapi.SourceFromFile(source)
		if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
			src = openapi.SourceFromURL(source)
		}
		return gbifapi.LoadParameters(context.Background(), src, nil)
	}
	switch builtin {
	case "occurrence":
		return search.OccurrenceParameters(), nil
	case "checklist":
		return search.ChecklistParameters(), nil
	}
	return nil, fmt.Errorf("unknown registry %q", builtin)
}

func printParameters(reg *search.Registry) {
	for _, name := range reg.List() {
		d, err := reg.Get(name)
		if err != nil {
			continue
		}
		extra := ""
		if len(d.Enum) > 0 {
			extra = fmt.Sprintf(" (%d allowed values)", len(d.Enum))
		}
		if d.Min != nil && d.Max != nil {
			extra = fmt.Sprintf(" [%v..%v]", *d.Min, *d.Max)
		}
		fmt.Printf("%-28s %s%s\n", d.Name, d.Type, extra)
	}
}

func runInteractive(reg *search.Registry) error {
	names := reg.List()

	for {
		var selected string
		prompt := &survey.Select{
			Message:  "Parameter:",
			Options:  names,
			PageSize: 12,
		}
		if err := survey.AskOne(prompt, &selected); err != nil {
			return err
		}
		desc, err := reg.Get(selected)
		if err != nil {
			return err
		}

		var raw string
		input := &survey.Input{
			Message: fmt.Sprintf("Value for %s (%s):", desc.Name, desc.Type),
			Help:    helpFor(desc),
		}
		if err := survey.AskOne(input, &raw); err != nil {
			return err
		}

		if err := search.Validate(desc, raw); err != nil {
			fmt.Printf("✗ %v\n", err)
		} else {
			fmt.Printf("✓ %s=%s\n", desc.Name, raw)
		}

		var again bool
		confirm := &survey.Confirm{Message: "Validate another value?", Default: true}
		if err := survey.AskOne(confirm, &again); err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func helpFor(d search.Descriptor) string {
	var hints []string
	if d.Type.IsRangeCapable() {
		hints = append(hints, "ranges like 10,20 or *,2000 are accepted")
	}
	if len(d.Enum) > 0 {
		shown := d.Enum
		if len(shown) > 6 {
			shown = shown[:6]
		}
		hints = append(hints, "one of "+strings.Join(shown, ", ")+"...")
	}
	return strings.Join(hints, "; ")
}
