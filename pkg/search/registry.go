package search

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gbifargentina/gbif-api/pkg/vocabulary"
)

// Registry stores the parameter descriptors of a search domain by name,
// providing lookup and duplication safeguards. Registries are assembled at
// startup and treated as read-only afterwards; the lock only guards against
// racy wiring.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]Descriptor
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[string]Descriptor),
	}
}

// Register adds a descriptor by its Name. Duplicate names return an error.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("search: parameter name is required")
	}
	if d.Type == "" {
		return fmt.Errorf("search: parameter %q requires a type", d.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.descriptors[d.Name]; exists {
		return fmt.Errorf("search: parameter %q already registered", d.Name)
	}
	r.descriptors[d.Name] = d
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Get retrieves a descriptor by name.
func (r *Registry) Get(name string) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.descriptors[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("search: parameter %q not found", name)
	}
	return d, nil
}

// List returns the registered parameter names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate looks up the named parameter and validates the raw value against
// its descriptor.
func (r *Registry) Validate(name, value string) error {
	d, err := r.Get(name)
	if err != nil {
		return err
	}
	return Validate(d, value)
}

// OccurrenceParameters returns the descriptors of the occurrence search
// domain. The set is static configuration: which parameters exist is decided
// here once, not negotiated at runtime.
func OccurrenceParameters() *Registry {
	r := NewRegistry()
	for _, d := range []Descriptor{
		{Name: "DATASET_KEY", Type: TypeUUID},
		{Name: "YEAR", Type: TypeInteger},
		{Name: "MONTH", Type: TypeInteger, Min: bound(1), Max: bound(12)},
		{Name: "DATE", Type: TypeDate},
		{Name: "MODIFIED", Type: TypeDate},
		{Name: "LATITUDE", Type: TypeDouble, Min: bound(-90), Max: bound(90)},
		{Name: "LONGITUDE", Type: TypeDouble, Min: bound(-180), Max: bound(180)},
		{Name: "COUNTRY", Type: TypeCountry},
		{Name: "PUBLISHING_COUNTRY", Type: TypeCountry},
		{Name: "ALTITUDE", Type: TypeInteger},
		{Name: "DEPTH", Type: TypeInteger},
		{Name: "INSTITUTION_CODE", Type: TypeString},
		{Name: "COLLECTION_CODE", Type: TypeString},
		{Name: "CATALOG_NUMBER", Type: TypeString},
		{Name: "COLLECTOR_NAME", Type: TypeString},
		{Name: "RECORD_NUMBER", Type: TypeString},
		{Name: "BASIS_OF_RECORD", Type: TypeEnum, Enum: vocabulary.BasisOfRecordNames()},
		{Name: "TAXON_KEY", Type: TypeInteger},
		{Name: "SCIENTIFIC_NAME", Type: TypeString},
		{Name: "GEOREFERENCED", Type: TypeBoolean},
		{Name: "GEOMETRY", Type: TypeGeometry},
		{Name: "SPATIAL_ISSUES", Type: TypeBoolean},
		{Name: "TYPE_STATUS", Type: TypeEnum, Enum: vocabulary.TypeStatusNames()},
	} {
		r.MustRegister(d)
	}
	return r
}

// ChecklistParameters returns the descriptors of the name usage (checklist)
// search domain.
func ChecklistParameters() *Registry {
	r := NewRegistry()
	for _, d := range []Descriptor{
		{Name: "DATASET_KEY", Type: TypeUUID},
		{Name: "RANK", Type: TypeEnum, Enum: vocabulary.RankNames()},
		{Name: "HIGHERTAXON_KEY", Type: TypeInteger},
		{Name: "STATUS", Type: TypeEnum, Enum: vocabulary.TaxonomicStatusNames()},
		{Name: "EXTINCT", Type: TypeBoolean},
		{Name: "HABITAT", Type: TypeString},
		{Name: "THREAT", Type: TypeEnum, Enum: vocabulary.ThreatStatusNames()},
		{Name: "NAME_TYPE", Type: TypeEnum, Enum: vocabulary.NameTypeNames()},
	} {
		r.MustRegister(d)
	}
	return r
}
