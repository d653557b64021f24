package search

// Type enumerates the value types a search parameter can declare.
type Type string

const (
	TypeUUID     Type = "uuid"
	TypeInteger  Type = "integer"
	TypeDouble   Type = "double"
	TypeBoolean  Type = "boolean"
	TypeString   Type = "string"
	TypeDate     Type = "date"
	TypeEnum     Type = "enum"
	TypeCountry  Type = "country"
	TypeGeometry Type = "geometry"
)

// IsRangeCapable reports whether values of this type may be expressed as a
// "low,high" range.
func (t Type) IsRangeCapable() bool {
	switch t {
	case TypeInteger, TypeDouble, TypeDate:
		return true
	}
	return false
}

// Descriptor declares a search parameter: its identity, its value type and,
// for enumerated parameters, the accepted member names. Min and Max bound
// numeric values (and each bound of a numeric range) when set. Descriptors
// are declared once per domain and never mutated afterwards.
type Descriptor struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
	// Enum lists the member names for TypeEnum parameters, matched
	// case-insensitively.
	Enum []string `json:"enum,omitempty"`
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
}

func bound(v float64) *float64 {
	return &v
}
