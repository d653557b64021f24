package search

import (
	"errors"
	"testing"
)

// occurrence-domain descriptors used across the table tests
var (
	altitude  = Descriptor{Name: "ALTITUDE", Type: TypeInteger}
	year      = Descriptor{Name: "YEAR", Type: TypeInteger}
	month     = Descriptor{Name: "MONTH", Type: TypeInteger, Min: bound(1), Max: bound(12)}
	date      = Descriptor{Name: "DATE", Type: TypeDate}
	latitude  = Descriptor{Name: "LATITUDE", Type: TypeDouble, Min: bound(-90), Max: bound(90)}
	longitude = Descriptor{Name: "LONGITUDE", Type: TypeDouble, Min: bound(-180), Max: bound(180)}
	country   = Descriptor{Name: "COUNTRY", Type: TypeCountry}
	datasetK  = Descriptor{Name: "DATASET_KEY", Type: TypeUUID}
	extinct   = Descriptor{Name: "EXTINCT", Type: TypeBoolean}
	collector = Descriptor{Name: "COLLECTOR_NAME", Type: TypeString}
	sciName   = Descriptor{Name: "SCIENTIFIC_NAME", Type: TypeString}
	geometry  = Descriptor{Name: "GEOMETRY", Type: TypeGeometry}
)

func TestValidate_Table(t *testing.T) {
	tests := []struct {
		desc  Descriptor
		value string
		valid bool
		rng   bool
	}{
		{date, "2000-10,*", true, true},
		{collector, "henry", true, false},

		{altitude, "1080", true, false},
		{altitude, "1080.32", false, false},
		{altitude, "1080m", false, false},
		{altitude, "*, 900", true, true},
		{altitude, "100 , *", true, true},
		{altitude, "100,200", true, true},
		{altitude, " , 200", false, false},
		{altitude, "*1,200", false, false},
		{altitude, "*.1,200", false, false},
		{altitude, " , ", false, false},
		{altitude, "[1 TO 2]", false, false},
		{altitude, "{1,2}", false, false},

		{datasetK, "f81d4fae-7dec-11d0-a765-00a0c91e6bf6", true, false},
		{datasetK, "F81D4FAE-7DEC-11D0-A765-00A0C91E6BF6", true, false},
		{datasetK, "F81D4FAE7DEC11D0A76500A0C91E6BF6", true, false},
		{datasetK, "f81d4fae-7dec-11d0-a765", false, false},
		{datasetK, "urn:uuid:f81d4fae-7dec-11d0-a765-00a0c91e6bf6", false, false},

		{extinct, "true", true, false},
		{extinct, "FALSE", true, false},
		{extinct, "True", true, false},
		{extinct, "1", false, false},
		{extinct, "0", false, false},
		{extinct, "10", false, false},
		{extinct, "ja", false, false},
		{extinct, "no", false, false},

		{sciName, "abies%", true, false},

		{geometry, "POINT (30 10)", true, false},
		{geometry, "POINT (30 10.12)", true, false},
		{geometry, "POLYGON ((30 10, 10 20, 20 40, 40 40, 30 10))", true, false},
		{geometry, "polygon ((30.12 10, 10 20, 20 40, 40 40, 30.12 10))", true, false},
		{geometry, "Polygon ((30.12 10, 10 20, 20 40, 40 40, 30.1200 10.00))", true, false},
		{geometry, "POLYGON ((30,12 10, 10 20, 20 40, 40 40, 30,12 10))", false, false},
		{geometry, "POLYGON ((30 10, 10 20, 20 40, 40 40, 30 10,))", false, false},
		{geometry, "POLYGON ((30 10, 10 20, 20 40, 40 40, 30 10),)", false, false},
		{geometry, "POLYGON ((30.12 10, 10 20, 20 40, 40 40, 30.12 10.01))", false, false},
		{geometry, "POLYGON  ( (30 10 , 10 20 , 20 40 , 40 40 , 30 20)  )", false, false},
		{geometry, "POLYGON ((35 10, 10 20, 15 40, 45 45, 35 10),(20 30, 35 35, 30 20, 20 30))", true, false},
		{geometry, "LINESTRING (30 10, 10 30, 40 40)", true, false},
		{geometry, "LINESTRING (30 10, 10 30, 40 40,)", false, false},
		{geometry, "LINEARRING(30 10,10 20,20 40,40 40,30 10)", true, false},
		{geometry, "LINEARRING(30 10,10 20,20 40,40 40,30 )", false, false},
		{geometry, "MULTIPOLYGON (((30 10, 10 20, 20 40, 30 10)))", false, false},
		{geometry, "CIRCLE (30 10)", false, false},

		{year, "1991", true, false},
		{year, "1991-01-31", false, false},
		{year, "860", true, false},
		{year, "1860, 1911", true, true},
		{year, "1", true, false},
		{year, "-10", true, false},
		{year, "3018", true, false},

		{month, "1991", false, false},
		{month, "00", false, false},
		{month, "13", false, false},
		{month, "10", true, false},
		{month, "", false, false},
		{month, "0", false, false},
		{month, "1", true, false},
		{month, "-11", false, false},
		{month, "1267", false, false},

		{date, "1900-06", true, false},
		{date, "01-01", true, false},
		{date, "1900-01-01", true, false},
		{date, "1900-1-01", true, false},
		{date, "1900-1-1", true, false},
		{date, "10", false, false},
		{date, "2000", true, false},
		{date, "*", false, false},
		{date, "*,2000", true, true},
		{date, "02-31", false, false},

		{latitude, "90.0", true, false},
		{latitude, "180.0", false, false},
		{latitude, "50.0,92.2", false, true},
		{latitude, "50.5,89.9", true, true},

		{longitude, "180.0", true, false},
		{longitude, "180.01", false, false},
		{longitude, "-190.0,92.2", false, true},
		{longitude, "-150.5,119.9", true, true},

		{country, "CR", true, false},
		{country, "cr", true, false},
		{country, "CRCRCC", false, false},
		{country, "XK", true, false},
	}

	for _, tc := range tests {
		err := Validate(tc.desc, tc.value)
		if tc.valid && err != nil {
			t.Errorf("%s=%q: expected valid, got %v", tc.desc.Name, tc.value, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("%s=%q: expected invalid", tc.desc.Name, tc.value)
		}
		if got := IsRange(tc.value); got != tc.rng {
			t.Errorf("IsRange(%q) = %v, want %v", tc.value, got, tc.rng)
		}
	}
}

func TestValidate_ErrorCarriesParameterAndValue(t *testing.T) {
	err := Validate(month, "13")
	if err == nil {
		t.Fatalf("expected an error")
	}
	var ive *InvalidValueError
	if !errors.As(err, &ive) {
		t.Fatalf("expected *InvalidValueError, got %T", err)
	}
	if ive.Parameter != "MONTH" || ive.Value != "13" {
		t.Fatalf("unexpected error payload: %+v", ive)
	}
	want := `search: invalid value "13" for parameter MONTH`
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestValidate_RangeOnlyForRangeCapableTypes(t *testing.T) {
	if err := Validate(country, "AR,BR"); err == nil {
		t.Fatalf("country ranges must be rejected")
	}
	if err := Validate(extinct, "true,false"); err == nil {
		t.Fatalf("boolean ranges must be rejected")
	}
	if err := Validate(sciName, "a,b"); err == nil {
		t.Fatalf("string ranges must be rejected")
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		value string
		low   string
		high  string
		ok    bool
	}{
		{"100,200", "100", "200", true},
		{"*,200", "", "200", true},
		{"100,*", "100", "", true},
		{" 100 , 200 ", "100", "200", true},
		{"100", "", "", false},
		{"100,200,300", "", "", false},
		{",200", "", "", false},
		{"100,", "", "", false},
	}
	for _, tc := range tests {
		low, high, ok := ParseRange(tc.value)
		if low != tc.low || high != tc.high || ok != tc.ok {
			t.Errorf("ParseRange(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tc.value, low, high, ok, tc.low, tc.high, tc.ok)
		}
	}
}

func TestRangeRoundTripProperty(t *testing.T) {
	scalars := []struct {
		desc   Descriptor
		values []string
	}{
		{altitude, []string{"0", "-15", "900"}},
		{latitude, []string{"45.5", "-89.9"}},
		{date, []string{"2000", "2000-10", "1999-12-31"}},
	}
	for _, tc := range scalars {
		desc, values := tc.desc, tc.values
		for _, v := range values {
			for _, expr := range []string{v + ",*", "*," + v} {
				if err := Validate(desc, expr); err != nil {
					t.Errorf("%s=%q: expected a valid range, got %v", desc.Name, expr, err)
				}
				low, high, ok := ParseRange(expr)
				if !ok {
					t.Errorf("ParseRange(%q) failed", expr)
					continue
				}
				bounds := 0
				if low != "" {
					bounds++
				}
				if high != "" {
					bounds++
				}
				if bounds != 1 {
					t.Errorf("ParseRange(%q): expected exactly one bound, got %d", expr, bounds)
				}
			}
		}
	}
}

func TestValidate_EnumCaseInsensitive(t *testing.T) {
	basis := Descriptor{Name: "BASIS_OF_RECORD", Type: TypeEnum, Enum: []string{"OBSERVATION", "PRESERVED_SPECIMEN", "FOSSIL_SPECIMEN"}}
	for _, v := range []string{"OBSERVATION", "observation", "Preserved_Specimen"} {
		if err := Validate(basis, v); err != nil {
			t.Errorf("expected %q to be accepted: %v", v, err)
		}
	}
	for _, v := range []string{"OBSERVATIONS", "", "SPECIMEN"} {
		if err := Validate(basis, v); err == nil {
			t.Errorf("expected %q to be rejected", v)
		}
	}
}
