package name

import (
	"testing"

	"github.com/gbifargentina/gbif-api/pkg/vocabulary"
)

func TestNew_StripsHybridMarkers(t *testing.T) {
	tests := []struct {
		name      string
		parts     Parts
		wantNotho vocabulary.NamePart
		check     func(Name) string
	}{
		{
			name:      "generic",
			parts:     Parts{GenusOrAbove: "×Heucherella", SpecificEpithet: "tiarelloides"},
			wantNotho: vocabulary.NamePartGeneric,
			check:     Name.GenusOrAbove,
		},
		{
			name:      "specific",
			parts:     Parts{GenusOrAbove: "Salix", SpecificEpithet: "×capreola"},
			wantNotho: vocabulary.NamePartSpecific,
			check:     Name.SpecificEpithet,
		},
		{
			name:      "infraspecific",
			parts:     Parts{GenusOrAbove: "Mentha", SpecificEpithet: "aquatica", InfraSpecificEpithet: "×piperita"},
			wantNotho: vocabulary.NamePartInfraspecific,
			check:     Name.InfraSpecificEpithet,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := New(tc.parts)
			if n.Notho() != tc.wantNotho {
				t.Fatalf("notho: got %q, want %q", n.Notho(), tc.wantNotho)
			}
			if part := tc.check(n); len(part) > 0 && part[0] == 0xc3 {
				t.Fatalf("hybrid marker not stripped from %q", part)
			}
		})
	}
}

func TestNew_LastMarkedPartWins(t *testing.T) {
	n := New(Parts{GenusOrAbove: "×Aus", SpecificEpithet: "×bus"})
	if n.Notho() != vocabulary.NamePartSpecific {
		t.Fatalf("got %q, want SPECIFIC", n.Notho())
	}
}

func TestNew_NormalizesRankMarker(t *testing.T) {
	tests := []struct {
		raw       string
		want      string
		wantNotho vocabulary.NamePart
	}{
		{"subsp.", "subsp.", vocabulary.NamePartNone},
		{"ssp.", "subsp.", vocabulary.NamePartNone},
		{"SSP", "subsp.", vocabulary.NamePartNone},
		{" var. ", "var.", vocabulary.NamePartNone},
		{"nothossp.", "subsp.", vocabulary.NamePartInfraspecific},
		{"nothovar.", "var.", vocabulary.NamePartInfraspecific},
		{"morph", "morph", vocabulary.NamePartNone},
		{"", "", vocabulary.NamePartNone},
	}
	for _, tc := range tests {
		n := New(Parts{GenusOrAbove: "Aus", RankMarker: tc.raw})
		if n.RankMarker() != tc.want {
			t.Fatalf("marker %q: got %q, want %q", tc.raw, n.RankMarker(), tc.want)
		}
		if n.Notho() != tc.wantNotho {
			t.Fatalf("marker %q: notho got %q, want %q", tc.raw, n.Notho(), tc.wantNotho)
		}
	}
}

func TestTerminalEpithet(t *testing.T) {
	n := New(Parts{GenusOrAbove: "Poa", SpecificEpithet: "pratensis", InfraSpecificEpithet: "alpigena"})
	if got := n.TerminalEpithet(); got != "alpigena" {
		t.Fatalf("got %q, want alpigena", got)
	}
	n = New(Parts{GenusOrAbove: "Poa", SpecificEpithet: "pratensis"})
	if got := n.TerminalEpithet(); got != "pratensis" {
		t.Fatalf("got %q, want pratensis", got)
	}
}

func TestPredicates(t *testing.T) {
	autonym := New(Parts{GenusOrAbove: "Poa", SpecificEpithet: "pratensis", InfraSpecificEpithet: "pratensis", RankMarker: "subsp."})
	if !autonym.IsAutonym() {
		t.Fatalf("expected autonym")
	}
	if !autonym.IsBinomial() {
		t.Fatalf("expected binomial")
	}
	if autonym.IsIndetermined() {
		t.Fatalf("autonym is fully determined")
	}

	indet := New(Parts{GenusOrAbove: "Coccyzus", SpecificEpithet: "americanus", RankMarker: "ssp."})
	if !indet.IsIndetermined() {
		t.Fatalf("expected indetermined")
	}

	section := New(Parts{GenusOrAbove: "Maxillaria", InfraGeneric: "Acaules", RankMarker: "sect."})
	if section.IsIndetermined() {
		t.Fatalf("named section is not indetermined")
	}

	recomb := New(Parts{GenusOrAbove: "Abies", SpecificEpithet: "alba", BracketAuthorship: "L.", Authorship: "Mill."})
	if !recomb.IsRecombination() || !recomb.HasAuthorship() || !recomb.IsQualified() {
		t.Fatalf("expected a qualified recombination")
	}

	bare := New(Parts{GenusOrAbove: "Abies", SpecificEpithet: "alba"})
	if bare.IsRecombination() || bare.HasAuthorship() {
		t.Fatalf("bare name must not report authorship")
	}
}

func TestCanonicalSpeciesName(t *testing.T) {
	n := New(Parts{GenusOrAbove: "Abies", SpecificEpithet: "alba", InfraSpecificEpithet: "apennina"})
	if got := n.CanonicalSpeciesName(); got != "Abies alba" {
		t.Fatalf("got %q, want %q", got, "Abies alba")
	}
	if got := New(Parts{GenusOrAbove: "Asteraceae"}).CanonicalSpeciesName(); got != "" {
		t.Fatalf("expected empty string above species level, got %q", got)
	}
}

func TestRankInference(t *testing.T) {
	tests := []struct {
		parts Parts
		want  vocabulary.Rank
	}{
		{Parts{GenusOrAbove: "Poa", SpecificEpithet: "pratensis", RankMarker: "subsp.", InfraSpecificEpithet: "alpigena"}, vocabulary.RankSubspecies},
		{Parts{GenusOrAbove: "Poa", SpecificEpithet: "pratensis", InfraSpecificEpithet: "alpigena"}, vocabulary.RankInfraspecificName},
		{Parts{GenusOrAbove: "Poa", SpecificEpithet: "pratensis"}, vocabulary.RankSpecies},
		{Parts{GenusOrAbove: "Poa", InfraGeneric: "Stenopoa"}, vocabulary.RankInfragenericName},
		{Parts{GenusOrAbove: "Poa"}, vocabulary.RankUnranked},
	}
	for _, tc := range tests {
		if got := New(tc.parts).Rank(); got != tc.want {
			t.Fatalf("parts %+v: got %q, want %q", tc.parts, got, tc.want)
		}
	}
}

func TestString_TagsPopulatedParts(t *testing.T) {
	n := New(Parts{Type: vocabulary.NameTypeScientific, GenusOrAbove: "Abies", SpecificEpithet: "alba", Authorship: "Mill."})
	want := "G:Abies S:alba A:Mill. [SCIENTIFIC]"
	if got := n.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestString_HybridFormulaPlaceholder(t *testing.T) {
	n := New(Parts{Type: vocabulary.NameTypeHybrid, GenusOrAbove: "Salix"})
	if got := n.String(); got != "[hybrid]" {
		t.Fatalf("got %q, want [hybrid]", got)
	}
	if !n.IsHybridFormula() {
		t.Fatalf("expected hybrid formula")
	}
}
