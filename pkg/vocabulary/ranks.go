package vocabulary

import "strings"

// Rank identifies a linnean or infrageneric/infraspecific rank. The zero
// value is RankUnranked.
type Rank string

const (
	RankUnranked   Rank = ""
	RankKingdom    Rank = "kingdom"
	RankPhylum     Rank = "phylum"
	RankClass      Rank = "class"
	RankOrder      Rank = "order"
	RankFamily     Rank = "family"
	RankSubfamily  Rank = "subfamily"
	RankTribe      Rank = "tribe"
	RankGenus      Rank = "genus"
	RankSubgenus   Rank = "subgenus"
	RankSection    Rank = "section"
	RankSubsection Rank = "subsection"
	RankSeries     Rank = "series"
	RankSubseries  Rank = "subseries"
	RankSpecies    Rank = "species"
	RankSubspecies Rank = "subspecies"
	RankVariety    Rank = "variety"
	RankSubvariety Rank = "subvariety"
	RankForm       Rank = "form"
	RankSubform    Rank = "subform"
	RankCultivar   Rank = "cultivar"

	// Placeholder buckets for names whose parts identify the level but whose
	// marker does not resolve to a comparable rank.
	RankInfragenericName  Rank = "infrageneric name"
	RankInfraspecificName Rank = "infraspecific name"
)

// rankMarkers maps comparable ranks to their canonical nomenclatural marker.
var rankMarkers = map[Rank]string{
	RankKingdom:    "reg.",
	RankPhylum:     "phyl.",
	RankClass:      "cl.",
	RankOrder:      "ord.",
	RankFamily:     "fam.",
	RankSubfamily:  "subfam.",
	RankTribe:      "trib.",
	RankGenus:      "gen.",
	RankSubgenus:   "subg.",
	RankSection:    "sect.",
	RankSubsection: "subsect.",
	RankSeries:     "ser.",
	RankSubseries:  "subser.",
	RankSpecies:    "sp.",
	RankSubspecies: "subsp.",
	RankVariety:    "var.",
	RankSubvariety: "subvar.",
	RankForm:       "f.",
	RankSubform:    "subf.",
	RankCultivar:   "cv.",
}

// markerSynonyms resolves the marker tokens found in verbatim names,
// including the common abbreviation variants, to a rank.
var markerSynonyms = map[string]Rank{
	"reg.":       RankKingdom,
	"kingdom":    RankKingdom,
	"phyl.":      RankPhylum,
	"phylum":     RankPhylum,
	"cl.":        RankClass,
	"class":      RankClass,
	"ord.":       RankOrder,
	"order":      RankOrder,
	"fam.":       RankFamily,
	"family":     RankFamily,
	"subfam.":    RankSubfamily,
	"trib.":      RankTribe,
	"tribe":      RankTribe,
	"gen.":       RankGenus,
	"genus":      RankGenus,
	"subg.":      RankSubgenus,
	"subgen.":    RankSubgenus,
	"subgenus":   RankSubgenus,
	"sect.":      RankSection,
	"section":    RankSection,
	"subsect.":   RankSubsection,
	"ser.":       RankSeries,
	"series":     RankSeries,
	"subser.":    RankSubseries,
	"sp.":        RankSpecies,
	"spec.":      RankSpecies,
	"species":    RankSpecies,
	"subsp.":     RankSubspecies,
	"ssp.":       RankSubspecies,
	"subspecies": RankSubspecies,
	"var.":       RankVariety,
	"variety":    RankVariety,
	"subvar.":    RankSubvariety,
	"f.":         RankForm,
	"forma":      RankForm,
	"form":       RankForm,
	"subf.":      RankSubform,
	"subform":    RankSubform,
	"cv.":        RankCultivar,
	"cultivar":   RankCultivar,
}

// Marker returns the canonical marker token for the rank, or an empty string
// when the rank carries none (suprageneric ranks and placeholder buckets).
func (r Rank) Marker() string {
	return rankMarkers[r]
}

// IsInfraspecific reports whether the rank sits below species.
func (r Rank) IsInfraspecific() bool {
	switch r {
	case RankSubspecies, RankVariety, RankSubvariety, RankForm, RankSubform,
		RankCultivar, RankInfraspecificName:
		return true
	}
	return false
}

// IsUncomparable reports whether the rank is a placeholder bucket without a
// fixed position in the rank order.
func (r Rank) IsUncomparable() bool {
	switch r {
	case RankUnranked, RankInfragenericName, RankInfraspecificName:
		return true
	}
	return false
}

// InferRankFromMarker resolves a free-text rank marker, case-insensitively
// and tolerating a missing trailing dot, to a rank. The second return is
// false when the token is unknown.
func InferRankFromMarker(marker string) (Rank, bool) {
	token := strings.ToLower(strings.TrimSpace(marker))
	if token == "" {
		return RankUnranked, false
	}
	if r, ok := markerSynonyms[token]; ok {
		return r, true
	}
	if !strings.HasSuffix(token, ".") {
		if r, ok := markerSynonyms[token+"."]; ok {
			return r, true
		}
	}
	return RankUnranked, false
}

// InferRank interprets the rank of an atomised name. An explicit marker wins;
// otherwise the lowest populated name part decides, falling back to the
// placeholder buckets when the level is known but the marker is not.
func InferRank(genusOrAbove, infraGeneric, specificEpithet, rankMarker, infraSpecificEpithet string) Rank {
	if r, ok := InferRankFromMarker(rankMarker); ok {
		return r
	}
	switch {
	case infraSpecificEpithet != "":
		return RankInfraspecificName
	case specificEpithet != "":
		return RankSpecies
	case infraGeneric != "":
		return RankInfragenericName
	case genusOrAbove != "":
		return RankUnranked
	}
	return RankUnranked
}

// RankNames lists the member names accepted by the RANK search filter.
func RankNames() []string {
	return []string{
		"KINGDOM", "PHYLUM", "CLASS", "ORDER", "FAMILY", "SUBFAMILY", "TRIBE",
		"GENUS", "SUBGENUS", "SECTION", "SUBSECTION", "SERIES", "SUBSERIES",
		"SPECIES", "SUBSPECIES", "VARIETY", "SUBVARIETY", "FORM", "SUBFORM",
		"CULTIVAR", "INFRAGENERIC_NAME", "INFRASPECIFIC_NAME", "UNRANKED",
	}
}
