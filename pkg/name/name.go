package name

import (
	"strings"

	"github.com/gbifargentina/gbif-api/pkg/vocabulary"
)

// HybridMarker is the multiplication sign prefixed to the hybrid part of a
// named hybrid (notho taxon).
const HybridMarker = "×"

// Parts carries the raw atomised fields of a scientific name. Epithet fields
// may keep a leading hybrid marker and the rank marker may keep a "notho"
// prefix; New strips both into the notho part.
type Parts struct {
	Type                 vocabulary.NameType
	GenusOrAbove         string
	InfraGeneric         string
	SpecificEpithet      string
	InfraSpecificEpithet string
	RankMarker           string
	Notho                vocabulary.NamePart
	Authorship           string
	Year                 string
	BracketAuthorship    string
	BracketYear          string
	CultivarEpithet      string
	Strain               string
	Sensu                string
	NomStatus            string
	Remarks              string
}

// Name is an atomised scientific name, normalised and immutable. Use New to
// construct one from raw Parts.
type Name struct {
	nameType             vocabulary.NameType
	genusOrAbove         string
	infraGeneric         string
	specificEpithet      string
	infraSpecificEpithet string
	rankMarker           string
	notho                vocabulary.NamePart
	authorship           string
	year                 string
	bracketAuthorship    string
	bracketYear          string
	cultivarEpithet      string
	strain               string
	sensu                string
	nomStatus            string
	remarks              string
}

// New normalises raw Parts into a Name. Each epithet is inspected exactly
// once: a leading hybrid marker is stripped and recorded as the notho part
// (the last marked part wins, matching the one-notho-at-a-time invariant).
// The rank marker is trimmed and lowercased, a leading "notho" prefix moves
// into the notho part, and tokens that resolve to a comparable rank are
// replaced by that rank's canonical marker.
func New(p Parts) Name {
	n := Name{
		nameType:          p.Type,
		notho:             p.Notho,
		authorship:        p.Authorship,
		year:              p.Year,
		bracketAuthorship: p.BracketAuthorship,
		bracketYear:       p.BracketYear,
		cultivarEpithet:   p.CultivarEpithet,
		strain:            p.Strain,
		sensu:             p.Sensu,
		nomStatus:         p.NomStatus,
		remarks:           p.Remarks,
	}

	n.genusOrAbove = stripHybrid(p.GenusOrAbove, &n.notho, vocabulary.NamePartGeneric)
	n.infraGeneric = stripHybrid(p.InfraGeneric, &n.notho, vocabulary.NamePartInfrageneric)
	n.specificEpithet = stripHybrid(p.SpecificEpithet, &n.notho, vocabulary.NamePartSpecific)
	n.infraSpecificEpithet = stripHybrid(p.InfraSpecificEpithet, &n.notho, vocabulary.NamePartInfraspecific)
	n.rankMarker = normalizeRankMarker(p.RankMarker, &n.notho)

	return n
}

func stripHybrid(part string, notho *vocabulary.NamePart, which vocabulary.NamePart) string {
	if strings.HasPrefix(part, HybridMarker) {
		*notho = which
		return strings.TrimPrefix(part, HybridMarker)
	}
	return part
}

func normalizeRankMarker(marker string, notho *vocabulary.NamePart) string {
	marker = strings.ToLower(strings.TrimSpace(marker))
	if marker == "" {
		return ""
	}
	if strings.HasPrefix(marker, "notho") {
		marker = marker[len("notho"):]
		*notho = vocabulary.NamePartInfraspecific
	}
	r, ok := vocabulary.InferRankFromMarker(marker)
	if !ok || r.IsUncomparable() {
		return marker
	}
	return r.Marker()
}

// Type returns the name type classification.
func (n Name) Type() vocabulary.NameType { return n.nameType }

// GenusOrAbove returns the genus, or the uninomial above genus level.
func (n Name) GenusOrAbove() string { return n.genusOrAbove }

// InfraGeneric returns the infrageneric name (subgenus, section, series).
func (n Name) InfraGeneric() string { return n.infraGeneric }

// SpecificEpithet returns the species epithet.
func (n Name) SpecificEpithet() string { return n.specificEpithet }

// InfraSpecificEpithet returns the terminal epithet below species level.
func (n Name) InfraSpecificEpithet() string { return n.infraSpecificEpithet }

// RankMarker returns the normalised rank marker token, e.g. "subsp.".
func (n Name) RankMarker() string { return n.rankMarker }

// Notho returns which part of the name is the hybrid component.
func (n Name) Notho() vocabulary.NamePart { return n.notho }

// Authorship returns the current author citation.
func (n Name) Authorship() string { return n.authorship }

// Year returns the year of the current author citation.
func (n Name) Year() string { return n.year }

// BracketAuthorship returns the original (basionym) author citation.
func (n Name) BracketAuthorship() string { return n.bracketAuthorship }

// BracketYear returns the year of the original author citation.
func (n Name) BracketYear() string { return n.bracketYear }

// CultivarEpithet returns the cultivar epithet without its quotes.
func (n Name) CultivarEpithet() string { return n.cultivarEpithet }

// Strain returns the strain or isolate designation.
func (n Name) Strain() string { return n.strain }

// Sensu returns the sensu/sec concept reference.
func (n Name) Sensu() string { return n.sensu }

// NomStatus returns the nomenclatural status note.
func (n Name) NomStatus() string { return n.nomStatus }

// Remarks returns informal remarks.
func (n Name) Remarks() string { return n.remarks }

// Rank returns the interpreted rank, or RankUnranked when nothing can be
// inferred from the marker or the populated parts.
func (n Name) Rank() vocabulary.Rank {
	return vocabulary.InferRank(n.genusOrAbove, n.infraGeneric, n.specificEpithet, n.rankMarker, n.infraSpecificEpithet)
}

// TerminalEpithet returns the infraspecific epithet when present, otherwise
// the specific epithet.
func (n Name) TerminalEpithet() string {
	if n.infraSpecificEpithet != "" {
		return n.infraSpecificEpithet
	}
	return n.specificEpithet
}

// IsBinomial reports whether both a genus and a specific epithet exist.
func (n Name) IsBinomial() bool {
	return n.genusOrAbove != "" && n.specificEpithet != ""
}

// IsAutonym reports whether the infraspecific epithet repeats the specific
// epithet. Autonyms carry no authorship of their own.
func (n Name) IsAutonym() bool {
	return n.specificEpithet != "" && n.specificEpithet == n.infraSpecificEpithet
}

// IsHybridFormula reports whether the name is a hybrid formula rather than a
// named hybrid; formulas are not atomised beyond the first name.
func (n Name) IsHybridFormula() bool {
	return n.nameType == vocabulary.NameTypeHybrid
}

// IsIndetermined reports whether the name carries a rank marker but lacks
// the terminal epithet for that rank, e.g. "Coccyzus americanus ssp." or
// "Asteraceae spec.", but not "Maxillaria sect. Acaules".
func (n Name) IsIndetermined() bool {
	return n.rankMarker != "" && n.infraSpecificEpithet == "" &&
		(n.specificEpithet != "" || n.infraGeneric == "")
}

// HasAuthorship reports whether any authorship field is populated.
func (n Name) HasAuthorship() bool {
	return n.authorship != "" || n.year != "" || n.bracketAuthorship != "" || n.bracketYear != ""
}

// IsQualified is an alias of HasAuthorship kept for callers that think in
// terms of qualified vs. bare names.
func (n Name) IsQualified() bool { return n.HasAuthorship() }

// IsRecombination reports whether the name carries a bracket authorship,
// i.e. it has been recombined since its original publication.
func (n Name) IsRecombination() bool {
	return strings.TrimSpace(n.bracketAuthorship) != "" || strings.TrimSpace(n.bracketYear) != ""
}

// CanonicalSpeciesName returns the plain species binomial, or an empty
// string for names above species level.
func (n Name) CanonicalSpeciesName() string {
	if !n.IsBinomial() {
		return ""
	}
	return n.genusOrAbove + " " + n.specificEpithet
}

// String renders a compact debug representation with tagged parts. Hybrid
// formulas report a fixed placeholder since their parts are unreliable.
func (n Name) String() string {
	if n.IsHybridFormula() {
		return "[hybrid]"
	}
	var sb strings.Builder
	tag := func(label, value string) {
		if value != "" {
			sb.WriteString(" ")
			sb.WriteString(label)
			sb.WriteString(":")
			sb.WriteString(value)
		}
	}
	tag("G", n.genusOrAbove)
	tag("IG", n.infraGeneric)
	tag("S", n.specificEpithet)
	tag("R", n.rankMarker)
	tag("IS", n.infraSpecificEpithet)
	tag("CV", n.cultivarEpithet)
	tag("STR", n.strain)
	tag("A", n.authorship)
	tag("Y", n.year)
	tag("BA", n.bracketAuthorship)
	tag("BY", n.bracketYear)
	if n.nameType != "" {
		sb.WriteString(" [")
		sb.WriteString(string(n.nameType))
		sb.WriteString("]")
	}
	return strings.TrimSpace(sb.String())
}
