package name

import (
	"regexp"
	"strings"

	"github.com/gbifargentina/gbif-api/pkg/vocabulary"
)

// epithetSeparators collapses into a single hyphen inside epithets: multi
// word epithets are joined the way the codes prescribe.
var epithetSeparators = regexp.MustCompile(`[ _-]+`)

// Build assembles a rendering of the name under the given options. The
// second return is false when nothing remains to show; rendering itself
// never fails — missing parts are simply omitted.
func Build(n Name, opts Options) (string, bool) {
	var sb strings.Builder
	rnk := n.Rank()

	if n.nameType == vocabulary.NameTypeCandidatus {
		sb.WriteString("Candidatus ")
	}

	// Genus or uninomial. A bare infrageneric rendering suppresses it unless
	// the caller asked for the genus prefix.
	if n.genusOrAbove != "" && (opts.GenusForInfrageneric || n.infraGeneric == "" || n.specificEpithet != "") {
		if opts.HybridMarker && n.notho == vocabulary.NamePartGeneric {
			sb.WriteString(HybridMarker)
		}
		if opts.AbbreviateGenus {
			sb.WriteString(n.genusOrAbove[:1])
			sb.WriteString(".")
		} else {
			sb.WriteString(n.genusOrAbove)
		}
	}

	if n.specificEpithet == "" {
		switch {
		case rnk == vocabulary.RankSpecies:
			// rank says species but no epithet was given: indetermined
			if opts.ShowIndet {
				sb.WriteString(" spec.")
			}
		case rnk.IsInfraspecific():
			if opts.ShowIndet {
				sb.WriteString(" ")
				sb.WriteString(n.rankMarker)
			}
		case n.infraGeneric != "":
			// terminal name part, always shown
			if opts.RankMarker && n.rankMarker != "" {
				// explicit rank markers, the botanical convention for
				// infrageneric names
				sb.WriteString(" ")
				sb.WriteString(n.rankMarker)
				sb.WriteString(" ")
				sb.WriteString(n.infraGeneric)
			} else if opts.GenusForInfrageneric && n.genusOrAbove != "" {
				// genus already shown and rank unknown: parenthesise
				sb.WriteString(" (")
				sb.WriteString(n.infraGeneric)
				sb.WriteString(")")
			} else {
				sb.WriteString(n.infraGeneric)
			}
		}
		if opts.Authorship {
			appendAuthorship(&sb, n)
		}
	} else {
		// subgenus placement only when the rank cannot contradict it
		if opts.ShowInfrageneric && n.infraGeneric != "" &&
			(n.rankMarker == "" || n.Rank() == vocabulary.RankGenus) {
			sb.WriteString(" (")
			sb.WriteString(n.infraGeneric)
			sb.WriteString(")")
		}

		sb.WriteString(" ")
		if opts.HybridMarker && n.notho == vocabulary.NamePartSpecific {
			sb.WriteString(HybridMarker)
		}
		sb.WriteString(normalizeEpithet(n.specificEpithet))

		if n.infraSpecificEpithet == "" {
			// only show the indet marker when no cultivar epithet stands in
			if opts.ShowIndet && rnk.IsInfraspecific() &&
				(rnk != vocabulary.RankCultivar || n.cultivarEpithet == "") {
				sb.WriteString(" ")
				sb.WriteString(n.rankMarker)
			}
			if opts.Authorship {
				appendAuthorship(&sb, n)
			}
		} else {
			sb.WriteString(" ")
			if opts.HybridMarker && n.notho == vocabulary.NamePartInfraspecific {
				if opts.RankMarker {
					sb.WriteString("notho")
				} else {
					sb.WriteString(HybridMarker)
				}
			}
			if opts.RankMarker && n.rankMarker != "" {
				sb.WriteString(n.rankMarker)
				sb.WriteString(" ")
			}
			sb.WriteString(normalizeEpithet(n.infraSpecificEpithet))
			// autonyms repeat the species epithet and carry no authorship
			if opts.Authorship && !n.IsAutonym() {
				appendAuthorship(&sb, n)
			}
		}
	}

	if opts.ShowStrain && n.strain != "" {
		sb.WriteString(" ")
		sb.WriteString(n.strain)
	}
	if opts.ShowCultivar && n.cultivarEpithet != "" {
		sb.WriteString(" '")
		sb.WriteString(n.cultivarEpithet)
		sb.WriteString("'")
	}
	if opts.ShowSensu && n.sensu != "" {
		sb.WriteString(" ")
		sb.WriteString(n.sensu)
	}
	if opts.ShowNomStatus && n.nomStatus != "" {
		sb.WriteString(", ")
		sb.WriteString(n.nomStatus)
	}
	if opts.ShowRemarks && n.remarks != "" {
		sb.WriteString(" [")
		sb.WriteString(n.remarks)
		sb.WriteString("]")
	}

	out := strings.TrimSpace(sb.String())
	if opts.DecomposeUnicode {
		out = Decompose(out)
	}
	if opts.ASCIIOnly {
		out = ASCIIFold(out)
	}
	if out == "" {
		return "", false
	}
	return out, true
}

func normalizeEpithet(epithet string) string {
	return epithetSeparators.ReplaceAllString(epithet, "-")
}

// appendAuthorship writes the bracketed original citation, if any, followed
// by the current citation. Both may appear together on recombinations.
func appendAuthorship(sb *strings.Builder, n Name) {
	if n.bracketAuthorship == "" {
		if n.bracketYear != "" {
			sb.WriteString(" (")
			sb.WriteString(n.bracketYear)
			sb.WriteString(")")
		}
	} else {
		sb.WriteString(" (")
		sb.WriteString(n.bracketAuthorship)
		if n.bracketYear != "" {
			sb.WriteString(", ")
			sb.WriteString(n.bracketYear)
		}
		sb.WriteString(")")
	}
	if n.authorship != "" {
		sb.WriteString(" ")
		sb.WriteString(n.authorship)
	}
	if n.year != "" {
		sb.WriteString(", ")
		sb.WriteString(n.year)
	}
}

// AuthorshipComplete returns the concatenated author citation on its own.
func (n Name) AuthorshipComplete() string {
	var sb strings.Builder
	appendAuthorship(&sb, n)
	return strings.TrimSpace(sb.String())
}

// Canonical returns the canonical rendering, or an empty string when the
// name has no renderable parts.
func (n Name) Canonical() string {
	out, _ := Build(n, Canonical())
	return out
}

// CanonicalWithMarker returns the canonical rendering with rank and hybrid
// markers.
func (n Name) CanonicalWithMarker() string {
	out, _ := Build(n, CanonicalWithMarker())
	return out
}

// CanonicalComplete returns the code-compliant rendering with authorship.
func (n Name) CanonicalComplete() string {
	out, _ := Build(n, CanonicalComplete())
	return out
}

// Full returns the rendering with every detail that exists.
func (n Name) Full() string {
	out, _ := Build(n, Full())
	return out
}
