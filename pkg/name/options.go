package name

// Options selects which parts and decorations Build includes in a rendering.
// The zero value renders the bare name parts without markers, authorship or
// folding; use the preset constructors for the standard profiles.
type Options struct {
	// HybridMarker prefixes the notho part with the hybrid sign.
	HybridMarker bool
	// RankMarker shows the infrageneric or infraspecific rank token.
	RankMarker bool
	// Authorship includes author citations and years, bracketed and current.
	Authorship bool
	// ShowInfrageneric includes a parenthesised infrageneric (subgenus
	// convention) alongside a species or infraspecies.
	ShowInfrageneric bool
	// GenusForInfrageneric prefixes a bare infrageneric name with its genus.
	GenusForInfrageneric bool
	// AbbreviateGenus renders the genus as its initial followed by a dot.
	AbbreviateGenus bool
	// DecomposeUnicode expands ligatures and composed letters into their
	// ASCII-equivalent sequences, e.g. æ becomes ae.
	DecomposeUnicode bool
	// ASCIIOnly transliterates remaining non-ASCII letters to the nearest
	// ASCII letter, e.g. ø becomes o.
	ASCIIOnly bool
	// ShowIndet renders a rank placeholder for indeterminate names, for
	// example "Puma spec.".
	ShowIndet bool
	// ShowNomStatus appends the nomenclatural status note.
	ShowNomStatus bool
	// ShowRemarks appends informal remarks in square brackets.
	ShowRemarks bool
	// ShowSensu appends the sensu/sec concept reference.
	ShowSensu bool
	// ShowCultivar appends the quoted cultivar epithet.
	ShowCultivar bool
	// ShowStrain appends the strain designation.
	ShowStrain bool
}

// Canonical renders the name sensu strictu: at most genus, species and
// infraspecific epithet, fully folded to ASCII, no markers or authorship.
func Canonical() Options {
	return Options{
		DecomposeUnicode: true,
		ASCIIOnly:        true,
		ShowIndet:        true,
	}
}

// CanonicalWithMarker adds rank and hybrid markers plus cultivar and strain
// epithets to the canonical profile, still folded to ASCII. Bare infrageneric
// names keep their genus prefix so the marker has something to attach to.
func CanonicalWithMarker() Options {
	return Options{
		HybridMarker:         true,
		RankMarker:           true,
		GenusForInfrageneric: true,
		DecomposeUnicode:     true,
		ASCIIOnly:            true,
		ShowIndet:            true,
		ShowCultivar:         true,
		ShowStrain:           true,
	}
}

// CanonicalComplete renders the code-compliant name with markers and
// authorship. Ligatures are decomposed but letters keep their diacritics.
func CanonicalComplete() Options {
	return Options{
		HybridMarker:         true,
		RankMarker:           true,
		Authorship:           true,
		GenusForInfrageneric: true,
		DecomposeUnicode:     true,
		ShowIndet:            true,
		ShowCultivar:         true,
		ShowStrain:           true,
	}
}

// Full renders the name with every detail that exists, without any Unicode
// folding.
func Full() Options {
	return Options{
		HybridMarker:         true,
		RankMarker:           true,
		Authorship:           true,
		ShowInfrageneric:     true,
		GenusForInfrageneric: true,
		ShowIndet:            true,
		ShowNomStatus:        true,
		ShowRemarks:          true,
		ShowSensu:            true,
		ShowCultivar:         true,
		ShowStrain:           true,
	}
}
