package vocabulary

// NameType classifies how a verbatim scientific name was interpreted.
type NameType string

const (
	NameTypeScientific  NameType = "SCIENTIFIC"
	NameTypeHybrid      NameType = "HYBRID"
	NameTypeVirus       NameType = "VIRUS"
	NameTypeCandidatus  NameType = "CANDIDATUS"
	NameTypeOTU         NameType = "OTU"
	NameTypeBlacklisted NameType = "BLACKLISTED"
	NameTypeNoName      NameType = "NO_NAME"
	NameTypeDoubtful    NameType = "DOUBTFUL"
	NameTypePlaceholder NameType = "PLACEHOLDER"
)

// IsParsable reports whether names of this type atomise into regular parts.
// Hybrid formulas, viruses, OTUs and the garbage buckets do not.
func (t NameType) IsParsable() bool {
	switch t {
	case NameTypeScientific, NameTypeCandidatus, NameTypeDoubtful:
		return true
	}
	return false
}

// NameTypeNames lists the member names accepted by the NAME_TYPE filter.
func NameTypeNames() []string {
	return []string{
		string(NameTypeScientific), string(NameTypeHybrid), string(NameTypeVirus),
		string(NameTypeCandidatus), string(NameTypeOTU), string(NameTypeBlacklisted),
		string(NameTypeNoName), string(NameTypeDoubtful), string(NameTypePlaceholder),
	}
}

// NamePart marks which segment of a named hybrid carries the hybrid sign.
type NamePart string

const (
	NamePartNone          NamePart = ""
	NamePartGeneric       NamePart = "GENERIC"
	NamePartInfrageneric  NamePart = "INFRAGENERIC"
	NamePartSpecific      NamePart = "SPECIFIC"
	NamePartInfraspecific NamePart = "INFRASPECIFIC"
)
