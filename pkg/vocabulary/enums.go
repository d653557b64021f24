package vocabulary

// Member-name lists for the enumerated search filters. Validation compares
// against these names case-insensitively; richer per-member semantics live
// with the services that interpret the filters, not here.

// BasisOfRecordNames lists the accepted BASIS_OF_RECORD members.
func BasisOfRecordNames() []string {
	return []string{
		"OBSERVATION", "HUMAN_OBSERVATION", "MACHINE_OBSERVATION",
		"PRESERVED_SPECIMEN", "FOSSIL_SPECIMEN", "LIVING_SPECIMEN",
		"MATERIAL_SAMPLE", "LITERATURE", "UNKNOWN",
	}
}

// TaxonomicStatusNames lists the accepted STATUS members.
func TaxonomicStatusNames() []string {
	return []string{
		"ACCEPTED", "DOUBTFUL", "SYNONYM", "HETEROTYPIC_SYNONYM",
		"HOMOTYPIC_SYNONYM", "PROPARTE_SYNONYM", "MISAPPLIED",
	}
}

// ThreatStatusNames lists the accepted THREAT members (IUCN categories).
func ThreatStatusNames() []string {
	return []string{
		"EXTINCT", "EXTINCT_IN_THE_WILD", "REGIONALLY_EXTINCT",
		"CRITICALLY_ENDANGERED", "ENDANGERED", "VULNERABLE",
		"NEAR_THREATENED", "LEAST_CONCERN", "DATA_DEFICIENT", "NOT_EVALUATED",
	}
}

// TypeStatusNames lists the accepted TYPE_STATUS members.
func TypeStatusNames() []string {
	return []string{
		"TYPE", "HOLOTYPE", "LECTOTYPE", "NEOTYPE", "PARATYPE", "SYNTYPE",
		"ISOTYPE", "ISOLECTOTYPE", "ISONEOTYPE", "ISOPARATYPE", "ISOSYNTYPE",
		"ALLOTYPE", "EPITYPE", "TOPOTYPE", "PARALECTOTYPE",
	}
}
