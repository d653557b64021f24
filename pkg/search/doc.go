// Package search validates raw query-parameter values against declared
// parameter types. A Descriptor pairs a parameter name with its value type
// (UUID, integer, double, boolean, date, enumerated vocabulary, country
// code, free text or WKT geometry) and optional numeric bounds; a Registry
// groups the descriptors of a search domain. Numeric and date parameters
// additionally accept two-bound ranges written "low,high" where either bound
// may be "*" for unbounded.
//
// Validation is pure and fail-fast: an invalid value yields an
// InvalidValueError carrying the parameter identity and the offending input,
// never a partial result.
package search
