// Package vocabulary holds the controlled vocabularies shared by the name
// renderer and the search parameter registries: taxonomic ranks with their
// nomenclatural markers, name types, name parts for notho taxa, ISO country
// codes, and the enumerations exposed as search filters.
package vocabulary
