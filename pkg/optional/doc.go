// Package optional provides a generic container for a value that may be
// absent. The zero value is empty, so an Optional can be embedded safely.
//
// Highlights:
// - Of/Empty/OfPtr/OfNilable: construct an Optional
// - IsPresent/IsEmpty/Get/MustGet: query and extract
// - OrElse/OrElseGet/OrElseThrow: fallbacks for the empty case
// - IfPresent/IfNotPresent: side effects depending on presence
// - Map/AndThen/Filter: transform without unpacking
package optional
