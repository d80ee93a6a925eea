// Package naming converts field names between the internal snake_case
// convention and the PascalCase convention of the external schema.
//
// Conversion to the schema convention title-cases every underscore separated
// fragment, replaces known acronyms (ce -> CE) in every fragment but the first,
// and gives precedence to a table of exact overrides for names the generic rule
// gets wrong. The reverse conversion splits on case boundaries and is a
// best-effort inverse: names produced through the override or acronym tables
// do not always map back to their original spelling.
package naming
