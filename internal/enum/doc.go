// Package enum coerces loosely typed input into members of integer
// enumerations.
//
// A value is resolved against a Type by trying, in order: the null-like values
// (nil, "", "None") which map to the caller's default without complaint, the
// member with the same numeric value, the member whose name equals the trimmed
// upper-cased input, and the member whose name equals the input upper-cased with
// runs of white space and hyphens collapsed into one underscore. Input that
// matches nothing resolves to the default and is reported once per enum type and
// distinct value through a DedupLog shared by the resolvers that should agree on
// what has already been reported.
package enum
