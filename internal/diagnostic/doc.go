// Package diagnostic provides structured warnings and errors reported while
// checking an order-map artifact.
//
// Errors mark an artifact as malformed and stop it from being loaded.
// Warnings describe entries that were accepted but carry no ordering rule.
package diagnostic
