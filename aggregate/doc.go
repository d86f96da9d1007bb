// Package aggregate merges and cleans extracted tables.
//
// Combine applies the caller-selected merge policy to the tables a strategy
// produced. Clean is the final cross-cutting cleanup pass that runs exactly
// once per request, after shaping, regardless of which strategy produced the
// result.
package aggregate
