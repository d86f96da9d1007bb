// Package model provides the data structures shared across the extraction
// pipeline.
//
// The central type is [Table], the structured result of an extraction run:
// named columns plus insertion-ordered rows of string cells. Strategies
// produce [Extracted] values, which pair a Table with the page it came from
// and its position within that page. Downstream consumers (serialization,
// transport) only ever see these types, never strategy internals.
package model
