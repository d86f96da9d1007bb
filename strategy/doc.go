// Package strategy implements the per-archetype extraction paths.
//
// A [Strategy] runs in two phases. Run walks the document and collects
// raw material - tagged tables and per-page text - together with a
// [Diagnostics] record. Shape then folds that material into a single
// output table according to the run options. Splitting the phases
// keeps collection failures and output policy independent: a caller
// can re-shape the same run without touching the document again.
//
// Failures never abort a run. A page that cannot be processed adds one
// line to [Diagnostics.Errors] and processing continues; a document
// that cannot be processed at all yields an empty result with a single
// entry. Shape always returns a table, substituting a one-row
// placeholder when a run produced nothing.
//
// Strategies register themselves by verdict:
//
//	strat := strategy.For(classify.ScannedDocument)
//	res, diags := strat.Run(doc, opts)
//	table := strat.Shape(res, opts)
package strategy
