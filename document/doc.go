// Package document loads a PDF once and exposes the raw per-page
// signals every later stage works from.
//
// A loaded [Document] is immutable and owned by a single request. Each
// [Page] carries three independent signals:
//
//   - Text - the plain text layer, in content-stream order
//   - Tables - cell grids clustered from positioned text fragments
//   - Image - the dominant embedded page image, when one exists
//
// Parse failures are isolated per page: a page that cannot be read
// records its error on [Page.Err] and the remaining pages still load.
// Only a document that cannot be opened at all makes [Load] fail.
//
// # Grid Detection
//
// Table grids are clustered by a [GridFinder]: fragments group into
// visual rows by baseline, rows split into cells on large horizontal
// gaps, and runs of consecutive multi-cell rows with stable cell
// counts become grids. The zero tolerances of [NewGridFinder] suit
// typical single-column business documents.
//
// # Whole-File Harvest
//
// [HarvestTables] is a second, independent table pass that reads a
// document from disk using the parser's row buckets instead of the
// per-page layout analysis. The two passes favour different layouts;
// callers pick one per run.
package document
