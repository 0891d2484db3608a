// Package extractors provides implementations of the Extractor interface
// for various document formats. Each extractor converts one downloaded
// file into normalised text documents.
//
// Extractors are registered with the Registry by file suffix; unknown
// suffixes fall back to a plain UTF-8 text decode.
package extractors
