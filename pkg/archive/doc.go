// Package archive reads mod archives into the workspace and writes the
// final resource package.
//
// Both directions use zip with Deflate, served by klauspost/compress/flate
// instead of the standard library codec. Entry names are normalized to
// slash-separated relative paths; anything absolute or escaping the
// destination with ".." is rejected before a single byte is written.
package archive
