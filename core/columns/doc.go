// Package columns resolves the display columns shown next to each asset.
//
// Columns come from configuration. "*" shows every metadata field; other
// entries are field names, optionally dotted to reach nested values
// (e.g. "metadata.status" or "folder.name"). Paths are compiled once into
// gojq programs and evaluated against each asset's metadata.
package columns
