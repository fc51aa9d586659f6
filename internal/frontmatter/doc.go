// Package frontmatter validates blog post metadata headers against the
// reference allow-lists. A run walks one directory in listing order, parses
// each document, applies the community, type, by and tag checks in that order
// and stops at the first violation. Description problems are reported as
// warnings and never stop a run.
package frontmatter
