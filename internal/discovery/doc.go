// Package discovery finds the Markdown files under a documentation root.
//
// The walk is built on godirwalk, which visits entries in sorted order.
// That keeps the order of the report stable between runs over the same tree.
//
// Errors are handled with an accumulate-and-continue policy: an unreadable
// subdirectory is skipped and its error is returned alongside the files that
// were found, so a single bad directory never loses the rest of the scan.
package discovery
