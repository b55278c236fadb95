// Package main provides the entry point for the mdlinkcheck CLI.
//
// mdlinkcheck scans a directory tree of Markdown files and reports links
// that are broken: external URLs that do not answer an HTTP HEAD request
// successfully, and local file references that do not exist on disk.
//
// Usage:
//
//	mdlinkcheck check <root-dir>
//	MDLINKCHECK_ROOT=docs mdlinkcheck check
//
// See --help for all available options.
package main

// main is the entry point for mdlinkcheck.
func main() {
	Execute()
}
