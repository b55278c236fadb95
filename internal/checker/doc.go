// Package checker classifies link targets and decides whether they work.
//
// A target beginning with "http://" or "https://" is external and is probed
// with an HTTP HEAD request. Everything else is local and is resolved as a
// path relative to the Markdown file that contains it. Note that this makes
// "mailto:", "ftp:" and other schemes local unless they are put on the skip
// list; that matches the behavior users of the text report already rely on.
//
// Each link is checked independently. A check never returns an error:
// failures are part of the result, as a coarse Status plus a finer ErrorKind
// that is kept for diagnostics.
package checker
