// Package model defines the core data structures used throughout mdlinkcheck.
//
// This package contains the following main types:
//   - Link: A link target extracted from a Markdown file
//   - LinkRecord: The outcome of checking one link
//   - Report: The accumulated result of a single scan
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The checker, pipeline and report packages all need these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
