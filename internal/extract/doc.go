// Package extract reads Markdown files as text and pulls out link targets.
//
// Only the inline form [text](target) is recognized. Nested brackets,
// escaped parentheses, reference-style links and links split across
// lines are deliberately not handled.
package extract
