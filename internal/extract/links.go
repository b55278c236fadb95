package extract

import "regexp"

// LinkPattern matches "[display text](target)" where the display text
// contains no ']' and the target contains no ')'. The first submatch is
// the target.
var LinkPattern = regexp.MustCompile(`\[[^\]]*\]\(([^)]+)\)`)

// ExtractLinks returns every link target in text, in the order the links
// appear. Repeated targets are returned as many times as they occur.
func ExtractLinks(text string) []string {
	matches := LinkPattern.FindAllStringSubmatch(text, -1)
	targets := make([]string, 0, len(matches))
	for _, m := range matches {
		targets = append(targets, m[1])
	}
	return targets
}
