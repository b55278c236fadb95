package checker

import (
	"strings"

	"github.com/nao1215/mdlinkcheck/internal/model"
)

// External link prefixes. They are matched literally and case-sensitively.
const (
	prefixHTTP  = "http://"
	prefixHTTPS = "https://"
)

// SchemeSet is a set of URL schemes whose links are never checked.
// Keys are lower case.
type SchemeSet map[string]struct{}

// NewSchemeSet builds a SchemeSet from scheme names. A trailing ':' or
// "://" is ignored, so "mailto", "mailto:" and "ftp://" all work.
func NewSchemeSet(schemes ...string) SchemeSet {
	set := make(SchemeSet, len(schemes))
	for _, s := range schemes {
		s = strings.TrimSuffix(strings.TrimSuffix(strings.TrimSpace(s), "//"), ":")
		if s == "" {
			continue
		}
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}

// Contains reports whether scheme is in the set, ignoring case.
func (s SchemeSet) Contains(scheme string) bool {
	_, ok := s[strings.ToLower(scheme)]
	return ok
}

// IsExternal reports whether target begins with "http://" or "https://".
func IsExternal(target string) bool {
	return strings.HasPrefix(target, prefixHTTP) || strings.HasPrefix(target, prefixHTTPS)
}

// Classify decides how a target is checked.
// Targets whose scheme is in skip are skipped; otherwise a target is
// external if IsExternal reports true and local in every other case.
func Classify(target string, skip SchemeSet) model.Kind {
	if len(skip) > 0 {
		if scheme, ok := Scheme(target); ok && skip.Contains(scheme) {
			return model.KindSkipped
		}
	}
	if IsExternal(target) {
		return model.KindExternal
	}
	return model.KindLocal
}

// Scheme returns the URI scheme of target, if it has one.
// A scheme is a letter followed by letters, digits, '+', '-' or '.',
// terminated by ':'.
func Scheme(target string) (string, bool) {
	for i := 0; i < len(target); i++ {
		c := target[i]
		switch {
		case c == ':':
			return target[:i], i > 0
		case isAlpha(c):
		case i > 0 && (isDigit(c) || c == '+' || c == '-' || c == '.'):
		default:
			return "", false
		}
	}
	return "", false
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
