package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
)

// MarkdownExt is the extension of the files that are scanned.
// It is matched case-insensitively.
const MarkdownExt = ".md"

// IsMarkdownFile reports whether name ends in ".md", ignoring case.
func IsMarkdownFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), MarkdownExt)
}

// FindMarkdownFiles returns every Markdown file under root, including
// files in all subdirectories.
//
// Returned paths are root joined with the path relative to it, so they
// look the way the user typed the root. If root does not exist or is not
// a directory the result is empty and no error is reported; callers that
// need a diagnostic validate the root up front.
//
// The second return value holds errors for subtrees that could not be read.
// Those subtrees are skipped; every other file is still returned.
func FindMarkdownFiles(root string) ([]string, []error) {
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return []string{}, nil
	}

	// godirwalk refuses to start on a symlink, so walk the resolved
	// directory and map paths back onto the root as given.
	walkRoot := root
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		walkRoot = resolved
	}

	files := make([]string, 0)
	var walkErrs []error

	err = godirwalk.Walk(walkRoot, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if isDir(de) {
				return nil
			}
			if !IsMarkdownFile(de.Name()) {
				return nil
			}
			files = append(files, displayPath(root, walkRoot, osPathname))
			return nil
		},
		ErrorCallback: func(osPathname string, err error) godirwalk.ErrorAction {
			walkErrs = append(walkErrs, fmt.Errorf("skipping %s: %w", displayPath(root, walkRoot, osPathname), err))
			return godirwalk.SkipNode
		},
		Unsorted: false,
	})
	if err != nil {
		walkErrs = append(walkErrs, err)
	}

	return files, walkErrs
}

// isDir reports whether the entry is a directory or a symlink to one.
// Symlinked directories are not descended into, and a dangling symlink
// is treated as a file.
func isDir(de *godirwalk.Dirent) bool {
	if de.IsDir() {
		return true
	}
	if !de.IsSymlink() {
		return false
	}
	ok, err := de.IsDirOrSymlinkToDir()
	return err == nil && ok
}

// displayPath rewrites a path under walkRoot so that it starts with root.
func displayPath(root, walkRoot, osPathname string) string {
	if walkRoot == root {
		return osPathname
	}
	rel, err := filepath.Rel(walkRoot, osPathname)
	if err != nil {
		return osPathname
	}
	return filepath.Join(root, rel)
}
