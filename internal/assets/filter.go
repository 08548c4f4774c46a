package assets

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude lists the file types served from the assets directory.
var DefaultInclude = []string{
	"**/*.png",
	"**/*.jpg",
	"**/*.jpeg",
	"**/*.gif",
	"**/*.svg",
	"**/*.webp",
	"**/*.ico",
	"**/*.css",
	"**/*.js",
	"**/*.woff2",
}

// skippedDirs are never descended into or served from.
var skippedDirs = []string{
	".git",
	"node_modules",
	".DS_Store",
}

func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") && name != "." {
		return true
	}
	for _, d := range skippedDirs {
		if strings.EqualFold(name, d) {
			return true
		}
	}
	return false
}

// Allowed reports whether relPath may be served: it must match one of the
// include patterns (all paths when include is empty), no exclude pattern,
// and must not climb out of the root or pass through a hidden directory.
func Allowed(relPath string, include, exclude []string) bool {
	slashed := filepath.ToSlash(relPath)
	for _, part := range strings.Split(slashed, "/") {
		if part == ".." {
			return false
		}
	}
	normalized := strings.TrimPrefix(path.Clean("/"+slashed), "/")
	if normalized == "" {
		return false
	}
	for _, part := range strings.Split(normalized, "/") {
		if skipDir(part) {
			return false
		}
	}
	if len(include) > 0 && !matchesAny(normalized, include) {
		return false
	}
	if len(exclude) > 0 && matchesAny(normalized, exclude) {
		return false
	}
	return true
}

// matchesAny tries each pattern against the full path and then the base
// name, so "*.png" matches nested files too.
func matchesAny(relPath string, patterns []string) bool {
	base := filepath.Base(relPath)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
