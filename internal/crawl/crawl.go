package crawl

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Bundle groups the files that together represent one card: a single static
// image plus zero or more animation frames.
//
// Animated holds frame paths in ascending lexicographic order of each
// directory listing. Frame indices must be zero padded for that order to
// match numeric frame order; the crawler preserves the sort-based contract
// rather than reordering numerically.
type Bundle struct {
	Static   string
	Animated []string
}

// Crawl walks root and groups every non-hidden file into a bundle keyed by
// its derived base name. Files directly inside a directory named animFolder
// are animation frames: their key is the first segment of the
// extension-stripped name split on splitPattern. Files anywhere else are
// static images keyed by the extension-stripped name.
//
// Keys are global across the whole walk, so a static file and frames sharing
// a base name merge into one bundle regardless of subdirectory. A missing
// root yields an empty map, not an error.
func Crawl(root string, splitPattern *regexp.Regexp, animFolder string) map[string]Bundle {
	bundles := map[string]Bundle{}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return bundles
	}

	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, never fatal.
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		name := entry.Name()
		if hidden(name) && path != root {
			if entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}

		base := strings.TrimSuffix(name, filepath.Ext(name))
		if filepath.Base(filepath.Dir(path)) == animFolder {
			key := base
			if splitPattern != nil {
				key = splitPattern.Split(base, 2)[0]
			}
			bundle := bundles[key]
			bundle.Animated = append(bundle.Animated, path)
			bundles[key] = bundle
			return nil
		}

		if existing, ok := bundles[base]; ok {
			if existing.Static == "" {
				existing.Static = path
				bundles[base] = existing
			}
			return nil
		}
		bundles[base] = Bundle{Static: path}
		return nil
	})

	return bundles
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
