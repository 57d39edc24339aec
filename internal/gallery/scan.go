package gallery

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude matches common web image formats.
var DefaultInclude = []string{
	"**/*.{jpg,jpeg,png,gif,webp,svg,avif}",
	"**/*.{JPG,JPEG,PNG,GIF,WEBP,SVG,AVIF}",
}

// Uncategorized is the category of images directly under the scan root.
const Uncategorized = "uncategorized"

// ScanDir walks root and returns one item per image matching include and not
// matching exclude, in lexical path order. The category is the first directory
// below root and the title is derived from the file name. Src is the path
// relative to root with forward slashes.
func ScanDir(root string, include, exclude []string) ([]Item, error) {
	if len(include) == 0 {
		include = DefaultInclude
	}

	var items []Item
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel != "." && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !matchesAny(rel, include) || matchesAny(rel, exclude) {
			return nil
		}
		items = append(items, itemFromPath(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return items, nil
}

// matchesAny checks relPath against doublestar patterns, trying the full
// relative path and then the base name.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, path.Base(relPath)); err == nil && matched {
			return true
		}
	}
	return false
}

func itemFromPath(rel string) Item {
	category := Uncategorized
	if dir := path.Dir(rel); dir != "." {
		category = strings.ToLower(strings.SplitN(dir, "/", 2)[0])
	}
	if category == CategoryAll {
		category = Uncategorized
	}
	title := TitleFromFilename(path.Base(rel))
	return Item{
		Title:    title,
		Category: category,
		Image:    Image{Src: rel, Alt: title},
	}
}

// TitleFromFilename turns "mountain-lake_sunset.jpg" into "Mountain Lake Sunset".
func TitleFromFilename(name string) string {
	name = strings.TrimSuffix(name, path.Ext(name))
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
