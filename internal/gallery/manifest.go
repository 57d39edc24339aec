package gallery

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML form of a catalog:
//
//	items:
//	  - title: Misty Forest
//	    category: nature
//	    src: images/forest.jpg
//	    alt: Fog between pine trees
type Manifest struct {
	Items []ManifestItem `yaml:"items"`
}

// ManifestItem is one catalog entry in a manifest.
type ManifestItem struct {
	ID       string `yaml:"id,omitempty"`
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Src      string `yaml:"src"`
	Alt      string `yaml:"alt,omitempty"`
}

// LoadManifest reads a manifest file into items.
func LoadManifest(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes manifest YAML. Title and src are required; the
// category defaults to Uncategorized and the alt text to the title.
func ParseManifest(data []byte) ([]Item, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	items := make([]Item, 0, len(m.Items))
	for i, mi := range m.Items {
		if strings.TrimSpace(mi.Title) == "" {
			return nil, fmt.Errorf("manifest item %d: title is required", i)
		}
		if strings.TrimSpace(mi.Src) == "" {
			return nil, fmt.Errorf("manifest item %d (%s): src is required", i, mi.Title)
		}
		category := strings.ToLower(strings.TrimSpace(mi.Category))
		if category == "" {
			category = Uncategorized
		}
		if category == CategoryAll {
			return nil, fmt.Errorf("manifest item %d (%s): %q is reserved", i, mi.Title, CategoryAll)
		}
		alt := mi.Alt
		if alt == "" {
			alt = mi.Title
		}
		items = append(items, Item{
			ID:       ItemID(mi.ID),
			Title:    mi.Title,
			Category: category,
			Image:    Image{Src: mi.Src, Alt: alt},
		})
	}
	return items, nil
}
