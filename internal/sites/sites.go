// Package sites manages the catalog of named observer locations used by the
// rise/set commands. Catalogs are YAML files validated on load.
package sites

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Site is a named observing location.
type Site struct {
	Name      string  `yaml:"name" validate:"required"`
	Latitude  float64 `yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `yaml:"longitude" validate:"gte=-180,lte=180"`
	Height    float64 `yaml:"height" validate:"gte=-430,lte=9000"` // meters
	Timezone  string  `yaml:"timezone,omitempty"`
}

// Catalog is a set of sites with unique names.
type Catalog struct {
	Sites []Site `yaml:"sites" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse site catalog: %w", err)
	}
	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("validate site catalog: %w", err)
	}

	seen := make(map[string]bool, len(c.Sites))
	for _, s := range c.Sites {
		key := strings.ToLower(s.Name)
		if seen[key] {
			return nil, fmt.Errorf("validate site catalog: duplicate site %q", s.Name)
		}
		seen[key] = true
	}
	return &c, nil
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site catalog: %w", err)
	}
	return Parse(data)
}

// Find looks up a site by name, case-insensitively.
func (c *Catalog) Find(name string) (Site, bool) {
	for _, s := range c.Sites {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Site{}, false
}

// Default returns the built-in catalog used when no file is given.
func Default() *Catalog {
	return &Catalog{Sites: []Site{
		{Name: "greenwich", Latitude: 51.4769, Longitude: 0.0005, Height: 46},
		{Name: "mauna-kea", Latitude: 19.8207, Longitude: -155.4681, Height: 4205},
		{Name: "paranal", Latitude: -24.6272, Longitude: -70.4042, Height: 2635},
		{Name: "siding-spring", Latitude: -31.2733, Longitude: 149.0617, Height: 1165},
	}}
}
