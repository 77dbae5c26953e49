package sites

import (
	"os"
	"path/filepath"
	"testing"
)

const validCatalog = `
sites:
  - name: greenwich
    latitude: 51.4769
    longitude: 0.0005
    height: 46
  - name: La Palma
    latitude: 28.7624
    longitude: -17.8892
    height: 2396
    timezone: Atlantic/Canary
`

func TestParseValidCatalog(t *testing.T) {
	c, err := Parse([]byte(validCatalog))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(c.Sites) != 2 {
		t.Fatalf("got %d sites, want 2", len(c.Sites))
	}

	site, ok := c.Find("la palma")
	if !ok {
		t.Fatal("case-insensitive Find failed")
	}
	if site.Height != 2396 {
		t.Errorf("height = %v, want 2396", site.Height)
	}
	if _, ok := c.Find("atacama"); ok {
		t.Error("Find returned a site that is not in the catalog")
	}
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"latitude out of range", "sites:\n  - name: x\n    latitude: 95\n    longitude: 0\n"},
		{"longitude out of range", "sites:\n  - name: x\n    latitude: 0\n    longitude: 181\n"},
		{"missing name", "sites:\n  - latitude: 10\n    longitude: 10\n"},
		{"empty catalog", "sites: []\n"},
		{"duplicate names", "sites:\n  - name: x\n    latitude: 1\n    longitude: 1\n  - name: X\n    latitude: 2\n    longitude: 2\n"},
		{"not yaml", "{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("Parse accepted an invalid catalog")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.yaml")
	if err := os.WriteFile(path, []byte(validCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := c.Find("greenwich"); !ok {
		t.Error("loaded catalog missing greenwich")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file did not fail")
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	if err := validate.Struct(c); err != nil {
		t.Fatalf("default catalog fails validation: %v", err)
	}
	if _, ok := c.Find("greenwich"); !ok {
		t.Error("default catalog missing greenwich")
	}
}
