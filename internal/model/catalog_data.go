package model

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalogYAML []byte

// DefaultCatalog parses the embedded catalog data. The embedded file is
// part of the build, so a parse failure is a build defect rather than a
// runtime condition; callers that cannot handle the error may use
// MustDefaultCatalog.
func DefaultCatalog() (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(defaultCatalogYAML, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse embedded catalog: %w", err)
	}
	return c, nil
}

// MustDefaultCatalog returns the embedded catalog, panicking on parse failure.
func MustDefaultCatalog() Catalog {
	c, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}
