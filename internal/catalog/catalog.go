// Package catalog is the read-only set of destinations and tour packages,
// loaded once at startup.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Eursukkul/tour-booking/tour-service/internal/models"
)

//go:embed data/tourism.json
var defaultData []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type document struct {
	SiteInfo     models.SiteInfo      `json:"siteInfo"`
	Destinations []models.Destination `json:"destinations"`
	Packages     []models.Package     `json:"tourPackages"`
}

type Catalog struct {
	site         models.SiteInfo
	destinations []models.Destination
	packages     []models.Package

	destByID   map[int]int
	pkgByID    map[int]int
	pkgsByDest map[int][]int
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultData)
}

func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return build(doc)
}

func build(doc document) (*Catalog, error) {
	c := &Catalog{
		site:         doc.SiteInfo,
		destinations: doc.Destinations,
		packages:     doc.Packages,
		destByID:     make(map[int]int, len(doc.Destinations)),
		pkgByID:      make(map[int]int, len(doc.Packages)),
		pkgsByDest:   make(map[int][]int),
	}

	for i, d := range c.destinations {
		if _, dup := c.destByID[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate destination id %d", ErrInvalidCatalog, d.ID)
		}
		c.destByID[d.ID] = i
	}
	for i, p := range c.packages {
		if _, dup := c.pkgByID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate package id %d", ErrInvalidCatalog, p.ID)
		}
		if _, ok := c.destByID[p.DestinationID]; !ok {
			return nil, fmt.Errorf("%w: package %d references unknown destination %d", ErrInvalidCatalog, p.ID, p.DestinationID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("%w: package %d has a negative price", ErrInvalidCatalog, p.ID)
		}
		if p.Price > models.MaxPrice {
			return nil, fmt.Errorf("%w: package %d price exceeds %d", ErrInvalidCatalog, p.ID, models.MaxPrice)
		}
		c.pkgByID[p.ID] = i
		c.pkgsByDest[p.DestinationID] = append(c.pkgsByDest[p.DestinationID], i)
	}

	return c, nil
}

func (c *Catalog) SiteInfo() models.SiteInfo {
	return c.site
}

// Every accessor below hands out deep copies; the catalog itself never changes
// after load.

func (c *Catalog) Destinations() []models.Destination {
	out := make([]models.Destination, len(c.destinations))
	for i, d := range c.destinations {
		out[i] = d.Clone()
	}
	return out
}

func (c *Catalog) Packages() []models.Package {
	out := make([]models.Package, len(c.packages))
	for i, p := range c.packages {
		out[i] = p.Clone()
	}
	return out
}

func (c *Catalog) FindDestination(id int) (models.Destination, bool) {
	i, ok := c.destByID[id]
	if !ok {
		return models.Destination{}, false
	}
	return c.destinations[i].Clone(), true
}

func (c *Catalog) FindPackage(id int) (models.Package, bool) {
	i, ok := c.pkgByID[id]
	if !ok {
		return models.Package{}, false
	}
	return c.packages[i].Clone(), true
}

// PackagesForDestination keeps catalog order. Unknown ids yield an empty slice.
func (c *Catalog) PackagesForDestination(id int) []models.Package {
	idx := c.pkgsByDest[id]
	out := make([]models.Package, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.packages[i].Clone())
	}
	return out
}

type SearchResult struct {
	Destinations []models.Destination `json:"destinations"`
	Packages     []models.Package     `json:"packages"`
}

// Search is a case-insensitive substring match. Results keep catalog order.
// A blank query matches nothing.
func (c *Catalog) Search(query string) SearchResult {
	res := SearchResult{Destinations: []models.Destination{}, Packages: []models.Package{}}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return res
	}

	for _, d := range c.destinations {
		if containsAny(q, d.Name, d.Country, d.Type, d.Description) {
			res.Destinations = append(res.Destinations, d.Clone())
		}
	}
	for _, p := range c.packages {
		if containsAny(q, p.Name, p.Description) {
			res.Packages = append(res.Packages, p.Clone())
		}
	}
	return res
}

func containsAny(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
