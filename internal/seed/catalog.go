package seed

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Catalog is the YAML document loaded by the seed command.
type Catalog struct {
	Items     []ItemEntry     `yaml:"items"`
	Locations []LocationEntry `yaml:"locations"`
	Stock     []StockEntry    `yaml:"stock"`
}

type ItemEntry struct {
	Code          string `yaml:"code"`
	Description   string `yaml:"description"`
	Category      string `yaml:"category"`
	UnitOfMeasure string `yaml:"unitOfMeasure"`
	UnitVolume    string `yaml:"unitVolume"`
	ReorderPoint  string `yaml:"reorderPoint"`
}

// LocationEntry nests its children, so the tree in the file is the tree that gets created.
type LocationEntry struct {
	Code           string          `yaml:"code"`
	Description    string          `yaml:"description"`
	Type           string          `yaml:"type"`
	CapacityVolume string          `yaml:"capacityVolume"`
	Children       []LocationEntry `yaml:"children"`
}

// StockEntry is an opening receipt, referencing an item and a location of the same catalog.
type StockEntry struct {
	Item     string `yaml:"item"`
	Location string `yaml:"location"`
	Quantity string `yaml:"quantity"`
	Batch    string `yaml:"batch"`
}

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("catalog payload is empty")
	}
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// LoadCatalogFile reads and parses the catalog at path.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return catalog, nil
}

// Validate checks the shape of the document: codes are unique, numbers parse,
// types are known and stock references resolve within the catalog.
func (c *Catalog) Validate() error {
	var problems []error

	items := make(map[string]struct{}, len(c.Items))
	for i, entry := range c.Items {
		code := strings.TrimSpace(entry.Code)
		if code == "" {
			problems = append(problems, fmt.Errorf("items[%d]: code is required", i))
			continue
		}
		if _, dup := items[code]; dup {
			problems = append(problems, fmt.Errorf("items[%d]: duplicate code %q", i, code))
		}
		items[code] = struct{}{}
		if _, err := entry.unitVolume(); err != nil {
			problems = append(problems, fmt.Errorf("item %s: %w", code, err))
		}
		if _, err := entry.reorderPoint(); err != nil {
			problems = append(problems, fmt.Errorf("item %s: %w", code, err))
		}
	}

	locations := make(map[string]struct{})
	var walk func(path string, entries []LocationEntry)
	walk = func(path string, entries []LocationEntry) {
		for i, entry := range entries {
			at := fmt.Sprintf("%s[%d]", path, i)
			code := strings.TrimSpace(entry.Code)
			if code == "" {
				problems = append(problems, fmt.Errorf("%s: code is required", at))
			} else {
				if _, dup := locations[code]; dup {
					problems = append(problems, fmt.Errorf("%s: duplicate code %q", at, code))
				}
				locations[code] = struct{}{}
			}
			if _, err := location.ParseType(entry.Type); err != nil {
				problems = append(problems, fmt.Errorf("%s: %w", at, err))
			}
			if _, err := entry.capacity(); err != nil {
				problems = append(problems, fmt.Errorf("%s: %w", at, err))
			}
			walk(at+".children", entry.Children)
		}
	}
	walk("locations", c.Locations)

	for i, entry := range c.Stock {
		at := fmt.Sprintf("stock[%d]", i)
		if _, ok := items[strings.TrimSpace(entry.Item)]; !ok {
			problems = append(problems, fmt.Errorf("%s: unknown item %q", at, entry.Item))
		}
		if _, ok := locations[strings.TrimSpace(entry.Location)]; !ok {
			problems = append(problems, fmt.Errorf("%s: unknown location %q", at, entry.Location))
		}
		if _, err := entry.quantity(); err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", at, err))
		}
	}

	return errors.Join(problems...)
}

func (e ItemEntry) unitVolume() (*decimal.Decimal, error) {
	return optionalDecimal("unitVolume", e.UnitVolume)
}

func (e ItemEntry) reorderPoint() (*kernel.Quantity, error) {
	if strings.TrimSpace(e.ReorderPoint) == "" {
		return nil, nil
	}
	q, err := kernel.QuantityFromString(strings.TrimSpace(e.ReorderPoint))
	if err != nil {
		return nil, fmt.Errorf("reorderPoint: %w", err)
	}
	return &q, nil
}

func (e LocationEntry) capacity() (*decimal.Decimal, error) {
	return optionalDecimal("capacityVolume", e.CapacityVolume)
}

func (e StockEntry) quantity() (kernel.Quantity, error) {
	q, err := kernel.QuantityFromString(strings.TrimSpace(e.Quantity))
	if err != nil {
		return kernel.Quantity{}, fmt.Errorf("quantity: %w", err)
	}
	if !q.IsPositive() {
		return kernel.Quantity{}, fmt.Errorf("quantity: %s is not positive", q)
	}
	return q, nil
}

func optionalDecimal(field, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("%s: %s is negative", field, raw)
	}
	return &d, nil
}
