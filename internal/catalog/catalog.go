package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
)

// Placeholders returned when a code has no entry.
const (
	FallbackMBTI           = "MBTI 유형 설명 없음"
	FallbackCharmPrimary   = "CharMTI A/B 설명 없음"
	FallbackCharmSecondary = "CharMTI C/D 설명 없음"
)

//go:embed descriptions.yaml
var defaultCatalogYAML []byte

// AxisLabels are the chart captions for the two sides of an axis.
type AxisLabels struct {
	First  string `yaml:"first" json:"first"`
	Second string `yaml:"second" json:"second"`
}

// Catalog maps finished type codes to description text. It is read-only
// after construction and safe for concurrent use.
type Catalog struct {
	mbti           map[string]string
	charmPrimary   map[string]string
	charmSecondary map[string]string
	axes           map[string]AxisLabels
}

type catalogFile struct {
	MBTI           map[string]string     `yaml:"mbti"`
	CharmPrimary   map[string]string     `yaml:"charm_primary"`
	CharmSecondary map[string]string     `yaml:"charm_secondary"`
	Axes           map[string]AxisLabels `yaml:"axes"`
}

// MBTI returns the description for a 4-letter code.
func (c *Catalog) MBTI(code string) string {
	if v, ok := c.mbti[code]; ok {
		return v
	}
	return FallbackMBTI
}

// CharmPrimary returns the description keyed by the first charm letter.
func (c *Catalog) CharmPrimary(letter string) string {
	if v, ok := c.charmPrimary[letter]; ok {
		return v
	}
	return FallbackCharmPrimary
}

// CharmSecondary returns the description keyed by the second charm letter.
func (c *Catalog) CharmSecondary(letter string) string {
	if v, ok := c.charmSecondary[letter]; ok {
		return v
	}
	return FallbackCharmSecondary
}

// Labels returns the chart captions for an axis; missing entries fall back
// to the bare letters.
func (c *Catalog) Labels(a bank.Axis) AxisLabels {
	if l, ok := c.axes[a.String()]; ok {
		return l
	}
	return AxisLabels{First: a.First().String(), Second: a.Second().String()}
}

// Validate reports every type code and charm letter without a description.
func (c *Catalog) Validate() error {
	var errs []error
	for _, code := range AllMBTICodes() {
		if _, ok := c.mbti[code]; !ok {
			errs = append(errs, fmt.Errorf("missing mbti description %s", code))
		}
	}
	for _, l := range bank.AB.Letters() {
		if _, ok := c.charmPrimary[l.String()]; !ok {
			errs = append(errs, fmt.Errorf("missing charm description %s", l))
		}
	}
	for _, l := range bank.CD.Letters() {
		if _, ok := c.charmSecondary[l.String()]; !ok {
			errs = append(errs, fmt.Errorf("missing charm description %s", l))
		}
	}
	return errors.Join(errs...)
}

// AllMBTICodes enumerates the 16 codes of the four-axis cross product.
func AllMBTICodes() []string {
	codes := []string{""}
	for _, a := range bank.MBTIAxes {
		next := make([]string, 0, len(codes)*2)
		for _, prefix := range codes {
			for _, l := range a.Letters() {
				next = append(next, prefix+l.String())
			}
		}
		codes = next
	}
	return codes
}

// Load parses a catalog. Completeness is not enforced here; missing keys
// resolve to the fallback text at lookup time.
func Load(r io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &Catalog{
		mbti:           f.MBTI,
		charmPrimary:   f.CharmPrimary,
		charmSecondary: f.CharmSecondary,
		axes:           f.Axes,
	}, nil
}

// LoadFile reads a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Load(bytes.NewReader(data))
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(defaultCatalogYAML))
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
