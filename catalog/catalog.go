package catalog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/randalmurphal/routekit/pricing"
	"github.com/randalmurphal/routekit/provider"
)

// Catalog is the declarative provider, pricing, and policy configuration
// a deployment routes against. Catalogs come from the built-in Default or
// from a TOML, YAML, or JSON file; either way they validate the same and
// compile into a provider registry plus a pricing source.
type Catalog struct {
	// Providers are the registry records in priority order; earlier
	// entries win ranking ties.
	Providers []provider.Record `json:"providers" yaml:"providers" toml:"providers" validate:"required,min=1,unique=ID"`

	// Pricing overlays the built-in rate table, keyed "provider/model"
	// with "provider/*" as the provider-wide default. Rates are USD per
	// million tokens.
	Pricing map[string]pricing.Pricing `json:"pricing,omitempty" yaml:"pricing,omitempty" toml:"pricing,omitempty"`

	// Policy tunes routing behavior. Optional; omitted values keep the
	// engine defaults.
	Policy *Policy `json:"policy,omitempty" yaml:"policy,omitempty" toml:"policy,omitempty"`
}

var validate = validator.New()

// Validate checks the catalog's shape, every provider record, and the
// pricing overlay.
func (c *Catalog) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("catalog structure: %w", err)
	}
	for i := range c.Providers {
		if err := c.Providers[i].Validate(); err != nil {
			return fmt.Errorf("catalog provider %d: %w", i, err)
		}
	}
	for key, p := range c.Pricing {
		if !strings.Contains(key, "/") {
			return fmt.Errorf("catalog pricing key %q: want provider/model", key)
		}
		if p.InputPerMillion < 0 || p.OutputPerMillion < 0 || p.CachedInputPerMillion < 0 {
			return fmt.Errorf("catalog pricing %q: negative rate", key)
		}
	}
	return c.Policy.validatePolicy()
}

// Registry compiles the catalog into a provider registry.
func (c *Catalog) Registry() (*provider.Registry, error) {
	return provider.NewRegistry(c.Providers...)
}

// PricingSource returns a static source over the built-in rate table
// with the catalog's overlay applied, so a catalog that adds one custom
// model keeps the published rates for everything else.
func (c *Catalog) PricingSource() *pricing.StaticSource {
	table := make(map[string]pricing.Pricing, len(pricing.DefaultTable)+len(c.Pricing))
	for k, v := range pricing.DefaultTable {
		table[k] = v
	}
	for k, v := range c.Pricing {
		table[k] = v
	}
	return pricing.NewStaticSource(table)
}
