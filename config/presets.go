// Package config loads named (cf, ie, dr) phasing-model presets and named
// flow-order cycles from a YAML catalog. It is a pure convenience layer:
// the dephase solver's semantics never depend on how its three error-rate
// parameters were obtained.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset names one (cf, ie, dr) triple for a named chip/chemistry.
type Preset struct {
	Name string  `yaml:"name"`
	CF   float32 `yaml:"cf"`
	IE   float32 `yaml:"ie"`
	DR   float32 `yaml:"dr"`
}

// FlowOrderSpec names a repeating nucleotide cycle and the flow count it
// should be expanded to.
type FlowOrderSpec struct {
	Name     string `yaml:"name"`
	Cycle    string `yaml:"cycle"`
	NumFlows int    `yaml:"num_flows"`
}

// Catalog is the full structure of a presets YAML file. All top-level
// sections must be listed to satisfy KnownFields(true) strict parsing.
type Catalog struct {
	Presets    []Preset        `yaml:"presets"`
	FlowOrders []FlowOrderSpec `yaml:"flow_orders"`
}

// Load parses a presets catalog from path with strict field checking: an
// unrecognized YAML key is a config error, not silently ignored.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cat Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cat); err != nil {
		return Catalog{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cat, nil
}

// Preset looks up a named preset. ok is false if no preset with that name
// exists in the catalog.
func (c Catalog) Preset(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// FlowOrder looks up a named flow-order spec. ok is false if no flow order
// with that name exists in the catalog.
func (c Catalog) FlowOrder(name string) (FlowOrderSpec, bool) {
	for _, f := range c.FlowOrders {
		if f.Name == name {
			return f, true
		}
	}
	return FlowOrderSpec{}, false
}
