// Package expedition loads the expedition config: a JSON object keyed by
// expedition name whose key order drives every generated artifact.
package expedition

import "github.com/ereliastudio/oneblock-tools/internal/jsonfile"

// Config holds the expeditions in the order they appear in the source.
type Config struct {
	Expeditions []Expedition
}

// Names returns the expedition names in config order.
func (c *Config) Names() []string {
	names := make([]string, len(c.Expeditions))
	for i, e := range c.Expeditions {
		names[i] = e.Name
	}
	return names
}

type Expedition struct {
	Name         string
	BaseDropPool []Drop
	KeyCraft     *Craftable
	Unlockable   []Unlock
}

// Drop is one entry of a base drop pool. ID is the raw string from the
// config, Weight is already normalized to at least 1.
type Drop struct {
	ID          string
	Weight      int
	Name        string
	Description string
	Quality     string
}

type Unlock struct {
	ID          string
	Weight      int
	Name        string
	Description string
	Quality     string
	Craft       []CraftIngredient
}

// Craftable describes an expedition key item.
type Craftable struct {
	ID          string
	Name        string
	Description string
	Quality     string
	Craft       []CraftIngredient
}

// CraftIngredient keeps the raw JSON values of the id fields so that they can
// be written back unchanged. ResourceTypeID and ItemID are nil when the value
// is absent or falsy.
type CraftIngredient struct {
	HasResourceTypeID bool
	ResourceTypeID    jsonfile.Value
	ItemID            jsonfile.Value
	Quantity          int
}
