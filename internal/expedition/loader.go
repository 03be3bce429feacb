package expedition

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/ereliastudio/oneblock-tools/internal/ident"
	"github.com/ereliastudio/oneblock-tools/internal/jsonfile"
)

// LoadFile reads and parses the config at path.
func LoadFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Load(raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Load parses a config document. Expeditions whose value is not an object and
// list entries that are not objects are skipped. When a name repeats, the
// last value wins and the first position is kept.
func Load(raw []byte) (*Config, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &ConfigError{Err: ErrInvalidJSON}
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, &ConfigError{Err: ErrRootNotObject}
	}

	cfg := &Config{}
	index := make(map[string]int)
	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}
		exp := parseExpedition(key.Str, value)
		if i, ok := index[exp.Name]; ok {
			cfg.Expeditions[i] = exp
			return true
		}
		index[exp.Name] = len(cfg.Expeditions)
		cfg.Expeditions = append(cfg.Expeditions, exp)
		return true
	})

	return cfg, nil
}

// Validate rejects entry shapes the generator refuses to translate and names
// that would place generated files outside their output directory. It runs
// before anything is written.
func Validate(cfg *Config) error {
	for _, exp := range cfg.Expeditions {
		if !safeSegment(exp.Name) {
			return &ConfigError{Expedition: exp.Name, Index: -1, Err: ErrUnsafePath}
		}
		for i, d := range exp.BaseDropPool {
			if ok, target := ident.ParseRecipe(d.ID); ok && !safeSegment(ident.RecipeItemID(target)) {
				return &ConfigError{Expedition: exp.Name, Field: "BaseDropPool", Index: i, Err: ErrUnsafePath}
			}
		}
		if exp.KeyCraft != nil && !safeSegment(exp.KeyCraft.ID) {
			return &ConfigError{Expedition: exp.Name, Field: "KeyCraft.ID", Index: -1, Err: ErrUnsafePath}
		}
		for i, u := range exp.Unlockable {
			if ident.IsExchangeRef(u.ID) {
				return &ConfigError{Expedition: exp.Name, Field: "Unlockable", Index: i, Err: ErrExchangeUnsupported}
			}
			if !safeSegment(ident.UnlockItemID(u.ID)) {
				return &ConfigError{Expedition: exp.Name, Field: "Unlockable", Index: i, Err: ErrUnsafePath}
			}
		}
	}
	return nil
}

// safeSegment reports whether s can be used inside a single file name.
func safeSegment(s string) bool {
	return !strings.ContainsAny(s, "/\\\x00") && !strings.Contains(s, "..")
}

func parseExpedition(name string, v gjson.Result) Expedition {
	exp := Expedition{Name: name}

	forEachObject(v.Get("BaseDropPool"), func(entry gjson.Result) {
		exp.BaseDropPool = append(exp.BaseDropPool, Drop{
			ID:          idText(entry.Get("ID")),
			Weight:      Count(entry.Get("Weight")),
			Name:        text(entry.Get("Name")),
			Description: text(entry.Get("Description")),
			Quality:     optionalText(entry.Get("Quality")),
		})
	})

	if key := v.Get("KeyCraft"); key.IsObject() {
		exp.KeyCraft = &Craftable{
			ID:          strings.TrimSpace(idText(key.Get("ID"))),
			Name:        text(key.Get("Name")),
			Description: text(key.Get("Description")),
			Quality:     optionalText(key.Get("Quality")),
			Craft:       parseCraft(key.Get("Craft")),
		}
	}

	forEachObject(v.Get("Unlockable"), func(entry gjson.Result) {
		exp.Unlockable = append(exp.Unlockable, Unlock{
			ID:          idText(entry.Get("ID")),
			Weight:      Count(entry.Get("Weight")),
			Name:        text(entry.Get("Name")),
			Description: text(entry.Get("Description")),
			Quality:     optionalText(entry.Get("Quality")),
			Craft:       parseCraft(entry.Get("Craft")),
		})
	})

	return exp
}

func parseCraft(v gjson.Result) []CraftIngredient {
	var out []CraftIngredient
	forEachObject(v, func(entry gjson.Result) {
		in := CraftIngredient{Quantity: Count(entry.Get("Quantity"))}

		if rid := entry.Get("ResourceTypeId"); rid.Exists() {
			in.HasResourceTypeID = true
			if truthy(rid) {
				in.ResourceTypeID = jsonfile.FromResult(rid)
			}
		}

		for _, field := range []string{"ID", "ItemId"} {
			if id := entry.Get(field); truthy(id) {
				in.ItemID = jsonfile.FromResult(id)
				break
			}
		}

		out = append(out, in)
	})
	return out
}

// forEachObject calls fn for every object element of a JSON array and ignores
// everything else.
func forEachObject(list gjson.Result, fn func(gjson.Result)) {
	if !list.IsArray() {
		return
	}
	list.ForEach(func(_, entry gjson.Result) bool {
		if entry.IsObject() {
			fn(entry)
		}
		return true
	})
}

// idText reads an id field. Falsy values read as "".
func idText(v gjson.Result) string {
	return optionalText(v)
}
