package oneblock

import (
	"maps"
	"slices"
	"strings"
)

// DropDefinition is one weighted default drop.
type DropDefinition struct {
	DropID string
	Weight int
}

// Drop builds a DropDefinition with the weight floored at 1.
func Drop(dropID string, weight int) DropDefinition {
	return DropDefinition{DropID: dropID, Weight: max(weight, 1)}
}

// ExpeditionDefaults is the ordered default drop list of one expedition.
type ExpeditionDefaults struct {
	Name  string
	Drops []DropDefinition
}

// PlayerDropsState is the per-player drop state of one expedition.
type PlayerDropsState struct {
	UnlockedDrops []string
	EnabledDrops  []string
}

// Table is the immutable default drop table produced by the generator.
type Table struct {
	names    []string
	defaults map[string][]DropDefinition
	ids      map[string][]string
	weights  map[string]map[string]int
	folded   map[string]string
}

// NewTable indexes the generated expedition defaults. Expeditions without
// drops are left out.
func NewTable(expeditions []ExpeditionDefaults) *Table {
	t := &Table{
		defaults: make(map[string][]DropDefinition),
		ids:      make(map[string][]string),
		weights:  make(map[string]map[string]int),
		folded:   make(map[string]string),
	}

	for _, exp := range expeditions {
		if len(exp.Drops) == 0 {
			continue
		}
		if _, seen := t.defaults[exp.Name]; !seen {
			t.names = append(t.names, exp.Name)
		}

		drops := append([]DropDefinition(nil), exp.Drops...)
		ids := make([]string, 0, len(drops))
		weights := make(map[string]int, len(drops))
		for _, d := range drops {
			if d.DropID == "" {
				continue
			}
			ids = append(ids, d.DropID)
			weights[d.DropID] = max(d.Weight, 1)
		}

		t.defaults[exp.Name] = drops
		t.ids[exp.Name] = ids
		t.weights[exp.Name] = weights
		if _, taken := t.folded[strings.ToLower(exp.Name)]; !taken {
			t.folded[strings.ToLower(exp.Name)] = exp.Name
		}
	}
	return t
}

// Expeditions returns the expedition names in generation order.
func (t *Table) Expeditions() []string {
	return append([]string(nil), t.names...)
}

// Normalize maps any spelling of an expedition name to its table key. Blank
// names resolve to DefaultExpedition; unknown names are returned trimmed.
func (t *Table) Normalize(expedition string) string {
	trimmed := strings.TrimSpace(expedition)
	if trimmed == "" {
		return DefaultExpedition
	}
	if _, ok := t.defaults[trimmed]; ok {
		return trimmed
	}
	if canonical, ok := t.folded[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// Defaults returns a copy of the ordered default drops of an expedition.
func (t *Table) Defaults(expedition string) []DropDefinition {
	return slices.Clone(t.defaults[t.Normalize(expedition)])
}

// DefaultDropIDs returns the default drop ids of an expedition, or
// [DefaultItemID] when it has none.
func (t *Table) DefaultDropIDs(expedition string) []string {
	ids := t.ids[t.Normalize(expedition)]
	if len(ids) == 0 {
		return []string{DefaultItemID}
	}
	return slices.Clone(ids)
}

// Weights returns a copy of expedition -> drop id -> weight.
func (t *Table) Weights() map[string]map[string]int {
	out := make(map[string]map[string]int, len(t.weights))
	for name, weights := range t.weights {
		out[name] = maps.Clone(weights)
	}
	return out
}

// IsDefaultDrop reports whether dropID is one of the expedition's defaults.
func (t *Table) IsDefaultDrop(expedition, dropID string) bool {
	if dropID == "" {
		return false
	}
	_, ok := t.weights[t.Normalize(expedition)][dropID]
	return ok
}

// EnsureDefaults removes blank entries from the unlocked drops, appends the
// expedition defaults and guarantees the list is not empty. Callers that need
// set semantics must dedupe themselves.
func (t *Table) EnsureDefaults(expedition string, state *PlayerDropsState) {
	if state == nil {
		return
	}

	kept := state.UnlockedDrops[:0]
	for _, id := range state.UnlockedDrops {
		if id != "" {
			kept = append(kept, id)
		}
	}
	state.UnlockedDrops = append(kept, t.DefaultDropIDs(expedition)...)

	if len(state.UnlockedDrops) == 0 {
		state.UnlockedDrops = append(state.UnlockedDrops, DefaultItemID)
	}
}
