// Package oneblock is the runtime side of the generated expedition defaults:
// drop id parsing, expedition resolution and the default drop table.
package oneblock

import "strings"

const (
	// DefaultItemID is dropped when nothing else is available.
	DefaultItemID = "Ingredient_Fibre"
	// DefaultExpedition is used when no expedition is named.
	DefaultExpedition = "Meadow"

	entityPrefix = "entity:"
	npcPrefix    = "npc:"
	mobPrefix    = "mob:"
	itemPrefix   = "item:"

	blockPrefix      = "OneBlock_Block_"
	expeditionPrefix = "OneBlock_Expedition_"
	keySuffix        = "_Key"
)

// DropKind tells items from entities.
type DropKind int

const (
	DropItem DropKind = iota
	DropEntity
)

// DropID is a parsed drop pool id.
type DropID struct {
	Kind DropKind
	ID   string
}

func (d DropID) IsEntity() bool {
	return d.Kind == DropEntity
}

// ParseDropID parses a drop id as stored in unlocked drop lists.
func ParseDropID(raw string) DropID {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	for _, p := range []string{entityPrefix, npcPrefix, mobPrefix} {
		if strings.HasPrefix(lower, p) {
			return DropID{Kind: DropEntity, ID: strings.TrimSpace(trimmed[len(p):])}
		}
	}
	if strings.HasPrefix(lower, itemPrefix) {
		return DropID{Kind: DropItem, ID: strings.TrimSpace(trimmed[len(itemPrefix):])}
	}
	return DropID{Kind: DropItem, ID: trimmed}
}

// EntityDropID returns the drop id that spawns entityID, or "" when
// entityID is blank.
func EntityDropID(entityID string) string {
	trimmed := strings.TrimSpace(entityID)
	if trimmed == "" {
		return ""
	}
	return entityPrefix + trimmed
}

// BlockIDForExpedition returns the OneBlock block id bound to expedition.
func BlockIDForExpedition(expedition string) string {
	if expedition == "" {
		return ""
	}
	return blockPrefix + expedition
}

// ExpeditionFromBlockID is the inverse of BlockIDForExpedition. Unknown
// blocks resolve to DefaultExpedition.
func ExpeditionFromBlockID(blockID string) string {
	name, ok := strings.CutPrefix(blockID, blockPrefix)
	if !ok || name == "" {
		return DefaultExpedition
	}
	return name
}

// ExpeditionFromKeyItemID extracts the expedition of a key item id, or
// reports false when itemID is not a key item.
func ExpeditionFromKeyItemID(itemID string) (string, bool) {
	name, ok := strings.CutPrefix(itemID, expeditionPrefix)
	if !ok {
		return "", false
	}
	name = strings.TrimSuffix(name, keySuffix)
	if name == "" {
		return "", false
	}
	return name, true
}
