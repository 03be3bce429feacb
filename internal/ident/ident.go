// Package ident derives canonical OneBlock item identifiers from the raw
// strings found in an expedition config.
package ident

import "strings"

const (
	UnlockPrefix     = "OneBlock_Unlock_"
	RecipePrefix     = "OneBlock_Recipe_"
	entityUnlockPart = "Entity_"

	recipeRefPrefix   = "recipe:"
	exchangeRefPrefix = "exchange:"
)

var entityRefPrefixes = []string{"entity:", "npc:", "mob:"}

// Kind classifies a raw drop id.
type Kind int

const (
	KindNone Kind = iota
	KindPlain
	KindEntity
	KindRecipe
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindEntity:
		return "entity"
	case KindRecipe:
		return "recipe"
	default:
		return "none"
	}
}

// Ref is a classified drop reference. ID is the trimmed id with any
// reference prefix removed.
type Ref struct {
	Kind Kind
	ID   string
}

// ParseEntity reports whether raw is an entity reference (entity:, npc: or
// mob:, case-insensitive) and returns the bare entity id. For anything else
// it returns false and the trimmed input.
func ParseEntity(raw string) (bool, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false, ""
	}
	lower := strings.ToLower(trimmed)
	for _, prefix := range entityRefPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true, strings.TrimSpace(trimmed[len(prefix):])
		}
	}
	return false, trimmed
}

// ParseRecipe reports whether raw is a recipe: reference and returns the
// bare recipe target id.
func ParseRecipe(raw string) (bool, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false, ""
	}
	if strings.HasPrefix(strings.ToLower(trimmed), recipeRefPrefix) {
		return true, strings.TrimSpace(trimmed[len(recipeRefPrefix):])
	}
	return false, trimmed
}

// IsExchangeRef reports whether raw uses the retired exchange: prefix.
func IsExchangeRef(raw string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(raw)), exchangeRefPrefix)
}

// ClassifyDrop classifies a base drop pool id. Recipe references take
// precedence over entity references.
func ClassifyDrop(raw string) Ref {
	if ok, target := ParseRecipe(raw); ok {
		return Ref{Kind: KindRecipe, ID: target}
	}
	ok, id := ParseEntity(raw)
	switch {
	case ok:
		return Ref{Kind: KindEntity, ID: id}
	case id == "":
		return Ref{Kind: KindNone}
	default:
		return Ref{Kind: KindPlain, ID: id}
	}
}

// UnlockItemID returns the id of the unlock item for a drop. Ids already
// carrying the unlock prefix are returned unchanged.
func UnlockItemID(dropID string) string {
	trimmed := strings.TrimSpace(dropID)
	if strings.HasPrefix(trimmed, UnlockPrefix) {
		return trimmed
	}
	if ok, entityID := ParseEntity(trimmed); ok {
		return UnlockPrefix + entityUnlockPart + strings.ReplaceAll(entityID, ":", "_")
	}
	return UnlockPrefix + trimmed
}

// RecipeItemID returns the id of the learn-recipe item for a recipe target.
func RecipeItemID(target string) string {
	trimmed := strings.TrimSpace(target)
	if strings.HasPrefix(trimmed, RecipePrefix) {
		return trimmed
	}
	return RecipePrefix + strings.ReplaceAll(trimmed, ":", "_")
}

func KeyItemID(expedition string) string {
	return "OneBlock_Expedition_" + expedition + "_Key"
}

func BenchCategoryID(expedition string) string {
	return "OneBlock_Upgrader_Expedition_" + expedition
}

// BenchCategoryLangKey is the language key of a bench category name, without
// the server. namespace.
func BenchCategoryLangKey(expedition string) string {
	return "benchCategories.OneBlockUpgrader_Expedition_" + expedition
}

func TargetBlockID(expedition string) string {
	return "OneBlock_Block_" + expedition
}

// ItemNameKey and ItemDescriptionKey are the language keys of an item, without
// the server. namespace.
func ItemNameKey(itemID string) string {
	return "items." + itemID + ".name"
}

func ItemDescriptionKey(itemID string) string {
	return "items." + itemID + ".description"
}

// ServerKey qualifies a language key the way item definitions reference it.
func ServerKey(key string) string {
	return "server." + key
}
