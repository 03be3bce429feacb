// Package items builds the item definitions generated for each expedition:
// unlock consumables, learn-recipe drops and expedition keys.
package items

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ereliastudio/oneblock-tools/internal/expedition"
	"github.com/ereliastudio/oneblock-tools/internal/ident"
)

// BuildUnlock builds the unlock consumable for one Unlockable entry.
func BuildUnlock(exp, categoryID string, u expedition.Unlock) Generated {
	dropID := strings.TrimSpace(u.ID)
	unlockID := ident.UnlockItemID(dropID)

	name := nonEmpty(u.Name, unlockID)
	description := nonEmpty(u.Description, fmt.Sprintf("Consume to unlock %s in your OneBlock pool.", dropID))

	tags := Tags{
		Type:                     []string{TypeUnlockConsumable},
		OneBlockUnlockExpedition: []string{exp},
		OneBlockUnlockWeight:     []string{strconv.Itoa(u.Weight)},
	}
	if isEntity, entityID := ident.ParseEntity(dropID); isEntity {
		tags.OneBlockUnlockEntityID = []string{entityID}
	} else {
		tags.OneBlockUnlockDropID = []string{dropID}
	}

	insert := &InteractionChain{Interactions: []Interaction{{Type: InteractionUnlockPoolInsert}}}

	payload := UnlockItem{
		TranslationProperties: translation(unlockID),
		ID:                    unlockID,
		Categories:            []string{"Items.Recipes"},
		PlayerAnimationsID:    "Item",
		Model:                 recipeModel,
		Texture:               recipeTexture,
		IconProperties:        recipeIconProperties(),
		Interactions:          Interactions{Primary: insert, Secondary: insert},
		Recipe:                benchRecipe(categoryID, u.Craft),
		Icon:                  IconRecipe,
		Consumable:            true,
		Tags:                  tags,
		ItemLevel:             1,
		MaxStack:              1,
		Quality:               orDefault(u.Quality, defaultUnlockQuality),
	}

	return Generated{ID: unlockID, Payload: payload, Lang: lang(unlockID, name, description)}
}

// BuildRecipeDrop builds the learn-recipe consumable for a recipe: pool
// entry. target is the bare recipe id with the prefix already removed.
func BuildRecipeDrop(exp, target string, d expedition.Drop) Generated {
	recipeID := ident.RecipeItemID(target)

	name := nonEmpty(d.Name, recipeID)
	description := nonEmpty(d.Description, fmt.Sprintf("Consume to learn the %s recipe.", target))

	learn := func() *InteractionChain {
		return &InteractionChain{Interactions: []Interaction{{
			ItemID: target,
			Type:   InteractionLearnRecipe,
			Next: &Interaction{
				Type:                   InteractionModifyInventory,
				AdjustHeldItemQuantity: -1,
			},
		}}}
	}

	payload := RecipeDropItem{
		TranslationProperties: translation(recipeID),
		ID:                    recipeID,
		Categories:            []string{"Items.Recipes"},
		PlayerAnimationsID:    "Item",
		Model:                 recipeModel,
		Texture:               recipeTexture,
		IconProperties:        recipeIconProperties(),
		Interactions:          Interactions{Primary: learn(), Secondary: learn()},
		Icon:                  IconRecipePage,
		Consumable:            true,
		Tags:                  Tags{Type: []string{TypeRecipe}},
		ItemLevel:             1,
		MaxStack:              1,
		Quality:               orDefault(d.Quality, defaultUnlockQuality),
	}

	return Generated{ID: recipeID, Payload: payload, Lang: lang(recipeID, name, description)}
}

// BuildKey builds the expedition key item.
func BuildKey(exp, categoryID string, key expedition.Craftable) Generated {
	keyID := orDefault(key.ID, ident.KeyItemID(exp))

	name := nonEmpty(key.Name, keyID)
	description := nonEmpty(key.Description, fmt.Sprintf("Use this on a OneBlock to set its expedition to %s.", exp))

	payload := KeyItem{
		TranslationProperties: translation(keyID),
		ID:                    keyID,
		ItemLevel:             1,
		Icon:                  IconKey,
		Categories:            []string{"Items.OneBlockExpedition"},
		PlayerAnimationsID:    "Item",
		BlockType: BlockType{
			DrawType:           "Model",
			Material:           "Solid",
			Opacity:            "Transparent",
			CustomModel:        keyModel,
			CustomModelTexture: []CustomModelTexture{{Texture: keyTexture, Weight: 1}},
		},
		Interactions: Interactions{
			Use: &InteractionChain{Interactions: []Interaction{{Type: InteractionExpeditionChange}}},
		},
		Recipe:     benchRecipe(categoryID, key.Craft),
		Consumable: true,
		Tags: Tags{
			Type:                            []string{TypeExpedition},
			OneBlockExpeditionTargetBlockID: []string{ident.TargetBlockID(exp)},
		},
		MaxStack: 1,
		Quality:  orDefault(key.Quality, defaultKeyQuality),
	}

	return Generated{ID: keyID, Payload: payload, Lang: lang(keyID, name, description)}
}

// BuildInputs normalizes craft ingredients into recipe inputs. An entry with
// a ResourceTypeId key always takes that branch and is dropped when the value
// is falsy; other entries need a truthy ID or ItemId.
func BuildInputs(craft []expedition.CraftIngredient) []RecipeInput {
	inputs := []RecipeInput{}
	for _, in := range craft {
		qty := max(in.Quantity, 1)
		if in.HasResourceTypeID {
			if in.ResourceTypeID != nil {
				inputs = append(inputs, RecipeInput{ResourceTypeID: in.ResourceTypeID, Quantity: qty})
			}
			continue
		}
		if in.ItemID != nil {
			inputs = append(inputs, RecipeInput{ItemID: in.ItemID, Quantity: qty})
		}
	}
	return inputs
}

func benchRecipe(categoryID string, craft []expedition.CraftIngredient) Recipe {
	return Recipe{
		Input:          BuildInputs(craft),
		OutputQuantity: 1,
		BenchRequirement: []BenchRequirement{{
			Type:       "Crafting",
			Categories: []string{categoryID},
			ID:         BenchID,
		}},
	}
}

func recipeIconProperties() IconProperties {
	return IconProperties{
		Scale:       0.76,
		Rotation:    []int{135, 135, 0},
		Translation: []int{-1, 5},
	}
}

func translation(itemID string) TranslationProperties {
	return TranslationProperties{
		Name:        ident.ServerKey(ident.ItemNameKey(itemID)),
		Description: ident.ServerKey(ident.ItemDescriptionKey(itemID)),
	}
}

func lang(itemID, name, description string) []LangEntry {
	return []LangEntry{
		{Key: ident.ItemNameKey(itemID), Value: name},
		{Key: ident.ItemDescriptionKey(itemID), Value: description},
	}
}

func nonEmpty(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
