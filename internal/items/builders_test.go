package items_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/ereliastudio/oneblock-tools/internal/expedition"
	"github.com/ereliastudio/oneblock-tools/internal/items"
	"github.com/ereliastudio/oneblock-tools/internal/jsonfile"
)

const forestCategory = "OneBlock_Upgrader_Expedition_Forest"

func encode(t *testing.T, v any) gjson.Result {
	t.Helper()
	data, err := jsonfile.Encode(v)
	require.NoError(t, err)
	return gjson.ParseBytes(data)
}

func TestBuildUnlockEntity(t *testing.T) {
	gen := items.BuildUnlock("Forest", forestCategory, expedition.Unlock{
		ID:     "entity:wolf",
		Name:   "Wolf Tag",
		Weight: 1,
	})

	assert.Equal(t, "OneBlock_Unlock_Entity_wolf", gen.ID)

	doc := encode(t, gen.Payload)
	assert.Equal(t, "OneBlock_Unlock_Entity_wolf", doc.Get("Id").String())
	assert.Equal(t, `["wolf"]`, compact(t, doc.Get("Tags.OneBlockUnlockEntityId").Raw))
	assert.False(t, doc.Get("Tags.OneBlockUnlockDropId").Exists())
	assert.Equal(t, `["OneBlock_Unlock_Consumable"]`, compact(t, doc.Get("Tags.Type").Raw))
	assert.Equal(t, `["Forest"]`, compact(t, doc.Get("Tags.OneBlockUnlockExpedition").Raw))
	assert.Equal(t, `["1"]`, compact(t, doc.Get("Tags.OneBlockUnlockWeight").Raw))
	assert.Equal(t, "Uncommon", doc.Get("Quality").String())
	assert.Equal(t, "server.items.OneBlock_Unlock_Entity_wolf.name", doc.Get("TranslationProperties.Name").String())
	assert.Equal(t, "oneblock_unlock_pool_insert", doc.Get("Interactions.Primary.Interactions.0.Type").String())
	assert.Equal(t, "oneblock_unlock_pool_insert", doc.Get("Interactions.Secondary.Interactions.0.Type").String())
	assert.Equal(t, forestCategory, doc.Get("Recipe.BenchRequirement.0.Categories.0").String())
	assert.Equal(t, "OneBlockUpgrader", doc.Get("Recipe.BenchRequirement.0.Id").String())
	assert.Equal(t, `[]`, doc.Get("Recipe.Input").Raw)
	assert.Equal(t, 0.76, doc.Get("IconProperties.Scale").Float())

	require.Len(t, gen.Lang, 2)
	assert.Equal(t, items.LangEntry{Key: "items.OneBlock_Unlock_Entity_wolf.name", Value: "Wolf Tag"}, gen.Lang[0])
	assert.Equal(t, "items.OneBlock_Unlock_Entity_wolf.description", gen.Lang[1].Key)
	assert.Equal(t, "Consume to unlock entity:wolf in your OneBlock pool.", gen.Lang[1].Value)
}

func TestBuildUnlockPlainDropFallbacks(t *testing.T) {
	gen := items.BuildUnlock("Cave", "OneBlock_Upgrader_Expedition_Cave", expedition.Unlock{
		ID:          " Ore_Iron ",
		Name:        "   ",
		Quality:     "Rare",
		Weight:      4,
		Description: "",
	})

	assert.Equal(t, "OneBlock_Unlock_Ore_Iron", gen.ID)
	doc := encode(t, gen.Payload)
	assert.Equal(t, `["Ore_Iron"]`, compact(t, doc.Get("Tags.OneBlockUnlockDropId").Raw))
	assert.False(t, doc.Get("Tags.OneBlockUnlockEntityId").Exists())
	assert.Equal(t, `["4"]`, compact(t, doc.Get("Tags.OneBlockUnlockWeight").Raw))
	assert.Equal(t, "Rare", doc.Get("Quality").String())

	assert.Equal(t, "OneBlock_Unlock_Ore_Iron", gen.Lang[0].Value)
	assert.Equal(t, "Consume to unlock Ore_Iron in your OneBlock pool.", gen.Lang[1].Value)
}

func TestBuildUnlockFieldOrder(t *testing.T) {
	gen := items.BuildUnlock("Forest", forestCategory, expedition.Unlock{ID: "stick", Weight: 1})
	doc := encode(t, gen.Payload)

	var keys []string
	doc.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	assert.Equal(t, []string{
		"TranslationProperties", "Id", "Categories", "PlayerAnimationsId", "Model", "Texture",
		"IconProperties", "Interactions", "Recipe", "Icon", "Consumable", "Tags", "ItemLevel",
		"MaxStack", "Quality",
	}, keys)
}

func TestBuildRecipeDrop(t *testing.T) {
	gen := items.BuildRecipeDrop("Cave", "Rock_Stone_Mossy", expedition.Drop{ID: "recipe:Rock_Stone_Mossy", Weight: 1})

	assert.Equal(t, "OneBlock_Recipe_Rock_Stone_Mossy", gen.ID)
	doc := encode(t, gen.Payload)

	for _, slot := range []string{"Primary", "Secondary"} {
		step := doc.Get("Interactions." + slot + ".Interactions.0")
		assert.Equal(t, "Rock_Stone_Mossy", step.Get("ItemId").String())
		assert.Equal(t, "LearnRecipe", step.Get("Type").String())
		assert.Equal(t, "ModifyInventory", step.Get("Next.Type").String())
		assert.Equal(t, int64(-1), step.Get("Next.AdjustHeldItemQuantity").Int())
	}
	assert.Equal(t, `["Recipe"]`, compact(t, doc.Get("Tags.Type").Raw))
	assert.Equal(t, items.IconRecipePage, doc.Get("Icon").String())
	assert.False(t, doc.Get("Recipe").Exists())
	assert.Equal(t, "Uncommon", doc.Get("Quality").String())

	assert.Equal(t, "OneBlock_Recipe_Rock_Stone_Mossy", gen.Lang[0].Value)
	assert.Equal(t, "Consume to learn the Rock_Stone_Mossy recipe.", gen.Lang[1].Value)
}

func TestBuildKey(t *testing.T) {
	gen := items.BuildKey("Forest", forestCategory, expedition.Craftable{
		Craft: []expedition.CraftIngredient{{ItemID: "Wood_Ash_Trunk", Quantity: 4}},
	})

	assert.Equal(t, "OneBlock_Expedition_Forest_Key", gen.ID)
	doc := encode(t, gen.Payload)
	assert.Equal(t, "Epic", doc.Get("Quality").String())
	assert.Equal(t, `["OneBlock_Expedition"]`, compact(t, doc.Get("Tags.Type").Raw))
	assert.Equal(t, `["OneBlock_Block_Forest"]`, compact(t, doc.Get("Tags.OneBlockExpeditionTargetBlockId").Raw))
	assert.Equal(t, "oneblock_expedition_change", doc.Get("Interactions.Use.Interactions.0.Type").String())
	assert.False(t, doc.Get("Interactions.Primary").Exists())
	assert.Equal(t, "Model", doc.Get("BlockType.DrawType").String())
	assert.Equal(t, `{"ItemId":"Wood_Ash_Trunk","Quantity":4}`, compact(t, doc.Get("Recipe.Input.0").Raw))

	assert.Equal(t, "OneBlock_Expedition_Forest_Key", gen.Lang[0].Value)
	assert.Equal(t, "Use this on a OneBlock to set its expedition to Forest.", gen.Lang[1].Value)
}

func TestBuildKeyExplicitID(t *testing.T) {
	gen := items.BuildKey("Forest", forestCategory, expedition.Craftable{ID: "Forest_Portal_Key", Name: "Portal", Quality: "Legendary"})
	assert.Equal(t, "Forest_Portal_Key", gen.ID)
	assert.Equal(t, "Portal", gen.Lang[0].Value)
	assert.Equal(t, "Legendary", encode(t, gen.Payload).Get("Quality").String())
}

func TestBuildInputs(t *testing.T) {
	inputs := items.BuildInputs([]expedition.CraftIngredient{
		{HasResourceTypeID: true, ResourceTypeID: "Wood", Quantity: 2},
		{HasResourceTypeID: true, ResourceTypeID: nil, ItemID: "ignored", Quantity: 1},
		{ItemID: "Rock_Stone", Quantity: 0},
		{Quantity: 5},
		{ItemID: json.Number("42"), Quantity: 3},
		{ItemID: "Rock_Stone", Quantity: 1},
	})

	assert.Equal(t, []items.RecipeInput{
		{ResourceTypeID: "Wood", Quantity: 2},
		{ItemID: "Rock_Stone", Quantity: 1},
		{ItemID: json.Number("42"), Quantity: 3},
		{ItemID: "Rock_Stone", Quantity: 1},
	}, inputs)

	assert.NotNil(t, items.BuildInputs(nil))
	assert.Empty(t, items.BuildInputs(nil))
}

func compact(t *testing.T, raw string) string {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return string(out)
}
