package items

import "github.com/ereliastudio/oneblock-tools/internal/jsonfile"

const (
	IconRecipe     = "Icons/ItemsGenerated/BlockUpgrade.png"
	IconKey        = "Icons/ItemsGenerated/ExpeditionKey.png"
	IconRecipePage = "Icons/ItemsGenerated/Recipe_Page.png"

	BenchID = "OneBlockUpgrader"

	recipeModel   = "Items/Consumables/Recipes/Recipe.blockymodel"
	recipeTexture = "Items/Consumables/Recipes/Recipe_Texture.png"
	keyModel      = "Blocks/Miscellaneous/Portal_Shard.blockymodel"
	keyTexture    = "Blocks/Miscellaneous/Portal_Shard_Texture.png"

	TypeUnlockConsumable = "OneBlock_Unlock_Consumable"
	TypeExpedition       = "OneBlock_Expedition"
	TypeRecipe           = "Recipe"

	InteractionUnlockPoolInsert = "oneblock_unlock_pool_insert"
	InteractionExpeditionChange = "oneblock_expedition_change"
	InteractionLearnRecipe      = "LearnRecipe"
	InteractionModifyInventory  = "ModifyInventory"

	defaultUnlockQuality = "Uncommon"
	defaultKeyQuality    = "Epic"
)

// Generated is one generated item definition with the language entries it
// needs. Lang keys are in the order they should be appended.
type Generated struct {
	ID      string
	Payload any
	Lang    []LangEntry
}

type LangEntry struct {
	Key   string
	Value string
}

type TranslationProperties struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

type IconProperties struct {
	Scale       float64 `json:"Scale"`
	Rotation    []int   `json:"Rotation"`
	Translation []int   `json:"Translation"`
}

type Interactions struct {
	Primary   *InteractionChain `json:"Primary,omitempty"`
	Secondary *InteractionChain `json:"Secondary,omitempty"`
	Use       *InteractionChain `json:"Use,omitempty"`
}

type InteractionChain struct {
	Interactions []Interaction `json:"Interactions"`
}

type Interaction struct {
	ItemID                 string       `json:"ItemId,omitempty"`
	Type                   string       `json:"Type"`
	Next                   *Interaction `json:"Next,omitempty"`
	AdjustHeldItemQuantity int          `json:"AdjustHeldItemQuantity,omitempty"`
}

type Recipe struct {
	Input            []RecipeInput      `json:"Input"`
	OutputQuantity   int                `json:"OutputQuantity"`
	BenchRequirement []BenchRequirement `json:"BenchRequirement"`
}

// RecipeInput carries exactly one of ResourceTypeID and ItemID.
type RecipeInput struct {
	ResourceTypeID jsonfile.Value `json:"ResourceTypeId,omitempty"`
	ItemID         jsonfile.Value `json:"ItemId,omitempty"`
	Quantity       int            `json:"Quantity"`
}

type BenchRequirement struct {
	Type       string   `json:"Type"`
	Categories []string `json:"Categories"`
	ID         string   `json:"Id"`
}

type Tags struct {
	Type                            []string `json:"Type"`
	OneBlockUnlockExpedition        []string `json:"OneBlockUnlockExpedition,omitempty"`
	OneBlockUnlockWeight            []string `json:"OneBlockUnlockWeight,omitempty"`
	OneBlockUnlockEntityID          []string `json:"OneBlockUnlockEntityId,omitempty"`
	OneBlockUnlockDropID            []string `json:"OneBlockUnlockDropId,omitempty"`
	OneBlockExpeditionTargetBlockID []string `json:"OneBlockExpeditionTargetBlockId,omitempty"`
}

// UnlockItem is a consumable that adds a drop to the player's pool.
type UnlockItem struct {
	TranslationProperties TranslationProperties `json:"TranslationProperties"`
	ID                    string                `json:"Id"`
	Categories            []string              `json:"Categories"`
	PlayerAnimationsID    string                `json:"PlayerAnimationsId"`
	Model                 string                `json:"Model"`
	Texture               string                `json:"Texture"`
	IconProperties        IconProperties        `json:"IconProperties"`
	Interactions          Interactions          `json:"Interactions"`
	Recipe                Recipe                `json:"Recipe"`
	Icon                  string                `json:"Icon"`
	Consumable            bool                  `json:"Consumable"`
	Tags                  Tags                  `json:"Tags"`
	ItemLevel             int                   `json:"ItemLevel"`
	MaxStack              int                   `json:"MaxStack"`
	Quality               string                `json:"Quality"`
}

// RecipeDropItem is a consumable that teaches a recipe.
type RecipeDropItem struct {
	TranslationProperties TranslationProperties `json:"TranslationProperties"`
	ID                    string                `json:"Id"`
	Categories            []string              `json:"Categories"`
	PlayerAnimationsID    string                `json:"PlayerAnimationsId"`
	Model                 string                `json:"Model"`
	Texture               string                `json:"Texture"`
	IconProperties        IconProperties        `json:"IconProperties"`
	Interactions          Interactions          `json:"Interactions"`
	Icon                  string                `json:"Icon"`
	Consumable            bool                  `json:"Consumable"`
	Tags                  Tags                  `json:"Tags"`
	ItemLevel             int                   `json:"ItemLevel"`
	MaxStack              int                   `json:"MaxStack"`
	Quality               string                `json:"Quality"`
}

type CustomModelTexture struct {
	Texture string `json:"Texture"`
	Weight  int    `json:"Weight"`
}

type BlockType struct {
	DrawType           string               `json:"DrawType"`
	Material           string               `json:"Material"`
	Opacity            string               `json:"Opacity"`
	CustomModel        string               `json:"CustomModel"`
	CustomModelTexture []CustomModelTexture `json:"CustomModelTexture"`
}

// KeyItem is the placeable item that moves a OneBlock to another expedition.
type KeyItem struct {
	TranslationProperties TranslationProperties `json:"TranslationProperties"`
	ID                    string                `json:"Id"`
	ItemLevel             int                   `json:"ItemLevel"`
	Icon                  string                `json:"Icon"`
	Categories            []string              `json:"Categories"`
	PlayerAnimationsID    string                `json:"PlayerAnimationsId"`
	BlockType             BlockType             `json:"BlockType"`
	Interactions          Interactions          `json:"Interactions"`
	Recipe                Recipe                `json:"Recipe"`
	Consumable            bool                  `json:"Consumable"`
	Tags                  Tags                  `json:"Tags"`
	MaxStack              int                   `json:"MaxStack"`
	Quality               string                `json:"Quality"`
}
