// Package bench rewrites the crafting categories of the OneBlock upgrader
// bench definition.
package bench

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/ereliastudio/oneblock-tools/internal/ident"
	"github.com/ereliastudio/oneblock-tools/internal/jsonfile"
)

const CategoryIcon = "Icons/CraftingCategories/ExpeditionKey.png"

var ErrNotObject = errors.New("not a JSON object")

// Category is one crafting category shown by the bench.
type Category struct {
	ID      string   `json:"Id"`
	Icon    string   `json:"Icon"`
	Name    string   `json:"Name"`
	Recipes []string `json:"Recipes"`
}

// NewCategory builds the category of an expedition listing recipes in the
// given order.
func NewCategory(expedition string, recipes []string) Category {
	if recipes == nil {
		recipes = []string{}
	}
	return Category{
		ID:      ident.BenchCategoryID(expedition),
		Icon:    CategoryIcon,
		Name:    ident.ServerKey(ident.BenchCategoryLangKey(expedition)),
		Recipes: recipes,
	}
}

// Rewrite replaces BlockType.Bench.Categories of the bench document with
// categories, creating BlockType and Bench when absent. Every other member
// is kept with its source order and value.
func Rewrite(doc gjson.Result, categories []Category) (*jsonfile.Object, error) {
	if !doc.IsObject() {
		return nil, fmt.Errorf("bench: %w", ErrNotObject)
	}
	root, ok := jsonfile.FromResult(doc).(*jsonfile.Object)
	if !ok {
		return nil, fmt.Errorf("bench: %w", ErrNotObject)
	}

	blockType, err := child(root, "BlockType")
	if err != nil {
		return nil, err
	}
	benchObj, err := child(blockType, "Bench")
	if err != nil {
		return nil, fmt.Errorf("BlockType.%w", err)
	}

	if categories == nil {
		categories = []Category{}
	}
	benchObj.Set("Categories", categories)
	return root, nil
}

func child(parent *jsonfile.Object, key string) (*jsonfile.Object, error) {
	v, ok := parent.Get(key)
	if !ok {
		obj := jsonfile.NewObject()
		parent.Set(key, obj)
		return obj, nil
	}
	obj, ok := v.(*jsonfile.Object)
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrNotObject)
	}
	return obj, nil
}
