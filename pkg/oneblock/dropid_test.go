package oneblock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ereliastudio/oneblock-tools/pkg/oneblock"
)

func TestParseDropID(t *testing.T) {
	tests := []struct {
		raw  string
		want oneblock.DropID
	}{
		{"entity:Boar", oneblock.DropID{Kind: oneblock.DropEntity, ID: "Boar"}},
		{" NPC: Goblin ", oneblock.DropID{Kind: oneblock.DropEntity, ID: "Goblin"}},
		{"mob:Spider", oneblock.DropID{Kind: oneblock.DropEntity, ID: "Spider"}},
		{"item:Rock_Stone", oneblock.DropID{Kind: oneblock.DropItem, ID: "Rock_Stone"}},
		{"Rock_Stone", oneblock.DropID{Kind: oneblock.DropItem, ID: "Rock_Stone"}},
		{"", oneblock.DropID{Kind: oneblock.DropItem, ID: ""}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, oneblock.ParseDropID(tt.raw), "raw %q", tt.raw)
	}
	assert.True(t, oneblock.ParseDropID("entity:x").IsEntity())
}

func TestEntityDropID(t *testing.T) {
	assert.Equal(t, "entity:Boar", oneblock.EntityDropID(" Boar "))
	assert.Empty(t, oneblock.EntityDropID("  "))
}

func TestExpeditionBlockIDs(t *testing.T) {
	assert.Equal(t, "OneBlock_Block_Forest", oneblock.BlockIDForExpedition("Forest"))
	assert.Empty(t, oneblock.BlockIDForExpedition(""))

	assert.Equal(t, "Forest", oneblock.ExpeditionFromBlockID("OneBlock_Block_Forest"))
	assert.Equal(t, oneblock.DefaultExpedition, oneblock.ExpeditionFromBlockID("OneBlock_Block_"))
	assert.Equal(t, oneblock.DefaultExpedition, oneblock.ExpeditionFromBlockID("Rock_Stone"))
}

func TestExpeditionFromKeyItemID(t *testing.T) {
	name, ok := oneblock.ExpeditionFromKeyItemID("OneBlock_Expedition_Deep Cave_Key")
	assert.True(t, ok)
	assert.Equal(t, "Deep Cave", name)

	_, ok = oneblock.ExpeditionFromKeyItemID("OneBlock_Expedition__Key")
	assert.False(t, ok)

	_, ok = oneblock.ExpeditionFromKeyItemID("OneBlock_Unlock_Ore_Iron")
	assert.False(t, ok)
}
