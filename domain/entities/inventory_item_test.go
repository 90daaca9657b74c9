package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeItemName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Lucky Charm", "lucky_charm"},
		{"  PADLOCK ", "padlock"},
		{"reverse rob card", "reverse_rob_card"},
		{"already_normal", "already_normal"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeItemName(tt.input))
		})
	}
}

func TestDisplayItemName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Reverse Rob Card", DisplayItemName("reverse_rob_card"))
	assert.Equal(t, "Padlock", DisplayItemName("padlock"))
	assert.Equal(t, "Energy Drink", DisplayItemName("ENERGY_DRINK"))
	assert.Equal(t, "", DisplayItemName(""))
}

func TestItemCatalog_Classify(t *testing.T) {
	t.Parallel()

	catalog := NewDefaultItemCatalog()

	assert.Equal(t, ItemTypeSecurity, catalog.Classify("padlock"))
	assert.Equal(t, ItemTypeSecurity, catalog.Classify("Guard Dog"))
	assert.Equal(t, ItemTypeTool, catalog.Classify("lockpick"))
	assert.Equal(t, ItemTypeConsumable, catalog.Classify("loaded_dice"))
	assert.Equal(t, ItemTypeTool, catalog.Classify("mystery_box"), "unknown items are tools")
}

func TestItemCatalog_Overrides(t *testing.T) {
	t.Parallel()

	catalog := NewItemCatalog(map[string]ItemType{
		"Mystery Box": ItemTypeConsumable,
		"lockpick":    ItemTypeSecurity,
		"bogus":       ItemType("weapon"),
	})

	assert.Equal(t, ItemTypeConsumable, catalog.Classify("mystery_box"))
	assert.Equal(t, ItemTypeSecurity, catalog.Classify("lockpick"))
	assert.False(t, catalog.Contains("bogus"))
	assert.Contains(t, catalog.Names(), "mystery_box")
	assert.IsIncreasing(t, catalog.Names())
}

func TestUserData_TotalItems(t *testing.T) {
	t.Parallel()

	data := &UserData{Inventory: []*InventoryItem{
		{ItemName: "padlock", Quantity: 2},
		{ItemName: "lockpick", Quantity: 5},
	}}
	assert.Equal(t, int64(7), data.TotalItems())
	assert.Equal(t, int64(0), (&UserData{}).TotalItems())
}
