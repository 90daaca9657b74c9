package entities

import "sort"

// ItemCatalog maps normalized item names to their classification
type ItemCatalog struct {
	items map[string]ItemType
}

// defaultCatalogItems is the built-in classification table
var defaultCatalogItems = map[string]ItemType{
	"padlock":            ItemTypeSecurity,
	"alarm_system":       ItemTypeSecurity,
	"guard_dog":          ItemTypeSecurity,
	"reverse_rob_card":   ItemTypeSecurity,
	"lockpick":           ItemTypeTool,
	"lucky_charm":        ItemTypeConsumable,
	"briefcase":          ItemTypeConsumable,
	"energy_drink":       ItemTypeConsumable,
	"diamond_multiplier": ItemTypeConsumable,
	"loaded_dice":        ItemTypeConsumable,
}

// NewDefaultItemCatalog returns the built-in catalog
func NewDefaultItemCatalog() *ItemCatalog {
	return NewItemCatalog(nil)
}

// NewItemCatalog returns the built-in catalog with the given entries added or overridden.
// Override keys are normalized; entries with an unknown type are ignored.
func NewItemCatalog(overrides map[string]ItemType) *ItemCatalog {
	items := make(map[string]ItemType, len(defaultCatalogItems)+len(overrides))
	for name, itemType := range defaultCatalogItems {
		items[name] = itemType
	}
	for name, itemType := range overrides {
		if !itemType.IsValid() {
			continue
		}
		items[NormalizeItemName(name)] = itemType
	}
	return &ItemCatalog{items: items}
}

// Classify returns the type of the named item; unknown items are tools
func (c *ItemCatalog) Classify(itemName string) ItemType {
	if itemType, ok := c.items[NormalizeItemName(itemName)]; ok {
		return itemType
	}
	return ItemTypeTool
}

// Contains reports whether the item is a catalog entry
func (c *ItemCatalog) Contains(itemName string) bool {
	_, ok := c.items[NormalizeItemName(itemName)]
	return ok
}

// Names returns all catalog item names in sorted order
func (c *ItemCatalog) Names() []string {
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
