package infrastructure

import (
	"fmt"

	"megabot/domain/entities"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

// catalogFile is the on-disk shape of an item catalog override file:
//
//	[items]
//	golden_padlock = "security"
//	smoke_bomb = "consumable"
type catalogFile struct {
	Items map[string]string `toml:"items"`
}

// LoadItemCatalog returns the default catalog merged with the overrides in path.
// An empty path returns the default catalog.
func LoadItemCatalog(path string) (*entities.ItemCatalog, error) {
	if path == "" {
		return entities.NewDefaultItemCatalog(), nil
	}

	var file catalogFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to read item catalog %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.WithFields(log.Fields{
			"path": path,
			"keys": undecoded,
		}).Warn("Ignoring unknown keys in item catalog")
	}

	overrides := make(map[string]entities.ItemType, len(file.Items))
	for name, rawType := range file.Items {
		itemType := entities.ItemType(rawType)
		if !itemType.IsValid() {
			return nil, fmt.Errorf("item %q in %s has unknown type %q", name, path, rawType)
		}
		overrides[name] = itemType
	}

	log.WithFields(log.Fields{
		"path":      path,
		"overrides": len(overrides),
	}).Info("Loaded item catalog overrides")

	return entities.NewItemCatalog(overrides), nil
}
