package board

import (
	_ "embed"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"github.com/DedS3t/monopoly-simulator/app/models"
)

//go:embed properties.json
var propertiesJSON []byte

var (
	loadOnce   sync.Once
	properties []models.Property
)

// LoadProperties returns the standard board in position order. The table is
// embedded in the binary so a parse failure is a build defect and panics.
func LoadProperties() []models.Property {
	loadOnce.Do(func() {
		if err := json.Unmarshal(propertiesJSON, &properties); err != nil {
			panic(err)
		}
		sort.Slice(properties, func(i, j int) bool {
			return properties[i].Position < properties[j].Position
		})
	})
	out := make([]models.Property, len(properties))
	copy(out, properties)
	return out
}

// ErrNotFound is returned when no property matches a lookup.
var ErrNotFound = errors.New("property not found")

// GetByPos finds the property at pos on the standard board.
func GetByPos(pos int) (models.Property, error) {
	props := LoadProperties()
	if pos < 0 || pos >= len(props) {
		return models.Property{}, ErrNotFound
	}
	return props[pos], nil
}

// GetByName finds a property by its exact name.
func GetByName(name string) (models.Property, error) {
	for _, property := range LoadProperties() {
		if property.Name == name {
			return property, nil
		}
	}
	return models.Property{}, ErrNotFound
}
