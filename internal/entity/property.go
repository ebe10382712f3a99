package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
)

// Property represents a property record for data transfer between layers.
type Property struct {
	ID            uuid.UUID               `json:"id"`
	Name          string                  `json:"name"`
	PropertyClass constants.PropertyClass `json:"property_class"`
	CreatedAt     time.Time               `json:"created_at"`
}
