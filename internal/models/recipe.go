package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultRecipeImage is used when a recipe is created without an image.
const DefaultRecipeImage = "https://images.unsplash.com/photo-1495521821757-a1efb6729352?w=800"

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// JSONBUUIDArray stores a set of user IDs in a JSONB column. Membership is
// unique; Add and Remove keep it that way.
type JSONBUUIDArray []uuid.UUID

// Value implements the driver.Valuer interface
func (a JSONBUUIDArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBUUIDArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBUUIDArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Contains reports whether id is a member of the set.
func (a JSONBUUIDArray) Contains(id uuid.UUID) bool {
	for _, v := range a {
		if v == id {
			return true
		}
	}
	return false
}

// Add inserts id if it is not already present.
func (a JSONBUUIDArray) Add(id uuid.UUID) JSONBUUIDArray {
	if a.Contains(id) {
		return a
	}
	return append(a, id)
}

// Remove deletes id if present.
func (a JSONBUUIDArray) Remove(id uuid.UUID) JSONBUUIDArray {
	for i, v := range a {
		if v == id {
			return append(a[:i], a[i+1:]...)
		}
	}
	return a
}

type Recipe struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"-"`
	Title        string           `gorm:"size:255;not null" json:"title"`
	Description  string           `gorm:"type:text;not null" json:"description"`
	Cuisine      string           `gorm:"size:100;not null" json:"cuisine"`
	Image        string           `gorm:"size:255" json:"image"`
	Ingredients  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions string           `gorm:"type:text;not null" json:"instructions"`
	PrepTime     string           `gorm:"size:50;not null" json:"prepTime"`
	Servings     int              `gorm:"not null" json:"servings"`
	ServingsMax  *int             `json:"servingsMax"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"-"`
	LikedBy      JSONBUUIDArray   `gorm:"type:jsonb;not null;default:'[]'" json:"-"`
	SavedBy      JSONBUUIDArray   `gorm:"type:jsonb;not null;default:'[]'" json:"-"`
}

// BeforeCreate assigns the recipe ID so the same model works on drivers
// without gen_random_uuid().
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Image == "" {
		r.Image = DefaultRecipeImage
	}
	return nil
}
