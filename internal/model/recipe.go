package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is one entry of a recipe's ingredient list.
// Quantity is free text ("2", "1/2", "a pinch"), not a number.
type Ingredient struct {
	Item     string `json:"item"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// Step is one entry of a recipe's ordered step list. Order is always the
// 1-based position assigned at write time, never a client-supplied value.
type Step struct {
	Order       int    `json:"order"`
	Description string `json:"description"`
}

// IngredientList stores the embedded ingredient array as a JSON column.
type IngredientList []Ingredient

// Value implements driver.Valuer.
func (l IngredientList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *IngredientList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// StepList stores the embedded step array as a JSON column.
type StepList []Step

// Value implements driver.Valuer.
func (l StepList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StepList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}

// Recipe represents a recipe owned by a user.
type Recipe struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Servings    int            `json:"servings" gorm:"not null"`
	CookingTime int            `json:"cookingTime" gorm:"not null"`
	Ingredients IngredientList `json:"ingredients" gorm:"type:json"`
	Steps       StepList       `json:"steps" gorm:"type:json"`
	Image       string         `json:"image,omitempty" gorm:"size:512"`
	UserID      uuid.UUID      `json:"user_id" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time      `json:"created_at"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
