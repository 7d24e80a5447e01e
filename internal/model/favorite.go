package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite links a user to a recipe. The composite unique index is the
// storage-level guarantee that a user favorites a recipe at most once;
// application-level existence checks are only a fast path.
type Favorite struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_user_recipe"`
	RecipeID  uuid.UUID `json:"recipe_id" gorm:"type:char(36);not null;uniqueIndex:idx_user_recipe"`
	CreatedAt time.Time `json:"created_at"`

	Recipe *Recipe `json:"-" gorm:"foreignKey:RecipeID"`
}

// BeforeCreate sets UUID before creating the record.
func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
