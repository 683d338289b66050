package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogPlans keeps only shared, non-custom plans
type CatalogPlans struct{}

func (s CatalogPlans) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_custom = ? AND owner_id IS NULL", false)
}

// VisiblePlans keeps catalog plans plus custom plans owned by the user
type VisiblePlans struct {
	UserId uuid.UUID
}

func (s VisiblePlans) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id IS NULL OR owner_id = ?", s.UserId)
}

// OwnedBy filters records belonging to a user
type OwnedBy struct {
	UserId uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}
