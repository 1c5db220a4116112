// File: internal/category/model.go
package category

import (
	"time"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
)

// Category represents the category model in the database. Categories form a
// tree through ParentID; top-level categories have a nil parent.
type Category struct {
	common.BaseModel
	Name               string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_name,unique"`
	Slug               string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_slug,unique"`
	Type               string     `gorm:"type:varchar(50);not null;default:'service'"`
	ParentID           *uuid.UUID `gorm:"type:uuid"`
	Parent             *Category  `gorm:"foreignKey:ParentID;references:ID"`
	Children           []Category `gorm:"foreignKey:ParentID"`
	ActiveListingCount int        `gorm:"column:active_listing_count;->;-:migration"` // computed in queries
}

// TableName specifies the table name for the Category model.
func (Category) TableName() string {
	return "categories"
}

// --- DTOs ---

// CategoryResponse defines the structure for category data sent in API responses.
type CategoryResponse struct {
	ID                 uuid.UUID          `json:"id"`
	Name               string             `json:"name"`
	Slug               string             `json:"slug"`
	Type               string             `json:"type"`
	ParentID           *uuid.UUID         `json:"parent_id,omitempty"`
	ActiveListingCount int                `json:"active_listing_count"`
	Children           []CategoryResponse `json:"children,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// ToCategoryResponse converts a Category model to a CategoryResponse DTO.
func ToCategoryResponse(category *Category) CategoryResponse {
	var childDTOs []CategoryResponse
	if len(category.Children) > 0 {
		childDTOs = make([]CategoryResponse, len(category.Children))
		for i, child := range category.Children {
			childDTOs[i] = ToCategoryResponse(&child)
		}
	}
	return CategoryResponse{
		ID:                 category.ID,
		Name:               category.Name,
		Slug:               category.Slug,
		Type:               category.Type,
		ParentID:           category.ParentID,
		ActiveListingCount: category.ActiveListingCount,
		Children:           childDTOs,
		CreatedAt:          category.CreatedAt,
		UpdatedAt:          category.UpdatedAt,
	}
}

// AdminCreateCategoryRequest for admin creating or updating categories.
type AdminCreateCategoryRequest struct {
	Name     string     `json:"name" binding:"required,max=100"`
	Slug     string     `json:"slug,omitempty" binding:"omitempty,max=100"`
	Type     string     `json:"type,omitempty" binding:"omitempty,max=50"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}
