// File: internal/village/model.go
package village

import (
	"time"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
)

// Village represents a locality within a district. Villages are the finest
// location granularity a listing can be attached to.
type Village struct {
	common.BaseModel
	Name     string `gorm:"type:varchar(100);not null;index:idx_villages_name"`
	District string `gorm:"type:varchar(100);not null;index:idx_villages_district"`
	Order    int    `gorm:"column:sort_order;not null;default:0"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName specifies the table name for the Village model.
func (Village) TableName() string {
	return "villages"
}

// --- DTOs ---

// VillageResponse defines the structure for village data sent in API responses.
type VillageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	District  string    `json:"district"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToVillageResponse converts a Village model to a VillageResponse DTO.
func ToVillageResponse(v *Village) VillageResponse {
	return VillageResponse{
		ID:        v.ID,
		Name:      v.Name,
		District:  v.District,
		Order:     v.Order,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// DistrictGroup is one district with its villages in display order.
type DistrictGroup struct {
	District string            `json:"district"`
	Villages []VillageResponse `json:"villages"`
}

// VillageListResponse is the payload for the public village lookup: the flat
// result set plus the same villages grouped per district.
type VillageListResponse struct {
	Villages []VillageResponse `json:"villages"`
	Grouped  []DistrictGroup   `json:"grouped"`
}

// AdminVillageRequest for admin creating or updating villages.
type AdminVillageRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	District string `json:"district" binding:"required,max=100"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// SearchQuery captures the public lookup filters.
type SearchQuery struct {
	District string `form:"district"`
	Search   string `form:"search"`
}
