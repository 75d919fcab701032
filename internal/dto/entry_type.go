package dto

import (
	"time"

	"github.com/fadee/my_expenses_app/internal/core/domain"
)

// CreateEntryTypeRequest defines the data needed to create a classification.
type CreateEntryTypeRequest struct {
	Name     string               `json:"name" binding:"required,min=2,max=30"`
	Category domain.EntryCategory `json:"category" binding:"required,oneof=income expense"`
}

// EntryTypeResponse defines the data returned for an entry type.
type EntryTypeResponse struct {
	TypeID    string               `json:"typeID"`
	Name      string               `json:"name"`
	Category  domain.EntryCategory `json:"category"`
	CreatedAt time.Time            `json:"createdAt"`
}

// ListEntryTypesParams defines query parameters for listing types.
type ListEntryTypesParams struct {
	Limit  int `form:"limit,default=30"`
	Offset int `form:"offset,default=0"`
}

// ToEntryTypeResponse converts a domain.EntryType to an EntryTypeResponse DTO
func ToEntryTypeResponse(t *domain.EntryType) EntryTypeResponse {
	return EntryTypeResponse{
		TypeID:    t.TypeID,
		Name:      t.Name,
		Category:  t.Category,
		CreatedAt: t.CreatedAt,
	}
}

// ToEntryTypeResponses converts a slice of domain entry types to DTOs
func ToEntryTypeResponses(types []domain.EntryType) []EntryTypeResponse {
	res := make([]EntryTypeResponse, len(types))
	for i := range types {
		res[i] = ToEntryTypeResponse(&types[i])
	}
	return res
}
