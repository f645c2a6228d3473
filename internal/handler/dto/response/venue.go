package response

import (
	"time"

	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type VenueResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	PricePerDay string    `json:"pricePerDay"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromVenueView(rm *queries.VenueView) *VenueResponse {
	return &VenueResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Capacity:    rm.Capacity,
		PricePerDay: rm.PricePerDay,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}
