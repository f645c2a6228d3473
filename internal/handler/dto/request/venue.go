package request

import (
	"hotel-backoffice/internal/usecase/commands"
)

type CreateVenueRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	PricePerDay string `json:"price_per_day" binding:"required"`
}

func (r CreateVenueRequest) ToInput() commands.CreateVenueInput {
	return commands.CreateVenueInput{
		Name:        r.Name,
		Capacity:    r.Capacity,
		PricePerDay: r.PricePerDay,
	}
}

type UpdateVenueRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=1"`
	PricePerDay *string `json:"price_per_day" binding:"omitempty"`
}

func (r UpdateVenueRequest) ToInput() commands.UpdateVenueInput {
	return commands.UpdateVenueInput{
		Name:        r.Name,
		Capacity:    r.Capacity,
		PricePerDay: r.PricePerDay,
	}
}
