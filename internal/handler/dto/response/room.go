package response

import (
	"time"

	"hotel-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	RoomNumber  string    `json:"roomNumber"`
	RoomType    string    `json:"roomType"`
	PricePerDay string    `json:"pricePerDay"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:          rm.ID,
		RoomNumber:  rm.RoomNumber,
		RoomType:    rm.RoomType,
		PricePerDay: rm.PricePerDay,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}
