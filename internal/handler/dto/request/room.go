package request

import (
	"hotel-backoffice/internal/usecase/commands"
)

type CreateRoomRequest struct {
	RoomNumber  string `json:"room_number" binding:"required,max=50"`
	RoomType    string `json:"room_type" binding:"required,oneof=Standard Deluxe"`
	PricePerDay string `json:"price_per_day" binding:"required"`
}

func (r CreateRoomRequest) ToInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{
		RoomNumber:  r.RoomNumber,
		RoomType:    r.RoomType,
		PricePerDay: r.PricePerDay,
	}
}

type UpdateRoomRequest struct {
	RoomNumber  *string `json:"room_number" binding:"omitempty,max=50"`
	RoomType    *string `json:"room_type" binding:"omitempty,oneof=Standard Deluxe"`
	PricePerDay *string `json:"price_per_day" binding:"omitempty"`
}

func (r UpdateRoomRequest) ToInput() commands.UpdateRoomInput {
	return commands.UpdateRoomInput{
		RoomNumber:  r.RoomNumber,
		RoomType:    r.RoomType,
		PricePerDay: r.PricePerDay,
	}
}
