package dto

import (
	"mime/multipart"

	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomNumber    string                `json:"room_number"     validate:"required,max=20"`
	RoomType      string                `json:"room_type"       validate:"required,max=50"`
	Capacity      int                   `json:"capacity"        validate:"required,min=1"`
	PricePerNight int64                 `json:"price_per_night" validate:"required,min=0"`
	Status        string                `json:"status"          validate:"omitempty,oneof=Available Occupied Cleaning Maintenance"`
	Photo         *multipart.FileHeader `json:"photo"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	PhotoFile     multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, photoURL string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:            uuid.NewString(),
		RoomNumber:    c.RoomNumber,
		RoomType:      c.RoomType,
		Capacity:      c.Capacity,
		PricePerNight: c.PricePerNight,
		Status:        status,
		Photo:         photoURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber    string                `db:"room_number"     json:"room_number"     validate:"omitempty,max=20"`
	RoomType      string                `db:"room_type"       json:"room_type"       validate:"omitempty,max=50"`
	Capacity      *int                  `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	PricePerNight *int64                `db:"price_per_night" json:"price_per_night" validate:"omitempty,min=0"`
	Status        string                `db:"status"          json:"status"          validate:"omitempty,oneof=Available Occupied Cleaning Maintenance"`
	Photo         *multipart.FileHeader `json:"photo"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	PhotoFile     multipart.File        `json:"-"`
}

type AdvanceStatusResponse struct {
	ID             string `json:"id"`
	PreviousStatus string `json:"previous_status"`
	Status         string `json:"status"`
}

type RoomResponse struct {
	ID            string `json:"id"`
	RoomNumber    string `json:"room_number"`
	RoomType      string `json:"room_type"`
	Capacity      int    `json:"capacity"`
	PricePerNight int64  `json:"price_per_night"`
	Status        string `json:"status"`
	Photo         string `json:"photo"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Capacity = model.Capacity
	r.PricePerNight = model.PricePerNight
	r.Status = model.Status
	r.Photo = model.Photo
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
