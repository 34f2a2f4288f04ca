package dto

import (
	"mime/multipart"

	"inn/internal/domains/room/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Floor        int                   `json:"floor"        validate:"required,min=0"`
	RoomNumber   string                `json:"room_number"  validate:"required,max=10"`
	Type         string                `json:"type"         validate:"required,oneof=normal premium"`
	Price        int64                 `json:"price"        validate:"required,min=0"`
	Breakfast    *bool                 `json:"breakfast"    validate:"omitempty"`
	Availability string                `json:"availability" validate:"omitempty,oneof=available occupied maintenance"`
	Image        *multipart.FileHeader `json:"image"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
	Active       *bool                 `json:"active"       validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	breakfast := false
	if c.Breakfast != nil {
		breakfast = *c.Breakfast
	}

	availability := c.Availability
	if availability == "" {
		availability = constant.AvailabilityAvailable
	}

	return model.Room{
		ID:           uuid.NewString(),
		Floor:        c.Floor,
		RoomNumber:   c.RoomNumber,
		Type:         c.Type,
		Price:        c.Price,
		Breakfast:    breakfast,
		Image:        imageURL,
		Availability: availability,
		Active:       active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Floor        *int                  `db:"floor"        json:"floor"        validate:"omitempty,min=0"`
	RoomNumber   string                `db:"room_number"  json:"room_number"  validate:"omitempty,max=10"`
	Type         string                `db:"type"         json:"type"         validate:"omitempty,oneof=normal premium"`
	Price        *int64                `db:"price"        json:"price"        validate:"omitempty,min=0"`
	Breakfast    *bool                 `db:"breakfast"    json:"breakfast"    validate:"omitempty"`
	Availability string                `db:"availability" json:"availability" validate:"omitempty,oneof=available occupied maintenance"`
	Image        *multipart.FileHeader `json:"image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
	Active       *bool                 `db:"active"       json:"active"       validate:"omitempty"`
}

type RoomResponse struct {
	ID           string `json:"id"`
	Floor        int    `json:"floor"`
	RoomNumber   string `json:"room_number"`
	Type         string `json:"type"`
	Price        int64  `json:"price"`
	Breakfast    bool   `json:"breakfast"`
	Image        string `json:"image"`
	Availability string `json:"availability"`
	Active       bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Floor = model.Floor
	r.RoomNumber = model.RoomNumber
	r.Type = model.Type
	r.Price = model.Price
	r.Breakfast = model.Breakfast
	r.Image = model.Image
	r.Availability = model.Availability
	r.Active = model.Active
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
