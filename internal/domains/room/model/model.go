package model

import "inn/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldFloor        = "floor"
	FieldRoomNumber   = "room_number"
	FieldType         = "type"
	FieldPrice        = "price"
	FieldBreakfast    = "breakfast"
	FieldImage        = "image"
	FieldAvailability = "availability"
	FieldActive       = "active"
)

// Room is a catalog entry. Availability here is the stored base status;
// the effective status also accounts for whichever confirmed booking
// covers today and is computed in the service layer.
type Room struct {
	ID           string `db:"id"`
	Floor        int    `db:"floor"`
	RoomNumber   string `db:"room_number"`
	Type         string `db:"type"`
	Price        int64  `db:"price"`
	Breakfast    bool   `db:"breakfast"`
	Image        string `db:"image"`
	Availability string `db:"availability"`
	Active       bool   `db:"active"`
	model.Metadata
}
