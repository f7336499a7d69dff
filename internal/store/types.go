package store

import "time"

// DateLayout is the wire format for all dates in this API.
const DateLayout = "2006-01-02"

// CustomerParams carries the writable fields of a customer. RoomNumber and
// DueDate are optional; when present they drive the room find-or-create
// and the due upsert respectively.
type CustomerParams struct {
	Name         string
	Phone        string
	FatherPhone  string
	College      string
	Course       string
	CheckinDate  time.Time
	CheckoutDate *time.Time
	RoomNumber   string
	DueDate      *time.Time
}

// CustomerRow is a customer listing entry with its joined room number and
// due date. Room and DueDate are nil when the customer has no room or due.
type CustomerRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	FatherPhone string  `json:"fatherPhone"`
	College     string  `json:"college"`
	Course      string  `json:"course"`
	CheckinDate string  `json:"checkinDate"`
	Room        *string `json:"room"`
	DueDate     *string `json:"dueDate"`
}

// DueRow is a dues listing entry joined with the owning customer and room.
type DueRow struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Room    string  `json:"room"`
	Amount  float64 `json:"amount"`
	DueDate string  `json:"dueDate"`
	Paid    bool    `json:"paid"`
}

// Guest is a customer as shown in the per-room occupancy listing.
type Guest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	CheckIn string `json:"checkIn"`
}

// RoomWithGuests is a room together with its current occupants. Vacant
// rooms carry an empty (never nil) guest list.
type RoomWithGuests struct {
	RoomNo string  `json:"roomNo"`
	Guests []Guest `json:"guests"`
}
