package models

import "time"

type ResourceStatus string

const (
	StatusVacant ResourceStatus = "VACANT"
	StatusBooked ResourceStatus = "BOOKED"
)

// Naive local calendar dates and wall-clock times. Stored as strings so that
// range comparisons work lexicographically; no timezone handling.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Desk struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	DeskNumber         string         `gorm:"size:50;not null;uniqueIndex" json:"desk_number"`
	Department         string         `gorm:"size:50" json:"department"`
	XPosition          int            `json:"x_position"`
	YPosition          int            `json:"y_position"`
	Floor              int            `json:"floor"`
	Status             ResourceStatus `gorm:"type:varchar(20);not null;default:'VACANT'" json:"status"`
	OccupantName       *string        `gorm:"size:100" json:"occupant_name"`
	OccupantDepartment *string        `gorm:"size:50" json:"occupant_department"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type DeskBooking struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DeskID      uint      `gorm:"not null;index" json:"desk_id"`
	BookerName  string    `gorm:"size:100;not null" json:"booker_name"`
	Department  string    `gorm:"size:50;not null" json:"department"`
	Designation string    `gorm:"size:50" json:"designation"`
	Contact     string    `gorm:"size:20" json:"contact"`
	Email       string    `gorm:"size:100;not null" json:"email"`
	IsForFriend bool      `gorm:"not null;default:false" json:"is_for_friend"`
	FriendName  string    `gorm:"size:100" json:"friend_name,omitempty"`
	FriendEmail string    `gorm:"size:100" json:"friend_email,omitempty"`
	BookingDate string    `gorm:"size:10;not null" json:"booking_date"`
	EmailSent   bool      `gorm:"not null;default:false" json:"email_sent"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Desk *Desk `gorm:"foreignKey:DeskID" json:"desk,omitempty"`
}
