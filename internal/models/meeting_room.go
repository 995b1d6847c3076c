package models

import "time"

// MeetingRoom.Status is a denormalized cache. Bookings never write it; read
// paths recompute it from the room's bookings (see MeetingRoomService).
type MeetingRoom struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	RoomNumber         string         `gorm:"size:50;not null;uniqueIndex" json:"room_number"`
	RoomName           string         `gorm:"size:100;not null" json:"room_name"`
	Capacity           int            `gorm:"not null" json:"capacity"`
	HasProjector       bool           `gorm:"not null;default:false" json:"has_projector"`
	HasVideoConference bool           `gorm:"not null;default:false" json:"has_video_conference"`
	Status             ResourceStatus `gorm:"type:varchar(20);not null;default:'VACANT'" json:"status"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type MeetingRoomBooking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	MeetingRoomID uint      `gorm:"not null;index" json:"meeting_room_id"`
	BookerName    string    `gorm:"size:100;not null" json:"booker_name"`
	Designation   string    `gorm:"size:50" json:"designation"`
	Contact       string    `gorm:"size:20" json:"contact"`
	Email         string    `gorm:"size:100;not null" json:"email"`
	BookingDate   string    `gorm:"size:10;not null" json:"booking_date"`
	StartTime     string    `gorm:"size:5;not null" json:"start_time"`
	EndTime       string    `gorm:"size:5;not null" json:"end_time"`
	EmailSent     bool      `gorm:"not null;default:false" json:"email_sent"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	MeetingRoom *MeetingRoom `gorm:"foreignKey:MeetingRoomID" json:"meeting_room,omitempty"`
}
