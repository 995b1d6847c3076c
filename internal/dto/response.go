package dto

import (
	"time"

	"github.com/devansh2311/deskmate/internal/models"
)

type DeskBookingResponse struct {
	ID          uint      `json:"id"`
	DeskID      uint      `json:"desk_id"`
	DeskNumber  string    `json:"desk_number,omitempty"`
	BookerName  string    `json:"booker_name"`
	Department  string    `json:"department"`
	Designation string    `json:"designation,omitempty"`
	Contact     string    `json:"contact,omitempty"`
	Email       string    `json:"email"`
	IsForFriend bool      `json:"is_for_friend"`
	FriendName  string    `json:"friend_name,omitempty"`
	FriendEmail string    `json:"friend_email,omitempty"`
	BookingDate string    `json:"booking_date"`
	EmailSent   bool      `json:"email_sent"`
	CreatedAt   time.Time `json:"created_at"`
}

type MeetingRoomBookingResponse struct {
	ID            uint      `json:"id"`
	MeetingRoomID uint      `json:"meeting_room_id"`
	RoomNumber    string    `json:"room_number,omitempty"`
	RoomName      string    `json:"room_name,omitempty"`
	BookerName    string    `json:"booker_name"`
	Designation   string    `json:"designation,omitempty"`
	Contact       string    `json:"contact,omitempty"`
	Email         string    `json:"email"`
	BookingDate   string    `json:"booking_date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	EmailSent     bool      `json:"email_sent"`
	CreatedAt     time.Time `json:"created_at"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToDeskBookingResponse(b *models.DeskBooking) DeskBookingResponse {
	resp := DeskBookingResponse{
		ID:          b.ID,
		DeskID:      b.DeskID,
		BookerName:  b.BookerName,
		Department:  b.Department,
		Designation: b.Designation,
		Contact:     b.Contact,
		Email:       b.Email,
		IsForFriend: b.IsForFriend,
		FriendName:  b.FriendName,
		FriendEmail: b.FriendEmail,
		BookingDate: b.BookingDate,
		EmailSent:   b.EmailSent,
		CreatedAt:   b.CreatedAt,
	}
	if b.Desk != nil {
		resp.DeskNumber = b.Desk.DeskNumber
	}
	return resp
}

func ToMeetingRoomBookingResponse(b *models.MeetingRoomBooking) MeetingRoomBookingResponse {
	resp := MeetingRoomBookingResponse{
		ID:            b.ID,
		MeetingRoomID: b.MeetingRoomID,
		BookerName:    b.BookerName,
		Designation:   b.Designation,
		Contact:       b.Contact,
		Email:         b.Email,
		BookingDate:   b.BookingDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		EmailSent:     b.EmailSent,
		CreatedAt:     b.CreatedAt,
	}
	if b.MeetingRoom != nil {
		resp.RoomNumber = b.MeetingRoom.RoomNumber
		resp.RoomName = b.MeetingRoom.RoomName
	}
	return resp
}
