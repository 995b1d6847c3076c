package dto

import "github.com/devansh2311/deskmate/internal/models"

type BookDeskRequest struct {
	DeskID      uint   `json:"desk_id" validate:"required"`
	BookerName  string `json:"booker_name" validate:"required,max=100"`
	Department  string `json:"department" validate:"required,max=50"`
	Designation string `json:"designation" validate:"max=50"`
	Contact     string `json:"contact" validate:"max=20"`
	Email       string `json:"email" validate:"required,email"`
	IsForFriend bool   `json:"is_for_friend"`
	FriendName  string `json:"friend_name" validate:"required_if=IsForFriend true,max=100"`
	FriendEmail string `json:"friend_email" validate:"omitempty,email"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
}

func (r *BookDeskRequest) ToModel() *models.DeskBooking {
	return &models.DeskBooking{
		DeskID:      r.DeskID,
		BookerName:  r.BookerName,
		Department:  r.Department,
		Designation: r.Designation,
		Contact:     r.Contact,
		Email:       r.Email,
		IsForFriend: r.IsForFriend,
		FriendName:  r.FriendName,
		FriendEmail: r.FriendEmail,
		BookingDate: r.BookingDate,
	}
}

type BookMeetingRoomRequest struct {
	MeetingRoomID uint   `json:"meeting_room_id" validate:"required"`
	BookerName    string `json:"booker_name" validate:"required,max=100"`
	Designation   string `json:"designation" validate:"max=50"`
	Contact       string `json:"contact" validate:"max=20"`
	Email         string `json:"email" validate:"required,email"`
	BookingDate   string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime       string `json:"end_time" validate:"required,datetime=15:04"`
}

func (r *BookMeetingRoomRequest) ToModel() *models.MeetingRoomBooking {
	return &models.MeetingRoomBooking{
		MeetingRoomID: r.MeetingRoomID,
		BookerName:    r.BookerName,
		Designation:   r.Designation,
		Contact:       r.Contact,
		Email:         r.Email,
		BookingDate:   r.BookingDate,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
	}
}

type CreateDeskRequest struct {
	DeskNumber string `json:"desk_number" validate:"required,max=50"`
	Department string `json:"department" validate:"max=50"`
	XPosition  int    `json:"x_position"`
	YPosition  int    `json:"y_position"`
	Floor      int    `json:"floor"`
}

func (r *CreateDeskRequest) ToModel() *models.Desk {
	return &models.Desk{
		DeskNumber: r.DeskNumber,
		Department: r.Department,
		XPosition:  r.XPosition,
		YPosition:  r.YPosition,
		Floor:      r.Floor,
		Status:     models.StatusVacant,
	}
}

type CreateMeetingRoomRequest struct {
	RoomNumber         string `json:"room_number" validate:"required,max=50"`
	RoomName           string `json:"room_name" validate:"required,max=100"`
	Capacity           int    `json:"capacity" validate:"required,gt=0"`
	HasProjector       bool   `json:"has_projector"`
	HasVideoConference bool   `json:"has_video_conference"`
}

func (r *CreateMeetingRoomRequest) ToModel() *models.MeetingRoom {
	return &models.MeetingRoom{
		RoomNumber:         r.RoomNumber,
		RoomName:           r.RoomName,
		Capacity:           r.Capacity,
		HasProjector:       r.HasProjector,
		HasVideoConference: r.HasVideoConference,
		Status:             models.StatusVacant,
	}
}
