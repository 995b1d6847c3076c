package service

import (
	"context"
	"log"
	"time"

	"github.com/devansh2311/deskmate/internal/models"
	"github.com/devansh2311/deskmate/internal/notifier"
	"github.com/devansh2311/deskmate/internal/repository"
	"github.com/devansh2311/deskmate/pkg/rabbitmq"
	"gorm.io/gorm"
)

type MeetingRoomService interface {
	GetAllMeetingRooms(ctx context.Context) ([]models.MeetingRoom, error)
	GetMeetingRoomsByStatus(ctx context.Context, status models.ResourceStatus) ([]models.MeetingRoom, error)
	GetMeetingRoomByID(ctx context.Context, id uint) (*models.MeetingRoom, error)
	GetMeetingRoomByNumber(ctx context.Context, roomNumber string) (*models.MeetingRoom, error)
	SearchMeetingRoomsByName(ctx context.Context, name string) ([]models.MeetingRoom, error)
	CreateMeetingRoom(ctx context.Context, room *models.MeetingRoom) error
	UpdateMeetingRoom(ctx context.Context, room *models.MeetingRoom) error
	DeleteMeetingRoom(ctx context.Context, id uint) error

	BookMeetingRoom(ctx context.Context, booking *models.MeetingRoomBooking) (*models.MeetingRoomBooking, error)
	CancelBooking(ctx context.Context, bookingID uint) error
	IsRoomAvailable(ctx context.Context, roomID uint, date, startTime, endTime string) bool

	RoomStatusForDate(ctx context.Context, room *models.MeetingRoom, date string) models.ResourceStatus
	RoomStatusForDateTime(ctx context.Context, room *models.MeetingRoom, date, timeOfDay string) models.ResourceStatus

	GetBookingsByRoom(ctx context.Context, roomID uint) ([]models.MeetingRoomBooking, error)
	GetBookingsByDate(ctx context.Context, date string) ([]models.MeetingRoomBooking, error)
	GetBookingsByEmail(ctx context.Context, email string) ([]models.MeetingRoomBooking, error)
}

type meetingRoomService struct {
	roomRepo    repository.MeetingRoomRepository
	bookingRepo repository.MeetingRoomBookingRepository
	notifier    notifier.Notifier
	publisher   *rabbitmq.Publisher
	now         func() time.Time
}

func NewMeetingRoomService(
	roomRepo repository.MeetingRoomRepository,
	bookingRepo repository.MeetingRoomBookingRepository,
	n notifier.Notifier,
	publisher *rabbitmq.Publisher,
) MeetingRoomService {
	return &meetingRoomService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		notifier:    n,
		publisher:   publisher,
		now:         time.Now,
	}
}

// BookMeetingRoom books a room for a date and time interval. The overlap
// check runs in one transaction with the room row locked, so two concurrent
// requests for overlapping slots cannot both succeed. The room's stored
// status is never written here; status is derived from bookings at read time.
func (s *meetingRoomService) BookMeetingRoom(ctx context.Context, booking *models.MeetingRoomBooking) (*models.MeetingRoomBooking, error) {
	err := s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, booking.MeetingRoomID)
		if err != nil {
			return ErrRoomNotFound
		}

		overlapping, err := s.bookingRepo.FindOverlapping(ctx, tx,
			room.ID, booking.BookingDate, booking.StartTime, booking.EndTime)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return ErrRoomAlreadyBooked
		}

		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}

		booking.MeetingRoom = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, booking)

	if s.publisher != nil {
		if err := s.publisher.Publish(rabbitmq.KeyRoomBooked, booking); err != nil {
			log.Printf("[MeetingRoomService] failed to publish booking event for booking %d: %v", booking.ID, err)
		}
	}

	return booking, nil
}

func (s *meetingRoomService) sendConfirmation(ctx context.Context, booking *models.MeetingRoomBooking) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.SendRoomConfirmation(booking); err != nil {
		log.Printf("[MeetingRoomService] failed to send confirmation for booking %d: %v", booking.ID, err)
		return
	}

	booking.EmailSent = true
	if err := s.bookingRepo.MarkEmailSent(ctx, booking.ID); err != nil {
		log.Printf("[MeetingRoomService] failed to record email_sent for booking %d: %v", booking.ID, err)
	}
}

// CancelBooking deletes the booking. Room status is derived, not stored, so
// nothing else changes.
func (s *meetingRoomService) CancelBooking(ctx context.Context, bookingID uint) error {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return ErrBookingNotFound
	}

	if err := s.bookingRepo.Delete(ctx, nil, booking.ID); err != nil {
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(rabbitmq.KeyRoomCancelled, booking); err != nil {
			log.Printf("[MeetingRoomService] failed to publish cancel event for booking %d: %v", bookingID, err)
		}
	}

	return nil
}

// IsRoomAvailable reports whether no existing booking for the room on the
// given date overlaps [startTime, endTime]. Touching endpoints count as
// overlap. An unresolvable room id reads as unavailable.
func (s *meetingRoomService) IsRoomAvailable(ctx context.Context, roomID uint, date, startTime, endTime string) bool {
	if _, err := s.roomRepo.FindByID(ctx, roomID); err != nil {
		return false
	}

	overlapping, err := s.bookingRepo.FindOverlapping(ctx, nil, roomID, date, startTime, endTime)
	if err != nil {
		return false
	}
	return len(overlapping) == 0
}

// RoomStatusForDate derives the room's status for a calendar date. Past dates
// are always VACANT; for today only bookings that have not yet ended count;
// future dates are BOOKED when any booking exists. Errors collapse to VACANT:
// availability defaults to free under uncertainty.
func (s *meetingRoomService) RoomStatusForDate(ctx context.Context, room *models.MeetingRoom, date string) models.ResourceStatus {
	today := s.now().Format(models.DateLayout)
	if date < today {
		return models.StatusVacant
	}

	bookings, err := s.bookingRepo.FindByRoomAndDate(ctx, room.ID, date)
	if err != nil {
		log.Printf("[MeetingRoomService] status check for room %d on %s failed: %v", room.ID, date, err)
		return models.StatusVacant
	}
	if len(bookings) == 0 {
		return models.StatusVacant
	}

	if date == today {
		clock := s.now().Format(models.TimeLayout)
		for _, b := range bookings {
			if b.EndTime > clock {
				return models.StatusBooked
			}
		}
		return models.StatusVacant
	}

	return models.StatusBooked
}

// RoomStatusForDateTime derives the room's status at a specific date and
// time-of-day. A booking covers [StartTime, EndTime): the start minute is
// booked, the end minute is not. Past instants and errors read as VACANT.
func (s *meetingRoomService) RoomStatusForDateTime(ctx context.Context, room *models.MeetingRoom, date, timeOfDay string) models.ResourceStatus {
	today := s.now().Format(models.DateLayout)
	clock := s.now().Format(models.TimeLayout)
	if date < today || (date == today && timeOfDay < clock) {
		return models.StatusVacant
	}

	bookings, err := s.bookingRepo.FindByRoomAndDate(ctx, room.ID, date)
	if err != nil {
		log.Printf("[MeetingRoomService] status check for room %d at %s %s failed: %v", room.ID, date, timeOfDay, err)
		return models.StatusVacant
	}

	for _, b := range bookings {
		if b.StartTime <= timeOfDay && timeOfDay < b.EndTime {
			return models.StatusBooked
		}
	}
	return models.StatusVacant
}

func (s *meetingRoomService) GetAllMeetingRooms(ctx context.Context) ([]models.MeetingRoom, error) {
	return s.roomRepo.FindAll(ctx)
}

func (s *meetingRoomService) GetMeetingRoomsByStatus(ctx context.Context, status models.ResourceStatus) ([]models.MeetingRoom, error) {
	return s.roomRepo.FindByStatus(ctx, status)
}

func (s *meetingRoomService) GetMeetingRoomByID(ctx context.Context, id uint) (*models.MeetingRoom, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *meetingRoomService) GetMeetingRoomByNumber(ctx context.Context, roomNumber string) (*models.MeetingRoom, error) {
	room, err := s.roomRepo.FindByNumber(ctx, roomNumber)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *meetingRoomService) SearchMeetingRoomsByName(ctx context.Context, name string) ([]models.MeetingRoom, error) {
	return s.roomRepo.SearchByName(ctx, name)
}

func (s *meetingRoomService) CreateMeetingRoom(ctx context.Context, room *models.MeetingRoom) error {
	if room.Status == "" {
		room.Status = models.StatusVacant
	}
	return s.roomRepo.Create(ctx, room)
}

func (s *meetingRoomService) UpdateMeetingRoom(ctx context.Context, room *models.MeetingRoom) error {
	if _, err := s.roomRepo.FindByID(ctx, room.ID); err != nil {
		return ErrRoomNotFound
	}
	return s.roomRepo.Save(ctx, nil, room)
}

func (s *meetingRoomService) DeleteMeetingRoom(ctx context.Context, id uint) error {
	if _, err := s.roomRepo.FindByID(ctx, id); err != nil {
		return ErrRoomNotFound
	}
	return s.roomRepo.Delete(ctx, id)
}

func (s *meetingRoomService) GetBookingsByRoom(ctx context.Context, roomID uint) ([]models.MeetingRoomBooking, error) {
	return s.bookingRepo.FindByRoom(ctx, roomID)
}

func (s *meetingRoomService) GetBookingsByDate(ctx context.Context, date string) ([]models.MeetingRoomBooking, error) {
	return s.bookingRepo.FindByDate(ctx, date)
}

func (s *meetingRoomService) GetBookingsByEmail(ctx context.Context, email string) ([]models.MeetingRoomBooking, error) {
	return s.bookingRepo.FindByEmail(ctx, email)
}
