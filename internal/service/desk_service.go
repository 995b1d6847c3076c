package service

import (
	"context"
	"errors"
	"log"

	"github.com/devansh2311/deskmate/internal/models"
	"github.com/devansh2311/deskmate/internal/notifier"
	"github.com/devansh2311/deskmate/internal/repository"
	"github.com/devansh2311/deskmate/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrDeskNotFound      = errors.New("desk not found")
	ErrRoomNotFound      = errors.New("meeting room not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrDeskAlreadyBooked = errors.New("desk is already booked for the requested date")
	ErrRoomAlreadyBooked = errors.New("meeting room is already booked for the requested time")
)

type DeskService interface {
	GetAllDesks(ctx context.Context) ([]models.Desk, error)
	GetDesksByStatus(ctx context.Context, status models.ResourceStatus) ([]models.Desk, error)
	GetDesksByDepartment(ctx context.Context, department string) ([]models.Desk, error)
	GetVacantDesksByDepartment(ctx context.Context, department string) ([]models.Desk, error)
	GetDeskByID(ctx context.Context, id uint) (*models.Desk, error)
	GetDeskByNumber(ctx context.Context, deskNumber string) (*models.Desk, error)
	CreateDesk(ctx context.Context, desk *models.Desk) error
	UpdateDesk(ctx context.Context, desk *models.Desk) error
	DeleteDesk(ctx context.Context, id uint) error

	BookDesk(ctx context.Context, booking *models.DeskBooking) (*models.DeskBooking, error)
	CancelBooking(ctx context.Context, bookingID uint) error
	IsDeskAvailable(ctx context.Context, deskID uint, date string) bool

	GetBookingsByDesk(ctx context.Context, deskID uint) ([]models.DeskBooking, error)
	GetBookingsByDate(ctx context.Context, date string) ([]models.DeskBooking, error)
	GetBookingsByEmail(ctx context.Context, email string) ([]models.DeskBooking, error)
	GetBookingsByFriendEmail(ctx context.Context, friendEmail string) ([]models.DeskBooking, error)
	GetBookingsByDepartment(ctx context.Context, department string) ([]models.DeskBooking, error)
}

type deskService struct {
	deskRepo    repository.DeskRepository
	bookingRepo repository.DeskBookingRepository
	notifier    notifier.Notifier
	publisher   *rabbitmq.Publisher
}

func NewDeskService(
	deskRepo repository.DeskRepository,
	bookingRepo repository.DeskBookingRepository,
	n notifier.Notifier,
	publisher *rabbitmq.Publisher,
) DeskService {
	return &deskService{
		deskRepo:    deskRepo,
		bookingRepo: bookingRepo,
		notifier:    n,
		publisher:   publisher,
	}
}

// BookDesk books a desk for a single date. The conflict check and the desk
// status update run in one transaction with the desk row locked, so two
// concurrent requests for the same desk and date cannot both succeed.
// Email and event dispatch happen after commit and never fail the booking.
func (s *deskService) BookDesk(ctx context.Context, booking *models.DeskBooking) (*models.DeskBooking, error) {
	err := s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		desk, err := s.deskRepo.FindByIDForUpdate(ctx, tx, booking.DeskID)
		if err != nil {
			return ErrDeskNotFound
		}

		existing, err := s.bookingRepo.FindByDeskAndDate(ctx, tx, desk.ID, booking.BookingDate)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return ErrDeskAlreadyBooked
		}

		occupant := booking.BookerName
		if booking.IsForFriend {
			occupant = booking.FriendName
		}
		desk.Status = models.StatusBooked
		desk.OccupantName = &occupant
		desk.OccupantDepartment = &booking.Department
		if err := s.deskRepo.Save(ctx, tx, desk); err != nil {
			return err
		}

		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}

		booking.Desk = desk
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, booking)

	if s.publisher != nil {
		if err := s.publisher.Publish(rabbitmq.KeyDeskBooked, booking); err != nil {
			log.Printf("[DeskService] failed to publish booking event for booking %d: %v", booking.ID, err)
		}
	}

	return booking, nil
}

// sendConfirmation dispatches the booker email and, for friend bookings, the
// friend notification. EmailSent is recorded only when every mail went out.
func (s *deskService) sendConfirmation(ctx context.Context, booking *models.DeskBooking) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.SendDeskConfirmation(booking); err != nil {
		log.Printf("[DeskService] failed to send confirmation for booking %d: %v", booking.ID, err)
		return
	}

	if booking.IsForFriend && booking.FriendEmail != "" {
		if err := s.notifier.SendDeskFriendNotification(booking); err != nil {
			log.Printf("[DeskService] failed to send friend notification for booking %d: %v", booking.ID, err)
			return
		}
	}

	booking.EmailSent = true
	if err := s.bookingRepo.MarkEmailSent(ctx, booking.ID); err != nil {
		log.Printf("[DeskService] failed to record email_sent for booking %d: %v", booking.ID, err)
	}
}

// CancelBooking deletes the booking and unconditionally resets the desk to
// VACANT with no occupant. Desks track only a single current occupancy, so no
// other bookings are consulted.
func (s *deskService) CancelBooking(ctx context.Context, bookingID uint) error {
	var cancelled *models.DeskBooking

	err := s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(ctx, tx, bookingID)
		if err != nil {
			return ErrBookingNotFound
		}

		desk, err := s.deskRepo.FindByIDForUpdate(ctx, tx, booking.DeskID)
		if err != nil {
			return err
		}
		desk.Status = models.StatusVacant
		desk.OccupantName = nil
		desk.OccupantDepartment = nil
		if err := s.deskRepo.Save(ctx, tx, desk); err != nil {
			return err
		}

		if err := s.bookingRepo.Delete(ctx, tx, booking.ID); err != nil {
			return err
		}

		cancelled = booking
		return nil
	})
	if err != nil {
		return err
	}

	if s.publisher != nil && cancelled != nil {
		if err := s.publisher.Publish(rabbitmq.KeyDeskCancelled, cancelled); err != nil {
			log.Printf("[DeskService] failed to publish cancel event for booking %d: %v", bookingID, err)
		}
	}

	return nil
}

// IsDeskAvailable reports whether the desk has no booking on the given date.
// An unresolvable desk id reads as unavailable.
func (s *deskService) IsDeskAvailable(ctx context.Context, deskID uint, date string) bool {
	if _, err := s.deskRepo.FindByID(ctx, deskID); err != nil {
		return false
	}

	bookings, err := s.bookingRepo.FindByDeskAndDate(ctx, nil, deskID, date)
	if err != nil {
		return false
	}
	return len(bookings) == 0
}

func (s *deskService) GetAllDesks(ctx context.Context) ([]models.Desk, error) {
	return s.deskRepo.FindAll(ctx)
}

func (s *deskService) GetDesksByStatus(ctx context.Context, status models.ResourceStatus) ([]models.Desk, error) {
	return s.deskRepo.FindByStatus(ctx, status)
}

func (s *deskService) GetDesksByDepartment(ctx context.Context, department string) ([]models.Desk, error) {
	return s.deskRepo.FindByDepartment(ctx, department)
}

func (s *deskService) GetVacantDesksByDepartment(ctx context.Context, department string) ([]models.Desk, error) {
	return s.deskRepo.FindByStatusAndDepartment(ctx, models.StatusVacant, department)
}

func (s *deskService) GetDeskByID(ctx context.Context, id uint) (*models.Desk, error) {
	desk, err := s.deskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrDeskNotFound
	}
	return desk, nil
}

func (s *deskService) GetDeskByNumber(ctx context.Context, deskNumber string) (*models.Desk, error) {
	desk, err := s.deskRepo.FindByNumber(ctx, deskNumber)
	if err != nil {
		return nil, ErrDeskNotFound
	}
	return desk, nil
}

func (s *deskService) CreateDesk(ctx context.Context, desk *models.Desk) error {
	if desk.Status == "" {
		desk.Status = models.StatusVacant
	}
	return s.deskRepo.Create(ctx, desk)
}

func (s *deskService) UpdateDesk(ctx context.Context, desk *models.Desk) error {
	if _, err := s.deskRepo.FindByID(ctx, desk.ID); err != nil {
		return ErrDeskNotFound
	}
	return s.deskRepo.Save(ctx, nil, desk)
}

func (s *deskService) DeleteDesk(ctx context.Context, id uint) error {
	if _, err := s.deskRepo.FindByID(ctx, id); err != nil {
		return ErrDeskNotFound
	}
	return s.deskRepo.Delete(ctx, id)
}

func (s *deskService) GetBookingsByDesk(ctx context.Context, deskID uint) ([]models.DeskBooking, error) {
	return s.bookingRepo.FindByDesk(ctx, deskID)
}

func (s *deskService) GetBookingsByDate(ctx context.Context, date string) ([]models.DeskBooking, error) {
	return s.bookingRepo.FindByDate(ctx, date)
}

func (s *deskService) GetBookingsByEmail(ctx context.Context, email string) ([]models.DeskBooking, error) {
	return s.bookingRepo.FindByEmail(ctx, email)
}

func (s *deskService) GetBookingsByFriendEmail(ctx context.Context, friendEmail string) ([]models.DeskBooking, error) {
	return s.bookingRepo.FindByFriendEmail(ctx, friendEmail)
}

func (s *deskService) GetBookingsByDepartment(ctx context.Context, department string) ([]models.DeskBooking, error) {
	return s.bookingRepo.FindByDepartment(ctx, department)
}
