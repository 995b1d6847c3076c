package repository

import (
	"context"

	"github.com/devansh2311/deskmate/internal/models"
	"gorm.io/gorm"
)

type MeetingRoomBookingRepository interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	Create(ctx context.Context, tx *gorm.DB, booking *models.MeetingRoomBooking) error
	FindByID(ctx context.Context, id uint) (*models.MeetingRoomBooking, error)
	FindByRoom(ctx context.Context, roomID uint) ([]models.MeetingRoomBooking, error)
	FindByRoomAndDate(ctx context.Context, roomID uint, date string) ([]models.MeetingRoomBooking, error)
	FindOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, date, startTime, endTime string) ([]models.MeetingRoomBooking, error)
	FindByDate(ctx context.Context, date string) ([]models.MeetingRoomBooking, error)
	FindByEmail(ctx context.Context, email string) ([]models.MeetingRoomBooking, error)
	MarkEmailSent(ctx context.Context, id uint) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type meetingRoomBookingRepository struct {
	db *gorm.DB
}

func NewMeetingRoomBookingRepository(db *gorm.DB) MeetingRoomBookingRepository {
	return &meetingRoomBookingRepository{db: db}
}

func (r *meetingRoomBookingRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *meetingRoomBookingRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *meetingRoomBookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.MeetingRoomBooking) error {
	return r.conn(tx).WithContext(ctx).Create(booking).Error
}

func (r *meetingRoomBookingRepository) FindByID(ctx context.Context, id uint) (*models.MeetingRoomBooking, error) {
	var booking models.MeetingRoomBooking
	if err := r.db.WithContext(ctx).Preload("MeetingRoom").First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *meetingRoomBookingRepository) FindByRoom(ctx context.Context, roomID uint) ([]models.MeetingRoomBooking, error) {
	var bookings []models.MeetingRoomBooking
	if err := r.db.WithContext(ctx).
		Where("meeting_room_id = ?", roomID).
		Order("booking_date ASC, start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *meetingRoomBookingRepository) FindByRoomAndDate(ctx context.Context, roomID uint, date string) ([]models.MeetingRoomBooking, error) {
	var bookings []models.MeetingRoomBooking
	if err := r.db.WithContext(ctx).
		Where("meeting_room_id = ? AND booking_date = ?", roomID, date).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindOverlapping returns bookings whose interval touches [startTime, endTime]
// on the given date. The comparison is closed on both ends: a booking ending
// at 10:00 conflicts with one starting at 10:00.
func (r *meetingRoomBookingRepository) FindOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, date, startTime, endTime string) ([]models.MeetingRoomBooking, error) {
	var bookings []models.MeetingRoomBooking
	if err := r.conn(tx).WithContext(ctx).
		Where("meeting_room_id = ? AND booking_date = ? AND start_time <= ? AND end_time >= ?",
			roomID, date, endTime, startTime).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *meetingRoomBookingRepository) FindByDate(ctx context.Context, date string) ([]models.MeetingRoomBooking, error) {
	var bookings []models.MeetingRoomBooking
	if err := r.db.WithContext(ctx).
		Where("booking_date = ?", date).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *meetingRoomBookingRepository) FindByEmail(ctx context.Context, email string) ([]models.MeetingRoomBooking, error) {
	var bookings []models.MeetingRoomBooking
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("booking_date ASC, start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *meetingRoomBookingRepository) MarkEmailSent(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.MeetingRoomBooking{}).
		Where("id = ?", id).
		Update("email_sent", true).Error
}

func (r *meetingRoomBookingRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return r.conn(tx).WithContext(ctx).Delete(&models.MeetingRoomBooking{}, id).Error
}
