package repository

import (
	"context"

	"github.com/devansh2311/deskmate/internal/models"
	"gorm.io/gorm"
)

type DeskBookingRepository interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	Create(ctx context.Context, tx *gorm.DB, booking *models.DeskBooking) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.DeskBooking, error)
	FindByDesk(ctx context.Context, deskID uint) ([]models.DeskBooking, error)
	FindByDeskAndDate(ctx context.Context, tx *gorm.DB, deskID uint, date string) ([]models.DeskBooking, error)
	FindByDate(ctx context.Context, date string) ([]models.DeskBooking, error)
	FindByEmail(ctx context.Context, email string) ([]models.DeskBooking, error)
	FindByFriendEmail(ctx context.Context, friendEmail string) ([]models.DeskBooking, error)
	FindByDepartment(ctx context.Context, department string) ([]models.DeskBooking, error)
	MarkEmailSent(ctx context.Context, id uint) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type deskBookingRepository struct {
	db *gorm.DB
}

func NewDeskBookingRepository(db *gorm.DB) DeskBookingRepository {
	return &deskBookingRepository{db: db}
}

func (r *deskBookingRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *deskBookingRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *deskBookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.DeskBooking) error {
	return r.conn(tx).WithContext(ctx).Create(booking).Error
}

func (r *deskBookingRepository) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.DeskBooking, error) {
	var booking models.DeskBooking
	if err := r.conn(tx).WithContext(ctx).Preload("Desk").First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *deskBookingRepository) FindByDesk(ctx context.Context, deskID uint) ([]models.DeskBooking, error) {
	var bookings []models.DeskBooking
	if err := r.db.WithContext(ctx).Where("desk_id = ?", deskID).Order("booking_date ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *deskBookingRepository) FindByDeskAndDate(ctx context.Context, tx *gorm.DB, deskID uint, date string) ([]models.DeskBooking, error) {
	var bookings []models.DeskBooking
	if err := r.conn(tx).WithContext(ctx).
		Where("desk_id = ? AND booking_date = ?", deskID, date).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *deskBookingRepository) FindByDate(ctx context.Context, date string) ([]models.DeskBooking, error) {
	var bookings []models.DeskBooking
	if err := r.db.WithContext(ctx).Where("booking_date = ?", date).Order("id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *deskBookingRepository) FindByEmail(ctx context.Context, email string) ([]models.DeskBooking, error) {
	var bookings []models.DeskBooking
	if err := r.db.WithContext(ctx).Where("email = ?", email).Order("booking_date ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *deskBookingRepository) FindByFriendEmail(ctx context.Context, friendEmail string) ([]models.DeskBooking, error) {
	var bookings []models.DeskBooking
	if err := r.db.WithContext(ctx).Where("friend_email = ?", friendEmail).Order("booking_date ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *deskBookingRepository) FindByDepartment(ctx context.Context, department string) ([]models.DeskBooking, error) {
	var bookings []models.DeskBooking
	if err := r.db.WithContext(ctx).Where("department = ?", department).Order("booking_date ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *deskBookingRepository) MarkEmailSent(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.DeskBooking{}).
		Where("id = ?", id).
		Update("email_sent", true).Error
}

func (r *deskBookingRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return r.conn(tx).WithContext(ctx).Delete(&models.DeskBooking{}, id).Error
}
