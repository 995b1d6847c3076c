package repository

import (
	"context"

	"github.com/devansh2311/deskmate/internal/models"
	"gorm.io/gorm"
)

type MeetingRoomRepository interface {
	FindByID(ctx context.Context, id uint) (*models.MeetingRoom, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.MeetingRoom, error)
	FindByNumber(ctx context.Context, roomNumber string) (*models.MeetingRoom, error)
	FindAll(ctx context.Context) ([]models.MeetingRoom, error)
	FindByStatus(ctx context.Context, status models.ResourceStatus) ([]models.MeetingRoom, error)
	SearchByName(ctx context.Context, name string) ([]models.MeetingRoom, error)
	Create(ctx context.Context, room *models.MeetingRoom) error
	Save(ctx context.Context, tx *gorm.DB, room *models.MeetingRoom) error
	Delete(ctx context.Context, id uint) error
}

type meetingRoomRepository struct {
	db *gorm.DB
}

func NewMeetingRoomRepository(db *gorm.DB) MeetingRoomRepository {
	return &meetingRoomRepository{db: db}
}

func (r *meetingRoomRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *meetingRoomRepository) FindByID(ctx context.Context, id uint) (*models.MeetingRoom, error) {
	var room models.MeetingRoom
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByIDForUpdate acquires a row-level lock on the room within the given
// transaction, serializing concurrent booking attempts for the same room.
func (r *meetingRoomRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.MeetingRoom, error) {
	var room models.MeetingRoom
	if err := r.conn(tx).WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *meetingRoomRepository) FindByNumber(ctx context.Context, roomNumber string) (*models.MeetingRoom, error) {
	var room models.MeetingRoom
	if err := r.db.WithContext(ctx).Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *meetingRoomRepository) FindAll(ctx context.Context) ([]models.MeetingRoom, error) {
	var rooms []models.MeetingRoom
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *meetingRoomRepository) FindByStatus(ctx context.Context, status models.ResourceStatus) ([]models.MeetingRoom, error) {
	var rooms []models.MeetingRoom
	if err := r.db.WithContext(ctx).Where("status = ?", status).Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *meetingRoomRepository) SearchByName(ctx context.Context, name string) ([]models.MeetingRoom, error) {
	var rooms []models.MeetingRoom
	if err := r.db.WithContext(ctx).
		Where("room_name ILIKE ?", "%"+name+"%").
		Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *meetingRoomRepository) Create(ctx context.Context, room *models.MeetingRoom) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *meetingRoomRepository) Save(ctx context.Context, tx *gorm.DB, room *models.MeetingRoom) error {
	return r.conn(tx).WithContext(ctx).Save(room).Error
}

func (r *meetingRoomRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MeetingRoom{}, id).Error
}
