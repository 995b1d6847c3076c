package repository

import (
	"context"

	"github.com/devansh2311/deskmate/internal/models"
	"gorm.io/gorm"
)

type DeskRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Desk, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Desk, error)
	FindByNumber(ctx context.Context, deskNumber string) (*models.Desk, error)
	FindAll(ctx context.Context) ([]models.Desk, error)
	FindByStatus(ctx context.Context, status models.ResourceStatus) ([]models.Desk, error)
	FindByDepartment(ctx context.Context, department string) ([]models.Desk, error)
	FindByStatusAndDepartment(ctx context.Context, status models.ResourceStatus, department string) ([]models.Desk, error)
	Create(ctx context.Context, desk *models.Desk) error
	Save(ctx context.Context, tx *gorm.DB, desk *models.Desk) error
	Delete(ctx context.Context, id uint) error
}

type deskRepository struct {
	db *gorm.DB
}

func NewDeskRepository(db *gorm.DB) DeskRepository {
	return &deskRepository{db: db}
}

func (r *deskRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *deskRepository) FindByID(ctx context.Context, id uint) (*models.Desk, error) {
	var desk models.Desk
	if err := r.db.WithContext(ctx).First(&desk, id).Error; err != nil {
		return nil, err
	}
	return &desk, nil
}

// FindByIDForUpdate acquires a row-level lock on the desk within the given transaction.
func (r *deskRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Desk, error) {
	var desk models.Desk
	if err := r.conn(tx).WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&desk, id).Error; err != nil {
		return nil, err
	}
	return &desk, nil
}

func (r *deskRepository) FindByNumber(ctx context.Context, deskNumber string) (*models.Desk, error) {
	var desk models.Desk
	if err := r.db.WithContext(ctx).Where("desk_number = ?", deskNumber).First(&desk).Error; err != nil {
		return nil, err
	}
	return &desk, nil
}

func (r *deskRepository) FindAll(ctx context.Context) ([]models.Desk, error) {
	var desks []models.Desk
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&desks).Error; err != nil {
		return nil, err
	}
	return desks, nil
}

func (r *deskRepository) FindByStatus(ctx context.Context, status models.ResourceStatus) ([]models.Desk, error) {
	var desks []models.Desk
	if err := r.db.WithContext(ctx).Where("status = ?", status).Order("id ASC").Find(&desks).Error; err != nil {
		return nil, err
	}
	return desks, nil
}

func (r *deskRepository) FindByDepartment(ctx context.Context, department string) ([]models.Desk, error) {
	var desks []models.Desk
	if err := r.db.WithContext(ctx).Where("department = ?", department).Order("id ASC").Find(&desks).Error; err != nil {
		return nil, err
	}
	return desks, nil
}

func (r *deskRepository) FindByStatusAndDepartment(ctx context.Context, status models.ResourceStatus, department string) ([]models.Desk, error) {
	var desks []models.Desk
	if err := r.db.WithContext(ctx).
		Where("status = ? AND department = ?", status, department).
		Order("id ASC").Find(&desks).Error; err != nil {
		return nil, err
	}
	return desks, nil
}

func (r *deskRepository) Create(ctx context.Context, desk *models.Desk) error {
	return r.db.WithContext(ctx).Create(desk).Error
}

func (r *deskRepository) Save(ctx context.Context, tx *gorm.DB, desk *models.Desk) error {
	return r.conn(tx).WithContext(ctx).Save(desk).Error
}

func (r *deskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Desk{}, id).Error
}
