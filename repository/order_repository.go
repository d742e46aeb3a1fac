package repository

import (
	"context"

	"github.com/NeryGM09/libreria-luismi/models"
	"gorm.io/gorm"
)

// OrderRepository defines data-access operations for orders.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	Create(ctx context.Context, o *models.Order) error
	UpdateEstado(ctx context.Context, id uint, estado string) error
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// FindAll returns every order, newest first.
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	var pedidos []models.Order
	if err := r.db.WithContext(ctx).
		Order("fecha DESC").
		Find(&pedidos).Error; err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormOrderRepository) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

// UpdateEstado writes only the estado column. An unknown id surfaces as
// gorm.ErrRecordNotFound.
func (r *GormOrderRepository) UpdateEstado(ctx context.Context, id uint, estado string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("estado", estado)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
