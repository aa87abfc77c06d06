package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelier/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).First(&room, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	tx := r.db.WithContext(ctx).Where("is_active = ?", true).Order("price").Find(&rooms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rooms, nil
}

func (r *RoomRepository) GetNightlyRate(ctx context.Context, id int64) (float64, error) {
	var price float64
	tx := r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Where("id = ?", id).
		Pluck("price", &price)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return price, nil
}

func (r *RoomRepository) GetCapacity(ctx context.Context, id int64) (int, error) {
	var capacity int
	tx := r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Where("id = ?", id).
		Pluck("capacity", &capacity)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return capacity, nil
}
