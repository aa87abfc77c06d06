package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelier/internal/domain"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// reservationModel is the storage row shape. Domain code never sees it;
// every read goes through toDomainReservation and every write through
// toReservationModel.
type reservationModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	RoomID          int64     `gorm:"column:room_id;index"`
	GuestName       string    `gorm:"column:guest_name"`
	Email           string    `gorm:"column:email"`
	Phone           string    `gorm:"column:phone"`
	CheckIn         time.Time `gorm:"column:check_in"`
	CheckOut        time.Time `gorm:"column:check_out"`
	Adults          int       `gorm:"column:adults"`
	Children        int       `gorm:"column:children"`
	SpecialRequests *string   `gorm:"column:special_requests"`
	Status          string    `gorm:"column:status;index"`
	TotalPrice      float64   `gorm:"column:total_price"`
	UserID          *int64    `gorm:"column:user_id"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
	UpdatedBy       *string   `gorm:"column:updated_by"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	var requests string
	if m.SpecialRequests != nil {
		requests = *m.SpecialRequests
	}
	var updatedBy string
	if m.UpdatedBy != nil {
		updatedBy = *m.UpdatedBy
	}

	return &domain.Reservation{
		ID:              m.ID,
		RoomID:          m.RoomID,
		GuestName:       m.GuestName,
		Email:           m.Email,
		Phone:           m.Phone,
		CheckIn:         m.CheckIn,
		CheckOut:        m.CheckOut,
		Adults:          m.Adults,
		Children:        m.Children,
		SpecialRequests: requests,
		Status:          domain.ReservationStatus(m.Status),
		TotalPrice:      m.TotalPrice,
		UserID:          m.UserID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		UpdatedBy:       updatedBy,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	var requests *string
	if r.SpecialRequests != "" {
		v := r.SpecialRequests
		requests = &v
	}
	var updatedBy *string
	if r.UpdatedBy != "" {
		v := r.UpdatedBy
		updatedBy = &v
	}

	return reservationModel{
		ID:              r.ID,
		RoomID:          r.RoomID,
		GuestName:       r.GuestName,
		Email:           r.Email,
		Phone:           r.Phone,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		Adults:          r.Adults,
		Children:        r.Children,
		SpecialRequests: requests,
		Status:          string(r.Status),
		TotalPrice:      r.TotalPrice,
		UserID:          r.UserID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		UpdatedBy:       updatedBy,
	}
}

// Insert persists a new reservation and writes the store-assigned id and
// timestamps back into r. On PostgreSQL the idx_no_double_booking exclusion
// constraint can reject the insert; the raw pg error is returned for the
// service layer to classify.
func (r *ReservationRepository) Insert(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

// FindByRoom returns the room's reservations, skipping excludeStatus when it
// is non-empty. The availability checker calls this with "cancelled".
func (r *ReservationRepository) FindByRoom(ctx context.Context, roomID int64, excludeStatus domain.ReservationStatus) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).Where("room_id = ?", roomID)
	if excludeStatus != "" {
		q = q.Where("status <> ?", string(excludeStatus))
	}

	var ms []reservationModel
	if tx := q.Order("check_in").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

// Update applies the given column set and returns the fresh row.
func (r *ReservationRepository) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Reservation, error) {
	tx := r.db.WithContext(ctx).Model(&reservationModel{}).Where("id = ?", id).Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	var ms []reservationModel
	if tx := r.db.WithContext(ctx).Order("check_in").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	var ms []reservationModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("check_in").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}
