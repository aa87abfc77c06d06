package catalog

import (
	"context"

	"hotelier/internal/domain"
)

type RoomReader interface {
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Service is the read side of the room catalog. Room content management is
// handled elsewhere; this only serves the public pages and the booking form.
type Service struct {
	rooms RoomReader
}

func NewService(rooms RoomReader) *Service {
	return &Service{rooms: rooms}
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	return s.rooms.GetByID(ctx, id)
}
