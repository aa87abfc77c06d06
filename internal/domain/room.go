package domain

import "time"

type Room struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price" validate:"required,gte=0"` // nightly rate
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
	SizeSqm     int       `json:"size_sqm" validate:"required,gt=0"`
	BedType     string    `json:"bed_type"`
	Amenities   []string  `json:"amenities,omitempty" gorm:"serializer:json"`
	Images      []string  `json:"images,omitempty" gorm:"serializer:json"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
