package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hotelier/internal/database"
	"hotelier/internal/domain"
)

func main() {
	db, err := database.Connect("hotelier.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@hotelier.example",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		FullName:     "Front Desk",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal(err)
	}

	guestHash, _ := bcrypt.GenerateFromPassword([]byte("guest123"), bcrypt.DefaultCost)
	guest := domain.User{
		Email:        "john.smith@example.com",
		PasswordHash: string(guestHash),
		Role:         domain.RoleGuest,
		FullName:     "John Smith",
		Phone:        "+1 (555) 123-4567",
	}
	if err := db.Create(&guest).Error; err != nil {
		log.Fatal(err)
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	rooms := []domain.Room{
		{
			Title:       "Deluxe King Room",
			Description: "Spacious room with a king bed and city view.",
			Price:       199,
			Capacity:    2,
			SizeSqm:     32,
			BedType:     "King",
			Amenities:   []string{"Wi-Fi", "Air conditioning", "Minibar", "Safe"},
			IsActive:    true,
		},
		{
			Title:       "Superior Twin Room",
			Description: "Two comfortable twin beds, garden side.",
			Price:       249,
			Capacity:    3,
			SizeSqm:     36,
			BedType:     "Twin",
			Amenities:   []string{"Wi-Fi", "Air conditioning", "Balcony"},
			IsActive:    true,
		},
		{
			Title:       "Executive Suite",
			Description: "Separate living area, panoramic windows.",
			Price:       349,
			Capacity:    3,
			SizeSqm:     55,
			BedType:     "King",
			Amenities:   []string{"Wi-Fi", "Living area", "Espresso machine", "Bathtub"},
			IsActive:    true,
		},
		{
			Title:       "Family Suite",
			Description: "Two bedrooms, sleeps a family of five.",
			Price:       399,
			Capacity:    5,
			SizeSqm:     68,
			BedType:     "King + Twin",
			Amenities:   []string{"Wi-Fi", "Kitchenette", "Two bathrooms"},
			IsActive:    true,
		},
	}
	for i := range rooms {
		if err := db.Create(&rooms[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	// ================== RESERVATIONS ==================
	log.Println("Creating reservations...")

	today := time.Now().UTC().Truncate(24 * time.Hour)
	reservations := []domain.Reservation{
		{
			RoomID:     rooms[0].ID,
			GuestName:  "John Smith",
			Email:      "john.smith@example.com",
			Phone:      "+1 (555) 123-4567",
			CheckIn:    today.AddDate(0, 0, -2),
			CheckOut:   today.AddDate(0, 0, 3),
			Adults:     2,
			Children:   0,
			Status:     domain.ReservationConfirmed,
			TotalPrice: 199 * 5,
			UserID:     &guest.ID,
		},
		{
			RoomID:     rooms[1].ID,
			GuestName:  "Sarah Johnson",
			Email:      "sarah.j@example.com",
			Phone:      "+1 (555) 987-6543",
			CheckIn:    today.AddDate(0, 0, 10),
			CheckOut:   today.AddDate(0, 0, 15),
			Adults:     2,
			Children:   1,
			Status:     domain.ReservationPending,
			TotalPrice: 249 * 5,
		},
		{
			RoomID:     rooms[2].ID,
			GuestName:  "Michael Brown",
			Email:      "mbrown@example.com",
			Phone:      "+1 (555) 456-7890",
			CheckIn:    today.AddDate(0, 0, 20),
			CheckOut:   today.AddDate(0, 0, 25),
			Adults:     1,
			Children:   0,
			Status:     domain.ReservationCancelled,
			TotalPrice: 349 * 5,
		},
	}
	for i := range reservations {
		reservations[i].CreatedAt = time.Now()
		reservations[i].UpdatedAt = time.Now()
		if err := db.Create(&reservations[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed complete.")
	log.Println("Admin login: admin@hotelier.example / admin123")
	log.Println("Guest login: john.smith@example.com / guest123")
}
