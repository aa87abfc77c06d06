package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelier/internal/database"
	"hotelier/internal/domain"
	"hotelier/internal/middleware"
	"hotelier/internal/modules/admin"
	"hotelier/internal/modules/auth"
	"hotelier/internal/modules/booking"
	"hotelier/internal/modules/catalog"
	jwtsvc "hotelier/internal/pkg/jwt"
	"hotelier/internal/repository"
)

type TestSuite struct {
	router *gin.Engine
	db     *gorm.DB
	roomID int64
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupSuite(t *testing.T) *TestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db))

	// fixture data: one room, one admin account
	room := domain.Room{
		Title:    "Deluxe King Room",
		Price:    200,
		Capacity: 3,
		SizeSqm:  32,
		BedType:  "King",
		IsActive: true,
	}
	require.NoError(t, db.Create(&room).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&domain.User{
		Email:        "admin@hotelier.example",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}).Error)

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New("test-secret", time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	catalogHandler := catalog.NewHandler(catalog.NewService(roomRepo))
	bookingService := booking.NewService(reservationRepo, roomRepo, nil)
	bookingHandler := booking.NewHandler(bookingService)
	adminHandler := admin.NewHandler(admin.NewService(bookingService, reservationRepo), bookingService)

	r := gin.New()
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		guest := v1.Group("/")
		guest.Use(middleware.OptionalAuthorize(j))
		bookingHandler.RegisterPublicRoutes(guest)

		protected := v1.Group("/")
		protected.Use(middleware.Authorize(j))
		bookingHandler.RegisterProtectedRoutes(protected)

		adm := v1.Group("/admin")
		adm.Use(middleware.Authorize(j), middleware.AdminOnly())
		adminHandler.RegisterRoutes(adm)
	}

	return &TestSuite{router: r, db: db, roomID: room.ID}
}

func (s *TestSuite) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, TestResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func (s *TestSuite) adminToken(t *testing.T) string {
	w, resp := s.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "admin@hotelier.example",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := resp.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func bookingPayload(roomID int64, checkIn, checkOut string) gin.H {
	return gin.H{
		"room_id":    roomID,
		"guest_name": "John Smith",
		"email":      "john.smith@example.com",
		"phone":      "+1 (555) 123-4567",
		"check_in":   checkIn,
		"check_out":  checkOut,
		"adults":     2,
		"children":   0,
	}
}

func TestBookingLifecycle(t *testing.T) {
	s := setupSuite(t)

	// guest books Jan 1 – Jan 4 at $200/night
	w, resp := s.do(t, http.MethodPost, "/api/v1/bookings", "",
		bookingPayload(s.roomID, "2027-01-01", "2027-01-04"))
	require.Equal(t, http.StatusCreated, w.Code)

	created := resp.Data["booking"].(map[string]interface{})
	bookingID := int64(created["id"].(float64))
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, 600.0, created["total_price"])

	// overlapping request on the same room is rejected
	w, resp = s.do(t, http.MethodPost, "/api/v1/bookings", "",
		bookingPayload(s.roomID, "2027-01-03", "2027-01-05"))
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "BOOKING_CONFLICT", resp.Error.Code)

	// back-to-back booking is fine
	w, _ = s.do(t, http.MethodPost, "/api/v1/bookings", "",
		bookingPayload(s.roomID, "2027-01-04", "2027-01-06"))
	require.Equal(t, http.StatusCreated, w.Code)

	token := s.adminToken(t)

	// admin confirms the first booking
	w, resp = s.do(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/bookings/%d/status", bookingID), token,
		gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)
	confirmed := resp.Data["booking"].(map[string]interface{})
	assert.Equal(t, "confirmed", confirmed["status"])

	// cancelling and then re-confirming is rejected
	w, _ = s.do(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/bookings/%d/status", bookingID), token,
		gin.H{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = s.do(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/bookings/%d/status", bookingID), token,
		gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INVALID_TRANSITION", resp.Error.Code)
}

func TestBookingExtension(t *testing.T) {
	s := setupSuite(t)
	token := s.adminToken(t)

	// admin-entered bookings start confirmed
	w, resp := s.do(t, http.MethodPost, "/api/v1/admin/bookings", token,
		bookingPayload(s.roomID, "2027-02-01", "2027-02-04"))
	require.Equal(t, http.StatusCreated, w.Code)
	created := resp.Data["booking"].(map[string]interface{})
	bookingID := int64(created["id"].(float64))
	assert.Equal(t, "confirmed", created["status"])

	// 3 nights at $200 extended by 2 → $1000 through Feb 6
	w, resp = s.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/admin/bookings/%d/extend", bookingID), token,
		gin.H{"additional_nights": 2})
	require.Equal(t, http.StatusOK, w.Code)
	extended := resp.Data["booking"].(map[string]interface{})
	assert.Equal(t, 1000.0, extended["total_price"])

	// a neighbour moves in right behind; extending into them fails
	w, _ = s.do(t, http.MethodPost, "/api/v1/bookings", "",
		bookingPayload(s.roomID, "2027-02-06", "2027-02-09"))
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp = s.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/admin/bookings/%d/extend", bookingID), token,
		gin.H{"additional_nights": 1})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "BOOKING_CONFLICT", resp.Error.Code)
}

func TestAdminDashboard(t *testing.T) {
	s := setupSuite(t)
	token := s.adminToken(t)

	_, _ = s.do(t, http.MethodPost, "/api/v1/bookings", "",
		bookingPayload(s.roomID, "2027-03-01", "2027-03-04"))
	_, _ = s.do(t, http.MethodPost, "/api/v1/admin/bookings", token,
		bookingPayload(s.roomID, "2027-03-10", "2027-03-12"))

	w, resp := s.do(t, http.MethodGet,
		"/api/v1/admin/bookings?status=pending&sort_by=check_in", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	bookings := resp.Data["bookings"].([]interface{})
	assert.Len(t, bookings, 1)

	w, resp = s.do(t, http.MethodGet, "/api/v1/admin/bookings/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := resp.Data["stats"].(map[string]interface{})
	assert.Equal(t, 2.0, stats["total"])
	assert.Equal(t, 1.0, stats["pending"])
	assert.Equal(t, 1.0, stats["confirmed"])
	assert.Equal(t, 1000.0, stats["revenue"])

	// search by guest name
	w, resp = s.do(t, http.MethodGet,
		"/api/v1/admin/bookings?search=smith", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	bookings = resp.Data["bookings"].([]interface{})
	assert.Len(t, bookings, 2)

	// dashboard routes reject non-admin callers
	w, _ = s.do(t, http.MethodGet, "/api/v1/admin/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoomCatalogAndAvailability(t *testing.T) {
	s := setupSuite(t)

	w, resp := s.do(t, http.MethodGet, "/api/v1/rooms", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rooms := resp.Data["rooms"].([]interface{})
	require.Len(t, rooms, 1)

	_, _ = s.do(t, http.MethodPost, "/api/v1/bookings", "",
		bookingPayload(s.roomID, "2027-04-01", "2027-04-04"))

	path := fmt.Sprintf("/api/v1/rooms/%d/availability", s.roomID)

	w, resp = s.do(t, http.MethodGet, path+"?check_in=2027-04-02&check_out=2027-04-05", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, resp.Data["available"])

	w, resp = s.do(t, http.MethodGet, path+"?check_in=2027-04-04&check_out=2027-04-06", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp.Data["available"])
}

func TestGuestAccountBookings(t *testing.T) {
	s := setupSuite(t)

	w, _ := s.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":     "sarah.j@example.com",
		"password":  "password123",
		"full_name": "Sarah Johnson",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := s.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "sarah.j@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := resp.Data["token"].(string)

	// a booking made while logged in lands on the account
	w, _ = s.do(t, http.MethodPost, "/api/v1/bookings", token,
		bookingPayload(s.roomID, "2027-05-01", "2027-05-03"))
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp = s.do(t, http.MethodGet, "/api/v1/my-bookings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	bookings := resp.Data["bookings"].([]interface{})
	assert.Len(t, bookings, 1)
}
