package services

import (
	"testing"
	"time"

	"beautyforyou-backend/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupBookingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Staff{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.Reservation{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// fixedMonday pins "today" to Monday 2026-01-05
var fixedMonday = time.Date(2026, time.January, 5, 9, 30, 0, 0, time.UTC)

func newTestBookingService(db *gorm.DB) *BookingService {
	svc := NewBookingService(db)
	svc.now = func() time.Time { return fixedMonday }
	return svc
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.ServiceCategory, models.Staff, models.Service, models.User) {
	t.Helper()

	category := models.ServiceCategory{Name: "Manicure"}
	assert.NoError(t, db.Create(&category).Error)

	staff := models.Staff{
		FirstName: "Anna", LastName: "Kowalska",
		Phone: "123456789", Position: models.PositionNailStylist,
	}
	assert.NoError(t, db.Create(&staff).Error)
	assert.NoError(t, db.Model(&staff).Association("Categories").Append(&category))

	service := models.Service{
		Name: "Classic Manicure", Price: 80.00, Duration: 45,
		Categories: []models.ServiceCategory{category},
	}
	assert.NoError(t, db.Create(&service).Error)

	client := models.User{
		Email: "client@example.com", Password: "secret-password",
		Name: "Client", Role: "client", IsActive: true,
	}
	assert.NoError(t, db.Create(&client).Error)

	return category, staff, service, client
}

func validInput() SubmitReservationInput {
	return SubmitReservationInput{
		CategoryService: "Manicure",
		Staff:           "Anna Kowalska",
		Service:         "Classic Manicure",
		Date:            "2026-01-06", // Tuesday
		Time:            "10:00",
	}
}

func TestSubmit(t *testing.T) {
	db := setupBookingTestDB(t)
	svc := newTestBookingService(db)
	category, staff, service, client := seedCatalog(t, db)

	reservation, err := svc.Submit(client.ID, validInput())
	assert.NoError(t, err)
	assert.Equal(t, client.ID, reservation.ClientID)
	assert.Equal(t, staff.ID, reservation.StaffID)
	assert.Equal(t, "10:00", reservation.Time)

	var stored models.Reservation
	assert.NoError(t, db.Preload("Services").Preload("Categories").
		First(&stored, "id = ?", reservation.ID).Error)
	assert.Len(t, stored.Services, 1)
	assert.Equal(t, service.ID, stored.Services[0].ID)
	assert.Len(t, stored.Categories, 1)
	assert.Equal(t, category.ID, stored.Categories[0].ID)
}

func TestSubmit_BookingTodayIsAllowed(t *testing.T) {
	db := setupBookingTestDB(t)
	svc := newTestBookingService(db)
	_, _, _, client := seedCatalog(t, db)

	input := validInput()
	input.Date = "2026-01-05" // the pinned "today"

	_, err := svc.Submit(client.ID, input)
	assert.NoError(t, err)
}

func TestSubmit_ValidationOrder(t *testing.T) {
	db := setupBookingTestDB(t)
	svc := newTestBookingService(db)
	_, _, _, client := seedCatalog(t, db)

	tests := []struct {
		name        string
		mutate      func(*SubmitReservationInput)
		expectedErr error
	}{
		{
			name:        "Unknown category",
			mutate:      func(in *SubmitReservationInput) { in.CategoryService = "Pedicure" },
			expectedErr: ErrCategoryNotFound,
		},
		{
			name:        "Unknown staff",
			mutate:      func(in *SubmitReservationInput) { in.Staff = "Jan Nowak" },
			expectedErr: ErrStaffNotFound,
		},
		{
			name:        "Unknown service",
			mutate:      func(in *SubmitReservationInput) { in.Service = "Gel Polish" },
			expectedErr: ErrServiceNotFound,
		},
		{
			name:        "Saturday",
			mutate:      func(in *SubmitReservationInput) { in.Date = "2026-01-10" },
			expectedErr: ErrWeekend,
		},
		{
			name:        "Sunday",
			mutate:      func(in *SubmitReservationInput) { in.Date = "2026-01-11" },
			expectedErr: ErrWeekend,
		},
		{
			name:        "Past Friday",
			mutate:      func(in *SubmitReservationInput) { in.Date = "2026-01-02" },
			expectedErr: ErrPastDate,
		},
		{
			name:        "Garbage date",
			mutate:      func(in *SubmitReservationInput) { in.Date = "06-01-2026" },
			expectedErr: ErrInvalidDate,
		},
		{
			// Lookups run before date checks: a bad category on a weekend
			// date fails on the category
			name: "Category check precedes the weekend check",
			mutate: func(in *SubmitReservationInput) {
				in.CategoryService = "Pedicure"
				in.Date = "2026-01-10"
			},
			expectedErr: ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := svc.Submit(client.ID, input)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Equal(t, int64(0), count, "No failed submission persists anything")
}

func TestSubmit_NoDoubleBookingCheck(t *testing.T) {
	db := setupBookingTestDB(t)
	svc := newTestBookingService(db)
	_, _, _, client := seedCatalog(t, db)

	_, err := svc.Submit(client.ID, validInput())
	assert.NoError(t, err)
	_, err = svc.Submit(client.ID, validInput())
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestOptions(t *testing.T) {
	db := setupBookingTestDB(t)
	svc := newTestBookingService(db)
	category, staff, service, _ := seedCatalog(t, db)

	// A second category with nothing attached
	empty := models.ServiceCategory{Name: "Massage"}
	assert.NoError(t, db.Create(&empty).Error)

	options, err := svc.Options(category.ID)
	assert.NoError(t, err)
	assert.Equal(t, category.ID, options.Category.ID)
	assert.Len(t, options.Staff, 1)
	assert.Equal(t, staff.ID, options.Staff[0].ID)
	assert.Len(t, options.Services, 1)
	assert.Equal(t, service.ID, options.Services[0].ID)
	assert.Equal(t, AllTimes, options.AllTimes)

	emptyOptions, err := svc.Options(empty.ID)
	assert.NoError(t, err)
	assert.Empty(t, emptyOptions.Staff)
	assert.Empty(t, emptyOptions.Services)
	assert.Equal(t, AllTimes, emptyOptions.AllTimes)
}

func TestReschedule(t *testing.T) {
	db := setupBookingTestDB(t)
	svc := newTestBookingService(db)
	_, _, _, client := seedCatalog(t, db)

	first, err := svc.Submit(client.ID, validInput())
	assert.NoError(t, err)
	second, err := svc.Submit(client.ID, validInput())
	assert.NoError(t, err)

	moved, err := svc.Reschedule(first.ID, "2026-01-07", "13:00")
	assert.NoError(t, err)
	assert.Equal(t, "13:00", moved.Time)

	// Only the addressed reservation moves
	var other models.Reservation
	assert.NoError(t, db.First(&other, "id = ?", second.ID).Error)
	assert.Equal(t, "10:00", other.Time)

	_, err = svc.Reschedule(first.ID, "2026-01-10", "10:00")
	assert.ErrorIs(t, err, ErrWeekend)

	_, err = svc.Reschedule(first.ID, "2026-01-02", "10:00")
	assert.ErrorIs(t, err, ErrPastDate)
}
