// services/booking_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"beautyforyou-backend/models"
	"beautyforyou-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrWeekend             = errors.New("we don't work on weekends")
	ErrPastDate            = errors.New("this date has already passed")
)

// AllTimes is the fixed set of bookable slots, independent of actual
// staff availability.
var AllTimes = []string{
	"07:00", "08:00", "09:00", "10:00", "11:00",
	"12:00", "13:00", "14:00", "15:00",
}

type BookingService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db, now: time.Now}
}

// BookingOptions is what a client needs to fill in the booking form for
// one category. Empty staff or service lists are valid output, not errors.
type BookingOptions struct {
	Category models.ServiceCategory `json:"category"`
	Staff    []models.Staff         `json:"staff"`
	Services []models.Service       `json:"services"`
	AllTimes []string               `json:"allTimes"`
}

type SubmitReservationInput struct {
	CategoryService string `json:"categoryService" binding:"required"`
	Staff           string `json:"staff" binding:"required"` // "First Last"
	Service         string `json:"service" binding:"required"`
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	Time            string `json:"time" binding:"required"`
}

// Options looks up the staff and services eligible for a category and the
// offerable time slots.
func (s *BookingService) Options(categoryID uuid.UUID) (*BookingOptions, error) {
	var category models.ServiceCategory
	if err := s.db.First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	var staff []models.Staff
	if err := s.db.
		Joins("JOIN staff_categories sc ON sc.staff_id = staff.id").
		Where("sc.service_category_id = ?", category.ID).
		Find(&staff).Error; err != nil {
		return nil, err
	}

	var eligible []models.Service
	if err := s.db.
		Joins("JOIN services_categories sc ON sc.service_id = services.id").
		Where("sc.service_category_id = ?", category.ID).
		Find(&eligible).Error; err != nil {
		return nil, err
	}

	return &BookingOptions{
		Category: category,
		Staff:    staff,
		Services: eligible,
		AllTimes: AllTimes,
	}, nil
}

// Submit validates and persists a reservation for the client. Lookups run
// before date checks, each failure short-circuiting. There is deliberately
// no check that the staff member is free at that date/time.
func (s *BookingService) Submit(clientID uuid.UUID, input SubmitReservationInput) (*models.Reservation, error) {
	var category models.ServiceCategory
	if err := s.db.Where("name = ?", input.CategoryService).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	firstName, lastName, ok := strings.Cut(input.Staff, " ")
	if !ok {
		return nil, ErrStaffNotFound
	}
	var staff models.Staff
	if err := s.db.Where("first_name = ? AND last_name = ?", firstName, lastName).
		First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	var service models.Service
	if err := s.db.Where("name = ?", input.Service).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	date, err := s.parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	reservation := models.Reservation{
		ClientID: clientID,
		StaffID:  staff.ID,
		Date:     date,
		Time:     input.Time,
	}
	if err := s.db.Create(&reservation).Error; err != nil {
		return nil, err
	}

	// One service and one category per submission
	if err := s.db.Model(&reservation).Association("Services").Replace(&service); err != nil {
		return nil, err
	}
	if err := s.db.Model(&reservation).Association("Categories").Replace(&category); err != nil {
		return nil, err
	}

	return &reservation, nil
}

// Reschedule moves a single reservation to a new date/time, leaving the
// client, staff and services untouched.
func (s *BookingService) Reschedule(reservationID uuid.UUID, dateStr, timeStr string) (*models.Reservation, error) {
	date, err := s.parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	var reservation models.Reservation
	if err := s.db.First(&reservation, "id = ?", reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&reservation).
		Updates(map[string]interface{}{"date": date, "time": timeStr}).Error; err != nil {
		return nil, err
	}

	reservation.Date = date
	reservation.Time = timeStr
	return &reservation, nil
}

// parseDate parses YYYY-MM-DD and applies the weekend and past-date rules.
func (s *BookingService) parseDate(dateStr string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if utils.IsWeekend(date) {
		return time.Time{}, ErrWeekend
	}
	if date.Before(utils.BeginningOfDay(s.now().UTC())) {
		return time.Time{}, ErrPastDate
	}
	return date, nil
}
