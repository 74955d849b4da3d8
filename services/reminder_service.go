// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"beautyforyou-backend/models"
	"beautyforyou-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 8 AM
	c.AddFunc("0 8 * * *", s.SendUpcomingReminders)

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendUpcomingReminders texts every client with a reservation tomorrow.
func (s *ReminderService) SendUpcomingReminders() {
	log.Println("Starting reservation reminder processing...")

	reservations, err := s.upcomingReservations()
	if err != nil {
		log.Printf("Failed to fetch upcoming reservations: %v", err)
		return
	}

	for _, reservation := range reservations {
		s.sendReminder(reservation)
	}

	log.Println("Reservation reminder processing completed")
}

func (s *ReminderService) upcomingReservations() ([]models.Reservation, error) {
	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	dayAfter := tomorrow.AddDate(0, 0, 1)

	var reservations []models.Reservation
	err := s.db.Preload("Client").Preload("Staff").
		Where("date >= ? AND date < ?", tomorrow, dayAfter).
		Find(&reservations).Error
	return reservations, err
}

func (s *ReminderService) sendReminder(reservation models.Reservation) {
	if reservation.Client.Phone == "" {
		log.Printf("Reservation %s: client has no phone, skipping reminder", reservation.ID)
		return
	}

	message := fmt.Sprintf(
		"Hi %s, a reminder from Beauty For You: you have an appointment tomorrow at %s with %s.",
		reservation.Client.Name, reservation.Time, reservation.Staff.FullName())

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(reservation.Client.Phone)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", reservation.Client.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", reservation.Client.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", reservation.Client.Phone)
	}

	reminderLog := models.ReminderLog{
		ReservationID: reservation.ID,
		ClientID:      reservation.ClientID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       "sms",
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for reservation %s: %v", reservation.ID, err)
	}
}
