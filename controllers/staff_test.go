package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beautyforyou-backend/config"
	"beautyforyou-backend/models"
	"beautyforyou-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestCreateStaff(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	admin := createTestUser(t, db, "owner@example.com", "staff")

	router := setupTestRouter()
	router.POST("/staff", authAs(admin.ID, "staff"), utils.RequireStaff(), CreateStaff)

	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
	}{
		{
			name: "Valid staff member",
			body: map[string]interface{}{
				"firstName": "Anna",
				"lastName":  "Kowalska",
				"phone":     "123456789",
				"position":  models.PositionNailStylist,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Phone with 8 digits",
			body: map[string]interface{}{
				"firstName": "Ewa",
				"lastName":  "Nowak",
				"phone":     "12345678",
				"position":  models.PositionMasseuse,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Phone with letters",
			body: map[string]interface{}{
				"firstName": "Ewa",
				"lastName":  "Nowak",
				"phone":     "12345678a",
				"position":  models.PositionMasseuse,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Position out of range",
			body: map[string]interface{}{
				"firstName": "Ewa",
				"lastName":  "Nowak",
				"phone":     "123456789",
				"position":  5,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Missing last name",
			body: map[string]interface{}{
				"firstName": "Ewa",
				"phone":     "123456789",
				"position":  models.PositionMasseuse,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/staff", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCreateStaff_ClientForbidden(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	client := createTestUser(t, db, "client@example.com", "client")

	router := setupTestRouter()
	router.POST("/staff", authAs(client.ID, "client"), utils.RequireStaff(), CreateStaff)

	w := postJSON(router, "/staff", map[string]interface{}{
		"firstName": "Anna",
		"lastName":  "Kowalska",
		"phone":     "123456789",
		"position":  models.PositionNailStylist,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	db.Model(&models.Staff{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAssignStaffToCategory(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	admin := createTestUser(t, db, "owner@example.com", "staff")

	staff := models.Staff{
		FirstName: "Anna", LastName: "Kowalska",
		Phone: "123456789", Position: models.PositionNailStylist,
	}
	assert.NoError(t, db.Create(&staff).Error)

	category := models.ServiceCategory{Name: "Manicure"}
	assert.NoError(t, db.Create(&category).Error)

	router := setupTestRouter()
	router.POST("/staff/assign-category", authAs(admin.ID, "staff"), utils.RequireStaff(), AssignStaffToCategory)

	w := postJSON(router, "/staff/assign-category", map[string]interface{}{
		"staffId":    staff.ID.String(),
		"categoryId": category.ID.String(),
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Staff
	assert.NoError(t, db.Preload("Categories").First(&stored, "id = ?", staff.ID).Error)
	assert.Len(t, stored.Categories, 1)
	assert.Equal(t, category.ID, stored.Categories[0].ID)

	// Unknown category
	w = postJSON(router, "/staff/assign-category", map[string]interface{}{
		"staffId":    staff.ID.String(),
		"categoryId": "c1a9f1f4-0000-0000-0000-000000000000",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteStaff_RemovesReservations(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	admin := createTestUser(t, db, "owner@example.com", "staff")
	client := createTestUser(t, db, "client@example.com", "client")

	staff := models.Staff{
		FirstName: "Anna", LastName: "Kowalska",
		Phone: "123456789", Position: models.PositionNailStylist,
	}
	assert.NoError(t, db.Create(&staff).Error)

	reservation := models.Reservation{
		ClientID: client.ID,
		StaffID:  staff.ID,
		Date:     time.Now().AddDate(0, 0, 7),
		Time:     "10:00",
	}
	assert.NoError(t, db.Create(&reservation).Error)

	router := setupTestRouter()
	router.DELETE("/staff/:id", authAs(admin.ID, "staff"), utils.RequireStaff(), DeleteStaff)

	req, _ := http.NewRequest(http.MethodDelete, "/staff/"+staff.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var staffCount, reservationCount int64
	db.Model(&models.Staff{}).Count(&staffCount)
	db.Model(&models.Reservation{}).Count(&reservationCount)
	assert.Equal(t, int64(0), staffCount)
	assert.Equal(t, int64(0), reservationCount, "Deleting staff should remove their reservations")
}

func TestUpdateStaff(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	admin := createTestUser(t, db, "owner@example.com", "staff")

	staff := models.Staff{
		FirstName: "Anna", LastName: "Kowalska",
		Phone: "123456789", Position: models.PositionNailStylist,
	}
	assert.NoError(t, db.Create(&staff).Error)

	router := setupTestRouter()
	router.PUT("/staff/:id", authAs(admin.ID, "staff"), utils.RequireStaff(), UpdateStaff)

	payload, _ := json.Marshal(map[string]interface{}{
		"phone":       "987654321",
		"description": "Senior nail stylist",
	})
	req, _ := http.NewRequest(http.MethodPut, "/staff/"+staff.ID.String(), bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Staff
	assert.NoError(t, db.First(&stored, "id = ?", staff.ID).Error)
	assert.Equal(t, "987654321", stored.Phone)
	assert.Equal(t, "Senior nail stylist", stored.Description)
	assert.Equal(t, "Anna", stored.FirstName, "Unset fields stay unchanged")
}
