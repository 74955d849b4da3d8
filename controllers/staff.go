package controllers

import (
	"errors"
	"net/http"

	"beautyforyou-backend/config"
	"beautyforyou-backend/models"
	"beautyforyou-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateStaffInput defines the expected JSON structure for creating a staff member
type CreateStaffInput struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Position    int    `json:"position" binding:"required,min=1,max=4"`
	Description string `json:"description"`
}

// UpdateStaffInput defines the expected JSON structure for updating a staff member
type UpdateStaffInput struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Phone       *string `json:"phone"`
	Position    *int    `json:"position" binding:"omitempty,min=1,max=4"`
	Description *string `json:"description"`
}

// AssignCategoryInput links a staff member to a service category
type AssignCategoryInput struct {
	StaffID    string `json:"staffId" binding:"required"`
	CategoryID string `json:"categoryId" binding:"required"`
}

// CreateStaff creates a new staff member
func CreateStaff(c *gin.Context) {
	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateStaffPhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone must be exactly 9 digits")
		return
	}

	staff := models.Staff{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Phone:       input.Phone,
		Position:    input.Position,
		Description: input.Description,
	}

	if err := config.DB.Create(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create staff member")
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// GetStaff retrieves all staff members with their categories
func GetStaff(c *gin.Context) {
	var staff []models.Staff
	if err := config.DB.Preload("Categories").Find(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// GetStaffMember retrieves a specific staff member by ID
func GetStaffMember(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	var staff models.Staff
	if err := config.DB.Preload("Categories").First(&staff, "id = ?", staffUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, staff)
}

// UpdateStaff updates an existing staff member
func UpdateStaff(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	var input UpdateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var staff models.Staff
	if err := config.DB.First(&staff, "id = ?", staffUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.FirstName != nil {
		staff.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		staff.LastName = *input.LastName
	}
	if input.Phone != nil {
		if !utils.ValidateStaffPhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Phone must be exactly 9 digits")
			return
		}
		staff.Phone = *input.Phone
	}
	if input.Position != nil {
		staff.Position = *input.Position
	}
	if input.Description != nil {
		staff.Description = *input.Description
	}

	if err := config.DB.Save(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update staff member")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// DeleteStaff removes a staff member and their reservations
func DeleteStaff(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	result := config.DB.Where("id = ?", staffUUID).Delete(&models.Staff{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete staff member")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		return
	}

	// Reservations for this staff member go with them
	if err := config.DB.Where("staff_id = ?", staffUUID).
		Delete(&models.Reservation{}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete staff reservations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}

// AssignStaffToCategory makes a staff member eligible for a service category
func AssignStaffToCategory(c *gin.Context) {
	var input AssignCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	staffUUID, err := uuid.Parse(input.StaffID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}
	categoryUUID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var staff models.Staff
	if err := config.DB.First(&staff, "id = ?", staffUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var category models.ServiceCategory
	if err := config.DB.First(&category, "id = ?", categoryUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Model(&staff).Association("Categories").Append(&category); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member assigned to category"})
}
