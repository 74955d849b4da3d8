package controllers

import (
	"net/http"

	"beautyforyou-backend/config"
	"beautyforyou-backend/models"
	"beautyforyou-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateServiceCategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// CreateServiceCategory creates a new booking category
func CreateServiceCategory(c *gin.Context) {
	var input CreateServiceCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category := models.ServiceCategory{Name: input.Name}
	if err := config.DB.Create(&category).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetServiceCategories retrieves all booking categories
func GetServiceCategories(c *gin.Context) {
	var categories []models.ServiceCategory
	if err := config.DB.Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// DeleteServiceCategory removes a booking category
func DeleteServiceCategory(c *gin.Context) {
	categoryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	result := config.DB.Where("id = ?", categoryUUID).Delete(&models.ServiceCategory{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
