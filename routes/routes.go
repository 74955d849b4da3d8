package routes

import (
	"beautyforyou-backend/config"
	"beautyforyou-backend/controllers"
	"beautyforyou-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.PUT("/profile", controllers.UpdateProfile)
		auth.PUT("/reset-password", controllers.ResetPassword)
	}

	// Public catalog reads
	public := r.Group("/api")
	{
		public.GET("/staff", controllers.GetStaff)
		public.GET("/staff/:id", controllers.GetStaffMember)
		public.GET("/service-categories", controllers.GetServiceCategories)
		public.GET("/services", controllers.GetServices)
		public.GET("/services/:id", controllers.GetService)
		public.GET("/products", controllers.GetProducts)
		public.GET("/products/:id", controllers.GetProduct)
		public.GET("/product-categories", controllers.GetProductCategories)
	}

	// Catalog mutations need the staff role
	admin := r.Group("/api")
	admin.Use(utils.AuthMiddleware(), utils.RequireStaff())
	{
		admin.POST("/staff", controllers.CreateStaff)
		admin.PUT("/staff/:id", controllers.UpdateStaff)
		admin.DELETE("/staff/:id", controllers.DeleteStaff)
		admin.POST("/staff/assign-category", controllers.AssignStaffToCategory)

		admin.POST("/service-categories", controllers.CreateServiceCategory)
		admin.DELETE("/service-categories/:id", controllers.DeleteServiceCategory)

		admin.POST("/services", controllers.CreateService)
		admin.PUT("/services/:id", controllers.UpdateService)
		admin.DELETE("/services/:id", controllers.DeleteService)

		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)

		admin.POST("/product-categories", controllers.CreateProductCategory)
		admin.DELETE("/product-categories/:id", controllers.DeleteProductCategory)
	}

	// Reservation self-service only needs authentication
	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		reservations := api.Group("/reservations")
		{
			reservations.GET("/options/:categoryId", controllers.GetBookingOptions)
			reservations.POST("", controllers.CreateReservation)
			reservations.GET("", controllers.GetMyReservations)
			reservations.PUT("/:id", controllers.UpdateReservation)
			reservations.DELETE("/:id", controllers.DeleteReservation)
		}
	}

	return r
}
