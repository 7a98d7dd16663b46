package router

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bistronome/restaurant-app/config"
	"github.com/bistronome/restaurant-app/controllers"
	"github.com/bistronome/restaurant-app/middlewares"
	"github.com/bistronome/restaurant-app/services"
)

func SetupRouter(db *gorm.DB, settings config.RestaurantSettings) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	uploadDir := filepath.Join("public", "uploads")
	r.Static("/uploads", uploadDir)

	// Services
	cartStore := services.NewCartStore()
	cartSvc := services.NewCartService(db, cartStore)
	taxSvc := services.NewTaxCalculationService(settings.VatRate)
	couponSvc := services.NewCouponService(db)
	orderSvc := services.NewOrderService(db, taxSvc, settings)
	reservationSvc := services.NewReservationService(db)
	reviewSvc := services.NewReviewService(db)
	contactSvc := services.NewContactService(db)
	notifier := services.NewLogNotifier()

	// Controllers
	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, cartSvc, couponSvc, notifier)
	couponCtrl := controllers.NewCouponController(db, couponSvc)
	reservationCtrl := controllers.NewReservationController(reservationSvc, notifier)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	galleryCtrl := controllers.NewGalleryController(db, uploadDir)
	contactCtrl := controllers.NewContactController(contactSvc, notifier)
	settingsCtrl := controllers.NewSettingsController(settings)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)

	api := r.Group("/api")
	{
		api.GET("/settings", settingsCtrl.GetSettings)

		api.GET("/cart", cartCtrl.GetCart)
		api.POST("/cart/add", cartCtrl.AddItem)
		api.POST("/cart/update", cartCtrl.UpdateQuantity)
		api.POST("/cart/remove/:item_id", cartCtrl.RemoveItem)
		api.POST("/cart/clear", cartCtrl.ClearCart)

		api.POST("/order", orderCtrl.Checkout)

		api.POST("/coupon/validate", couponCtrl.Validate)
		api.POST("/coupon/apply/:coupon_id", couponCtrl.Apply)
		api.GET("/coupon/list", couponCtrl.List)

		api.POST("/reservation", reservationCtrl.CreateReservation)

		api.GET("/reviews", reviewCtrl.GetApprovedReviews)
		api.POST("/reviews", reviewCtrl.CreateReview)

		api.GET("/gallery", galleryCtrl.GetGallery)

		api.POST("/contact", contactCtrl.CreateMessage)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole("staff"))
	{
		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
		admin.POST("/orders/:order_id/recalculate", orderCtrl.RecalculateOrder)

		admin.POST("/coupons", couponCtrl.CreateCoupon)
		admin.PUT("/coupons/:coupon_id", couponCtrl.UpdateCoupon)
		admin.PATCH("/coupons/:coupon_id/toggle", couponCtrl.ToggleCoupon)
		admin.DELETE("/coupons/:coupon_id", couponCtrl.DeleteCoupon)

		admin.POST("/menus", menuCtrl.CreateMenu)
		admin.PUT("/menus/:menu_id", menuCtrl.UpdateMenu)
		admin.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

		admin.GET("/reservations", reservationCtrl.GetAllReservations)
		admin.PATCH("/reservations/:reservation_id/status", reservationCtrl.UpdateReservationStatus)

		admin.GET("/reviews", reviewCtrl.GetAllReviews)
		admin.PATCH("/reviews/:review_id/approve", reviewCtrl.ApproveReview)
		admin.DELETE("/reviews/:review_id", reviewCtrl.DeleteReview)

		admin.POST("/gallery", galleryCtrl.UploadImage)
		admin.PUT("/gallery/:image_id", galleryCtrl.UpdateImage)
		admin.DELETE("/gallery/:image_id", galleryCtrl.DeleteImage)

		admin.GET("/messages", contactCtrl.GetAllMessages)
		admin.PATCH("/messages/:message_id/read", contactCtrl.MarkMessageRead)
	}

	return r
}
