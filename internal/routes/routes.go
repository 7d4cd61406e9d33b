package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/parcelbook/internal/config"
	"github.com/example/parcelbook/internal/handlers"
	"github.com/example/parcelbook/internal/middleware"
	"github.com/example/parcelbook/internal/models"
	"github.com/example/parcelbook/internal/services"
	"github.com/example/parcelbook/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	users := store.NewUserStore(db)
	parcels := store.NewParcelStore(db)
	notifier := services.NewBookingNotifier(cfg.TelegramBotToken, cfg.TelegramAdminChat)

	tokenHandler := handlers.NewTokenHandler(cfg)
	userHandler := handlers.NewUserHandler(users)
	parcelHandler := handlers.NewParcelHandler(parcels, users, notifier)

	authed := middleware.RequireAuth(cfg)
	adminOnly := middleware.RequireRole(users, models.UserTypeAdmin)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("application is running")
	})

	app.Post("/jwt", tokenHandler.IssueToken)

	// Users
	app.Post("/users/:email", userHandler.CreateUser)
	app.Get("/users/:email", userHandler.GetUsersByEmail)
	app.Get("/users", authed, adminOnly, userHandler.ListUsers)
	app.Get("/user/:name", userHandler.GetUsersByName)

	// Parcel bookings
	app.Post("/bookedParcels", authed, parcelHandler.CreateParcel)
	app.Get("/allParcels", authed, adminOnly, parcelHandler.ListParcels)
	app.Get("/myParcels/:email", authed, parcelHandler.ListMyParcels)
	app.Get("/singleParcel/:id", authed, parcelHandler.GetParcel)
	app.Patch("/update/:id", authed, parcelHandler.UpdateParcel)
	app.Patch("/bookingDetailsUpdate/:id", authed, adminOnly, parcelHandler.UpdateBookingDetails)
	app.Patch("/cancel/:id", authed, parcelHandler.CancelParcel)
	app.Patch("/deliver/:id", authed, parcelHandler.DeliverParcel)

	// Roles. The literal deliveryMen segment must register before the
	// :x wildcard.
	app.Patch("/handleUserType/:id", authed, userHandler.SetUserType)
	app.Get("/userType/deliveryMen/:email", authed, parcelHandler.ListAssignedParcels)
	app.Get("/userType/:x", authed, adminOnly, userHandler.ListDeliveryMen)

	// Profiles
	app.Get("/userProfile/:email", authed, userHandler.GetProfile)
	app.Patch("/userProfile/:email", authed, userHandler.UpdateProfile)
	app.Get("/allUsersDetails", authed, adminOnly, userHandler.ListUsersWithDetails)
}
