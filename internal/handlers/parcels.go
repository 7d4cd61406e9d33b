package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/parcelbook/internal/models"
	"github.com/example/parcelbook/internal/services"
	"github.com/example/parcelbook/internal/store"
)

// ParcelHandler manages booking endpoints.
type ParcelHandler struct {
	parcels  *store.ParcelStore
	users    *store.UserStore
	notifier *services.BookingNotifier
}

// NewParcelHandler constructs a ParcelHandler.
func NewParcelHandler(parcels *store.ParcelStore, users *store.UserStore, notifier *services.BookingNotifier) *ParcelHandler {
	return &ParcelHandler{parcels: parcels, users: users, notifier: notifier}
}

// CreateParcel books a new parcel delivery.
func (h *ParcelHandler) CreateParcel(c *fiber.Ctx) error {
	var parcel models.Parcel
	if err := c.BodyParser(&parcel); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if parcel.BuyerEmail == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing buyerEmail")
	}

	if err := h.parcels.Insert(&parcel); err != nil {
		return err
	}

	if h.notifier != nil {
		go func(p models.Parcel) {
			_ = h.notifier.NotifyNewBooking(p)
		}(parcel)
	}

	return c.Status(fiber.StatusCreated).JSON(parcel)
}

// ListParcels returns every booking.
func (h *ParcelHandler) ListParcels(c *fiber.Ctx) error {
	parcels, err := h.parcels.ListAll()
	if err != nil {
		return err
	}
	return c.JSON(parcels)
}

// ListMyParcels returns the bookings created by the given buyer email.
func (h *ParcelHandler) ListMyParcels(c *fiber.Ctx) error {
	parcels, err := h.parcels.ListByBuyerEmail(c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(parcels)
}

// GetParcel returns a single booking by id, or null when absent.
func (h *ParcelHandler) GetParcel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	parcel, err := h.parcels.FindByID(id)
	if err != nil {
		return err
	}
	return c.JSON(parcel)
}

// UpdateParcel overwrites the booking's core fields from the request body.
// Fields missing from the body are written as their zero values.
func (h *ParcelHandler) UpdateParcel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var fields models.Parcel
	if err := c.BodyParser(&fields); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.parcels.ReplaceFields(id, fields); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "parcel updated"})
}

type bookingDetailsRequest struct {
	Status                  string `json:"status"`
	DeliveryMenID           string `json:"deliveryMenId"`
	ApproximateDeliveryDate string `json:"approximateDeliveryDate"`
}

// UpdateBookingDetails sets status, assignment and ETA on a booking.
func (h *ParcelHandler) UpdateBookingDetails(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req bookingDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.parcels.UpdateBookingDetails(id, req.Status, req.DeliveryMenID, req.ApproximateDeliveryDate); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "booking details updated"})
}

// ListAssignedParcels resolves a delivery man by email and returns the
// bookings assigned to them. An unknown email yields an empty list.
func (h *ParcelHandler) ListAssignedParcels(c *fiber.Ctx) error {
	user, err := h.users.FindByEmail(c.Params("email"))
	if err != nil {
		return err
	}
	if user == nil {
		return c.JSON([]models.Parcel{})
	}

	parcels, err := h.parcels.ListByDeliveryMenID(user.ID.String())
	if err != nil {
		return err
	}
	return c.JSON(parcels)
}

// CancelParcel forces the booking status to cancelled.
func (h *ParcelHandler) CancelParcel(c *fiber.Ctx) error {
	return h.setStatus(c, models.StatusCancelled)
}

// DeliverParcel forces the booking status to delivered.
func (h *ParcelHandler) DeliverParcel(c *fiber.Ctx) error {
	return h.setStatus(c, models.StatusDelivered)
}

func (h *ParcelHandler) setStatus(c *fiber.Ctx, status string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.parcels.SetStatus(id, status); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "status": status})
}
