package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/parcelbook/internal/models"
	"github.com/example/parcelbook/internal/store"
)

// UserHandler manages user endpoints.
type UserHandler struct {
	users *store.UserStore
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// CreateUser stores a user on first sign-in. Repeat calls with the same
// email return the original record unchanged, whatever the body says.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	email := c.Params("email")

	var payload models.User
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, created, err := h.users.UpsertIfAbsent(email, payload)
	if err != nil {
		return err
	}

	if created {
		return c.Status(fiber.StatusCreated).JSON(user)
	}
	return c.JSON(user)
}

// GetUsersByEmail returns every user matching the email.
func (h *UserHandler) GetUsersByEmail(c *fiber.Ctx) error {
	users, err := h.users.ListByEmail(c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// ListUsers returns every user.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListAll()
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// ListDeliveryMen returns all delivery-men users. The path parameter is
// ignored; the filter is always the DeliveryMen role.
func (h *UserHandler) ListDeliveryMen(c *fiber.Ctx) error {
	users, err := h.users.ListByType(models.UserTypeDeliveryMen)
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// GetUsersByName returns users matching a display name.
func (h *UserHandler) GetUsersByName(c *fiber.Ctx) error {
	users, err := h.users.ListByDisplayName(c.Params("name"))
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// GetProfile returns a single user by email, or null when absent.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.users.FindByEmail(c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

type updateProfileRequest struct {
	PhotoURL string `json:"photoURL"`
}

// UpdateProfile updates the user's photo.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.users.UpdatePhoto(c.Params("email"), req.PhotoURL); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "profile updated"})
}

type setUserTypeRequest struct {
	UserType models.UserType `json:"userType"`
}

// SetUserType assigns a role to a user by id.
func (h *UserHandler) SetUserType(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req setUserTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.UserType == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing userType")
	}

	if err := h.users.SetRole(id, req.UserType); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "user type updated"})
}

// ListUsersWithDetails returns all users with the parcel phone fallback
// applied.
func (h *UserHandler) ListUsersWithDetails(c *fiber.Ctx) error {
	users, err := h.users.ListWithPhoneFallback()
	if err != nil {
		return err
	}
	return c.JSON(users)
}
