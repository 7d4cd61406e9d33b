package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/parcelbook/internal/config"
	"github.com/example/parcelbook/internal/utils"
)

// TokenHandler issues signed identity tokens.
type TokenHandler struct {
	cfg *config.Config
}

// NewTokenHandler constructs a TokenHandler.
func NewTokenHandler(cfg *config.Config) *TokenHandler {
	return &TokenHandler{cfg: cfg}
}

type issueTokenRequest struct {
	Email string `json:"email"`
}

// IssueToken signs a token for the submitted claims. There is no refresh
// mechanism; clients re-submit their claims for a fresh token.
func (h *TokenHandler) IssueToken(c *fiber.Ctx) error {
	var req issueTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing email")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, req.Email, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{"token": token})
}
