package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"gigconnect/internal/delivery/http/middleware"
	"gigconnect/internal/domain/user"
	"gigconnect/internal/pkg/response"
	ucauth "gigconnect/internal/usecase/auth"
)

type AuthHandler struct {
	uc ucauth.Usecase
}

type locationPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type registerRequest struct {
	Email     string           `json:"email" validate:"required,email"`
	Password  string           `json:"password" validate:"required,min=6"`
	Role      string           `json:"role" validate:"required,oneof=client freelancer both"`
	FirstName string           `json:"firstName" validate:"required"`
	LastName  string           `json:"lastName" validate:"required"`
	Location  *locationPayload `json:"location"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User  user.User `json:"user"`
	Token string    `json:"token"`
}

func NewAuthHandler(uc ucauth.Usecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validateStruct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil)
	}

	in := ucauth.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.Location != nil {
		in.Location = &user.Location{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}

	usr, token, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return mapAuthError(err)
	}

	return response.JSON(c, fiber.StatusCreated, authResponse{User: usr, Token: token})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validateStruct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil)
	}

	usr, token, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}

	return response.JSON(c, fiber.StatusOK, authResponse{User: usr, Token: token})
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusBadRequest, "User already exists", err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
