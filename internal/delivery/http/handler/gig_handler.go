package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"gigconnect/internal/delivery/http/middleware"
	"gigconnect/internal/domain/user"
	"gigconnect/internal/pkg/response"
	ucgig "gigconnect/internal/usecase/gig"
)

type GigHandler struct {
	uc ucgig.Usecase
}

type createGigRequest struct {
	Title          string           `json:"title" validate:"required"`
	Description    string           `json:"description" validate:"required"`
	Category       string           `json:"category"`
	BudgetMin      float64          `json:"budgetMin" validate:"gte=0"`
	BudgetMax      float64          `json:"budgetMax" validate:"gte=0"`
	BudgetType     string           `json:"budgetType"`
	Location       *locationPayload `json:"location"`
	IsRemote       bool             `json:"isRemote"`
	Deadline       *time.Time       `json:"deadline"`
	RequiredSkills []string         `json:"requiredSkills"`
}

type applyRequest struct {
	GigID        uuid.UUID `json:"gigId" validate:"required"`
	CoverLetter  string    `json:"coverLetter"`
	ProposedRate float64   `json:"proposedRate" validate:"gte=0"`
}

type applyResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

func NewGigHandler(uc ucgig.Usecase) *GigHandler {
	return &GigHandler{uc: uc}
}

// RegisterRoutes wires the public listing endpoints on r and the
// authenticated mutations on protected.
func (h *GigHandler) RegisterRoutes(r fiber.Router, protected fiber.Router) {
	if r == nil || protected == nil {
		return
	}
	r.Get("/gigs", h.ListGigs)
	r.Get("/freelancers", h.ListFreelancers)
	protected.Post("/gigs", h.CreateGig)
	protected.Post("/gig-applications", h.Apply)
}

func (h *GigHandler) ListGigs(c fiber.Ctx) error {
	gigs, err := h.uc.ListOpenGigs(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, gigs)
}

func (h *GigHandler) ListFreelancers(c fiber.Ctx) error {
	freelancers, err := h.uc.ListFreelancers(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusOK, freelancers)
}

func (h *GigHandler) CreateGig(c fiber.Ctx) error {
	callerID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	var req createGigRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validateStruct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil)
	}

	in := ucgig.CreateGigInput{
		ClientID:       callerID,
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		BudgetMin:      req.BudgetMin,
		BudgetMax:      req.BudgetMax,
		BudgetType:     req.BudgetType,
		IsRemote:       req.IsRemote,
		Deadline:       req.Deadline,
		RequiredSkills: req.RequiredSkills,
	}
	if req.Location != nil {
		in.Location = &user.Location{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}

	g, err := h.uc.CreateGig(c.Context(), in)
	if err != nil {
		return mapGigError(err)
	}

	return response.JSON(c, fiber.StatusCreated, g)
}

func (h *GigHandler) Apply(c fiber.Ctx) error {
	callerID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validateStruct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil)
	}

	a, err := h.uc.Apply(c.Context(), ucgig.ApplyInput{
		GigID:        req.GigID,
		FreelancerID: callerID,
		CoverLetter:  req.CoverLetter,
		ProposedRate: req.ProposedRate,
	})
	if err != nil {
		return mapGigError(err)
	}

	return response.JSON(c, fiber.StatusCreated, applyResponse{ID: a.ID, Message: "Application submitted"})
}

func mapGigError(err error) error {
	switch {
	case errors.Is(err, ucgig.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusBadRequest, "Already applied to this gig", err)
	case errors.Is(err, ucgig.ErrGigNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Gig not found", err)
	case errors.Is(err, ucgig.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
