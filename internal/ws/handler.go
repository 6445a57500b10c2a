package ws

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"gigconnect/internal/delivery/http/middleware"
	"gigconnect/internal/pkg/jwt"
	"gigconnect/internal/usecase/chat"
)

type Handler struct {
	hub       *Hub
	tokens    jwt.Service
	chat      chat.Usecase
	clientURL string
	logger    zerolog.Logger
}

func NewHandler(hub *Hub, tokens jwt.Service, chatUC chat.Usecase, clientURL string, logger zerolog.Logger) *Handler {
	return &Handler{hub: hub, tokens: tokens, chat: chatUC, clientURL: clientURL, logger: logger}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/ws", h.HandleChatWS)
}

// HandleChatWS authenticates the handshake before the upgrade: an invalid
// or missing token is rejected with 401 and no websocket connection is ever
// established. On success the connection is bound to the verified user id
// for its entire lifetime.
func (h *Handler) HandleChatWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	token := c.Query("token")
	if token == "" {
		token, _ = middleware.BearerToken(c.Get("Authorization"))
	}
	if token == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Access token required", nil)
	}

	claims, err := h.tokens.Verify(token)
	if err != nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid token", err)
	}
	userID := claims.UserID

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn().Err(err).Msg("ws upgrade failed")
			return
		}

		client := NewClient(h.hub, conn, userID, h.chat, h.logger)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || h.clientURL == "" {
		return true
	}
	return origin == h.clientURL
}
