package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fair-api/internal/dto"
	"fair-api/internal/middleware"
	"fair-api/internal/response"
	"fair-api/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AuthenticateQR godoc
// @Summary      Sign in with a QR code
// @Description  Booth QR codes create a booth operator session; entry QR codes create a participant session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.QRAuthRequest true "Scanned QR token"
// @Success      200 {object} response.Envelope{data=dto.AuthResponse}
// @Failure      400 {object} response.Envelope
// @Failure      429 {object} response.Envelope
// @Router       /auth/qr [post]
func (h *AuthHandler) AuthenticateQR(c *gin.Context) {
	var req dto.QRAuthRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.AuthenticateQR(c.Request.Context(), req.QRToken)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// CompleteOnboarding godoc
// @Summary      Mark onboarding as done
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Envelope
// @Failure      401 {object} response.Envelope
// @Router       /auth/onboarding-complete [post]
func (h *AuthHandler) CompleteOnboarding(c *gin.Context) {
	participant, _ := middleware.GetParticipant(c)
	if err := h.authService.CompleteOnboarding(c.Request.Context(), participant.ID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}

// Me godoc
// @Summary      Current participant
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Envelope{data=dto.ParticipantResponse}
// @Failure      401 {object} response.Envelope
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	participant, _ := middleware.GetParticipant(c)
	response.SendSuccess(c, http.StatusOK, h.authService.Profile(participant))
}
