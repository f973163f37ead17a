package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fair-api/internal/dto"
	"fair-api/internal/middleware"
	"fair-api/internal/response"
	"fair-api/internal/service"
)

type CheckInHandler struct {
	checkInService service.CheckInService
}

func NewCheckInHandler(checkInService service.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInService: checkInService}
}

// CheckInByQR godoc
// @Summary      Check in by scanning a booth QR code
// @Tags         checkins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.QRCheckInRequest true "Booth QR token"
// @Success      200 {object} response.Envelope{data=dto.CheckInResponse}
// @Failure      400 {object} response.Envelope
// @Router       /checkins/qr [post]
func (h *CheckInHandler) CheckInByQR(c *gin.Context) {
	var req dto.QRCheckInRequest
	if !bindJSON(c, &req) {
		return
	}

	participant, _ := middleware.GetParticipant(c)
	resp, err := h.checkInService.CheckInByQR(c.Request.Context(), req.QRToken, participant)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// CheckInByCode godoc
// @Summary      Check in by typing a booth code
// @Tags         checkins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CodeCheckInRequest true "Booth code"
// @Success      200 {object} response.Envelope{data=dto.CheckInResponse}
// @Failure      400 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Router       /checkins/code [post]
func (h *CheckInHandler) CheckInByCode(c *gin.Context) {
	var req dto.CodeCheckInRequest
	if !bindJSON(c, &req) {
		return
	}

	participant, _ := middleware.GetParticipant(c)
	resp, err := h.checkInService.CheckInByCode(c.Request.Context(), req.BoothCode, participant)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// GetMyCheckIns godoc
// @Summary      My check-ins, newest first
// @Tags         checkins
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Envelope{data=[]dto.CheckInResponse}
// @Router       /checkins/my [get]
func (h *CheckInHandler) GetMyCheckIns(c *gin.Context) {
	participant, _ := middleware.GetParticipant(c)
	list, err := h.checkInService.GetMyCheckIns(c.Request.Context(), participant.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, list)
}
