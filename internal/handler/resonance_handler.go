package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fair-api/internal/domain"
	"fair-api/internal/dto"
	"fair-api/internal/middleware"
	"fair-api/internal/response"
	"fair-api/internal/service"
)

type ResonanceHandler struct {
	resonanceService service.ResonanceService
}

func NewResonanceHandler(resonanceService service.ResonanceService) *ResonanceHandler {
	return &ResonanceHandler{resonanceService: resonanceService}
}

// ToggleResonance godoc
// @Summary      Toggle a resonance on a learning record
// @Description  Adds the resonance if absent, removes it if present
// @Tags         resonances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.ToggleResonanceRequest true "Record and type"
// @Success      200 {object} response.Envelope{data=dto.ResonanceResponse}
// @Failure      400 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Router       /resonances [post]
func (h *ResonanceHandler) ToggleResonance(c *gin.Context) {
	var req dto.ToggleResonanceRequest
	if !bindJSON(c, &req) {
		return
	}

	resonanceType, err := domain.ParseResonanceType(req.Type)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Validation failed: type: "+err.Error())
		return
	}

	participant, _ := middleware.GetParticipant(c)
	resp, err := h.resonanceService.Toggle(c.Request.Context(), req.RecordID, resonanceType, participant)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}
