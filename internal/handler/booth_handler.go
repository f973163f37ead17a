package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fair-api/internal/dto"
	"fair-api/internal/middleware"
	"fair-api/internal/response"
	"fair-api/internal/service"
)

type BoothHandler struct {
	boothService  service.BoothService
	recordService service.LearningRecordService
}

func NewBoothHandler(boothService service.BoothService, recordService service.LearningRecordService) *BoothHandler {
	return &BoothHandler{
		boothService:  boothService,
		recordService: recordService,
	}
}

// ListBooths godoc
// @Summary      List active booths
// @Description  Ordered by code, each with its current crowd level
// @Tags         booths
// @Produce      json
// @Success      200 {object} response.Envelope{data=[]dto.BoothListResponse}
// @Router       /booths [get]
func (h *BoothHandler) ListBooths(c *gin.Context) {
	booths, err := h.boothService.ListActive(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, booths)
}

// GetBooth godoc
// @Summary      Booth detail
// @Tags         booths
// @Produce      json
// @Param        id path string true "Booth ID"
// @Success      200 {object} response.Envelope{data=dto.BoothDetailResponse}
// @Failure      404 {object} response.Envelope
// @Router       /booths/{id} [get]
func (h *BoothHandler) GetBooth(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	booth, err := h.boothService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, booth)
}

// CreateBooth godoc
// @Summary      Create a booth
// @Description  The caller becomes the booth operator
// @Tags         booths
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBoothRequest true "Booth"
// @Success      200 {object} response.Envelope{data=dto.BoothDetailResponse}
// @Failure      400 {object} response.Envelope
// @Failure      403 {object} response.Envelope
// @Router       /booths [post]
func (h *BoothHandler) CreateBooth(c *gin.Context) {
	var req dto.CreateBoothRequest
	if !bindJSON(c, &req) {
		return
	}

	operator, _ := middleware.GetParticipant(c)
	booth, err := h.boothService.Create(c.Request.Context(), &req, operator)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, booth)
}

// UpdateBooth godoc
// @Summary      Update a booth
// @Description  Only the booth's operator may update it. Omitted fields are unchanged.
// @Tags         booths
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Booth ID"
// @Param        request body dto.UpdateBoothRequest true "Changes"
// @Success      200 {object} response.Envelope{data=dto.BoothDetailResponse}
// @Failure      403 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Router       /booths/{id} [put]
func (h *BoothHandler) UpdateBooth(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBoothRequest
	if !bindJSON(c, &req) {
		return
	}

	caller, _ := middleware.GetParticipant(c)
	booth, err := h.boothService.Update(c.Request.Context(), id, &req, caller)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, booth)
}

// ListBoothRecords godoc
// @Summary      Learning records written about a booth
// @Tags         booths
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Booth ID"
// @Success      200 {object} response.Envelope{data=[]dto.LearningRecordResponse}
// @Failure      404 {object} response.Envelope
// @Router       /booths/{id}/learning-records [get]
func (h *BoothHandler) ListBoothRecords(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	viewer, _ := middleware.GetParticipant(c)
	records, err := h.recordService.ListByBooth(c.Request.Context(), id, viewer)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, records)
}
