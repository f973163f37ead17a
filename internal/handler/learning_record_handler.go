package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fair-api/internal/dto"
	"fair-api/internal/middleware"
	"fair-api/internal/response"
	"fair-api/internal/service"
)

type LearningRecordHandler struct {
	recordService service.LearningRecordService
}

func NewLearningRecordHandler(recordService service.LearningRecordService) *LearningRecordHandler {
	return &LearningRecordHandler{recordService: recordService}
}

// CreateRecord godoc
// @Summary      Write a learning record about a booth
// @Tags         learning-records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateLearningRecordRequest true "Record"
// @Success      200 {object} response.Envelope{data=dto.LearningRecordResponse}
// @Failure      400 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Router       /learning-records [post]
func (h *LearningRecordHandler) CreateRecord(c *gin.Context) {
	var req dto.CreateLearningRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	author, _ := middleware.GetParticipant(c)
	record, err := h.recordService.Create(c.Request.Context(), &req, author)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, record)
}

// GetRecord godoc
// @Summary      Learning record detail
// @Tags         learning-records
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Record ID"
// @Success      200 {object} response.Envelope{data=dto.LearningRecordResponse}
// @Failure      404 {object} response.Envelope
// @Router       /learning-records/{id} [get]
func (h *LearningRecordHandler) GetRecord(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	viewer, _ := middleware.GetParticipant(c)
	record, err := h.recordService.GetByID(c.Request.Context(), id, viewer)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, record)
}

// ListMyRecords godoc
// @Summary      My learning records
// @Tags         learning-records
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Envelope{data=[]dto.LearningRecordResponse}
// @Router       /learning-records/my [get]
func (h *LearningRecordHandler) ListMyRecords(c *gin.Context) {
	participant, _ := middleware.GetParticipant(c)
	records, err := h.recordService.ListMine(c.Request.Context(), participant)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, records)
}

// UpdateRecord godoc
// @Summary      Edit a learning record
// @Description  Author only. A keywordIds array replaces the whole keyword set.
// @Tags         learning-records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Record ID"
// @Param        request body dto.UpdateLearningRecordRequest true "Changes"
// @Success      200 {object} response.Envelope{data=dto.LearningRecordResponse}
// @Failure      403 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Router       /learning-records/{id} [put]
func (h *LearningRecordHandler) UpdateRecord(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateLearningRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	caller, _ := middleware.GetParticipant(c)
	record, err := h.recordService.Update(c.Request.Context(), id, &req, caller)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, record)
}

// DeleteRecord godoc
// @Summary      Delete a learning record
// @Tags         learning-records
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Record ID"
// @Success      200 {object} response.Envelope
// @Failure      403 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Router       /learning-records/{id} [delete]
func (h *LearningRecordHandler) DeleteRecord(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	caller, _ := middleware.GetParticipant(c)
	if err := h.recordService.Delete(c.Request.Context(), id, caller); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}
