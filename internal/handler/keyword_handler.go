package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fair-api/internal/dto"
	"fair-api/internal/response"
	"fair-api/internal/service"
)

type KeywordHandler struct {
	keywordService service.KeywordService
}

func NewKeywordHandler(keywordService service.KeywordService) *KeywordHandler {
	return &KeywordHandler{keywordService: keywordService}
}

// ListKeywords godoc
// @Summary      Active growth keywords
// @Tags         keywords
// @Produce      json
// @Success      200 {object} response.Envelope{data=[]dto.KeywordResponse}
// @Router       /keywords [get]
func (h *KeywordHandler) ListKeywords(c *gin.Context) {
	keywords, err := h.keywordService.ListActive(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, keywords)
}

// CreateKeyword godoc
// @Summary      Create a keyword
// @Tags         keywords
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateKeywordRequest true "Keyword"
// @Success      200 {object} response.Envelope{data=dto.KeywordResponse}
// @Failure      400 {object} response.Envelope
// @Failure      403 {object} response.Envelope
// @Router       /keywords [post]
func (h *KeywordHandler) CreateKeyword(c *gin.Context) {
	var req dto.CreateKeywordRequest
	if !bindJSON(c, &req) {
		return
	}

	keyword, err := h.keywordService.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, keyword)
}

// UpdateKeyword godoc
// @Summary      Update a keyword
// @Tags         keywords
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Keyword ID"
// @Param        request body dto.UpdateKeywordRequest true "Changes"
// @Success      200 {object} response.Envelope{data=dto.KeywordResponse}
// @Failure      400 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Router       /keywords/{id} [put]
func (h *KeywordHandler) UpdateKeyword(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateKeywordRequest
	if !bindJSON(c, &req) {
		return
	}

	keyword, err := h.keywordService.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, keyword)
}

// DeleteKeyword godoc
// @Summary      Deactivate a keyword
// @Description  Existing booths and records keep the keyword
// @Tags         keywords
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Keyword ID"
// @Success      200 {object} response.Envelope
// @Failure      404 {object} response.Envelope
// @Router       /keywords/{id} [delete]
func (h *KeywordHandler) DeleteKeyword(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.keywordService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}
