// Package http provides HTTP handlers for issuing and verifying self-validating hashes.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/selfhash/internal/hashid/http/dto"
	hashidUseCase "github.com/allisson/selfhash/internal/hashid/usecase"
	"github.com/allisson/selfhash/internal/httputil"
	customValidation "github.com/allisson/selfhash/internal/validation"
)

// HashHandler serves the /v1/hashes endpoints.
type HashHandler struct {
	hashUseCase hashidUseCase.HashUseCase
	logger      *slog.Logger
}

// NewHashHandler creates a HashHandler.
func NewHashHandler(hashUseCase hashidUseCase.HashUseCase, logger *slog.Logger) *HashHandler {
	return &HashHandler{
		hashUseCase: hashUseCase,
		logger:      logger,
	}
}

// ProfileHandler returns the active profile and token lengths.
// GET /v1/hashes/profile
func (h *HashHandler) ProfileHandler(c *gin.Context) {
	info := h.hashUseCase.Profile(c.Request.Context())
	c.JSON(http.StatusOK, dto.MapProfileToResponse(info))
}

// GenerateHandler hashes the submitted data.
// POST /v1/hashes
func (h *HashHandler) GenerateHandler(c *gin.Context) {
	data, ok := h.bindData(c)
	if !ok {
		return
	}

	hash, err := h.hashUseCase.Generate(c.Request.Context(), data)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.HashResponse{Hash: hash})
}

// GenerateRandomHandler hashes fresh random bytes.
// POST /v1/hashes/random
func (h *HashHandler) GenerateRandomHandler(c *gin.Context) {
	hash, err := h.hashUseCase.GenerateRandom(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.HashResponse{Hash: hash})
}

// GenerateSelfValidateHandler issues a self-validating hash of the submitted data.
// POST /v1/hashes/self-validating
func (h *HashHandler) GenerateSelfValidateHandler(c *gin.Context) {
	data, ok := h.bindData(c)
	if !ok {
		return
	}

	hash, err := h.hashUseCase.GenerateSelfValidate(c.Request.Context(), data)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.HashResponse{Hash: hash})
}

// GenerateRandomSelfValidateHandler issues a self-validating hash of fresh random bytes.
// POST /v1/hashes/self-validating/random
func (h *HashHandler) GenerateRandomSelfValidateHandler(c *gin.Context) {
	hash, err := h.hashUseCase.GenerateRandomSelfValidate(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.HashResponse{Hash: hash})
}

// GenerateCrcHandler returns the checksum of the submitted data.
// POST /v1/hashes/crc
func (h *HashHandler) GenerateCrcHandler(c *gin.Context) {
	data, ok := h.bindData(c)
	if !ok {
		return
	}

	crc, err := h.hashUseCase.GenerateCrc(c.Request.Context(), data)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.CrcResponse{Crc: crc})
}

// VerifyHandler checks a plain hash against the submitted data. A mismatch is a 200
// with valid=false.
// POST /v1/hashes/verify
func (h *HashHandler) VerifyHandler(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}
	data, err := req.Bytes()
	if err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	valid, err := h.hashUseCase.Verify(c.Request.Context(), data, req.Hash)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{Valid: valid})
}

// VerifySelfValidateHandler checks the checksum carried by a self-validating hash.
// POST /v1/hashes/self-validating/verify
func (h *HashHandler) VerifySelfValidateHandler(c *gin.Context) {
	req, ok := h.bindHash(c)
	if !ok {
		return
	}

	valid, err := h.hashUseCase.VerifySelfValidate(c.Request.Context(), req.Hash)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{Valid: valid})
}

// InspectHandler splits a self-validating hash into main hash and checksum.
// POST /v1/hashes/inspect
func (h *HashHandler) InspectHandler(c *gin.Context) {
	req, ok := h.bindHash(c)
	if !ok {
		return
	}

	inspection, err := h.hashUseCase.Inspect(c.Request.Context(), req.Hash)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapInspectionToResponse(inspection))
}

// bindData parses and decodes a DataRequest, writing the error response on failure.
func (h *HashHandler) bindData(c *gin.Context) ([]byte, bool) {
	var req dto.DataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return nil, false
	}
	data, err := req.Bytes()
	if err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return nil, false
	}
	return data, true
}

func (h *HashHandler) bindHash(c *gin.Context) (*dto.HashRequest, bool) {
	var req dto.HashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return nil, false
	}
	return &req, true
}

// RegisterRoutes mounts the handlers on router.
func (h *HashHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/profile", h.ProfileHandler)
	router.POST("", h.GenerateHandler)
	router.POST("/random", h.GenerateRandomHandler)
	router.POST("/crc", h.GenerateCrcHandler)
	router.POST("/verify", h.VerifyHandler)
	router.POST("/inspect", h.InspectHandler)
	router.POST("/self-validating", h.GenerateSelfValidateHandler)
	router.POST("/self-validating/random", h.GenerateRandomSelfValidateHandler)
	router.POST("/self-validating/verify", h.VerifySelfValidateHandler)
}
