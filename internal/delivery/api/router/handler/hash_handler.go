package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"hashsvc/internal/delivery/api/response"
	"hashsvc/internal/delivery/api/validator"
	"hashsvc/internal/domain/entity"
	domainerrors "hashsvc/internal/domain/errors"
	"hashsvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HashHandlerParams holds dependencies for HashHandler, injected by Fx.
type HashHandlerParams struct {
	fx.In

	HashingUC usecase.HashingUsecase
	Logger    *slog.Logger
}

// HashHandler serves the hash, match and inspection endpoints
type HashHandler struct {
	hashingUC usecase.HashingUsecase
	logger    *slog.Logger
}

// NewHashHandler is the constructor for HashHandler
func NewHashHandler(params HashHandlerParams) *HashHandler {
	return &HashHandler{
		hashingUC: params.HashingUC,
		logger:    params.Logger,
	}
}

// HashRequest represents the request body for computing a hash.
// Fields are pointers so that an absent field differs from an empty one.
type HashRequest struct {
	HashingAlgorithm *string `json:"hashingAlgorithm" validate:"required"`
	PlainText        *string `json:"plainText" validate:"required"`
}

// HashResponse carries a freshly computed artifact
type HashResponse struct {
	Hash string `json:"hash"`
}

// MatchRequest represents the request body for verifying a plaintext
type MatchRequest struct {
	PlainText *string `json:"plainText" validate:"required"`
	Hash      *string `json:"hash" validate:"required"`
}

// MatchResponse reports the verification result
type MatchResponse struct {
	Matches bool `json:"matches"`
}

// InspectRequest names the artifact to describe
type InspectRequest struct {
	Hash *string `json:"hash" validate:"required"`
}

// InspectResponse is the metadata embedded in an artifact
type InspectResponse struct {
	Algorithm string `json:"algorithm"`
	Cost      int    `json:"cost"`
}

// AlgorithmResponse describes one supported algorithm
type AlgorithmResponse struct {
	Name    string `json:"name"`
	MinCost int    `json:"minCost"`
	MaxCost int    `json:"maxCost"`
}

// AlgorithmsResponse lists the supported algorithms
type AlgorithmsResponse struct {
	Algorithms  []AlgorithmResponse `json:"algorithms"`
	DefaultCost int                 `json:"defaultCost"`
}

// Hash handles hash computation
func (h *HashHandler) Hash(c echo.Context) error {
	var req HashRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	hash, err := h.hashingUC.Hash(c.Request().Context(), entity.HashJob{
		PlainText:        *req.PlainText,
		HashingAlgorithm: *req.HashingAlgorithm,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, HashResponse{Hash: hash})
}

// Match handles plaintext verification
func (h *HashHandler) Match(c echo.Context) error {
	var req MatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	matches, err := h.hashingUC.Match(c.Request().Context(), entity.VerifyJob{
		PlainText: *req.PlainText,
		Hash:      *req.Hash,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MatchResponse{Matches: matches})
}

// Inspect handles artifact inspection
func (h *HashHandler) Inspect(c echo.Context) error {
	var req InspectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	info, err := h.hashingUC.Inspect(c.Request().Context(), *req.Hash)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, InspectResponse{
		Algorithm: info.Algorithm.String(),
		Cost:      info.Cost,
	})
}

// Algorithms lists what the service can compute
func (h *HashHandler) Algorithms(c echo.Context) error {
	catalog := h.hashingUC.Algorithms(c.Request().Context())

	resp := AlgorithmsResponse{
		Algorithms:  make([]AlgorithmResponse, 0, len(catalog.Algorithms)),
		DefaultCost: catalog.DefaultCost,
	}
	for _, info := range catalog.Algorithms {
		resp.Algorithms = append(resp.Algorithms, AlgorithmResponse{
			Name:    info.Algorithm.String(),
			MinCost: info.CostRange.Min,
			MaxCost: info.CostRange.Max,
		})
	}

	return response.Success(c, http.StatusOK, resp)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the body into req. Oversized bodies keep echo's
// 413, anything else is a validation failure naming the fields at fault.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
			return err
		}

		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(validator.Describe(err), "; "))
	}

	return nil
}
