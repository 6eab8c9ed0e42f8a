package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ajharbinger/line-survival-mock/internal/errors"
	"github.com/ajharbinger/line-survival-mock/internal/logger"
	"github.com/ajharbinger/line-survival-mock/internal/middleware"
	"github.com/ajharbinger/line-survival-mock/internal/services"
)

const contentTypeJSON = "application/json"

// PredictRequest is the body of POST /predict
type PredictRequest struct {
	Lines []string `json:"lines"`
}

// PredictResponse carries one probability per requested line
type PredictResponse struct {
	Probabilities []float64 `json:"probabilities"`
}

// ErrorResponse is returned when a request cannot be processed
type ErrorResponse struct {
	Error string `json:"error"`
}

// PredictHandler serves mock line survival predictions
type PredictHandler struct {
	predictions services.PredictionService
	log         logger.Logger
}

// NewPredictHandler creates a new predict handler with service injection
func NewPredictHandler(predictions services.PredictionService, log logger.Logger) *PredictHandler {
	return &PredictHandler{
		predictions: predictions,
		log:         log,
	}
}

// Predict scores every line of the request body
func (h *PredictHandler) Predict(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.fail(c, apperrors.MalformedRequest("failed to read request body", err).WithOperation("predict"))
		return
	}

	lines, err := DecodePredictRequest(body)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.log.Debug("scoring lines", "request_id", c.GetString(middleware.RequestIDKey), "count", len(lines))
	writeJSON(c, http.StatusOK, PredictResponse{Probabilities: h.predictions.Predict(lines)})
}

// DecodePredictRequest extracts the lines from a request body. A missing
// "lines" key yields an empty list; anything that is not an object with
// an array of strings under "lines" is a malformed request.
func DecodePredictRequest(body []byte) ([]string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, apperrors.MalformedRequest("invalid request body", err).WithOperation("predict")
	}
	if fields == nil {
		return nil, apperrors.MalformedRequest("invalid request body",
			errors.New("request body must be a JSON object")).WithOperation("predict")
	}

	raw, ok := fields["lines"]
	if !ok {
		return []string{}, nil
	}

	var lines []string
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, apperrors.MalformedRequest("invalid lines", err).WithOperation("predict")
	}
	if lines == nil {
		return nil, apperrors.MalformedRequest("invalid lines",
			errors.New("lines must be an array of strings")).WithOperation("predict")
	}
	return lines, nil
}

// fail reports err as a JSON error payload. Every processing failure on
// this endpoint is a 500.
func (h *PredictHandler) fail(c *gin.Context, err error) {
	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Reason()
	}

	h.log.Warn("predict request rejected",
		"request_id", c.GetString(middleware.RequestIDKey),
		"error", err.Error(),
	)
	writeJSON(c, http.StatusInternalServerError, ErrorResponse{Error: message})
}

// writeJSON writes v with a bare application/json content type
func writeJSON(c *gin.Context, status int, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		payload, _ = json.Marshal(ErrorResponse{
			Error: apperrors.InternalError("failed to encode response", err).Reason(),
		})
	}
	c.Data(status, contentTypeJSON, payload)
}
