package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
	"github.com/dayumstir/IS4103-Capstone/internal/pipeline"
	"github.com/dayumstir/IS4103-Capstone/internal/report"
	"github.com/dayumstir/IS4103-Capstone/pkg/logger"
)

// maxUploadBytes bounds uploaded bureau reports.
const maxUploadBytes = 32 << 20

// CreditHandler handles the credit-rating endpoints.
type CreditHandler struct {
	pipeline *pipeline.Pipeline
	logger   *logger.Logger
}

// NewCreditHandler creates a credit handler.
func NewCreditHandler(p *pipeline.Pipeline, log *logger.Logger) *CreditHandler {
	return &CreditHandler{pipeline: p, logger: log}
}

// UpdateCreditRatingRequest is the body of POST /update-credit-rating.
type UpdateCreditRatingRequest struct {
	CustomerID string `json:"customer_id"`
}

// CreditRatingResponse carries a derived credit rating.
type CreditRatingResponse struct {
	CreditRating int `json:"credit_rating"`
}

// UpdateCreditRating rescores an existing customer from the ledger.
// POST /update-credit-rating
func (h *CreditHandler) UpdateCreditRating(w http.ResponseWriter, r *http.Request) {
	var req UpdateCreditRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CustomerID == "" {
		respondError(w, http.StatusBadRequest, "customer_id is required")
		return
	}

	result, err := h.pipeline.UpdateCreditRating(r.Context(), req.CustomerID)
	if err != nil {
		h.logger.WithError(err).WithField("customer_id", req.CustomerID).
			Error("Failed to update credit rating")
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, CreditRatingResponse{CreditRating: result.Score})
}

// FirstCreditRating scores a prospective customer from uploaded bureau
// reports, or from the market delinquency index when none are attached.
// POST /get-first-credit-rating (multipart form, any file fields)
func (h *CreditHandler) FirstCreditRating(w http.ResponseWriter, r *http.Request) {
	docs, err := uploadedDocuments(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.pipeline.FirstCreditRating(r.Context(), docs)
	if err != nil {
		h.logger.WithError(err).Error("Failed to derive first credit rating")
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, CreditRatingResponse{CreditRating: result.Score})
}

// uploadedDocuments reads every uploaded file into an in-memory PDF source.
// A request without multipart content simply has no documents.
func uploadedDocuments(r *http.Request) ([]contracts.PageTextSource, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, errors.New("invalid multipart body")
	}
	if r.MultipartForm == nil {
		return nil, nil
	}

	var docs []contracts.PageTextSource
	for _, files := range r.MultipartForm.File {
		for _, fh := range files {
			f, err := fh.Open()
			if err != nil {
				return nil, errors.New("cannot open uploaded file")
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, errors.New("cannot read uploaded file")
			}
			docs = append(docs, report.PDFFromBytes(data))
		}
	}
	return docs, nil
}

// statusForError maps pipeline sentinels onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, contracts.ErrSectionNotFound),
		errors.Is(err, contracts.ErrBalanceNotFound),
		errors.Is(err, contracts.ErrUnknownStatusCode),
		errors.Is(err, contracts.ErrFeatureWhitelistMismatch),
		errors.Is(err, contracts.ErrMissingCreditLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, contracts.ErrNoCreditTierMatch),
		errors.Is(err, contracts.ErrAmbiguousCreditTierMatch):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
