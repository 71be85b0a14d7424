package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/garnizeh/jobboard/internal/errors"
	"github.com/garnizeh/jobboard/internal/listing"
	"github.com/garnizeh/jobboard/pkg/models"
	"github.com/gorilla/mux"
)

const (
	// MsgInvalidBody is returned when the request body is not a JSON object
	// of the expected shape.
	MsgInvalidBody = "Invalid request body"

	maxBodyBytes = 1 << 20
)

type ListingsHandler struct {
	svc *listing.Service
}

func NewListingsHandler(svc *listing.Service) *ListingsHandler {
	return &ListingsHandler{svc: svc}
}

type listingsResponse struct {
	JobListings []models.JobListing `json:"jobListings"`
}

type listingResponse struct {
	JobListing *models.JobListing `json:"jobListing"`
}

func (h *ListingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(w, r)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	id, err := h.svc.Create(r.Context(), sub)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, messageResponse{Message: "Job listing created successfully", ID: id}, http.StatusCreated)
}

func (h *ListingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	sub, err := decodeSubmission(w, r)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	if err := h.svc.Update(r.Context(), id, sub); err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, messageResponse{Message: "Job listing updated successfully"}, http.StatusOK)
}

func (h *ListingsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	out, err := h.svc.List(r.Context(), q.Get("skills"), q.Get("searchTerm"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, listingsResponse{JobListings: out}, http.StatusOK)
}

func (h *ListingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, listingResponse{JobListing: l}, http.StatusOK)
}

// decodeSubmission reads a submission body. Shape problems are reported as
// invalid input; missing fields are left for the validator.
func decodeSubmission(w http.ResponseWriter, r *http.Request) (models.JobSubmission, error) {
	var sub models.JobSubmission

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return sub, apperrors.InvalidInput(MsgInvalidBody, fmt.Errorf("body exceeds %d bytes", mbe.Limit))
		}
		return sub, apperrors.InvalidInput(MsgInvalidBody, err)
	}
	if !json.Valid(body) {
		return sub, apperrors.InvalidInput(MsgInvalidBody, errors.New("body is not valid JSON"))
	}
	if err := checkShape(r.Context(), body); err != nil {
		return sub, apperrors.InvalidInput(MsgInvalidBody, err)
	}
	if err := json.Unmarshal(body, &sub); err != nil {
		return sub, apperrors.InvalidInput(MsgInvalidBody, err)
	}
	return sub, nil
}
