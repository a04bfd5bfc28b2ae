package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/onboarding-wizard/internal/schemas"
	"github.com/jonathan/onboarding-wizard/internal/store"
	"github.com/jonathan/onboarding-wizard/internal/types"
)

// maxSubmissionBytes bounds a multipart submission; files above the 2 MiB
// validation cap plus field overhead are rejected at the transport level.
const maxSubmissionBytes = 8 << 20

// envelope is the uniform response wrapper.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// handleSubmit accepts a completed form as multipart/form-data or JSON,
// validates its shape, and stores it. File parts are reduced to metadata.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	fields, file, err := s.parseSubmission(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid submission: "+err.Error())
		return
	}

	if err := schemas.ValidateSubmission(fields); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			s.logger.Warn("malformed submission payload", zap.Int("violations", len(ve.Errors)))
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to validate payload")
		return
	}

	entry, err := s.store.Save(r.Context(), fields, file)
	if err != nil {
		s.logger.Error("failed to store submission", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to submit form")
		return
	}

	s.logger.Info("form submitted", zap.String("id", entry.ID.String()))
	s.jsonResponse(w, http.StatusOK, envelope{
		Success: true,
		Message: "Form submitted successfully",
		Data:    entry,
	})
}

// handleList returns every stored submission in insertion order.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list submissions", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch data")
		return
	}
	if entries == nil {
		entries = []*store.Entry{}
	}
	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: entries})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Message: "ok"})
}

// parseSubmission extracts the flattened field map and optional file
// metadata from either a multipart or a JSON request body.
func (s *Server) parseSubmission(r *http.Request) (map[string]string, *types.FileRef, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxSubmissionBytes); err != nil {
			return nil, nil, err
		}
		fields := make(map[string]string, len(r.MultipartForm.Value))
		for key, values := range r.MultipartForm.Value {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}

		var file *types.FileRef
		if headers := r.MultipartForm.File["profilePic"]; len(headers) > 0 {
			h := headers[0]
			file = &types.FileRef{
				Filename:    h.Filename,
				ContentType: h.Header.Get("Content-Type"),
				Size:        h.Size,
			}
		}
		return fields, file, nil
	}

	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return nil, nil, err
	}
	return fields, nil, nil
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, envelope{Success: false, Error: message})
}
