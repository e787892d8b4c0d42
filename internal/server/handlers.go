package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/docconv"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/requirements"
	"github.com/jonathan/resume-screener/internal/screening"
)

// ScreenRequest is the JSON body for POST /screen.
type ScreenRequest struct {
	Text       string `json:"text" validate:"required"`
	JobTitle   string `json:"job_title"` // empty falls back to the default qualification block
	SourceName string `json:"source_name"`
}

// BatchRequest is the JSON body for POST /screen/batch.
type BatchRequest struct {
	Requests []screening.Request `json:"requests" validate:"required,min=1,max=100"`
}

// ExtractRequest is the JSON body for POST /extract.
type ExtractRequest struct {
	Text string `json:"text" validate:"required"`
}

// QualificationsRequest is the JSON body for POST /qualifications.
type QualificationsRequest struct {
	JobTitle string `json:"job_title"`
}

// ScreenResponse wraps a screening outcome, carrying the decode warning when
// the pipeline fell back to a filename-derived profile. Metadata is set for
// successful file uploads only.
type ScreenResponse struct {
	Outcome  any               `json:"outcome"`
	Metadata *docconv.Metadata `json:"metadata,omitempty"`
	Warning  string            `json:"warning,omitempty"`
}

// handleScreen screens one resume against a job title. Accepts either a JSON
// body with decoded text or a multipart upload with a "resume" file field.
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		s.screenUpload(w, r)
		return
	}

	var req ScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	outcome := screening.Screen(req.Text, req.JobTitle, req.SourceName)
	s.jsonResponse(w, http.StatusOK, ScreenResponse{Outcome: outcome})
}

// screenUpload handles the multipart form of POST /screen.
func (s *Server) screenUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}
	if int64(len(data)) > s.maxUploadBytes {
		s.errorResponse(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("Upload exceeds limit of %d bytes", s.maxUploadBytes))
		return
	}

	jobTitle := r.FormValue("job_title")

	outcome, err := screening.ScreenDocument(header.Filename, data, jobTitle)
	if err != nil {
		var decodeErr *docconv.DecodeError
		if errors.As(err, &decodeErr) {
			// The verdict still exists, built from the filename fallback
			// profile; surface the degradation instead of hiding it.
			s.log.Warn("document decode failed, used fallback profile",
				zap.String("filename", header.Filename), zap.Error(err))
			s.jsonResponse(w, http.StatusUnprocessableEntity, ScreenResponse{
				Outcome: outcome,
				Warning: decodeErr.Error(),
			})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ScreenResponse{
		Outcome:  outcome,
		Metadata: docconv.NewMetadata(header.Filename, outcome.Profile.RawText),
	})
}

// handleScreenBatch screens multiple resumes concurrently.
func (s *Server) handleScreenBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	outcomes, err := screening.ScreenBatch(r.Context(), req.Requests)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"outcomes": outcomes})
}

// handleExtract runs only the profile extractor.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, extraction.ExtractProfile(req.Text))
}

// handleQualifications runs only the job qualification generator.
func (s *Server) handleQualifications(w http.ResponseWriter, r *http.Request) {
	var req QualificationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, requirements.Generate(req.JobTitle))
}

// validationMessage flattens a validator error into a client-facing message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
		return "Invalid request: " + strings.Join(parts, "; ")
	}
	return "Invalid request: " + err.Error()
}
