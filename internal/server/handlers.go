package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/soyrandom1/scrambles-matcher/internal/wca"
	"github.com/soyrandom1/scrambles-matcher/pkg/importer"
	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
	"github.com/soyrandom1/scrambles-matcher/pkg/importer/output"
)

const (
	// uploadField is the multipart field carrying the uploaded file.
	uploadField = "file"
	// maxUploadSize caps an upload body.
	maxUploadSize = 32 << 20
	// importIDHeader carries the id of a successful import.
	importIDHeader = "X-Import-ID"
)

// HealthHandler reports basic liveness for the service.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleCompetitions(w http.ResponseWriter, r *http.Request) {
	if s.remote == nil {
		writeError(w, http.StatusServiceUnavailable, codeRemoteUnavailable, "WCA access is not configured")
		return
	}

	list, err := s.remote.ManagedCompetitions(r.Context())
	if err != nil {
		s.writeRemoteError(w, r, err)
		return
	}
	if list == nil {
		list = []wca.CompetitionSummary{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleImportWCA(w http.ResponseWriter, r *http.Request) {
	if s.remote == nil {
		writeError(w, http.StatusServiceUnavailable, codeRemoteUnavailable, "WCA access is not configured")
		return
	}

	id := chi.URLParam(r, "competitionId")
	var comp *models.Competition
	err := s.remote.ImportFromCompetition(r.Context(), id, func(c *models.Competition) {
		comp = c
	})
	if err != nil {
		s.countImport(importer.SourceWCA, err)
		s.writeRemoteError(w, r, err)
		return
	}
	s.countImport(importer.SourceWCA, nil)
	s.writeCompetition(w, r, importer.SourceWCA, comp)
}

func (s *Server) handleImportFile(source importer.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		part, err := uploadPart(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeMissingFile, err.Error())
			return
		}
		defer part.Close()

		if ext := strings.ToLower(filepath.Ext(part.FileName())); ext != source.Accept() {
			writeError(w, http.StatusBadRequest, codeInvalidFileType, "expected a "+source.Accept()+" file")
			return
		}

		var comp *models.Competition
		var alert string
		err = importer.HandleUpload(source, part,
			func(c *models.Competition) { comp = c },
			func(message string) { alert = message },
		)
		s.countImport(source, err)

		switch {
		case errors.Is(err, importer.ErrReadFailed):
			s.logger.WarnContext(r.Context(), "upload read failed",
				slog.String("source", string(source)),
				slog.Any("error", err),
			)
			writeError(w, http.StatusBadRequest, codeReadFailed, alert)
		case errors.Is(err, importer.ErrMalformedInput):
			writeError(w, http.StatusUnprocessableEntity, codeMalformedInput, err.Error())
		case err != nil:
			s.logger.ErrorContext(r.Context(), "import failed", slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		default:
			s.writeCompetition(w, r, source, comp)
		}
	}
}

// uploadPart streams the multipart request up to its upload field.
func uploadPart(r *http.Request) (multipartPart, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		return nil, errors.New("expected a multipart/form-data upload")
	}

	mr, err := r.MultipartReader()
	if err != nil {
		return nil, err
	}
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing " + uploadField + " field")
		}
		if err != nil {
			return nil, err
		}
		if part.FormName() == uploadField {
			return part, nil
		}
		part.Close()
	}
}

type multipartPart interface {
	io.ReadCloser
	FileName() string
}

func (s *Server) writeRemoteError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *wca.APIError
	switch {
	case errors.Is(err, wca.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, err.Error())
	case errors.Is(err, wca.ErrCompetitionNotFound):
		writeError(w, http.StatusNotFound, codeCompetitionNotFound, err.Error())
	case errors.Is(err, importer.ErrMalformedInput):
		writeError(w, http.StatusUnprocessableEntity, codeMalformedInput, err.Error())
	case errors.As(err, &apiErr):
		s.logger.ErrorContext(r.Context(), "wca api error", slog.Int("status", apiErr.Status), slog.String("body", apiErr.Body))
		writeError(w, http.StatusBadGateway, codeUpstreamError, "WCA API error")
	default:
		s.logger.ErrorContext(r.Context(), "wca request failed", slog.Any("error", err))
		writeError(w, http.StatusBadGateway, codeUpstreamError, "WCA API unreachable")
	}
}

func (s *Server) writeCompetition(w http.ResponseWriter, r *http.Request, source importer.Source, comp *models.Competition) {
	data, err := output.ToJSON(comp, false)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "encode competition", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}

	id := uuid.NewString()
	s.logger.InfoContext(r.Context(), "import finished",
		slog.String("import_id", id),
		slog.String("source", string(source)),
		slog.Int("events", len(comp.Events)),
		slog.Int("persons", len(comp.Persons)),
	)

	w.Header().Set(importIDHeader, id)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) countImport(source importer.Source, err error) {
	outcome := outcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, importer.ErrReadFailed):
		outcome = outcomeReadFailed
	case errors.Is(err, importer.ErrMalformedInput):
		outcome = outcomeMalformed
	default:
		outcome = outcomeError
	}
	s.metrics.ImportsTotal.WithLabelValues(string(source), outcome).Inc()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
