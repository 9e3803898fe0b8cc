// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the order-form converter over HTTP: an upload
// form at "/" and the conversion endpoint at "/convert".
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/orderform/internal/deliverylist"
	"github.com/pdiddy/orderform/internal/orderform"
	"github.com/pdiddy/orderform/pkg/types"
)

const (
	deliveryField = "delivery_file"

	// maxFormMemory is how much of a multipart body is held in memory
	// before parts spill to temporary files.
	maxFormMemory = 32 << 20

	errorMarker = "❌ "
)

// Server serves the upload form and conversion endpoint. It keeps no
// mutable state between requests.
type Server struct {
	cfg  types.ServerConfig
	conv *orderform.Converter
	form *template.Template
}

// New returns a Server that converts uploads with conv.
func New(cfg types.ServerConfig, conv *orderform.Converter) *Server {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = types.DefaultConfig().Server.MaxUploadBytes
	}
	return &Server{
		cfg:  cfg,
		conv: conv,
		form: template.Must(template.New("index").Parse(indexHTML)),
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /convert", s.handleConvert)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Addr returns the listen address from the configuration.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
}

// Run listens on Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s (layout %s)", httpServer.Addr, s.conv.Config().Layout)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	grace := s.cfg.ShutdownGrace
	if grace <= 0 {
		grace = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type indexField struct {
	Name  string
	Label string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	fields := []indexField{{Name: deliveryField, Label: "DeliveryList 파일 (.xlsx)"}}
	for _, c := range s.conv.Config().Categories {
		fields = append(fields, indexField{Name: c.TemplateField, Label: c.Label + " 양식 파일 (.xlsx)"})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.form.Execute(w, fields); err != nil {
		log.Printf("write index: %v", err)
	}
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	w.Header().Set("X-Request-Id", reqID)

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		if isTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("업로드 파일이 너무 큽니다 (최대 %d바이트)", s.cfg.MaxUploadBytes))
			return
		}
		writeError(w, http.StatusBadRequest, "multipart 요청을 읽을 수 없습니다")
		return
	}
	defer r.MultipartForm.RemoveAll()

	delivery, _, err := r.FormFile(deliveryField)
	if err != nil {
		writeError(w, http.StatusBadRequest, deliveryField+" 파일이 필요합니다")
		return
	}
	defer delivery.Close()

	templates := multipartTemplates{form: r.MultipartForm}
	if missing := templates.missingFields(s.conv.Config().Categories); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, strings.Join(missing, ", ")+" 파일이 필요합니다")
		return
	}

	result, err := s.conv.Convert(r.Context(), delivery, templates)
	if err != nil {
		log.Printf("[%s] convert: %v", reqID, err)
		status, msg := errorResponse(err)
		writeError(w, status, msg)
		return
	}

	log.Printf("[%s] convert: %d records, %d unmatched, entries %v",
		reqID, result.Summary.Records, result.Summary.Unmatched, result.Summary.Entries())

	name := s.conv.Config().ArchiveName
	if name == "" {
		name = types.DefaultConfig().Conversion.ArchiveName
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", contentDisposition(name))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Archive)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Archive); err != nil {
		log.Printf("[%s] write response: %v", reqID, err)
	}
}

// errorResponse maps a conversion error to a status code and message.
func errorResponse(err error) (int, string) {
	var missing *deliverylist.MissingColumnsError
	switch {
	case errors.As(err, &missing):
		return http.StatusBadRequest, missing.Error()
	case errors.Is(err, deliverylist.ErrUnreadableSpreadsheet):
		return http.StatusBadRequest, "스프레드시트를 읽을 수 없습니다: " + err.Error()
	case errors.Is(err, orderform.ErrMissingTemplate):
		return http.StatusBadRequest, "양식 파일이 없습니다: " + err.Error()
	case errors.Is(err, orderform.ErrNoMatchingRows):
		return http.StatusUnprocessableEntity, "조건에 맞는 주문이 없습니다"
	default:
		return http.StatusInternalServerError, "발주서 생성 중 오류가 발생했습니다"
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, errorMarker+msg)
}

func contentDisposition(name string) string {
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, name, url.PathEscape(name))
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// multipartTemplates serves category templates from an uploaded form.
type multipartTemplates struct {
	form *multipart.Form
}

func (m multipartTemplates) Open(c types.Category) (io.ReadCloser, error) {
	files := m.form.File[c.TemplateField]
	if len(files) == 0 {
		return nil, fmt.Errorf("%w for category %q", orderform.ErrMissingTemplate, c.Name)
	}
	return files[0].Open()
}

func (m multipartTemplates) missingFields(categories []types.Category) []string {
	var missing []string
	for _, c := range categories {
		if len(m.form.File[c.TemplateField]) == 0 {
			missing = append(missing, c.TemplateField)
		}
	}
	return missing
}

const indexHTML = `<!doctype html>
<html lang="ko">
  <head>
    <meta charset="utf-8">
    <title>다품목 발주서 변환기</title>
  </head>
  <body style="font-family: sans-serif; text-align: center; margin-top: 50px;">
    <h1>📦 다품목 발주서 변환기</h1>
    <form action="/convert" method="post" enctype="multipart/form-data">
{{- range .}}
      <label>{{.Label}}</label><br>
      <input type="file" name="{{.Name}}" accept=".xlsx" required><br><br>
{{- end}}
      <button type="submit">발주서 생성</button>
    </form>
  </body>
</html>
`
