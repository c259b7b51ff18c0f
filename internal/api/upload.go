// File path: internal/api/upload.go
package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/invoiceworks/edicheck/internal/common"
)

// readUpload accepts either a multipart form with a "file" part or a raw
// request body and returns the payload bytes with the original filename when
// one was supplied.
func (s *Server) readUpload(r *http.Request) ([]byte, string, error) {
	limit := s.cfg.MaxUploadBytes
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(limit); err != nil {
			return nil, "", fmt.Errorf("parse upload form: %w", err)
		}
		if r.MultipartForm != nil {
			defer r.MultipartForm.RemoveAll()
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", fmt.Errorf("missing file part: %w", err)
		}
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, limit))
		if err != nil {
			return nil, "", fmt.Errorf("read upload: %w", err)
		}
		common.Logger().Debug("api: multipart upload received", "name", header.Filename, "bytes", len(data))
		return data, header.Filename, nil
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, limit))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	return data, "", nil
}
