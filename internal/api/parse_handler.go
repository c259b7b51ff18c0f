// File path: internal/api/parse_handler.go
package api

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/invoiceworks/edicheck/internal/common"
	"github.com/invoiceworks/edicheck/internal/common/telemetry"
	"github.com/invoiceworks/edicheck/internal/edi"
	"github.com/invoiceworks/edicheck/internal/export"
)

func (s *Server) handleParseEDI(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	start := time.Now()
	data, name, err := s.readUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("empty EDI upload"))
		return
	}
	doc, parseErr := edi.Parse(data)
	telemetry.RecordParse("edi", len(data), time.Since(start))
	if parseErr != nil {
		var envErr *edi.MalformedEnvelopeError
		if errors.As(parseErr, &envErr) && doc != nil {
			// Surface the partial parse alongside the structural failure.
			fields, _ := doc.FieldValues()
			sort.Strings(fields)
			logger.Warn("api: malformed envelope", "name", name, "error", parseErr, "partial_fields", len(fields))
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  parseErr.Error(),
				"fields": fields,
			})
			return
		}
		writeError(w, http.StatusBadRequest, parseErr)
		return
	}
	is810 := doc.TransactionSetID() == "810"
	if !is810 {
		logger.Warn("api: upload is not an 810", "name", name, "st01", doc.TransactionSetID())
		writeError(w, http.StatusBadRequest, fmt.Errorf("please upload an EDI 810 sample invoice"))
		return
	}
	xmlEcho, err := export.DocumentXML(doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	fields, values := doc.FieldValues()
	sort.Strings(fields)
	logger.Info("api: EDI parsed", "name", name, "segments", len(doc.Segments), "fields", len(fields))
	writeJSON(w, http.StatusOK, parseEDIResponse{
		XML:    xmlEcho,
		Fields: fields,
		Values: values,
		Is810:  is810,
		Notes:  doc.Notes,
	})
}
