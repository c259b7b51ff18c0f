// File path: internal/api/logs_handler.go
package api

import (
	"net/http"

	"github.com/invoiceworks/edicheck/internal/common"
)

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries": common.LogEntries(),
	})
}
