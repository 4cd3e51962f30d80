package api

import (
	"encoding/json"
	"net/http"
)

// handleHealth reports liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleTables lists the tables currently in the catalog cache
func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	tables := []TableInfo{}
	if s.catalog != nil {
		for _, name := range s.catalog.Tables() {
			id, err := s.catalog.TableID(name)
			if err != nil {
				continue // evicted between listing and lookup
			}
			tables = append(tables, TableInfo{
				Name:    name,
				ID:      id,
				Columns: s.catalog.ColumnNames(name),
			})
		}
	}
	sendSuccess(w, tables)
}

// handleStats reports row log statistics
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.log == nil {
		sendError(w, "row log unavailable", http.StatusServiceUnavailable)
		return
	}
	sendSuccess(w, LogStats{
		Path:      s.log.Path(),
		SizeBytes: s.log.Size(),
	})
}

// sendSuccess sends a successful JSON response
func sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: true,
		Data:    data,
	})
}

// sendError sends an error JSON response
func sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error:   message,
	})
}
