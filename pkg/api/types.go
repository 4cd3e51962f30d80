package api

// ServerConfig holds configuration for the HTTP server
type ServerConfig struct {
	Bind string
	Port int
}

// APIResponse is the standard response envelope
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// TableInfo describes one cached table
type TableInfo struct {
	Name    string   `json:"name"`
	ID      int64    `json:"id"`
	Columns []string `json:"columns"`
}

// LogStats describes the row log's active segment
type LogStats struct {
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
}
