package server

import "time"

// Header names and values
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderContentType    = "Content-Type"
	HeaderValueJSON      = "application/json"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderValueSameOrign = "SAMEORIGIN"
	HeaderNoSniff        = "X-Content-Type-Options"
	HeaderValueNoSniff   = "nosniff"
)

// PublicPaths are reachable without an API key.
var PublicPaths = []string{
	"/healthz",
	"/metrics",
}

// Error messages
const (
	ErrMsgUnauthorized   = "Unauthorized"
	ErrMsgInvalidRequest = "Invalid request body"
	ErrMsgInternal       = "Internal server error"
)

// Log messages
const (
	LogMsgAuthFailed = "Authentication failed"
)

// Server timeouts
const (
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 30 * time.Second
	IdleTimeout     = 60 * time.Second
	ShutdownTimeout = 10 * time.Second

	MaxRequestBytes = 1 << 20 // 1MB
)
