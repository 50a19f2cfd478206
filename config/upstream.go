package config

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"
)

// The upstream shop API owns all persistent state (catalog, orders, users).
// This service only computes over snapshots fetched from it.
var (
	UpstreamBaseURL string
	UpstreamClient  *http.Client
)

func InitUpstream() {
	UpstreamBaseURL = os.Getenv("SHOP_API_URL")
	if UpstreamBaseURL == "" {
		UpstreamBaseURL = "http://localhost:5000/api"
		log.Println("⚠️  SHOP_API_URL not set, using local default:", UpstreamBaseURL)
	}

	UpstreamClient = &http.Client{Timeout: 15 * time.Second}
	log.Println("✅ Upstream shop API client ready:", UpstreamBaseURL)
}

// WithTimeout returns a context with a 10s timeout for upstream calls
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
