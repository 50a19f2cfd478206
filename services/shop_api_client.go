package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/Godtasan552/selling-shirts-backend/config"
)

// ShopAPIClient is the shared transport for every upstream collaborator.
// The bearer token is passed explicitly on every call - nothing in this
// package reads credentials from ambient state.
type ShopAPIClient struct {
	baseURL string
	http    *http.Client
}

var shopAPI *ShopAPIClient

// InitShopAPI wires the collaborators to the configured upstream API.
// Call after config.InitUpstream().
func InitShopAPI() {
	shopAPI = &ShopAPIClient{
		baseURL: config.UpstreamBaseURL,
		http:    config.UpstreamClient,
	}
}

func getShopAPI() *ShopAPIClient {
	if shopAPI == nil {
		// Fallback for tools that skip main's init order
		InitShopAPI()
	}
	return shopAPI
}

func (s *ShopAPIClient) get(ctx context.Context, token, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	return s.do(req, token)
}

func (s *ShopAPIClient) post(ctx context.Context, token, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return s.do(req, token)
}

func (s *ShopAPIClient) do(req *http.Request, token string) ([]byte, error) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shop api %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("shop api read %s: %w", req.URL.Path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("shop api %s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	return body, nil
}

// decodeCollection accepts either a bare JSON array or the upstream's
// {"data": [...]} envelope. Anything else degrades to an empty collection
// so the aggregators downstream see zero elements instead of an error.
func decodeCollection[T any](body []byte, path string) []T {
	var items []T
	if err := json.Unmarshal(body, &items); err == nil {
		return items
	}

	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data
	}

	log.Printf("[services.shop-api] WARN unexpected collection shape from %s, treating as empty", path)
	return nil
}
