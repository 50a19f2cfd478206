package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Godtasan552/selling-shirts-backend/config"
	"github.com/Godtasan552/selling-shirts-backend/models"
)

func pointClientAt(t *testing.T, handler http.Handler) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	config.UpstreamBaseURL = srv.URL
	config.UpstreamClient = &http.Client{Timeout: 5 * time.Second}
	shopAPI = nil
	InitShopAPI()
}

func TestFetchProducts_BareArray(t *testing.T) {
	pointClientAt(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			t.Errorf("token must be forwarded, got %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`[{"_id":"p1","name":"Classic Tee","variants":[{"sku":"s","price":290,"quantity":3}]}]`))
	}))

	products, err := FetchProducts(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Fatalf("unexpected products: %+v", products)
	}
	if len(products[0].Variants) != 1 || products[0].Variants[0].Quantity != 3 {
		t.Errorf("variants not decoded: %+v", products[0].Variants)
	}
}

func TestFetchProducts_DataEnvelope(t *testing.T) {
	pointClientAt(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"_id":"p1"},{"_id":"p2"}]}`))
	}))

	products, err := FetchProducts(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
}

func TestFetchProducts_MalformedBodyDegradesToEmpty(t *testing.T) {
	pointClientAt(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	}))

	products, err := FetchProducts(context.Background(), "")
	if err != nil {
		t.Fatalf("shape drift must not raise, got %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty collection, got %d", len(products))
	}
}

func TestFetchProducts_UpstreamErrorStatus(t *testing.T) {
	pointClientAt(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	if _, err := FetchProducts(context.Background(), ""); err == nil {
		t.Fatal("expected an error for a 503 response")
	}
}

func TestFetchUserCount_BothShapes(t *testing.T) {
	pointClientAt(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":42}`))
	}))
	count, err := FetchUserCount(context.Background(), "")
	if err != nil || count != 42 {
		t.Fatalf("wrapped count: got %d, err=%v", count, err)
	}

	pointClientAt(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`17`))
	}))
	count, err = FetchUserCount(context.Background(), "")
	if err != nil || count != 17 {
		t.Fatalf("bare count: got %d, err=%v", count, err)
	}
}

func TestSubmitOrder_ReturnsOrderID(t *testing.T) {
	pointClientAt(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"orderId":"o-777"}`))
	}))

	payload := models.OrderPayload{
		CustomerName: "Somchai J.",
		Items:        []models.CartItem{{ProductID: "p1", SKU: "s", Price: 290, Quantity: 1}},
		TotalPrice:   340,
		ShippingCost: 50,
	}
	id, err := SubmitOrder(context.Background(), "tok", payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "o-777" {
		t.Errorf("order id: got %q, want o-777", id)
	}
}
