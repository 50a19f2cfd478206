package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Godtasan552/selling-shirts-backend/models"
)

// FetchOrders returns the order list snapshot for the admin dashboard.
func FetchOrders(ctx context.Context, token string) ([]models.Order, error) {
	body, err := getShopAPI().get(ctx, token, "/orders")
	if err != nil {
		return nil, err
	}
	return decodeCollection[models.Order](body, "/orders"), nil
}

// SubmitOrder posts the assembled checkout payload to the upstream API and
// returns the created order id.
func SubmitOrder(ctx context.Context, token string, payload models.OrderPayload) (string, error) {
	body, err := getShopAPI().post(ctx, token, "/orders", payload)
	if err != nil {
		return "", err
	}

	var created struct {
		OrderID string `json:"orderId"`
		ID      string `json:"_id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("shop api decode order response: %w", err)
	}
	if created.OrderID != "" {
		return created.OrderID, nil
	}
	if created.ID != "" {
		return created.ID, nil
	}
	return "", fmt.Errorf("shop api order response missing order id")
}
