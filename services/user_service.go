package services

import (
	"context"
	"encoding/json"
	"fmt"
)

// FetchUserCount returns the registered-user total for the dashboard. The
// upstream exposes it either as a bare integer or as {"count": n}.
func FetchUserCount(ctx context.Context, token string) (int, error) {
	body, err := getShopAPI().get(ctx, token, "/users/count")
	if err != nil {
		return 0, err
	}

	var count int
	if err := json.Unmarshal(body, &count); err == nil {
		return count, nil
	}

	var wrapped struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return 0, fmt.Errorf("shop api decode user count: %w", err)
	}
	return wrapped.Count, nil
}
