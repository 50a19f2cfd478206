package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Godtasan552/selling-shirts-backend/config"
	"github.com/Godtasan552/selling-shirts-backend/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Cart sessions live in Redis for the length of a checkout session. Each
// mutation stores the whole cart snapshot back under the same key - there
// is no per-line state to drift.
const cartSessionTTL = 2 * time.Hour

var ErrCartNotFound = errors.New("cart session not found")

func cartKey(id string) string {
	return "cart:" + id
}

// CreateCartSession stores a new empty cart and returns its id.
func CreateCartSession() (string, error) {
	id := uuid.NewString()
	if err := SaveCartSession(id, models.Cart{}); err != nil {
		return "", err
	}
	return id, nil
}

// GetCartSession loads the cart snapshot for id.
func GetCartSession(id string) (models.Cart, error) {
	raw, err := config.RedisClient.Get(config.Ctx, cartKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cart session load: %w", err)
	}

	var items models.Cart
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("cart session decode: %w", err)
	}
	return items, nil
}

// SaveCartSession replaces the stored snapshot wholesale and refreshes the
// session TTL.
func SaveCartSession(id string, items models.Cart) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cart session encode: %w", err)
	}
	if err := config.RedisClient.Set(config.Ctx, cartKey(id), raw, cartSessionTTL).Err(); err != nil {
		return fmt.Errorf("cart session save: %w", err)
	}
	return nil
}

// DeleteCartSession discards the session, e.g. after a successful checkout.
func DeleteCartSession(id string) {
	if err := config.RedisClient.Del(config.Ctx, cartKey(id)).Err(); err != nil {
		// the TTL will clean it up eventually
		log.Printf("[services.cart-session] WARN delete failed id=%s err=%v", id, err)
	}
}
