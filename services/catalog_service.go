package services

import (
	"context"

	"github.com/Godtasan552/selling-shirts-backend/models"
)

// FetchProducts returns the full product catalog snapshot from the upstream
// shop API. A malformed collection body degrades to an empty snapshot; only
// transport and status failures surface as errors.
func FetchProducts(ctx context.Context, token string) ([]models.Product, error) {
	body, err := getShopAPI().get(ctx, token, "/products")
	if err != nil {
		return nil, err
	}
	return decodeCollection[models.Product](body, "/products"), nil
}
