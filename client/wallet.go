package client

import (
	"context"

	"github.com/jay-rajapure/Blue-Collar-Worker-Service/models"
)

// GetWallet fetches the customer's balance pair. Read-only here: deposits
// and escrow movements are backend operations outside this client.
func (c *Client) GetWallet(ctx context.Context) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := c.getJSON(ctx, "/api/wallet", true, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}
