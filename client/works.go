package client

import (
	"context"
	"fmt"

	"github.com/jay-rajapure/Blue-Collar-Worker-Service/models"
)

func (c *Client) GetWorks(ctx context.Context) ([]models.Work, error) {
	var works []models.Work
	if err := c.getJSON(ctx, "/api/works", false, &works); err != nil {
		return nil, err
	}
	return works, nil
}

func (c *Client) GetWork(ctx context.Context, id uint) (*models.Work, error) {
	var work models.Work
	if err := c.getJSON(ctx, fmt.Sprintf("/api/works/%d", id), false, &work); err != nil {
		return nil, err
	}
	return &work, nil
}

// GetWorker fetches the slim worker record used by the pre-booking summary.
func (c *Client) GetWorker(ctx context.Context, id uint) (*models.Worker, error) {
	var worker models.Worker
	if err := c.getJSON(ctx, fmt.Sprintf("/auth/%d", id), false, &worker); err != nil {
		return nil, err
	}
	return &worker, nil
}
