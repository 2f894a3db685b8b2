package mocks

import (
	"context"

	"asset-sorter/core/assets"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of assets.Client
type Client struct {
	mock.Mock
}

func (m *Client) Search(ctx context.Context, req assets.SearchRequest) (*assets.SearchResult, error) {
	args := m.Called(ctx, req)
	if res, ok := args.Get(0).(*assets.SearchResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Update(ctx context.Context, id string, metadata map[string]any) error {
	args := m.Called(ctx, id, metadata)
	return args.Error(0)
}

func (m *Client) UpdateBulk(ctx context.Context, query string, metadata map[string]any) (int, error) {
	args := m.Called(ctx, query, metadata)
	return args.Int(0), args.Error(1)
}

func (m *Client) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
