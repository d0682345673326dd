package client

import (
	"context"
	"fmt"
	"io"

	"github.com/gotrs-io/tdx-go/types"
)

// AssetsService handles asset-related API operations
type AssetsService struct {
	client *Client
}

// Get retrieves a specific asset by ID
func (s *AssetsService) Get(ctx context.Context, id int) (*types.Asset, error) {
	path := fmt.Sprintf("/assets/%d", id)
	var result types.Asset
	err := s.client.Get(ctx, path, &result)
	return &result, err
}

// Create creates a new asset
func (s *AssetsService) Create(ctx context.Context, asset *types.Asset) (*types.Asset, error) {
	var result types.Asset
	err := s.client.Post(ctx, "/assets", asset, &result)
	return &result, err
}

// Update updates an existing asset
func (s *AssetsService) Update(ctx context.Context, id int, asset *types.Asset) (*types.Asset, error) {
	path := fmt.Sprintf("/assets/%d", id)
	var result types.Asset
	err := s.client.Put(ctx, path, asset, &result)
	return &result, err
}

// Search searches assets with structured criteria
func (s *AssetsService) Search(ctx context.Context, search *types.AssetSearch) ([]types.Asset, error) {
	var result []types.Asset
	err := s.client.Post(ctx, "/assets/search", search, &result)
	return result, err
}

// AddUser associates a person with an asset
func (s *AssetsService) AddUser(ctx context.Context, id int, uid string) error {
	path := fmt.Sprintf("/assets/%d/users/%s", id, uid)
	return s.client.Post(ctx, path, nil, nil)
}

// RemoveUser removes a person's association with an asset
func (s *AssetsService) RemoveUser(ctx context.Context, id int, uid string) error {
	path := fmt.Sprintf("/assets/%d/users/%s", id, uid)
	return s.client.Delete(ctx, path, nil)
}

// AddAttachment uploads a file attachment to an asset
func (s *AssetsService) AddAttachment(ctx context.Context, id int, filename string, content io.Reader) (*types.Attachment, error) {
	path := fmt.Sprintf("/assets/%d/attachments", id)

	var result types.Attachment
	_, err := s.client.httpClient.R().
		SetContext(ctx).
		SetFileReader("file", filename, content).
		SetResult(&result).
		Post(path)

	if err != nil {
		return nil, s.client.wrapErr("POST", path, err)
	}
	return &result, nil
}
