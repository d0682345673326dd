package client

import (
	"context"
	"fmt"

	"github.com/gotrs-io/tdx-go/types"
)

// LocationsService handles location and room API operations
type LocationsService struct {
	client *Client
}

// List retrieves all locations
func (s *LocationsService) List(ctx context.Context) ([]types.Location, error) {
	var result []types.Location
	err := s.client.Get(ctx, "/locations", &result)
	return result, err
}

// Get retrieves a specific location by ID
func (s *LocationsService) Get(ctx context.Context, id int) (*types.Location, error) {
	path := fmt.Sprintf("/locations/%d", id)
	var result types.Location
	err := s.client.Get(ctx, path, &result)
	return &result, err
}

// Create creates a new location
func (s *LocationsService) Create(ctx context.Context, location *types.Location) (*types.Location, error) {
	var result types.Location
	err := s.client.Post(ctx, "/locations", location, &result)
	return &result, err
}

// Update updates an existing location
func (s *LocationsService) Update(ctx context.Context, id int, location *types.Location) (*types.Location, error) {
	path := fmt.Sprintf("/locations/%d", id)
	var result types.Location
	err := s.client.Put(ctx, path, location, &result)
	return &result, err
}

// Search searches locations with structured criteria
func (s *LocationsService) Search(ctx context.Context, search *types.LocationSearch) ([]types.Location, error) {
	var result []types.Location
	err := s.client.Post(ctx, "/locations/search", search, &result)
	return result, err
}

// CreateRoom adds a room to a location
func (s *LocationsService) CreateRoom(ctx context.Context, locationID int, room *types.LocationRoom) (*types.LocationRoom, error) {
	path := fmt.Sprintf("/locations/%d/rooms", locationID)
	var result types.LocationRoom
	err := s.client.Post(ctx, path, room, &result)
	return &result, err
}

// DeleteRoom removes a room from a location
func (s *LocationsService) DeleteRoom(ctx context.Context, locationID, roomID int) error {
	path := fmt.Sprintf("/locations/%d/rooms/%d", locationID, roomID)
	return s.client.Delete(ctx, path, nil)
}
