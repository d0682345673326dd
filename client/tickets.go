package client

import (
	"context"
	"fmt"
	"io"

	"github.com/gotrs-io/tdx-go/types"
)

// TicketsService handles ticket-related API operations
type TicketsService struct {
	client *Client
}

// Get retrieves a specific ticket by ID
func (s *TicketsService) Get(ctx context.Context, id int) (*types.Ticket, error) {
	path := fmt.Sprintf("/tickets/%d", id)
	var result types.Ticket
	err := s.client.Get(ctx, path, &result)
	return &result, err
}

// Create creates a new ticket
func (s *TicketsService) Create(ctx context.Context, ticket *types.Ticket) (*types.Ticket, error) {
	var result types.Ticket
	err := s.client.Post(ctx, "/tickets", ticket, &result)
	return &result, err
}

// Update updates an existing ticket
func (s *TicketsService) Update(ctx context.Context, id int, ticket *types.Ticket) (*types.Ticket, error) {
	path := fmt.Sprintf("/tickets/%d", id)
	var result types.Ticket
	err := s.client.Put(ctx, path, ticket, &result)
	return &result, err
}

// Patch applies a set of patch operations to a ticket
func (s *TicketsService) Patch(ctx context.Context, id int, operations []types.PatchOperation) (*types.Ticket, error) {
	path := fmt.Sprintf("/tickets/%d", id)
	var result types.Ticket
	err := s.client.Patch(ctx, path, operations, &result)
	return &result, err
}

// Delete deletes a ticket
func (s *TicketsService) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/tickets/%d", id)
	return s.client.Delete(ctx, path, nil)
}

// Search searches tickets with structured criteria
func (s *TicketsService) Search(ctx context.Context, search *types.TicketSearch) ([]types.Ticket, error) {
	var result []types.Ticket
	err := s.client.Post(ctx, "/tickets/search", search, &result)
	return result, err
}

// GetFeed retrieves a ticket's activity feed
func (s *TicketsService) GetFeed(ctx context.Context, id int) ([]types.TicketFeedEntry, error) {
	path := fmt.Sprintf("/tickets/%d/feed", id)
	var result []types.TicketFeedEntry
	err := s.client.Get(ctx, path, &result)
	return result, err
}

// AddFeedEntry posts a new entry to a ticket's activity feed
func (s *TicketsService) AddFeedEntry(ctx context.Context, id int, entry *types.TicketFeedEntry) (*types.TicketFeedEntry, error) {
	path := fmt.Sprintf("/tickets/%d/feed", id)
	var result types.TicketFeedEntry
	err := s.client.Post(ctx, path, entry, &result)
	return &result, err
}

// AddAttachment uploads a file attachment to a ticket
func (s *TicketsService) AddAttachment(ctx context.Context, id int, filename string, content io.Reader) (*types.Attachment, error) {
	path := fmt.Sprintf("/tickets/%d/attachments", id)

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
