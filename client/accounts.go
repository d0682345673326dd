package client

import (
	"context"
	"fmt"

	"github.com/gotrs-io/tdx-go/types"
)

// AccountsService handles account/department API operations
type AccountsService struct {
	client *Client
}

// List retrieves all accounts
func (s *AccountsService) List(ctx context.Context) ([]types.Account, error) {
	var result []types.Account
	err := s.client.Get(ctx, "/accounts", &result)
	return result, err
}

// Get retrieves a specific account by ID
func (s *AccountsService) Get(ctx context.Context, id int) (*types.Account, error) {
	path := fmt.Sprintf("/accounts/%d", id)
	var result types.Account
	err := s.client.Get(ctx, path, &result)
	return &result, err
}

// Create creates a new account
func (s *AccountsService) Create(ctx context.Context, account *types.Account) (*types.Account, error) {
	var result types.Account
	err := s.client.Post(ctx, "/accounts", account, &result)
	return &result, err
}

// Update updates an existing account
func (s *AccountsService) Update(ctx context.Context, id int, account *types.Account) (*types.Account, error) {
	path := fmt.Sprintf("/accounts/%d", id)
	var result types.Account
	err := s.client.Put(ctx, path, account, &result)
	return &result, err
}

// Search searches accounts with structured criteria
func (s *AccountsService) Search(ctx context.Context, search *types.AccountSearch) ([]types.Account, error) {
	var result []types.Account
	err := s.client.Post(ctx, "/accounts/search", search, &result)
	return result, err
}
