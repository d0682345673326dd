package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gotrs-io/tdx-go/types"
)

// PeopleService handles user and customer API operations
type PeopleService struct {
	client *Client
}

// Get retrieves a person by UID
func (s *PeopleService) Get(ctx context.Context, uid string) (*types.Person, error) {
	path := fmt.Sprintf("/people/%s", uid)
	var result types.Person
	err := s.client.Get(ctx, path, &result)
	return &result, err
}

// Create creates a new person
func (s *PeopleService) Create(ctx context.Context, person *types.Person) (*types.Person, error) {
	var result types.Person
	err := s.client.Post(ctx, "/people", person, &result)
	return &result, err
}

// Update updates an existing person
func (s *PeopleService) Update(ctx context.Context, uid string, person *types.Person) (*types.Person, error) {
	path := fmt.Sprintf("/people/%s", uid)
	var result types.Person
	err := s.client.Put(ctx, path, person, &result)
	return &result, err
}

// Lookup performs a simple text lookup across people
func (s *PeopleService) Lookup(ctx context.Context, searchText string, maxResults int) ([]types.Person, error) {
	query := url.Values{}
	query.Set("searchText", searchText)
	if maxResults > 0 {
		query.Set("maxResults", strconv.Itoa(maxResults))
	}
	path := "/people/lookup?" + query.Encode()

	var result []types.Person
	err := s.client.Get(ctx, path, &result)
	return result, err
}

// Search searches people with structured criteria
func (s *PeopleService) Search(ctx context.Context, search *types.PersonSearch) ([]types.Person, error) {
	var result []types.Person
	err := s.client.Post(ctx, "/people/search", search, &result)
	return result, err
}

// GetFunctionalRoles retrieves the functional roles assigned to a person
func (s *PeopleService) GetFunctionalRoles(ctx context.Context, uid string) ([]types.FunctionalRole, error) {
	path := fmt.Sprintf("/people/%s/functionalroles", uid)
	var result []types.FunctionalRole
	err := s.client.Get(ctx, path, &result)
	return result, err
}
