package client

import (
	"context"
	"fmt"

	"github.com/gotrs-io/tdx-go/types"
)

// ArticlesService handles knowledge base article API operations
type ArticlesService struct {
	client *Client
}

// Get retrieves a specific article by ID
func (s *ArticlesService) Get(ctx context.Context, id int) (*types.Article, error) {
	path := fmt.Sprintf("/knowledgebase/%d", id)
	var result types.Article
	err := s.client.Get(ctx, path, &result)
	return &result, err
}

// Create creates a new article
func (s *ArticlesService) Create(ctx context.Context, article *types.Article) (*types.Article, error) {
	var result types.Article
	err := s.client.Post(ctx, "/knowledgebase", article, &result)
	return &result, err
}

// Update updates an existing article
func (s *ArticlesService) Update(ctx context.Context, id int, article *types.Article) (*types.Article, error) {
	path := fmt.Sprintf("/knowledgebase/%d", id)
	var result types.Article
	err := s.client.Put(ctx, path, article, &result)
	return &result, err
}

// Delete deletes an article
func (s *ArticlesService) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/knowledgebase/%d", id)
	return s.client.Delete(ctx, path, nil)
}

// Search searches articles with structured criteria
func (s *ArticlesService) Search(ctx context.Context, search *types.ArticleSearch) ([]types.Article, error) {
	var result []types.Article
	err := s.client.Post(ctx, "/knowledgebase/search", search, &result)
	return result, err
}
