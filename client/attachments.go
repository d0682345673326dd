package client

import (
	"context"
	"fmt"

	"github.com/gotrs-io/tdx-go/types"
)

// AttachmentsService handles attachment lookup across all resource types
type AttachmentsService struct {
	client *Client
}

// Get retrieves attachment metadata by UID
func (s *AttachmentsService) Get(ctx context.Context, uid string) (*types.Attachment, error) {
	path := fmt.Sprintf("/attachments/%s", uid)
	var result types.Attachment
	err := s.client.Get(ctx, path, &result)
	return &result, err
}

// Content downloads an attachment's raw content
func (s *AttachmentsService) Content(ctx context.Context, uid string) ([]byte, error) {
	path := fmt.Sprintf("/attachments/%s/content", uid)

	resp, err := s.client.httpClient.R().
		SetContext(ctx).
		Get(path)

	if err != nil {
		return nil, s.client.wrapErr("GET", path, err)
	}
	return resp.Body(), nil
}

// Delete deletes an attachment
func (s *AttachmentsService) Delete(ctx context.Context, uid string) error {
	path := fmt.Sprintf("/attachments/%s", uid)
	return s.client.Delete(ctx, path, nil)
}
