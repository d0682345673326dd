package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/gotrs-io/tdx-go/errors"
	"github.com/gotrs-io/tdx-go/types"
)

// EventsService delivers live resource events over a websocket
type EventsService struct {
	client *Client
}

// EventStream is an open websocket connection delivering resource events
type EventStream struct {
	conn *websocket.Conn
}

// Stream opens the event stream. The caller owns the returned stream and
// must close it when done.
func (s *EventsService) Stream(ctx context.Context) (*EventStream, error) {
	token, err := s.client.Token(ctx)
	if err != nil {
		return nil, err
	}

	endpoint, err := wsEndpoint(s.client.baseURL)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	header.Set("User-Agent", s.client.userAgent)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, header)
	if err != nil {
		return nil, &errors.NetworkError{
			Operation: "DIAL",
			URL:       endpoint,
			Err:       err,
		}
	}

	return &EventStream{conn: conn}, nil
}

// Next blocks until the next event arrives or the stream fails
func (st *EventStream) Next() (*types.Event, error) {
	var event types.Event
	if err := st.conn.ReadJSON(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Close closes the underlying connection
func (st *EventStream) Close() error {
	return st.conn.Close()
}

// wsEndpoint converts the API base URL into the websocket events endpoint
func wsEndpoint(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", &errors.ConfigError{Field: "BaseURL", Message: err.Error()}
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = "/ws/events"
	return u.String(), nil
}
