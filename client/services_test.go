package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotrs-io/tdx-go/types"
)

func TestTicketsSearchBody(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	api.mux.HandleFunc("/tickets/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var search types.TicketSearch
		require.NoError(t, json.NewDecoder(r.Body).Decode(&search))
		assert.Equal(t, "printer", search.SearchText)
		assert.Equal(t, []int{1, 2}, search.StatusIDs)

		writeJSON(t, w, []types.Ticket{{ID: 7, Title: "Printer is on fire"}})
	})

	client := NewClientWithPassword(api.serve.URL, "alice", "secret")

	tickets, err := client.Tickets.Search(ctx, &types.TicketSearch{
		SearchText: "printer",
		StatusIDs:  []int{1, 2},
	})
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Printer is on fire", tickets[0].Title)
}

func TestTicketsPatchBody(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	api.mux.HandleFunc("/tickets/42", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)

		var ops []types.PatchOperation
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ops))
		require.Len(t, ops, 1)
		assert.Equal(t, "replace", ops[0].Op)
		assert.Equal(t, "/PriorityID", ops[0].Path)

		writeJSON(t, w, types.Ticket{ID: 42, PriorityID: 3})
	})

	client := NewClientWithPassword(api.serve.URL, "alice", "secret")

	ticket, err := client.Tickets.Patch(ctx, 42, []types.PatchOperation{
		{Op: "replace", Path: "/PriorityID", Value: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, ticket.PriorityID)
}

func TestTicketsFeed(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	api.mux.HandleFunc("/tickets/42/feed", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, []types.TicketFeedEntry{{ID: 1, Comments: "first"}})
		case http.MethodPost:
			var entry types.TicketFeedEntry
			require.NoError(t, json.NewDecoder(r.Body).Decode(&entry))
			assert.Equal(t, "escalating", entry.Comments)
			entry.ID = 2
			writeJSON(t, w, entry)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	client := NewClientWithPassword(api.serve.URL, "alice", "secret")

	feed, err := client.Tickets.GetFeed(ctx, 42)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	entry, err := client.Tickets.AddFeedEntry(ctx, 42, &types.TicketFeedEntry{Comments: "escalating"})
	require.NoError(t, err)
	assert.Equal(t, 2, entry.ID)
}

func TestTicketsAddAttachmentMultipart(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	api.mux.HandleFunc("/tickets/42/attachments", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "error.log", header.Filename)
		assert.Equal(t, "boom", string(content))

		writeJSON(t, w, types.Attachment{UID: "att-1", Name: header.Filename})
	})

	client := NewClientWithPassword(api.serve.URL, "alice", "secret")

	attachment, err := client.Tickets.AddAttachment(ctx, 42, "error.log", strings.NewReader("boom"))
	require.NoError(t, err)
	assert.Equal(t, "att-1", attachment.UID)
}

func TestPeopleLookupQuery(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	api.mux.HandleFunc("/people/lookup", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "smith", r.URL.Query().Get("searchText"))
		assert.Equal(t, "10", r.URL.Query().Get("maxResults"))
		writeJSON(t, w, []types.Person{{UID: "p1", LastName: "Smith"}})
	})

	client := NewClientWithPassword(api.serve.URL, "alice", "secret")

	people, err := client.People.Lookup(ctx, "smith", 10)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, "Smith", people[0].LastName)
}

func TestLocationsRooms(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	api.mux.HandleFunc("/locations/5/rooms", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var room types.LocationRoom
		require.NoError(t, json.NewDecoder(r.Body).Decode(&room))
		room.ID = 9
		writeJSON(t, w, room)
	})
	api.mux.HandleFunc("/locations/5/rooms/9", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	})

	client := NewClientWithPassword(api.serve.URL, "alice", "secret")

	room, err := client.Locations.CreateRoom(ctx, 5, &types.LocationRoom{Name: "B-101"})
	require.NoError(t, err)
	assert.Equal(t, 9, room.ID)

	require.NoError(t, client.Locations.DeleteRoom(ctx, 5, 9))
}

func TestAssetsUserAssociation(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	var gotMethods []string
	api.mux.HandleFunc("/assets/3/users/p1", func(w http.ResponseWriter, r *http.Request) {
		gotMethods = append(gotMethods, r.Method)
		w.WriteHeader(http.StatusOK)
	})

	client := NewClientWithPassword(api.serve.URL, "alice", "secret")

	require.NoError(t, client.Assets.AddUser(ctx, 3, "p1"))
	require.NoError(t, client.Assets.RemoveUser(ctx, 3, "p1"))
	assert.Equal(t, []string{http.MethodPost, http.MethodDelete}, gotMethods)
}

func TestArticlesCRUD(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	api.mux.HandleFunc("/knowledgebase", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var article types.Article
		require.NoError(t, json.NewDecoder(r.Body).Decode(&article))
		article.ID = 11
		writeJSON(t, w, article)
	})
	api.mux.HandleFunc("/knowledgebase/11", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, types.Article{ID: 11, Subject: "VPN setup"})
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	client := NewClientWithPassword(api.serve.URL, "alice", "secret")

	created, err := client.Articles.Create(ctx, &types.Article{Subject: "VPN setup"})
	require.NoError(t, err)
	assert.Equal(t, 11, created.ID)

	article, err := client.Articles.Get(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "VPN setup", article.Subject)

	require.NoError(t, client.Articles.Delete(ctx, 11))
}

func TestAttachmentsContent(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	api.mux.HandleFunc("/attachments/att-1/content", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte{0xde, 0xad, 0xbe, 0xef})
	})

	client := NewClientWithPassword(api.serve.URL, "alice", "secret")

	content, err := client.Attachments.Content(ctx, "att-1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, content)
}

func TestAccountsList(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	api.mux.HandleFunc("/accounts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []types.Account{{ID: 1, Name: "Engineering"}, {ID: 2, Name: "Facilities"}})
	})

	client := NewClientWithPassword(api.serve.URL, "alice", "secret")

	accounts, err := client.Accounts.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Engineering", accounts[0].Name)
}
