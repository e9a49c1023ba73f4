package client_test

import (
	"context"
	"database/sql"
	"net/http/httptest"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/ponyo877/mural/cli/client"
	"github.com/ponyo877/mural/server/adaptor"
	"github.com/ponyo877/mural/server/domain"
	"github.com/ponyo877/mural/server/repository"
	"github.com/ponyo877/mural/server/usecase"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestStack runs the real server in-process and returns a client
// pointed at it.
func newTestStack(t *testing.T) (*client.Client, *domain.Hub) {
	t.Helper()
	conn, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "mural.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	repo, err := repository.NewRepository(conn)
	require.NoError(t, err)

	hub := domain.NewHub()
	t.Cleanup(hub.Close)

	log := zap.NewNop().Sugar()
	uc := usecase.NewUsecase(repo, hub, log)
	srv := httptest.NewServer(adaptor.NewAdaptor(uc, hub, log).Router())
	t.Cleanup(srv.Close)
	return client.New(srv.URL), hub
}

func Test_Client_Create_And_List_Round_Trip(t *testing.T) {
	req := require.New(t)
	c, _ := newTestStack(t)
	ctx := context.Background()

	created, err := c.CreateMessage(ctx, "Ana", "Oi!")
	req.NoError(err)
	req.NotEmpty(created.ID)
	req.Equal("Ana", created.Author)

	messages, err := c.ListMessages(ctx)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal(created.ID, messages[0].ID)
	req.Equal(created.Body, messages[0].Body)
}

func Test_Client_Create_Blank_Author_Fails(t *testing.T) {
	req := require.New(t)
	c, _ := newTestStack(t)

	_, err := c.CreateMessage(context.Background(), "  ", "Oi!")
	req.Error(err)
	req.Contains(err.Error(), "author and body are required")

	messages, err := c.ListMessages(context.Background())
	req.NoError(err)
	req.Empty(messages)
}

func Test_Client_List_Server_Down(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(nil)
	c := client.New(srv.URL)
	srv.Close()

	_, err := c.ListMessages(context.Background())
	req.Error(err)
}

func Test_Client_Listen_Receives_Broadcast(t *testing.T) {
	req := require.New(t)
	c, hub := newTestStack(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan domain.Event, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.Listen(ctx, func(event domain.Event) {
			select {
			case received <- event:
			default:
			}
		})
	}()

	req.Eventually(func() bool { return hub.SessionCount() == 1 },
		waitFor, tick)

	created, err := c.CreateMessage(ctx, "Ana", "Oi!")
	req.NoError(err)

	select {
	case event := <-received:
		req.Equal(domain.EventNewMessage, event.Name)
		req.Equal(created, event.Data)
	case <-timeout(t):
		t.Fatal("live event was not delivered")
	}

	cancel()
	<-done
}
