package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func openTestRepository(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()
	conn, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "mural.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	repo, err := NewRepository(conn)
	require.NoError(t, err)
	return repo.(*Repository), conn
}

func Test_Create_Assigns_ID_And_Timestamp(t *testing.T) {
	req := require.New(t)
	repo, _ := openTestRepository(t)
	ctx := context.Background()

	start := time.Now().UTC()
	message, err := repo.Create(ctx, "Ana", "Oi!")
	req.NoError(err)

	req.NotEmpty(message.ID)
	req.Equal("Ana", message.Author)
	req.Equal("Oi!", message.Body)
	req.False(message.CreatedAt.Before(start))
}

func Test_Create_Assigns_Unique_IDs(t *testing.T) {
	req := require.New(t)
	repo, _ := openTestRepository(t)
	ctx := context.Background()

	ids := make(map[string]bool)
	for i := 0; i < 50; i++ {
		message, err := repo.Create(ctx, "Ana", "Oi!")
		req.NoError(err)
		req.False(ids[message.ID])
		ids[message.ID] = true
	}
}

func Test_List_Returns_Newest_First(t *testing.T) {
	req := require.New(t)
	repo, _ := openTestRepository(t)
	ctx := context.Background()

	authors := []string{"Alice", "Bob", "Clara"}
	for _, author := range authors {
		_, err := repo.Create(ctx, author, "this message will self destruct in 5 seconds")
		req.NoError(err)
	}

	messages, err := repo.List(ctx)
	req.NoError(err)
	req.Len(messages, len(authors))
	req.Equal("Clara", messages[0].Author)
	req.Equal("Bob", messages[1].Author)
	req.Equal("Alice", messages[2].Author)
	for i := 1; i < len(messages); i++ {
		req.False(messages[i-1].CreatedAt.Before(messages[i].CreatedAt))
	}
}

func Test_List_Empty_Board(t *testing.T) {
	req := require.New(t)
	repo, _ := openTestRepository(t)

	messages, err := repo.List(context.Background())
	req.NoError(err)
	req.Empty(messages)
	req.NotNil(messages)
}

func Test_List_After_Close_Fails(t *testing.T) {
	req := require.New(t)
	repo, conn := openTestRepository(t)
	req.NoError(conn.Close())

	_, err := repo.List(context.Background())
	req.Error(err)
}
