package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ortobahn/ortobahn/internal/db"
)

func TestStrategyLifecycle(t *testing.T) {
	database := openTestDB(t)
	client, err := CreateClient(database, &db.Client{Name: "Acme"})
	require.NoError(t, err)

	strategy, err := CreateStrategy(database, &db.Strategy{
		ClientID: client.ID,
		Title:    "Launch push",
		Cadence:  "3x / week",
		Channels: "instagram, linkedin",
	})
	require.NoError(t, err)
	require.NotEmpty(t, strategy.ID)

	got, err := GetStrategyByID(database, strategy.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Launch push", got.Title)

	got.Cadence = "daily"
	require.NoError(t, UpdateStrategy(database, got))

	updated, err := GetStrategyByID(database, strategy.ID)
	require.NoError(t, err)
	assert.Equal(t, "daily", updated.Cadence)

	require.NoError(t, DeleteStrategy(database, strategy.ID))
	gone, err := GetStrategyByID(database, strategy.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestListStrategiesByClient(t *testing.T) {
	database := openTestDB(t)
	clientA, err := CreateClient(database, &db.Client{Name: "A"})
	require.NoError(t, err)
	clientB, err := CreateClient(database, &db.Client{Name: "B"})
	require.NoError(t, err)

	_, err = CreateStrategy(database, &db.Strategy{ClientID: clientA.ID, Title: "one"})
	require.NoError(t, err)
	_, err = CreateStrategy(database, &db.Strategy{ClientID: clientA.ID, Title: "two"})
	require.NoError(t, err)
	_, err = CreateStrategy(database, &db.Strategy{ClientID: clientB.ID, Title: "other"})
	require.NoError(t, err)

	strategies, err := ListStrategiesByClient(database, clientA.ID)
	require.NoError(t, err)
	assert.Len(t, strategies, 2)
}

func TestDeleteClientRemovesChildren(t *testing.T) {
	database := openTestDB(t)
	client, err := CreateClient(database, &db.Client{Name: "Acme"})
	require.NoError(t, err)

	strategy, err := CreateStrategy(database, &db.Strategy{ClientID: client.ID, Title: "plan"})
	require.NoError(t, err)
	post, err := CreatePost(database, &db.Post{ClientID: client.ID, Title: "post"})
	require.NoError(t, err)

	require.NoError(t, DeleteClient(database, client.ID))

	goneStrategy, err := GetStrategyByID(database, strategy.ID)
	require.NoError(t, err)
	assert.Nil(t, goneStrategy)

	gonePost, err := GetPostByID(database, post.ID)
	require.NoError(t, err)
	assert.Nil(t, gonePost)
}
