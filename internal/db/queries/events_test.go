package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStripeEvent_NewEvent(t *testing.T) {
	database := openTestDB(t)

	isNew, err := RecordStripeEvent(database, "evt_001", "customer.subscription.created")
	require.NoError(t, err)
	assert.True(t, isNew)
}

func TestRecordStripeEvent_Redelivery(t *testing.T) {
	database := openTestDB(t)

	isNew, err := RecordStripeEvent(database, "evt_001", "customer.subscription.created")
	require.NoError(t, err)
	require.True(t, isNew)

	// Same id again is reported as already recorded
	isNew, err = RecordStripeEvent(database, "evt_001", "customer.subscription.created")
	require.NoError(t, err)
	assert.False(t, isNew)

	// Even when the redelivery carries a different type
	isNew, err = RecordStripeEvent(database, "evt_001", "customer.subscription.updated")
	require.NoError(t, err)
	assert.False(t, isNew)

	// The stored record keeps the type it was first recorded with
	event, err := GetStripeEvent(database, "evt_001")
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "customer.subscription.created", event.Type)
}

func TestGetStripeEvent_Unknown(t *testing.T) {
	database := openTestDB(t)

	event, err := GetStripeEvent(database, "evt_missing")
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestRecordStripeEvent_DistinctIDs(t *testing.T) {
	database := openTestDB(t)

	for _, id := range []string{"evt_a", "evt_b", "evt_c"} {
		isNew, err := RecordStripeEvent(database, id, "invoice.paid")
		require.NoError(t, err)
		assert.True(t, isNew, "event %s should be new", id)
	}
}
