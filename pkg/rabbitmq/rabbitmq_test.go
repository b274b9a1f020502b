package rabbitmq_test

import (
	"encoding/json"
	"testing"

	"tasklist/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	a := rabbitmq.NewEvent("task.created", 1, 7)
	b := rabbitmq.NewEvent("task.created", 1, 7)

	assert.Equal(t, "task.created", a.Type)
	assert.Equal(t, uint(1), a.UserID)
	assert.Equal(t, uint(7), a.EntityID)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.OccurredAt.IsZero())
}

func TestDecodeEvent(t *testing.T) {
	event := rabbitmq.NewEvent("list.deleted", 3, 9)
	body, err := json.Marshal(event)
	require.NoError(t, err)

	decoded, err := rabbitmq.DecodeEvent(body)
	require.NoError(t, err)
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, event.Type, decoded.Type)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))

	_, err = rabbitmq.DecodeEvent([]byte("not json"))
	assert.Error(t, err)

	_, err = rabbitmq.DecodeEvent([]byte(`{"userId":1}`))
	assert.Error(t, err)
}

func TestPublishEvent_NoChannel(t *testing.T) {
	var client *rabbitmq.Client
	assert.Error(t, client.PublishEvent(rabbitmq.NewEvent("user.deleted", 1, 1)))
}

func TestLogEvent(t *testing.T) {
	assert.NoError(t, rabbitmq.LogEvent(rabbitmq.NewEvent("user.registered", 1, 1)))
}
