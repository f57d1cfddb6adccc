package broadcast_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clip-letter/broadcast"
)

func TestPublishDeliversToSingleSubscriber(t *testing.T) {
	hub := broadcast.NewHub()
	sub := hub.Register()
	defer hub.Unregister(sub)

	require.NoError(t, hub.Publish("report-added", map[string]string{"video_id": "v1"}))

	msg := <-sub.C
	assert.Equal(t, "report-added", msg.Event)
	assert.JSONEq(t, `{"video_id":"v1"}`, msg.Data)
	assert.Empty(t, sub.C)
}

func TestPublishWithZeroSubscribers(t *testing.T) {
	hub := broadcast.NewHub()
	require.NoError(t, hub.Publish("report-added", map[string]string{"video_id": "v1"}))

	// a later subscriber never sees past events
	sub := hub.Register()
	defer hub.Unregister(sub)
	assert.Empty(t, sub.C)
}

func TestPublishEvictsOldestWhenFull(t *testing.T) {
	hub := broadcast.NewHub()
	sub := hub.Register()
	defer hub.Unregister(sub)

	// capacity 64: publish 65, the first one must be gone
	for i := 0; i < 65; i++ {
		require.NoError(t, hub.Publish("report-added", map[string]int{"n": i}))
	}

	assert.Len(t, sub.C, 64)
	first := <-sub.C
	assert.JSONEq(t, `{"n":1}`, first.Data)

	// drain the rest, the newest message must have survived
	var last broadcast.Message
	for len(sub.C) > 0 {
		last = <-sub.C
	}
	assert.JSONEq(t, `{"n":64}`, last.Data)
}

func TestUnregisterIsIdempotent(t *testing.T) {
	hub := broadcast.NewHub()
	sub := hub.Register()

	hub.Unregister(sub)
	hub.Unregister(sub)
	assert.Equal(t, 0, hub.SubscriberCount())

	// publishing after unregister must not deliver
	require.NoError(t, hub.Publish("report-added", map[string]string{"video_id": "v1"}))
	assert.Empty(t, sub.C)
}

func TestPublishFansOut(t *testing.T) {
	hub := broadcast.NewHub()
	var subs []*broadcast.Subscriber
	for i := 0; i < 3; i++ {
		subs = append(subs, hub.Register())
	}

	require.NoError(t, hub.Publish("report-added", map[string]string{"video_id": "v9"}))

	for i, s := range subs {
		msg := <-s.C
		assert.Equal(t, "report-added", msg.Event, fmt.Sprintf("subscriber %d", i))
	}
}
