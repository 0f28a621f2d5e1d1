package brackets

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRelay_ForwardsToLocalHub(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := startHub(t)
	relay := NewRedisRelay(rdb, hub, nil)
	require.NoError(t, relay.Start(ctx))

	viewer := joinRoom(t, hub, 42)
	require.NoError(t, relay.TournamentChanged(ctx, 42))

	msg := receive(t, viewer)
	assert.Equal(t, MessageTournamentChanged, msg.Type)
	assert.Equal(t, TournamentChangedPayload{TournamentID: 42}, msg.Payload)
}

func TestRedisRelay_IgnoresMalformedPayload(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := startHub(t)
	relay := NewRedisRelay(rdb, hub, nil)
	require.NoError(t, relay.Start(ctx))
	viewer := joinRoom(t, hub, 5)

	require.NoError(t, rdb.Publish(ctx, relayChannel(5), "not-a-number").Err())
	require.NoError(t, relay.TournamentChanged(ctx, 5))

	msg := receive(t, viewer)
	assert.Equal(t, TournamentChangedPayload{TournamentID: 5}, msg.Payload)
}
