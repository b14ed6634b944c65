package rostersnapshot_test

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisclient "github.com/KirkDiggler/superstar-draft/internal/redis"
	rostersnapshot "github.com/KirkDiggler/superstar-draft/internal/repositories/roster_snapshot"
	"github.com/KirkDiggler/superstar-draft/internal/testutils"
)

func TestScanRedis(t *testing.T) {
	client, mr := testutils.CreateTestRedisClient(t)

	require.NoError(t, mr.Set("roster_snapshot:good", `{"budget":3300000,"draftedRosterNames":["Seth Rollins"],"savedAt":"2025-03-01T12:00:00Z"}`))
	require.NoError(t, mr.Set("roster_snapshot:legacy", `{"budget":4000000,"draftedRosterNames":[]}`))
	require.NoError(t, mr.Set("roster_snapshot:garbled", `{"budget":`))
	require.NoError(t, mr.Set("roster_snapshot:overspent", `{"budget":-100,"draftedRosterNames":[]}`))
	require.NoError(t, mr.Set("roster_snapshot:nobudget", `{"draftedRosterNames":[]}`))
	require.NoError(t, mr.Set("roster_snapshot:noroster", `{"budget":100}`))
	require.NoError(t, mr.Set("unrelated:key", `{`))

	result, err := rostersnapshot.ScanRedis(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, 6, result.Checked)

	reasons := make(map[string]string)
	for _, p := range result.Problems {
		assert.Equal(t, "roster_snapshot:"+p.SessionID, p.Key)
		reasons[p.SessionID] = p.Reason
	}
	assert.Equal(t, map[string]string{
		"garbled":   "corrupted JSON",
		"overspent": "negative budget",
		"nobudget":  "missing budget",
		"noroster":  "missing draftedRosterNames",
	}, reasons)
}

// vanishingClient answers GET for one key as if it expired after SCAN saw it
type vanishingClient struct {
	redisclient.Client
	gone string
}

func (c *vanishingClient) Get(ctx context.Context, key string) *redis.StringCmd {
	if key == c.gone {
		return redis.NewStringResult("", redis.Nil)
	}
	return c.Client.Get(ctx, key)
}

func TestScanRedisSkipsKeysThatVanish(t *testing.T) {
	client, mr := testutils.CreateTestRedisClient(t)

	require.NoError(t, mr.Set("roster_snapshot:kept", `{"budget":100,"draftedRosterNames":[]}`))
	require.NoError(t, mr.Set("roster_snapshot:expired", `{"budget":`))

	result, err := rostersnapshot.ScanRedis(context.Background(),
		&vanishingClient{Client: client, gone: "roster_snapshot:expired"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Checked)
	assert.Empty(t, result.Problems)
}
