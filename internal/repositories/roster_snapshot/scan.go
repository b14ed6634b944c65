package rostersnapshot

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/superstar-draft/internal/errors"
	redisclient "github.com/KirkDiggler/superstar-draft/internal/redis"
)

// Problem describes why a stored snapshot cannot be restored
type Problem struct {
	SessionID string
	Key       string
	Reason    string
}

// ScanResult summarizes a pass over every stored snapshot
type ScanResult struct {
	Checked  int
	Problems []Problem
}

// rawRecord tells an absent key apart from a zero value
type rawRecord struct {
	Budget *int64    `json:"budget"`
	Names  *[]string `json:"draftedRosterNames"`
}

// ScanRedis walks every roster_snapshot key and reports records that are not
// valid JSON, lack the budget or roster, or carry a negative budget
func ScanRedis(ctx context.Context, client redisclient.Client) (*ScanResult, error) {
	if client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}

	result := &ScanResult{}
	iter := client.Scan(ctx, 0, snapshotKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		data, err := client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			// expired or deleted since the scan saw it
			continue
		}
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read snapshot").
				WithMeta("key", key)
		}

		result.Checked++
		if reason := diagnose(data); reason != "" {
			result.Problems = append(result.Problems, Problem{
				SessionID: strings.TrimPrefix(key, snapshotKeyPrefix),
				Key:       key,
				Reason:    reason,
			})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan snapshots")
	}

	return result, nil
}

func diagnose(data []byte) string {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return "corrupted JSON"
	}
	switch {
	case raw.Budget == nil:
		return "missing budget"
	case *raw.Budget < 0:
		return "negative budget"
	case raw.Names == nil:
		return "missing draftedRosterNames"
	}
	return ""
}
