//go:build unit

package occupancy_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"parking-engine/internal/domain/lot"
	"parking-engine/internal/infra/occupancy"
	"parking-engine/internal/pkg/config"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func sample() lot.Occupancy {
	return lot.Occupancy{
		"standard": {Occupied: 3, Total: 10},
		"ev":       {Occupied: 1, Total: 2},
	}
}

func TestHashFieldsAreOrdered(t *testing.T) {
	fields := occupancy.HashFields(sample(), at)
	assert.Equal(t, []any{
		"ev:occupied", "1", "ev:total", "2",
		"standard:occupied", "3", "standard:total", "10",
		"updated_at", "2025-03-01T10:00:00Z",
	}, fields)
}

func TestPublish(t *testing.T) {
	lotID := uuid.MustParse("6f1d2c1e-5b6a-4c7e-9a55-0c4b9f0a1d20")
	occ := sample()

	payload, err := json.Marshal(occupancy.Message{
		LotID: lotID,
		Occupancy: map[string]occupancy.TypeSnapshot{
			"standard": {Occupied: 3, Total: 10, Free: 7},
			"ev":       {Occupied: 1, Total: 2, Free: 1},
		},
		At: at,
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{name: "snapshot with expiry", ttl: time.Hour},
		{name: "snapshot without expiry", ttl: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			pub := occupancy.NewPublisher(client, config.RedisConfig{ChannelPrefix: "parking:occupancy", SnapshotTTL: tt.ttl})
			key := "parking:occupancy:" + lotID.String()

			mock.ExpectTxPipeline()
			mock.ExpectHSet(key, occupancy.HashFields(occ, at)...).SetVal(5)
			if tt.ttl > 0 {
				mock.ExpectExpire(key, tt.ttl).SetVal(true)
			}
			mock.ExpectPublish("parking:occupancy:updates", payload).SetVal(1)
			mock.ExpectTxPipelineExec()

			require.NoError(t, pub.Publish(context.Background(), lotID, occ, at))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPublishReportsRedisFailure(t *testing.T) {
	client, _ := redismock.NewClientMock()
	pub := occupancy.NewPublisher(client, config.RedisConfig{ChannelPrefix: "p", SnapshotTTL: time.Minute})

	err := pub.Publish(context.Background(), uuid.New(), sample(), at)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish occupancy")
	assert.Contains(t, fmt.Sprintf("%+v", err), "(*Publisher).Publish", "wrapped with a stack trace")
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	_, err := occupancy.NewRedisClient(context.Background(), "not-a-redis-url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid redis url")
	assert.Contains(t, fmt.Sprintf("%+v", err), "occupancy.NewRedisClient")
}
