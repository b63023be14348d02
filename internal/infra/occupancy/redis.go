package occupancy

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"parking-engine/internal/domain/lot"
	"parking-engine/internal/pkg/config"
	"parking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient parses url and pings the server.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errs.Wrap(err, "invalid redis url")
	}
	opts.MaxRetries = 3

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "redis ping failed")
	}
	return client, nil
}

// Message is the payload published on every occupancy change.
type Message struct {
	LotID     uuid.UUID               `json:"lot_id"`
	Occupancy map[string]TypeSnapshot `json:"occupancy"`
	At        time.Time               `json:"at"`
}

type TypeSnapshot struct {
	Occupied int `json:"occupied"`
	Total    int `json:"total"`
	Free     int `json:"free"`
}

// Publisher keeps a hash per lot (<prefix>:<lot id>) with "<type>:occupied" and
// "<type>:total" fields, and announces each change on <prefix>:updates.
type Publisher struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewPublisher(client redis.Cmdable, cfg config.RedisConfig) *Publisher {
	return &Publisher{client: client, prefix: cfg.ChannelPrefix, ttl: cfg.SnapshotTTL}
}

func (p *Publisher) Key(lotID uuid.UUID) string {
	return p.prefix + ":" + lotID.String()
}

func (p *Publisher) Channel() string {
	return p.prefix + ":updates"
}

func (p *Publisher) Publish(ctx context.Context, lotID uuid.UUID, occ lot.Occupancy, at time.Time) error {
	msg := Message{LotID: lotID, Occupancy: make(map[string]TypeSnapshot, len(occ)), At: at.UTC()}
	for t, o := range occ {
		msg.Occupancy[t.String()] = TypeSnapshot{Occupied: o.Occupied, Total: o.Total, Free: o.Free()}
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return errs.Wrap(err, "encode occupancy")
	}

	key := p.Key(lotID)
	_, err = p.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, HashFields(occ, at)...)
		if p.ttl > 0 {
			pipe.Expire(ctx, key, p.ttl)
		}
		pipe.Publish(ctx, p.Channel(), payload)
		return nil
	})
	if err != nil {
		return errs.Wrapf(err, "publish occupancy of lot %s", lotID)
	}
	return nil
}

// HashFields flattens occ into HSET arguments ordered by space type.
func HashFields(occ lot.Occupancy, at time.Time) []any {
	fields := make([]any, 0, 4*len(occ)+2)
	for _, t := range occ.Types() {
		o := occ[t]
		fields = append(fields,
			t.String()+":occupied", strconv.Itoa(o.Occupied),
			t.String()+":total", strconv.Itoa(o.Total),
		)
	}
	return append(fields, "updated_at", at.UTC().Format(time.RFC3339))
}
