package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/valkey-io/valkey-go"
)

const VALKEY_CMD_RETRIES = 3

// Valkey backs the cache with a shared valkey instance so repeated runs (or
// several operators pointed at the same store) reuse each other's fetches.
type Valkey struct {
	Client valkey.Client
}

func NewValkey() *Valkey {
	valkeyAddr := os.Getenv("VALKEY_INIT_ADDRESS")
	valkeyPassword := os.Getenv("VALKEY_PASSWORD")
	useTLS := os.Getenv("VALKEY_TLS") == "true"

	opts := valkey.ClientOption{
		InitAddress: []string{
			valkeyAddr,
		},
		Password:         valkeyPassword,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if useTLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		panic(fmt.Errorf("[ValkeyCache] failed to create Valkey client: %w", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if res := client.Do(ctx, client.B().Ping().Build()); res.Error() != nil {
		panic(fmt.Errorf("[ValkeyCache] failed to ping Valkey: %w", res.Error()))
	}

	slog.Info("[ValkeyCache] Successfully connected to valkey")
	return &Valkey{Client: client}
}

func (v *Valkey) Close() {
	v.Client.Close()
}

func (v *Valkey) Get(ctx context.Context, key string) ([]byte, bool) {
	res := v.doWithRetry(ctx, v.Client.B().Get().Key(key).Build())
	if res.Error() != nil {
		if !valkey.IsValkeyNil(res.Error()) {
			slog.Warn("[ValkeyCache] GET failed", slog.String("key", key),
				slog.String("error", res.Error().Error()))
		}
		return nil, false
	}

	value, err := res.AsBytes()
	if err != nil {
		return nil, false
	}
	return value, true
}

func (v *Valkey) Put(ctx context.Context, key string, value []byte, ttl time.Duration) {
	cmd := v.Client.B().Set().Key(key).Value(string(value)).
		Ex(ttl).Build()

	if res := v.doWithRetry(ctx, cmd); res.Error() != nil {
		slog.Warn("[ValkeyCache] SET failed", slog.String("key", key),
			slog.String("error", res.Error().Error()))
	}
}

func (v *Valkey) doWithRetry(ctx context.Context, cmd valkey.Completed) valkey.ValkeyResult {
	var res valkey.ValkeyResult
	for attempt := 1; attempt <= VALKEY_CMD_RETRIES; attempt++ {
		res = v.Client.Do(ctx, cmd)
		if res.Error() == nil || valkey.IsValkeyNil(res.Error()) {
			return res
		}
		time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
	}
	return res
}
