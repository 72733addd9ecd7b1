package client

import (
	"context"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// maxBatchSize is the largest operation list the API accepts per batch
// request. Larger inputs are split into consecutive chunks of this size.
const maxBatchSize = 100

// BatchConfig groups the pacing tunables for chunked batch submission.
// Values are taken from environment variables with the prefix "SHOPWIRE".
// Example: SHOPWIRE_BATCH_DELAY=250ms .
type BatchConfig struct {
	// Delay is the pause between consecutive chunk submissions (not after
	// the last), throttling request rate against the store's own limits.
	Delay time.Duration `envconfig:"BATCH_DELAY" default:"100ms"`
}

// LoadBatchConfig populates BatchConfig from environment variables
// (prefix SHOPWIRE), falling back to the declared defaults.
func LoadBatchConfig() (BatchConfig, error) {
	var c BatchConfig
	return c, envconfig.Process("shopwire", &c)
}

// BatchOption overrides the environment-derived batch defaults per call.
type BatchOption func(*BatchConfig)

// WithBatchDelay sets an explicit inter-chunk delay for one call.
func WithBatchDelay(d time.Duration) BatchOption {
	return func(bc *BatchConfig) {
		if d >= 0 {
			bc.Delay = d
		}
	}
}

// chunkItems partitions items into consecutive chunks of at most size,
// preserving order. An empty input yields no chunks.
func chunkItems[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// submitInChunks splits items into server-accepted chunks and submits them
// strictly one at a time, sleeping cfg.Delay between chunks. Results are
// concatenated in chunk order. An empty input is a no-op.
func submitInChunks[T, R any](ctx context.Context, items []T, cfg BatchConfig, submit func(ctx context.Context, chunk []T) ([]R, error)) ([]R, error) {
	chunks := chunkItems(items, maxBatchSize)
	if len(chunks) == 0 {
		return nil, nil
	}

	results := make([]R, 0, len(items))
	for i, chunk := range chunks {
		if i > 0 && cfg.Delay > 0 {
			timer := time.NewTimer(cfg.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return results, wrapError(ctx.Err())
			case <-timer.C:
			}
		}

		log.Debug().Int("chunk", i+1).Int("chunks", len(chunks)).Int("size", len(chunk)).Msg("submitting batch chunk")
		out, err := submit(ctx, chunk)
		if err != nil {
			return results, err
		}
		results = append(results, out...)
	}
	return results, nil
}

// batchConfig resolves the effective config for one call: environment
// defaults first, then explicit per-call overrides.
func batchConfig(opts []BatchOption) BatchConfig {
	cfg, err := LoadBatchConfig()
	if err != nil {
		cfg = BatchConfig{Delay: 100 * time.Millisecond}
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
