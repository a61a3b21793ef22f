package repository

import (
	"context"
	"sync/atomic"
	"time"

	"campusinfo/internal/domain"

	"github.com/rs/zerolog"
)

// FailoverTokenStore serves from the primary (Redis) store and falls back to
// memory when it errors, retrying the primary after a cooldown. A Redis
// outage therefore degrades to per-process revocation instead of failing
// every authenticated request.
type FailoverTokenStore struct {
	primary  domain.TokenStore
	fallback domain.TokenStore
	logger   *zerolog.Logger

	isDown    atomic.Bool
	downSince atomic.Int64 // unix nanos
}

const recoveryInterval = time.Minute

func NewFailoverTokenStore(primary, fallback domain.TokenStore, logger *zerolog.Logger) *FailoverTokenStore {
	return &FailoverTokenStore{primary: primary, fallback: fallback, logger: logger}
}

func (f *FailoverTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if f.primaryAvailable() {
		if err := f.primary.Revoke(ctx, jti, ttl); err == nil {
			return nil
		} else {
			f.markDown(err)
		}
	}
	// Record in both so the revocation survives a primary recovery gap.
	return f.fallback.Revoke(ctx, jti, ttl)
}

func (f *FailoverTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if f.primaryAvailable() {
		revoked, err := f.primary.IsRevoked(ctx, jti)
		if err == nil {
			if revoked {
				return true, nil
			}
			return f.fallback.IsRevoked(ctx, jti)
		}
		f.markDown(err)
	}
	return f.fallback.IsRevoked(ctx, jti)
}

func (f *FailoverTokenStore) primaryAvailable() bool {
	if !f.isDown.Load() {
		return true
	}
	if time.Since(time.Unix(0, f.downSince.Load())) > recoveryInterval {
		f.isDown.Store(false)
		return true
	}
	return false
}

func (f *FailoverTokenStore) markDown(err error) {
	f.logger.Error().Err(err).Msg("primary token store failed, falling back to memory")
	f.isDown.Store(true)
	f.downSince.Store(time.Now().UnixNano())
}
