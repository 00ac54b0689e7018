package revocation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/tokengate-project/tokengate/internal/services/clock"
	"github.com/tokengate-project/tokengate/internal/services/kv"
)

// Service keeps a denylist of revoked tokens. Only a hash of the token is
// stored; entries expire after the configured ttl, which must cover the
// longest token lifetime the issuer hands out.
type Service interface {
	Revoke(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type service struct {
	store        kv.Store
	clockService clock.Service
	ttl          time.Duration
}

func NewService(store kv.Store, clockService clock.Service, ttl time.Duration) Service {
	return &service{
		store:        store,
		clockService: clockService,
		ttl:          ttl,
	}
}

func (s *service) Revoke(ctx context.Context, token string) error {
	revokedAt := s.clockService.Now().Format(time.RFC3339)

	err := s.store.Set(ctx, tokenKey(token), revokedAt, kv.WithExpiration(s.ttl))
	if err != nil {
		return fmt.Errorf("storing revocation: %w", err)
	}

	return nil
}

func (s *service) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, ok, err := s.store.Get(ctx, tokenKey(token))
	if err != nil {
		return false, fmt.Errorf("checking revocation: %w", err)
	}

	return ok, nil
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revocations:" + hex.EncodeToString(sum[:])
}
