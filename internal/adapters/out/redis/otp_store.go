// Package redis keeps one-time codes and phone verification markers in Redis,
// relying on key expiry for their lifetime.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

var _ ports.OTPStore = (*OTPStore)(nil)

// MaxOTPAttempts is how many wrong guesses a code survives. The code is
// discarded on the last one and the customer has to request a new one.
const MaxOTPAttempts = 5

// consumeScript deletes KEYS[1] only when it holds ARGV[1], so that two
// verifications racing on one code cannot both succeed. A mismatch bumps the
// attempt counter in KEYS[2], which lives as long as the code.
var consumeScript = redis.NewScript(`
local stored = redis.call("GET", KEYS[1])
if not stored then
	return 0
end
if stored == ARGV[1] then
	redis.call("DEL", KEYS[1], KEYS[2])
	return 1
end
local attempts = redis.call("INCR", KEYS[2])
if attempts == 1 then
	local ttl = redis.call("PTTL", KEYS[1])
	if ttl > 0 then
		redis.call("PEXPIRE", KEYS[2], ttl)
	end
end
if attempts >= tonumber(ARGV[2]) then
	redis.call("DEL", KEYS[1], KEYS[2])
end
return 0
`)

// OTPStore implements ports.OTPStore on a Redis client.
type OTPStore struct {
	client redis.UniversalClient
}

// NewClient creates a client for addr.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// NewOTPStore creates a store on client.
func NewOTPStore(client redis.UniversalClient) *OTPStore {
	return &OTPStore{client: client}
}

func otpKey(phone kernel.Phone) string {
	return "otp:" + phone.String()
}

func attemptsKey(phone kernel.Phone) string {
	return "otp_attempts:" + phone.String()
}

func verifiedKey(phone kernel.Phone) string {
	return "verified:" + phone.String()
}

// SaveCode implements ports.OTPStore. A new code starts with a fresh attempt budget.
func (s *OTPStore) SaveCode(ctx context.Context, phone kernel.Phone, code string, ttl time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, otpKey(phone), code, ttl)
		pipe.Del(ctx, attemptsKey(phone))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save otp: %w", err)
	}
	return nil
}

// ConsumeCode implements ports.OTPStore.
func (s *OTPStore) ConsumeCode(ctx context.Context, phone kernel.Phone, code string) (bool, error) {
	consumed, err := consumeScript.Run(ctx, s.client,
		[]string{otpKey(phone), attemptsKey(phone)}, code, MaxOTPAttempts).Int()
	if err != nil {
		return false, fmt.Errorf("failed to consume otp: %w", err)
	}
	return consumed == 1, nil
}

// MarkVerified implements ports.OTPStore.
func (s *OTPStore) MarkVerified(ctx context.Context, phone kernel.Phone, ttl time.Duration) error {
	if err := s.client.Set(ctx, verifiedKey(phone), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark phone verified: %w", err)
	}
	return nil
}

// IsVerified implements ports.OTPStore.
func (s *OTPStore) IsVerified(ctx context.Context, phone kernel.Phone) (bool, error) {
	_, err := s.client.Get(ctx, verifiedKey(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read verification marker: %w", err)
	}
	return true, nil
}

// Ping checks the connection.
func (s *OTPStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
