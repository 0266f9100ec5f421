// Package otp implements the one-time-code service on an in-process
// expirable cache. Codes are short-lived and single-use; losing them on
// restart only forces a re-invite, so no persistence is involved.
package otp

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"math/big"

	"wellclub/config"
	"wellclub/internal/domain/service"
	"wellclub/internal/errors"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cacheSize bounds the number of outstanding codes; older entries are
// evicted LRU-first well before a busy club ever reaches it.
const cacheSize = 4096

type otpCache struct {
	cache  *expirable.LRU[string, string]
	length int
}

// NewOTPService is the constructor for otpCache.
func NewOTPService(cfg *config.Config) service.OTPService {
	return &otpCache{
		cache:  expirable.NewLRU[string, string](cacheSize, nil, cfg.Membership.OTPTTL),
		length: cfg.Membership.OTPLength,
	}
}

// Issue generates a fresh numeric code for the key, replacing any earlier
// code for the same key.
func (s *otpCache) Issue(_ context.Context, key string) (string, error) {
	code, err := randomDigits(s.length)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate one-time code")
	}

	s.cache.Add(key, code)

	return code, nil
}

// Verify checks the code against the stored value and consumes it on
// success. Expired or unknown keys simply fail.
func (s *otpCache) Verify(_ context.Context, key, code string) bool {
	stored, ok := s.cache.Get(key)
	if !ok {
		return false
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return false
	}

	s.cache.Remove(key)

	return true
}

// randomDigits draws n digits from crypto/rand.
func randomDigits(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + v.Int64())
	}

	return string(digits), nil
}
