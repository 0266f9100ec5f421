package otp

import (
	"context"
	"testing"
	"time"

	"wellclub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func otpTestConfig(ttl time.Duration, length int) *config.Config {
	return &config.Config{
		Membership: &config.MembershipConfig{
			OTPTTL:    ttl,
			OTPLength: length,
		},
	}
}

func TestOTPService_IssueAndVerify(t *testing.T) {
	service := NewOTPService(otpTestConfig(time.Minute, 6))
	ctx := context.Background()

	code, err := service.Issue(ctx, "beneficiary:WC-2026-AAAA1111:invitee@example.com")
	require.NoError(t, err)
	require.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}

	assert.True(t, service.Verify(ctx, "beneficiary:WC-2026-AAAA1111:invitee@example.com", code))
}

func TestOTPService_VerifyConsumesCode(t *testing.T) {
	service := NewOTPService(otpTestConfig(time.Minute, 6))
	ctx := context.Background()

	code, err := service.Issue(ctx, "key")
	require.NoError(t, err)

	require.True(t, service.Verify(ctx, "key", code))
	// A code is single-use.
	assert.False(t, service.Verify(ctx, "key", code))
}

func TestOTPService_WrongCodeDoesNotConsume(t *testing.T) {
	service := NewOTPService(otpTestConfig(time.Minute, 6))
	ctx := context.Background()

	code, err := service.Issue(ctx, "key")
	require.NoError(t, err)

	assert.False(t, service.Verify(ctx, "key", "000000x"))
	assert.True(t, service.Verify(ctx, "key", code))
}

func TestOTPService_UnknownKey(t *testing.T) {
	service := NewOTPService(otpTestConfig(time.Minute, 6))

	assert.False(t, service.Verify(context.Background(), "never-issued", "123456"))
}

func TestOTPService_ReissueReplacesCode(t *testing.T) {
	service := NewOTPService(otpTestConfig(time.Minute, 8))
	ctx := context.Background()

	first, err := service.Issue(ctx, "key")
	require.NoError(t, err)
	second, err := service.Issue(ctx, "key")
	require.NoError(t, err)
	require.Len(t, second, 8)

	if first != second {
		assert.False(t, service.Verify(ctx, "key", first))
	}
	assert.True(t, service.Verify(ctx, "key", second))
}

func TestOTPService_CodeExpires(t *testing.T) {
	service := NewOTPService(otpTestConfig(25*time.Millisecond, 6))
	ctx := context.Background()

	code, err := service.Issue(ctx, "key")
	require.NoError(t, err)

	time.Sleep(80 * time.Millisecond)

	assert.False(t, service.Verify(ctx, "key", code))
}
