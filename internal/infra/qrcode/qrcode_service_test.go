package qrcode

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestQRCodeService_GenerateMemberPass(t *testing.T) {
	service := NewQRCodeService(256, "M")

	png, err := service.GenerateMemberPass("WC-2026-AAAA1111")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.True(t, bytes.HasPrefix(png, pngHeader))
}

func TestQRCodeService_ParseMemberPass_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{MembershipID: "WC-2026-AAAA1111", Type: "member_pass"})
	require.NoError(t, err)

	membershipID, err := service.ParseMemberPass(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "WC-2026-AAAA1111", membershipID)
}

func TestQRCodeService_ParseMemberPass_WrongType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{MembershipID: "WC-2026-AAAA1111", Type: "gift_card"})
	require.NoError(t, err)

	_, err = service.ParseMemberPass(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseMemberPass_MissingMembershipID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{Type: "member_pass"})
	require.NoError(t, err)

	_, err = service.ParseMemberPass(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseMemberPass_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseMemberPass("not json at all")
	assert.Error(t, err)
}

func TestQRCodeService_UnknownLevelDefaultsToMedium(t *testing.T) {
	service := NewQRCodeService(128, "Z")

	png, err := service.GenerateMemberPass("WC-2026-AAAA1111")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
