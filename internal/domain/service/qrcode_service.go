package service

// QRCodeService defines the interface for generating member pass QR codes.
type QRCodeService interface {
	// GenerateMemberPass renders a PNG QR code encoding the membership id,
	// scannable at the front desk as a digital pass.
	GenerateMemberPass(membershipID string) ([]byte, error)

	// ParseMemberPass extracts the membership id from scanned pass data.
	ParseMemberPass(data string) (string, error)
}
