package coupon

import "errors"

var ErrInvalidCouponStatus = errors.New("invalid coupon status")

// Status transitions beyond active (redemption, expiry, refund) are modeled
// but not yet driven by any operation.
type Status string

const (
	StatusActive   Status = "active"
	StatusRedeemed Status = "redeemed"
	StatusExpired  Status = "expired"
	StatusRefunded Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusRedeemed, StatusExpired, StatusRefunded:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidCouponStatus
	}
	return status, nil
}
