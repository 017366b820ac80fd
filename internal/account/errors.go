package account

import "fmt"

// RejectReason identifies which buy pre-flight stage refused the order.
type RejectReason string

const (
	RejectInvalidPair         RejectReason = "InvalidPair"
	RejectInvalidVolume       RejectReason = "InvalidVolume"
	RejectNoBalance           RejectReason = "NoBalance"
	RejectInsufficientBalance RejectReason = "InsufficientBalance"
	RejectPriceUnavailable    RejectReason = "PriceUnavailable"
	RejectVolumeTooSmall      RejectReason = "VolumeTooSmall"
	RejectOrderRejected       RejectReason = "OrderRejected"
)

// RejectedError is a terminal buy-order rejection. Rejections end the call;
// there is no automatic retry of order placement.
type RejectedError struct {
	Reason  RejectReason
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("order rejected (%s): %s", e.Reason, e.Message)
}

func reject(reason RejectReason, format string, args ...interface{}) *RejectedError {
	return &RejectedError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}
