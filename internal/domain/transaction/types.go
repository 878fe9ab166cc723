package transaction

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
	PaymentRefunded PaymentStatus = "refunded"
)

type FulfillmentStatus string

const (
	FulfillmentNotDispatched FulfillmentStatus = "not_dispatched"
	FulfillmentDispatched    FulfillmentStatus = "dispatched"
	FulfillmentError         FulfillmentStatus = "error"
)

type ServiceType string

const (
	ServiceLikes     ServiceType = "likes"
	ServiceFollowers ServiceType = "followers"
	ServiceReels     ServiceType = "reels"
	ServiceComments  ServiceType = "comments"
	ServiceGeneric   ServiceType = "generic"
)

// MapGatewayStatus translates the payment gateway's status vocabulary into
// the internal payment status. Unknown values are treated as pending so a
// later poll or webhook can settle them.
func MapGatewayStatus(s string) PaymentStatus {
	switch s {
	case "approved":
		return PaymentApproved
	case "pending", "in_process":
		return PaymentPending
	case "rejected", "cancelled":
		return PaymentRejected
	case "refunded":
		return PaymentRefunded
	default:
		return PaymentPending
	}
}

// IsProfileService reports whether dispatch targets the profile itself
// rather than individual posts.
func (t ServiceType) IsProfileService() bool {
	return t == ServiceFollowers
}
