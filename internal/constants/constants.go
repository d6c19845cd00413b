package constants

// Order fulfillment status values
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order payment status values
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPartial  = "partial"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Actor roles carried in externally issued tokens
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Cart line kinds mirrored into the cart_items table
const (
	CartLineKindProduct = "product"
	CartLineKindBundle  = "bundle"
)

// Queue names
const (
	QueueDefault = "default"
)

// Queue task type names
const (
	TaskOrderEvent = "order:event"
)

// Order event kinds published to the notification surface
const (
	OrderEventCreated           = "order_created"
	OrderEventPaymentUpdated    = "payment_updated"
	OrderEventStatusUpdated     = "status_updated"
	OrderEventCancelledByClient = "cancelled_by_client"
)

// OrderStatuses lists every fulfillment status an administrator may set.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// PaymentStatuses lists every payment status accepted by the payment state machine.
var PaymentStatuses = []string{
	PaymentStatusPending,
	PaymentStatusPartial,
	PaymentStatusPaid,
	PaymentStatusRefunded,
}

// IsOrderStatus reports whether s is a known fulfillment status.
func IsOrderStatus(s string) bool {
	for _, known := range OrderStatuses {
		if known == s {
			return true
		}
	}
	return false
}

// IsPaymentStatus reports whether s is a known payment status.
func IsPaymentStatus(s string) bool {
	for _, known := range PaymentStatuses {
		if known == s {
			return true
		}
	}
	return false
}
