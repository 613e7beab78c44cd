package domain

// CheckoutState tracks where one checkout attempt sits in the workflow.
type CheckoutState string

const (
	CheckoutIdle         CheckoutState = "IDLE"
	CheckoutSubmitting   CheckoutState = "SUBMITTING"
	CheckoutSubmitted    CheckoutState = "SUBMITTED"
	CheckoutSubmitFailed CheckoutState = "SUBMIT_FAILED"
	CheckoutDispatched   CheckoutState = "DISPATCHED"
)

// String representation (for logging)
func (s CheckoutState) String() string {
	return string(s)
}

// SubmissionResult is the tagged outcome of a checkout attempt.
// Success is true exactly when the backend handed back an order id;
// a failed submission still carries the message and deep link, since
// reaching WhatsApp does not depend on the order being recorded.
type SubmissionResult struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
	Link    string `json:"link"`
}
