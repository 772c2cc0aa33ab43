package entities

type TermsStatus string

const (
	TermsStatusNone     TermsStatus = ""
	TermsStatusApproved TermsStatus = "approved"
	TermsStatusPending  TermsStatus = "pending"
	TermsStatusDeclined TermsStatus = "declined"
)

const AccountTypeBusiness = "business"

// Session is what the transport layer knows about the shopper.
// UserID is empty for guests.
type Session struct {
	Key        string
	UserID     string
	Credential string
}

func (s Session) Authenticated() bool {
	return s.UserID != ""
}

type Profile struct {
	UserID            string
	Email             string
	AccountType       string
	CustomerID        string
	TermsReviewStatus TermsStatus
}

type BusinessCustomer struct {
	ID             string
	Name           string
	NetTermsStatus TermsStatus
}

type Identity struct {
	Authenticated    bool
	UserID           string
	CustomerID       string
	Email            string
	NetTermsStatus   TermsStatus
	NetTermsEligible bool
}

// PendingPayment is the minimal record needed to resume a card payment
// after the browser comes back from the gateway.
type PendingPayment struct {
	OrderID string
	Amount  int64
	Email   string
}
