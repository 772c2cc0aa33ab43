package checkout

import (
	"strconv"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
)

// Outcome is what the embedded card form reports after confirmation.
type Outcome interface {
	outcome()
}

type Succeeded struct {
	IntentID string
}

// RequiresAction sends the browser to a hosted page, e.g. 3-D Secure.
type RequiresAction struct {
	RedirectURL string
}

type Failed struct {
	Reason string
}

func (Succeeded) outcome()      {}
func (RequiresAction) outcome() {}
func (Failed) outcome()         {}

// ReturnParams are the query parameters of the gateway return URL.
type ReturnParams struct {
	IntentID       string
	RedirectStatus entities.IntentStatus
	// Legacy is the older success=true flag.
	Legacy bool
}

func ParseReturnParams(get func(string) string) ReturnParams {
	legacy, _ := strconv.ParseBool(get("success"))
	return ReturnParams{
		IntentID:       get("payment_intent"),
		RedirectStatus: entities.IntentStatus(get("redirect_status")),
		Legacy:         legacy,
	}
}

func (p ReturnParams) Succeeded() bool {
	return p.RedirectStatus == entities.IntentStatusSucceeded || p.Legacy
}
