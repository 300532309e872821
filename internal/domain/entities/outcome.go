package entities

// OutcomeStatus is the result kind of a gateway interaction.
type OutcomeStatus string

const (
	OutcomeComplete OutcomeStatus = "complete"
	OutcomeDeclined OutcomeStatus = "declined"
	OutcomeError    OutcomeStatus = "error"
	OutcomeFailed   OutcomeStatus = "failed"
	OutcomeSca      OutcomeStatus = "sca"
	OutcomeRedirect OutcomeStatus = "redirect"
)

// Outcome is what every orchestrator returns. Raw gateway code and message
// are kept for operators and never serialized.
type Outcome struct {
	Status        OutcomeStatus      `json:"status"`
	TransactionID string             `json:"transaction_id,omitempty"`
	Message       string             `json:"message,omitempty"`
	Continuation  *ScaContinuation   `json:"-"`
	Redirect      *RedirectChallenge `json:"redirect,omitempty"`

	RawCode    string `json:"-"`
	RawMessage string `json:"-"`
}

func (o Outcome) IsComplete() bool { return o.Status == OutcomeComplete }
func (o Outcome) IsSca() bool      { return o.Status == OutcomeSca }
func (o Outcome) IsRedirect() bool { return o.Status == OutcomeRedirect }

// Successful reports whether money moved or is about to after a redirect.
func (o Outcome) Successful() bool {
	switch o.Status {
	case OutcomeComplete, OutcomeSca, OutcomeRedirect:
		return true
	}
	return false
}
