package payments

import "context"

// Result is the provider's report for a single operation. Succeeded is the
// only bit the lifecycle acts on; Status is kept verbatim for logs.
type Result struct {
	IntentID  string
	Succeeded bool
	Status    string
}

type AuthorizeInput struct {
	AmountCents     int64
	Currency        string
	PayerEmail      string
	CardToken       string
	PaymentMethodID string
	Description     string
}

// Provider is the black-box payment capability: place a hold, convert a hold
// into a charge, release a hold. All three are idempotent per intent id on
// the provider side.
type Provider interface {
	Authorize(ctx context.Context, in AuthorizeInput) (*Result, error)
	Capture(ctx context.Context, intentID string) (*Result, error)
	Cancel(ctx context.Context, intentID string) (*Result, error)
}
