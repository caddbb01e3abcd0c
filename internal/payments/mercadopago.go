package payments

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

// Mercado Pago payment statuses relevant to the hold lifecycle.
const (
	mpStatusAuthorized = "authorized"
	mpStatusApproved   = "approved"
	mpStatusCancelled  = "cancelled"
)

type MercadoPagoProvider struct {
	client payment.Client
}

func NewMercadoPagoProvider(accessToken string) (*MercadoPagoProvider, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPagoProvider{
		client: payment.NewClient(cfg),
	}, nil
}

// Authorize creates a manual-capture payment: the amount is held on the card
// but not charged until Capture.
func (p *MercadoPagoProvider) Authorize(ctx context.Context, in AuthorizeInput) (*Result, error) {
	res, err := p.client.Create(ctx, payment.Request{
		TransactionAmount: float64(in.AmountCents) / 100,
		Description:       in.Description,
		Installments:      1,
		PaymentMethodID:   in.PaymentMethodID,
		Token:             in.CardToken,
		Capture:           false,
		Payer: &payment.PayerRequest{
			Email: in.PayerEmail,
		},
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		IntentID:  strconv.Itoa(res.ID),
		Succeeded: res.Status == mpStatusAuthorized,
		Status:    res.Status,
	}, nil
}

func (p *MercadoPagoProvider) Capture(ctx context.Context, intentID string) (*Result, error) {
	id, err := strconv.Atoi(intentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment intent id %q: %w", intentID, err)
	}

	res, err := p.client.Capture(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Result{
		IntentID:  intentID,
		Succeeded: res.Status == mpStatusApproved,
		Status:    res.Status,
	}, nil
}

func (p *MercadoPagoProvider) Cancel(ctx context.Context, intentID string) (*Result, error) {
	id, err := strconv.Atoi(intentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment intent id %q: %w", intentID, err)
	}

	res, err := p.client.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Result{
		IntentID:  intentID,
		Succeeded: res.Status == mpStatusCancelled,
		Status:    res.Status,
	}, nil
}

var _ Provider = (*MercadoPagoProvider)(nil)
