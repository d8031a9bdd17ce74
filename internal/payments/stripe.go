// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

type Stripe struct {
	api           *client.API
	webhookSecret string
	currency      string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Stripe) CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error) {
	ctx, span := s.tracer.Start(ctx, "payments.Stripe.CreateCheckoutSession")
	defer span.End()

	interval := recurringInterval(req.Recurrence)

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
	}
	params.Context = ctx

	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	if id := req.Metadata[MetadataIdentityID]; id != "" {
		params.ClientReferenceID = stripe.String(id)
	}

	if interval != "" {
		params.Mode = stripe.String(string(stripe.CheckoutSessionModeSubscription))
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{Metadata: req.Metadata}
	} else if req.Donation {
		params.SubmitType = stripe.String(string(stripe.CheckoutSessionSubmitTypeDonate))
	}

	for _, item := range req.LineItems {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}

		price := &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency:   stripe.String(s.currency),
			UnitAmount: stripe.Int64(item.AmountCents),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(item.Name),
			},
		}
		if interval != "" {
			price.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
				Interval: stripe.String(interval),
			}
		}

		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: price,
			Quantity:  stripe.Int64(qty),
		})
	}

	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := s.api.CheckoutSessions.New(params)
	s.reportAvailability(err)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func (s *Stripe) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "payments.Stripe.GetSession")
	defer span.End()

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("subscription")
	params.AddExpand("customer")

	sess, err := s.api.CheckoutSessions.Get(sessionID, params)
	s.reportAvailability(err)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch checkout session %s: %w", sessionID, err)
	}

	return toSession(sess), nil
}

func (s *Stripe) ParseWebhook(payload []byte, signature string) (*Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		s.logger.Security().AuthnFailure("stripe webhook signature: " + err.Error())
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	out := &Event{ID: event.ID, Type: string(event.Type)}

	if strings.HasPrefix(out.Type, "checkout.session.") {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session event: %w", err)
		}
		out.Session = toSession(&sess)
	}

	if strings.HasPrefix(out.Type, "invoice.") {
		var inv stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return nil, fmt.Errorf("failed to decode invoice event: %w", err)
		}
		out.Invoice = toInvoice(&inv)
	}

	return out, nil
}

func (s *Stripe) reportAvailability(err error) {
	available := 1.0

	var serr *stripe.Error
	if err != nil && (!errors.As(err, &serr) || serr.HTTPStatusCode >= 500) {
		available = 0
	}

	if merr := s.monitor.SetDependencyAvailability(map[string]string{"component": "stripe"}, available); merr != nil {
		s.logger.Debugf("failed to record stripe availability: %v", merr)
	}
}

func toSession(sess *stripe.CheckoutSession) *Session {
	out := &Session{
		ID:          sess.ID,
		Complete:    sess.Status == stripe.CheckoutSessionStatusComplete,
		Paid:        sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotal: sess.AmountTotal,
		Metadata:    sess.Metadata,
		Created:     time.Unix(sess.Created, 0).UTC(),
	}

	if out.Metadata == nil {
		out.Metadata = map[string]string{}
	}

	if sess.Customer != nil {
		out.CustomerID = sess.Customer.ID
	}
	if sess.CustomerDetails != nil {
		out.CustomerEmail = sess.CustomerDetails.Email
		out.CustomerName = sess.CustomerDetails.Name
	}

	if sub := sess.Subscription; sub != nil {
		out.SubscriptionID = sub.ID
		if sub.CurrentPeriodStart > 0 && sub.CurrentPeriodEnd > 0 {
			start := time.Unix(sub.CurrentPeriodStart, 0).UTC()
			end := time.Unix(sub.CurrentPeriodEnd, 0).UTC()
			out.PeriodStart, out.PeriodEnd = &start, &end
		}
	}

	return out
}

func toInvoice(inv *stripe.Invoice) *Invoice {
	out := &Invoice{
		ID:            inv.ID,
		CustomerEmail: inv.CustomerEmail,
		CustomerName:  inv.CustomerName,
		AmountPaid:    inv.AmountPaid,
		BillingReason: string(inv.BillingReason),
		Metadata:      map[string]string{},
		Created:       time.Unix(inv.Created, 0).UTC(),
	}

	if inv.Subscription != nil {
		out.SubscriptionID = inv.Subscription.ID
	}
	if inv.Customer != nil {
		out.CustomerID = inv.Customer.ID
	}
	if inv.SubscriptionDetails != nil && inv.SubscriptionDetails.Metadata != nil {
		out.Metadata = inv.SubscriptionDetails.Metadata
	}

	// the subscription line carries the period paid for, the invoice's own
	// period is the one just ended
	if inv.Lines != nil {
		for _, line := range inv.Lines.Data {
			if line.Period == nil || line.Period.Start == 0 || line.Period.End == 0 {
				continue
			}
			start := time.Unix(line.Period.Start, 0).UTC()
			end := time.Unix(line.Period.End, 0).UTC()
			out.PeriodStart, out.PeriodEnd = &start, &end
			break
		}
	}

	return out
}

func recurringInterval(r types.Recurrence) string {
	switch r {
	case types.RecurrenceYearly:
		return string(stripe.PriceRecurringIntervalYear)
	case types.RecurrenceMonthly:
		return string(stripe.PriceRecurringIntervalMonth)
	}
	return ""
}

// NewStripe builds the provider. backends is nil outside tests.
func NewStripe(secretKey, webhookSecret, currency string, backends *stripe.Backends, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Stripe {
	s := new(Stripe)
	s.api = client.New(secretKey, backends)
	s.webhookSecret = webhookSecret
	s.currency = strings.ToLower(currency)

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
