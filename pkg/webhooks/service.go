// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/payments"
	"github.com/communityhub/portal/internal/sanitize"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
	"github.com/communityhub/portal/pkg/donations"
	"github.com/communityhub/portal/pkg/membership"
)

// ErrInvalidIdentity is returned for registration payloads without an id or email.
var ErrInvalidIdentity = errors.New("identity ID or email is empty")

type Service struct {
	storage    StorageInterface
	membership MembershipInterface
	donations  DonationsInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandleRegistration stores the profile of a newly registered identity and
// gives it the user role.
func (s *Service) HandleRegistration(ctx context.Context, identity *KratosIdentity) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identity == nil || identity.ID == "" || strings.TrimSpace(identity.Traits.Email) == "" {
		return ErrInvalidIdentity
	}

	profile := &types.Profile{
		IdentityID: identity.ID,
		FullName:   sanitize.Text(identity.Traits.Name.Full()),
		Email:      strings.TrimSpace(identity.Traits.Email),
		Phone:      sanitize.Text(identity.Traits.Phone),
	}

	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.storage.UpsertProfile(ctx, profile); err != nil {
			return err
		}
		return s.storage.AddRole(ctx, identity.ID, types.RoleUser)
	})
	if err != nil {
		return fmt.Errorf("failed to provision identity %s: %w", identity.ID, err)
	}

	s.logger.Infof("provisioned profile for identity %s", identity.ID)
	return nil
}

// HandlePaymentEvent routes a verified provider event by its checkout kind.
// Errors returned are transient and the provider should redeliver; events
// that can never succeed are logged and acknowledged.
func (s *Service) HandlePaymentEvent(ctx context.Context, event *payments.Event) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandlePaymentEvent")
	defer span.End()

	switch event.Type {
	case payments.EventCheckoutCompleted, payments.EventCheckoutAsyncPaymentOK, payments.EventCheckoutAsyncPaymentFailed:
	case payments.EventInvoicePaid:
		return s.invoiceEvent(ctx, event)
	case payments.EventChargeRefunded:
		s.logger.Infof("refund event %s acknowledged, refunds are recorded by reviewers", event.ID)
		return nil
	default:
		s.logger.Debugf("ignoring event %s of type %s", event.ID, event.Type)
		return nil
	}

	if event.Session == nil {
		s.logger.Warnf("event %s of type %s carries no checkout session", event.ID, event.Type)
		return nil
	}

	var err error
	switch kind := types.CheckoutKind(event.Session.Metadata[payments.MetadataKind]); kind {
	case types.CheckoutMembership:
		err = s.membershipEvent(ctx, event)
	case types.CheckoutDonation:
		err = s.donationEvent(ctx, event)
	default:
		s.logger.Warnf("event %s for session %s has unknown kind %q", event.ID, event.Session.ID, kind)
		return nil
	}

	if permanent(err) {
		s.logger.Warnf("event %s for session %s dropped: %v", event.ID, event.Session.ID, err)
		return nil
	}
	return err
}

// invoiceEvent records a paid subscription period. The first invoice of a
// subscription is covered by its checkout session.
func (s *Service) invoiceEvent(ctx context.Context, event *payments.Event) error {
	inv := event.Invoice
	if inv == nil {
		s.logger.Warnf("event %s of type %s carries no invoice", event.ID, event.Type)
		return nil
	}
	if inv.BillingReason == payments.BillingReasonSubscriptionCreate {
		s.logger.Debugf("invoice %s opened subscription %s", inv.ID, inv.SubscriptionID)
		return nil
	}

	var err error
	switch kind := types.CheckoutKind(inv.Metadata[payments.MetadataKind]); kind {
	case types.CheckoutMembership:
		_, err = s.membership.ApplyRenewal(ctx, inv)
	case types.CheckoutDonation:
		_, err = s.donations.RecordInvoice(ctx, inv)
	default:
		s.logger.Debugf("invoice %s has kind %q, ignored", inv.ID, kind)
		return nil
	}

	if permanent(err) {
		s.logger.Warnf("invoice %s of subscription %s dropped: %v", inv.ID, inv.SubscriptionID, err)
		return nil
	}
	return err
}

func (s *Service) membershipEvent(ctx context.Context, event *payments.Event) error {
	if event.Type == payments.EventCheckoutAsyncPaymentFailed {
		s.logger.Infof("membership payment for session %s failed", event.Session.ID)
		return nil
	}

	// Finalize pulls the session again, the event payload is only a trigger.
	_, err := s.membership.Finalize(ctx, event.Session.ID)
	if errors.Is(err, membership.ErrNotPaid) {
		s.logger.Debugf("membership session %s not paid yet", event.Session.ID)
		return nil
	}
	return err
}

func (s *Service) donationEvent(ctx context.Context, event *payments.Event) error {
	var err error
	switch event.Type {
	case payments.EventCheckoutCompleted:
		_, err = s.donations.RecordCheckout(ctx, event.Session)
	case payments.EventCheckoutAsyncPaymentOK:
		_, err = s.donations.MarkAsync(ctx, event.Session, true)
	case payments.EventCheckoutAsyncPaymentFailed:
		_, err = s.donations.MarkAsync(ctx, event.Session, false)
	}
	return err
}

func permanent(err error) bool {
	return errors.Is(err, membership.ErrMissingIdentity) ||
		errors.Is(err, membership.ErrWrongKind) ||
		errors.Is(err, membership.ErrUnknownSubscription) ||
		errors.Is(err, membership.ErrNoPeriod) ||
		errors.Is(err, donations.ErrWrongKind)
}

func NewService(storage StorageInterface, membershipSvc MembershipInterface, donationSvc DonationsInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.membership = membershipSvc
	s.donations = donationSvc

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
