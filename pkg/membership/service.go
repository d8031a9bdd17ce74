// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/payments"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

const (
	dateLayout = "2006-01-02"
	// oneTimeDays is the length of a membership paid once.
	oneTimeDays = 365
	// maxMetadataValue is the provider limit on a single metadata value.
	maxMetadataValue = 500
)

var (
	ErrMissingIdentity = errors.New("checkout session carries no identity")
	ErrNotPaid         = errors.New("checkout session is not paid yet")
	ErrWrongKind       = errors.New("checkout session is not a membership purchase")
	ErrNoMembers       = errors.New("checkout session carries no members")

	ErrUnknownSubscription = errors.New("no household is paid by this subscription")
	ErrNoPeriod            = errors.New("invoice carries no billing period")
)

type Service struct {
	storage  StorageInterface
	payments PaymentsInterface
	baseURL  string
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Pricing(ctx context.Context) ([]types.PricingRule, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Pricing")
	defer span.End()

	return s.storage.ListPricing(ctx)
}

func (s *Service) SetPricing(ctx context.Context, actorID string, rule *types.PricingRule) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.SetPricing")
	defer span.End()

	if rule.AmountCents < 0 {
		return httptypes.NewValidationError("amountCents", "must not be negative")
	}
	if rule.MinAge != nil && rule.MaxAge != nil && *rule.MinAge > *rule.MaxAge {
		return httptypes.NewValidationError("maxAge", "must not be below minAge")
	}

	if err := s.storage.UpsertPricing(ctx, rule); err != nil {
		return err
	}

	s.logger.Security().AdminAction(actorID, "set_pricing", string(rule.MemberType), "amountCents", rule.AmountCents)
	return nil
}

func (s *Service) Quote(ctx context.Context, members []MemberInput) (*Quote, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Quote")
	defer span.End()

	rules, err := s.storage.ListPricing(ctx)
	if err != nil {
		return nil, err
	}

	return PriceMembers(rules, members)
}

// CreateCheckout prices members and opens a hosted checkout for them. The
// intent is stored under the session id so lookups can show a preview before
// the payment is confirmed.
func (s *Service) CreateCheckout(ctx context.Context, identityID string, req *CheckoutRequest) (*payments.CheckoutSession, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.CreateCheckout")
	defer span.End()

	recurrence, err := types.ParseRecurrence(req.Recurrence)
	if err != nil || recurrence == types.RecurrenceMonthly {
		return nil, httptypes.NewValidationError("recurrence", "must be one of: one_time yearly")
	}

	return s.checkout(ctx, identityID, req.Members, recurrence, nil)
}

// Renew opens a one-time checkout for the stored household. The new period
// starts when the current one ends, or today when it already lapsed.
func (s *Service) Renew(ctx context.Context, identityID string) (*payments.CheckoutSession, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Renew")
	defer span.End()

	h, err := s.storage.GetHouseholdByIdentity(ctx, identityID)
	if err != nil {
		return nil, err
	}

	if h.Status == types.HouseholdRevoked {
		return nil, httptypes.NewValidationError("membership", "has been revoked, contact the office")
	}
	if h.ProviderSubscriptionID != "" && h.Recurrence != types.RecurrenceOneTime {
		return nil, httptypes.NewValidationError("membership", "subscription renews automatically")
	}

	renewFrom := truncateDay(s.now())
	if end := truncateDay(h.EndDate); end.After(renewFrom) {
		renewFrom = end
	}

	return s.checkout(ctx, identityID, toInputs(h.Members), types.RecurrenceOneTime, &renewFrom)
}

func (s *Service) checkout(ctx context.Context, identityID string, members []MemberInput, recurrence types.Recurrence, renewFrom *time.Time) (*payments.CheckoutSession, error) {
	quote, err := s.Quote(ctx, members)
	if err != nil {
		return nil, err
	}
	if quote.TotalCents <= 0 {
		return nil, httptypes.NewValidationError("members", "total must be greater than zero")
	}

	req := &payments.CheckoutRequest{
		Recurrence: recurrence,
		SuccessURL: s.baseURL + "/membership/thanks?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.baseURL + "/membership?canceled=1",
		Metadata: map[string]string{
			payments.MetadataIdentityID: identityID,
			payments.MetadataKind:       string(types.CheckoutMembership),
			payments.MetadataRecurrence: string(recurrence),
		},
	}

	if encoded, err := json.Marshal(quote.Members); err == nil && len(encoded) <= maxMetadataValue {
		req.Metadata[payments.MetadataMembers] = string(encoded)
	}
	if renewFrom != nil {
		req.Metadata[payments.MetadataRenewFrom] = renewFrom.Format(dateLayout)
	}

	if p, err := s.storage.GetProfile(ctx, identityID); err == nil {
		req.CustomerEmail = p.Email
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Warnf("failed to load profile for checkout email: %v", err)
	}

	for _, m := range quote.Members {
		if m.PriceCents == 0 {
			continue
		}
		req.LineItems = append(req.LineItems, payments.LineItem{
			Name:        fmt.Sprintf("Membership: %s (%s)", m.FullName, m.Category),
			AmountCents: m.PriceCents,
			Quantity:    1,
		})
	}

	sess, err := s.payments.CreateCheckoutSession(ctx, req)
	if err != nil {
		return nil, err
	}

	err = s.storage.SaveCheckoutIntent(ctx, &types.CheckoutIntent{
		SessionID:   sess.ID,
		IdentityID:  identityID,
		Kind:        types.CheckoutMembership,
		Recurrence:  recurrence,
		Members:     quote.Members,
		RenewFrom:   renewFrom,
		AmountCents: quote.TotalCents,
	})
	if err != nil {
		return nil, err
	}

	return sess, nil
}

// Finalize materializes the household paid for by sessionID. It is safe to
// call any number of times and from both the webhook and the return page:
// every call derives the same rows from the provider's session and the
// household write is skipped once the session has been applied.
func (s *Service) Finalize(ctx context.Context, sessionID string) (*types.Household, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Finalize")
	defer span.End()

	sess, err := s.payments.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	identityID := strings.TrimSpace(sess.Metadata[payments.MetadataIdentityID])
	if identityID == "" {
		return nil, ErrMissingIdentity
	}
	if kind := sess.Metadata[payments.MetadataKind]; kind != "" && kind != string(types.CheckoutMembership) {
		return nil, ErrWrongKind
	}
	if !sess.Complete || !sess.Paid {
		return nil, ErrNotPaid
	}

	intent, err := s.storage.GetCheckoutIntent(ctx, sessionID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	members, err := sessionMembers(sess, intent)
	if err != nil {
		return nil, err
	}

	h := &types.Household{
		IdentityID:             identityID,
		Recurrence:             sessionRecurrence(sess, intent),
		ProviderCustomerID:     sess.CustomerID,
		ProviderSubscriptionID: sess.SubscriptionID,
		LastSessionID:          sess.ID,
		TotalCents:             sess.AmountTotal,
	}
	h.StartDate, h.EndDate = sessionPeriod(sess, intent)

	err = s.storage.WithTx(ctx, func(ctx context.Context) error {
		id, applied, err := s.storage.UpsertHousehold(ctx, h)
		if err != nil {
			return err
		}

		if applied {
			if err := s.storage.ReplaceMembers(ctx, id, members); err != nil {
				return err
			}
		}

		if err := s.promote(ctx, identityID); err != nil {
			return err
		}

		return s.storage.MarkIntentFinalized(ctx, sessionID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to finalize session %s: %w", sessionID, err)
	}

	s.logger.Infof("membership session %s finalized for %s", sessionID, identityID)

	return s.storage.GetHouseholdByIdentity(ctx, identityID)
}

// ApplyRenewal extends the household of a subscription to the period paid
// by a renewal invoice. Replays and out of order invoices leave the stored
// period as it is, and a revoked household stays revoked.
func (s *Service) ApplyRenewal(ctx context.Context, invoice *payments.Invoice) (*types.Household, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ApplyRenewal")
	defer span.End()

	if kind := invoice.Metadata[payments.MetadataKind]; kind != "" && kind != string(types.CheckoutMembership) {
		return nil, ErrWrongKind
	}
	if invoice.SubscriptionID == "" {
		return nil, ErrUnknownSubscription
	}
	if invoice.PeriodStart == nil || invoice.PeriodEnd == nil {
		return nil, ErrNoPeriod
	}

	h, err := s.storage.GetHouseholdBySubscription(ctx, invoice.SubscriptionID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUnknownSubscription
	}
	if err != nil {
		return nil, err
	}

	if h.Status == types.HouseholdRevoked {
		s.logger.Warnf("invoice %s paid for revoked household %s", invoice.ID, h.ID)
		return h, nil
	}

	applied, err := s.storage.ExtendHousehold(ctx, invoice.SubscriptionID, *invoice.PeriodStart, *invoice.PeriodEnd)
	if err != nil {
		return nil, err
	}
	if !applied {
		s.logger.Debugf("invoice %s does not extend household %s", invoice.ID, h.ID)
		return h, nil
	}

	s.logger.Infof("household %s renewed until %s by invoice %s", h.ID, invoice.PeriodEnd.Format(dateLayout), invoice.ID)

	return s.storage.GetHouseholdBySubscription(ctx, invoice.SubscriptionID)
}

// promote grants member to plain users. Roles ranked at or above member are
// kept as they are.
func (s *Service) promote(ctx context.Context, identityID string) error {
	roles, err := s.storage.ListRoles(ctx, identityID)
	if err != nil {
		return err
	}

	if types.HighestRole(roles).AtLeast(types.RoleMember) {
		return nil
	}

	if err := s.storage.AddRole(ctx, identityID, types.RoleMember); err != nil {
		return err
	}

	return s.storage.RemoveRole(ctx, identityID, types.RoleUser)
}

// Lookup reports how far the membership bought with sessionID has got.
// Sessions belonging to someone else are reported as not found.
func (s *Service) Lookup(ctx context.Context, identityID, sessionID string) (*LookupResult, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Lookup")
	defer span.End()

	intent, err := s.storage.GetCheckoutIntent(ctx, sessionID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if intent != nil {
		if intent.IdentityID != identityID {
			return nil, storage.ErrNotFound
		}
		if intent.Kind != types.CheckoutMembership {
			return nil, ErrWrongKind
		}
	}

	h, err := s.storage.GetHouseholdBySession(ctx, sessionID)
	switch {
	case err == nil:
		if h.IdentityID != identityID {
			return nil, storage.ErrNotFound
		}
		return &LookupResult{Status: StatusReady, Membership: h}, nil
	case !errors.Is(err, storage.ErrNotFound):
		return nil, err
	}

	if intent == nil {
		return &LookupResult{Status: StatusPending}, nil
	}

	if intent.FinalizedAt != nil {
		// a later session has already replaced this one on the household
		h, err := s.storage.GetHouseholdByIdentity(ctx, identityID)
		if err == nil {
			return &LookupResult{Status: StatusReady, Membership: h}, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	}

	return &LookupResult{Status: StatusPreview, Provisional: true, Membership: preview(intent)}, nil
}

func (s *Service) MyMembership(ctx context.Context, identityID string) (*types.Household, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.MyMembership")
	defer span.End()

	return s.storage.GetHouseholdByIdentity(ctx, identityID)
}

// Revoke ends a household today. Nothing is deleted.
func (s *Service) Revoke(ctx context.Context, actorID, householdID string) error {
	ctx, span := s.tracer.Start(ctx, "membership.Service.Revoke")
	defer span.End()

	h, err := s.storage.GetHousehold(ctx, householdID)
	if err != nil {
		return err
	}
	if h.Status == types.HouseholdRevoked {
		return nil
	}

	if err := s.storage.RevokeHousehold(ctx, householdID); err != nil {
		return err
	}

	s.logger.Security().AdminAction(actorID, "revoke_membership", householdID, "identityId", h.IdentityID)
	return nil
}

func (s *Service) ListHouseholds(ctx context.Context, f storage.ListFilter) (*types.Page[types.Household], error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ListHouseholds")
	defer span.End()

	return s.storage.ListHouseholds(ctx, f)
}

func sessionMembers(sess *payments.Session, intent *types.CheckoutIntent) ([]types.Member, error) {
	if raw := sess.Metadata[payments.MetadataMembers]; raw != "" {
		var members []types.Member
		if err := json.Unmarshal([]byte(raw), &members); err != nil {
			return nil, fmt.Errorf("failed to decode session members: %w", err)
		}
		if len(members) > 0 {
			return members, nil
		}
	}

	if intent != nil && len(intent.Members) > 0 {
		return intent.Members, nil
	}

	return nil, ErrNoMembers
}

func sessionRecurrence(sess *payments.Session, intent *types.CheckoutIntent) types.Recurrence {
	if r, err := types.ParseRecurrence(sess.Metadata[payments.MetadataRecurrence]); err == nil && sess.Metadata[payments.MetadataRecurrence] != "" {
		return r
	}
	if intent != nil && intent.Recurrence != "" {
		return intent.Recurrence
	}
	return types.RecurrenceOneTime
}

// sessionPeriod uses the subscription period when there is one. One-time
// purchases run for a year from the renewal date or the session creation
// date, so every caller computes the same dates for the same session.
func sessionPeriod(sess *payments.Session, intent *types.CheckoutIntent) (time.Time, time.Time) {
	if sess.PeriodStart != nil && sess.PeriodEnd != nil {
		return *sess.PeriodStart, *sess.PeriodEnd
	}

	start := sess.Created
	if raw := sess.Metadata[payments.MetadataRenewFrom]; raw != "" {
		if t, err := time.Parse(dateLayout, raw); err == nil {
			start = t
		}
	} else if intent != nil && intent.RenewFrom != nil {
		start = *intent.RenewFrom
	}

	start = truncateDay(start)
	return start, start.AddDate(0, 0, oneTimeDays)
}

func preview(intent *types.CheckoutIntent) *types.Household {
	start := intent.CreatedAt
	if intent.RenewFrom != nil {
		start = *intent.RenewFrom
	}
	start = truncateDay(start)

	members := intent.Members
	if members == nil {
		members = []types.Member{}
	}

	return &types.Household{
		IdentityID:    intent.IdentityID,
		Status:        types.HouseholdActive,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, oneTimeDays),
		Recurrence:    intent.Recurrence,
		LastSessionID: intent.SessionID,
		TotalCents:    intent.AmountCents,
		Members:       members,
	}
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func NewService(storage StorageInterface, payments PaymentsInterface, baseURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.payments = payments
	s.baseURL = strings.TrimRight(baseURL, "/")
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
