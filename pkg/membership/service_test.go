// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/payments"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package membership -destination ./mock_interfaces.go -source=./interfaces.go

type mocks struct {
	storage  *MockStorageInterface
	payments *MockPaymentsInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, mocks) {
	m := mocks{
		storage:  NewMockStorageInterface(ctrl),
		payments: NewMockPaymentsInterface(ctrl),
	}

	logger := logging.NewNoopLogger()
	return NewService(m.storage, m.payments, "https://example.org/", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), m
}

func passthroughTx(m *MockStorageInterface) {
	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	).AnyTimes()
}

var created = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func paidSession(id string, members []types.Member) *payments.Session {
	raw, _ := json.Marshal(members)
	return &payments.Session{
		ID:          id,
		Complete:    true,
		Paid:        true,
		AmountTotal: 6000,
		Created:     created,
		Metadata: map[string]string{
			payments.MetadataIdentityID: "id-1",
			payments.MetadataKind:       "membership",
			payments.MetadataRecurrence: "one_time",
			payments.MetadataMembers:    string(raw),
		},
	}
}

func testMembers() []types.Member {
	return []types.Member{
		{Position: 0, FullName: "Parent", Age: 45, Category: types.CategoryRegular, PriceCents: 5000},
		{Position: 1, FullName: "Kid", Age: 10, Category: types.CategoryYouth, PriceCents: 1000},
	}
}

func TestService_FinalizeRejects(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*payments.Session)
		expectedErr error
	}{
		{name: "missing identity", mutate: func(s *payments.Session) { delete(s.Metadata, payments.MetadataIdentityID) }, expectedErr: ErrMissingIdentity},
		{name: "donation session", mutate: func(s *payments.Session) { s.Metadata[payments.MetadataKind] = "donation" }, expectedErr: ErrWrongKind},
		{name: "unpaid session", mutate: func(s *payments.Session) { s.Paid = false }, expectedErr: ErrNotPaid},
		{name: "open session", mutate: func(s *payments.Session) { s.Complete = false }, expectedErr: ErrNotPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, m := newTestService(ctrl)

			sess := paidSession("cs_1", testMembers())
			tt.mutate(sess)
			m.payments.EXPECT().GetSession(gomock.Any(), "cs_1").Return(sess, nil)

			if _, err := s.Finalize(context.Background(), "cs_1"); !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_FinalizeOneTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)
	passthroughTx(m.storage)

	m.payments.EXPECT().GetSession(gomock.Any(), "cs_1").Return(paidSession("cs_1", testMembers()), nil)
	m.storage.EXPECT().GetCheckoutIntent(gomock.Any(), "cs_1").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().UpsertHousehold(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h *types.Household) (string, bool, error) {
			start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
			if !h.StartDate.Equal(start) || !h.EndDate.Equal(start.AddDate(0, 0, 365)) {
				t.Errorf("unexpected period %s - %s", h.StartDate, h.EndDate)
			}
			if h.IdentityID != "id-1" || h.LastSessionID != "cs_1" || h.TotalCents != 6000 || h.Recurrence != types.RecurrenceOneTime {
				t.Errorf("unexpected household %+v", h)
			}
			return "hh-1", true, nil
		},
	)
	m.storage.EXPECT().ReplaceMembers(gomock.Any(), "hh-1", testMembers()).Return(nil)
	m.storage.EXPECT().ListRoles(gomock.Any(), "id-1").Return([]types.Role{types.RoleUser}, nil)
	m.storage.EXPECT().AddRole(gomock.Any(), "id-1", types.RoleMember).Return(nil)
	m.storage.EXPECT().RemoveRole(gomock.Any(), "id-1", types.RoleUser).Return(nil)
	m.storage.EXPECT().MarkIntentFinalized(gomock.Any(), "cs_1").Return(nil)
	m.storage.EXPECT().GetHouseholdByIdentity(gomock.Any(), "id-1").Return(&types.Household{ID: "hh-1", IdentityID: "id-1"}, nil)

	h, err := s.Finalize(context.Background(), "cs_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.ID != "hh-1" {
		t.Fatalf("unexpected household %+v", h)
	}
}

func TestService_FinalizeAlreadyApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)
	passthroughTx(m.storage)

	m.payments.EXPECT().GetSession(gomock.Any(), "cs_1").Return(paidSession("cs_1", testMembers()), nil)
	m.storage.EXPECT().GetCheckoutIntent(gomock.Any(), "cs_1").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().UpsertHousehold(gomock.Any(), gomock.Any()).Return("", false, nil)
	m.storage.EXPECT().ListRoles(gomock.Any(), "id-1").Return([]types.Role{types.RoleMember}, nil)
	m.storage.EXPECT().MarkIntentFinalized(gomock.Any(), "cs_1").Return(nil)
	m.storage.EXPECT().GetHouseholdByIdentity(gomock.Any(), "id-1").Return(&types.Household{ID: "hh-1", IdentityID: "id-1"}, nil)

	if _, err := s.Finalize(context.Background(), "cs_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_FinalizeKeepsHigherRoles(t *testing.T) {
	for _, role := range []types.Role{types.RoleAdmin, types.RoleSuperAdmin, types.RoleVolunteer, types.RoleMember} {
		t.Run(string(role), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, m := newTestService(ctrl)
			passthroughTx(m.storage)

			m.payments.EXPECT().GetSession(gomock.Any(), "cs_1").Return(paidSession("cs_1", testMembers()), nil)
			m.storage.EXPECT().GetCheckoutIntent(gomock.Any(), "cs_1").Return(nil, storage.ErrNotFound)
			m.storage.EXPECT().UpsertHousehold(gomock.Any(), gomock.Any()).Return("hh-1", true, nil)
			m.storage.EXPECT().ReplaceMembers(gomock.Any(), "hh-1", gomock.Any()).Return(nil)
			m.storage.EXPECT().ListRoles(gomock.Any(), "id-1").Return([]types.Role{role}, nil)
			m.storage.EXPECT().AddRole(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			m.storage.EXPECT().RemoveRole(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			m.storage.EXPECT().MarkIntentFinalized(gomock.Any(), "cs_1").Return(nil)
			m.storage.EXPECT().GetHouseholdByIdentity(gomock.Any(), "id-1").Return(&types.Household{ID: "hh-1"}, nil)

			if _, err := s.Finalize(context.Background(), "cs_1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_FinalizeSubscriptionUsesIntentMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)
	passthroughTx(m.storage)

	start := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	sess := paidSession("cs_2", nil)
	delete(sess.Metadata, payments.MetadataMembers)
	sess.Metadata[payments.MetadataRecurrence] = "yearly"
	sess.SubscriptionID, sess.CustomerID = "sub_1", "cus_1"
	sess.PeriodStart, sess.PeriodEnd = &start, &end

	m.payments.EXPECT().GetSession(gomock.Any(), "cs_2").Return(sess, nil)
	m.storage.EXPECT().GetCheckoutIntent(gomock.Any(), "cs_2").Return(&types.CheckoutIntent{SessionID: "cs_2", IdentityID: "id-1", Kind: types.CheckoutMembership, Members: testMembers()}, nil)
	m.storage.EXPECT().UpsertHousehold(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h *types.Household) (string, bool, error) {
			if !h.StartDate.Equal(start) || !h.EndDate.Equal(end) {
				t.Errorf("expected provider period, got %s - %s", h.StartDate, h.EndDate)
			}
			if h.ProviderSubscriptionID != "sub_1" || h.ProviderCustomerID != "cus_1" || h.Recurrence != types.RecurrenceYearly {
				t.Errorf("unexpected household %+v", h)
			}
			return "hh-1", true, nil
		},
	)
	m.storage.EXPECT().ReplaceMembers(gomock.Any(), "hh-1", testMembers()).Return(nil)
	m.storage.EXPECT().ListRoles(gomock.Any(), "id-1").Return(nil, nil)
	m.storage.EXPECT().AddRole(gomock.Any(), "id-1", types.RoleMember).Return(nil)
	m.storage.EXPECT().RemoveRole(gomock.Any(), "id-1", types.RoleUser).Return(nil)
	m.storage.EXPECT().MarkIntentFinalized(gomock.Any(), "cs_2").Return(nil)
	m.storage.EXPECT().GetHouseholdByIdentity(gomock.Any(), "id-1").Return(&types.Household{ID: "hh-1"}, nil)

	if _, err := s.Finalize(context.Background(), "cs_2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_FinalizeRollsBackOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)

	txErr := errors.New("connection reset")
	passthroughTx(m.storage)

	m.payments.EXPECT().GetSession(gomock.Any(), "cs_1").Return(paidSession("cs_1", testMembers()), nil)
	m.storage.EXPECT().GetCheckoutIntent(gomock.Any(), "cs_1").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().UpsertHousehold(gomock.Any(), gomock.Any()).Return("hh-1", true, nil)
	m.storage.EXPECT().ReplaceMembers(gomock.Any(), "hh-1", gomock.Any()).Return(txErr)
	m.storage.EXPECT().MarkIntentFinalized(gomock.Any(), gomock.Any()).Times(0)
	m.storage.EXPECT().GetHouseholdByIdentity(gomock.Any(), gomock.Any()).Times(0)

	if _, err := s.Finalize(context.Background(), "cs_1"); !errors.Is(err, txErr) {
		t.Fatalf("expected %v, got %v", txErr, err)
	}
}

func TestService_Lookup(t *testing.T) {
	finalized := created
	renewFrom := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		intent         *types.CheckoutIntent
		household      *types.Household
		byIdentity     *types.Household
		expectedStatus LookupStatus
		expectedErr    error
	}{
		{name: "unknown session is pending", expectedStatus: StatusPending},
		{
			name:           "household written",
			intent:         &types.CheckoutIntent{SessionID: "cs_1", IdentityID: "id-1", Kind: types.CheckoutMembership},
			household:      &types.Household{ID: "hh-1", IdentityID: "id-1"},
			expectedStatus: StatusReady,
		},
		{
			name:           "intent only is a preview",
			intent:         &types.CheckoutIntent{SessionID: "cs_1", IdentityID: "id-1", Kind: types.CheckoutMembership, RenewFrom: &renewFrom, AmountCents: 6000, Members: testMembers()},
			expectedStatus: StatusPreview,
		},
		{
			name:           "finalized intent superseded by a later session",
			intent:         &types.CheckoutIntent{SessionID: "cs_1", IdentityID: "id-1", Kind: types.CheckoutMembership, FinalizedAt: &finalized},
			byIdentity:     &types.Household{ID: "hh-1", IdentityID: "id-1", LastSessionID: "cs_9"},
			expectedStatus: StatusReady,
		},
		{
			name:        "someone else's session",
			intent:      &types.CheckoutIntent{SessionID: "cs_1", IdentityID: "id-2", Kind: types.CheckoutMembership},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:        "donation session",
			intent:      &types.CheckoutIntent{SessionID: "cs_1", IdentityID: "id-1", Kind: types.CheckoutDonation},
			expectedErr: ErrWrongKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, m := newTestService(ctrl)

			if tt.intent != nil {
				m.storage.EXPECT().GetCheckoutIntent(gomock.Any(), "cs_1").Return(tt.intent, nil)
			} else {
				m.storage.EXPECT().GetCheckoutIntent(gomock.Any(), "cs_1").Return(nil, storage.ErrNotFound)
			}

			if tt.household != nil {
				m.storage.EXPECT().GetHouseholdBySession(gomock.Any(), "cs_1").Return(tt.household, nil)
			} else {
				m.storage.EXPECT().GetHouseholdBySession(gomock.Any(), "cs_1").Return(nil, storage.ErrNotFound).AnyTimes()
			}
			if tt.byIdentity != nil {
				m.storage.EXPECT().GetHouseholdByIdentity(gomock.Any(), "id-1").Return(tt.byIdentity, nil)
			}

			res, err := s.Lookup(context.Background(), "id-1", "cs_1")

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tt.expectedStatus {
				t.Fatalf("expected %s, got %s", tt.expectedStatus, res.Status)
			}
			if res.Provisional != (tt.expectedStatus == StatusPreview) {
				t.Fatalf("provisional flag wrong for %s", res.Status)
			}
			if res.Status == StatusPreview {
				if !res.Membership.StartDate.Equal(renewFrom) || res.Membership.TotalCents != 6000 || len(res.Membership.Members) != 2 {
					t.Fatalf("unexpected preview %+v", res.Membership)
				}
			}
		})
	}
}

func TestService_CreateCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)

	m.storage.EXPECT().ListPricing(gomock.Any()).Return(append(testRules(), types.PricingRule{MemberType: types.CategorySenior, AmountCents: 0}), nil)
	m.storage.EXPECT().GetProfile(gomock.Any(), "id-1").Return(&types.Profile{IdentityID: "id-1", Email: "a@example.org"}, nil)
	m.payments.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *payments.CheckoutRequest) (*payments.CheckoutSession, error) {
			if req.Recurrence != types.RecurrenceYearly || req.CustomerEmail != "a@example.org" {
				t.Errorf("unexpected request %+v", req)
			}
			if req.SuccessURL != "https://example.org/membership/thanks?session_id={CHECKOUT_SESSION_ID}" {
				t.Errorf("unexpected success url %s", req.SuccessURL)
			}
			if len(req.LineItems) != 1 {
				t.Errorf("free members should not be billed, got %+v", req.LineItems)
			}
			if req.Metadata[payments.MetadataIdentityID] != "id-1" || req.Metadata[payments.MetadataKind] != "membership" {
				t.Errorf("unexpected metadata %v", req.Metadata)
			}
			if !strings.Contains(req.Metadata[payments.MetadataMembers], `"fullName":"Grandma"`) {
				t.Errorf("members missing from metadata %v", req.Metadata)
			}
			return &payments.CheckoutSession{ID: "cs_1", URL: "https://checkout.example/cs_1"}, nil
		},
	)
	m.storage.EXPECT().SaveCheckoutIntent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, i *types.CheckoutIntent) error {
			if i.SessionID != "cs_1" || i.AmountCents != 5000 || len(i.Members) != 2 || i.Kind != types.CheckoutMembership {
				t.Errorf("unexpected intent %+v", i)
			}
			return nil
		},
	)

	sess, err := s.CreateCheckout(context.Background(), "id-1", &CheckoutRequest{
		Recurrence: "yearly",
		Members: []MemberInput{
			{FullName: "Parent", Age: 45, Category: "regular"},
			{FullName: "Grandma", Age: 80, Category: "senior"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.URL != "https://checkout.example/cs_1" {
		t.Fatalf("unexpected session %+v", sess)
	}
}

func TestService_CreateCheckoutRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)

	var verr *httptypes.ValidationError

	_, err := s.CreateCheckout(context.Background(), "id-1", &CheckoutRequest{Recurrence: "monthly", Members: []MemberInput{{FullName: "A", Age: 30, Category: "regular"}}})
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for monthly, got %v", err)
	}

	m.storage.EXPECT().ListPricing(gomock.Any()).Return([]types.PricingRule{{MemberType: types.CategoryRegular, AmountCents: 0}}, nil)
	_, err = s.CreateCheckout(context.Background(), "id-1", &CheckoutRequest{Members: []MemberInput{{FullName: "A", Age: 30, Category: "regular"}}})
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for a free checkout, got %v", err)
	}
}

func TestService_Renew(t *testing.T) {
	today := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		household    *types.Household
		expectedFrom string
		invalid      bool
	}{
		{
			name:         "renewing early extends from the end date",
			household:    &types.Household{IdentityID: "id-1", Status: types.HouseholdActive, Recurrence: types.RecurrenceOneTime, EndDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Members: testMembers()},
			expectedFrom: "2026-08-01",
		},
		{
			name:         "lapsed membership starts today",
			household:    &types.Household{IdentityID: "id-1", Status: types.HouseholdActive, Recurrence: types.RecurrenceOneTime, EndDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Members: testMembers()},
			expectedFrom: "2026-05-01",
		},
		{
			name:      "revoked",
			household: &types.Household{Status: types.HouseholdRevoked},
			invalid:   true,
		},
		{
			name:      "subscription",
			household: &types.Household{Status: types.HouseholdActive, Recurrence: types.RecurrenceYearly, ProviderSubscriptionID: "sub_1"},
			invalid:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, m := newTestService(ctrl)
			s.now = func() time.Time { return today }

			m.storage.EXPECT().GetHouseholdByIdentity(gomock.Any(), "id-1").Return(tt.household, nil)

			if !tt.invalid {
				m.storage.EXPECT().ListPricing(gomock.Any()).Return(testRules(), nil)
				m.storage.EXPECT().GetProfile(gomock.Any(), "id-1").Return(nil, storage.ErrNotFound)
				m.payments.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req *payments.CheckoutRequest) (*payments.CheckoutSession, error) {
						if req.Metadata[payments.MetadataRenewFrom] != tt.expectedFrom || req.Recurrence != types.RecurrenceOneTime {
							t.Errorf("unexpected renewal request %v", req.Metadata)
						}
						return &payments.CheckoutSession{ID: "cs_3"}, nil
					},
				)
				m.storage.EXPECT().SaveCheckoutIntent(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, i *types.CheckoutIntent) error {
						if i.RenewFrom == nil || i.RenewFrom.Format(dateLayout) != tt.expectedFrom {
							t.Errorf("unexpected renew from %v", i.RenewFrom)
						}
						return nil
					},
				)
			}

			_, err := s.Renew(context.Background(), "id-1")

			var verr *httptypes.ValidationError
			if tt.invalid != errors.As(err, &verr) {
				t.Fatalf("unexpected error %v", err)
			}
			if !tt.invalid && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
		})
	}
}

func TestService_Revoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)

	m.storage.EXPECT().GetHousehold(gomock.Any(), "hh-1").Return(&types.Household{ID: "hh-1", Status: types.HouseholdActive}, nil)
	m.storage.EXPECT().RevokeHousehold(gomock.Any(), "hh-1").Return(nil)

	if err := s.Revoke(context.Background(), "admin-1", "hh-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.storage.EXPECT().GetHousehold(gomock.Any(), "hh-2").Return(nil, storage.ErrNotFound)
	if err := s.Revoke(context.Background(), "admin-1", "hh-2"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_SetPricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)

	var verr *httptypes.ValidationError
	if err := s.SetPricing(context.Background(), "admin-1", &types.PricingRule{MemberType: types.CategoryYouth, AmountCents: 100, MinAge: intPtr(18), MaxAge: intPtr(5)}); !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	rule := &types.PricingRule{MemberType: types.CategoryYouth, AmountCents: 1500, MaxAge: intPtr(17)}
	m.storage.EXPECT().UpsertPricing(gomock.Any(), rule).Return(nil)
	if err := s.SetPricing(context.Background(), "admin-1", rule); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func renewalInvoice() *payments.Invoice {
	start := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2028, 3, 1, 0, 0, 0, 0, time.UTC)

	return &payments.Invoice{
		ID:             "in_2",
		SubscriptionID: "sub_1",
		AmountPaid:     6000,
		BillingReason:  "subscription_cycle",
		Metadata:       map[string]string{payments.MetadataKind: "membership", payments.MetadataIdentityID: "id-1"},
		PeriodStart:    &start,
		PeriodEnd:      &end,
	}
}

func TestService_ApplyRenewalExtendsSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestService(ctrl)

	inv := renewalInvoice()
	current := &types.Household{ID: "hh-1", IdentityID: "id-1", Status: types.HouseholdActive, EndDate: *inv.PeriodStart, ProviderSubscriptionID: "sub_1"}
	renewed := *current
	renewed.StartDate, renewed.EndDate = *inv.PeriodStart, *inv.PeriodEnd

	gomock.InOrder(
		m.storage.EXPECT().GetHouseholdBySubscription(gomock.Any(), "sub_1").Return(current, nil),
		m.storage.EXPECT().ExtendHousehold(gomock.Any(), "sub_1", *inv.PeriodStart, *inv.PeriodEnd).Return(true, nil),
		m.storage.EXPECT().GetHouseholdBySubscription(gomock.Any(), "sub_1").Return(&renewed, nil),
	)

	h, err := svc.ApplyRenewal(context.Background(), inv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !h.EndDate.Equal(*inv.PeriodEnd) {
		t.Fatalf("expected end date %s, got %s", inv.PeriodEnd, h.EndDate)
	}
}

func TestService_ApplyRenewalReplayKeepsHousehold(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestService(ctrl)

	inv := renewalInvoice()
	current := &types.Household{ID: "hh-1", Status: types.HouseholdActive, EndDate: *inv.PeriodEnd}

	m.storage.EXPECT().GetHouseholdBySubscription(gomock.Any(), "sub_1").Return(current, nil)
	m.storage.EXPECT().ExtendHousehold(gomock.Any(), "sub_1", gomock.Any(), gomock.Any()).Return(false, nil)

	h, err := svc.ApplyRenewal(context.Background(), inv)
	if err != nil || h != current {
		t.Fatalf("expected the stored household back, got %v, %v", h, err)
	}
}

func TestService_ApplyRenewalRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*payments.Invoice)
		setup   func(*MockStorageInterface)
		wantErr error
	}{
		{
			name:    "donation invoice",
			mutate:  func(i *payments.Invoice) { i.Metadata[payments.MetadataKind] = "donation" },
			setup:   func(*MockStorageInterface) {},
			wantErr: ErrWrongKind,
		},
		{
			name:    "no period",
			mutate:  func(i *payments.Invoice) { i.PeriodEnd = nil },
			setup:   func(*MockStorageInterface) {},
			wantErr: ErrNoPeriod,
		},
		{
			name:   "unknown subscription",
			mutate: func(*payments.Invoice) {},
			setup: func(s *MockStorageInterface) {
				s.EXPECT().GetHouseholdBySubscription(gomock.Any(), "sub_1").Return(nil, storage.ErrNotFound)
			},
			wantErr: ErrUnknownSubscription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, m := newTestService(ctrl)

			inv := renewalInvoice()
			tt.mutate(inv)
			tt.setup(m.storage)

			if _, err := svc.ApplyRenewal(context.Background(), inv); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestService_ApplyRenewalLeavesRevokedHousehold(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestService(ctrl)

	revoked := &types.Household{ID: "hh-1", Status: types.HouseholdRevoked}
	m.storage.EXPECT().GetHouseholdBySubscription(gomock.Any(), "sub_1").Return(revoked, nil)

	h, err := svc.ApplyRenewal(context.Background(), renewalInvoice())
	if err != nil || h.Status != types.HouseholdRevoked {
		t.Fatalf("expected revoked household untouched, got %v, %v", h, err)
	}
}
