// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/payments"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

// memoryStore keeps households the way the SQL upsert does: one row per
// identity, rewritten only by a different session covering a later period.
type memoryStore struct {
	tx sync.Mutex
	mu sync.Mutex

	households map[string]*types.Household
	members    map[string][]types.Member
	roles      map[string]map[types.Role]bool
	finalized  map[string]bool
	applied    int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		households: map[string]*types.Household{},
		members:    map[string][]types.Member{},
		roles:      map[string]map[types.Role]bool{"id-1": {types.RoleUser: true}},
		finalized:  map[string]bool{},
	}
}

func (m *memoryStore) WithTx(ctx context.Context, fn func(context.Context) error) error {
	m.tx.Lock()
	defer m.tx.Unlock()
	return fn(ctx)
}

func (m *memoryStore) ListPricing(context.Context) ([]types.PricingRule, error) { return nil, nil }
func (m *memoryStore) UpsertPricing(context.Context, *types.PricingRule) error  { return nil }
func (m *memoryStore) GetProfile(context.Context, string) (*types.Profile, error) {
	return nil, storage.ErrNotFound
}

func (m *memoryStore) ListRoles(_ context.Context, identityID string) ([]types.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []types.Role
	for r := range m.roles[identityID] {
		out = append(out, r)
	}
	return out, nil
}

func (m *memoryStore) AddRole(_ context.Context, identityID string, role types.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.roles[identityID] == nil {
		m.roles[identityID] = map[types.Role]bool{}
	}
	m.roles[identityID][role] = true
	return nil
}

func (m *memoryStore) RemoveRole(_ context.Context, identityID string, role types.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.roles[identityID], role)
	return nil
}

func (m *memoryStore) SaveCheckoutIntent(context.Context, *types.CheckoutIntent) error { return nil }
func (m *memoryStore) GetCheckoutIntent(context.Context, string) (*types.CheckoutIntent, error) {
	return nil, storage.ErrNotFound
}

func (m *memoryStore) MarkIntentFinalized(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.finalized[sessionID] = true
	return nil
}

func (m *memoryStore) UpsertHousehold(_ context.Context, h *types.Household) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.households[h.IdentityID]
	if ok && (cur.LastSessionID == h.LastSessionID || cur.EndDate.After(h.EndDate)) {
		return "", false, nil
	}

	row := *h
	row.ID = "hh-" + h.IdentityID
	row.Status = types.HouseholdActive
	m.households[h.IdentityID] = &row
	m.applied++

	return row.ID, true, nil
}

func (m *memoryStore) ReplaceMembers(_ context.Context, householdID string, members []types.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.members[householdID] = append([]types.Member(nil), members...)
	return nil
}

func (m *memoryStore) GetHousehold(context.Context, string) (*types.Household, error) {
	return nil, storage.ErrNotFound
}

func (m *memoryStore) GetHouseholdByIdentity(_ context.Context, identityID string) (*types.Household, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.households[identityID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := *h
	out.Members = m.members[h.ID]
	return &out, nil
}

func (m *memoryStore) GetHouseholdBySession(context.Context, string) (*types.Household, error) {
	return nil, storage.ErrNotFound
}
func (m *memoryStore) GetHouseholdBySubscription(context.Context, string) (*types.Household, error) {
	return nil, storage.ErrNotFound
}
func (m *memoryStore) ExtendHousehold(context.Context, string, time.Time, time.Time) (bool, error) {
	return false, nil
}
func (m *memoryStore) RevokeHousehold(context.Context, string) error { return nil }
func (m *memoryStore) ListHouseholds(context.Context, storage.ListFilter) (*types.Page[types.Household], error) {
	return &types.Page[types.Household]{}, nil
}

type staticPayments struct {
	session *payments.Session
}

func (p staticPayments) CreateCheckoutSession(context.Context, *payments.CheckoutRequest) (*payments.CheckoutSession, error) {
	return nil, nil
}

func (p staticPayments) GetSession(context.Context, string) (*payments.Session, error) {
	s := *p.session
	return &s, nil
}

func TestService_FinalizeConcurrentCallsConverge(t *testing.T) {
	store := newMemoryStore()
	logger := logging.NewNoopLogger()
	s := NewService(store, staticPayments{session: paidSession("cs_1", testMembers())}, "https://example.org", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	const callers = 8

	results := make([]*types.Household, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.Finalize(context.Background(), "cs_1")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d failed: %v", i, err)
		}
		if !reflect.DeepEqual(results[i], results[0]) {
			t.Fatalf("caller %d saw %+v, caller 0 saw %+v", i, results[i], results[0])
		}
	}

	if store.applied != 1 {
		t.Fatalf("expected the household to be written once, got %d", store.applied)
	}
	if len(results[0].Members) != 2 {
		t.Fatalf("expected 2 members, got %+v", results[0].Members)
	}
	if roles := store.roles["id-1"]; len(roles) != 1 || !roles[types.RoleMember] {
		t.Fatalf("expected member role only, got %v", roles)
	}
	if !store.finalized["cs_1"] {
		t.Fatal("intent should be marked finalized")
	}

	// a later retry of the same session changes nothing
	if _, err := s.Finalize(context.Background(), "cs_1"); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if store.applied != 1 {
		t.Fatalf("retry rewrote the household")
	}
}
