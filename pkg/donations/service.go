// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package donations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/objectstore"
	"github.com/communityhub/portal/internal/payments"
	"github.com/communityhub/portal/internal/sanitize"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

const (
	dateLayout     = "2006-01-02"
	minAmountCents = 100
	minBankTxnID   = 4
	minZelleRef    = 3
)

var (
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrInvalidTransition    = fmt.Errorf("status change not allowed: %w", storage.ErrConflict)
	ErrWrongKind            = errors.New("checkout session is not a donation")
)

// CanTransition reports whether a reviewer may move a donation from one
// status to another.
func CanTransition(from, to types.DonationStatus) bool {
	switch to {
	case types.DonationNeedsReview:
		return from != types.DonationNeedsReview
	case types.DonationSucceeded:
		return from == types.DonationPending
	case types.DonationFailed:
		return from == types.DonationPending || from == types.DonationSucceeded
	case types.DonationRefunded:
		return from == types.DonationSucceeded
	}
	return false
}

type Config struct {
	BaseURL        string
	ProofPrefix    string
	MaxUploadBytes int64
}

type Service struct {
	storage  StorageInterface
	payments PaymentsInterface
	objects  ObjectStoreInterface
	config   Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateCheckout opens a card checkout. identityID is empty for anonymous
// donors.
func (s *Service) CreateCheckout(ctx context.Context, identityID string, req *CheckoutRequest) (*payments.CheckoutSession, error) {
	ctx, span := s.tracer.Start(ctx, "donations.Service.CreateCheckout")
	defer span.End()

	verr := new(httptypes.ValidationError)

	if req.AmountCents < minAmountCents {
		verr.Add("amountCents", fmt.Sprintf("must be at least %d", minAmountCents))
	}
	fund := sanitize.Text(req.Fund)
	if fund == "" {
		verr.Add("fund", "is required")
	}
	recurrence, err := types.ParseRecurrence(req.Recurrence)
	if err != nil {
		verr.Add("recurrence", "must be one of: one_time yearly monthly")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	metadata := map[string]string{
		payments.MetadataKind:       string(types.CheckoutDonation),
		payments.MetadataRecurrence: string(recurrence),
		payments.MetadataFund:       fund,
	}
	if identityID != "" {
		metadata[payments.MetadataIdentityID] = identityID
	}

	sess, err := s.payments.CreateCheckoutSession(ctx, &payments.CheckoutRequest{
		Recurrence:    recurrence,
		Donation:      true,
		CustomerEmail: req.DonorEmail,
		Metadata:      metadata,
		SuccessURL:    s.config.BaseURL + "/donate/thanks?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     s.config.BaseURL + "/donate?canceled=1",
		LineItems: []payments.LineItem{
			{Name: "Donation: " + fund, AmountCents: req.AmountCents, Quantity: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	err = s.storage.SaveCheckoutIntent(ctx, &types.CheckoutIntent{
		SessionID:   sess.ID,
		IdentityID:  identityID,
		Kind:        types.CheckoutDonation,
		Recurrence:  recurrence,
		AmountCents: req.AmountCents,
	})
	if err != nil {
		return nil, err
	}

	return sess, nil
}

// RecordCheckout stores the donation behind a completed card checkout. Paid
// sessions are recorded as succeeded, delayed payment methods stay pending
// until MarkAsync.
func (s *Service) RecordCheckout(ctx context.Context, session *payments.Session) (*types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "donations.Service.RecordCheckout")
	defer span.End()

	status := types.DonationPending
	if session.Paid {
		status = types.DonationSucceeded
	}

	return s.record(ctx, session, status)
}

// MarkAsync settles a donation paid with a delayed method. Donations already
// decided by a reviewer are left alone.
func (s *Service) MarkAsync(ctx context.Context, session *payments.Session, succeeded bool) (*types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "donations.Service.MarkAsync")
	defer span.End()

	status := types.DonationFailed
	if succeeded {
		status = types.DonationSucceeded
	}

	return s.record(ctx, session, status)
}

// RecordInvoice stores a recurring donation charged by its subscription,
// keyed by the invoice so each billing period is recorded once. The first
// invoice is paid through the checkout session and recorded from it.
func (s *Service) RecordInvoice(ctx context.Context, invoice *payments.Invoice) (*types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "donations.Service.RecordInvoice")
	defer span.End()

	if kind := invoice.Metadata[payments.MetadataKind]; kind != string(types.CheckoutDonation) {
		return nil, ErrWrongKind
	}
	if invoice.BillingReason == payments.BillingReasonSubscriptionCreate {
		s.logger.Debugf("invoice %s opened subscription %s, recorded from its checkout", invoice.ID, invoice.SubscriptionID)
		return nil, nil
	}

	recurrence, err := types.ParseRecurrence(invoice.Metadata[payments.MetadataRecurrence])
	if err != nil || recurrence == types.RecurrenceOneTime {
		recurrence = types.RecurrenceMonthly
	}

	ref := invoice.ID
	d := &types.Donation{
		DonorName:   invoice.CustomerName,
		DonorEmail:  invoice.CustomerEmail,
		Method:      types.MethodStripe,
		Status:      types.DonationSucceeded,
		AmountCents: invoice.AmountPaid,
		Fund:        invoice.Metadata[payments.MetadataFund],
		Recurrence:  recurrence,
		ExternalRef: &ref,
	}
	if id := invoice.Metadata[payments.MetadataIdentityID]; id != "" {
		d.IdentityID = &id
	}

	return s.storage.UpsertDonationByExternalRef(ctx, d)
}

func (s *Service) record(ctx context.Context, session *payments.Session, status types.DonationStatus) (*types.Donation, error) {
	if kind := session.Metadata[payments.MetadataKind]; kind != string(types.CheckoutDonation) {
		return nil, ErrWrongKind
	}

	recurrence, err := types.ParseRecurrence(session.Metadata[payments.MetadataRecurrence])
	if err != nil {
		recurrence = types.RecurrenceOneTime
	}

	ref := session.ID
	d := &types.Donation{
		DonorName:   session.CustomerName,
		DonorEmail:  session.CustomerEmail,
		Method:      types.MethodStripe,
		Status:      status,
		AmountCents: session.AmountTotal,
		Fund:        session.Metadata[payments.MetadataFund],
		Recurrence:  recurrence,
		ExternalRef: &ref,
	}
	if id := session.Metadata[payments.MetadataIdentityID]; id != "" {
		d.IdentityID = &id
	}

	out, err := s.storage.UpsertDonationByExternalRef(ctx, d)
	if err != nil {
		return nil, err
	}

	if out.Status != status {
		s.logger.Infof("donation %s kept status %s, event asked for %s", out.ID, out.Status, status)
	}

	return out, nil
}

// SubmitManual records a bank transfer or Zelle claim as pending. The proof
// file is uploaded first, the donation and its proof row are written in one
// transaction and the upload is removed again when that fails.
func (s *Service) SubmitManual(ctx context.Context, identityID string, req *ManualRequest, proof *ProofFile) (string, error) {
	ctx, span := s.tracer.Start(ctx, "donations.Service.SubmitManual")
	defer span.End()

	verr := new(httptypes.ValidationError)

	if req.AmountCents < minAmountCents {
		verr.Add("amountCents", fmt.Sprintf("must be at least %d", minAmountCents))
	}

	txnID := strings.TrimSpace(req.TransactionID)
	reference := strings.TrimSpace(req.Reference)

	method, err := types.ParsePaymentMethod(strings.ToLower(strings.TrimSpace(req.Method)))
	switch {
	case err != nil || method == types.MethodStripe:
		verr.Add("method", "must be one of: bank zelle")
	case method == types.MethodBank && len(txnID) < minBankTxnID:
		verr.Add("transactionId", fmt.Sprintf("is required for bank transfers and must be at least %d characters", minBankTxnID))
	case method == types.MethodZelle && len(reference) < minZelleRef:
		verr.Add("reference", fmt.Sprintf("is required for Zelle payments and must be at least %d characters", minZelleRef))
	}

	fund := sanitize.Text(req.Fund)
	if fund == "" {
		verr.Add("fund", "is required")
	}

	var transferDate *time.Time
	if req.TransferDate != "" {
		t, err := time.Parse(dateLayout, req.TransferDate)
		if err != nil {
			verr.Add("transferDate", "must be a date formatted as YYYY-MM-DD")
		} else {
			transferDate = &t
		}
	}

	var contentType, extension string
	if proof != nil && len(proof.Data) > 0 {
		var ok bool
		contentType, extension, ok = objectstore.Sniff(proof.Data, "image/", "application/pdf")

		switch {
		case s.objects == nil:
			verr.Add("proof", "uploads are not available, send a reference instead")
		case int64(len(proof.Data)) > s.config.MaxUploadBytes:
			verr.Add("proof", fmt.Sprintf("must be at most %d bytes", s.config.MaxUploadBytes))
		case !ok:
			verr.Add("proof", "must be an image or a PDF")
		}
	}

	if err := verr.Err(); err != nil {
		return "", err
	}

	var objectKey string
	if contentType != "" {
		objectKey = s.config.ProofPrefix + time.Now().UTC().Format("2006/01/") + uuid.NewString() + extension
		if err := s.objects.Put(ctx, objectKey, proof.Data, contentType); err != nil {
			return "", fmt.Errorf("failed to upload proof: %w", err)
		}
	}

	d := &types.Donation{
		DonorName:   sanitize.Text(req.DonorName),
		DonorEmail:  strings.TrimSpace(req.DonorEmail),
		Method:      method,
		Status:      types.DonationPending,
		AmountCents: req.AmountCents,
		Fund:        fund,
		Recurrence:  types.RecurrenceOneTime,
	}
	if identityID != "" {
		d.IdentityID = &identityID
	}

	var id string
	err = s.storage.WithTx(ctx, func(ctx context.Context) error {
		created, err := s.storage.CreateDonation(ctx, d)
		if err != nil {
			return err
		}
		id = created.ID

		return s.storage.CreateDonationProof(ctx, &types.DonationProof{
			DonationID:     created.ID,
			TransferDate:   transferDate,
			ProofURL:       strings.TrimSpace(req.ProofURL),
			ProofObjectKey: objectKey,
			TransactionID:  txnID,
			Reference:      reference,
		})
	})
	if err != nil {
		if objectKey != "" {
			if derr := s.objects.Delete(context.WithoutCancel(ctx), objectKey); derr != nil {
				s.logger.Errorf("failed to remove orphaned proof %s: %v", objectKey, derr)
			}
		}
		return "", fmt.Errorf("failed to record manual donation: %w", err)
	}

	s.logger.Infof("manual %s donation %s recorded as pending", method, id)

	return id, nil
}

// Transition applies a reviewer status change as a compare-and-set on the
// status the reviewer saw.
func (s *Service) Transition(ctx context.Context, actorID, id string, req *TransitionRequest) (*types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "donations.Service.Transition")
	defer span.End()

	to, err := types.ParseDonationStatus(strings.TrimSpace(req.Status))
	if err != nil {
		return nil, httptypes.NewValidationError("status", "must be one of: pending succeeded failed refunded needs_review")
	}

	if !req.Confirmed {
		return nil, ErrConfirmationRequired
	}

	d, err := s.storage.GetDonation(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(d.Status, to) {
		return nil, fmt.Errorf("%s to %s: %w", d.Status, to, ErrInvalidTransition)
	}

	err = s.storage.TransitionDonationStatus(ctx, id, d.Status, to)
	if errors.Is(err, storage.ErrConflict) {
		return nil, fmt.Errorf("donation changed while reviewing: %w", ErrInvalidTransition)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(actorID, "transition_donation", id, "from", string(d.Status), "to", string(to))

	return s.storage.GetDonation(ctx, id)
}

func (s *Service) List(ctx context.Context, f storage.ListFilter) (*types.Page[types.Donation], error) {
	ctx, span := s.tracer.Start(ctx, "donations.Service.List")
	defer span.End()

	return s.storage.ListDonations(ctx, f)
}

func (s *Service) Export(ctx context.Context, f storage.ListFilter) ([]types.Donation, error) {
	ctx, span := s.tracer.Start(ctx, "donations.Service.Export")
	defer span.End()

	return s.storage.ExportDonations(ctx, f)
}

func (s *Service) Summary(ctx context.Context, f storage.ListFilter) (*Summary, error) {
	ctx, span := s.tracer.Start(ctx, "donations.Service.Summary")
	defer span.End()

	sum, err := s.storage.SummarizeDonations(ctx, f)
	if err != nil {
		return nil, err
	}

	out := &Summary{
		ByMethod: make([]MethodTotal, len(sum.ByMethod)),
		ByFund:   make([]FundTotal, len(sum.ByFund)),
	}
	for i, t := range sum.ByMethod {
		out.ByMethod[i] = MethodTotal{Method: t.Key, Total: t.Total}
	}
	for i, t := range sum.ByFund {
		out.ByFund[i] = FundTotal{Fund: t.Key, Total: t.Total}
	}

	return out, nil
}

// NewService builds the donations service. objects may be nil when no
// bucket is configured, proof files are refused then.
func NewService(storage StorageInterface, payments PaymentsInterface, objects ObjectStoreInterface, config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.payments = payments
	s.objects = objects
	s.config = config
	s.config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
