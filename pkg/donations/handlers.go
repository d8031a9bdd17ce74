// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package donations

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/communityhub/portal/internal/authorization"
	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/identity"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/ratelimit"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
	"github.com/communityhub/portal/pkg/admin"
)

// multipartOverhead is allowed on top of the proof size for the form fields.
const multipartOverhead = 1 << 20

var equalsFilters = []string{"method", "status", "fund"}

type API struct {
	service        ServiceInterface
	guard          authorization.MiddlewareInterface
	limiter        ratelimit.MiddlewareInterface
	maxUploadBytes int64

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	admins := a.guard.RequireRole(types.RoleAdmin)

	listing := admin.Listing[types.Donation]{
		Name:   "donations",
		Equals: equalsFilters,
		List:   a.service.List,
		Export: a.service.Export,
		Header: csvHeader,
		Rows:   csvRows,
	}

	mux.With(a.limiter.PerIP("donations")).Post("/api/v0/donations/checkout", a.checkout)
	mux.With(a.limiter.PerIP("donations")).Post("/api/v0/donations/manual", a.submitManual)

	mux.With(admins).Get("/api/v0/admin/donations", listing.Handler(a.logger))
	mux.With(admins).Get("/api/v0/admin/donations/summary", a.summary)
	mux.With(admins).Patch("/api/v0/admin/donations/{id}", a.transition)
}

// statusFor extends the shared mapping with the review errors.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrConfirmationRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrWrongKind):
		return http.StatusBadRequest
	}
	return httptypes.StatusFor(err)
}

func (a *API) checkout(w http.ResponseWriter, r *http.Request) {
	identityID, _ := identity.IdentityID(r.Context())

	var req CheckoutRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, false)
		return
	}

	sess, err := a.service.CreateCheckout(r.Context(), identityID, &req)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, statusFor(err), err, false)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, sess)
}

func (a *API) submitManual(w http.ResponseWriter, r *http.Request) {
	identityID, _ := identity.IdentityID(r.Context())

	var (
		req   ManualRequest
		proof *ProofFile
		err   error
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		proof, err = a.decodeMultipart(w, r, &req)
	} else {
		err = httptypes.DecodeJSON(w, r, &req)
	}
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, false)
		return
	}

	id, err := a.service.SubmitManual(r.Context(), identityID, &req, proof)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, statusFor(err), err, false)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, httptypes.OKResponse{OK: true, ID: id})
}

func (a *API) decodeMultipart(w http.ResponseWriter, r *http.Request, req *ManualRequest) (*ProofFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadBytes+multipartOverhead)

	if err := r.ParseMultipartForm(a.maxUploadBytes); err != nil {
		return nil, httptypes.NewValidationError("body", "must be a form of at most "+strconv.FormatInt(a.maxUploadBytes, 10)+" bytes")
	}

	req.DonorName = r.FormValue("donorName")
	req.DonorEmail = r.FormValue("donorEmail")
	req.Method = r.FormValue("method")
	req.Fund = r.FormValue("fund")
	req.TransactionID = r.FormValue("transactionId")
	req.Reference = r.FormValue("reference")
	req.TransferDate = r.FormValue("transferDate")
	req.ProofURL = r.FormValue("proofUrl")

	if v := strings.TrimSpace(r.FormValue("amountCents")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, httptypes.NewValidationError("amountCents", "must be a whole number of cents")
		}
		req.AmountCents = n
	}

	if err := httptypes.Validate(req); err != nil {
		return nil, err
	}

	file, header, err := r.FormFile("proof")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, httptypes.NewValidationError("proof", "could not be read")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, a.maxUploadBytes+1))
	if err != nil {
		return nil, httptypes.NewValidationError("proof", "could not be read")
	}

	return &ProofFile{Name: header.Filename, Data: data}, nil
}

func (a *API) summary(w http.ResponseWriter, r *http.Request) {
	f, err := admin.ParseFilter(r.URL.Query(), equalsFilters...)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, true)
		return
	}

	sum, err := a.service.Summary(r.Context(), f)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, statusFor(err), err, true)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, sum)
}

func (a *API) transition(w http.ResponseWriter, r *http.Request) {
	actorID, _ := identity.IdentityID(r.Context())

	var req TransitionRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, true)
		return
	}

	d, err := a.service.Transition(r.Context(), actorID, chi.URLParam(r, "id"), &req)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, statusFor(err), err, true)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, d)
}

func NewAPI(service ServiceInterface, guard authorization.MiddlewareInterface, limiter ratelimit.MiddlewareInterface, maxUploadBytes int64, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.guard = guard
	a.limiter = limiter
	a.maxUploadBytes = maxUploadBytes

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
