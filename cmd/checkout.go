// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
	"github.com/communityhub/portal/pkg/checkout"
	"github.com/communityhub/portal/pkg/membership"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Follow membership checkout sessions",
}

var checkoutWaitCmd = &cobra.Command{
	Use:   "wait <session-id>",
	Short: "Wait until a paid checkout session is recorded",
	Long: `Polls the session lookup endpoint, asking the server to finalize the
session when it is not recorded yet, until the membership is ready or the
attempts run out.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.NewLogger("error")
		poller := checkout.NewPoller(checkout.DefaultPolicy, tracing.NewNoopTracer(), logger)

		out := cmd.OutOrStdout()
		poller.OnChange = func(s checkout.State) {
			if s.Status == checkout.StatusPreview {
				fmt.Fprintln(out, "payment received, showing provisional details while it is recorded")
			}
		}

		state, err := waitForCheckout(cmd.Context(), getClient(), poller, args[0])
		if err != nil {
			return err
		}

		return printCheckoutState(out, state)
	},
}

func init() {
	checkoutCmd.AddCommand(checkoutWaitCmd)
	rootCmd.AddCommand(checkoutCmd)
}

// waitForCheckout drives the poller with the lookup endpoint. A lookup that
// is not ready asks the server to pull the session from the payment
// provider, until finalize gives a definite answer. Server errors and
// network failures count as pending and are retried on the next attempt.
func waitForCheckout(ctx context.Context, client *apiClient, poller *checkout.Poller, sessionID string) (checkout.State, error) {
	path := "/api/v0/checkout/sessions/" + url.PathEscape(sessionID)
	finalized := false

	lookup := func(ctx context.Context) checkout.Result {
		var res membership.LookupResult
		if err := client.getJSON(ctx, http.MethodGet, path, nil, &res); err != nil {
			return lookupFailure(err)
		}
		if res.Status == membership.StatusReady || finalized {
			return checkout.Result{Status: checkout.Status(res.Status), Data: household(res.Membership)}
		}

		var ready membership.LookupResult
		err := client.getJSON(ctx, http.MethodPost, path+"/finalize", nil, &ready)

		var apiErr *apiError
		switch {
		case err == nil:
			finalized = true
			return checkout.Result{Status: checkout.Status(ready.Status), Data: household(ready.Membership)}
		case errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict:
			// not paid yet, the webhook records it once it is
			finalized = true
		default:
			if r := lookupFailure(err); r.Err != nil {
				return r
			}
		}

		return checkout.Result{Status: checkout.Status(res.Status), Data: household(res.Membership)}
	}

	return poller.Wait(ctx, lookup)
}

// household keeps a missing membership out of the state as a nil interface.
func household(h *types.Household) interface{} {
	if h == nil {
		return nil
	}
	return h
}

func lookupFailure(err error) checkout.Result {
	var apiErr *apiError
	if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
		return checkout.Result{Err: err}
	}
	return checkout.Result{Status: checkout.StatusPending}
}

func printCheckoutState(w io.Writer, s checkout.State) error {
	switch s.Status {
	case checkout.StatusReady:
		fmt.Fprintln(w, "membership is active")
	case checkout.StatusTimedOut:
		fmt.Fprintln(w, s.Message())
	case checkout.StatusError:
		return errors.New(s.Message())
	}

	if s.Data == nil {
		return nil
	}
	if s.Provisional() {
		fmt.Fprintln(w, "provisional details:")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Data)
}

