// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/communityhub/portal/pkg/admin"
	"github.com/communityhub/portal/pkg/donations"
)

var donationFilter struct {
	query  string
	from   string
	to     string
	method string
	status string
	fund   string
}

var donationsCmd = &cobra.Command{
	Use:   "donations",
	Short: "Back office donation reports",
}

var donationsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the donations matching the filter as CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := donationQuery()
		query.Set("format", "csv")

		output, _ := cmd.Flags().GetString("output")

		var w io.Writer = cmd.OutOrStdout()
		if output != "" && output != "-" {
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}

		n, err := getClient().download(cmd.Context(), "/api/v0/admin/donations", query, w)
		if err != nil {
			return err
		}
		if output != "" && output != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d bytes to %s\n", n, output)
		}
		return nil
	},
}

var donationsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print donation totals per method and per fund",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var sum donations.Summary
		if err := getClient().getJSON(cmd.Context(), http.MethodGet, "/api/v0/admin/donations/summary", donationQuery(), &sum); err != nil {
			return err
		}

		printSummary(cmd.OutOrStdout(), &sum)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{donationsExportCmd, donationsSummaryCmd} {
		c.Flags().StringVar(&donationFilter.query, "q", "", "Free text search")
		c.Flags().StringVar(&donationFilter.from, "from", "", "Created on or after, YYYY-MM-DD")
		c.Flags().StringVar(&donationFilter.to, "to", "", "Created on or before, YYYY-MM-DD")
		c.Flags().StringVar(&donationFilter.method, "method", "", "stripe, zelle or bank")
		c.Flags().StringVar(&donationFilter.status, "status", "", "Donation status")
		c.Flags().StringVar(&donationFilter.fund, "fund", "", "Fund")
	}
	donationsExportCmd.Flags().StringP("output", "o", "-", "Output file, - for stdout")

	donationsCmd.AddCommand(donationsExportCmd, donationsSummaryCmd)
	rootCmd.AddCommand(donationsCmd)
}

func donationQuery() url.Values {
	q := url.Values{}
	for k, v := range map[string]string{
		"q":      donationFilter.query,
		"from":   donationFilter.from,
		"to":     donationFilter.to,
		"method": donationFilter.method,
		"status": donationFilter.status,
		"fund":   donationFilter.fund,
	} {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

func printSummary(w io.Writer, sum *donations.Summary) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "METHOD\tTOTAL")
	for _, m := range sum.ByMethod {
		fmt.Fprintf(tw, "%s\t%s\n", m.Method, admin.Cents(m.Total))
	}

	fmt.Fprintln(tw, "\nFUND\tTOTAL")
	for _, f := range sum.ByFund {
		fmt.Fprintf(tw, "%s\t%s\n", f.Fund, admin.Cents(f.Total))
	}
}
