// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/communityhub/portal/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the portal version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "portal %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
