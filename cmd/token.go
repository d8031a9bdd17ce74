// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/communityhub/portal/pkg/roles"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Fetch an access token for the admin API with the client credentials flow",
	Long: `Fetch an access token for the admin API with the client credentials flow.

The token is printed on stdout so it can be exported as PORTAL_TOKEN. With
--check the token is sent to the API first and the role it resolves to is
printed on stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		clientID, _ := cmd.Flags().GetString("client-id")
		clientSecret, _ := cmd.Flags().GetString("client-secret")
		tokenURL, _ := cmd.Flags().GetString("token-url")
		issuerURL, _ := cmd.Flags().GetString("issuer-url")
		scopes, _ := cmd.Flags().GetStringSlice("scopes")
		check, _ := cmd.Flags().GetBool("check")

		if clientID == "" || clientSecret == "" {
			return fmt.Errorf("--client-id and --client-secret are required")
		}

		if tokenURL == "" {
			if issuerURL == "" {
				return fmt.Errorf("either --token-url or --issuer-url must be provided")
			}

			provider, err := oidc.NewProvider(ctx, issuerURL)
			if err != nil {
				return fmt.Errorf("failed to discover issuer: %v", err)
			}
			tokenURL = provider.Endpoint().TokenURL
		}

		config := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			Scopes:       scopes,
		}

		token, err := config.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %v", err)
		}

		if check {
			var me roles.Me
			client := newAPIClient(httpEndpoint, "", token.AccessToken)
			if err := client.getJSON(ctx, http.MethodGet, "/api/v0/me", nil, &me); err != nil {
				return fmt.Errorf("token was issued but the API rejected it: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "token resolves to %s (%s)\n", me.IdentityID, me.Role)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("client-id", os.Getenv("PORTAL_CLIENT_ID"), "OAuth2 client ID")
	tokenCmd.Flags().String("client-secret", os.Getenv("PORTAL_CLIENT_SECRET"), "OAuth2 client secret")
	tokenCmd.Flags().String("token-url", "", "Token endpoint")
	tokenCmd.Flags().String("issuer-url", os.Getenv("PORTAL_ISSUER_URL"), "Issuer URL used for discovery when --token-url is not set")
	tokenCmd.Flags().StringSlice("scopes", nil, "Scopes (comma-separated)")
	tokenCmd.Flags().Bool("check", false, "Call the API with the token and print the resolved role")

	rootCmd.AddCommand(tokenCmd)
}
