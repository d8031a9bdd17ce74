// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/communityhub/portal/internal/authorization"
	"github.com/communityhub/portal/internal/config"
	"github.com/communityhub/portal/internal/db"
	"github.com/communityhub/portal/internal/kratos"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
	"github.com/communityhub/portal/pkg/roles"
)

// cliActor is recorded in the audit log for changes made from the command line.
const cliActor = "cli"

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage role assignments directly in the database",
}

var rolesGrantCmd = &cobra.Command{
	Use:   "grant <identity-id|email> <role>",
	Short: "Replace the roles of an identity with a single role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := types.ParseRole(args[1])
		if err != nil {
			return err
		}

		env, err := openRoles(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		identityID := args[0]
		if strings.Contains(identityID, "@") {
			identityID, err = env.service.SetRoleByEmail(cmd.Context(), types.RoleSuperAdmin, cliActor, args[0], role)
		} else {
			err = env.service.SetRole(cmd.Context(), types.RoleSuperAdmin, cliActor, identityID, role)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", identityID, role)
		return nil
	},
}

var rolesRevokeCmd = &cobra.Command{
	Use:   "revoke <identity-id> <role>",
	Short: "Remove one role from an identity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := types.ParseRole(args[1])
		if err != nil {
			return err
		}

		env, err := openRoles(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		if err := env.storage.RemoveRole(cmd.Context(), args[0], role); err != nil {
			return err
		}
		env.logger.Security().AdminAction(cliActor, "revoke_role", args[0], "role", role)

		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", args[0], env.authz.ResolveRole(cmd.Context(), args[0]))
		return nil
	},
}

var rolesResolveCmd = &cobra.Command{
	Use:   "resolve <identity-id>",
	Short: "Print the assignments, effective role and landing route of an identity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openRoles(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		assignments, err := env.service.GetRoles(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		landing, _, complete := env.authz.Landing(cmd.Context(), args[0])

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"assignments":     assignments,
			"landing":         landing,
			"profileComplete": complete,
		})
	},
}

func init() {
	rolesCmd.PersistentFlags().String("dsn", os.Getenv("DSN"), "PostgreSQL DSN connection string")
	rolesCmd.PersistentFlags().String("kratos-admin-url", os.Getenv("KRATOS_ADMIN_URL"), "Kratos admin URL, needed to grant by email")

	rolesCmd.AddCommand(rolesGrantCmd, rolesRevokeCmd, rolesResolveCmd)
	rootCmd.AddCommand(rolesCmd)
}

type rolesEnv struct {
	storage *storage.Storage
	authz   *authorization.Authorizer
	service *roles.Service
	logger  logging.LoggerInterface
	close   func()
}

func openRoles(cmd *cobra.Command) (*rolesEnv, error) {
	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		return nil, fmt.Errorf("--dsn or the DSN environment variable is required")
	}
	kratosURL, _ := cmd.Flags().GetString("kratos-admin-url")

	logger := logging.NewLogger("info")
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor(serviceName, logger)

	specs := &config.EnvSpec{DBMaxConns: 2, DBMaxConnLifetime: time.Hour, DBMaxConnIdleTime: time.Minute}
	dbClient, err := db.NewDBClient(dbConfig(dsn, specs), tracer, monitor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %v", err)
	}

	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	authz := authorization.NewAuthorizer(s, tracer, monitor, logger)

	return &rolesEnv{
		storage: s,
		authz:   authz,
		service: roles.NewService(s, authz, kratos.NewClient(kratosURL, tracer, monitor, logger), tracer, monitor, logger),
		logger:  logger,
		close:   dbClient.Close,
	}, nil
}
