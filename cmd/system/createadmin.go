package system

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nlonghi/fojas_backend/config"
	entusuario "github.com/nlonghi/fojas_backend/internal/repo/usuario"
	"github.com/nlonghi/fojas_backend/pkg/authorize"
	"github.com/nlonghi/fojas_backend/pkg/database"
	"github.com/nlonghi/fojas_backend/pkg/util/codes"
	"github.com/nlonghi/fojas_backend/pkg/util/password"
)

// NewCreateAdminCommand bootstraps the first administrator account.
// Every later account is provisioned through the API, which requires an
// administrator to exist already.
func NewCreateAdminCommand() *cobra.Command {
	var (
		nombre string
		email  string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account with a temporary password",
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.ToLower(strings.TrimSpace(email))
			if nombre == "" || email == "" {
				return fmt.Errorf("--nombre and --email are required")
			}

			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			exists, err := client.Usuario.Query().Where(entusuario.Email(email)).Exist(ctx)
			if err != nil {
				return fmt.Errorf("failed to check email: %w", err)
			}
			if exists {
				return fmt.Errorf("an account with email %s already exists", email)
			}

			temp, err := codes.GenerateTempPassword(cfg.Authentication.DefaultPasswordLength)
			if err != nil {
				return fmt.Errorf("failed to generate temporary password: %w", err)
			}
			hash, err := password.Hash(temp)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			u, err := client.Usuario.Create().
				SetNombre(nombre).
				SetEmail(email).
				SetRol(string(authorize.RoleAdministrador)).
				SetPasswordHash(hash).
				SetMustChangePassword(true).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			casbinDBDSN := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, casbinDBDSN)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}
			if err := authorize.AssignRole(ctx, auth, u.ID.String(), authorize.RoleAdministrador); err != nil {
				return fmt.Errorf("failed to assign role: %w", err)
			}

			fmt.Printf("Administrator created: %s <%s>\n", nombre, email)
			fmt.Printf("Temporary password: %s\n", temp)
			fmt.Println("The password must be changed at first login.")
			return nil
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "Full name of the administrator")
	cmd.Flags().StringVar(&email, "email", "", "Login email of the administrator")

	return cmd
}
