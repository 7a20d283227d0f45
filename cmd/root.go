package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/nlonghi/fojas_backend/cmd/http"
	systemcmd "github.com/nlonghi/fojas_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "fojas",
	Short: "Backend for the hospital surgical records system.",
	Long: `Fojas is the backend for a hospital surgical records system.
It manages surgical record sheets (fojas quirúrgicas), the patients they
reference, and the staff accounts that access them, with role-based access
for chief doctors, doctors, nurses and administrators.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
