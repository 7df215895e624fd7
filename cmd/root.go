package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Andyrulz/clinicmanagement-sub000/cmd/http"
	systemcmd "github.com/Andyrulz/clinicmanagement-sub000/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "clinicd",
	Short: "Multi-tenant clinic scheduling and visit management backend.",
	Long: `clinicd runs the clinic management API: doctor availability patterns,
materialized appointment slots, and conflict-free visit booking for many
clinics behind one deployment.`,
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
