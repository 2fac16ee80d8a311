package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and list ignored keys",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, w := range cfg.Warnings {
			if _, err := fmt.Fprintf(out, "warning: %s\n", w); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintf(out, "configuration valid: %d periods from %d to %d\n",
			cfg.Model.Lifetime+1, cfg.Model.StartTime, cfg.Model.EndTime())
		return err
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
