package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/batterycf/core/model"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default parameter set as a model section",
	RunE: func(cmd *cobra.Command, _ []string) error {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(map[string]model.Parameters{"model": model.DefaultParameters()}); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}
