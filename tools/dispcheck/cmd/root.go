package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "dispcheck",
	Short: "Tools for checking Content-Disposition header values",
}

func Execute() error {
	return rootCmd.Execute()
}
