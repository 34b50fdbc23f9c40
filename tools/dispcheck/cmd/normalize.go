package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-disposition"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize value",
	Short: "Parses a header value and prints its canonical form",
	Args:  cobra.ExactArgs(1),
	Run:   RunNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func RunNormalize(cmd *cobra.Command, args []string) {
	cd, err := disposition.Parse(args[0])
	cobra.CheckErr(err)

	fmt.Println(cd.String())
}
