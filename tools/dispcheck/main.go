package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-disposition/tools/dispcheck/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
