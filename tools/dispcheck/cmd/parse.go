package cmd

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/zostay/go-disposition"
	"github.com/zostay/go-disposition/datetime"
	"github.com/zostay/go-disposition/param"
)

var parseCmd = &cobra.Command{
	Use:   "parse value",
	Short: "Parses a header value and shows its parts",
	Args:  cobra.ExactArgs(1),
	Run:   RunParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func RunParse(cmd *cobra.Command, args []string) {
	cd, err := disposition.Parse(args[0])
	cobra.CheckErr(err)

	fmt.Printf("type              = %s\n", cd.Type())

	p := cd.Parameters()
	if f, found := p.Filename(); found {
		fmt.Printf("filename          = %s\n", f)
	}
	if t, found := p.CreationDate(); found {
		fmt.Printf("creation-date     = %s\n", datetime.FormatString(t))
	}
	if t, found := p.ModificationDate(); found {
		fmt.Printf("modification-date = %s\n", datetime.FormatString(t))
	}
	if t, found := p.ReadDate(); found {
		fmt.Printf("read-date         = %s\n", datetime.FormatString(t))
	}
	if s, found := p.Size(); found {
		fmt.Printf("size              = %s (%s)\n", s, humanize.Bytes(uint64(s.Int64())))
	}
	if n, found := p.FormName(); found {
		fmt.Printf("name              = %s\n", n)
	}

	ext := p.Extensions()
	names := make([]string, 0, len(ext))
	for n := range ext {
		names = append(names, n.String())
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("%-17s = %s\n", n, p.Extension(param.Name(n)))
	}
}
