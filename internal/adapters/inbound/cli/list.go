package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csfix/csfix/internal/adapters/outbound/tui"
	"github.com/csfix/csfix/internal/domain"
)

func newListCmd(cat *domain.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available fixers and configuration profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Fixers")
			fmt.Fprintln(out, "------")
			fmt.Fprint(out, tui.FormatFixerCatalog(cat))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Configs")
			fmt.Fprintln(out, "-------")
			fmt.Fprint(out, tui.FormatProfileCatalog(cat))
			return nil
		},
	}
}
