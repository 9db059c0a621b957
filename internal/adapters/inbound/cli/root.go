package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/csfix/csfix/internal/adapters/outbound/catalog"
	"github.com/csfix/csfix/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd(cat *domain.Catalog) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "csfix",
		Short:         "Fix PHP coding standards violations",
		Long:          "csfix fixes a file or directory tree to follow a PHP coding standard, selected by level preset, explicit fixer names, or a configuration profile.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newFixCmd(cat))
	cmd.AddCommand(newListCmd(cat))
	cmd.AddCommand(newMCPCmd(cat))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns a fully wired root command for testing.
func NewRootCmdForTest() *cobra.Command {
	cat, err := catalog.Load()
	if err != nil {
		panic(err)
	}
	return newRootCmd(cat)
}

func Execute() error {
	cat, err := catalog.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "csfix:", err)
		return err
	}
	if err := newRootCmd(cat).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "csfix:", err)
		return err
	}
	return nil
}
