package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csfix/csfix/internal/adapters/outbound/engine"
	"github.com/csfix/csfix/internal/adapters/outbound/gitinfo"
	"github.com/csfix/csfix/internal/adapters/outbound/hclconfig"
	"github.com/csfix/csfix/internal/adapters/outbound/tui"
	"github.com/csfix/csfix/internal/application"
	"github.com/csfix/csfix/internal/domain"
)

func newFixCmd(cat *domain.Catalog) *cobra.Command {
	var (
		profile string
		dryRun  bool
		level   string
		fixers  string
	)

	cmd := &cobra.Command{
		Use:   "fix <path>",
		Short: "Fix coding standards in a file or directory",
		Long: "Fix coding standards in the given file or directory tree and report " +
			"which files changed, in processing order.\n\n" +
			"Choose fixers with --fixers (exact names, highest priority), --level " +
			"(a preset group), or a configuration profile via --config. Without " +
			"any of these, a " + hclconfig.FileName + " file directly under the " +
			"target directory supplies the configuration.\n\n" +
			"Fixers\n------\n" + tui.FormatFixerCatalog(cat) + "\n" +
			"Configs\n-------\n" + tui.FormatProfileCatalog(cat),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewFixService(cat, hclconfig.New(cat), engine.New(), gitinfo.New())

			report, err := svc.Fix(args[0], domain.FixOptions{
				Profile: profile,
				Fixers:  fixers,
				Level:   level,
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderFixReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "config", "", "Use a registered configuration profile")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report would-be changes without writing files")
	cmd.Flags().StringVar(&level, "level", "", "Fixer level preset (psr1, psr2, all)")
	cmd.Flags().StringVar(&fixers, "fixers", "", "Comma-separated fixer names (overrides --level)")

	return cmd
}
