package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DownSYnDdev/QuantLabEngine/pkg/model"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List account config documents",
	Long:  `List the discovered account configuration documents with their key fields`,
	RunE:  listConfigs,
}

func listConfigs(cmd *cobra.Command, args []string) error {
	batch, err := resolveBatch()
	if err != nil {
		return err
	}

	// Create tabwriter for formatted output
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "FILE\tID\tVARIANT\tBASE CAPITAL\tCHALLENGES")
	_, _ = fmt.Fprintln(w, "----\t--\t-------\t------------\t----------")

	for _, path := range batch.Files {
		name := filepath.Base(path)

		cfg, err := model.Load(path)
		if err != nil {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, "-", "-", "-", "unreadable")
			continue
		}

		variant, capital := "-", "-"
		if cfg.Variant != nil {
			variant = *cfg.Variant
		}
		if cfg.BaseCapital != nil {
			capital = fmt.Sprintf("%v", *cfg.BaseCapital)
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			name,
			cfg.Name(),
			variant,
			capital,
			len(cfg.ChallengeDefinitions),
		)
	}

	return w.Flush()
}
