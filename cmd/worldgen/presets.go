package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-world/internal/entities"
	"github.com/KirkDiggler/rpg-world/internal/repositories/presets"
)

var presetsCmd = &cobra.Command{
	Use:   "presets [type]",
	Short: "List the location presets in the catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo, err := loadPresets(cfg.Catalog)
	if err != nil {
		return err
	}

	types := repo.Types()
	if len(args) == 1 {
		t, err := entities.ParsePresetType(args[0])
		if err != nil {
			return err
		}
		types = []entities.PresetType{t}
	}

	out := cmd.OutOrStdout()
	for _, t := range types {
		list, err := repo.ListByType(ctx, &presets.ListByTypeInput{Type: t})
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s\n", t)
		for _, p := range list.Presets {
			fmt.Fprintf(out, "  %-18s %-18s", p.ID, p.Name)
			if p.BlobSize > 0 {
				fmt.Fprintf(out, " blob=%d", p.BlobSize)
			}
			if len(p.Blocked) > 0 {
				abbrevs := make([]string, len(p.Blocked))
				for i, d := range p.Blocked {
					abbrevs[i] = d.Abbreviation()
				}
				fmt.Fprintf(out, " blocked=%s", strings.Join(abbrevs, ""))
			}
			fmt.Fprintln(out)
		}
	}
	return nil
}
