package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/mcitemid/pkg/items"
	"github.com/mcitemid/pkg/jar"
	"github.com/spf13/cobra"
)

const inspectSampleSize = 20

var inspectCmd = &cobra.Command{
	Use:   "inspect <version-dir>",
	Short: "Show how a client archive would be interpreted",
	Long: `Display what mcitemid finds in a Minecraft version folder without writing
the item table.

Shows:
  - The archive that was picked and its entry count
  - Candidate entries per category (item models, recipes, block models)
  - Whether en_us.json was found and how many names it provided
  - The first identifiers of the result

Examples:
  mcitemid inspect ~/.minecraft/versions/1.21.5`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	absDir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	archivePath, err := jar.FindArchive(appFs, absDir, settings.Extensions)
	if err != nil {
		return err
	}

	a, err := jar.Open(appFs, archivePath)
	if err != nil {
		return err
	}
	defer a.Close()

	extractor := items.NewExtractor(appFs, items.Options{
		Namespace: settings.Namespace,
		Logger:    newLogger(cmd.ErrOrStderr(), settings.Verbose),
	})
	records, summary := extractor.Scan(a)

	fmt.Fprintln(out, TitleStyle.Render("Archive: "+filepath.Base(archivePath)))
	fmt.Fprintf(out, "Entries: %d\n", summary.Entries)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Categories:")
	for _, c := range summary.Categories {
		fmt.Fprintf(out, "  %-14s %6d matched", c.Category, c.Matched)
		if c.Skipped > 0 {
			fmt.Fprint(out, WarningStyle.Render(fmt.Sprintf(", %d skipped", c.Skipped)))
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)

	langLine := fmt.Sprintf("Localization: %s", summary.Lang)
	if summary.Lang == items.LangLoaded {
		fmt.Fprintf(out, "%s (%d strings, %d names resolved)\n", langLine, summary.LangEntries, summary.Localized)
	} else {
		fmt.Fprintln(out, WarningStyle.Render(langLine+" (fallback names only)"))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Items: %d total\n", len(records))
	for i, r := range records {
		if i >= inspectSampleSize {
			fmt.Fprintln(out, MutedStyle.Render(fmt.Sprintf("  ... and %d more", len(records)-inspectSampleSize)))
			break
		}
		fmt.Fprintf(out, "  %s  %s\n", r.ID, MutedStyle.Render(r.Name))
	}

	return nil
}
