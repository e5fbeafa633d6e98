package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mcitemid/internal/config"
	"github.com/mcitemid/pkg/items"
	"github.com/mcitemid/pkg/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [version-dir]",
	Short: "Write the item ID table for a Minecraft version",
	Long: `Extract item/block IDs and English names from the client archive found in a
Minecraft version folder and write them as a text table.

If the version folder is not given, it is asked for interactively.

Examples:
  # Extract from a version folder
  mcitemid extract ~/.minecraft/versions/1.21.5

  # Write the table somewhere else
  mcitemid extract ~/.minecraft/versions/1.21.5 -o items.txt

  # Use a modded namespace
  mcitemid extract ./versions/mymod -n mymod`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("output", "o", "",
		"output file (default is minecraft_items.txt next to the executable)")
	extractCmd.Flags().StringP("namespace", "n", "",
		"identifier namespace (default is minecraft)")
	extractCmd.Flags().String("title", "",
		"header of the name column (default is \"English Name\")")
	extractCmd.Flags().StringSlice("ext", nil,
		"archive extensions to look for (default is .jar)")

	v.BindPFlag("output", extractCmd.Flags().Lookup("output"))
	v.BindPFlag("namespace", extractCmd.Flags().Lookup("namespace"))
	v.BindPFlag("column_title", extractCmd.Flags().Lookup("title"))
	v.BindPFlag("extensions", extractCmd.Flags().Lookup("ext"))

	// The root command runs extract when no subcommand is given.
	rootCmd.Flags().AddFlagSet(extractCmd.Flags())
}

func runExtract(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	versionDir, err := readVersionDir(cmd, args)
	if err != nil {
		return err
	}

	absDir, err := filepath.Abs(versionDir)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	if ok, _ := afero.DirExists(appFs, absDir); !ok {
		return fmt.Errorf("version folder does not exist: %s", versionDir)
	}

	outputPath, err := settings.OutputPath()
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), settings.Verbose)

	fmt.Fprintln(out, TitleStyle.Render("Extracting items from "+absDir))

	records, err := extractTable(appFs, absDir, outputPath, settings, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Found %d items.\n", len(records))
	fmt.Fprintln(out, SuccessStyle.Render("Done! Item table written to "+outputPath))
	return nil
}

// extractTable extracts the records of the archive in versionDir and writes
// them to outputPath. Nothing is written when extraction fails.
func extractTable(fs afero.Fs, versionDir, outputPath string, s *config.Settings, logger *log.Logger) ([]items.Record, error) {
	extractor := items.NewExtractor(fs, items.Options{
		Namespace:  s.Namespace,
		Extensions: s.Extensions,
		Logger:     logger,
	})

	records, err := extractor.Extract(versionDir)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	logger.Info("Writing table", "path", outputPath, "records", len(records))
	if err := table.WriteFile(fs, outputPath, records, s.ColumnTitle); err != nil {
		return nil, err
	}

	return records, nil
}

// readVersionDir returns the version folder argument, prompting for it on
// the command's input when absent.
func readVersionDir(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	fmt.Fprint(cmd.OutOrStdout(),
		"Enter the path to the Minecraft version folder (e.g. ~/.minecraft/versions/1.21.5): ")

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read version folder: %w", err)
	}

	dir := strings.Trim(strings.TrimSpace(line), `"'`)
	if dir == "" {
		return "", errors.New("no version folder given")
	}
	return dir, nil
}
