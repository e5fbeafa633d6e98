package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mcitemid/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool

	// appFs is the filesystem every command reads from and writes to.
	appFs afero.Fs = afero.NewOsFs()

	v        = viper.New()
	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "mcitemid [version-dir]",
	Short: "Extract Minecraft item IDs and English names",
	Long: `mcitemid reads a Minecraft client archive (<version>.jar) and writes a table
of item/block identifiers and their English names to minecraft_items.txt.

Identifiers are derived from the archive listing:
  - assets/minecraft/models/item/*.json
  - data/minecraft/recipes/*.json (data/minecraft/recipe/ on 1.21+)
  - assets/minecraft/models/block/*.json

Names come from assets/minecraft/lang/en_us.json when present, otherwise
they are derived from the identifier ("diamond_sword" -> "Diamond Sword").

Running mcitemid without a subcommand is the same as "mcitemid extract".`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: loadSettings,
	RunE:              runExtract,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

// Execute runs the root command. Failures are reported on stderr and the
// process ends normally.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error:"), err)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $XDG_CONFIG_HOME/mcitemid/mcitemid.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print verbose progress information")

	v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func loadSettings(cmd *cobra.Command, args []string) error {
	s, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	settings = s
	return nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
