package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"datarange/config"
)

func main() {
	cmd := newRootCmd()

	if err := cmd.Execute(); err != nil {
		slog.Error("Failed", "err", err)
		os.Exit(1)
	}
}

type cli struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	cmd := &cobra.Command{
		Use:               "rangectl",
		Short:             "rangectl: evaluate operations on closed numeric ranges",
		Long:              "Ranges are written as Range[a,b], [a,b] or a,b. Use - for an absent range.",
		PersistentPreRunE: c.setupConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	flags := cmd.PersistentFlags()
	flags.String("config-file", config.File(config.CLIConfigName), "Path to config file")
	flags.BoolP("verbose", "v", false, "verbose output (includes debug)")

	cmd.AddCommand(
		c.lengthCmd(),
		c.centralCmd(),
		c.containsCmd(),
		c.intersectsCmd(),
		c.constrainCmd(),
		c.shiftCmd(),
		c.expandCmd(),
		c.includeCmd(),
		c.combineCmd(),
		c.scaleCmd(),
		c.extentCmd(),
	)

	// positional bounds may be negative, so flags must come before them
	for _, sub := range cmd.Commands() {
		sub.Flags().SetInterspersed(false)
	}

	return cmd
}

// Reads the config fields from flags or a file and sets up logging
func (c *cli) setupConfig(cmd *cobra.Command, args []string) error {
	var err error

	if err = c.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	c.v.SetConfigFile(c.v.GetString("config-file"))

	if err = c.v.ReadInConfig(); err != nil {
		// allow non-existent config file
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return err
		}
	}

	setupLogger(c.v.GetBool("verbose"))
	slog.Debug("Config loaded", "file", c.v.ConfigFileUsed())

	return nil
}

func setupLogger(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	logW := os.Stderr

	slog.SetDefault(slog.New(tint.NewHandler(logW, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.TimeOnly,
		NoColor:    !isatty.IsTerminal(logW.Fd()),
	})))
}
