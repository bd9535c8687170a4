// Command squaredaway serves and solves two-phase nonogram puzzles.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagDebug  bool
	flagEngine string
)

var rootCmd = &cobra.Command{
	Use:   "squaredaway",
	Short: "Two-phase nonogram puzzle toolkit",
	Long: `squaredaway generates and solves two-phase nonograms: picture
puzzles where every cell belongs to a shading phase, an erasing phase,
both, or neither.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagEngine, "engine", "sweep", "line engine: sweep|enum")
	rootCmd.AddCommand(serveCmd, solveCmd, generateCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the process logger; --debug lowers the level.
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if flagDebug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}
