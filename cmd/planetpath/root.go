package main

import (
	"errors"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/planetpath/config"
)

// app carries state shared by every subcommand.
type app struct {
	verbose bool
	envFile string
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "planetpath",
		Short: "Find high-scoring routes between the poles of a toroidal planet",
		Long: `planetpath loads a planet from a file of {(x,y);biome;quality} records,
wires its toroidal grid and searches the highest-scoring path from the
north pole (0,maxY) to the south pole (0,minY) within days*3 visits.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadEnvFile(a.envFile); err != nil {
				return err
			}
			a.log = newLogger(cmd.ErrOrStderr(), a.verbose)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file read before configuration; missing files are ignored")

	root.AddCommand(newSearchCmd(a), newInspectCmd(a))

	return root
}

// loadEnvFile exports the variables of a dotenv file without overriding
// variables already set in the environment.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// newLogger writes JSON at info level, or colored console output at debug
// level when verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	if verbose {
		level = zapcore.DebugLevel
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

// loadProfile reads the optional YAML profile and applies environment
// overrides.
func loadProfile(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}
