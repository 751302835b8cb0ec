package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AJDColvin/Circuit-Analysis-Tool/internal/config"
	"github.com/AJDColvin/Circuit-Analysis-Tool/pkg/circuit"
	"github.com/AJDColvin/Circuit-Analysis-Tool/pkg/output"
	"github.com/AJDColvin/Circuit-Analysis-Tool/pkg/plot"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		plotFile string
		debug    bool
	)

	cmd := &cobra.Command{
		Use:          "cascade <input.net> <output.csv>",
		Short:        "Cascade circuit analyser using ABCD transmission matrices",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := config.Load()
			setupLogging(cfg, debug)
			return run(args[0], args[1], plotFile, cfg)
		},
	}
	cmd.Flags().StringVar(&plotFile, "plot", "", "also write a magnitude response plot (png/pdf/svg)")
	cmd.Flags().BoolVar(&debug, "debug", false, "verbose logging")
	return cmd
}

func setupLogging(cfg *config.Config, debug bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Logger.With().Str("run_id", uuid.NewString()).Logger()
}

func run(inputPath, outputPath, plotFile string, cfg *config.Config) error {
	// Truncate the destination first so a failed run still leaves a
	// file behind, matching the tool's long-standing behavior.
	placeholder, err := os.Create(outputPath)
	if err != nil {
		log.Error().Str("path", outputPath).Msg("cannot create output file")
		return output.ErrOutputWrite
	}
	placeholder.Close()

	ckt, err := circuit.LoadFile(inputPath)
	if err != nil {
		log.Error().Err(err).Str("path", inputPath).Msg("parsing netlist failed")
		return err
	}
	log.Info().
		Int("components", len(ckt.Components)).
		Int("frequencies", ckt.Sweep.Points).
		Int("outputs", len(ckt.Outputs)).
		Msg("netlist parsed")
	log.Debug().
		Float64("fstart", ckt.Sweep.Start).
		Float64("fend", ckt.Sweep.End).
		Float64("vt", ckt.Terms.SourceVoltage).
		Float64("rs", ckt.Terms.SourceResistance).
		Float64("rl", ckt.Terms.LoadResistance).
		Msg("terminations")

	result, err := ckt.Analyze()
	if err != nil {
		log.Error().Err(err).Msg("analysis failed")
		return err
	}
	log.Info().Int("rows", len(result.Rows)).Msg("sweep analysed")

	if err := output.WriteFile(outputPath, result); err != nil {
		log.Error().Err(err).Str("path", outputPath).Msg("writing result table failed")
		return err
	}
	log.Info().Str("path", outputPath).Msg("result table written")

	if plotFile != "" {
		opts := plot.Options{Width: cfg.PlotWidth, Height: cfg.PlotHeight}
		if err := plot.WriteResponse(plotFile, result, opts); err != nil {
			log.Error().Err(err).Str("path", plotFile).Msg("writing response plot failed")
			return err
		}
		log.Info().Str("path", plotFile).Msg("response plot written")
	}

	return nil
}
