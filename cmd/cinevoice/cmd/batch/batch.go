package batch

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"cinevoice/internal/app"
	"cinevoice/internal/app/assistant"
	"cinevoice/internal/app/batch"
	"cinevoice/internal/app/logging"
	"cinevoice/internal/app/metrics"
	"cinevoice/internal/app/speech"
	"cinevoice/internal/config"
)

var inputDir string
var providersPath string
var noProgress bool

func init() {
	Cmd.Flags().StringVarP(&inputDir, "input", "i", "", "directory of audio files to transcribe")
	Cmd.Flags().StringVarP(&providersPath, "providers", "c", "", "speech providers config file (yaml)")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")
	_ = Cmd.MarkFlagRequired("input")
}

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Transcribe a directory of audio files and record the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()

		providers := config.DefaultSpeechProviders()
		if providersPath != "" {
			loaded, err := config.LoadSpeechProviders(providersPath)
			if err != nil {
				return err
			}
			providers = loaded
		}

		logger, err := logging.NewLogger(cfg.Server.Environment == "development")
		if err != nil {
			return err
		}
		defer logger.Sync()

		m := metrics.New(prometheus.NewRegistry())
		transcriber, err := speech.NewTranscriber(providers, assistant.NewGeminiAssistant(cfg.Models, m, logger))
		if err != nil {
			return err
		}

		dao, err := app.ProvideExchangeDAO(cfg)
		if err != nil {
			return err
		}
		defer dao.Close()

		progress := batch.NewProgressManager(batch.ProgressConfig{Enabled: !noProgress})
		runner := batch.NewRunner(transcriber, dao, progress, logger)

		summary, err := runner.Run(cmd.Context(), inputDir)
		if err != nil {
			return err
		}

		fmt.Printf("processed %d file(s), %d failed\n", summary.Processed, summary.Failed)
		return nil
	},
}
