package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"cinevoice/cmd/cinevoice/cmd/batch"
	"cinevoice/cmd/cinevoice/cmd/export"
	"cinevoice/cmd/cinevoice/cmd/serve"
	"cinevoice/cmd/cinevoice/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cinevoice",
	Short: "A voice movie-recommendation backend powered by Gemini",
	Long: `A voice movie-recommendation backend powered by Gemini.
- Run the HTTP API with 'serve' and post audio clips to /send_audio/
- Batch-transcribe a folder of audio files with 'batch'
- Export the exchange history to excel with 'export'`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(batch.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
