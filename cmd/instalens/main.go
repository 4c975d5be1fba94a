package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/instalens/instalens/instaexport"
	"github.com/instalens/instalens/internal/config"
	"github.com/instalens/instalens/internal/flags"
	"github.com/instalens/instalens/internal/logging"
	"github.com/instalens/instalens/internal/output"
	"github.com/instalens/instalens/internal/stats"
)

var version = "0.1.0-dev"

var (
	cfgFile string
	quiet   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "instalens",
		Short: "Instalens - Statistics over Instagram HTML chat exports",
		Long: `Instalens parses the HTML files from Instagram's data download
(messages/inbox/<conversation>/message_N.html) into a normalized message
sequence and computes activity statistics: daily, hourly, weekly and
monthly volume, sender rankings, emoji frequency and reaction counts.

Everything runs locally in one pass; nothing is stored between runs.`,
		Version: version,
	}

	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.instalens.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the parse statistics summary on stderr")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(map[string]interface{}{
				"version": version,
				"go":      "1.23",
			})
		},
	}

	pathsCmd := &cobra.Command{
		Use:   "paths",
		Short: "Print Instalens application paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			return printJSON(map[string]interface{}{
				"app_dir":     cfg.AppDir,
				"config_path": cfg.ConfigPath,
			})
		},
	}

	analyzeFlags := &flags.AnalyzeFlags{}
	analyzeCmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Parse export files and print summary statistics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, analyzeFlags)
		},
	}
	flags.AddAnalyzeFlags(analyzeCmd, analyzeFlags)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".instalens")
	}

	viper.SetEnvPrefix("instalens")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && !quiet {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// resolvePolicy loads the policy file (if any) and applies explicit
// flag overrides on top.
func resolvePolicy(cmd *cobra.Command, f *flags.AnalyzeFlags) (config.Policy, error) {
	policy := config.DefaultPolicy()
	if f.PolicyFile != "" {
		loaded, err := config.LoadPolicy(f.PolicyFile)
		if err != nil {
			return policy, err
		}
		policy = loaded
	}

	if cmd.Flags().Changed("timezone") {
		policy.Timezone = f.Timezone
	}
	if cmd.Flags().Changed("file-order") {
		policy.FileOrder = f.FileOrder
	}
	if cmd.Flags().Changed("dedupe") {
		policy.Dedupe = f.Dedupe
	}
	if cmd.Flags().Changed("count-unsent") {
		policy.CountUnsent = f.CountUnsent
	}
	if cmd.Flags().Changed("count-media") {
		policy.CountMedia = f.CountMedia
	}
	return policy, nil
}

func runAnalyze(cmd *cobra.Command, paths []string, f *flags.AnalyzeFlags) error {
	log, err := logging.New(config.Load().Development)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	policy, err := resolvePolicy(cmd, f)
	if err != nil {
		return err
	}
	loc, err := policy.Location()
	if err != nil {
		return err
	}
	order, err := policy.Order()
	if err != nil {
		return err
	}

	parser := instaexport.NewParser(loc, order, log)

	var (
		batches  [][]instaexport.Message
		combined instaexport.ParseStats
		failed   []string
	)
	for i, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			log.Errorw("failed to open export file", "file", path, "error", err)
			combined.FilesFailed++
			failed = append(failed, path)
			continue
		}
		messages, fileStats, err := parser.ParseFile(path, file, i)
		file.Close()
		if err != nil {
			// File-level structural failure: this file contributes
			// nothing; the run continues with the rest.
			log.Errorw("could not parse export file", "file", path, "error", err)
			fmt.Fprintf(os.Stderr, "could not parse %s: %v\n", path, err)
			combined.FilesFailed++
			failed = append(failed, path)
			continue
		}
		combined.Add(fileStats)
		batches = append(batches, messages)
	}
	if len(failed) == len(paths) {
		return fmt.Errorf("no input file could be parsed (%d failed)", len(failed))
	}

	messages := instaexport.Merge(batches, order)
	if policy.Dedupe {
		var dropped int
		messages, dropped = instaexport.Dedupe(messages)
		combined.DuplicatesDropped = dropped
	}

	tables := stats.Aggregate(messages, stats.Options{
		CountUnsent: policy.CountUnsent,
		CountMedia:  policy.CountMedia,
	})

	writer, err := output.NewWriter(f.Format, f.Out)
	if err != nil {
		return err
	}
	report := &output.Report{
		Tables:     tables,
		ParseStats: combined,
		Messages:   messages,
		TopN:       f.Top,
	}
	if err := writer.WriteReport(report); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	// The skip report always reaches the user; for text output it is
	// already part of the report itself.
	if !quiet && f.Format != "text" && f.Format != "transcript" {
		output.WriteStats(os.Stderr, combined)
	}
	return nil
}

func printJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
