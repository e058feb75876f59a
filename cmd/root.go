/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"os/exec"

	"github.com/phux/apiscan/app"

	"github.com/spf13/cobra"
)

var (
	targetURL  string
	wordlist   string
	outputDir  string
	timeout    int
	configFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "apiscan",
	Short:        "run sequential HTTP security probes against one API base URL",
	Long:         `run sequential HTTP security probes against one API base URL: CORS misconfiguration, allowed HTTP methods, sensitive keywords in the response body and optional wordlist endpoint discovery.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := app.NewLogger(os.Stderr, verbose)

		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}

		err = cfg.Validate()
		if err != nil {
			return err
		}

		err = app.CheckDependencies(exec.LookPath)
		if err != nil {
			return err
		}

		results, err := app.NewResultWriter(cfg.OutputDir)
		if err != nil {
			return err
		}

		scanner := app.NewScanner(cfg, app.NewExpander(), results, logger)

		return scanner.Run()
	},
}

// buildConfig merges the optional config file with the flag values; a flag
// set on the command line always wins over the file.
func buildConfig(cmd *cobra.Command) (app.Config, error) {
	cfg := app.NewConfig(targetURL)

	if configFile != "" {
		fileCfg, err := app.LoadConfigFromFile(configFile)
		if err != nil {
			return app.Config{}, err
		}

		fileCfg.TargetURL = targetURL
		cfg = fileCfg
	}

	if cmd.Flags().Changed("wordlist") || configFile == "" {
		cfg.WordlistPath = wordlist
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = outputDir
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = timeout
	}

	return cfg, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&targetURL, "url", "u", "", "[required] target base URL")
	rootCmd.MarkFlagRequired("url")
	rootCmd.Flags().StringVarP(&wordlist, "wordlist", "w", "", "[optional] wordlist file with one path segment per line")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", app.DefaultOutputDir, "[optional] output directory for scan artifacts")
	rootCmd.Flags().IntVarP(&timeout, "timeout", "t", app.DefaultTimeoutSeconds, "[optional] per-request timeout in seconds for method probing")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "[optional] YAML scan config file; flags override its values")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "[optional] enable debug logging")
}
