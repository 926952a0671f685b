package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/fader"
)

var dumpFlags struct {
	config string
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective config as TOML",
	Long:  "Print the effective config, defaults and repairs applied, as TOML.\nWithout --config the built-in defaults are printed.",
	RunE:  runDump,
}

func init() {
	f := dumpCmd.Flags()
	f.StringVarP(&dumpFlags.config, "config", "c", "", "Config file (.toml, .yaml or .yml)")
}

func runDump(cmd *cobra.Command, _ []string) error {
	cfg := fader.DefaultConfig()
	cfg.Initialize()
	if dumpFlags.config != "" {
		var err error
		if cfg, err = fader.LoadFromFile(dumpFlags.config); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	return fader.WriteTOML(cmd.OutOrStdout(), cfg)
}
