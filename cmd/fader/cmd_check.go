package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/phanxgames/fader"
)

var checkFlags struct {
	config string
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load a config and report every validation problem",
	RunE:  runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringVarP(&checkFlags.config, "config", "c", "fader.toml", "Config file (.toml, .yaml or .yml)")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := fader.LoadFromFile(checkFlags.config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s:\n%w", checkFlags.config, err)
	}

	out := cmd.OutOrStdout()
	elements := make([]string, 0, len(cfg.Elements))
	for e := range cfg.Elements {
		elements = append(elements, string(e))
	}
	sort.Strings(elements)
	fmt.Fprintf(out, "%s: ok (%d elements, %d hover groups)\n", checkFlags.config, len(elements), len(cfg.HoverGroups))
	for _, name := range elements {
		ec := cfg.Elements[fader.Element(name)]
		fmt.Fprintf(out, "  %-16s addons=%d rules=%d", name, len(ec.Addons), len(ec.Rules))
		if ec.Disabled {
			fmt.Fprint(out, " disabled")
		}
		fmt.Fprintln(out)
	}
	return nil
}
