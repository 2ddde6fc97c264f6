package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default rule config",
	Long: `Print the built-in default rule configuration as YAML.

Save it to customize the board size, gravity pacing or scoring:
  blockfall config > ~/.blockfall/configs/blockfall.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
