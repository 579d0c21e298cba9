package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/registry"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List autoplay strategies",
	Args:  cobra.NoArgs,
	Run:   runStrategies,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after file lookup and flag overrides, as YAML.
The output can be saved to ~/.term2048/config.yaml and edited.

Examples:
  term2048 config
  term2048 config --db ./scores.db > ~/.term2048/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runStrategies(_ *cobra.Command, _ []string) {
	strategies := registry.List()

	if len(strategies) == 0 {
		fmt.Println("No strategies registered.")
		return
	}

	fmt.Println("Available strategies:")
	fmt.Println()
	for _, s := range strategies {
		fmt.Printf("  %-12s  %s\n", s.Name, s.Description)
	}
	fmt.Println()
	fmt.Println("Use 'term2048 autoplay --strategy <name>' to watch one play.")
}

func runConfig(_ *cobra.Command, _ []string) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
