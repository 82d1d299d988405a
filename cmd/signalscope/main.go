// Command signalscope opens the signal connection inspector on a tree
// fixture, or prints a headless scan summary.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rovelight/signalscope"
)

var (
	flagConfig  string
	flagRoot    string
	flagVerbose bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "signalscope",
		Short: "Visualize signal connections in a scene-graph tree",
		Long: "signalscope scans a tree of objects, discovers signal connections\n" +
			"between them, and shows the result as an interactive node-link diagram.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "TOML config file")
	root.PersistentFlags().StringVarP(&flagRoot, "root", "r", "", "tree path to scan from (overrides config)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug summary logging")
	root.AddCommand(newViewCmd(), newScanCmd())
	return root
}

// loadSetup resolves the config and tree fixture shared by both commands.
func loadSetup(treePath string) (signalscope.Config, *signalscope.BasicNode, error) {
	cfg := signalscope.DefaultConfig()
	if flagConfig != "" {
		var err error
		cfg, err = signalscope.LoadConfig(flagConfig)
		if err != nil {
			return signalscope.Config{}, nil, err
		}
	}
	if flagRoot != "" {
		cfg.ScanRoot = flagRoot
	}
	if flagVerbose {
		cfg.DebugSummary = true
	}
	tree, err := signalscope.LoadTreeFile(treePath)
	if err != nil {
		return signalscope.Config{}, nil, err
	}
	return cfg, tree, nil
}

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <tree.toml>",
		Short: "Open the inspector window on a tree fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, tree, err := loadSetup(args[0])
			if err != nil {
				return err
			}
			ins, err := signalscope.New(tree, cfg)
			if err != nil {
				return err
			}
			return ins.Run()
		},
	}
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <tree.toml>",
		Short: "Scan a tree fixture and print the connection graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, tree, err := loadSetup(args[0])
			if err != nil {
				return err
			}
			logger := log.New(os.Stderr)
			if cfg.DebugSummary {
				logger.SetLevel(log.DebugLevel)
			}

			g := signalscope.ScanPath(tree, cfg.ScanRoot)
			printGraph(g)

			logger.Debug("scan", "cards", len(g.Cards), "edges", len(g.Edges), "omitted", g.Omitted)
			return nil
		},
	}
}

// printGraph writes the deduplicated card/signal table to stdout.
func printGraph(g *signalscope.Graph) {
	name := color.New(color.Bold)
	typ := color.New(color.Faint)
	out := color.New(color.FgGreen)
	in := color.New(color.FgCyan)

	for i := range g.Cards {
		card := &g.Cards[i]
		name.Printf("%s", card.Path)
		typ.Printf("  (%s)\n", card.Type)
		for _, sig := range card.Emitted {
			out.Printf("  » %s\n", sig)
		}
		for _, sig := range card.Received {
			in.Printf("  « %s\n", sig)
		}
	}

	fmt.Printf("\n%d cards, %d edges", len(g.Cards), len(g.Edges))
	if g.Omitted > 0 {
		fmt.Printf(", %d connections omitted (receiver outside the tree)", g.Omitted)
	}
	fmt.Println()
}
