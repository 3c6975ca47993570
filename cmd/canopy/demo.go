package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/internal/logging"
	"github.com/aretw0/canopy/internal/tui"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/traverse"
	"github.com/aretw0/canopy/pkg/visit"
)

const demoIntro = `# canopy demo

A toy decision tree exercised end to end:

1. **Composite**: build a fixed tree of decision and leaf nodes
2. **Iterator**: walk it in pre-order
3. **Visitor**: compute depth and leaf count without touching the node types
4. **State**: grow and prune a second tree through the TreeBuilder
`

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the fixed demonstration sequence",
	Long:  `Builds the sample tree, iterates it in pre-order applying the built-in visitors, then walks a TreeBuilder through its splitting, stopping and pruning states.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		noColor, _ := cmd.Flags().GetBool("no-color")

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		if !noColor {
			tui.PrintBanner()
		}
		if intro, err := tui.RenderMarkdown(demoIntro); err == nil {
			fmt.Print(intro)
		}

		return runDemo(logger, !noColor)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().Bool("no-color", false, "Disable ANSI colors and the banner")

	// Make 'demo' the default when no subcommand is given.
	rootCmd.RunE = demoCmd.RunE
	rootCmd.Flags().AddFlagSet(demoCmd.Flags())
}

// narrationHooks turns tree and builder events into demo narration on stdout.
func narrationHooks() *domain.TreeHooks {
	return &domain.TreeHooks{
		OnAttach: func(e *domain.ChildEvent) {
			fmt.Printf("[composite] attached %s %q to %q\n", e.ChildKind, e.Child, e.Parent)
		},
		OnDetach: func(e *domain.ChildEvent) {
			fmt.Printf("[composite] detached %s %q from %q\n", e.ChildKind, e.Child, e.Parent)
		},
		OnStateChange: func(e *domain.StateEvent) {
			fmt.Printf("[builder] %s: state set to %s\n", e.Builder, e.State)
		},
		OnStateHandle: func(e *domain.StateEvent) {
			fmt.Printf("[builder] %s: %s handled %q: %s\n", e.Builder, e.State, e.Target, e.Detail)
		},
	}
}

func runDemo(logger *slog.Logger, color bool) error {
	hooks := narrationHooks()

	// 1. Composite: build the fixed sample tree.
	fmt.Println("====== Building sample tree ======")
	root, err := canopy.SampleTree(hooks)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Print(tui.RenderTree(root, color))

	// 2 & 3. Iterator + Visitors: walk in pre-order, aggregate per node.
	fmt.Println()
	fmt.Println("====== Pre-order iteration with visitors ======")
	it := traverse.NewPreOrder(root)
	for it.HasNext() {
		node, _ := it.Next()
		depth, err := visit.Depth(node)
		if err != nil {
			return err
		}
		leaves, err := visit.Leaves(node)
		if err != nil {
			return err
		}
		fmt.Printf(" - %s %q: depth=%d leaves=%d\n", node.Kind(), node.Name(), depth, leaves)
	}

	totalDepth, err := visit.Depth(root)
	if err != nil {
		return err
	}
	totalLeaves, err := visit.Leaves(root)
	if err != nil {
		return err
	}
	fmt.Printf("Tree depth: %d, leaf count: %d\n", totalDepth, totalLeaves)

	// 4. State: grow and prune a second tree through the TreeBuilder.
	fmt.Println()
	fmt.Println("====== TreeBuilder state walkthrough ======")
	builder, err := canopy.NewBuilder("DemoBuilder",
		canopy.WithLogger(logger),
		canopy.WithHooks(hooks),
	)
	if err != nil {
		return err
	}

	// Split the root: two children appear.
	if err := builder.Handle(); err != nil {
		return err
	}

	// Cap the first child with a terminal leaf.
	builder.SetTarget(builder.Root().Children()[0])
	if err := builder.SetState(canopy.StateStopping); err != nil {
		return err
	}
	if err := builder.Handle(); err != nil {
		return err
	}

	// Prune the root's last child.
	builder.SetTarget(nil)
	if err := builder.SetState(canopy.StatePruning); err != nil {
		return err
	}
	if err := builder.Handle(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(tui.RenderTree(builder.Root(), color))
	fmt.Println()
	fmt.Println("====== Demo finished ======")
	return nil
}
