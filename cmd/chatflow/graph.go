package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rahultadvi/chatflow"
	"github.com/rahultadvi/chatflow/internal/presentation/graph"
	"github.com/rahultadvi/chatflow/pkg/flow"
)

var graphCmd = &cobra.Command{
	Use:   "graph <definition-file>",
	Short: "Render an automation as a Mermaid flowchart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rec, err := chatflow.LoadRecord(args[0])
		if err != nil {
			fmt.Printf("Error loading definition: %v\n", err)
			os.Exit(1)
		}
		g := flow.BuildGraph(rec, nil)
		fmt.Print(graph.GenerateMermaid(g))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
