package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rahultadvi/chatflow"
	"github.com/rahultadvi/chatflow/internal/logging"
	"github.com/rahultadvi/chatflow/pkg/flow"
)

var validateCmd = &cobra.Command{
	Use:   "validate <definition-file>",
	Short: "Check an automation definition for consistency",
	Long:  `Builds the editable graph from a definition file and reports structural problems: duplicate ids, dangling edges, duplicate connections, and nodes no path reaches.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Automation is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	rec, err := chatflow.LoadRecord(path)
	if err != nil {
		return err
	}

	logger := logging.NewNop()
	g := flow.BuildGraph(rec, logger)

	if err := flow.ValidateGraph(g); err != nil {
		return err
	}

	for _, orphan := range flow.Unreachable(g) {
		fmt.Printf("warning: node %q is unreachable from start\n", orphan)
	}
	return nil
}
