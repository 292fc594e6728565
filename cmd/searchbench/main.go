// Command searchbench runs one named scenario x shape x algorithm
// combination under the Go benchmark runner and reports per-iteration
// latency and scan throughput. The full matrix is also reachable the
// usual way via `go test -bench . ./harness`.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bytelab/searchbench/buffer"
	"github.com/bytelab/searchbench/harness"
	"github.com/bytelab/searchbench/internal/logging"
)

func main() {
	logging.Init("searchbench")

	root := &cobra.Command{
		Use:           "searchbench",
		Short:         "Throughput measurement for byte-sequence search over heterogeneous buffer layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(), newRunCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "searchbench:", err)
		os.Exit(1)
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scenarios, buffer shapes and algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "scenarios:")
			for _, s := range harness.Scenarios() {
				fmt.Fprintf(out, "  %s\n", s)
			}
			fmt.Fprintln(out, "shapes:")
			for _, s := range buffer.Shapes() {
				fmt.Fprintf(out, "  %s\n", s)
			}
			fmt.Fprintln(out, "algorithms:")
			for _, a := range harness.Algorithms() {
				fmt.Fprintf(out, "  %s\n", a)
			}
		},
	}
}
