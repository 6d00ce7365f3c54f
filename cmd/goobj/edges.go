package main

import (
	"fmt"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/spf13/cobra"
)

type edgesOptions struct {
	count    int
	longest  bool
	shortest bool
}

func newEdgesCmd(opts *options) *cobra.Command {
	edgeOpts := &edgesOptions{}

	cmd := &cobra.Command{
		Use:   "edges [file]",
		Short: "List face edges of an OBJ file",
		Long:  "List face edges in model space, optionally sorted by length.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdges(cmd, opts, edgeOpts, args[0])
		},
	}

	cmd.Flags().IntVarP(&edgeOpts.count, "count", "n", 10, "Number of edges to display")
	cmd.Flags().BoolVarP(&edgeOpts.longest, "longest", "l", false, "Show longest edges")
	cmd.Flags().BoolVarP(&edgeOpts.shortest, "shortest", "s", false, "Show shortest edges")
	cmd.MarkFlagsMutuallyExclusive("longest", "shortest")

	return cmd
}

func runEdges(cmd *cobra.Command, opts *options, edgeOpts *edgesOptions, filename string) error {
	if edgeOpts.count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", edgeOpts.count)
	}

	session, err := opts.openSession(filename, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result := analysis.AnalyzeMesh(session.Mesh())

	var edges []analysis.EdgeInfo
	var title string
	switch {
	case edgeOpts.longest:
		edges = analysis.FindLongestEdges(result, edgeOpts.count)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case edgeOpts.shortest:
		edges = analysis.FindShortestEdges(result, edgeOpts.count)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	default:
		edges = result.AllEdges
		if len(edges) > edgeOpts.count {
			edges = edges[:edgeOpts.count]
		}
		title = fmt.Sprintf("First %d of %d Edges", len(edges), result.EdgeCount)
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")

	if len(edges) == 0 {
		fmt.Fprintln(out, "No edges found.")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-6s %-35s %-35s %-15s\n", "Index", "Face", "Start", "End", "Length")
	for i, edge := range edges {
		fmt.Fprintf(out, "%-6d %-6d %-35s %-35s %-15.6f\n",
			i+1,
			edge.FaceID+1,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length)
	}
	return nil
}
