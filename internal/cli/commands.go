package cli

import (
	"fmt"
	"io"

	"github.com/specialistvlad/pantrygraph/internal/app"
	"github.com/specialistvlad/pantrygraph/internal/graph"
	"github.com/specialistvlad/pantrygraph/internal/property"
	"github.com/specialistvlad/pantrygraph/internal/taxonomy"
	"github.com/spf13/cobra"
)

// build constructs the graph for one command invocation. Logs go to the
// command's error stream.
func (o *options) build(cmd *cobra.Command) (*app.Result, error) {
	cfg, err := o.appConfig()
	if err != nil {
		return nil, err
	}
	a := app.NewApp(cmd.ErrOrStderr(), cfg, o.sources)
	return a.Build(cmd.Context())
}

func (o *options) graph(cmd *cobra.Command) (*graph.Graph, error) {
	res, err := o.build(cmd)
	if err != nil {
		return nil, err
	}
	return res.Graph, nil
}

// resolve finds the node a user-supplied term refers to.
func resolve(g *graph.Graph, term string) (*taxonomy.Node, error) {
	n, ok := g.PickOne(term, nil)
	if !ok {
		return nil, &ExitError{Code: exitFailure, Message: fmt.Sprintf("no node matches %q", term)}
	}
	return n, nil
}

func printNodes(w io.Writer, nodes []*taxonomy.Node) {
	for _, n := range nodes {
		fmt.Fprintln(w, n.Name())
	}
}

func newBuildCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the graph and report construction warnings",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := opts.build(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "graph %s: %d nodes, %d warnings\n", res.Graph.ID(), res.Graph.Len(), len(res.Warnings))
			for _, w := range res.Warnings {
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}
}

func newPickCommand(opts *options) *cobra.Command {
	var props []string
	cmd := &cobra.Command{
		Use:   "pick QUERY",
		Short: "Resolve a term to a single node",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilter(props)
			if err != nil {
				return err
			}
			g, err := opts.graph(cmd)
			if err != nil {
				return err
			}
			n, ok := g.PickOne(args[0], filter)
			if !ok {
				return &ExitError{Code: exitFailure, Message: fmt.Sprintf("no node matches %q", args[0])}
			}
			fmt.Fprintln(cmd.OutOrStdout(), n.Name())
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&props, "prop", "p", nil, "Property the result must carry; repeatable.")
	return cmd
}

func newSearchCommand(opts *options) *cobra.Command {
	var (
		props []string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "List nodes whose name or alias contains QUERY",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilter(props)
			if err != nil {
				return err
			}
			g, err := opts.graph(cmd)
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			printNodes(cmd.OutOrStdout(), g.Search(query, filter, limit))
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&props, "prop", "p", nil, "Property every result must carry; repeatable.")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of results. 0 is unlimited.")
	return cmd
}

func newSubsCommand(opts *options) *cobra.Command {
	var props []string
	cmd := &cobra.Command{
		Use:   "subs NAME",
		Short: "List substitutes for a node, nearest group first",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilter(props)
			if err != nil {
				return err
			}
			g, err := opts.graph(cmd)
			if err != nil {
				return err
			}
			n, err := resolve(g, args[0])
			if err != nil {
				return err
			}
			printNodes(cmd.OutOrStdout(), g.Substitutes(n, filter))
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&props, "prop", "p", nil, "Property every substitute must carry; repeatable.")
	return cmd
}

func newPropsCommand(opts *options) *cobra.Command {
	var declared bool
	cmd := &cobra.Command{
		Use:   "props NAME",
		Short: "Print the effective properties of a node",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.graph(cmd)
			if err != nil {
				return err
			}
			n, err := resolve(g, args[0])
			if err != nil {
				return err
			}
			mode := taxonomy.Inherited
			if declared {
				mode = taxonomy.Declared
			}
			for _, p := range g.EffectiveProperties(n, mode) {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&declared, "declared", false, "Only print the node's own claims.")
	return cmd
}

func newHasCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "has NAME PROPERTY",
		Short: "Report whether a node carries a property",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := property.Parse(args[1])
			if err != nil {
				return usageError(err)
			}
			g, err := opts.graph(cmd)
			if err != nil {
				return err
			}
			n, err := resolve(g, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), g.HasProperty(n, p))
			return nil
		},
	}
	// Flags stop at NAME so a negative PROPERTY such as -meat is positional.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newLineageCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lineage NAME",
		Short: "List the ancestors of a node, nearest first",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.graph(cmd)
			if err != nil {
				return err
			}
			n, err := resolve(g, args[0])
			if err != nil {
				return err
			}
			printNodes(cmd.OutOrStdout(), g.Lineage(n))
			return nil
		},
	}
}

func newCommonCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "common NAME OTHER",
		Short: "Print the nearest ancestor two nodes share",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.graph(cmd)
			if err != nil {
				return err
			}
			a, err := resolve(g, args[0])
			if err != nil {
				return err
			}
			b, err := resolve(g, args[1])
			if err != nil {
				return err
			}
			shared, ok := g.SharedAncestor(a, b)
			if !ok {
				return &ExitError{Code: exitFailure, Message: fmt.Sprintf("%s and %s share no ancestor", a.Name(), b.Name())}
			}
			fmt.Fprintln(cmd.OutOrStdout(), shared.Name())
			return nil
		},
	}
}

func newOriginCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "origin NAME PROPERTY",
		Short: "Print the nearest node, NAME included, that claims a property",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := property.Parse(args[1])
			if err != nil {
				return usageError(err)
			}
			g, err := opts.graph(cmd)
			if err != nil {
				return err
			}
			n, err := resolve(g, args[0])
			if err != nil {
				return err
			}
			origin, ok := g.FirstAncestorWith(n, p)
			if !ok {
				return &ExitError{Code: exitFailure, Message: fmt.Sprintf("no ancestor of %s claims %s", n.Name(), p)}
			}
			fmt.Fprintln(cmd.OutOrStdout(), origin.Name())
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newMembersCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "members NAME",
		Short: "List every node below a node",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.graph(cmd)
			if err != nil {
				return err
			}
			n, err := resolve(g, args[0])
			if err != nil {
				return err
			}
			printNodes(cmd.OutOrStdout(), g.Members(n))
			return nil
		},
	}
}
