package main

import (
	"fmt"

	"github.com/dhamidi/jdesc/descriptor"
	"github.com/dhamidi/jdesc/internalname"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

func newClassesCmd() *cobra.Command {
	var filter string
	var dotted bool

	cmd := &cobra.Command{
		Use:   "classes <descriptor>...",
		Short: "List the classes referenced by descriptors",
		Long: `Print every internal class name referenced by the given descriptors,
once, in order of first appearance.

Examples:
  jdesc classes '(Ljava/util/List;[Ljava/lang/String;)Ljava/util/Map;'
  jdesc classes --filter 'java/util/*' --dotted '(Ljava/util/List;)V'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var match glob.Glob
			if filter != "" {
				g, err := glob.Compile(filter, '/')
				if err != nil {
					return fmt.Errorf("invalid filter %q: %w", filter, err)
				}
				match = g
			}

			seen := make(map[string]bool)
			out := cmd.OutOrStdout()
			for _, arg := range args {
				d, err := descriptor.Parse(arg)
				if err != nil {
					return fmt.Errorf("parse descriptor: %w", err)
				}
				for _, name := range descriptor.ReferencedNames(d) {
					if seen[name] || (match != nil && !match.Match(name)) {
						continue
					}
					seen[name] = true
					if dotted {
						name = internalname.Display(name)
					}
					fmt.Fprintln(out, name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only list names matching this glob ('*' stops at '/', '**' does not)")
	cmd.Flags().BoolVar(&dotted, "dotted", false, "print names in source form")

	return cmd
}
