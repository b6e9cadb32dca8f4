package main

import (
	"fmt"

	"github.com/dhamidi/jdesc/internalname"
	"github.com/spf13/cobra"
)

func newNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name",
		Short: "Inspect internal class names",
		Long: `Inspect slash-separated internal class names such as java/util/Map$Entry.

Examples:
  jdesc name package 'java/util/Map$Entry'
  jdesc name outer 'java/util/Map$Entry'
  jdesc name display 'java/util/Map$Entry'`,
	}

	cmd.AddCommand(newNameStringCmd("package", "Print the package of a name", internalname.PackageName))
	cmd.AddCommand(newNameStringCmd("class", "Print the name without its package", internalname.ClassName))
	cmd.AddCommand(newNameStringCmd("simple", "Print the innermost class name", internalname.SimpleName))
	cmd.AddCommand(newNameStringCmd("root", "Print the outermost enclosing class", internalname.RootClass))
	cmd.AddCommand(newNameStringCmd("display", "Print the source form of a name", internalname.Display))
	cmd.AddCommand(newNameBoolCmd("valid", "Report whether a name is a valid class name", internalname.IsValid))
	cmd.AddCommand(newNameBoolCmd("anonymous", "Report whether a name is an anonymous class", internalname.IsAnonymous))
	cmd.AddCommand(newNameBoolCmd("inner", "Report whether a name is a nested class", internalname.IsInnerClass))
	cmd.AddCommand(newNameOuterCmd())

	return cmd
}

func newNameStringCmd(use, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				fmt.Fprintln(cmd.OutOrStdout(), fn(name))
			}
			return nil
		},
	}
}

func newNameBoolCmd(use, short string, fn func(string) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", name, fn(name))
			}
			return nil
		},
	}
}

func newNameOuterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outer <name>...",
		Short: "Print the directly enclosing class of a nested class",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				outer, err := internalname.OuterClass(name)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), outer)
			}
			return nil
		},
	}
}
