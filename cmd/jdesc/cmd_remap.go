package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/jdesc/config"
	"github.com/dhamidi/jdesc/descriptor"
	"github.com/spf13/cobra"
)

func newRemapCmd() *cobra.Command {
	var rulesPath string
	var packages []string
	var classes []string
	var patterns []string
	var display bool

	cmd := &cobra.Command{
		Use:   "remap <descriptor>...",
		Short: "Rewrite the class names inside descriptors",
		Long: `Rewrite every class reference inside the given descriptors.

Rules given on the command line apply after the rules loaded with --rules.

Examples:
  jdesc remap --package java/lang=lava/jang '(Ljava/lang/String;)V'
  jdesc remap --class com/acme/Widget=com/acme/Gadget 'Lcom/acme/Widget$Part;'
  jdesc remap --pattern 'org/**=shaded/' '[Lorg/lib/Util;'
  jdesc remap --rules relocate.toml '(Lorg/lib/Util;)V'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := buildRules(rulesPath, packages, classes, patterns)
			if err != nil {
				return err
			}
			if rules.Empty() {
				log.Warningf("no remap rules given, descriptors are printed unchanged")
			}

			mapper := rules.Mapper()
			out := cmd.OutOrStdout()
			for _, arg := range args {
				d, err := descriptor.Parse(arg)
				if err != nil {
					return fmt.Errorf("parse descriptor: %w", err)
				}
				remapped := descriptor.Remap(d, mapper)
				if display {
					fmt.Fprintln(out, remapped.Display())
				} else {
					fmt.Fprintln(out, remapped.String())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "TOML file with [[package]], [[class]] and [[pattern]] rules")
	cmd.Flags().StringArrayVar(&packages, "package", nil, "rename a package prefix, as from=to (repeatable)")
	cmd.Flags().StringArrayVar(&classes, "class", nil, "rename a class and its nested classes, as from=to (repeatable)")
	cmd.Flags().StringArrayVar(&patterns, "pattern", nil, "prefix names matching a glob, as glob=prefix (repeatable)")
	cmd.Flags().BoolVar(&display, "display", false, "print the source-like form instead of the descriptor")

	return cmd
}

func buildRules(path string, packages, classes, patterns []string) (*config.Rules, error) {
	rules := &config.Rules{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load rules: %w", err)
		}
		rules = loaded
		log.Infof("loaded %d package, %d class and %d pattern rules from %s",
			len(rules.Packages), len(rules.Classes), len(rules.Patterns), path)
	}

	for _, p := range packages {
		from, to, err := splitRule("package", p)
		if err != nil {
			return nil, err
		}
		if err := rules.AddPackage(from, to); err != nil {
			return nil, err
		}
	}
	for _, c := range classes {
		from, to, err := splitRule("class", c)
		if err != nil {
			return nil, err
		}
		if err := rules.AddClass(from, to); err != nil {
			return nil, err
		}
	}
	for _, p := range patterns {
		match, prefix, err := splitRule("pattern", p)
		if err != nil {
			return nil, err
		}
		if err := rules.AddPattern(match, prefix); err != nil {
			return nil, err
		}
	}
	return rules, nil
}

func splitRule(kind, rule string) (string, string, error) {
	from, to, ok := strings.Cut(rule, "=")
	if !ok {
		return "", "", fmt.Errorf("invalid --%s %q (expected from=to)", kind, rule)
	}
	return from, to, nil
}
