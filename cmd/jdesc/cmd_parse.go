package main

import (
	"fmt"

	"github.com/dhamidi/jdesc/descriptor"
	"github.com/dhamidi/jdesc/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var member string

	cmd := &cobra.Command{
		Use:   "parse <descriptor>...",
		Short: "Parse descriptors and print their structure",
		Long: `Parse each descriptor and print its kind, canonical form, source-like
display and operand stack sizes.

Examples:
  jdesc parse '(ILjava/lang/String;)V'
  jdesc parse --format json '[[I'
  jdesc parse --name main '([Ljava/lang/String;)V'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			for _, arg := range args {
				d, err := descriptor.Parse(arg)
				if err != nil {
					return fmt.Errorf("parse descriptor: %w", err)
				}
				log.Debugf("parsed %s as %s", arg, format.Kind(d))

				if err := enc.Encode(format.NewReport(d, member)); err != nil {
					return fmt.Errorf("encode %s: %w", outputFormat, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json, yaml)")
	cmd.Flags().StringVarP(&member, "name", "n", "", "render the display form as a declaration of this member")

	return cmd
}
