package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/jdesc/descriptor"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var errInvalidDescriptors = errors.New("invalid descriptors found")

// checkLine is one non-blank, non-comment line of an input file.
type checkLine struct {
	file string
	line int
	text string
	err  error
}

func newCheckCmd() *cobra.Command {
	var jobs int
	var noColor bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate files with one descriptor per line",
		Long: `Validate every line of the given files as a descriptor.

Blank lines and lines starting with '#' are ignored. Use '-' to read stdin.
The command fails if any line is not a valid descriptor.

Examples:
  jdesc check descriptors.txt
  jdesc check --jobs 8 a.txt b.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

			var lines []checkLine
			for _, path := range args {
				read, err := readCheckLines(cmd, path)
				if err != nil {
					return err
				}
				lines = append(lines, read...)
			}
			log.Infof("checking %d descriptors from %d files", len(lines), len(args))

			g, ctx := errgroup.WithContext(cmd.Context())
			if jobs > 0 {
				g.SetLimit(jobs)
			}
			for i := range lines {
				i := i
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					_, lines[i].err = descriptor.Parse(lines[i].text)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			red := color.New(color.FgRed).SprintFunc()
			green := color.New(color.FgGreen).SprintFunc()
			invalid := 0
			for _, l := range lines {
				if l.err == nil {
					continue
				}
				invalid++
				fmt.Fprintf(out, "%s:%d: %s\n", l.file, l.line, red(l.err.Error()))
			}

			if invalid > 0 {
				fmt.Fprintf(out, "%d of %d descriptors invalid\n", invalid, len(lines))
				return errInvalidDescriptors
			}
			fmt.Fprintf(out, "%s\n", green(fmt.Sprintf("%d descriptors ok", len(lines))))
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "number of descriptors to parse concurrently")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

func readCheckLines(cmd *cobra.Command, path string) ([]checkLine, error) {
	in := cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		in = f
	}

	var lines []checkLine
	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, checkLine{file: path, line: n, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
