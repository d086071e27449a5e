package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trygap/internal/config"
	"trygap/internal/doc"
	"trygap/internal/format"
)

func newDocCmd() *cobra.Command {
	var tryCatchSpacing bool
	cmd := &cobra.Command{
		Use:    "doc <file>",
		Short:  "Print the layout doc of a file",
		Args:   cobra.ExactArgs(1),
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			resolver := &config.Resolver{Override: func(c *config.Config) {
				if cmd.Flags().Changed("try-catch-spacing") {
					c.TryCatchSpacing = tryCatchSpacing
				}
			}}
			cfg, err := resolver.ForFile(path)
			if err != nil {
				return err
			}
			opts := cfg.FormatOptions()
			opts.Path = path
			d, err := format.Doc(cmd.Context(), src, opts)
			if err != nil {
				var perr *format.ParseError
				if errors.As(err, &perr) {
					fmt.Fprint(cmd.ErrOrStderr(), perr.Report())
					return silentError{msg: "doc: syntax errors"}
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), doc.Dump(d))
			return nil
		},
	}
	cmd.Flags().BoolVar(&tryCatchSpacing, "try-catch-spacing", false, "print the doc with the try/catch gap enabled")
	return cmd
}
