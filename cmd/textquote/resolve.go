package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsnanigans/textquote/pkg/textquote"
)

func newResolveCmd() *cobra.Command {
	var (
		file      string
		selector  string
		hint      int
		highlight bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Find a quote selector in a document",
		Long: `Find a quote selector in a document and print its byte range.

Examples:
  # Resolve a selector saved by "textquote extract"
  textquote resolve --file doc.txt --selector quote.json

  # Start searching near byte 120 and show the match in the text
  textquote resolve --file doc.txt --selector quote.json --hint 120 --highlight`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "-" && selector == "-" {
				return fmt.Errorf("document and selector cannot both be read from stdin")
			}

			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			doc, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			raw, err := readInput(cmd, selector)
			if err != nil {
				return err
			}
			sel, err := textquote.ParseSelector(raw)
			if err != nil {
				return err
			}

			var opts []textquote.ResolveOption
			if cmd.Flags().Changed("hint") {
				opts = append(opts, textquote.WithHint(hint))
			}

			resolver := textquote.NewResolver(append(cfg.ResolverOptions(), textquote.WithLogger(logger))...)
			text := string(doc)
			r, err := resolver.Resolve(text, sel, opts...)
			if err != nil {
				logger.Warn("quote could not be anchored", zap.String("exact", sel.Exact), zap.Error(err))
				return err
			}

			if highlight {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), textquote.Highlight(text, []textquote.Range{r}))
				return err
			}
			return writeJSON(cmd.OutOrStdout(), r)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "document file, - for stdin")
	cmd.Flags().StringVarP(&selector, "selector", "s", "-", "selector JSON file, - for stdin")
	cmd.Flags().IntVar(&hint, "hint", 0, "byte offset to start searching from")
	cmd.Flags().BoolVar(&highlight, "highlight", false, "print the document with the match highlighted")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
