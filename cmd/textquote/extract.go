package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsnanigans/textquote/pkg/textquote"
)

func newExtractCmd() *cobra.Command {
	var (
		file          string
		start, end    int
		contextLength int
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Print the quote selector for a byte range of a document",
		Long: `Print the quote selector for a byte range of a document.

Examples:
  # Quote bytes 4-9 with the configured context length
  textquote extract --file doc.txt --start 4 --end 9

  # Read the document from stdin with 8 bytes of context
  cat doc.txt | textquote extract --file - --start 4 --end 9 --context 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			doc, err := readInput(cmd, file)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("context") {
				contextLength = cfg.ContextLength
			}

			sel, err := textquote.Extract(string(doc), textquote.Range{Start: start, End: end}, contextLength)
			if err != nil {
				return err
			}
			logger.Debug("extracted quote", zap.Int("start", start), zap.Int("end", end), zap.Int("context", contextLength))
			return writeJSON(cmd.OutOrStdout(), sel)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "document file, - for stdin")
	cmd.Flags().IntVar(&start, "start", 0, "start byte offset (inclusive)")
	cmd.Flags().IntVar(&end, "end", 0, "end byte offset (exclusive)")
	cmd.Flags().IntVar(&contextLength, "context", textquote.DefaultContextLength, "bytes of prefix/suffix context")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
