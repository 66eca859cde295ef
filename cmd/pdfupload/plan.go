package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/contractor-portal/internal/domain/upload"
)

func planCmd() *cobra.Command {
	var chunkSize int64

	cmd := &cobra.Command{
		Use:   "plan <file.pdf>",
		Short: "Show how a PDF would be split into parts, without uploading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if chunkSize <= 0 {
				cfg, err := loadConfig()
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				chunkSize = cfg.Upload.ChunkSize
			}

			f, size, err := openPDF(args[0])
			if err != nil {
				return err
			}
			_ = f.Close()

			parts, err := upload.PlanParts(size, chunkSize)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PART\tOFFSET\tSIZE")
			for _, p := range parts {
				fmt.Fprintf(tw, "%d\t%d\t%d\n", p.Number, p.Offset, p.Size)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Int64Var(&chunkSize, "chunk-size", 0, "part size in bytes (default: upload.chunk_size from config)")
	return cmd
}
