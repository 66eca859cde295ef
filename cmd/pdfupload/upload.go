package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/contractor-portal/internal/adapters/clients/backend"
	"github.com/jsamuelsen11/contractor-portal/internal/adapters/clients/objectstore"
	"github.com/jsamuelsen11/contractor-portal/internal/app/uploader"
	"github.com/jsamuelsen11/contractor-portal/internal/domain/upload"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/httpclient"
	"github.com/jsamuelsen11/contractor-portal/internal/platform/logging"
)

func uploadCmd() *cobra.Command {
	var (
		signatureID string
		token       string
		fileName    string
	)

	cmd := &cobra.Command{
		Use:   "upload <file.pdf>",
		Short: "Upload a signed PDF for a signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			f, size, err := openPDF(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			if fileName == "" {
				fileName = filepath.Base(args[0])
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if token != "" {
				ctx = httpclient.WithAuthorization(ctx, bearer(token))
			}

			logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
			backendClient := httpclient.New(&cfg.Backend, "backend-api", nil, logger)
			storeClient := httpclient.New(&cfg.ObjectStore, "object-store", nil, logger)

			u := uploader.New(
				backend.NewSignatureClient(backendClient, logger),
				objectstore.NewPartStore(storeClient, logger),
				uploader.PolicyFromConfig(&cfg.Upload),
				nil,
				logger,
			)

			result, err := u.Upload(ctx, upload.Request{
				SignatureID: signatureID,
				FileName:    fileName,
				ContentType: upload.ContentTypePDF,
				Body:        f,
				Size:        size,
			}, &progressPrinter{w: cmd.ErrOrStderr(), total: size})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Location)
			return nil
		},
	}

	cmd.Flags().StringVar(&signatureID, "signature-id", "", "signature the PDF belongs to")
	cmd.Flags().StringVar(&token, "token", os.Getenv("PORTAL_TOKEN"), "bearer token for the backend (default $PORTAL_TOKEN)")
	cmd.Flags().StringVar(&fileName, "file-name", "", "file name to record (default: base name of the file)")
	_ = cmd.MarkFlagRequired("signature-id")
	return cmd
}

// openPDF opens path and checks that its content is a PDF.
func openPDF(path string) (*os.File, int64, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("detecting file type: %w", err)
	}
	if !mt.Is(upload.ContentTypePDF) {
		return nil, 0, fmt.Errorf("%s is %s, not a PDF", path, mt.String())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

// bearer adds the Bearer scheme unless the token already carries one.
func bearer(token string) string {
	if strings.Contains(strings.TrimSpace(token), " ") {
		return token
	}
	return "Bearer " + token
}

// progressPrinter reports upload progress on one line per event.
type progressPrinter struct {
	w     io.Writer
	total int64
	sent  int64
	parts int
}

func (p *progressPrinter) Initiated(session upload.Session, totalParts int) {
	p.parts = totalParts
	fmt.Fprintf(p.w, "initiated upload %s (%d parts)\n", session.UploadID, totalParts)
}

func (p *progressPrinter) PartUploaded(part upload.Part) {
	p.sent += part.Size
	fmt.Fprintf(p.w, "part %d/%d done, %d%%\n", part.Number, p.parts, p.sent*100/p.total)
}

func (p *progressPrinter) Completing() {
	fmt.Fprintln(p.w, "completing upload")
}

var _ uploader.Observer = (*progressPrinter)(nil)
