// Package publisher uploads collected site files in bulk batches.
package publisher

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/reocities/cli/internal/client"
	"github.com/reocities/cli/internal/site"
	"github.com/reocities/cli/pkg/models"
	"github.com/reocities/cli/pkg/printer"
)

// BatchSize is how many files go into one bulk upload request.
const BatchSize = client.MaxBulkFiles

// API is the slice of the Reocities client the publisher needs.
type API interface {
	UploadBulk(ctx context.Context, files []client.BulkFile, folder string, overwrite bool) (*models.BulkUploadResult, error)
}

// Options control a push run.
type Options struct {
	// Folder is the remote prefix files are uploaded under.
	Folder string
	// Overwrite replaces remote files that already exist.
	Overwrite bool
	// DryRun reports what would be uploaded without calling the API.
	DryRun bool
	// ShowProgress renders a progress bar instead of per-file lines.
	ShowProgress bool
}

// Result tallies a push run.
type Result struct {
	Uploaded int
	Failed   int
}

// Publisher drives bulk uploads against the API.
type Publisher struct {
	api API
}

// New creates a publisher backed by the given API.
func New(api API) *Publisher {
	return &Publisher{api: api}
}

// Push uploads files in batches of BatchSize, continuing past failed
// batches. Per-file outcomes are printed as they arrive; the returned
// result holds the final tally.
func (p *Publisher) Push(ctx context.Context, files []site.File, opts Options) (*Result, error) {
	res := &Result{}
	if len(files) == 0 {
		return res, nil
	}

	if opts.DryRun {
		for _, f := range files {
			printer.PrintInfo(fmt.Sprintf("[DRY RUN] Would upload %s (%s)", f.RemotePath, printer.FormatSize(f.Size)))
		}
		return res, nil
	}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("Uploading"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("files"),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionFullWidth(),
		)
	}

	// Failure lines are deferred while the bar is drawing.
	var deferred []string
	for start := 0; start < len(files); start += BatchSize {
		end := min(start+BatchSize, len(files))
		batch := files[start:end]

		bulk := make([]client.BulkFile, 0, len(batch))
		for _, f := range batch {
			bulk = append(bulk, client.BulkFile{LocalPath: f.LocalPath, RemotePath: f.RemotePath})
		}

		out, err := p.api.UploadBulk(ctx, bulk, opts.Folder, opts.Overwrite)
		if err != nil {
			res.Failed += len(batch)
			msg := fmt.Sprintf("Error uploading batch: %v", err)
			if opts.ShowProgress {
				deferred = append(deferred, msg)
				_ = bar.Add(len(batch))
			} else {
				printer.PrintFailure(msg)
			}
			continue
		}

		for _, u := range out.Uploaded {
			res.Uploaded++
			if !opts.ShowProgress {
				printer.PrintSuccess(u.Path)
			}
		}
		for _, f := range out.Failed {
			res.Failed++
			msg := fmt.Sprintf("%s: %s", f.Filename, f.Reason())
			if opts.ShowProgress {
				deferred = append(deferred, msg)
			} else {
				printer.PrintFailure(msg)
			}
		}
		if opts.ShowProgress {
			_ = bar.Add(len(batch))
		}
	}

	if opts.ShowProgress {
		_ = bar.Finish()
		fmt.Println() // Add newline after progress bar
		for _, msg := range deferred {
			printer.PrintFailure(msg)
		}
	}

	return res, nil
}
