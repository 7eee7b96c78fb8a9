package publisher

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reocities/cli/internal/client"
	"github.com/reocities/cli/internal/site"
	"github.com/reocities/cli/pkg/models"
)

type bulkCall struct {
	files     []client.BulkFile
	folder    string
	overwrite bool
}

// fakeAPI scripts one response (or error) per UploadBulk call.
type fakeAPI struct {
	calls   []bulkCall
	results []*models.BulkUploadResult
	errs    []error
}

func (f *fakeAPI) UploadBulk(_ context.Context, files []client.BulkFile, folder string, overwrite bool) (*models.BulkUploadResult, error) {
	i := len(f.calls)
	f.calls = append(f.calls, bulkCall{files: files, folder: folder, overwrite: overwrite})
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.results) {
		return f.results[i], nil
	}
	return nil, fmt.Errorf("unexpected call %d", i)
}

// allUploaded builds a response accepting every file in the batch.
func allUploaded(files []site.File) *models.BulkUploadResult {
	res := &models.BulkUploadResult{APIStatus: models.APIStatus{Success: true}}
	for _, f := range files {
		res.Uploaded = append(res.Uploaded, models.UploadedFile{Path: f.RemotePath})
	}
	return res
}

func makeFiles(n int) []site.File {
	files := make([]site.File, 0, n)
	for i := 0; i < n; i++ {
		files = append(files, site.File{
			LocalPath:  fmt.Sprintf("/site/file%02d.html", i),
			RemotePath: fmt.Sprintf("file%02d.html", i),
			Size:       64,
		})
	}
	return files
}

func TestPushBatches(t *testing.T) {
	files := makeFiles(23)
	api := &fakeAPI{results: []*models.BulkUploadResult{
		allUploaded(files[0:10]),
		allUploaded(files[10:20]),
		allUploaded(files[20:23]),
	}}

	res, err := New(api).Push(context.Background(), files, Options{Folder: "blog", Overwrite: true})
	require.NoError(t, err)
	assert.Equal(t, 23, res.Uploaded)
	assert.Equal(t, 0, res.Failed)

	require.Len(t, api.calls, 3)
	assert.Len(t, api.calls[0].files, 10)
	assert.Len(t, api.calls[1].files, 10)
	assert.Len(t, api.calls[2].files, 3)
	for _, call := range api.calls {
		assert.Equal(t, "blog", call.folder)
		assert.True(t, call.overwrite)
	}
	assert.Equal(t, "file00.html", api.calls[0].files[0].RemotePath)
	assert.Equal(t, "/site/file00.html", api.calls[0].files[0].LocalPath)
}

func TestPushCountsPerFileFailures(t *testing.T) {
	files := makeFiles(3)
	api := &fakeAPI{results: []*models.BulkUploadResult{{
		APIStatus: models.APIStatus{Success: true},
		Uploaded:  []models.UploadedFile{{Path: "file00.html"}, {Path: "file02.html"}},
		Failed:    []models.FailedFile{{Filename: "file01.html", Error: "file too large"}},
	}}}

	res, err := New(api).Push(context.Background(), files, Options{Overwrite: true})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Uploaded)
	assert.Equal(t, 1, res.Failed)
}

func TestPushContinuesPastFailedBatch(t *testing.T) {
	files := makeFiles(15)
	api := &fakeAPI{
		errs:    []error{errors.New("server unavailable"), nil},
		results: []*models.BulkUploadResult{nil, allUploaded(files[10:15])},
	}

	res, err := New(api).Push(context.Background(), files, Options{Overwrite: true})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Uploaded)
	assert.Equal(t, 10, res.Failed, "a rejected batch fails all of its files")
	assert.Len(t, api.calls, 2)
}

func TestPushDryRunSkipsAPI(t *testing.T) {
	files := makeFiles(5)
	api := &fakeAPI{}

	res, err := New(api).Push(context.Background(), files, Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Uploaded)
	assert.Equal(t, 0, res.Failed)
	assert.Empty(t, api.calls)
}

func TestPushNoFiles(t *testing.T) {
	api := &fakeAPI{}

	res, err := New(api).Push(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Uploaded)
	assert.Equal(t, 0, res.Failed)
	assert.Empty(t, api.calls)
}
