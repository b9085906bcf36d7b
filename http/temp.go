package http

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/qlquery/qlquery/qlquery"
)

// DownloadTemp fetches url into new temporary directory and returns path to
// the file, which keeps base name of the url (dump format is detected by
// extension)
//
// cleanup removes temporary directory and should be called once file is loaded
func DownloadTemp(ctx context.Context, downloader qlquery.Downloader, location string) (filename string, cleanup func(), err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", nil, err
	}

	base := path.Base(u.Path)
	if base == "." || base == "/" {
		base = "dump"
	}

	tempdir, err := os.MkdirTemp(os.TempDir(), "qlquery")
	if err != nil {
		return "", nil, err
	}
	cleanup = func() {
		_ = os.RemoveAll(tempdir)
	}

	filename = filepath.Join(tempdir, base)

	if err = downloader.Download(ctx, location, filename); err != nil {
		cleanup()
		return "", nil, err
	}

	return filename, cleanup, nil
}
