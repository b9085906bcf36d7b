package http

import (
	"context"
	"io"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/cavaliergopher/grab/v3"
	"github.com/jlaffaye/ftp"
	"github.com/mxk/go-flowrate/flowrate"
	"github.com/pkg/errors"
	"github.com/qlquery/qlquery/qlquery"
	"github.com/rs/zerolog/log"
)

// GrabDownloader downloads over HTTP(S) with grab and over FTP, optionally
// limiting download speed
type GrabDownloader struct {
	client    *grab.Client
	maxTries  int
	downLimit int64
	progress  qlquery.Progress
}

// Check interface
var (
	_ qlquery.Downloader = (*GrabDownloader)(nil)
)

// NewGrabDownloader creates new downloader, downLimit is in kbytes/sec
// (0 for unlimited)
func NewGrabDownloader(downLimit int64, maxTries int, progress qlquery.Progress) *GrabDownloader {
	if maxTries < 1 {
		maxTries = 1
	}

	client := grab.NewClient()
	client.UserAgent = "qlquery/" + qlquery.Version

	return &GrabDownloader{
		client:    client,
		maxTries:  maxTries,
		downLimit: downLimit * 1024,
		progress:  progress,
	}
}

// GetProgress returns Progress object
func (d *GrabDownloader) GetProgress() qlquery.Progress {
	return d.progress
}

// Download fetches url to destination, retrying on server side errors
func (d *GrabDownloader) Download(ctx context.Context, url string, destination string) error {
	const delayMax = 30 * time.Second
	delay := time.Second

	var err error
	for try := 1; ; try++ {
		err = d.download(ctx, url, destination)
		if err == nil || !retryableError(err) || try >= d.maxTries {
			break
		}

		log.Warn().Err(err).Str("url", url).Int("try", try).Msg("retrying download")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if delay > delayMax {
			delay = delayMax
		}
	}

	return err
}

func (d *GrabDownloader) download(ctx context.Context, rawURL string, destination string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return errors.Wrap(err, rawURL)
	}

	if d.progress != nil {
		d.progress.Printf("Downloading: %s\n", u.Redacted())
	}

	if strings.ToLower(u.Scheme) == "ftp" {
		return d.downloadFTP(ctx, u, destination)
	}

	req, err := grab.NewRequest(destination, rawURL)
	if err != nil {
		return errors.Wrap(err, u.Redacted())
	}
	req = req.WithContext(ctx)
	req.NoResume = true

	if d.downLimit > 0 {
		req.RateLimiter = &flowLimiter{
			monitor: flowrate.New(100*time.Millisecond, time.Second),
			rate:    d.downLimit,
		}
	}

	resp := d.client.Do(req)
	if err = resp.Err(); err != nil {
		var code grab.StatusCodeError
		if errors.As(err, &code) {
			return &Error{Code: int(code), URL: u.Redacted()}
		}
		return errors.Wrap(err, u.Redacted())
	}

	return nil
}

func (d *GrabDownloader) downloadFTP(ctx context.Context, u *url.URL, destination string) error {
	address := u.Host
	if u.Port() == "" {
		address = net.JoinHostPort(u.Hostname(), "21")
	}

	conn, err := ftp.Dial(address, ftp.DialWithContext(ctx), ftp.DialWithTimeout(30*time.Second))
	if err != nil {
		return errors.Wrap(err, u.Redacted())
	}
	defer func() {
		_ = conn.Quit()
	}()

	user, password := "anonymous", "anonymous"
	if u.User != nil {
		user = u.User.Username()
		if p, ok := u.User.Password(); ok {
			password = p
		}
	}

	if err = conn.Login(user, password); err != nil {
		return errors.Wrap(err, u.Redacted())
	}

	resp, err := conn.Retr(u.Path)
	if err != nil {
		return errors.Wrap(err, u.Redacted())
	}
	defer func() {
		_ = resp.Close()
	}()

	var r io.Reader = resp
	if d.downLimit > 0 {
		r = flowrate.NewReader(resp, d.downLimit)
	}

	f, err := os.Create(destination)
	if err != nil {
		return err
	}

	_, err = io.Copy(f, r)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return errors.Wrap(err, u.Redacted())
	}

	return nil
}

// flowLimiter adapts flowrate.Monitor to grab.RateLimiter
type flowLimiter struct {
	monitor *flowrate.Monitor
	rate    int64
}

func (l *flowLimiter) WaitN(ctx context.Context, n int) error {
	for n > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		allowed := l.monitor.Limit(n, l.rate, true)
		l.monitor.Update(allowed)
		n -= allowed
	}
	return nil
}

func retryableError(err error) bool {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return httpErr.Code >= 500
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
