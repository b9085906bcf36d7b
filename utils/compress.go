package utils

import (
	"bufio"
	"compress/bzip2"
	"fmt"
	"io"
	"strings"

	"github.com/h2non/filetype"
	"github.com/kjk/lzma"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	xz "github.com/smira/go-xz"
)

// List of extensions + corresponding compression support
var compressionMethods = []struct {
	extension string
	// file type as detected by magic bytes, empty if there are no magic bytes
	kind         string
	uncompressor func(io.Reader) (io.ReadCloser, error)
	compressor   func(io.Writer) (io.WriteCloser, error)
}{
	{
		extension:    ".gz",
		kind:         "gz",
		uncompressor: func(r io.Reader) (io.ReadCloser, error) { return pgzip.NewReader(r) },
		compressor:   func(w io.Writer) (io.WriteCloser, error) { return pgzip.NewWriter(w), nil },
	},
	{
		extension:    ".bz2",
		kind:         "bz2",
		uncompressor: func(r io.Reader) (io.ReadCloser, error) { return io.NopCloser(bzip2.NewReader(r)), nil },
	},
	{
		extension:    ".xz",
		kind:         "xz",
		uncompressor: func(r io.Reader) (io.ReadCloser, error) { return xz.NewReader(r) },
	},
	{
		extension: ".zst",
		kind:      "zst",
		uncompressor: func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			return d.IOReadCloser(), nil
		},
		compressor: func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) },
	},
	{
		extension:    ".lzma",
		uncompressor: func(r io.Reader) (io.ReadCloser, error) { return lzma.NewReader(r), nil },
		compressor:   func(w io.Writer) (io.WriteCloser, error) { return lzma.NewWriter(w), nil },
	},
}

// CompressionExtension returns compression extension of the file (like ".gz"),
// or empty string if name doesn't end with one
func CompressionExtension(name string) string {
	for _, method := range compressionMethods {
		if strings.HasSuffix(name, method.extension) {
			return method.extension
		}
	}
	return ""
}

// UncompressReader detects compression of the stream by magic bytes, falling
// back to extension of the name, and returns uncompressed stream
//
// Closing result doesn't close r.
func UncompressReader(name string, r io.Reader) (io.ReadCloser, error) {
	buffered := bufio.NewReader(r)
	head, _ := buffered.Peek(262)

	detected := filetype.Unknown.Extension
	if kind, err := filetype.Match(head); err == nil {
		detected = kind.Extension
	}

	for _, method := range compressionMethods {
		if (method.kind != "" && method.kind == detected) || (detected == filetype.Unknown.Extension && strings.HasSuffix(name, method.extension)) {
			uncompressed, err := method.uncompressor(buffered)
			if err != nil {
				return nil, fmt.Errorf("unable to uncompress %s (%s): %s", name, method.extension, err)
			}
			return uncompressed, nil
		}
	}

	return io.NopCloser(buffered), nil
}

// CompressWriter wraps w with compressor picked by extension of name,
// Close has to be called to flush compressed data
//
// Closing result doesn't close w.
func CompressWriter(name string, w io.Writer) (io.WriteCloser, error) {
	ext := CompressionExtension(name)
	if ext == "" {
		return nopWriteCloser{w}, nil
	}

	for _, method := range compressionMethods {
		if method.extension != ext {
			continue
		}
		if method.compressor == nil {
			return nil, fmt.Errorf("compression %s is not supported for writing", ext)
		}
		return method.compressor(w)
	}

	panic("unreachable")
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
