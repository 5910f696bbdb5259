package fileio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ZstdExt marks compressed files.
const ZstdExt = ".zst"

// Streams are the standard streams used for "-" paths.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
}

// IsStd reports whether path refers to a standard stream.
func IsStd(path string) bool {
	return path == "" || path == "-"
}

// Open opens path for reading.
func (s Streams) Open(path string) (io.ReadCloser, error) {
	if IsStd(path) {
		return io.NopCloser(s.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}

	if !strings.HasSuffix(path, ZstdExt) {
		return f, nil
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read zstd input %s: %w", path, err)
	}

	return &zstdReader{dec: dec, file: f}, nil
}

// Create opens path for writing, truncating an existing file.
func (s Streams) Create(path string) (io.WriteCloser, error) {
	if IsStd(path) {
		return nopWriteCloser{s.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output %s: %w", path, err)
	}

	if !strings.HasSuffix(path, ZstdExt) {
		return f, nil
	}

	enc, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write zstd output %s: %w", path, err)
	}

	return &zstdWriter{enc: enc, file: f}, nil
}

// ReadAll reads the whole input at path.
func (s Streams) ReadAll(path string) ([]byte, error) {
	r, err := s.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", displayName(path), err)
	}

	return data, nil
}

// WriteAll writes data to path, flushing and closing it.
func (s Streams) WriteAll(path string, data []byte) error {
	w, err := s.Create(path)
	if err != nil {
		return err
	}

	_, werr := w.Write(data)
	cerr := w.Close()

	if err := errors.Join(werr, cerr); err != nil {
		return fmt.Errorf("failed to write output %s: %w", displayName(path), err)
	}

	return nil
}

func displayName(path string) string {
	if IsStd(path) {
		return "<std>"
	}

	return path
}

type zstdReader struct {
	dec  *zstd.Decoder
	file *os.File
}

func (r *zstdReader) Read(p []byte) (int, error) {
	return r.dec.Read(p)
}

func (r *zstdReader) Close() error {
	r.dec.Close()
	return r.file.Close()
}

type zstdWriter struct {
	enc  *zstd.Encoder
	file *os.File
}

func (w *zstdWriter) Write(p []byte) (int, error) {
	return w.enc.Write(p)
}

// Close flushes the zstd frame before closing the file.
func (w *zstdWriter) Close() error {
	return errors.Join(w.enc.Close(), w.file.Close())
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
