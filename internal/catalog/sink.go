package catalog

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"farmers-market/internal/config"

	"github.com/rs/zerolog"
)

// Sink receives a fully encoded document.
type Sink interface {
	// Write delivers the whole document in one call.
	Write(data []byte) error
}

// NewSink returns a sink for the output configuration. stdout is used when no
// output path is configured.
func NewSink(cfg config.OutputConfig, stdout io.Writer, logger zerolog.Logger) Sink {
	if cfg.ToStdout() {
		return NewWriterSink(stdout)
	}
	return NewFileSink(cfg.Path, cfg.Gzip, logger)
}

// writerSink writes to an existing stream such as standard output.
type writerSink struct {
	out io.Writer
}

// NewWriterSink creates a sink writing to out.
func NewWriterSink(out io.Writer) Sink {
	return &writerSink{out: out}
}

func (s *writerSink) Write(data []byte) error {
	if _, err := s.out.Write(data); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// fileSink writes the document to a file, optionally gzip-compressed.
type fileSink struct {
	path   string
	gzip   bool
	logger zerolog.Logger
}

// NewFileSink creates a file-based sink. The file is replaced atomically, so
// a failed write leaves any previous document in place.
func NewFileSink(path string, compress bool, logger zerolog.Logger) Sink {
	return &fileSink{
		path:   path,
		gzip:   compress,
		logger: logger.With().Str("component", "file-sink").Logger(),
	}
}

func (s *fileSink) Write(data []byte) error {
	s.logger.Info().
		Str("file", s.path).
		Bool("gzip", s.gzip).
		Msg("writing catalog file")

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to create catalog file")
		return fmt.Errorf("failed to create catalog file %s: %w", s.path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := s.writeTo(tmp, data); err != nil {
		tmp.Close()
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to write catalog file")
		return fmt.Errorf("failed to write catalog file %s: %w", s.path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close catalog file %s: %w", s.path, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to move catalog file into place")
		return fmt.Errorf("failed to move catalog file %s into place: %w", s.path, err)
	}

	s.logger.Info().
		Str("file", s.path).
		Int("bytes", len(data)).
		Msg("catalog file written successfully")

	return nil
}

func (s *fileSink) writeTo(w io.Writer, data []byte) error {
	if !s.gzip {
		_, err := w.Write(data)
		return err
	}

	gzipWriter := gzip.NewWriter(w)
	if _, err := gzipWriter.Write(data); err != nil {
		gzipWriter.Close()
		return fmt.Errorf("failed to compress document: %w", err)
	}
	return gzipWriter.Close()
}
