package zerg

import (
	"bufio"
	"os"
	"path/filepath"
)

var newline = []byte{'\n'}

// Sink is the byte destination an engine drains into. Implementations are
// owned by exactly one engine and are never called concurrently; the engine's
// file mutex serialises access.
type Sink interface {
	Write(p []byte) error
	WriteNewline() error
	Flush() error
	Close() error
}

// FileSink appends to a file through a user-space buffer.
type FileSink struct {
	path string
	file *os.File
	w    *bufio.Writer
}

// NewFileSink opens path in append mode, creating parent directories and the
// file as needed. bufSize <= 0 selects DefaultFileBufferSize.
func NewFileSink(path string, bufSize int) (*FileSink, error) {
	if bufSize <= 0 {
		bufSize = DefaultFileBufferSize
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmtErrorf("%w: create log directory '%s': %v", ErrSinkOpen, dir, err)
		}
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmtErrorf("%w: '%s': %v", ErrSinkOpen, path, err)
	}
	return &FileSink{
		path: path,
		file: file,
		w:    bufio.NewWriterSize(file, bufSize),
	}, nil
}

func (s *FileSink) Write(p []byte) error {
	_, err := s.w.Write(p)
	return err
}

func (s *FileSink) WriteNewline() error {
	return s.w.WriteByte('\n')
}

// Flush forces the user-space buffer to the OS.
func (s *FileSink) Flush() error {
	return s.w.Flush()
}

func (s *FileSink) Close() error {
	flushErr := s.w.Flush()
	closeErr := s.file.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// Size returns the current size of the backing file, used to seed the
// engine's written-byte count at construction.
func (s *FileSink) Size() int64 {
	info, err := s.file.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}

// Reopen truncates the file in place and resets the buffer. Rotation keeps
// the same path; history is not preserved.
func (s *FileSink) Reopen() error {
	_ = s.w.Flush()
	_ = s.file.Close()
	file, err := os.OpenFile(s.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmtErrorf("%w: reopen '%s': %v", ErrSinkOpen, s.path, err)
	}
	s.file = file
	s.w.Reset(file)
	return nil
}

// ConsoleSink writes straight to standard output, one system call per write,
// so there is no user-space buffer to flush.
type ConsoleSink struct {
	f *os.File
}

func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{f: os.Stdout}
}

func (s *ConsoleSink) Write(p []byte) error {
	_, err := s.f.Write(p)
	return err
}

func (s *ConsoleSink) WriteNewline() error {
	_, err := s.f.Write(newline)
	return err
}

func (s *ConsoleSink) Flush() error { return nil }

func (s *ConsoleSink) Close() error { return nil }
