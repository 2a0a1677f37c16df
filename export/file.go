package export

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/lixenwraith/evo-body/parameter"
)

// WriteFile stores doc at path, zstd-compressed when path ends in .zst
func WriteFile(path string, doc Document) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if !compressed(path) {
		bw := bufio.NewWriterSize(f, parameter.ExportBufferSize)
		if err := doc.Encode(bw); err != nil {
			return err
		}
		return bw.Flush()
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("export: zstd: %w", err)
	}
	bw := bufio.NewWriterSize(enc, parameter.ExportBufferSize)
	if err := doc.Encode(bw); err != nil {
		enc.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return fmt.Errorf("export: %w", err)
	}
	return enc.Close()
}

// ReadFile loads and validates a document written by WriteFile
func ReadFile(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("export: %w", err)
	}

	if compressed(path) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return Document{}, fmt.Errorf("export: zstd: %w", err)
		}
		defer dec.Close()

		raw, err = dec.DecodeAll(raw, nil)
		if err != nil {
			return Document{}, fmt.Errorf("export: zstd: %w", err)
		}
	}
	return Decode(bytes.NewReader(raw))
}

func compressed(path string) bool {
	return strings.HasSuffix(path, parameter.ExportCompressedSuffix)
}
