// Package replay captures per-tick engine entries as zstd-compressed JSONL
// so a session can be diffed against a rerun of the same seed and inputs.
package replay

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"dronespire.ai/internal/sim/engine"
)

// Recorder buffers entries in memory. The engine tick never touches the
// filesystem; encoding happens only when the caller asks for it.
type Recorder struct {
	entries []engine.TickLogEntry
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) WriteTick(e engine.TickLogEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *Recorder) Len() int {
	return len(r.entries)
}

func (r *Recorder) Entries() []engine.TickLogEntry {
	out := make([]engine.TickLogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Encode writes the buffered entries as zstd-compressed JSONL.
func (r *Recorder) Encode(w io.Writer) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(enc)
	for _, e := range r.entries {
		b, err := json.Marshal(e)
		if err != nil {
			enc.Close()
			return err
		}
		if _, err := bw.Write(b); err != nil {
			enc.Close()
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			enc.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// WriteFile encodes the buffered entries to a file.
func (r *Recorder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadAll decodes a stream produced by Encode.
func ReadAll(r io.Reader) ([]engine.TickLogEntry, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []engine.TickLogEntry
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var e engine.TickLogEntry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("replay entry %d: %w", len(out), err)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFile decodes a file produced by WriteFile.
func ReadFile(path string) ([]engine.TickLogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAll(f)
}
