package backend

import (
	"bytes"
	"slices"
)

// minRecordLen is the status pair, the separating space and a terminator.
const minRecordLen = 4

// StatusParser decodes `git status --porcelain -z` output that arrives in
// arbitrary chunks. Bytes that do not yet form a complete record are kept
// until a later Feed supplies the rest.
//
// A StatusParser is not safe for concurrent use; chunks must be fed in the
// order they were produced.
type StatusParser struct {
	buf     []byte
	off     int // first undecoded byte in buf
	entries []StatusEntry
}

func NewStatusParser() *StatusParser {
	return &StatusParser{}
}

// Feed appends chunk to the pending input and decodes every record that is
// now complete.
func (p *StatusParser) Feed(chunk []byte) {
	if len(chunk) == 0 {
		return
	}
	p.compact()
	p.buf = append(p.buf, chunk...)
	for p.off < len(p.buf) {
		n := p.decode(p.buf[p.off:])
		if n == 0 {
			break
		}
		p.off += n
	}
}

// Write feeds b to the parser. It never fails, so the parser can be used as
// the stdout of an exec.Cmd or the destination of io.Copy.
func (p *StatusParser) Write(b []byte) (int, error) {
	p.Feed(b)
	return len(b), nil
}

// Entries returns the records decoded so far, in stream order.
func (p *StatusParser) Entries() []StatusEntry {
	return slices.Clone(p.entries)
}

// Pending reports how many buffered bytes have not been decoded yet.
func (p *StatusParser) Pending() int {
	return len(p.buf) - p.off
}

// Close checks that the stream ended on a record boundary. It returns a
// *TruncatedError when a partial record is still buffered.
func (p *StatusParser) Close() error {
	rest := bytes.TrimLeft(p.buf[p.off:], "\x00\r\n")
	if len(rest) == 0 {
		return nil
	}
	return &TruncatedError{Leftover: bytes.Clone(rest)}
}

// decode consumes at most one record from the front of data and returns the
// number of bytes used, or 0 when more input is needed.
func (p *StatusParser) decode(data []byte) int {
	if gap := leadingGap(data); gap > 0 {
		return gap
	}
	// A record needs two status bytes and a space before its path; anything
	// else is dropped through its terminator.
	head := data[:min(len(data), 3)]
	if i := bytes.IndexByte(head, 0); i >= 0 {
		return i + 1
	}
	if len(head) == 3 && head[2] != ' ' {
		end := bytes.IndexByte(data, 0)
		if end < 0 {
			return 0
		}
		return end + 1
	}
	if len(data) < minRecordLen {
		return 0
	}
	entry := StatusEntry{IndexState: data[0], WorktreeState: data[1]}
	first, n, ok := nextField(data, 3)
	if !ok {
		return 0
	}
	if entry.IndexState == 'R' {
		second, m, ok := nextField(data, n)
		if !ok {
			return 0
		}
		entry.RenamedFrom = first
		entry.Path = second
		n = m
	} else {
		entry.Path = first
	}
	if entry.Path != "" {
		p.entries = append(p.entries, entry)
	}
	return n
}

// nextField returns the NUL-terminated field starting at data[start] and the
// offset just past its terminator.
func nextField(data []byte, start int) (string, int, bool) {
	if start > len(data) {
		return "", 0, false
	}
	end := bytes.IndexByte(data[start:], 0)
	if end < 0 {
		return "", 0, false
	}
	return string(data[start : start+end]), start + end + 1, true
}

// leadingGap counts stray terminators and line breaks in front of a record.
func leadingGap(data []byte) int {
	n := 0
	for n < len(data) {
		switch data[n] {
		case 0, '\n', '\r':
			n++
		default:
			return n
		}
	}
	return n
}

// compact drops decoded bytes once they make up at least half of the buffer.
func (p *StatusParser) compact() {
	if p.off == 0 {
		return
	}
	if p.off == len(p.buf) {
		p.buf = p.buf[:0]
		p.off = 0
		return
	}
	if p.off < len(p.buf)-p.off {
		return
	}
	n := copy(p.buf, p.buf[p.off:])
	p.buf = p.buf[:n]
	p.off = 0
}
