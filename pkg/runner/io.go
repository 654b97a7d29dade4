package runner

import (
	"context"
	"io"
	"strings"
)

type inputResult struct {
	text string
	err  error
}

// lineReader reads one line per request on a background goroutine so that a
// blocked read can be abandoned when the context is cancelled.
// It never reads past the line it returns; the rest of the stream stays with the caller.
type lineReader struct {
	reader  io.ByteReader
	pending chan inputResult
}

func newLineReader(r io.Reader) *lineReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReader{r: r}
	}
	return &lineReader{reader: br}
}

// ReadLine returns the next line without its "\n" or "\r\n" terminator.
// Other whitespace is preserved. A final line without terminator still counts.
// A read abandoned by ctx is handed to the next call.
func (l *lineReader) ReadLine(ctx context.Context) (string, error) {
	if l.pending == nil {
		ch := make(chan inputResult, 1)
		l.pending = ch
		go func() {
			ch <- readLine(l.reader)
		}()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-l.pending:
		l.pending = nil
		if res.err != nil {
			return "", res.err
		}
		return trimNewline(res.text), nil
	}
}

func readLine(r io.ByteReader) inputResult {
	var sb strings.Builder
	for {
		c, err := r.ReadByte()
		if err != nil {
			if sb.Len() > 0 && err == io.EOF {
				return inputResult{text: sb.String()}
			}
			return inputResult{err: err}
		}
		sb.WriteByte(c)
		if c == '\n' {
			return inputResult{text: sb.String()}
		}
	}
}

// byteReader reads a plain io.Reader one byte at a time.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	for {
		n, err := b.r.Read(b.buf[:])
		if n == 1 {
			return b.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
