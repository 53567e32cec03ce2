package gemini

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

// Chunk is one incremental fragment of a streamed reply.
type Chunk struct {
	Text         string
	FinishReason string
}

// Stream decodes the SSE stream of the streaming endpoint variant. It is
// lazy, single-pass, and non-restartable. The upstream transport delivers
// arbitrarily-sized byte fragments that do not align with event boundaries,
// so frames are buffered until a complete `data: <json>\n\n` unit has been
// assembled. Fragments that fail to decode are skipped, not surfaced:
// malformed partial chunks are expected during incremental decode and must
// not abort the stream.
type Stream struct {
	body io.ReadCloser
	buf  bytes.Buffer
	read [4096]byte
	eof  bool
}

func newStream(body io.ReadCloser) *Stream {
	return &Stream{body: body}
}

// Next returns the next decoded fragment. It returns io.EOF after the last
// fragment; any other error means the upstream read failed mid-stream.
func (s *Stream) Next() (Chunk, error) {
	for {
		if event, ok := s.nextEvent(); ok {
			chunk, ok := decodeEvent(event)
			if !ok {
				continue
			}
			return chunk, nil
		}

		if s.eof {
			// The final event may arrive without a trailing delimiter.
			if remainder := strings.TrimSpace(s.buf.String()); remainder != "" {
				s.buf.Reset()
				if chunk, ok := decodeEvent(remainder); ok {
					return chunk, nil
				}
			}
			return Chunk{}, io.EOF
		}

		n, err := s.body.Read(s.read[:])
		if n > 0 {
			s.buf.Write(s.read[:n])
		}
		if err == io.EOF {
			s.eof = true
		} else if err != nil {
			return Chunk{}, err
		}
	}
}

// nextEvent pops one complete framing unit off the buffer, if present.
// Frames may be LF- or CRLF-delimited.
func (s *Stream) nextEvent() (string, bool) {
	data := s.buf.Bytes()
	idx, width := bytes.Index(data, []byte("\n\n")), 2
	if crlf := bytes.Index(data, []byte("\r\n\r\n")); crlf >= 0 && (idx < 0 || crlf < idx) {
		idx, width = crlf, 4
	}
	if idx < 0 {
		return "", false
	}
	event := string(data[:idx])
	s.buf.Next(idx + width)
	return event, true
}

// decodeEvent parses one SSE event into a chunk. Events without a data line
// or with undecodable JSON are dropped.
func decodeEvent(event string) (Chunk, bool) {
	var payload string
	for _, line := range strings.Split(event, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "data:") {
			payload = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			break
		}
	}
	if payload == "" {
		return Chunk{}, false
	}

	var resp GenerateContentResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return Chunk{}, false
	}
	if len(resp.Candidates) == 0 {
		return Chunk{}, false
	}

	cand := resp.Candidates[0]
	chunk := Chunk{FinishReason: cand.FinishReason}
	if cand.Content != nil && len(cand.Content.Parts) > 0 {
		chunk.Text = cand.Content.Parts[0].Text
	}
	if chunk.Text == "" && chunk.FinishReason == "" {
		return Chunk{}, false
	}
	return chunk, true
}

// Close releases the underlying response body. Safe to call more than once.
func (s *Stream) Close() error {
	return s.body.Close()
}
