package hookinput

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"hook-notifier/internal/domain/model"
	"hook-notifier/internal/domain/ports"
)

const (
	defaultEventName = "Unknown"
	defaultToolName  = "Unknown Tool"
)

// ErrNoInput is returned when there is no piped hook payload to read.
var ErrNoInput = errors.New("no hook input on stdin")

// Reader decodes a hook event from a JSON stream such as stdin.
type Reader struct {
	in io.Reader
}

var _ ports.EventSource = (*Reader)(nil)

// NewReader creates a Reader over in.
func NewReader(in io.Reader) *Reader {
	return &Reader{in: in}
}

// ReadEvent decodes exactly one JSON value from the stream, however large.
// Any shape mismatch or trailing data is an error so the caller can fall back
// to environment values.
func (r *Reader) ReadEvent(_ context.Context) (model.HookEvent, error) {
	if r == nil || r.in == nil || interactive(r.in) {
		return model.HookEvent{}, ErrNoInput
	}

	dec := json.NewDecoder(r.in)
	var value json.RawMessage
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return model.HookEvent{}, ErrNoInput
		}
		return model.HookEvent{}, fmt.Errorf("decode hook input: %w", err)
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return model.HookEvent{}, errors.New("decode hook input: unexpected data after JSON value")
	}
	return Decode(value)
}

// Decode parses one hook payload, applying defaults for missing names.
func Decode(data []byte) (model.HookEvent, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return model.HookEvent{}, ErrNoInput
	}
	if data[0] != '{' {
		return model.HookEvent{}, fmt.Errorf("decode hook input: expected JSON object")
	}

	var raw struct {
		EventName *string         `json:"hook_event_name"`
		ToolName  *string         `json:"tool_name"`
		ToolInput json.RawMessage `json:"tool_input"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.HookEvent{}, fmt.Errorf("decode hook input: %w", err)
	}

	event := model.HookEvent{
		EventName: defaultEventName,
		ToolName:  defaultToolName,
	}
	if raw.EventName != nil {
		event.EventName = *raw.EventName
	}
	if raw.ToolName != nil {
		event.ToolName = *raw.ToolName
	}

	if input := bytes.TrimSpace(raw.ToolInput); len(input) > 0 {
		if input[0] != '{' {
			return model.HookEvent{}, fmt.Errorf("decode tool_input: expected JSON object")
		}
		if err := json.Unmarshal(input, &event.ToolInput); err != nil {
			return model.HookEvent{}, fmt.Errorf("decode tool_input: %w", err)
		}
	}

	return event, nil
}

func interactive(in io.Reader) bool {
	file, ok := in.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
