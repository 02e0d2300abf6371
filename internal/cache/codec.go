package cache

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec converts a record list to and from the string stored under a cache key.
type Codec[T any] interface {
	Encode(records []T) (string, error)
	Decode(value string) ([]T, error)
}

const (
	CodecJSON    = "json"
	CodecMsgpack = "msgpack"
)

// NewCodec returns the structured codec registered under name.
func NewCodec[T any](name string) (Codec[T], error) {
	switch name {
	case "", CodecJSON:
		return JSONCodec[T]{}, nil
	case CodecMsgpack:
		return MsgpackCodec[T]{}, nil
	default:
		return nil, fmt.Errorf("unknown cache codec %q", name)
	}
}

type JSONCodec[T any] struct{}

func (JSONCodec[T]) Encode(records []T) (string, error) {
	if records == nil {
		records = []T{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (JSONCodec[T]) Decode(value string) ([]T, error) {
	var records []T
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, fmt.Errorf("cached value is not a list")
	}
	return records, nil
}

type MsgpackCodec[T any] struct{}

func (MsgpackCodec[T]) Encode(records []T) (string, error) {
	if records == nil {
		records = []T{}
	}
	b, err := msgpack.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (MsgpackCodec[T]) Decode(value string) ([]T, error) {
	var records []T
	if err := msgpack.Unmarshal([]byte(value), &records); err != nil {
		return nil, err
	}
	if records == nil {
		return nil, fmt.Errorf("cached value is not a list")
	}
	return records, nil
}

// Separators of the flat delimited encoding.
const (
	FieldSeparator = "::"
	ItemSeparator  = "||"
)

// DelimitedCodec reads and writes the flat "f1::f2::f3||f1::f2::f3" encoding.
// Field values must not contain either separator; Encode rejects records that do.
// Empty item segments are skipped on Decode.
type DelimitedCodec[T any] struct {
	NumFields int
	Fields    func(T) []string
	Parse     func(fields []string) (T, error)
}

func (c DelimitedCodec[T]) Encode(records []T) (string, error) {
	items := make([]string, 0, len(records))
	for _, r := range records {
		fields := c.Fields(r)
		if len(fields) != c.NumFields {
			return "", fmt.Errorf("record has %d fields, want %d", len(fields), c.NumFields)
		}
		for _, f := range fields {
			if strings.Contains(f, FieldSeparator) || strings.Contains(f, ItemSeparator) {
				return "", fmt.Errorf("field value %q contains a separator", f)
			}
		}
		items = append(items, strings.Join(fields, FieldSeparator))
	}
	return strings.Join(items, ItemSeparator), nil
}

func (c DelimitedCodec[T]) Decode(value string) ([]T, error) {
	records := []T{}
	for _, item := range strings.Split(value, ItemSeparator) {
		if item == "" {
			continue
		}
		fields := strings.SplitN(item, FieldSeparator, c.NumFields)
		if len(fields) != c.NumFields {
			return nil, fmt.Errorf("malformed item %q", item)
		}
		r, err := c.Parse(fields)
		if err != nil {
			return nil, fmt.Errorf("malformed item %q: %w", item, err)
		}
		records = append(records, r)
	}
	return records, nil
}
