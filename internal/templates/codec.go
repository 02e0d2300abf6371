package templates

import (
	"fmt"
	"strconv"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/cache"
)

// CodecDelimited selects the flat id::title::status::created_at encoding
// understood by older readers of the template cache.
const CodecDelimited = "delimited"

// DelimitedCodec encodes templates as "id::title::status::created_at"
// items joined by "||".
var DelimitedCodec = cache.DelimitedCodec[v1.Template]{
	NumFields: 4,
	Fields: func(t v1.Template) []string {
		return []string{strconv.FormatInt(t.ID, 10), t.Title, t.Status, t.CreatedAt}
	},
	Parse: func(f []string) (v1.Template, error) {
		id, err := strconv.ParseInt(f[0], 10, 64)
		if err != nil {
			return v1.Template{}, fmt.Errorf("invalid id: %w", err)
		}
		return v1.Template{ID: id, Title: f[1], Status: f[2], CreatedAt: f[3]}, nil
	},
}

// NewCodec returns the template list codec registered under name.
func NewCodec(name string) (cache.Codec[v1.Template], error) {
	if name == CodecDelimited {
		return DelimitedCodec, nil
	}
	return cache.NewCodec[v1.Template](name)
}
