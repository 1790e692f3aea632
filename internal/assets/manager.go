package assets

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed defaults.env
var defaults []byte

// Defaults returns the built-in configuration in .env format.
func Defaults() io.Reader {
	return bytes.NewReader(defaults)
}
