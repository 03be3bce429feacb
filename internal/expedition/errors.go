package expedition

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidJSON         = errors.New("config is not valid JSON")
	ErrRootNotObject       = errors.New("config root must be a JSON object keyed by expedition name")
	ErrExchangeUnsupported = errors.New("exchange entries are no longer supported by the generator; " +
		"remove the Exchange: prefix or migrate this entry to a normal unlock or recipe drop")
	ErrUnsafePath          = errors.New("names and item ids become file names and must not contain path separators or \"..\"")
)

// ConfigError locates a fatal problem in the config. Index is -1 when Field
// is not a list.
type ConfigError struct {
	Expedition string
	Field      string
	Index      int
	Err        error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Expedition == "":
		return e.Err.Error()
	case e.Field == "":
		return fmt.Sprintf("expedition %q: %v", e.Expedition, e.Err)
	case e.Index < 0:
		return fmt.Sprintf("expedition %q: %s: %v", e.Expedition, e.Field, e.Err)
	}
	return fmt.Sprintf("expedition %q: %s[%d]: %v", e.Expedition, e.Field, e.Index, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
