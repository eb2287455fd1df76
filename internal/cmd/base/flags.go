package base

import (
	"bytes"
	"flag"
	"strings"
)

// FlagSet wraps a flag.FlagSet so commands can render their options in Help.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help returns the option section of a command's help text.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	out := f.Output()
	f.SetOutput(&buf)
	f.PrintDefaults()
	f.SetOutput(out)

	if buf.Len() == 0 {
		return ""
	}
	return "\n\nOptions:\n\n" + strings.TrimRight(buf.String(), "\n")
}
