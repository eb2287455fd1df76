package base

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagSet_Help(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	assert.Empty(t, f.Help())

	var config string
	f.StringVar(&config, "config", "", "Path to the config file")

	help := f.Help()
	assert.Contains(t, help, "Options:")
	assert.Contains(t, help, "-config string")
	assert.Contains(t, help, "Path to the config file")
}
