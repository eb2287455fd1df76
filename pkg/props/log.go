package props

import (
	"github.com/hashicorp/go-hclog"
)

var logger = hclog.NewNullLogger()

// SetLogger sets the logger used for builder warnings. It is not safe to call
// concurrently with builder construction.
func SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	logger = l
}
