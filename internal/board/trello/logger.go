package trelloClient

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// hclogAdapter feeds the request tracing of the trello library into hclog.
type hclogAdapter struct {
	logger hclog.Logger
}

func (a hclogAdapter) Debugf(format string, args ...interface{}) {
	if a.logger.IsDebug() {
		a.logger.Debug(fmt.Sprintf(format, args...))
	}
}
