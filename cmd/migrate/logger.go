package migrate

import (
	"fmt"
	"strings"

	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	"github.com/golang-migrate/migrate/v4"
)

var _ migrate.Logger = (*migrateLogger)(nil)

// migrateLogger forwards golang-migrate output to the process logger.
type migrateLogger struct {
	module  string
	verbose bool
}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	if msg == "" {
		return
	}
	logger.Info(msg, slogx.String("module", l.module), slogx.String("package", "migrate"))
}

func (l *migrateLogger) Verbose() bool {
	return l.verbose
}
