package version

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Заполняются через -ldflags "-X github.com/vladislavdragonenkov/inventory/internal/version.version=...".
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Info returns version information populated via -ldflags.
func Info() (v, c, d string) { return version, commit, date }

func String() string {
	v, c, d := Info()
	return fmt.Sprintf("version=%s commit=%s date=%s", v, c, d)
}

// Fields возвращает сведения о сборке для структурированных логов.
func Fields() log.Fields {
	v, c, d := Info()
	return log.Fields{
		"version": v,
		"commit":  c,
		"date":    d,
	}
}
