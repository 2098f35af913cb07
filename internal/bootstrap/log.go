package bootstrap

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	log "github.com/sirupsen/logrus"

	"github.com/arcfs-org/arcfs/internal/conf"
)

// InitLog wires logrus to stderr plus an optional rotating file.
func InitLog(debug bool) {
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportCaller(true)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	log.SetFormatter(&log.TextFormatter{
		ForceColors:               true,
		EnvironmentOverrideColors: true,
		TimestampFormat:           "2006-01-02 15:04:05",
		FullTimestamp:             true,
	})
	logCfg := conf.Conf.Log
	if logCfg.Enable && logCfg.Name != "" {
		w := &lumberjack.Logger{
			Filename:   logCfg.Name,
			MaxSize:    logCfg.MaxSize,
			MaxBackups: logCfg.MaxBackups,
			MaxAge:     logCfg.MaxAge,
			Compress:   logCfg.Compress,
		}
		log.SetOutput(io.MultiWriter(os.Stderr, w))
	}
}
