package logger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var applicationName string = ""

const (
	logTemplate   string = "%s %v [, ] [] %s task-scheduler %s\n"
	logTimeFormat string = "02-01-2006 15:04:05.000 -0700"
)

var logLevels = map[string]zerolog.Level{
	"DEBUG":    zerolog.DebugLevel,
	"INFO":     zerolog.InfoLevel,
	"WARN":     zerolog.WarnLevel,
	"ERROR":    zerolog.ErrorLevel,
	"FATAL":    zerolog.FatalLevel,
	"PANIC":    zerolog.PanicLevel,
	"DISABLED": zerolog.Disabled,
}

func InitLogger(kConfig *koanf.Koanf) {
	logLevel := strings.ToUpper(kConfig.MustString("applicationLogLevel"))
	applicationName = kConfig.MustString("applicationName")
	level, ok := logLevels[logLevel]
	if !ok {
		Panic(fmt.Sprintf("Incorrect log level %s", logLevel), nil)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	Info("Logger initialized!")
}

func Debug(message string) {
	log.Debug().Msgf(logTemplate, applicationName, now(), "DEBUG", message)
}

func Info(message string) {
	log.Info().Msgf(logTemplate, applicationName, now(), "INFO", message)
}

func Error(message string, err error) {
	log.Error().AnErr("Error ", err).Msgf(logTemplate, applicationName, now(), "ERROR", message)
}

func Panic(message string, err error) {
	Error(message, err)
	log.Panic().AnErr("Error", err).Msgf(logTemplate, applicationName, now(), "PANIC", message)
}

func now() string {
	return time.Now().Format(logTimeFormat)
}
