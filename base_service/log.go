package base_service

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var GlobalLogger *zerolog.Logger
var LogFile *os.File
var LogLevel = zerolog.InfoLevel

func formatLevel(i interface{}) string {
	return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
}

// CreateLog sets up the global logger: colored console output on stderr and,
// when GlobalConfig enables it, a plain copy in a dated log file.
func CreateLog() {
	if GlobalLogger != nil {
		return
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(LogLevel)

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime, FormatLevel: formatLevel}}
	if GlobalConfig != nil && GlobalConfig.General.LogFile {
		file, err := os.OpenFile(fmt.Sprintf("osudb-%s.log", time.Now().Format(time.DateOnly)), os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
		if err != nil {
			panic(err)
		}
		writers = append(writers, zerolog.ConsoleWriter{Out: file, TimeFormat: time.DateTime, NoColor: true, FormatLevel: formatLevel})
		LogFile = file
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	GlobalLogger = &log.Logger
}

func CloseLog() {
	if LogFile == nil {
		return
	}
	if err := LogFile.Close(); err != nil {
		fmt.Println("Failed to close log file:", err)
	}
	LogFile = nil
}

// SetLogLevel changes the level of an already created logger, e.g. for --verbose.
func SetLogLevel(level zerolog.Level) {
	LogLevel = level
	zerolog.SetGlobalLevel(level)
}

func GetLogger(module string) zerolog.Logger {
	if GlobalLogger == nil {
		CreateLog()
	}
	return GlobalLogger.With().Str("module", module).Logger()
}
