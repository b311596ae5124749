package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	colorBlack = iota + 30
	colorRed
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
	colorCyan
	colorWhite

	colorBold     = 1
	colorDarkGray = 90
)

func colorize(s interface{}, c int, disabled bool) string {
	if disabled {
		return fmt.Sprintf("%s", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

// ThreadSafeWriter serializes writes so concurrent log lines don't interleave
type ThreadSafeWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (tsw ThreadSafeWriter) Write(p []byte) (int, error) {
	tsw.mu.Lock()
	defer tsw.mu.Unlock()
	return tsw.w.Write(p)
}

func NewThreadSafeWriter(w io.Writer) ThreadSafeWriter {
	return ThreadSafeWriter{mu: &sync.Mutex{}, w: w}
}

func formatLevel(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		var l string
		if ll, ok := i.(string); ok {
			switch ll {
			case zerolog.LevelTraceValue:
				l = colorize("TRACE", colorMagenta, noColor)
			case zerolog.LevelDebugValue:
				l = colorize("DEBUG", colorYellow, noColor)
			case zerolog.LevelInfoValue:
				l = colorize("INFO ", colorGreen, noColor)
			case zerolog.LevelWarnValue:
				l = colorize("WARN ", colorRed, noColor)
			case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
				l = colorize(colorize(strings.ToUpper(ll), colorRed, noColor), colorBold, noColor)
			default:
				l = colorize(ll, colorBold, noColor)
			}
		} else {
			if i == nil {
				l = colorize("???  ", colorBold, noColor)
			} else {
				l = strings.ToUpper(fmt.Sprintf("%-5s", i))[0:5]
			}
		}

		return fmt.Sprintf("| %s |", l)
	}
}

// NewConsoleLogger builds the human readable logger used by the binary
func NewConsoleLogger(out io.Writer, noColor bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:         NewThreadSafeWriter(out),
		NoColor:     noColor,
		TimeFormat:  time.RFC3339,
		FormatLevel: formatLevel(noColor),
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

func InitializeLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = NewConsoleLogger(colorable.NewColorable(os.Stdout), false)
}

func SetLogLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// LoggerMiddleware writes one access line per request and turns handler
// panics into 500s. Based on https://github.com/ironstar-io/chizerolog
func LoggerMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			t1 := time.Now()
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error().
						Interface("recover_info", rec).
						Bytes("debug_stack", debug.Stack()).
						Msg("HTTP endpoint panic")

					http.Error(ww, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}

				logger.Info().
					Str("type", "access").
					Str("remote_ip", r.RemoteAddr).
					Str("url", r.URL.Path).
					Str("method", r.Method).
					Int("status", ww.Status()).
					Float64("latency_ms", float64(time.Since(t1).Nanoseconds())/1000000.0).
					Int("bytes_out", ww.BytesWritten()).
					Msg("HTTP request")
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}
