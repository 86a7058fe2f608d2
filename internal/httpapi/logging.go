package httpapi

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, falls back to log.Printf.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// LogLevel controls per-request logging behavior.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelInfo
	LevelDebug
)

// ParseLevel maps a level name to a LogLevel. Unknown names mean info.
func ParseLevel(s string) LogLevel {
	switch s {
	case "off", "":
		return LevelOff
	case "error":
		return LevelError
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

var defaultLogLevel = ParseLevel(os.Getenv("MLSERVE_LOG_LEVEL"))

// SetDefaultLogLevel overrides the level used when a request carries no override.
func SetDefaultLogLevel(l LogLevel) { defaultLogLevel = l }

func requestLogLevel(r *http.Request) LogLevel {
	// Per-request overrides
	if v := r.URL.Query().Get("log"); v != "" {
		if v == "1" {
			return LevelDebug
		}
		return ParseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return ParseLevel(v)
	}
	return defaultLogLevel
}

// logRequestEnd emits one line per request. Server errors are logged at
// LevelError and above, everything else from LevelInfo.
func logRequestEnd(r *http.Request, lvl LogLevel, status int, start time.Time, err error) {
	if lvl < LevelError || (lvl < LevelInfo && status < http.StatusInternalServerError) {
		return
	}
	dur := time.Since(start)
	if zlog != nil {
		z := zlog.Info()
		if status >= http.StatusInternalServerError {
			z = zlog.Error()
		}
		z = z.Str("path", r.URL.Path).Int("status", status).Dur("dur", dur)
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			z = z.Str("request_id", rid)
		}
		if err != nil {
			z = z.Err(err)
		}
		z.Msg("request end")
		return
	}
	if err != nil {
		log.Printf("request end path=%s status=%d dur=%s err=%v", r.URL.Path, status, dur, err)
		return
	}
	log.Printf("request end path=%s status=%d dur=%s", r.URL.Path, status, dur)
}

// logPrediction records the input and label at debug level.
func logPrediction(r *http.Request, lvl LogLevel, features []float64, label int) {
	if lvl < LevelDebug {
		return
	}
	if zlog != nil {
		z := zlog.Debug().Floats64("features", features).Int("prediction", label)
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			z = z.Str("request_id", rid)
		}
		z.Msg("predict")
		return
	}
	log.Printf("predict features=%v prediction=%d", features, label)
}
