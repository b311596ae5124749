package main_test

import (
	"bytes"
	cllsim "gregoryjjb/cllsim"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	h := cllsim.LoggerMiddleware(&logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			panic("boom")
		}
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"url":"/ok"`)

	buf.Reset()
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "HTTP endpoint panic")
}

func TestNewConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := cllsim.NewConsoleLogger(&buf, true)

	logger.Info().Str("component", "test").Msg("hello")

	out := buf.String()
	assert.Contains(t, out, "| INFO  |")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "component=test")
}
