package logging

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "rid-1")
	assert.Equal(t, "rid-1", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestLogger_IncludesRequestID(t *testing.T) {
	buf := captureLog(t)

	NewLogger(WithRequestID(context.Background(), "abc")).LogError("login", errors.New("boom"))
	assert.Equal(t, "[error] request_id=abc operation=login error=boom\n", buf.String())

	buf.Reset()
	NewLogger(context.Background()).LogInfof("probe", "status=%s", "up")
	assert.Equal(t, "[info] request_id=unknown operation=probe status=up\n", buf.String())
}

func TestSetLevel(t *testing.T) {
	buf := captureLog(t)
	t.Cleanup(func() { SetLevel("info") })

	SetLevel("error")
	l := NewLogger(context.Background())
	l.LogInfof("op", "hidden")
	l.LogWarnf("op", "hidden")
	assert.Empty(t, buf.String())
	l.LogError("op", errors.New("shown"))
	assert.Contains(t, buf.String(), "error=shown")

	buf.Reset()
	SetLevel("WARN")
	l.LogInfof("op", "hidden")
	l.LogWarnf("op", "shown")
	assert.Equal(t, "[warn] request_id=unknown operation=op shown\n", buf.String())
}
