package logger

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferredLoggerFlushesBelowGreeting(t *testing.T) {
	out := &bytes.Buffer{}
	ctx := WithLogger(context.Background(), NewLogger(InfoLvl, out))
	dl := NewDeferredLogger(ctx)

	dl.Infof("indexed %d files", 3)
	assert.Equal(t, 1, dl.Held())
	assert.Equal(t, "", out.String())

	_, _ = fmt.Fprintf(out, "fopen indexing \"/proj\"\n")
	dl.Flush()
	dl.Infof("index refreshed")

	assert.Equal(t, "fopen indexing \"/proj\"\nindexed 3 files\nindex refreshed\n", out.String())
	assert.Equal(t, 0, dl.Held())
}

func TestDeferredLoggerKeepsTargetLevel(t *testing.T) {
	out := &bytes.Buffer{}
	ctx := WithLogger(context.Background(), NewLogger(InfoLvl, out))
	dl := NewDeferredLogger(ctx)

	dl.Debugf("walking /proj")
	dl.Warnf("skipping /proj/locked")
	dl.Flush()

	assert.Equal(t, "WARNING: skipping /proj/locked\n", out.String())
}

func TestDeferredLoggerFlushTwice(t *testing.T) {
	out := &bytes.Buffer{}
	ctx := WithLogger(context.Background(), NewLogger(InfoLvl, out))
	dl := NewDeferredLogger(ctx)

	dl.Infof("indexed 3 files")
	dl.Flush()
	dl.Flush()

	assert.Equal(t, "indexed 3 files\n", out.String())
}

func TestDeferredLoggerHoldsCopies(t *testing.T) {
	out := &bytes.Buffer{}
	ctx := WithLogger(context.Background(), NewLogger(DebugLvl, out))
	dl := NewDeferredLogger(ctx)

	buf := make([]byte, 0, 16)
	_, err := dl.Writer(DebugLvl).Write(append(buf, "main.go "...))
	require.NoError(t, err)
	_, err = dl.Writer(DebugLvl).Write(append(buf, "util.go"...))
	require.NoError(t, err)

	dl.Flush()
	assert.Equal(t, "main.go util.go", out.String())
}
