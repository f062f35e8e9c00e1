package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialization(t *testing.T) {
	t.Run("unknown level", func(t *testing.T) {
		_, err := New(LevelFromString("kittens"), EncodingJSON)
		require.Error(t, err)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		_, err := New(LevelDebug, Encoding("windings"))
		require.Error(t, err)
	})
}

func TestFileOutputOption(t *testing.T) {
	var tests = []struct {
		in          string
		expectError bool
		clean       bool
	}{
		{"stdout", false, false},
		{"stderr", false, false},
		{"devnull", false, false},
		{"", true, false},
		{"semfilter-logging-test-tmpfile", false, true},
	}

	for i, test := range tests {
		test := test
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := New(LevelDebug, EncodingLogfmt, WithFileOutput(test.in))
			if test.expectError {
				require.ErrorIs(t, err, errEmptyFilePath)
			} else {
				require.NoError(t, err)
			}
			if test.clean {
				require.NoError(t, os.RemoveAll(test.in))
			}
		})
	}
}

func TestNewPlainLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}

	logger, err := New(LevelInfo, EncodingPlain,
		WithOutput(buf),
		WithErrorOutput(errBuf),
	)
	require.NoError(t, err)

	logger.Info("hello world")
	require.Equal(t, "Hello world\n", buf.String())

	logger.Error("hello error")
	require.Equal(t, "Hello error\n", errBuf.String())

	buf.Reset()
	logger.Debug("i shouldn't show up")
	require.Empty(t, buf.String())
}

func TestLevelSplitHandler(t *testing.T) {
	var stdLines, errLines countingWriter

	logger, err := New(LevelDebug, EncodingJSON,
		WithOutput(&stdLines),
		WithErrorOutput(&errLines),
	)
	require.NoError(t, err)

	logger.Info("a message")
	logger.Warn("a warning message")
	logger.Error("an error")

	require.Equal(t, 2, stdLines.n)
	require.Equal(t, 1, errLines.n)
}

type countingWriter struct {
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n++
	return len(p), nil
}

func TestFormattedLevels(t *testing.T) {
	var w countingWriter

	logger, err := New(LevelDebug, EncodingJSON, WithOutput(&w))
	require.NoError(t, err)

	logger.Debugf("%s", "debug")
	logger.Infof("%s", "info")
	logger.Warnf("%s", "warn")
	logger.Errorf("%s", "error")

	require.Equal(t, 4, w.n)
}

type mockExiter struct {
	called *bool
}

func (m mockExiter) Exit(int) { *m.called = true }

type mockPanicker struct {
	called *bool
}

func (m mockPanicker) Panic(string) { *m.called = true }

func TestFatalDoesNotExitWithMockedExiter(t *testing.T) {
	var called bool
	logger, err := New(LevelDebug, EncodingJSON, WithOutput(io.Discard))
	require.NoError(t, err)

	logger = logger.exiter(mockExiter{&called})
	logger.Fatal("boom")
	require.True(t, called)
}

func TestPanicDoesNotPanicWithMockedPanicker(t *testing.T) {
	var called bool
	logger, err := New(LevelDebug, EncodingJSON, WithOutput(io.Discard))
	require.NoError(t, err)

	logger = logger.panicker(mockPanicker{&called})
	logger.Panic("boom")
	require.True(t, called)
}

func TestLevelFromString(t *testing.T) {
	var tests = []struct {
		in       string
		expected slog.Level
	}{
		{"dEbug", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"fatal", LevelFatal},
		{"PANic", LevelPanic},
		{"", LevelUnknown},
		{"bubukitty", LevelUnknown},
	}

	for i, test := range tests {
		test := test
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			require.Equal(t, test.expected, LevelFromString(test.in))
		})
	}
}

func TestWithFieldsContext(t *testing.T) {
	ctx := WithFields(context.Background(), slog.String("hello", "world"))
	require.NotNil(t, ctx)

	// fields should accumulate, not replace
	ctx = WithFields(ctx, slog.Int("count", 1))
	require.NotNil(t, ctx)

	logger := FromContext(ctx)
	require.NotNil(t, logger)
}

func TestLogConcurrent(t *testing.T) {
	logger, err := New(LevelDebug, EncodingLogfmt, WithOutput(io.Discard))
	require.NoError(t, err)
	slog.SetDefault(logger.Logger)

	ctx := WithFields(context.Background(), slog.String("hello", "world"))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			l := FromContext(WithFields(ctx, slog.Int("n", n)))
			l.Infof("n=%d", n)
		}(i)
	}
	wg.Wait()
}
