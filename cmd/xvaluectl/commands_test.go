package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun"),
	)
}

// runForTest 执行命令，返回退出码与 stdout、stderr 内容。
func runForTest(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"xvaluectl"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestStoreCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantText   string
		wantBinary string
	}{
		{"text with zone", []string{"store", "198.51.100.7%eth0"}, "198.51.100.7%eth0", "c633640765746830"},
		{"text empty zone", []string{"store", "192.0.2.1%"}, "192.0.2.1%", "c0000201"},
		{"binary hex", []string{"store", "-f", "binary", "-x", "c633640765746830"}, "198.51.100.7%eth0", "c633640765746830"},
		{"binary no zone", []string{"store", "--format", "binary", "--hex", "0a000001"}, "10.0.0.1", "0a000001"},
		{"text hex", []string{"store", "-x", hex.EncodeToString([]byte("10.0.0.1%lo"))}, "10.0.0.1%lo", "0a0000016c6f"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runForTest(t, tt.args...)
			require.Equal(t, 0, code, errOut)
			assert.Contains(t, out, "type:   ipv4-address\n")
			assert.Contains(t, out, "text:   "+tt.wantText+"\n")
			assert.Contains(t, out, "binary: "+tt.wantBinary+"\n")
			assert.NotContains(t, errOut, "still referenced", "every stored value must be freed")
		})
	}
}

func TestStoreCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"address syntax", []string{"store", "999.0.0.1"}, 1, "999.0.0.1"},
		{"binary too short", []string{"store", "-f", "binary", "-x", "c63364"}, 1, "invalid size"},
		{"binary zone char", []string{"store", "-f", "binary", "-x", "c63364076121"}, 1, "0x21"},
		{"bad hex", []string{"store", "-x", "zz"}, 2, "十六进制"},
		{"bad format", []string{"store", "-f", "xml", "1.2.3.4"}, 2, "xml"},
		{"missing arg", []string{"store"}, 2, "store 需要 1 个参数"},
		{"extra arg", []string{"store", "1.2.3.4", "5.6.7.8"}, 2, "实际 2 个"},
		{"type without types", []string{"store", "--type", "x", "1.2.3.4"}, 2, "--types"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runForTest(t, tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, errOut, tt.wantErr)
		})
	}
}

func TestStoreCommandWithTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	doc := `types:
  short-address:
    length: "7..9"
    length-error-message: "address too long"
  lower-zone:
    patterns:
      - regexp: '[0-9.]+(%[a-z0-9]*)?'
        error-app-tag: lower-zone
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	code, out, errOut := runForTest(t, "store", "--types", path, "--type", "short-address", "10.0.0.1")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "type:   short-address\n")

	code, _, errOut = runForTest(t, "store", "--types", path, "--type", "short-address", "192.0.2.1%eth0")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "address too long")

	code, _, errOut = runForTest(t, "store", "--types", path, "--type", "lower-zone", "192.0.2.1%ETH0")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "pattern violation")

	code, _, errOut = runForTest(t, "store", "--types", path, "--type", "missing", "10.0.0.1")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `"missing"`)

	code, _, _ = runForTest(t, "store", "--types", path, "10.0.0.1")
	assert.Equal(t, 2, code)

	code, _, errOut = runForTest(t, "store", "--types", filepath.Join(t.TempDir(), "none.yaml"), "--type", "x", "10.0.0.1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "failed to load type definitions")
}

func TestCompareCommand(t *testing.T) {
	tests := []struct {
		a, b     string
		wantCode int
		wantOut  string
	}{
		{"192.0.2.1", "192.0.2.1", 0, "equal\n"},
		{"192.0.2.1%eth0", "192.0.2.1%eth0", 0, "equal\n"},
		{"192.0.2.1%", "192.0.2.1", 1, "not equal\n"},
		{"192.0.2.1%eth0", "192.0.2.1%eth1", 1, "not equal\n"},
	}
	for _, tt := range tests {
		t.Run(tt.a+" "+tt.b, func(t *testing.T) {
			code, out, _ := runForTest(t, "compare", tt.a, tt.b)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOut, out)
		})
	}

	code, _, _ := runForTest(t, "compare", "1.2.3.4")
	assert.Equal(t, 2, code)
	code, _, _ = runForTest(t, "compare", "1.2.3.4", "1.2.3")
	assert.Equal(t, 1, code)
}

func TestHashCommand(t *testing.T) {
	code, out, errOut := runForTest(t, "hash", "198.51.100.7%eth0")
	require.Equal(t, 0, code, errOut)

	key := []byte{0xC6, 0x33, 0x64, 0x07, 'e', 't', 'h', '0'}
	assert.Contains(t, out, "key:    c633640765746830\n")
	assert.Contains(t, out, fmt.Sprintf("xxhash: %016x\n", xxhash.Sum64(key)))

	code, _, _ = runForTest(t, "hash")
	assert.Equal(t, 2, code)
}

func TestInspectCommand(t *testing.T) {
	tests := []struct {
		input    string
		wantZone string
	}{
		{"198.51.100.7", "zone:    (none)\n"},
		{"198.51.100.7%", "zone:    (empty)\n"},
		{"198.51.100.7%eth0", "zone:    eth0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			code, out, errOut := runForTest(t, "inspect", tt.input)
			require.Equal(t, 0, code, errOut)
			assert.Contains(t, out, "address: 198.51.100.7\n")
			assert.Contains(t, out, tt.wantZone)
			assert.Contains(t, out, "uint32:  3325256711\n")
			assert.Contains(t, out, "full:    198.051.100.007\n")
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Run("debug log on rejection", func(t *testing.T) {
		code, _, errOut := runForTest(t, "--log-level", "debug", "store", "999.0.0.1")
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "xipv4: store rejected")
	})

	t.Run("json log format", func(t *testing.T) {
		code, _, errOut := runForTest(t, "--log-level", "debug", "--log-format", "json", "store", "999.0.0.1")
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, `"msg":"xipv4: store rejected"`)
	})

	t.Run("invalid log level", func(t *testing.T) {
		code, _, errOut := runForTest(t, "--log-level", "loud", "store", "1.2.3.4")
		assert.Equal(t, 2, code)
		assert.Contains(t, errOut, "loud")
	})

	t.Run("log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "xvaluectl.log")
		code, _, errOut := runForTest(t, "--log-level", "debug", "--log-file", path, "store", "999.0.0.1")
		assert.Equal(t, 1, code)
		assert.NotContains(t, errOut, "store rejected")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "xipv4: store rejected")
	})

	t.Run("invalid log max size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "xvaluectl.log")
		code, _, _ := runForTest(t, "--log-file", path, "--log-max-size", "0", "store", "1.2.3.4")
		assert.Equal(t, 2, code)
	})

	t.Run("invalid log format", func(t *testing.T) {
		code, _, _ := runForTest(t, "--log-format", "xml", "store", "1.2.3.4")
		assert.Equal(t, 2, code)
	})
}

func TestUsageErrors(t *testing.T) {
	code, _, errOut := runForTest(t, "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "frobnicate")

	code, _, _ = runForTest(t, "store", "--no-such-flag", "1.2.3.4")
	assert.Equal(t, 2, code)
}

func TestNoArgsShowsHelp(t *testing.T) {
	code, out, _ := runForTest(t)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "xvaluectl")
}

func TestUsageErrorMessage(t *testing.T) {
	err := &usageError{msg: "test error"}
	assert.Equal(t, "test error", err.Error())
	assert.Empty(t, (&exitError{code: 1}).Error())
}

// syncBuffer 是并发安全的 bytes.Buffer。
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	require.NoError(t, os.WriteFile(path, []byte("types:\n  a:\n    length: \"1..2\"\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var stdout, stderr syncBuffer
	codeCh := make(chan int, 1)
	go func() {
		codeCh <- run(ctx, []string{"xvaluectl", "watch", "--types", path, "--debounce", "10ms"}, &stdout, &stderr)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "loaded: a\n")
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("types:\n  a:\n    length: \"1..2\"\n  b:\n    length: \"3\"\n"), 0o600))
	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "reloaded: a, b\n")
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case code := <-codeCh:
		assert.Equal(t, 0, code, stderr.String())
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestWatchCommandRequiresTypes(t *testing.T) {
	code, _, _ := runForTest(t, "watch")
	assert.Equal(t, 2, code)

	code, _, _ = runForTest(t, "watch", "--types", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Equal(t, 1, code)
}
