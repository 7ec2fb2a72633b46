package main

import (
	"bytes"
	"io"
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brownie44l1/minihttp/internal/server"
)

type recorder struct {
	called bool
	cfg    server.Config
}

func (r *recorder) serve(cfg server.Config, stdout io.Writer) error {
	r.called = true
	r.cfg = cfg
	return nil
}

func run(t *testing.T, serve serveFunc, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr, serve)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDefaultPort(t *testing.T) {
	rec := &recorder{}
	stdout, stderr, err := run(t, rec.serve)
	require.NoError(t, err)

	assert.Equal(t, "starting server on default port (80)\n", stdout)
	assert.Equal(t, "to launch with custom port: httpserver <port>\n", stderr)
	assert.True(t, rec.called)
	assert.Equal(t, server.DefaultConfig(), rec.cfg)
}

func TestCustomPort(t *testing.T) {
	rec := &recorder{}
	stdout, stderr, err := run(t, rec.serve, "8080")
	require.NoError(t, err)

	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
	assert.Equal(t, 8080, rec.cfg.Port)
	assert.Equal(t, server.DefaultStaticDir, rec.cfg.StaticDir)
}

func TestInvalidPort(t *testing.T) {
	for _, arg := range []string{"0", "65536", "abc", "-5", "-1", "--port"} {
		t.Run(arg, func(t *testing.T) {
			rec := &recorder{}
			_, stderr, err := run(t, rec.serve, arg)
			assert.ErrorIs(t, err, errUsage)
			assert.Equal(t, "invalid port number: "+arg+"\n", stderr)
			assert.False(t, rec.called)
		})
	}
}

func TestHelp(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		rec := &recorder{}
		stdout, stderr, err := run(t, rec.serve, arg)
		require.NoError(t, err)
		assert.Contains(t, stdout, "httpserver [port]")
		assert.Empty(t, stderr)
		assert.False(t, rec.called)
	}
}

func TestTooManyArguments(t *testing.T) {
	rec := &recorder{}
	stdout, stderr, err := run(t, rec.serve, "80", "-81")
	assert.ErrorIs(t, err, errUsage)

	assert.Equal(t, "invalid number of arguments\n", stderr)
	assert.Equal(t, "to launch with custom port: httpserver <port>\n"+
		"to start with default port (80): httpserver\n", stdout)
	assert.False(t, rec.called)
}

func TestBindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	stdout, _, err := run(t, listenAndServe, strconv.Itoa(port))
	assert.Error(t, err)
	assert.NotContains(t, stdout, "Server is running")
}
