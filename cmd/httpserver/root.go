package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Brownie44l1/minihttp/internal/httpserver"
	"github.com/Brownie44l1/minihttp/internal/server"
)

// errUsage signals a non-zero exit whose message was already printed
var errUsage = errors.New("usage error")

// serveFunc binds cfg and serves until the server stops
type serveFunc func(cfg server.Config, stdout io.Writer) error

func newRootCmd(stdout, stderr io.Writer, serve serveFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "httpserver [port]",
		Short: "Serve /static files and /calc arithmetic over HTTP/1.1",
		Long: `Serve files from ./static and evaluate /calc/<op>/<a>/<b> requests.
Each connection carries exactly one request and is closed after the response.`,
		Example: `
# Start on the default port 80
httpserver

# Start on port 8080
httpserver 8080
`,
		Args: cobra.ArbitraryArgs,
		// The only argument is a port; "-5" must reach ParsePort, not the flag parser.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := cmd.Name()
			cfg := server.DefaultConfig()

			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}

			switch len(args) {
			case 0:
				fmt.Fprintf(stdout, "starting server on default port (%d)\n", server.DefaultPort)
				fmt.Fprintf(stderr, "to launch with custom port: %s <port>\n", prog)
			case 1:
				port, err := server.ParsePort(args[0])
				if err != nil {
					fmt.Fprintf(stderr, "invalid port number: %s\n", args[0])
					return errUsage
				}
				cfg.Port = port
			default:
				fmt.Fprintln(stderr, "invalid number of arguments")
				fmt.Fprintf(stdout, "to launch with custom port: %s <port>\n", prog)
				fmt.Fprintf(stdout, "to start with default port (%d): %s\n", server.DefaultPort, prog)
				return errUsage
			}

			return serve(cfg, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// listenAndServe runs the server until SIGINT or SIGTERM closes the
// listener. A bind failure is logged and returned.
func listenAndServe(cfg server.Config, stdout io.Writer) error {
	logger := server.NewDefaultLogger()
	srv := httpserver.New(cfg, logger)

	ln, err := srv.Listen()
	if err != nil {
		logger.Error("failed to bind", server.Field{Key: "addr", Value: cfg.Addr()}, server.Field{Key: "error", Value: err})
		return err
	}
	fmt.Fprintf(stdout, "Server is running on port %d...\n", cfg.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		logger.Info("shutting down")
		srv.Close()
	}()

	return srv.Serve(ln)
}
