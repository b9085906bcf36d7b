package cmd

import (
	gocontext "context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"

	"github.com/qlquery/qlquery/api"
	"github.com/rs/zerolog/log"
	"github.com/smira/commander"
	"github.com/smira/flag"
)

// listen opens TCP listener or unix socket for unix:// URLs
func listen(address string) (net.Listener, error) {
	listenURL, err := url.Parse(address)
	if err == nil && listenURL.Scheme == "unix" {
		file := listenURL.Path
		_ = os.Remove(file)

		listener, err := net.Listen("unix", file)
		if err != nil {
			return nil, fmt.Errorf("failed to listen on: %s\n%s", file, err)
		}
		return listener, nil
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on: %s\n%s", address, err)
	}
	return listener, nil
}

func qlServe(cmd *commander.Command, args []string) error {
	var err error

	if len(args) != 0 {
		cmd.Usage()
		return commander.ErrCommandError
	}

	// fail early if library can't be loaded
	collection, err := context.Collection()
	if err != nil {
		return err
	}

	listener, err := listen(context.Flags().Lookup("listen").Value.String())
	if err != nil {
		return err
	}
	defer listener.Close()

	server := &http.Server{Handler: api.Router(context)}

	context.GoContextHandleSignals()

	go func() {
		<-context.Done()
		if err := server.Shutdown(gocontext.Background()); err != nil {
			log.Error().Err(err).Msg("unable to shut down server")
		}
	}()

	fmt.Fprintf(stdout, "\nStarting web server at: %s with %d records (press Ctrl+C to quit)...\n", listener.Addr(), collection.Len())

	err = server.Serve(listener)
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("unable to serve: %s", err)
	}

	return nil
}

func makeCmdServe() *commander.Command {
	cmd := &commander.Command{
		Run:       qlServe,
		UsageLine: "serve",
		Short:     "start API HTTP service",
		Long: `
Start HTTP server with qlquery REST API: queries can be validated,
explained, rendered as graphs and used to filter records (either sent
with request or library loaded from paths in the config).

The server can listen to either a port or Unix domain socket.

Example:

  $ qlquery serve -listen=:8080
  $ qlquery serve -listen=unix:///tmp/qlquery.sock
`,
		Flag: *flag.NewFlagSet("qlquery-serve", flag.ExitOnError),
	}

	cmd.Flag.String("listen", ":8080", "host:port for HTTP listening or unix://path to listen on a Unix domain socket")
	addStarFlag(cmd)

	return cmd
}
