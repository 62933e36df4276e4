// Command vtdemo runs a child process under a pty, feeds its output
// through vt.Parser, and serves the resulting rendered screen over
// HTTP/WebSocket. It plays the role of main.go/terminal.go in
// subhav-terminal_parser, generalized from a single hard-coded xterm
// upgrade path to a full vt.Screen/vt.Parser pairing driven by
// vtscreen.Screen.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vtparser/vt"
	"vtparser/vtscreen"
)

var (
	flagAddr       string
	flagConfigPath string
	flagCols       int
	flagRows       int
)

func main() {
	root := &cobra.Command{
		Use:   "vtdemo -- <command> [args...]",
		Short: "Run a command under a pty and serve its parsed terminal output over HTTP",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runDemo,
	}
	root.Flags().StringVar(&flagAddr, "addr", "localhost:3000", "address to serve the rendered screen on")
	root.Flags().StringVar(&flagConfigPath, "config", "", "path to a parser config YAML file (optional)")
	root.Flags().IntVar(&flagCols, "cols", 80, "screen width in columns")
	root.Flags().IntVar(&flagRows, "rows", 24, "screen height in rows")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := vt.LoadConfig(flagConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	watchConfig(flagConfigPath, logger, &cfg)

	ptmx, err := pty.Start(exec.Command(args[0], args[1:]...))
	if err != nil {
		return fmt.Errorf("start pty: %w", err)
	}
	defer ptmx.Close()
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(flagRows), Cols: uint16(flagCols)}); err != nil {
		logger.Warn("pty.Setsize failed", zap.Error(err))
	}

	screen := vtscreen.New(vtscreen.Options{Cols: flagCols, Rows: flagRows, Logger: logger})
	sink := vt.NewZapSink(logger)
	windowID := uuid.NewString()
	parser := vt.New(windowID, screen, cfg, sink, vt.SystemClock{})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go pumpPty(ctx, ptmx, parser, logger)

	server := newServer(flagAddr, screen)
	go func() {
		logger.Info("serving", zap.String("addr", flagAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server exited", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()
	return server.Shutdown(shutdownCtx)
}

// pumpPty is the writer side of the parser's shared buffer: it reads
// from the pty into whatever space AcquireWriteBuffer currently offers,
// commits what it read, and lets Parse drive the state machine forward
// on its own cadence, mirroring the teacher's *parser/io.TeeReader
// pull loop (terminal/terminal.go's Run) but split across the
// producer/consumer ByteBuffer boundary spec.md §5 requires.
func pumpPty(ctx context.Context, ptmx *os.File, parser *vt.Parser, logger *zap.Logger) {
	ticker := time.NewTicker(4 * time.Millisecond)
	defer ticker.Stop()

	readErrs := make(chan error, 1)
	go func() {
		for {
			if !parser.HasSpaceForInput() {
				time.Sleep(time.Millisecond)
				continue
			}
			dst, err := parser.AcquireWriteBuffer()
			if err != nil {
				readErrs <- err
				return
			}
			if len(dst) == 0 {
				time.Sleep(time.Millisecond)
				continue
			}
			n, err := ptmx.Read(dst)
			if n > 0 {
				parser.CommitWrite(n)
			}
			if err != nil {
				readErrs <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			parser.Parse(time.Now(), true)
			return
		case err := <-readErrs:
			if err != nil {
				logger.Info("pty closed", zap.Error(err))
			}
			parser.Parse(time.Now(), true)
			return
		case <-ticker.C:
			parser.Parse(time.Now(), false)
		}
	}
}

// watchConfig reloads cfg in place whenever the backing file changes,
// the way buildkite-agent's own long-running services pick up config
// edits without a restart. Parser itself reads cfg by value at
// construction time, so live edits only take effect for a fresh
// vt.New call; this wiring exists so a future multi-session server
// (one Parser per pty) can pick up new defaults for sessions it starts
// after the edit.
func watchConfig(path string, logger *zap.Logger, cfg *vt.Config) {
	if path == "" {
		return
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("config watcher unavailable", zap.Error(err))
		return
	}
	if err := watcher.Add(path); err != nil {
		logger.Warn("could not watch config file", zap.String("path", path), zap.Error(err))
		watcher.Close()
		return
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				reloaded, err := vt.LoadConfig(path)
				if err != nil {
					logger.Warn("config reload failed", zap.Error(err))
					continue
				}
				*cfg = reloaded
				logger.Info("config reloaded", zap.String("path", path))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", zap.Error(err))
			}
		}
	}()
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// newServer builds the HTTP mux serving the rendered screen, generalizing
// main.go's single "/stdout" polling handler with a "/ws" push variant
// for clients that want updates without polling.
func newServer(addr string, screen *vtscreen.Screen) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/stdout", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		for _, line := range screen.Lines() {
			fmt.Fprintln(w, line)
		}
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := wsUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			lines := screen.Lines()
			if err := conn.WriteJSON(lines); err != nil {
				return
			}
		}
	})
	return &http.Server{Addr: addr, Handler: mux}
}
