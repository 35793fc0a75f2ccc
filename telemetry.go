package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"

	"github.com/wricardo/mcp-training/carsimulator/api"
	"github.com/wricardo/mcp-training/carsimulator/game/config"
	"github.com/wricardo/mcp-training/carsimulator/game/service"
	"github.com/wricardo/mcp-training/carsimulator/transport/websocket"
)

// telemetry is the running read-only HTTP server and its optional tunnel
type telemetry struct {
	server *http.Server
	addr   net.Addr
	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger *log.Logger
}

// startTelemetry listens on the configured address and, if enabled, opens an
// ngrok tunnel to the same handler
func startTelemetry(ctx context.Context, settings *config.Settings, gameService service.GameService, hub *websocket.Hub, logger *log.Logger) (*telemetry, error) {
	ln, err := net.Listen("tcp", settings.Telemetry.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", settings.Telemetry.Addr, err)
	}

	t := serveTelemetry(ctx, ln, api.NewServer(gameService, hub), logger)

	if settings.Ngrok.Enabled {
		t.startTunnel(ctx, settings.Ngrok)
	}

	return t, nil
}

// serveTelemetry serves handler on ln until Shutdown
func serveTelemetry(ctx context.Context, ln net.Listener, handler http.Handler, logger *log.Logger) *telemetry {
	ctx, cancel := context.WithCancel(ctx)

	t := &telemetry{
		server: &http.Server{
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
			BaseContext:  func(net.Listener) context.Context { return ctx },
		},
		addr:   ln.Addr(),
		cancel: cancel,
		logger: logger,
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		logger.Info("telemetry listening", "api", fmt.Sprintf("http://%s/api", t.addr), "ws", fmt.Sprintf("ws://%s/ws", t.addr))

		t.serveOn(ln)
	}()

	return t
}

func (t *telemetry) startTunnel(ctx context.Context, settings config.NgrokSettings) {
	if settings.AuthToken == "" {
		t.logger.Warn("ngrok enabled but no auth token provided (set NGROK_AUTHTOKEN or NGROK_AUTH_TOKEN)")
		return
	}

	var tunnel ngrokConfig.Tunnel
	if settings.Domain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(settings.Domain))
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		t.logger.Info("starting ngrok tunnel", "domain", settings.Domain)

		tun, err := ngrok.Listen(ctx, tunnel, ngrok.WithAuthtoken(settings.AuthToken))
		if err != nil {
			t.logger.Error("failed to start ngrok tunnel", "err", err)
			return
		}

		t.logger.Info("ngrok tunnel established", "url", tun.URL(), "api", tun.URL()+"/api", "ws", tun.URL()+"/ws")

		t.serveOn(tun)
		t.logger.Info("ngrok tunnel closed")
	}()
}

// serveOn serves ln until Shutdown and closes it afterwards, even when
// Shutdown already happened
func (t *telemetry) serveOn(ln net.Listener) {
	defer ln.Close()

	if err := t.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		t.logger.Warn("telemetry listener error", "addr", ln.Addr(), "err", err)
	}
}

// Shutdown stops the server and waits for the serve loops to return
func (t *telemetry) Shutdown(ctx context.Context) error {
	t.cancel()
	err := t.server.Shutdown(ctx)
	t.wg.Wait()
	return err
}
