package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/mcp-training/carsimulator/api"
	"github.com/wricardo/mcp-training/carsimulator/game/config"
	"github.com/wricardo/mcp-training/carsimulator/game/engine"
	"github.com/wricardo/mcp-training/carsimulator/game/provider"
	"github.com/wricardo/mcp-training/carsimulator/game/service"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "Car Simulator" {
		t.Errorf("Unexpected app name %s", AppName)
	}
}

func TestCommandLayout(t *testing.T) {
	cmd := newCommand(strings.NewReader(""), io.Discard, io.Discard)

	if cmd.Version != Version {
		t.Errorf("Expected version %s, got %s", Version, cmd.Version)
	}

	want := map[string]bool{"tui": false, "mcp": false, "env": false}
	for _, sub := range cmd.Commands {
		want[sub.Name] = true
	}
	for name, found := range want {
		if !found {
			t.Errorf("Missing subcommand %s", name)
		}
	}
}

func TestRootCommandPlaysOffline(t *testing.T) {
	var out bytes.Buffer
	cmd := newCommand(strings.NewReader("2\n3\n7\n"), &out, io.Discard)

	if err := cmd.Run(context.Background(), []string{"carsim", "--offline"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		engine.WelcomeMessage,
		provider.StaticDriverName,
		"now faces East",
		"drives forward heading East",
		engine.FarewellMessage,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in output:\n%s", want, text)
		}
	}
}

func TestRootCommandEndOfInput(t *testing.T) {
	var out bytes.Buffer
	cmd := newCommand(strings.NewReader(""), &out, io.Discard)

	if err := cmd.Run(context.Background(), []string{"carsim", "--offline"}); err != nil {
		t.Fatalf("End of input should quit cleanly, got %v", err)
	}
	if !strings.Contains(out.String(), engine.FarewellMessage) {
		t.Error("Expected farewell on end of input")
	}
}

func TestEnvCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newCommand(strings.NewReader(""), &out, io.Discard)

	if err := cmd.Run(context.Background(), []string{"carsim", "env"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, want := range []string{"CARSIM_PROVIDER_URL", "CARSIM_FALLBACK", "CARSIM_TELEMETRY_ADDR"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected %s in env listing", want)
		}
	}
}

func TestLoadSettingsFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		env   map[string]string
		check func(t *testing.T, s *config.Settings)
	}{
		{
			name: "defaults",
			args: []string{"carsim"},
			check: func(t *testing.T, s *config.Settings) {
				if s.LogLevel != "warn" || s.Provider.Offline || s.TelemetryEnabled() {
					t.Errorf("Unexpected defaults %+v", s)
				}
			},
		},
		{
			name: "flags override",
			args: []string{"carsim", "--debug", "--offline", "--fallback", "POOL", "--telemetry-addr", "localhost:9090"},
			check: func(t *testing.T, s *config.Settings) {
				if s.LogLevel != "debug" {
					t.Errorf("Expected debug, got %s", s.LogLevel)
				}
				if !s.Provider.Offline {
					t.Error("Expected offline")
				}
				if s.Provider.Fallback != "pool" {
					t.Errorf("Expected pool, got %s", s.Provider.Fallback)
				}
				if s.Telemetry.Addr != "localhost:9090" {
					t.Errorf("Expected localhost:9090, got %s", s.Telemetry.Addr)
				}
			},
		},
		{
			name: "environment",
			args: []string{"carsim"},
			env:  map[string]string{"CARSIM_OFFLINE": "true", "CARSIM_LOG_LEVEL": "info"},
			check: func(t *testing.T, s *config.Settings) {
				if !s.Provider.Offline || s.LogLevel != "info" {
					t.Errorf("Environment not applied %+v", s)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var got *config.Settings
			cmd := newCommand(strings.NewReader(""), io.Discard, io.Discard)
			cmd.Action = func(ctx context.Context, c *cli.Command) error {
				s, err := loadSettings(c)
				got = s
				return err
			}

			if err := cmd.Run(context.Background(), tt.args); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestLoadSettingsRejectsBadFallback(t *testing.T) {
	cmd := newCommand(strings.NewReader(""), io.Discard, io.Discard)

	err := cmd.Run(context.Background(), []string{"carsim", "--offline", "--fallback", "bogus"})
	if err == nil {
		t.Fatal("Expected invalid settings error")
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carsim.yaml")
	content := "log_level: error\nprovider:\n  fallback: pool\n  offline: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var out bytes.Buffer
	cmd := newCommand(strings.NewReader("7\n"), &out, io.Discard)
	if err := cmd.Run(context.Background(), []string{"carsim", "--config", path}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if strings.Contains(out.String(), provider.StaticDriverName) {
		t.Error("Expected a pool driver, got the static one")
	}
}

func TestNewDriverProvider(t *testing.T) {
	quiet := log.New(io.Discard)

	offline := &config.Settings{Provider: config.ProviderSettings{Offline: true, Fallback: "static"}}
	p, err := newDriverProvider(offline, quiet)
	if err != nil {
		t.Fatalf("newDriverProvider failed: %v", err)
	}
	if _, ok := p.(*provider.FallbackProvider); !ok {
		t.Errorf("Expected FallbackProvider offline, got %T", p)
	}

	online := &config.Settings{Provider: config.ProviderSettings{URL: "http://127.0.0.1:1/", Timeout: time.Second, Fallback: "static"}}
	p, err = newDriverProvider(online, quiet)
	if err != nil {
		t.Fatalf("newDriverProvider failed: %v", err)
	}
	if _, ok := p.(*provider.RandomUserProvider); !ok {
		t.Errorf("Expected RandomUserProvider online, got %T", p)
	}

	// Unreachable endpoint still yields a driver
	if d := p.GetRandomDriver(context.Background()); d == nil || d.Name != provider.StaticDriverName {
		t.Errorf("Expected fallback driver, got %+v", d)
	}

	if _, err := newDriverProvider(&config.Settings{Provider: config.ProviderSettings{Fallback: "bogus"}}, quiet); err == nil {
		t.Error("Expected error for unknown fallback")
	}
}

func TestServeTelemetry(t *testing.T) {
	quiet := log.New(io.Discard)
	svc := service.NewGameService(provider.NewFallbackProvider(nil), service.WithLogger(quiet))
	ctx := context.Background()
	svc.Start(ctx)
	svc.Execute(ctx, "1")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}

	tel := serveTelemetry(ctx, ln, api.NewServer(svc, nil), quiet)

	resp, err := http.Get("http://" + tel.addr.String() + "/api/state")
	if err != nil {
		t.Fatalf("GET /api/state failed: %v", err)
	}
	defer resp.Body.Close()

	var state engine.GameState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if state.Car.Direction != engine.West {
		t.Errorf("Expected West, got %v", state.Car.Direction)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := tel.Shutdown(shutdownCtx); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}

	if _, err := http.Get("http://" + tel.addr.String() + "/api/health"); err == nil {
		t.Error("Expected server to be stopped")
	}
}

// closeCountingListener records how often Close is called
type closeCountingListener struct {
	net.Listener
	closes int
}

func (l *closeCountingListener) Close() error {
	l.closes++
	return l.Listener.Close()
}

func TestServeOnClosesListenerAfterShutdown(t *testing.T) {
	quiet := log.New(io.Discard)
	ctx := context.Background()

	primary, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	tel := serveTelemetry(ctx, primary, http.NotFoundHandler(), quiet)

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := tel.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	// A tunnel that comes up after shutdown is refused and still closed
	late, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	tunnel := &closeCountingListener{Listener: late}

	done := make(chan struct{})
	go func() {
		tel.serveOn(tunnel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("serveOn kept serving after Shutdown")
	}

	if tunnel.closes == 0 {
		t.Error("Expected the listener to be closed")
	}
	if _, err := net.Dial("tcp", late.Addr().String()); err == nil {
		t.Error("Expected the late listener to refuse connections")
	}
}

func TestIgnoreCancel(t *testing.T) {
	if err := ignoreCancel(context.Canceled); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
	if err := ignoreCancel(io.EOF); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}
	if err := ignoreCancel(nil); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
}
