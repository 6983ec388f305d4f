//go:build !tinygo

// Command dashfeed streams demo telemetry to a dashboard: over TCP to the
// simulator's host link, or over a serial port to real hardware. It also
// logs the device liveness heartbeats coming back.
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/tarm/serial"

	"splitdash/split"
	"splitdash/telemetry"
)

func main() {
	var (
		addr     = flag.String("addr", envOr("FEED_ADDR", "localhost:9351"), "TCP address of the simulator host link.")
		port     = flag.String("port", envOr("FEED_PORT", ""), "Serial device of real hardware (overrides -addr).")
		baud     = flag.Int("baud", envOrInt("FEED_BAUD", 115200), "Serial baud rate.")
		interval = flag.Duration("interval", envOrDuration("FEED_INTERVAL", 2*time.Second), "Delay between telemetry rounds.")
		level    = flag.String("log-level", envOr("FEED_LOG_LEVEL", "info"), "Log level (debug, info, warn, error).")
	)
	flag.Parse()

	log := newLogger(*level)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	conn, err := dial(*port, *baud, *addr)
	if err != nil {
		log.Error("connect", "err", err)
		os.Exit(1)
	}
	defer conn.Close()
	log.Info("connected", "port", *port, "addr", *addr)

	go readBack(conn, log)

	g := newGenerator(time.Now().UnixNano())
	t := time.NewTicker(*interval)
	defer t.Stop()

	for {
		frames := g.round()
		for _, f := range frames {
			if _, err := conn.Write(split.AppendWire(nil, f)); err != nil {
				log.Error("write", "err", err)
				os.Exit(1)
			}
			log.Debug("sent", "kind", telemetry.Kind(f[0]).String())
		}
		log.Info("round sent", "frames", len(frames))

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

func dial(port string, baud int, addr string) (io.ReadWriteCloser, error) {
	if port != "" {
		return serial.OpenPort(&serial.Config{Name: port, Baud: baud})
	}
	return net.Dial("tcp", addr)
}

// readBack scans the return stream and logs device heartbeats.
func readBack(r io.Reader, log *slog.Logger) {
	var sc split.WireScanner
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if err != nil {
			return
		}
		for _, b := range buf[:n] {
			frame, ok := sc.Feed(b)
			if !ok {
				continue
			}
			if telemetry.IsHeartbeat(frame) {
				log.Info("device heartbeat")
			} else {
				log.Warn("unexpected frame from device", "len", len(frame))
			}
		}
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	h := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      l,
		TimeFormat: time.Kitchen,
	})
	return slog.New(h).With("app", "dashfeed")
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envOrInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
