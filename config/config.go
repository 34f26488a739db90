// Package config loads the YAML description of where bridged native
// messages should go and builds the matching handler.
//
//	source: libavcodec
//	level: warn
//	backend: zap
//	format: json
//	output: /var/log/app/native.log
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/philipp01105/logbridge/bridge"
	"github.com/philipp01105/logbridge/core"
	"github.com/philipp01105/logbridge/formatter"
	"github.com/philipp01105/logbridge/handler"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Backend names
const (
	BackendConsole = "console"
	BackendZap     = "zap"
	BackendLogrus  = "logrus"
	BackendZerolog = "zerolog"
	BackendKlog    = "klog"
	BackendSlog    = "slog"
)

// Format names
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config describes the host-side handler for bridged messages.
type Config struct {
	// Source names the native library in every record
	Source string `yaml:"source"`
	// Level every bridged message is recorded at
	Level string `yaml:"level"`
	// Backend selects the logging library
	Backend string `yaml:"backend"`
	// Format is text or json; klog ignores it
	Format string `yaml:"format"`
	// Output is stderr, stdout or a file path; klog ignores it
	Output string `yaml:"output"`
}

// Defaults returns the configuration used when nothing is specified
func Defaults() Config {
	return Config{
		Source:  "native",
		Level:   "info",
		Backend: BackendConsole,
		Format:  FormatText,
		Output:  "stderr",
	}
}

// Load reads and parses a YAML config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML, fills in defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	d := Defaults()
	if c.Source == "" {
		c.Source = d.Source
	}
	if c.Level == "" {
		c.Level = d.Level
	}
	if c.Backend == "" {
		c.Backend = d.Backend
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	c.Backend = strings.ToLower(c.Backend)
	c.Format = strings.ToLower(c.Format)
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if _, ok := core.ParseLevel(c.Level); !ok {
		return errors.Errorf("unknown level %q", c.Level)
	}
	switch c.Backend {
	case BackendConsole, BackendZap, BackendLogrus, BackendZerolog, BackendKlog, BackendSlog:
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}
	return nil
}

// Build creates the configured handler wrapped in a Forwarder, ready to
// be installed with bridge.SetHandler.
func (c *Config) Build() (*handler.Forwarder, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := core.ParseLevel(c.Level)

	h, err := c.buildHandler()
	if err != nil {
		return nil, errors.Wrapf(err, "build %s handler", c.Backend)
	}
	return handler.NewForwarder(h, handler.ForwarderConfig{
		Source: c.Source,
		Level:  level,
	}), nil
}

// Install builds the handler and makes it the process-wide bridge handler
func Install(c *Config) (*handler.Forwarder, error) {
	f, err := c.Build()
	if err != nil {
		return nil, err
	}
	bridge.SetHandler(f)
	return f, nil
}

func (c *Config) buildHandler() (handler.Handler, error) {
	switch c.Backend {
	case BackendZap:
		return c.buildZap()
	case BackendKlog:
		return handler.NewKlogHandler(), nil
	}

	w, owned, err := c.openOutput()
	if err != nil {
		return nil, err
	}

	switch c.Backend {
	case BackendLogrus:
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.DebugLevel)
		if c.Format == FormatJSON {
			l.SetFormatter(&logrus.JSONFormatter{})
		}
		return closeWith(handler.NewLogrusHandler(l), w, owned), nil
	case BackendZerolog:
		out := w
		if c.Format == FormatText {
			out = zerolog.ConsoleWriter{Out: w, NoColor: true}
		}
		l := zerolog.New(out).Level(zerolog.DebugLevel)
		return closeWith(handler.NewZerologHandler(l), w, owned), nil
	case BackendSlog:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		var sh slog.Handler
		if c.Format == FormatJSON {
			sh = slog.NewJSONHandler(w, opts)
		} else {
			sh = slog.NewTextHandler(w, opts)
		}
		return closeWith(handler.NewSlogHandler(sh), w, owned), nil
	default:
		var f formatter.Formatter = formatter.NewTextFormatter(formatter.Config{})
		if c.Format == FormatJSON {
			f = formatter.NewJSONFormatter(formatter.Config{})
		}
		return handler.NewConsoleHandler(handler.ConsoleConfig{
			Writer:      w,
			Formatter:   f,
			CloseWriter: owned,
		}), nil
	}
}

func (c *Config) buildZap() (handler.Handler, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zc.OutputPaths = []string{c.Output}
	zc.DisableCaller = true
	zc.DisableStacktrace = true
	if c.Format == FormatText {
		zc.Encoding = "console"
	}
	l, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return handler.NewZapHandler(l), nil
}

// openOutput resolves Output to a writer. owned is true when the caller
// must close it.
func (c *Config) openOutput() (w io.Writer, owned bool, err error) {
	switch c.Output {
	case "stderr":
		return os.Stderr, false, nil
	case "stdout":
		return os.Stdout, false, nil
	}
	f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, false, errors.Wrap(err, "open output")
	}
	return f, true, nil
}

// closingHandler closes an owned output after the wrapped handler.
type closingHandler struct {
	handler.Handler
	c io.Closer
}

func (h closingHandler) Close() error {
	err := h.Handler.Close()
	if cerr := h.c.Close(); err == nil {
		err = cerr
	}
	return err
}

func closeWith(h handler.Handler, w io.Writer, owned bool) handler.Handler {
	c, ok := w.(io.Closer)
	if !owned || !ok {
		return h
	}
	return closingHandler{Handler: h, c: c}
}
