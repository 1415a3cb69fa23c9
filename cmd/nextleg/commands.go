package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/BaSui01/nextleg/client"
	"github.com/BaSui01/nextleg/config"
	"github.com/BaSui01/nextleg/internal/telemetry"
	"github.com/BaSui01/nextleg/types"
)

// app carries the state of one CLI invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	flags    cliFlags
	logger   *zap.Logger
	direct   *client.Direct
	balanced *client.Balanced
}

type cliFlags struct {
	configPath    string
	balanced      bool
	ref           string
	autoRef       bool
	webhook       string
	expire        int
	loadBalanceID string
	kind          string
}

func (f *cliFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "Path to config file")
	fs.BoolVar(&f.balanced, "balanced", false, "Use the load balancer")
	fs.StringVar(&f.ref, "ref", "", "Correlation string echoed on the webhook")
	fs.BoolVar(&f.autoRef, "auto-ref", false, "Generate a random correlation string")
	fs.StringVar(&f.webhook, "webhook", "", "Override the account webhook")
	fs.IntVar(&f.expire, "expire", 0, "Minutes the progress poll may wait")
	fs.StringVar(&f.loadBalanceID, "load-balance-id", "", "Load-balance id from a balanced submission")
	fs.StringVar(&f.kind, "kind", "", "Decode the progress payload as this kind")
}

type handler func(ctx context.Context, a *app, args []string) (any, error)

// command is one API-backed subcommand. A nil balanced handler means the
// load balancer has no such endpoint.
type command struct {
	minArgs  int
	usage    string
	direct   handler
	balanced handler
}

var errUsage = errors.New("usage")

var commands = map[string]command{
	"imagine": {
		minArgs: 1,
		usage:   "imagine <prompt>",
		direct: func(ctx context.Context, a *app, args []string) (any, error) {
			return a.direct.Imagine(ctx, strings.Join(args, " "), a.requestOptions()...)
		},
		balanced: func(ctx context.Context, a *app, args []string) (any, error) {
			return a.balanced.Imagine(ctx, strings.Join(args, " "), a.requestOptions()...)
		},
	},
	"img2img": {
		minArgs: 2,
		usage:   "img2img <imageUrl> <prompt>",
		direct: func(ctx context.Context, a *app, args []string) (any, error) {
			return a.direct.Img2Img(ctx, strings.Join(args[1:], " "), args[0], a.requestOptions()...)
		},
	},
	"describe": {
		minArgs: 1,
		usage:   "describe <imageUrl>",
		direct: func(ctx context.Context, a *app, args []string) (any, error) {
			return a.direct.Describe(ctx, args[0], a.requestOptions()...)
		},
		balanced: func(ctx context.Context, a *app, args []string) (any, error) {
			return a.balanced.Describe(ctx, args[0], a.requestOptions()...)
		},
	},
	"button": {
		minArgs: 2,
		usage:   "button <button> <buttonMessageId>",
		direct: func(ctx context.Context, a *app, args []string) (any, error) {
			return a.direct.Button(ctx, types.Button(args[0]), args[1], a.requestOptions()...)
		},
		balanced: func(ctx context.Context, a *app, args []string) (any, error) {
			return a.balanced.Button(ctx, types.Button(args[0]), args[1], a.flags.loadBalanceID, a.requestOptions()...)
		},
	},
	"seed": {
		minArgs: 1,
		usage:   "seed <messageId>",
		direct: func(ctx context.Context, a *app, args []string) (any, error) {
			return a.direct.GetSeed(ctx, args[0])
		},
	},
	"slash": {
		minArgs: 1,
		usage:   "slash <relax|fast|private|stealth>",
		direct: func(ctx context.Context, a *app, args []string) (any, error) {
			return a.direct.SlashCommand(ctx, types.SlashCommand(args[0]), a.requestOptions()...)
		},
	},
	"settings": {
		minArgs: 1,
		usage:   "settings get | settings set <name>",
		direct: func(ctx context.Context, a *app, args []string) (any, error) {
			switch args[0] {
			case "get":
				return a.direct.GetSettings(ctx)
			case "set":
				if len(args) < 2 {
					return nil, errUsage
				}
				return a.direct.SetSettings(ctx, types.Setting(strings.Join(args[1:], " ")), a.requestOptions()...)
			default:
				return nil, errUsage
			}
		},
	},
	"info": {
		usage: "info",
		direct: func(ctx context.Context, a *app, args []string) (any, error) {
			return a.direct.GetInfo(ctx)
		},
	},
	"progress": {
		minArgs: 1,
		usage:   "progress <messageId>",
		direct: func(ctx context.Context, a *app, args []string) (any, error) {
			m, err := a.direct.GetMessageAndProgress(ctx, args[0], a.flags.expire)
			if err != nil {
				return nil, err
			}
			return a.progressOutput(m)
		},
		balanced: func(ctx context.Context, a *app, args []string) (any, error) {
			m, err := a.balanced.GetMessageAndProgress(ctx, args[0], a.flags.loadBalanceID, a.flags.expire)
			if err != nil {
				return nil, err
			}
			return a.progressOutput(m)
		},
	},
	"upscale-url": {
		minArgs: 2,
		usage:   "upscale-url <button> <buttonMessageId>",
		direct: func(ctx context.Context, a *app, args []string) (any, error) {
			return a.direct.UpscaleImgURL(ctx, types.Button(args[0]), args[1])
		},
	},
}

// =============================================================================
// 🖥️ 命令执行
// =============================================================================

func (a *app) runCommand(name string, cmd command, args []string) int {
	if name == "settings" && len(args) > 0 && args[0] == "list" {
		return a.listSettings()
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	a.flags.register(fs)

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return 2
	}
	if len(positional) < cmd.minArgs {
		fmt.Fprintf(a.stderr, "Usage: nextleg %s\n", cmd.usage)
		return 2
	}

	// 加载配置
	cfg, err := config.NewLoader().
		WithConfigPath(a.flags.configPath).
		WithValidator((*config.Config).Validate).
		Load()
	if err != nil {
		fmt.Fprintf(a.stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if a.flags.balanced {
		cfg.API.Balanced = true
	}

	fn := cmd.direct
	if cfg.API.Balanced {
		fn = cmd.balanced
	}
	if fn == nil {
		fmt.Fprintf(a.stderr, "Command %q is not available on the load balancer\n", name)
		return 2
	}

	// 初始化日志
	a.logger = initLogger(cfg.Log)
	defer func() { _ = a.logger.Sync() }()

	providers, err := telemetry.Init(cfg.Telemetry, Version, a.logger)
	if err != nil {
		a.logger.Warn("failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(ctx); err != nil {
			a.logger.Warn("telemetry shutdown failed", zap.Error(err))
		}
	}()

	opts := []client.Option{
		client.WithLogger(a.logger),
		client.WithTracerProvider(providers.TracerProvider()),
		client.WithMeterProvider(providers.MeterProvider()),
	}
	var reg *prometheus.Registry
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		opts = append(opts, client.WithMetrics(reg))
	}

	c := client.NewFromConfig(cfg, opts...)
	a.direct, a.balanced = c.Direct, c.Balanced

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := fn(ctx, a, positional)
	if reg != nil {
		if err := writeMetrics(a.stderr, reg); err != nil {
			a.logger.Warn("failed to write metrics", zap.Error(err))
		}
	}
	if errors.Is(err, errUsage) {
		fmt.Fprintf(a.stderr, "Usage: nextleg %s\n", cmd.usage)
		return 2
	}
	if err != nil {
		a.printError(err)
		return 1
	}

	if err := writeJSON(a.stdout, result); err != nil {
		fmt.Fprintf(a.stderr, "Failed to write output: %v\n", err)
		return 1
	}
	return 0
}

// requestOptions maps --ref, --auto-ref and --webhook onto per-call options.
func (a *app) requestOptions() []client.RequestOption {
	var opts []client.RequestOption
	ref := a.flags.ref
	if ref == "" && a.flags.autoRef {
		ref = uuid.NewString()
		a.logger.Info("generated ref", zap.String("ref", ref))
	}
	if ref != "" {
		opts = append(opts, client.WithRef(ref))
	}
	if a.flags.webhook != "" {
		opts = append(opts, client.WithWebhookOverride(a.flags.webhook))
	}
	return opts
}

// progressOutput decodes the payload when --kind is given.
func (a *app) progressOutput(m *types.MessageAndProgress) (any, error) {
	if a.flags.kind == "" {
		return m, nil
	}
	k := types.Kind(a.flags.kind)
	if !k.Valid() {
		return nil, fmt.Errorf("unknown kind %q", a.flags.kind)
	}
	out := decodedProgress{Progress: m.Progress, Kind: k}
	if m.Response == nil {
		return out, nil
	}
	p, err := m.Decode(k)
	if err != nil {
		return nil, err
	}
	out.Payload = p
	return out, nil
}

type decodedProgress struct {
	Progress types.Progress `json:"progress"`
	Kind     types.Kind     `json:"kind"`
	Payload  types.Payload  `json:"payload,omitempty"`
}

func (a *app) printError(err error) {
	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	if e, ok := types.AsError(err); ok && e.Body != "" {
		fmt.Fprintf(a.stderr, "Response: %s\n", e.Body)
	}
}

// parseInterspersed lets flags follow positional arguments, as in
// `nextleg imagine "a cat" --auto-ref`. Everything after "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// =============================================================================
// 📋 枚举列表
// =============================================================================

func (a *app) listButtons() int {
	for _, b := range types.Buttons() {
		fmt.Fprintln(a.stdout, b)
	}
	return 0
}

func (a *app) listCommands() int {
	for _, c := range types.SlashCommands() {
		fmt.Fprintln(a.stdout, c)
	}
	return 0
}

func (a *app) listSettings() int {
	for _, s := range types.Settings() {
		fmt.Fprintln(a.stdout, s)
	}
	return 0
}
