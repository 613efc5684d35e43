package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/cmdregistry"
	listcmd "github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/commands/list"
	preflightcmd "github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/commands/preflight"
	showcmd "github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/commands/show"
	verifycmd "github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/commands/verify"
	"github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/config"
	"github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/rounds"
	"github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/runner"
)

func usage() {
	fmt.Fprintf(os.Stderr, `roundctl — dispatch a design review round to the sequence viewer
Usage: roundctl [flags] <round-key> [options passed to the viewer]
       roundctl [flags] <command> [args]

Rounds:
  roundctl 5              view every design from round 5
  roundctl 5 --color      same, extra options forwarded to the viewer verbatim

Commands:
  list                    list the curated rounds
  show <round-key>        print a round's designs without launching the viewer
  verify                  self-check the round table
  preflight               host checks: viewer on PATH, config file

Flags (recognized before the round key only; everything after it is forwarded):
  --tool NAME             viewer to launch (default: %s)
  --config PATH           config file (default: ~/.config/roundctl/config.yaml)
  --dry-run               print the viewer invocation instead of launching it

Environment:
  ROUNDCTL_TOOL           viewer override
  ROUNDCTL_CONFIG         config file override
  ROUNDCTL_LOG_LEVEL      log level (default: warning)
  ROUNDCTL_DEBUG=1        print executed commands
`, config.DefaultTool)
}

// invocation is the pre-parsed command line. rest starts at the first
// positional argument; nothing after that point is interpreted here.
type invocation struct {
	tool   string
	config string
	dryRun bool
	help   bool
	rest   []string
}

func parseArgs(args []string) (invocation, error) {
	var inv invocation
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--tool":
			if i+1 >= len(args) {
				return inv, fmt.Errorf("--tool requires value")
			}
			inv.tool = args[i+1]
			i++
		case "--config":
			if i+1 >= len(args) {
				return inv, fmt.Errorf("--config requires value")
			}
			inv.config = args[i+1]
			i++
		case "--dry-run":
			inv.dryRun = true
		case "-h", "--help", "help":
			inv.help = true
			return inv, nil
		default:
			inv.rest = args[i:]
			return inv, nil
		}
	}
	return inv, nil
}

func main() {
	inv, err := parseArgs(os.Args[1:])
	if err != nil {
		die(err.Error())
	}
	if inv.help {
		usage()
		return
	}

	cfgPath := config.Path(inv.config)
	cfg, err := config.Read(cfgPath)
	if err != nil {
		die("config: " + err.Error())
	}
	setupLogging(cfg)
	tool := cfg.ResolveTool(inv.tool)

	if len(inv.rest) == 0 {
		usage()
		return
	}

	cmd := inv.rest[0]
	sub := inv.rest[1:]
	registry := cmdregistry.New()
	listcmd.Register(registry)
	showcmd.Register(registry)
	verifycmd.Register(registry)
	preflightcmd.Register(registry)
	ctx := &cmdregistry.Context{
		Tool:       tool,
		ConfigPath: cfgPath,
		Config:     cfg,
		Args:       sub,
	}
	if handler, ok := registry.Lookup(cmd); ok {
		if err := handler(ctx); err != nil {
			fail(err.Error())
		}
		return
	}

	dispatch(inv.dryRun, tool, cfg, cmd, sub)
}

// dispatch resolves key and forwards the round to the viewer. Unknown and
// disabled rounds never reach the viewer.
func dispatch(dry bool, tool string, cfg config.Config, key string, passthrough []string) {
	rd, err := rounds.Resolve(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s.\n", err)
		if errors.Is(err, rounds.ErrUnknownRound) {
			if hint, ok := rounds.Suggest(key); ok {
				fmt.Fprintf(os.Stderr, "(did you mean round '%s'?)\n", hint)
			}
		}
		os.Exit(1)
	}
	argv := append(append([]string{}, cfg.ToolArgs...), rd.Argv(passthrough)...)
	log.WithFields(log.Fields{
		"round":   rd.Key,
		"designs": len(rd.Designs),
		"tool":    tool,
	}).Debug("dispatching round")
	runner.Tool(dry, tool, argv...)
}

func setupLogging(cfg config.Config) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	level := cfg.ResolveLogLevel()
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("unknown log level %q, falling back to warning", level)
		parsed = log.WarnLevel
	}
	log.SetLevel(parsed)
}

func die(msg string) { fmt.Fprintln(os.Stderr, msg); os.Exit(2) }

func fail(msg string) { fmt.Fprintln(os.Stderr, msg); os.Exit(1) }
