package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"ptime"
)

var appHelpTemplate = `{{.Name}} - {{.Usage}}

USAGE:
  {{.Name}} [options] command [arguments...]

Everything from the first token that is not a recognised option onward is the
command to run, passed through untouched. {{.Name}} exits with the command's
own exit code, or 130 if the run was interrupted.

OPTIONS:
  {{range .Flags}}{{.}}
  {{end}}
`

// Instance id correlating the debug log lines of one invocation.
var instanceID = gonanoid.MustGenerate("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ", 12)

func init() {
	if os.Getenv("PTIME_DEBUG") != "" {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.FatalLevel)
	}
	logrus.SetOutput(os.Stderr)
}

func main() {
	cli.AppHelpTemplate = appHelpTemplate
	// -v belongs to --verbose here, as in the classic time tools.
	cli.VersionFlag = &cli.BoolFlag{Name: "version"}

	app := cli.NewApp()
	app.Name = "ptime"
	app.Version = "1.0.0"
	app.Usage = "run a command and report its wall-clock, user and system time"
	app.HideHelpCommand = true
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "extended labeled report, with CPU usage and peak memory",
		},
		&cli.BoolFlag{
			Name:    "portable",
			Aliases: []string{"p"},
			Usage:   "portable mode: wall-clock time only, no platform-specific probing",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the report to `FILE` instead of stderr",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   ptime.FormatDefault,
			Usage:   "report format: default or json",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("ptime failed")
	}
}

func run(c *cli.Context) error {
	opts := ptime.Options{
		Command:  c.Args().Slice(),
		Portable: c.Bool("portable"),
	}
	if err := validator.New().Struct(opts); err != nil {
		return cli.Exit("ptime: no command specified", 1)
	}

	format := c.String("format")
	if format != ptime.FormatDefault && format != ptime.FormatJSON {
		return cli.Exit(fmt.Sprintf("ptime: unknown format %q", format), 1)
	}

	log := logrus.WithField("run_id", instanceID)
	log.WithFields(logrus.Fields{
		"platform": runtime.GOOS,
		"mode":     lo.Ternary(opts.Portable, "portable", "optimized"),
		"command":  opts.Command,
	}).Debug("starting child")

	ptime.WatchInterrupts()

	result, err := ptime.Run(opts)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	log.WithFields(logrus.Fields{
		"status":    result.Status,
		"exit_code": result.ExitCode,
		"wall":      result.WallTime,
	}).Debug("child finished")

	report := &ptime.Report{Command: opts.Command, Result: result}
	rendered, err := report.Render(format, c.Bool("verbose"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if err := ptime.Write(rendered, c.String("output")); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return cli.Exit("", result.ProcessExitCode())
}
