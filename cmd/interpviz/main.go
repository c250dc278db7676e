package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/Maxime2/interpolation"
	"github.com/Maxime2/interpolation/internal/api"
	"github.com/Maxime2/interpolation/internal/config"
	"github.com/Maxime2/interpolation/internal/logging"
)

var Version = "dev" // Injected via ldflags during build

const usage = `usage: interpviz [-config file] <command> [flags]

commands:
  methods             list the interpolation methods
  eval                evaluate every active method at -x
  curve               print sampled curve points for -method
  error               print error metrics per method
  export              write the points as JSON
  plot                render -out as .png, .ps/.eps or .json (point list)
  serve               start the HTTP API
  run <job.gcfg>      execute a batch job file
`

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetGlobal(logger)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	app := &cli{cfg: cfg, logger: logger, out: os.Stdout}
	if err := app.run(flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "interpviz: %v\n", err)
		os.Exit(1)
	}
}

type cli struct {
	cfg    *config.Config
	logger *logging.Logger
	out    io.Writer
}

func (c *cli) run(cmd string, args []string) error {
	switch cmd {
	case "methods":
		return c.methods()
	case "eval":
		return c.eval(args)
	case "curve":
		return c.curve(args)
	case "error":
		return c.errorMetrics(args)
	case "export":
		return c.export(args)
	case "plot":
		return c.plot(args)
	case "serve":
		return c.serve()
	case "run":
		if len(args) != 1 {
			return errors.New("run: expected one job file")
		}
		return c.job(args[0])
	}
	return fmt.Errorf("unknown command %q", cmd)
}

// pointFlags are shared by every command that reads points.
type pointFlags struct {
	file   *string
	inline *string
	sample *bool
}

func addPointFlags(fs *flag.FlagSet) pointFlags {
	return pointFlags{
		file:   fs.String("points", "", "points file (.json, or whitespace separated x y columns)"),
		inline: fs.String("p", "", `inline points, e.g. "0,0 1,1 2,4"`),
		sample: fs.Bool("sample", false, "use the bundled sample points"),
	}
}

func (pf pointFlags) load() ([]interpolation.Point, error) {
	switch {
	case *pf.sample:
		return interpolation.Sample(), nil
	case *pf.inline != "":
		return interpolation.ParsePoints(*pf.inline)
	case *pf.file != "":
		return interpolation.ImportFile(*pf.file)
	}
	return nil, errors.New("no points given: use -points, -p or -sample")
}

func (c *cli) methodsFlag(fs *flag.FlagSet) *string {
	return fs.String("methods", "", "comma separated methods (default from config)")
}

func (c *cli) resolveMethods(list string) ([]interpolation.Method, error) {
	if list == "" {
		return c.cfg.ActiveMethods(), nil
	}
	return interpolation.ParseMethods(strings.Split(list, ","))
}

func (c *cli) methods() error {
	for _, m := range interpolation.Methods() {
		fmt.Fprintf(c.out, "%-16s %-18s %s\n", m, m.Name(), m.Description())
	}
	return nil
}

func (c *cli) eval(args []string) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	pf := addPointFlags(fs)
	methods := c.methodsFlag(fs)
	x := fs.Float64("x", 0, "x to evaluate at")
	strict := fs.Bool("strict", false, "report duplicate x and unequal spacing instead of evaluating")
	if err := fs.Parse(args); err != nil {
		return err
	}
	points, err := pf.load()
	if err != nil {
		return err
	}
	ms, err := c.resolveMethods(*methods)
	if err != nil {
		return err
	}
	if len(points) < 2 {
		c.logger.Warn("Fewer than two points; results are sentinels", "points", len(points))
	}

	values := interpolation.EvaluateAll(points, *x)
	sortedPoints := interpolation.NewFromPoints(points).Sorted()
	for _, m := range ms {
		if *strict {
			if err := interpolation.Validate(sortedPoints, m); err != nil {
				fmt.Fprintf(c.out, "%-18s %s (%v)\n", m.Name(), interpolation.Undefined, err)
				continue
			}
		}
		fmt.Fprintf(c.out, "%-18s %s\n", m.Name(), interpolation.Format(values[m]))
	}
	return nil
}

func (c *cli) curve(args []string) error {
	fs := flag.NewFlagSet("curve", flag.ContinueOnError)
	pf := addPointFlags(fs)
	method := fs.String("method", "lagrange", "method to sample")
	resolution := fs.Int("resolution", 0, "number of steps (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	points, err := pf.load()
	if err != nil {
		return err
	}
	m, err := interpolation.ParseMethod(*method)
	if err != nil {
		return err
	}
	opts := c.cfg.CurveOptions()
	if *resolution > 0 {
		opts.Resolution = *resolution
	}
	n := 0
	for p := range interpolation.Curve(points, m, opts) {
		fmt.Fprintf(c.out, "%g\t%g\n", p.X, p.Y)
		n++
	}
	c.logger.Debug("Curve sampled", "method", m.String(), "samples", n)
	return nil
}

func (c *cli) errorMetrics(args []string) error {
	fs := flag.NewFlagSet("error", flag.ContinueOnError)
	pf := addPointFlags(fs)
	methods := c.methodsFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	points, err := pf.load()
	if err != nil {
		return err
	}
	ms, err := c.resolveMethods(*methods)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%-18s %-14s %-14s %-14s\n", "method", "max", "mean", "rms")
	for _, m := range ms {
		e := interpolation.CalculateError(points, m)
		fmt.Fprintf(c.out, "%-18s %-14s %-14s %-14s\n", m.Name(),
			interpolation.Format(e.Max), interpolation.Format(e.Mean), interpolation.Format(e.RMS))
	}
	return nil
}

func (c *cli) export(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	pf := addPointFlags(fs)
	out := fs.String("out", "", "output file ("+interpolation.ExportFileName+" if a directory, stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	points, err := pf.load()
	if err != nil {
		return err
	}
	if *out == "" {
		return interpolation.Export(c.out, points)
	}
	path := *out
	if st, err := os.Stat(path); err == nil && st.IsDir() {
		path = filepath.Join(path, interpolation.ExportFileName)
	}
	if err := interpolation.ExportFile(path, points); err != nil {
		return err
	}
	c.logger.Info("Exported points", "path", path, "points", len(points))
	return nil
}

func (c *cli) plot(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ContinueOnError)
	pf := addPointFlags(fs)
	methods := c.methodsFlag(fs)
	out := fs.String("out", "interpolation.png", "output file, .png, .ps/.eps or .json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	points, err := pf.load()
	if err != nil {
		return err
	}
	ms, err := c.resolveMethods(*methods)
	if err != nil {
		return err
	}
	return c.render(*out, points, ms, 0)
}

// render draws into memory first so a failed plot leaves no file behind.
// The extension picks the format: .ps/.eps PostScript, .json the point list,
// anything else PNG.
func (c *cli) render(path string, points []interpolation.Point, ms []interpolation.Method, resolution int) error {
	var buf bytes.Buffer
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ps", ".eps":
		if resolution <= 0 {
			resolution = c.cfg.Chart.Resolution
		}
		err = interpolation.DrawPS(&buf, points, ms, resolution)
	case ".json":
		err = interpolation.Export(&buf, points)
	default:
		opts := c.cfg.ChartOptions()
		if resolution > 0 {
			opts.Resolution = resolution
		}
		err = interpolation.RenderPNG(&buf, points, ms, opts)
	}
	if err == nil {
		err = os.WriteFile(path, buf.Bytes(), 0644)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	c.logger.Info("Wrote plot", "path", path, "methods", len(ms))
	return nil
}

// relativeTo resolves a relative path against the directory of file.
func relativeTo(file, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(file), path)
}

func (c *cli) job(fname string) error {
	job, err := config.LoadJob(fname)
	if err != nil {
		return err
	}
	points, err := interpolation.ImportFile(relativeTo(fname, job.Points))
	if err != nil {
		return err
	}
	ms := job.Methods()
	c.logger.Info("Running job", "job", fname, "points", len(points), "methods", len(ms))

	for _, x := range job.X {
		values := interpolation.EvaluateAll(points, x)
		for _, m := range ms {
			fmt.Fprintf(c.out, "x=%g\t%-18s %s\n", x, m.Name(), interpolation.Format(values[m]))
		}
	}
	for _, m := range ms {
		e := interpolation.CalculateError(points, m)
		fmt.Fprintf(c.out, "error\t%-18s max=%s mean=%s rms=%s\n", m.Name(),
			interpolation.Format(e.Max), interpolation.Format(e.Mean), interpolation.Format(e.RMS))
	}
	if job.Output != "" {
		return c.render(relativeTo(fname, job.Output), points, ms, job.Resolution)
	}
	return nil
}

func (c *cli) serve() error {
	app := api.New(c.logger, c.cfg, Version)

	errCh := make(chan error, 1)
	go func() {
		c.logger.Info("HTTP API listening", "addr", c.cfg.Server.Addr(), "version", Version)
		errCh <- app.Listen(c.cfg.Server.Addr())
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	c.logger.Info("Shutting down HTTP API")
	return app.ShutdownWithTimeout(5 * time.Second)
}
