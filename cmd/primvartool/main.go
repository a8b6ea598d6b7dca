// primvartool inspects mesh documents and resamples their primitive
// variables between interpolation domains.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/Faultbox/meshresample/internal/config"
	"github.com/Faultbox/meshresample/internal/logger"
	"github.com/Faultbox/meshresample/pkg/math"
	"github.com/Faultbox/meshresample/pkg/mesh"
	"github.com/Faultbox/meshresample/pkg/meshalgo"
	"github.com/Faultbox/meshresample/pkg/meshdoc"
	"github.com/Faultbox/meshresample/pkg/primvar"
)

var errUsage = errors.New("usage")

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, args[0], args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errUsage) {
			logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		}
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config, command string, args []string, out io.Writer) error {
	switch command {
	case "info":
		return cmdInfo(args, out)
	case "plane":
		return cmdPlane(args, out)
	case "resample":
		return cmdResample(cfg, args, out)
	case "dump":
		return cmdDump(args, out)
	case "config":
		return cmdConfig(cfg, args, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `primvartool - mesh primitive variable utility

Usage:
  primvartool [global options] <command> [options]

Global options:
  -config <file>     Config file (default ./primvartool.yaml)
  -debug             Enable debug logging
  -method <m>        Default reduction method: average, min, max
  -log-file <file>   Write JSON logs to a rotating file

Commands:
  info <doc>                                  Show topology and variables
  plane [-w N] [-h N] [-size S] [-o out]      Write a plane document
  resample [-method m] [-o out] <doc> <variable|all> [interpolation]
                                              Resample variables to a domain
  dump <doc> [variable]                       Dump variables in detail
  config init [-o file]                       Write the effective config

Documents are YAML (.yaml, .yml) or TOML (.toml).

Examples:
  primvartool plane -w 4 -h 4 -o plane.yaml
  primvartool -method max config init
  primvartool info plane.yaml
  primvartool resample plane.yaml uv vertex
  primvartool -debug resample -method max -o out.toml plane.yaml all uniform`)
}

func usage(w io.Writer, line string) error {
	fmt.Fprintln(w, "Usage: primvartool "+line)
	return errUsage
}

func cmdInfo(args []string, out io.Writer) error {
	if len(args) < 1 {
		return usage(os.Stderr, "info <doc>")
	}

	m, err := meshdoc.Load(args[0])
	if err != nil {
		return err
	}
	printInfo(out, args[0], m)
	return nil
}

func printInfo(out io.Writer, name string, m *mesh.Mesh) {
	t := m.Topology
	fmt.Fprintf(out, "Mesh:     %s\n", name)
	fmt.Fprintf(out, "Faces:    %d\n", t.NumFaces())
	fmt.Fprintf(out, "Vertices: %d\n", t.NumVertices())
	fmt.Fprintf(out, "Corners:  %d\n", t.NumCorners())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Domain sizes:")
	for _, interp := range primvar.Interpolations() {
		fmt.Fprintf(out, "  %-12s %d\n", interp, t.VariableSize(interp))
	}

	if len(m.Variables) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Variables:")
	for _, name := range m.Names() {
		v := m.Variables[name]
		indexed := ""
		if v.IsIndexed() {
			indexed = fmt.Sprintf(" (indexed, %d values)", v.Data.Len())
		}
		fmt.Fprintf(out, "  %-12s %-12s %-7s %-7s %d%s\n",
			name, v.Interpolation, v.Data.TypeName(), v.Data.Interpretation(), v.Size(), indexed)
	}
}

func cmdPlane(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("plane", flag.ContinueOnError)
	divX := fs.Int("w", 2, "Divisions along X")
	divY := fs.Int("h", 2, "Divisions along Y")
	size := fs.Float64("size", 1, "Edge length of the square plane")
	output := fs.String("o", "", "Output document (default: YAML on stdout)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	m, err := mesh.CreatePlane(math.Splat2(0), math.Splat2(float32(*size)), *divX, *divY)
	if err != nil {
		return err
	}
	logger.Debug("created plane",
		zap.Int("divX", *divX),
		zap.Int("divY", *divY),
		zap.Int("faces", m.Topology.NumFaces()))

	return write(m, *output, meshdoc.YAML, out)
}

func cmdResample(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("resample", flag.ContinueOnError)
	methodName := fs.String("method", "", "Reduction method (default from config)")
	output := fs.String("o", "", "Output document (default: stdout in the input format)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() < 2 {
		return usage(os.Stderr, "resample [-method m] [-o out] <doc> <variable|all> [interpolation]")
	}

	method := cfg.Resample.Method
	if *methodName != "" {
		m, err := primvar.ParseMethod(*methodName)
		if err != nil {
			return err
		}
		method = m
	}

	target := cfg.Resample.Target
	if fs.NArg() > 2 {
		t, err := primvar.ParseInterpolation(fs.Arg(2))
		if err != nil {
			return err
		}
		target = t
	}

	docPath, varName := fs.Arg(0), fs.Arg(1)
	m, err := meshdoc.Load(docPath)
	if err != nil {
		return err
	}

	opts := []meshalgo.Option{meshalgo.WithLogger(logger.Log)}
	if cfg.Resample.CacheMappings {
		opts = append(opts, meshalgo.WithCache(meshalgo.NewMappingCache()))
	}
	r := meshalgo.NewResampler(opts...)

	if varName == "all" {
		skipped, err := r.ResampleAll(m, target, method)
		if err != nil {
			return err
		}
		for _, name := range skipped {
			logger.Warn("skipped variable",
				zap.String("variable", name),
				zap.String("type", m.Variables[name].Data.TypeName()))
		}
		logger.Info("resampled variables",
			zap.Int("resampled", len(m.Variables)-len(skipped)),
			zap.Int("total", len(m.Variables)),
			zap.Stringer("to", target),
			zap.Stringer("method", method))
	} else {
		v, ok := m.Get(varName)
		if !ok {
			return fmt.Errorf("variable %q not found in %s", varName, docPath)
		}
		from := v.Interpolation
		if err := r.Resample(m.Topology, v, target, method); err != nil {
			return fmt.Errorf("variable %q: %w", varName, err)
		}
		logger.Info("resampled variable",
			zap.String("variable", varName),
			zap.Stringer("from", from),
			zap.Stringer("to", target),
			zap.Stringer("method", method))
	}

	format, err := meshdoc.FormatForPath(docPath)
	if err != nil {
		return err
	}
	return write(m, *output, format, out)
}

func cmdDump(args []string, out io.Writer) error {
	if len(args) < 1 {
		return usage(os.Stderr, "dump <doc> [variable]")
	}

	m, err := meshdoc.Load(args[0])
	if err != nil {
		return err
	}

	dumper := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}

	if len(args) > 1 {
		v, ok := m.Get(args[1])
		if !ok {
			return fmt.Errorf("variable %q not found in %s", args[1], args[0])
		}
		fmt.Fprintf(out, "%s: %s\n", args[1], v)
		dumper.Fdump(out, v.Data.Elements(), v.Indices)
		return nil
	}

	for _, name := range m.Names() {
		v := m.Variables[name]
		fmt.Fprintf(out, "%s: %s\n", name, v)
		dumper.Fdump(out, v.Data.Elements(), v.Indices)
	}
	return nil
}

func cmdConfig(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) < 1 || args[0] != "init" {
		return usage(os.Stderr, "config init [-o file]")
	}

	fs := flag.NewFlagSet("config init", flag.ContinueOnError)
	output := fs.String("o", "", "Config file (default: user config directory)")
	if err := fs.Parse(args[1:]); err != nil {
		return errUsage
	}

	path := *output
	if path == "" {
		path = filepath.Join(config.ConfigDir(), config.FileName)
		if err := cfg.Save(); err != nil {
			return err
		}
	} else if err := cfg.SaveTo(path); err != nil {
		return err
	}
	fmt.Fprintln(out, path)
	return nil
}

// write saves m to path, or encodes it to out when path is empty.
func write(m *mesh.Mesh, path string, format meshdoc.Format, out io.Writer) error {
	if path != "" {
		if err := meshdoc.Save(m, path); err != nil {
			return err
		}
		logger.Info("wrote mesh document", zap.String("path", path))
		return nil
	}
	data, err := meshdoc.Encode(m, format)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
