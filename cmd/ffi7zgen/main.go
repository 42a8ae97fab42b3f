// Command ffi7zgen writes the native declarations and Go glue for the
// interfaces in pkg/idl.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lib7zip/pkg/codegen"
	"lib7zip/pkg/env"
	"lib7zip/pkg/idl"
	"lib7zip/pkg/logger"
)

var opts = struct {
	OutDir  string
	Package string
	Module  string
	Check   bool
}{}

var Command = &cobra.Command{
	Use:   "ffi7zgen",
	Short: "Generate the vtable glue for the 7-Zip plugin interfaces",
	Long: `ffi7zgen renders the C headers, vtable literals and cgo entry points for
every interface in the interface model.

Usage examples:

1. Regenerate the checked-in files:

	go generate ./pkg/ffi7z

2. Verify that the checked-in files are current:

	ffi7zgen -o pkg/ffi7z --check
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := codegen.New(idl.Default, codegen.Options{Package: opts.Package, Module: opts.Module})
		if err != nil {
			return fmt.Errorf("invalid interface model: %w", err)
		}
		files, err := g.Files()
		if err != nil {
			return err
		}
		if opts.Check {
			return check(files)
		}
		return write(files)
	},
}

func init() {
	flags := Command.Flags()
	flags.StringVarP(&opts.OutDir, "out", "o", ".", "Directory to write the generated files to.")
	flags.StringVar(&opts.Package, "package", codegen.DefaultOptions.Package, "Go package name of the generated files.")
	flags.StringVar(&opts.Module, "module", codegen.DefaultOptions.Module, "Import path prefix of the sibling packages.")
	flags.BoolVar(&opts.Check, "check", false, "Fail if any generated file differs from the one on disk instead of writing.")
}

func write(files []codegen.File) error {
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return err
	}
	for _, f := range files {
		path := filepath.Join(opts.OutDir, f.Name)
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Debug("Generated file", "path", path, "bytes", len(f.Content))
	}
	logger.Info("Generation complete", "files", len(files), "dir", opts.OutDir)
	return nil
}

func check(files []codegen.File) error {
	var stale []string
	for _, f := range files {
		path := filepath.Join(opts.OutDir, f.Name)
		onDisk, err := os.ReadFile(path)
		if err != nil || string(onDisk) != string(f.Content) {
			stale = append(stale, f.Name)
		}
	}
	if len(stale) > 0 {
		return fmt.Errorf("stale generated files in %s: %v", opts.OutDir, stale)
	}
	return nil
}

func main() {
	logger.Init(env.LogLevel())
	if err := Command.Execute(); err != nil {
		logger.Fatal("ffi7zgen failed", "err", err)
	}
}
