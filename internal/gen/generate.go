package gen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNoTypes = errors.New("no types requested")
	ErrLoad    = errors.New("cannot load package")
)

// Config selects the package and types to generate for.
type Config struct {
	// Dir is the package directory. Empty means the working directory.
	Dir string
	// Types lists the struct type names to generate methods for.
	Types []string
	// Output is the file to write. Defaults to <first type>_tablefy.go,
	// lowercased, in the package directory.
	Output string
	// Tags are build tags applied while loading the package.
	Tags []string
}

// Result describes a completed generation.
type Result struct {
	Output  string
	Structs []Struct
	// Warnings holds type errors found while loading. They do not stop
	// generation because the package commonly fails to type-check until the
	// generated methods exist.
	Warnings []error
}

// Generate loads the package, inspects the requested types, and writes the
// generated file. The output file is read as empty while loading, so a copy
// left over from an older version of the types does not fail the load.
func Generate(ctx context.Context, cfg Config) (Result, error) {
	if len(cfg.Types) == 0 {
		return Result{}, ErrNoTypes
	}
	listed, err := list(ctx, cfg.Dir, cfg.Tags)
	if err != nil {
		return Result{}, err
	}

	output := cfg.Output
	if output == "" {
		output = filepath.Join(packageDir(listed, cfg.Dir), strings.ToLower(cfg.Types[0])+"_tablefy.go")
	}
	abs, err := filepath.Abs(output)
	if err != nil {
		return Result{}, fmt.Errorf("resolve %s: %w", output, err)
	}
	overlay := map[string][]byte{abs: []byte("package " + listed.Name + "\n")}

	pkg, warnings, err := Load(ctx, cfg.Dir, cfg.Tags, overlay)
	if err != nil {
		return Result{}, err
	}
	structs, err := Inspect(pkg.Types, cfg.Types...)
	if err != nil {
		return Result{}, err
	}
	src, err := Render(output, pkg.Name, structs)
	if err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", output, err)
	}
	return Result{Output: output, Structs: structs, Warnings: warnings}, nil
}

// Load loads and type-checks the package in dir, reading the files in
// overlay from memory. Type errors are returned as warnings; listing and
// syntax errors fail the load.
func Load(ctx context.Context, dir string, tags []string, overlay map[string][]byte) (*packages.Package, []error, error) {
	pkg, err := loadOne(ctx, dir, tags, overlay,
		packages.NeedName|packages.NeedFiles|packages.NeedTypes|packages.NeedSyntax|packages.NeedTypesInfo)
	if err != nil {
		return nil, nil, err
	}

	var warnings []error
	for _, e := range pkg.Errors {
		if e.Kind != packages.TypeError {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrLoad, displayDir(dir), e)
		}
		warnings = append(warnings, e)
	}
	if pkg.Types == nil {
		return nil, nil, fmt.Errorf("%w: %s: no type information", ErrLoad, displayDir(dir))
	}
	return pkg, warnings, nil
}

// list resolves the package name and files without parsing or type-checking
// them.
func list(ctx context.Context, dir string, tags []string) (*packages.Package, error) {
	pkg, err := loadOne(ctx, dir, tags, nil, packages.NeedName|packages.NeedFiles)
	if err != nil {
		return nil, err
	}
	for _, e := range pkg.Errors {
		if e.Kind == packages.ListError {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoad, displayDir(dir), e)
		}
	}
	if pkg.Name == "" {
		return nil, fmt.Errorf("%w: %s: no Go package", ErrLoad, displayDir(dir))
	}
	return pkg, nil
}

func loadOne(ctx context.Context, dir string, tags []string, overlay map[string][]byte, mode packages.LoadMode) (*packages.Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    mode,
		Dir:     dir,
		Overlay: overlay,
	}
	if len(tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(tags, ",")}
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, displayDir(dir), err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%w: %s: found %d packages", ErrLoad, displayDir(dir), len(pkgs))
	}
	return pkgs[0], nil
}

func packageDir(pkg *packages.Package, dir string) string {
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}
	return dir
}

func displayDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
