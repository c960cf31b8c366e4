// Package pipeline loads image-transformation pipelines from HCL files and
// runs them against a Pack through the operation registry.
//
// A pipeline file declares named pipelines made of ordered stages; each
// stage names a registered operation and passes its arguments as plain
// attributes:
//
//	pipeline "thumbnail" {
//	  stage "decide_resolution" {}
//	  stage "resize" {
//	    width = 800
//	  }
//	  stage "sharpen" {
//	    percent = 120
//	  }
//	}
//
// Stage names resolve through the Pack's registry at run time, so pipelines
// can invoke operations registered by any package, not just the built-ins.
package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/yanrucheng/pilflow"
)

// File is the root of a parsed pipeline file.
type File struct {
	Pipelines []*Pipeline `hcl:"pipeline,block"`
}

// Pipeline is a named, ordered sequence of stages.
type Pipeline struct {
	Name   string   `hcl:"name,label"`
	Stages []*Stage `hcl:"stage,block"`
}

// Stage names one operation invocation; its HCL attributes become the
// operation's arguments.
type Stage struct {
	Operation string   `hcl:"operation,label"`
	Remain    hcl.Body `hcl:",remain"`
}

// Load reads and parses a pipeline file from disk.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pipeline file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes pipeline definitions from HCL source. The filename only
// labels diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}

	var file File
	diags = gohcl.DecodeBody(hclFile.Body, nil, &file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", filename, diags)
	}
	return &file, nil
}

// Pipeline returns the named pipeline from the file.
func (f *File) Pipeline(name string) (*Pipeline, bool) {
	for _, pl := range f.Pipelines {
		if pl.Name == name {
			return pl, true
		}
	}
	return nil, false
}

// Run invokes each stage in order against pack, feeding every stage the
// previous stage's output and logging per-stage timing. Dispatch goes
// through pack's own registry, so an unregistered stage name surfaces as an
// UnknownOperationError from the failing stage.
func (pl *Pipeline) Run(logger *slog.Logger, pack *pilflow.Pack) (*pilflow.Pack, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cur := pack
	for i, stage := range pl.Stages {
		args, err := stage.Args()
		if err != nil {
			return nil, fmt.Errorf("pipeline %q stage %d (%s): %w", pl.Name, i, stage.Operation, err)
		}

		start := time.Now()
		next, err := cur.Invoke(stage.Operation, args)
		if err != nil {
			return nil, fmt.Errorf("pipeline %q stage %d: %w", pl.Name, i, err)
		}
		logger.Info("pipeline stage complete",
			"pipeline", pl.Name,
			"stage", stage.Operation,
			"elapsed", time.Since(start),
			"width", next.Width(),
			"height", next.Height(),
		)
		cur = next
	}
	return cur, nil
}

// Args evaluates the stage's HCL attributes into operation arguments.
func (s *Stage) Args() (pilflow.Args, error) {
	attrs, diags := s.Remain.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("stage attributes: %w", diags)
	}

	args := make(pilflow.Args, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluate %q: %w", name, diags)
		}
		goVal, err := ctyToGo(val)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", name, err)
		}
		args[name] = goVal
	}
	return args, nil
}

// ctyToGo converts an evaluated HCL value to the plain Go representation
// the Args accessors expect.
func ctyToGo(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	switch val.Type() {
	case cty.String:
		return val.AsString(), nil
	case cty.Bool:
		return val.True(), nil
	case cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f, nil
	}
	return nil, fmt.Errorf("unsupported value type %s", val.Type().FriendlyName())
}
