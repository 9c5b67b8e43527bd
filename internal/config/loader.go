package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/timegridgo/internal/ctxlog"
)

// file mirrors the HCL surface: three optional blocks.
type file struct {
	Fetch    *fetchBlock    `hcl:"fetch,block"`
	Calendar *calendarBlock `hcl:"calendar,block"`
	View     *viewBlock     `hcl:"view,block"`
}

type fetchBlock struct {
	Endpoint string `hcl:"endpoint,optional"`
	Timeout  string `hcl:"timeout,optional"`
}

// calendarBlock keeps its attributes as unevaluated expressions so a file
// can refer to the built-in lists, e.g. `days = default_days`.
type calendarBlock struct {
	Days  hcl.Expression `hcl:"days,optional"`
	Slots hcl.Expression `hcl:"slots,optional"`
}

type viewBlock struct {
	EmptyCell    *string `hcl:"empty_cell,optional"`
	ShowTeachers *bool   `hcl:"show_teachers,optional"`
}

// Load parses one HCL config file and overlays its values onto the
// defaults. Absent blocks and attributes keep their default values, so a
// file mentioning nothing but the endpoint is valid.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading configuration file.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %s", path, diags.Error())
	}

	var f file
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %s", path, diags.Error())
	}

	cfg := Default()

	if f.Fetch != nil {
		if f.Fetch.Endpoint != "" {
			cfg.Endpoint = f.Fetch.Endpoint
		}
		if f.Fetch.Timeout != "" {
			timeout, err := time.ParseDuration(f.Fetch.Timeout)
			if err != nil {
				return nil, fmt.Errorf("invalid fetch timeout %q: %w", f.Fetch.Timeout, err)
			}
			cfg.Timeout = timeout
		}
	}

	if f.Calendar != nil {
		evalCtx := calendarEvalContext(cfg.Calendar)
		days, err := evalLabelList(f.Calendar.Days, evalCtx, cfg.Calendar.Days)
		if err != nil {
			return nil, fmt.Errorf("invalid calendar days in %s: %w", path, err)
		}
		slots, err := evalLabelList(f.Calendar.Slots, evalCtx, cfg.Calendar.Slots)
		if err != nil {
			return nil, fmt.Errorf("invalid calendar slots in %s: %w", path, err)
		}
		cfg.Calendar.Days = days
		cfg.Calendar.Slots = slots
	}

	if f.View != nil {
		if f.View.EmptyCell != nil {
			cfg.View.EmptyCell = *f.View.EmptyCell
		}
		if f.View.ShowTeachers != nil {
			cfg.View.ShowTeachers = *f.View.ShowTeachers
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	logger.Debug("Configuration loaded.",
		"days", len(cfg.Calendar.Days),
		"slots", len(cfg.Calendar.Slots),
	)
	return cfg, nil
}

// calendarEvalContext exposes the built-in calendar to expressions as
// default_days and default_slots.
func calendarEvalContext(defaults Calendar) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_days":  stringListValue(defaults.Days),
			"default_slots": stringListValue(defaults.Slots),
		},
	}
}

// evalLabelList evaluates one label-list expression. Absent attributes keep
// the fallback: gohcl hands them over as synthetic expressions that evaluate
// to null, not as nil expressions.
func evalLabelList(expr hcl.Expression, evalCtx *hcl.EvalContext, fallback []string) ([]string, error) {
	if expr == nil {
		return fallback, nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, errors.New(diags.Error())
	}
	if val.IsNull() {
		return fallback, nil
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("label list must be a list of strings: %w", err)
	}

	var labels []string
	for _, elem := range listVal.AsValueSlice() {
		if elem.IsNull() {
			return nil, errors.New("label list elements must not be null")
		}
		labels = append(labels, elem.AsString())
	}
	return labels, nil
}

func stringListValue(items []string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(items))
	for i, item := range items {
		vals[i] = cty.StringVal(item)
	}
	return cty.ListVal(vals)
}
