package hclconf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/qrforge/internal/config"
	"github.com/vk/qrforge/internal/ctxlog"
	"github.com/vk/qrforge/internal/encode"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL defaults loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileSchema mirrors the top level of a defaults file.
type fileSchema struct {
	Defaults *defaultsBlock `hcl:"defaults,block"`
}

// defaultsBlock lists every overridable setting. Pointer fields
// distinguish "absent" from a zero value.
type defaultsBlock struct {
	OutputDir  *string `hcl:"output_dir,optional"`
	Scale      *int    `hcl:"scale,optional"`
	Level      *string `hcl:"level,optional"`
	Format     *string `hcl:"format,optional"`
	Foreground *string `hcl:"foreground,optional"`
	Background *string `hcl:"background,optional"`
	Preview    *bool   `hcl:"preview,optional"`
}

// Load reads and decodes the defaults file at path, overlaying its
// values on the built-in defaults.
func (l *Loader) Load(ctx context.Context, path string) (config.Defaults, error) {
	logger := ctxlog.FromContext(ctx)
	defaults := config.Builtin()

	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No defaults file found, using built-ins.", "path", path)
			return defaults, nil
		}
		return defaults, fmt.Errorf("reading defaults file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return defaults, fmt.Errorf("parsing defaults file %s: %s", path, diags.Error())
	}

	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &schema); diags.HasErrors() {
		return defaults, fmt.Errorf("decoding defaults file %s: %s", path, diags.Error())
	}
	if schema.Defaults == nil {
		return defaults, nil
	}

	b := schema.Defaults
	if b.OutputDir != nil {
		defaults.OutputDir = *b.OutputDir
	}
	if b.Scale != nil {
		defaults.Scale = *b.Scale
	}
	if b.Level != nil {
		defaults.Level = strings.ToLower(*b.Level)
	}
	if b.Format != nil {
		defaults.Format = strings.ToLower(*b.Format)
	}
	if b.Foreground != nil {
		defaults.Foreground = strings.ToLower(*b.Foreground)
	}
	if b.Background != nil {
		defaults.Background = strings.ToLower(*b.Background)
	}
	if b.Preview != nil {
		defaults.Preview = *b.Preview
	}

	if err := validate(defaults); err != nil {
		return config.Builtin(), fmt.Errorf("defaults file %s: %w", path, err)
	}

	logger.Debug("Defaults file applied.", "path", path)
	return defaults, nil
}

func validate(d config.Defaults) error {
	switch d.Level {
	case "low", "medium", "high", "highest":
	default:
		return fmt.Errorf("invalid level %q: must be 'low', 'medium', 'high' or 'highest'", d.Level)
	}
	switch d.Format {
	case "png", "svg", "both":
	default:
		return fmt.Errorf("invalid format %q: must be 'png', 'svg' or 'both'", d.Format)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("invalid scale %d: must be positive", d.Scale)
	}
	if d.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if _, err := encode.ParseColor(d.Foreground); err != nil {
		return fmt.Errorf("invalid foreground: %w", err)
	}
	if _, err := encode.ParseColor(d.Background); err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	return nil
}

// evalContext exposes the process environment to file expressions as
// env.NAME, so a defaults file can write output_dir = env.HOME.
func evalContext() *hcl.EvalContext {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = cty.StringVal(value)
	}
	envVal := cty.EmptyObjectVal
	if len(vars) > 0 {
		envVal = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envVal},
	}
}
