package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/morphed"
	"github.com/vango-dev/morphed/internal/errors"
	"github.com/vango-dev/morphed/pkg/morph"
	"github.com/vango-dev/morphed/pkg/render"
	"github.com/vango-dev/morphed/pkg/vdom"
)

// ConfigFileNames are the file names Load looks for, in order.
var ConfigFileNames = []string{"morphed.json", "morphed.yaml", "morphed.yml"}

const (
	// IDsCounter selects the sequential id generator.
	IDsCounter = "counter"

	// IDsUUID selects the UUID id generator.
	IDsUUID = "uuid"
)

// Config represents a morphed configuration file.
type Config struct {
	// IgnoredAttribute marks subtrees reconciliation leaves alone.
	IgnoredAttribute string `json:"ignoredAttribute,omitempty" yaml:"ignoredAttribute,omitempty" validate:"omitempty,attrname"`

	// ChildrenOnly morphs the children of the root but not the root itself.
	ChildrenOnly bool `json:"childrenOnly,omitempty" yaml:"childrenOnly,omitempty"`

	// IDs selects how ignored elements get ids: "counter" or "uuid".
	IDs string `json:"ids,omitempty" yaml:"ids,omitempty" validate:"omitempty,oneof=counter uuid"`

	// IDPrefix prefixes generated ids.
	IDPrefix string `json:"idPrefix,omitempty" yaml:"idPrefix,omitempty" validate:"omitempty,max=64,excludesall= \"'<>"`

	// Render contains HTML output settings.
	Render RenderConfig `json:"render,omitempty" yaml:"render,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains HTML output settings.
type RenderConfig struct {
	// Minify runs output through the HTML minifier.
	Minify bool `json:"minify,omitempty" yaml:"minify,omitempty"`

	// Pretty indents output. Cannot be combined with Minify.
	Pretty bool `json:"pretty,omitempty" yaml:"pretty,omitempty" validate:"excluded_with=Minify"`

	// Indent is the indentation unit for pretty output.
	Indent string `json:"indent,omitempty" yaml:"indent,omitempty" validate:"omitempty,max=8"`
}

// New creates a configuration with default values.
func New() *Config {
	return &Config{
		IgnoredAttribute: morphed.DefaultIgnoredAttribute,
		IDs:              IDsCounter,
		IDPrefix:         morphed.DefaultIDPrefix,
	}
}

// Load finds a configuration file in dir and reads it.
func Load(dir string) (*Config, error) {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("M202").
		WithDetail("No morphed.json or morphed.yaml found in " + dir)
}

// LoadFile reads configuration from the specified file path. The format
// follows the extension: .yaml and .yml are YAML, anything else JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("M202").Wrap(err)
	}

	cfg := New()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("M202").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON or YAML")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for fields a file set empty.
func (c *Config) applyDefaults() {
	if c.IgnoredAttribute == "" {
		c.IgnoredAttribute = morphed.DefaultIgnoredAttribute
	}
	if c.IDs == "" {
		c.IDs = IDsCounter
	}
	if c.IDPrefix == "" {
		c.IDPrefix = morphed.DefaultIDPrefix
	}
}

// IDSource returns the id generator the configuration selects.
func (c *Config) IDSource() vdom.IDSource {
	if c.IDs == IDsUUID {
		return vdom.UUIDGenerator{Prefix: c.IDPrefix}
	}
	return vdom.NewIDGenerator(c.IDPrefix)
}

// ViewOptions translates the configuration into options for a pure-mode
// view whose update function returns a parsed candidate document. Ids are
// never generated in pure mode, so IDs and IDPrefix only reach IDSource.
func (c *Config) ViewOptions() []morphed.Option {
	return []morphed.Option{
		morphed.WithClone(false),
		morphed.WithIgnoredAttribute(c.IgnoredAttribute),
		morphed.WithMorphOptions(morph.Options{ChildrenOnly: c.ChildrenOnly}),
	}
}

// RendererConfig translates the render section for the HTML renderer.
func (c *Config) RendererConfig() render.Config {
	return render.Config{
		Minify: c.Render.Minify,
		Pretty: c.Render.Pretty,
		Indent: c.Render.Indent,
	}
}

// =============================================================================
// Validation
// =============================================================================

// attrNamePattern accepts the attribute names the HTML tokenizer produces.
var attrNamePattern = regexp.MustCompile(`^[a-zA-Z_:][-a-zA-Z0-9_:.]*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("attrname", func(fl validator.FieldLevel) bool {
		return attrNamePattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.New("M201").Wrap(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New("M201").
		WithDetail(strings.Join(msgs, "; ")).
		WithSuggestion("Fix the listed fields in " + c.displayName())
}

// describe turns a field error into a sentence.
func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "attrname":
		return field + " must be a valid attribute name"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "excludesall":
		return field + " must not contain spaces, quotes or angle brackets"
	case "excluded_with":
		return field + " cannot be combined with render.minify"
	default:
		return field + " is invalid"
	}
}

func (c *Config) displayName() string {
	if c.configPath == "" {
		return "the configuration"
	}
	return filepath.Base(c.configPath)
}

// =============================================================================
// Discovery
// =============================================================================

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range ConfigFileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the nearest directory with
// a config file.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("M202").
				WithDetail("No morphed.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}
