/*
Package config gathers the settings of a build.

Settings are layered, each layer overriding the one before:

 1. Built-in defaults (see Defaults).
 2. The optional file "scribe.toml" in the working folder.
 3. The optional file ".env" in the working folder, which only fills in environment
    variables that are not already set.
 4. Environment variables, named after the flags: BASE_URL, PAGE_SIZE, CONTENT_DIR, and so on.
 5. Command line flags.

With no file and no flags, the only input is BASE_URL, which defaults to empty.

An example scribe.toml:

	content_dir = "content"
	output_dir = "public"
	page_size = 10
	site_title = "Notes"
	base_url = "https://example.com"
*/
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/facebookgo/flagenv"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// File names looked up in the working folder.
const (
	FileName    = "scribe.toml"
	EnvFileName = ".env"
)

// Config holds the settings of a build.
type Config struct {
	ContentDir     string `toml:"content_dir"`     // Folder holding the Markdown sources
	OutputDir      string `toml:"output_dir"`      // Folder receiving the site
	TemplateDir    string `toml:"template_dir"`    // Folder of custom templates; built-in ones are used if missing
	PageSize       int    `toml:"page_size"`       // Posts per listing page
	BaseURL        string `toml:"base_url"`        // Prefix for absolute links
	SiteTitle      string `toml:"site_title"`      // Title shown on every page
	RequireContent bool   `toml:"require_content"` // Fail when the content folder is missing
	LogLevel       string `toml:"log_level"`       // debug, info, warn, or error
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		ContentDir:  "content",
		OutputDir:   "public",
		TemplateDir: "templates",
		PageSize:    5,
		BaseURL:     "",
		SiteTitle:   "Blog",
		LogLevel:    "info",
	}
}

// bind registers a flag for every setting, using the current values as defaults.
func (c *Config) bind(set *flag.FlagSet) {
	set.StringVar(&c.ContentDir, "content-dir", c.ContentDir, "Folder holding the Markdown sources.")
	set.StringVar(&c.OutputDir, "output-dir", c.OutputDir, "Folder receiving the generated site.")
	set.StringVar(&c.TemplateDir, "template-dir", c.TemplateDir, "Folder of custom templates.")
	set.IntVar(&c.PageSize, "page-size", c.PageSize, "Posts per listing page.")
	set.StringVar(&c.BaseURL, "base-url", c.BaseURL, "Prefix for absolute links.")
	set.StringVar(&c.SiteTitle, "site-title", c.SiteTitle, "Title shown on every page.")
	set.BoolVar(&c.RequireContent, "require-content", c.RequireContent, "Fail when the content folder is missing.")
	set.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn, or error.")
}

// Validate checks the settings for values no build can use.
func (c Config) Validate() error {
	var errs []error
	if c.PageSize < 1 {
		errs = append(errs, fmt.Errorf("page size must be at least 1, got %d", c.PageSize))
	}
	if strings.TrimSpace(c.ContentDir) == "" {
		errs = append(errs, errors.New("content folder is not set"))
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, errors.New("output folder is not set"))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

// ReadFile overlays settings from a TOML file onto c.
// It is not an error if the file does not exist.
func (c *Config) ReadFile(name string) error {
	b, err := os.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("Cannot read config file: %w", err)
	}
	if err = toml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("Cannot parse config file %s: %w", name, err)
	}
	return nil
}

// LoadEnvFile copies variables from a dotenv file into the environment without
// replacing variables that are already set. It is not an error if the file does not exist.
func LoadEnvFile(name string) error {
	err := godotenv.Load(name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("Cannot load env file: %w", err)
	}
	return nil
}

// Load builds the configuration for a run in folder dir from args (without the program name).
// Relative folders are taken relative to dir.
func Load(dir string, name string, args []string) (Config, error) {
	if err := LoadEnvFile(filepath.Join(dir, EnvFileName)); err != nil {
		return Config{}, err
	}
	cfg := Defaults()
	if err := cfg.ReadFile(filepath.Join(dir, FileName)); err != nil {
		return Config{}, err
	}

	set := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.bind(set)
	if err := set.Parse(args); err != nil {
		return Config{}, err
	}
	if set.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(set.Args(), " "))
	}
	if err := flagenv.ParseSet("", set); err != nil {
		return Config{}, err
	}

	cfg.ContentDir = resolve(dir, cfg.ContentDir)
	cfg.OutputDir = resolve(dir, cfg.OutputDir)
	cfg.TemplateDir = resolve(dir, cfg.TemplateDir)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// resolve anchors a relative path at dir.
func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
