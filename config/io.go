// Copyright (c) 2024, The enaml-extensions Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabrielcnr/enaml-extensions/base/errors"
	"github.com/gabrielcnr/enaml-extensions/base/fsx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the file formats of configurations.
type Formats int32

const (
	// TOML is the TOML format, for .toml files.
	TOML Formats = iota

	// YAML is the YAML format, for .yaml and .yml files.
	YAML
)

func (f Formats) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// maxIncludeDepth bounds the nesting of included files.
const maxIncludeDepth = 10

// FormatOf returns the format of the given file from its extension.
func FormatOf(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("config: unknown format of file %q; use .toml, .yaml or .yml", filename)
}

// Read reads the configuration in the given format into cfg,
// overriding the fields that are set in it.
func Read(r io.Reader, format Formats, cfg *Config) error {
	if format == YAML {
		err := yaml.NewDecoder(r).Decode(cfg)
		if err == io.EOF {
			return nil
		}
		return err
	}
	return toml.NewDecoder(r).Decode(cfg)
}

// Open reads the configuration from the given TOML or YAML file,
// after the files it includes, and sets the default values of
// the fields that are still unset.
func Open(filename string) (*Config, error) {
	cfg := &Config{}
	if err := openWithIncludes(cfg, filename, 0); err != nil {
		return nil, err
	}
	SetFromDefaults(cfg)
	return cfg, nil
}

// openWithIncludes reads the config from the given file, after
// reading its includes in order so that includers overwrite
// included settings.
func openWithIncludes(cfg *Config, filename string, depth int) error {
	if depth > maxIncludeDepth {
		return fmt.Errorf("config: includes nested more than %d deep at %q", maxIncludeDepth, filename)
	}
	format, err := FormatOf(filename)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return errors.Log(err)
	}
	own := &Config{}
	if err := Read(bytes.NewReader(b), format, own); err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	dir := filepath.Dir(filename)
	for _, inc := range own.Includes {
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(dir, inc)
		}
		if ok, err := fsx.FileExists(inc); err == nil && !ok {
			return fmt.Errorf("config: %s: included file %q does not exist", filename, inc)
		}
		if err := openWithIncludes(cfg, inc, depth+1); err != nil {
			return err
		}
	}
	if err := Read(bytes.NewReader(b), format, cfg); err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	cfg.Includes = own.Includes
	return nil
}

// Write writes the configuration in the given format.
func (c *Config) Write(w io.Writer, format Formats) error {
	if format == YAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	}
	return toml.NewEncoder(w).Encode(c)
}

// Save writes the configuration to the given file,
// in the format given by its extension.
func (c *Config) Save(filename string) error {
	format, err := FormatOf(filename)
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := c.Write(bw, format); err != nil {
		return err
	}
	return bw.Flush()
}
