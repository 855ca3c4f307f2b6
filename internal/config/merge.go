package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Top-level config key names used for shallow merge.
const (
	keyVersion = "version"
	keyList    = "list"
	keyLogging = "logging"
	keyTUI     = "tui"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyVersion: true,
	keyList:    true,
	keyLogging: true,
	keyTUI:     true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Keys present in the overlay replace entire sections
// in the target. Keys absent in the overlay are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, node := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}
		if err = decodeSection(target, key, node.Decode); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// MergeOverlay merges a YAML or TOML overlay, chosen by file extension.
func MergeOverlay(target *Config, overlayPath string) error {
	if strings.EqualFold(filepath.Ext(overlayPath), ".toml") {
		return ShallowMergeTOML(target, overlayPath)
	}
	return ShallowMergeYAML(target, overlayPath)
}

// ShallowMergeTOML is ShallowMergeYAML for TOML overlays. Keys use the same
// names as config.yaml.
func ShallowMergeTOML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeTOML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]toml.Primitive
	md, err := toml.Decode(string(data), &overlay)
	if err != nil {
		return fmt.Errorf("parsing overlay TOML from %s: %w", overlayPath, err)
	}

	for key, prim := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}
		decode := func(v any) error { return md.PrimitiveDecode(prim, v) }
		if err = decodeSection(target, key, decode); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// decodeSection decodes one overlay section onto the built-in defaults for
// key, so the overlay replaces the target's section and fields it omits take
// their default values rather than the target's.
func decodeSection(target *Config, key string, decode func(any) error) error {
	defaults := Default()
	switch key {
	case keyVersion:
		var v string
		if err := decode(&v); err != nil {
			return err
		}
		target.Version = v
	case keyList:
		v := defaults.List
		if err := decode(&v); err != nil {
			return err
		}
		target.List = v
	case keyLogging:
		v := defaults.Logging
		if err := decode(&v); err != nil {
			return err
		}
		target.Logging = v
	case keyTUI:
		v := defaults.TUI
		if err := decode(&v); err != nil {
			return err
		}
		target.TUI = v
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
