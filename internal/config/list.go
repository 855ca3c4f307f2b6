package config

import (
	"fmt"

	"github.com/rshade/vlist/internal/virtuallist"
)

// Item height modes and separator styles as spelled in config.yaml.
const (
	heightModeFixed    = "fixed"
	heightModeVariable = "variable"

	separatorNone  = "none"
	separatorFull  = "full"
	separatorInset = "inset"
)

// ListConfig is the list section of config.yaml.
type ListConfig struct {
	ItemHeight    ItemHeightConfig `yaml:"item_height" toml:"item_height"`
	Overscan      int              `yaml:"overscan" toml:"overscan"`
	Separator     SeparatorConfig  `yaml:"separator" toml:"separator"`
	SmoothScroll  bool             `yaml:"smooth_scroll" toml:"smooth_scroll"`
	Padding       float32          `yaml:"padding" toml:"padding"`
	PullToRefresh bool             `yaml:"pull_to_refresh" toml:"pull_to_refresh"`
	Sections      []SectionEntry   `yaml:"sections,omitempty" toml:"sections"`
}

// ItemHeightConfig selects fixed heights or a variable-height estimate.
type ItemHeightConfig struct {
	Mode  string  `yaml:"mode" toml:"mode"`
	Value float32 `yaml:"value" toml:"value"`
}

// SeparatorConfig describes the gap between items.
type SeparatorConfig struct {
	Style      string     `yaml:"style" toml:"style"`
	Thickness  float32    `yaml:"thickness,omitempty" toml:"thickness"`
	Color      [4]float32 `yaml:"color,flow,omitempty" toml:"color"`
	LeftInset  float32    `yaml:"left_inset,omitempty" toml:"left_inset"`
	RightInset float32    `yaml:"right_inset,omitempty" toml:"right_inset"`
}

// SectionEntry is one section header.
type SectionEntry struct {
	ID         string  `yaml:"id" toml:"id"`
	Title      string  `yaml:"title" toml:"title"`
	Height     float32 `yaml:"height" toml:"height"`
	Sticky     *bool   `yaml:"sticky,omitempty" toml:"sticky"`
	StartIndex int     `yaml:"start_index" toml:"start_index"`
	ItemCount  int     `yaml:"item_count" toml:"item_count"`
}

// DefaultListConfig mirrors virtuallist.DefaultConfig.
func DefaultListConfig() ListConfig {
	return ListConfig{
		ItemHeight:   ItemHeightConfig{Mode: heightModeFixed, Value: 48},
		Overscan:     3,
		Separator:    SeparatorConfig{Style: separatorNone},
		SmoothScroll: true,
	}
}

// Validate converts the section and validates the result.
func (lc ListConfig) Validate() error {
	cfg, err := lc.ToVirtualListConfig()
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("%w: list: %w", ErrInvalidConfig, err)
	}
	if sections, ok := lc.SectionConfig(); ok {
		if err = sections.Validate(); err != nil {
			return fmt.Errorf("%w: list: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// ToVirtualListConfig converts the section to the engine configuration.
func (lc ListConfig) ToVirtualListConfig() (virtuallist.Config, error) {
	cfg := virtuallist.DefaultConfig()

	switch lc.ItemHeight.Mode {
	case "", heightModeFixed:
		cfg.ItemHeight = virtuallist.FixedHeight(lc.ItemHeight.Value)
	case heightModeVariable:
		cfg.ItemHeight = virtuallist.VariableHeight(lc.ItemHeight.Value)
	default:
		return cfg, fmt.Errorf("%w: list.item_height.mode %q", ErrInvalidConfig, lc.ItemHeight.Mode)
	}

	sep := lc.Separator
	switch sep.Style {
	case "", separatorNone:
		cfg.Separator = virtuallist.NoSeparator()
	case separatorFull:
		cfg.Separator = virtuallist.FullSeparator(sep.Thickness, sep.Color)
	case separatorInset:
		cfg.Separator = virtuallist.InsetSeparator(sep.Thickness, sep.Color, sep.LeftInset, sep.RightInset)
	default:
		return cfg, fmt.Errorf("%w: list.separator.style %q", ErrInvalidConfig, sep.Style)
	}

	cfg.Overscan = lc.Overscan
	cfg.SmoothScroll = lc.SmoothScroll
	cfg.Padding = lc.Padding
	cfg.PullToRefresh = lc.PullToRefresh
	return cfg, nil
}

// SectionConfig converts the configured sections. It reports false when no
// sections are configured. Sections are sticky unless sticky: false is set.
func (lc ListConfig) SectionConfig() (virtuallist.SectionConfig, bool) {
	if len(lc.Sections) == 0 {
		return virtuallist.SectionConfig{}, false
	}

	var sc virtuallist.SectionConfig
	for _, s := range lc.Sections {
		h := virtuallist.NewSectionHeader(s.ID, s.Title, s.Height).WithItems(s.StartIndex, s.ItemCount)
		if s.Sticky != nil {
			h = h.WithSticky(*s.Sticky)
		}
		sc = sc.Add(h)
	}
	return sc, true
}

// Apply configures list from the section. Item count and viewport are left
// to the caller.
func (lc ListConfig) Apply(list *virtuallist.VirtualList) error {
	cfg, err := lc.ToVirtualListConfig()
	if err != nil {
		return err
	}

	list.ItemHeight(cfg.ItemHeight).
		Separator(cfg.Separator).
		Padding(cfg.Padding).
		SmoothScroll(cfg.SmoothScroll).
		PullToRefresh(cfg.PullToRefresh).
		Overscan(cfg.Overscan)

	if sections, ok := lc.SectionConfig(); ok {
		list.Sections(sections)
	} else {
		list.ClearSections()
	}
	return nil
}
