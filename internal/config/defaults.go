package config

import "git.home.luguber.info/inful/sitenav/internal/site"

const (
	// DefaultLang is used when lang is not set.
	DefaultLang = "en-US"
	// DefaultEditLinkText labels the edit link when only a pattern is given.
	DefaultEditLinkText = "Edit this page"
)

// DefaultApplier fills in unset values for one configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *site.Config)
}

type metadataDefaults struct{}

func (metadataDefaults) ApplyDefaults(cfg *site.Config) {
	if cfg.Lang == "" {
		cfg.Lang = DefaultLang
	}
}

type editLinkDefaults struct{}

func (editLinkDefaults) ApplyDefaults(cfg *site.Config) {
	el := cfg.ThemeConfig.EditLink
	if el != nil && el.Pattern != "" && el.Text == "" {
		el.Text = DefaultEditLinkText
	}
}

var defaultAppliers = []DefaultApplier{
	metadataDefaults{},
	editLinkDefaults{},
}

func applyDefaults(cfg *site.Config) {
	for _, a := range defaultAppliers {
		a.ApplyDefaults(cfg)
	}
}
