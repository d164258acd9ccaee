// Package config loads and validates the TOML configuration document
// spec §6 defines, via github.com/BurntSushi/toml. It has no dependency
// on memory, preprocessor, or translator: it only describes their
// tunables and the raw dataset rows those packages parse themselves.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigError is the fatal, startup-time error spec §7 reserves for
// malformed or missing configuration.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %q: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Core holds the `core.*` options spec §6 lists.
type Core struct {
	BufferSize     int  `toml:"buffer_size"`
	AutoCapitalize bool `toml:"auto_capitalize"`
	PageSize       int  `toml:"page_size"`
	AutoCommit     bool `toml:"auto_commit"`
	CursorCapacity int  `toml:"cursor_capacity"`
}

// DataRow is one input-code -> outputs row as it appears in the `data`,
// `translation`, or a merged `languages` TOML table. Outputs may be
// written as either a bare string or a list of strings in TOML; Texts
// always holds the normalized list form after decode (see rawDataRow).
type DataRow struct {
	Texts      []string
	AutoCommit bool
}

// Config is the fully decoded, validated configuration document.
type Config struct {
	Core        Core
	Data        map[string]DataRow // feeds the Memory trie (top-level data table)
	Translation map[string]DataRow // feeds the Translator dictionary
	Translators map[string]string  // name -> scripted-predicate source
	Languages   []string           // external dataset files, later overrides earlier
}

// rawConfig mirrors the TOML document shape before Data/Translation
// entries are normalized to DataRow (BurntSushi/toml cannot unmarshal a
// field that is sometimes a string and sometimes a list directly into a
// struct, so decoding goes through toml.Primitive).
type rawConfig struct {
	Core        Core                      `toml:"core"`
	Data        map[string]toml.Primitive `toml:"data"`
	Translation map[string]toml.Primitive `toml:"translation"`
	Translators map[string]string         `toml:"translators"`
	Languages   []string                  `toml:"languages"`
}

// DefaultCore returns spec §6's documented defaults.
func DefaultCore() Core {
	return Core{
		BufferSize:     64,
		AutoCapitalize: true,
		PageSize:       10,
		AutoCommit:     false,
		CursorCapacity: 64,
	}
}

// Load reads and decodes the TOML document at path, merging in any
// `languages` files it references (later files override earlier keys,
// per spec §6), and applies defaults for unset `core.*` fields. Any
// failure — missing file, malformed TOML, malformed data row shape —
// is returned as *ConfigError.
func Load(path string) (*Config, error) {
	cfg, err := loadOne(path)
	if err != nil {
		return nil, err
	}
	for _, lang := range cfg.Languages {
		extra, err := loadOne(lang)
		if err != nil {
			return nil, err
		}
		mergeRows(cfg.Data, extra.Data)
		mergeRows(cfg.Translation, extra.Translation)
		if cfg.Translators == nil {
			cfg.Translators = make(map[string]string)
		}
		for k, v := range extra.Translators {
			cfg.Translators[k] = v
		}
	}
	return cfg, nil
}

func loadOne(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	var raw rawConfig
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	core := DefaultCore()
	if md.IsDefined("core", "buffer_size") {
		core.BufferSize = raw.Core.BufferSize
	}
	if md.IsDefined("core", "auto_capitalize") {
		core.AutoCapitalize = raw.Core.AutoCapitalize
	}
	if md.IsDefined("core", "page_size") {
		core.PageSize = raw.Core.PageSize
	}
	if md.IsDefined("core", "auto_commit") {
		core.AutoCommit = raw.Core.AutoCommit
	}
	if md.IsDefined("core", "cursor_capacity") {
		core.CursorCapacity = raw.Core.CursorCapacity
	}

	data, err := decodeRows(md, raw.Data, path)
	if err != nil {
		return nil, err
	}
	translation, err := decodeRows(md, raw.Translation, path)
	if err != nil {
		return nil, err
	}

	return &Config{
		Core:        core,
		Data:        data,
		Translation: translation,
		Translators: raw.Translators,
		Languages:   raw.Languages,
	}, nil
}

// decodeRows normalizes each primitive into a DataRow, accepting both a
// bare string and a `{texts=[...], auto_commit=true}` table, or a bare
// list of strings. A row that decodes as neither is a ConfigError: data
// shape problems are caught at load time, not deferred to the dataset
// loaders that skip malformed rows at runtime (spec §7's DatasetWarning
// is for the runtime `load(pairs)` path, not this parse step).
func decodeRows(md toml.MetaData, raw map[string]toml.Primitive, path string) (map[string]DataRow, error) {
	out := make(map[string]DataRow, len(raw))
	for key, prim := range raw {
		var asString string
		if err := md.PrimitiveDecode(prim, &asString); err == nil {
			out[key] = DataRow{Texts: []string{asString}}
			continue
		}
		var asList []string
		if err := md.PrimitiveDecode(prim, &asList); err == nil {
			out[key] = DataRow{Texts: asList}
			continue
		}
		var asTable struct {
			Texts      []string `toml:"texts"`
			Text       string   `toml:"text"`
			AutoCommit bool     `toml:"auto_commit"`
		}
		if err := md.PrimitiveDecode(prim, &asTable); err == nil {
			texts := asTable.Texts
			if len(texts) == 0 && asTable.Text != "" {
				texts = []string{asTable.Text}
			}
			if len(texts) == 0 {
				return nil, &ConfigError{Path: path, Err: fmt.Errorf("entry %q has no texts", key)}
			}
			out[key] = DataRow{Texts: texts, AutoCommit: asTable.AutoCommit}
			continue
		}
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("entry %q has an unrecognised shape", key)}
	}
	return out, nil
}

func mergeRows(dst, src map[string]DataRow) {
	for k, v := range src {
		dst[k] = v
	}
}
