package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir returns an Option that loads dictionaries from JSON files in an
// fs.FS. File convention: {lang}.json at the root of the filesystem. Nested
// objects are flattened to dot-separated keys.
func WithJSONDir(fsys fs.FS) Option {
	return func(b *Bundle) error {
		return loadDir(b, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir returns an Option that loads dictionaries from YAML files in an
// fs.FS. File convention: {lang}.yaml or {lang}.yml at the root of the
// filesystem. Nested maps are flattened to dot-separated keys.
func WithYAMLDir(fsys fs.FS) Option {
	return func(b *Bundle) error {
		return loadDir(b, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

func loadDir(b *Bundle, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))
		if ext == ".yaml" {
			if fileExt != ".yaml" && fileExt != ".yml" {
				return nil
			}
		} else if fileExt != ext {
			return nil
		}

		lang := NormalizeTag(strings.TrimSuffix(path.Base(filePath), path.Ext(filePath)))
		if lang == "" {
			return fmt.Errorf("%w: cannot derive language from %q", ErrInvalidFile, filePath)
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var raw map[string]any
		if err := unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		dict := b.dict(lang)
		for key, value := range flatten(raw, "") {
			dict[key] = Template(value)
		}

		return nil
	})
}

// flatten collapses nested maps into dot-separated keys.
func flatten(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flatten(v, fullKey))
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
