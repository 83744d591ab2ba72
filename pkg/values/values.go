// Package values provides value sources read from data files.
//
// A file holds a map of names to values. Values under the top-level "dm"
// key are only visible to the game master and take precedence over
// public values of the same name when the viewer is one. Nested maps are
// reached with dotted names ("stats.str").
package values

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/arthur-debert/docrender/pkg/logging"
	"github.com/arthur-debert/docrender/pkg/template"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// DMKey holds the values reserved to the game master.
const DMKey = "dm"

// MarkupPrefix marks a string value as markup.
const MarkupPrefix = "="

// Format names a data file format.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json", ".jsonc":
		return JSON, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported values file %s", path).
			WithDetail("path", path)
	}
}

// Map is a value source backed by decoded data.
type Map struct {
	public map[string]interface{}
	dm     map[string]interface{}
}

// New returns a source for data, splitting off the "dm" section.
func New(data map[string]interface{}) *Map {
	m := &Map{public: make(map[string]interface{}, len(data))}
	for k, v := range data {
		if k == DMKey {
			if section, ok := asMap(v); ok {
				m.dm = section
				continue
			}
		}
		m.public[k] = v
	}
	return m
}

// Load reads a values file, choosing the parser by extension.
func Load(path string) (*Map, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read values file %s", path).
			WithDetail("path", path)
	}
	m, err := Parse(data, format)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("values")
	logger.Debug().Str("path", path).Int("values", len(m.public)).Msg("Loaded values")
	return m, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Map, error) {
	decoded := map[string]interface{}{}
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &decoded)
	case TOML:
		err = toml.Unmarshal(data, &decoded)
	case JSON:
		err = json.Unmarshal(jsonc.ToJSON(data), &decoded)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported values format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrParse, "cannot parse %s values", format)
	}
	return New(decoded), nil
}

// Names lists the public value names, sorted.
func (m *Map) Names() []string {
	names := make([]string, 0, len(m.public))
	for k := range m.public {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ComputeValue implements template.ValueSource.
func (m *Map) ComputeValue(name string, dm bool) (template.Formattable, bool) {
	if dm && m.dm != nil {
		if v, ok := lookup(m.dm, name); ok {
			return Formattable(v)
		}
	}
	v, ok := lookup(m.public, name)
	if !ok {
		return nil, false
	}
	return Formattable(v)
}

func lookup(data map[string]interface{}, name string) (interface{}, bool) {
	if v, ok := data[name]; ok {
		return v, true
	}
	parts := strings.Split(name, ".")
	var current interface{} = data
	for _, part := range parts {
		section, ok := asMap(current)
		if !ok {
			return nil, false
		}
		if current, ok = section[part]; !ok {
			return nil, false
		}
	}
	return current, true
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		converted := make(map[string]interface{}, len(m))
		for k, val := range m {
			converted[toString(k)] = val
		}
		return converted, true
	default:
		return nil, false
	}
}

// Formattable converts a decoded value. Strings starting with "=" are
// parsed as markup, lists are joined with ", ". Maps and markup that does
// not parse are not formattable.
func Formattable(v interface{}) (template.Formattable, bool) {
	node, ok := toNode(v)
	if !ok {
		return nil, false
	}
	if lit, isText := node.(command.Literal); isText {
		return template.Text(lit.Text), true
	}
	return template.Markup{Node: node}, true
}

func toNode(v interface{}) (command.Node, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case string:
		if markup, ok := strings.CutPrefix(val, MarkupPrefix); ok {
			node, err := command.Parse(markup)
			if err != nil {
				logger := logging.GetLogger("values")
				logger.Warn().Err(err).Str("value", val).Msg("Invalid markup value")
				return nil, false
			}
			return node, true
		}
		return command.Text(val), true
	case []interface{}:
		var nodes []command.Node
		for i, item := range val {
			node, ok := toNode(item)
			if !ok {
				continue
			}
			if i > 0 && len(nodes) > 0 {
				nodes = append(nodes, command.Text(", "))
			}
			nodes = append(nodes, node)
		}
		return joinLiterals(nodes), true
	case map[string]interface{}, map[interface{}]interface{}:
		return nil, false
	default:
		return command.Text(toString(val)), true
	}
}

// joinLiterals collapses a sequence made only of literals into one.
func joinLiterals(nodes []command.Node) command.Node {
	var b strings.Builder
	for _, n := range nodes {
		lit, ok := n.(command.Literal)
		if !ok {
			return command.Seq(nodes...)
		}
		b.WriteString(lit.Text)
	}
	return command.Text(b.String())
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
