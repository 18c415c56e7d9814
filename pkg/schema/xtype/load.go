package xtype

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// DocFormat 定义类型定义文档格式。
type DocFormat string

// 支持的文档格式。
const (
	// DocYAML YAML 格式。
	DocYAML DocFormat = "yaml"
	// DocJSON JSON 格式。
	DocJSON DocFormat = "json"
)

// typesKey 是文档中类型定义所在的根键。
const typesKey = "types"

type typeDef struct {
	Length             string       `koanf:"length"`
	LengthErrorMessage string       `koanf:"length-error-message"`
	LengthErrorAppTag  string       `koanf:"length-error-app-tag"`
	Patterns           []patternDef `koanf:"patterns"`
}

type patternDef struct {
	Regexp       string `koanf:"regexp"`
	InvertMatch  bool   `koanf:"invert-match"`
	ErrorMessage string `koanf:"error-message"`
	ErrorAppTag  string `koanf:"error-app-tag"`
}

// LoadTypesFile 从文件加载类型定义，按扩展名（.yaml/.yml/.json）识别格式。
func LoadTypesFile(path string) (map[string]*Type, error) {
	format, err := detectDocFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return LoadTypes(data, format)
}

// LoadTypes 从字节数据加载类型定义，返回 类型名 → *Type。
// 空数据返回空 map。类型名不得包含 "."（koanf 键分隔符）。
func LoadTypes(data []byte, format DocFormat) (map[string]*Type, error) {
	var parser koanf.Parser
	switch format {
	case DocYAML:
		parser = yaml.Parser()
	case DocJSON:
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	k := koanf.New(".")
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}

	var defs map[string]typeDef
	if err := k.UnmarshalWithConf(typesKey, &defs, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	types := make(map[string]*Type, len(defs))
	for name, def := range defs {
		t, err := def.build(name)
		if err != nil {
			return nil, fmt.Errorf("type %q: %w", name, err)
		}
		types[name] = t
	}
	return types, nil
}

func (d typeDef) build(name string) (*Type, error) {
	t := &Type{Name: name}
	if d.Length != "" {
		l, err := ParseLength(d.Length)
		if err != nil {
			return nil, err
		}
		l.ErrorMessage = d.LengthErrorMessage
		l.ErrorAppTag = d.LengthErrorAppTag
		t.Length = l
	}
	for i, pd := range d.Patterns {
		p, err := CompilePattern(pd.Regexp)
		if err != nil {
			return nil, fmt.Errorf("pattern [%d]: %w", i, err)
		}
		p.InvertMatch = pd.InvertMatch
		p.ErrorMessage = pd.ErrorMessage
		p.ErrorAppTag = pd.ErrorAppTag
		t.Patterns = append(t.Patterns, p)
	}
	return t, nil
}

// detectDocFormat 根据文件扩展名检测文档格式。
func detectDocFormat(path string) (DocFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return DocYAML, nil
	case ".json":
		return DocJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}
