package prompt

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// promptSet 은 파일 이름(확장자 제외)별 필드 맵이다.
type promptSet map[string]map[string]string

// loadFile 은 프롬프트 YAML 한 개를 key -> 문자열 맵으로 읽는다.
// 값은 스칼라만 허용하며 블록 스칼라 끝 줄바꿈은 제거한다. 구분자는 조합하는 쪽에서 붙인다.
func loadFile(fsys fs.FS, filePath string) (map[string]string, error) {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("read prompt file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}

	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			fields[key] = ""
		case map[string]any, []any:
			return nil, fmt.Errorf("%s: field %q must be a scalar", filePath, key)
		default:
			fields[key] = strings.TrimRight(fmt.Sprint(v), "\n")
		}
	}

	if system := fields["system"]; strings.TrimSpace(system) != "" {
		if err := ValidateSystemStatic(filePath, system); err != nil {
			return nil, err
		}
	}
	return fields, nil
}

// loadDir 은 dir 의 *.yml, *.yaml 을 읽는다. 같은 이름이 두 확장자로 있으면 에러다.
func loadDir(fsys fs.FS, dir string) (promptSet, error) {
	var paths []string
	for _, pattern := range []string{"*.yml", "*.yaml"} {
		matched, err := fs.Glob(fsys, path.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob prompt dir: %w", err)
		}
		paths = append(paths, matched...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no prompt files in %s", dir)
	}

	set := make(promptSet, len(paths))
	for _, filePath := range paths {
		name := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		if _, dup := set[name]; dup {
			return nil, fmt.Errorf("duplicate prompt name: %s", name)
		}
		fields, err := loadFile(fsys, filePath)
		if err != nil {
			return nil, err
		}
		set[name] = fields
	}
	return set, nil
}

// field 는 name.key 값을 찾는다.
func (s promptSet) field(name string, key string) (string, error) {
	fields, ok := s[name]
	if !ok {
		return "", fmt.Errorf("prompt not found: %s (loaded: %s)", name, strings.Join(s.names(), ", "))
	}
	value, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("prompt field missing: %s.%s", name, key)
	}
	return value, nil
}

// names 는 로드된 프롬프트 이름을 정렬해 반환한다.
func (s promptSet) names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
