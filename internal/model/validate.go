package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// ParseCharacter декодирует JSON-ответ API и валидирует его в Character.
// Числа декодируются как json.Number, чтобы не терять точность id.
func ParseCharacter(data []byte) (Character, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return Character{}, &ValidationError{Fields: []FieldError{
			{Field: "body", Message: "expected a JSON object: " + err.Error()},
		}}
	}

	return Validate(raw)
}

// Validate преобразует раскодированный JSON-объект в неизменяемый Character.
// Лишние ключи игнорируются. Строковые поля очищаются от окружающих
// пробелов. При любом нарушении схемы возвращается *ValidationError,
// и частично построенное значение наружу не отдается.
func Validate(raw map[string]any) (Character, error) {
	v := &validator{raw: raw}

	c := Character{
		id:       v.intField("id"),
		name:     v.stringField("name"),
		status:   v.stringField("status"),
		species:  v.stringField("species"),
		kind:     v.stringField("type"),
		gender:   v.stringField("gender"),
		origin:   v.locationField("origin"),
		location: v.locationField("location"),
		image:    v.urlField("image"),
		episode:  v.episodeField("episode"),
		url:      v.urlField("url"),
		created:  v.stringField("created"),
	}

	if len(v.errs) > 0 {
		return Character{}, &ValidationError{Fields: v.errs}
	}

	return c, nil
}

// validator накапливает ошибки полей по мере обхода схемы
type validator struct {
	raw  map[string]any
	errs []FieldError
}

func (v *validator) fail(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

func (v *validator) stringField(key string) string {
	val, ok := v.raw[key]
	if !ok {
		v.fail(key, "required field is missing")
		return ""
	}

	s, ok := val.(string)
	if !ok {
		v.fail(key, "expected a string")
		return ""
	}

	return strings.TrimSpace(s)
}

func (v *validator) intField(key string) int {
	val, ok := v.raw[key]
	if !ok {
		v.fail(key, "required field is missing")
		return 0
	}

	switch n := val.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			v.fail(key, "expected an integer")
			return 0
		}
		return int(i)
	case float64:
		// карта могла быть раскодирована без UseNumber
		if n != float64(int(n)) {
			v.fail(key, "expected an integer")
			return 0
		}
		return int(n)
	default:
		v.fail(key, "expected an integer")
		return 0
	}
}

func (v *validator) urlField(key string) string {
	val, ok := v.raw[key]
	if !ok {
		v.fail(key, "required field is missing")
		return ""
	}

	s, ok := val.(string)
	if !ok {
		v.fail(key, "expected a URL string")
		return ""
	}

	s = strings.TrimSpace(s)
	if !isAbsoluteURL(s) {
		v.fail(key, "expected an absolute http(s) URL")
		return ""
	}

	return s
}

func (v *validator) locationField(key string) LocationRef {
	val, ok := v.raw[key]
	if !ok {
		v.fail(key, "required field is missing")
		return LocationRef{}
	}

	m, ok := val.(map[string]any)
	if !ok {
		v.fail(key, "expected an object with name and url")
		return LocationRef{}
	}

	var ref LocationRef

	name, ok := m["name"]
	if !ok {
		v.fail(key+".name", "required field is missing")
	} else if s, isString := name.(string); !isString {
		v.fail(key+".name", "expected a string")
	} else {
		ref.name = strings.TrimSpace(s)
	}

	rawURL, ok := m["url"]
	if !ok {
		v.fail(key+".url", "required field is missing")
	} else if s, isString := rawURL.(string); !isString {
		v.fail(key+".url", "expected a URL string")
	} else {
		s = strings.TrimSpace(s)
		// API возвращает "" когда локация не связана с персонажем
		if s != "" && !isAbsoluteURL(s) {
			v.fail(key+".url", "expected an absolute http(s) URL or an empty string")
		} else {
			ref.url = s
		}
	}

	return ref
}

func (v *validator) episodeField(key string) []string {
	val, ok := v.raw[key]
	if !ok {
		// отсутствующий список эпизодов эквивалентен пустому
		return []string{}
	}

	list, ok := val.([]any)
	if !ok {
		v.fail(key, "expected a list of URL strings")
		return []string{}
	}

	episodes := make([]string, 0, len(list))
	for i, item := range list {
		s, isString := item.(string)
		if !isString {
			v.fail(fmt.Sprintf("%s[%d]", key, i), "expected a URL string")
			continue
		}

		s = strings.TrimSpace(s)
		if !isAbsoluteURL(s) {
			v.fail(fmt.Sprintf("%s[%d]", key, i), "expected an absolute http(s) URL")
			continue
		}

		episodes = append(episodes, s)
	}

	return episodes
}

// isAbsoluteURL проверяет, что строка — синтаксически корректный
// абсолютный http(s) URL
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
