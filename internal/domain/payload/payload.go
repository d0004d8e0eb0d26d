// Package payload приводит тело запроса (JSON или multipart/form-data)
// к единому набору полей с типизированным доступом.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"strings"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"
)

// ImageField имя multipart части с файлом изображения.
const ImageField = "image"

const maxFormMemory = 32 << 20

var ErrMalformed = apperr.Validation("malformed_payload", "Invalid form data")

type Kind int

const (
	KindJSON Kind = iota
	KindMultipart
)

func (k Kind) String() string {
	if k == KindMultipart {
		return "multipart"
	}
	return "json"
}

// File содержимое загруженного файла. Пустые файлы в Payload не попадают.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type Payload struct {
	Kind   Kind
	File   *File
	fields map[string]any
}

// FromFields собирает JSON payload из готовой карты полей.
func FromFields(fields map[string]any) *Payload {
	if fields == nil {
		fields = map[string]any{}
	}
	return &Payload{Kind: KindJSON, fields: fields}
}

// Parse разбирает тело по Content-Type. Невалидный JSON трактуется как пустой объект.
func Parse(contentType string, body []byte) (*Payload, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err == nil && mediaType == "multipart/form-data" {
		return parseMultipart(params["boundary"], body)
	}

	return parseJSON(body), nil
}

func parseJSON(body []byte) *Payload {
	var fields map[string]any
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &fields); err != nil {
			fields = nil
		}
	}
	return FromFields(fields)
}

func parseMultipart(boundary string, body []byte) (*Payload, error) {
	if boundary == "" {
		return nil, fmt.Errorf("%w: missing boundary", ErrMalformed)
	}

	form, err := multipart.NewReader(bytes.NewReader(body), boundary).ReadForm(maxFormMemory)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer form.RemoveAll()

	p := &Payload{Kind: KindMultipart, fields: make(map[string]any, len(form.Value))}
	for key, values := range form.Value {
		if len(values) > 0 {
			p.fields[key] = values[0]
		}
	}

	if headers := form.File[ImageField]; len(headers) > 0 && headers[0].Size > 0 {
		file, err := readFile(headers[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		p.File = file
	}

	return p, nil
}

func readFile(fh *multipart.FileHeader) (*File, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (p *Payload) Has(key string) bool {
	_, ok := p.fields[key]
	return ok
}

func (p *Payload) Raw(key string) (any, bool) {
	v, ok := p.fields[key]
	return v, ok
}

func (p *Payload) String(key string) string {
	return Str(p.fields[key])
}

// OptString возвращает nil, если поле отсутствует.
func (p *Payload) OptString(key string) *string {
	if !p.Has(key) {
		return nil
	}
	s := p.String(key)
	return &s
}

func (p *Payload) Bool(key string, fallback bool) bool {
	return Bool(p.fields[key], fallback)
}

// OptBool возвращает nil, если поле отсутствует или не приводится к bool.
func (p *Payload) OptBool(key string) *bool {
	b, ok := ParseBool(p.fields[key])
	if !ok {
		return nil
	}
	return &b
}

func (p *Payload) List(key string) []string {
	return List(p.fields[key])
}

// Str обрезает пробелы у строки, для остальных типов возвращает "".
func Str(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// ParseBool принимает bool или строки "true"/"false" без учета регистра.
func ParseBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(t) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func Bool(v any, fallback bool) bool {
	if b, ok := ParseBool(v); ok {
		return b
	}
	return fallback
}

// List принимает массив или JSON строку с массивом. Строку, которая не
// разбирается как JSON, считает списком из одного элемента.
func List(v any) []string {
	switch t := v.(type) {
	case []any:
		return compact(t)
	case []string:
		items := make([]any, len(t))
		for i, s := range t {
			items[i] = s
		}
		return compact(items)
	case string:
		if t == "" {
			return []string{}
		}
		var parsed any
		if err := json.Unmarshal([]byte(t), &parsed); err != nil {
			return compact([]any{t})
		}
		if arr, ok := parsed.([]any); ok {
			return compact(arr)
		}
	}
	return []string{}
}

func compact(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := Str(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
