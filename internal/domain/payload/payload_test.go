package payload

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, fields map[string]string, image []byte) (string, []byte) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if image != nil {
		fw, err := w.CreateFormFile(ImageField, "photo.png")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return w.FormDataContentType(), buf.Bytes()
}

func TestStr(t *testing.T) {
	assert.Equal(t, "hello", Str("  hello \n"))
	assert.Equal(t, "", Str(42))
	assert.Equal(t, "", Str(nil))
	assert.Equal(t, "", Str(true))
}

func TestBool(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		fallback bool
		want     bool
	}{
		{name: "native true", value: true, fallback: false, want: true},
		{name: "native false", value: false, fallback: true, want: false},
		{name: "string TRUE", value: "TRUE", fallback: false, want: true},
		{name: "string False", value: "False", fallback: true, want: false},
		{name: "garbage string", value: "yes", fallback: true, want: true},
		{name: "number", value: float64(1), fallback: false, want: false},
		{name: "absent", value: nil, fallback: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bool(tt.value, tt.fallback))
		})
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{name: "array", value: []any{" a ", "", "b", 3}, want: []string{"a", "b"}},
		{name: "json string array", value: `["x", " y ", ""]`, want: []string{"x", "y"}},
		{name: "json string non array", value: `{"a":1}`, want: []string{}},
		{name: "plain string", value: " https://example.com ", want: []string{"https://example.com"}},
		{name: "blank string", value: "   ", want: []string{}},
		{name: "empty string", value: "", want: []string{}},
		{name: "absent", value: nil, want: []string{}},
		{name: "number", value: float64(7), want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, List(tt.value))
		})
	}
}

func TestParse_JSON(t *testing.T) {
	p, err := Parse("application/json", []byte(`{"text":"  buy milk ","completed":"true","links":["a"]}`))
	require.NoError(t, err)

	assert.Equal(t, KindJSON, p.Kind)
	assert.Nil(t, p.File)
	assert.Equal(t, "buy milk", p.String("text"))
	assert.True(t, p.Bool("completed", false))
	assert.Equal(t, []string{"a"}, p.List("links"))
	assert.False(t, p.Has("removeImage"))
	assert.Nil(t, p.OptBool("removeImage"))
	assert.Nil(t, p.OptString("description"))
}

func TestParse_InvalidJSONIsEmpty(t *testing.T) {
	for _, body := range []string{"", "{not json", `["array"]`} {
		p, err := Parse("application/json", []byte(body))
		require.NoError(t, err)
		assert.False(t, p.Has("text"), body)
		assert.Equal(t, "", p.String("text"))
	}
}

func TestParse_Multipart(t *testing.T) {
	ct, body := multipartBody(t, map[string]string{
		"name":   " Morning run ",
		"pinned": "TRUE",
		"links":  `["https://a.example", ""]`,
	}, []byte("\x89PNG\r\n\x1a\nfake"))

	p, err := Parse(ct, body)
	require.NoError(t, err)

	assert.Equal(t, KindMultipart, p.Kind)
	assert.Equal(t, "Morning run", p.String("name"))
	require.NotNil(t, p.OptBool("pinned"))
	assert.True(t, *p.OptBool("pinned"))
	assert.Equal(t, []string{"https://a.example"}, p.List("links"))
	require.NotNil(t, p.File)
	assert.Equal(t, "photo.png", p.File.Name)
	assert.NotEmpty(t, p.File.Data)
}

func TestParse_MultipartEmptyFileIgnored(t *testing.T) {
	ct, body := multipartBody(t, map[string]string{"text": "x"}, []byte{})

	p, err := Parse(ct, body)
	require.NoError(t, err)
	assert.Nil(t, p.File)
}

func TestParse_MultipartMissingBoundary(t *testing.T) {
	_, err := Parse("multipart/form-data", []byte("whatever"))
	assert.ErrorIs(t, err, ErrMalformed)
}
