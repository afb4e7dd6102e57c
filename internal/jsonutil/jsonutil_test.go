package jsonutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{name: "valid JSON", data: []byte(`{"name":"test"}`)},
		{name: "invalid JSON", data: []byte(`not json`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "test context")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", v.Name)
		})
	}
}

func TestDecodeOr(t *testing.T) {
	fallback := []string{"default"}

	got, err := DecodeOr(nil, fallback)
	assert.NoError(t, err)
	assert.Equal(t, fallback, got)

	got, err = DecodeOr([]byte(`["a","b"]`), fallback)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = DecodeOr([]byte(`{broken`), fallback)
	assert.Error(t, err)
	assert.Equal(t, fallback, got)
}

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
			w.Write([]byte(`{"a":{"b":3}}`))
		case "/garbage":
			w.Write([]byte(`<html>`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	doc, err := FetchJSON(context.Background(), srv.Client(), srv.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, int64(3), doc.Get("a.b").Int())

	_, err = FetchJSON(context.Background(), srv.Client(), srv.URL+"/garbage")
	assert.ErrorContains(t, err, "invalid JSON")

	_, err = FetchJSON(context.Background(), srv.Client(), srv.URL+"/down")
	assert.ErrorContains(t, err, "unexpected status 502")
}

func TestFloat(t *testing.T) {
	doc := gjson.Parse(`{"n":1.5,"s":"2.25","bad":"x"}`)
	assert.Equal(t, 1.5, Float(doc.Get("n")))
	assert.Equal(t, 2.25, Float(doc.Get("s")))
	assert.Equal(t, 0.0, Float(doc.Get("bad")))
	assert.Equal(t, 0.0, Float(doc.Get("missing")))
}

func TestEmbeddedArray(t *testing.T) {
	doc := gjson.Parse(`{"str":"[\"0.42\",\"0.58\"]","arr":[1,2],"num":3}`)

	str := EmbeddedArray(doc.Get("str"))
	require.Len(t, str, 2)
	assert.Equal(t, 0.42, str[0].Float())

	assert.Len(t, EmbeddedArray(doc.Get("arr")), 2)
	assert.Nil(t, EmbeddedArray(doc.Get("num")))
}
