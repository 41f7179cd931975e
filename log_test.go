package erroz

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLogValue_Slog(t *testing.T) {
	class := MustDefine(&Definition{Name: "NotFound", Template: "%resource not found", StatusCode: Int(404)})
	e := class.New(Data{"resource": "User"})

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Error("request failed", "error", e)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	group, ok := entry["error"].(map[string]any)
	require.True(t, ok, "error should be logged as a group: %s", buf.String())
	require.Equal(t, "NotFound", group["name"])
	require.Equal(t, "not-found", group["code"])
	require.Equal(t, "fail", group["status"])
	require.Equal(t, float64(404), group["statusCode"])
	require.Equal(t, "User not found", group["message"])
	require.Equal(t, map[string]any{"resource": "User"}, group["data"])
	require.NotContains(t, group, "stack")
}

func TestLogValue_SlogIncludeStack(t *testing.T) {
	class := MustDefine(&Definition{Name: "TestError", Message: "m"}, WithIncludeStack(true))
	e := class.New(nil)

	group := e.LogValue().Group()
	var stack string
	for _, attr := range group {
		if attr.Key == "stack" {
			stack = attr.Value.String()
		}
	}
	require.Equal(t, e.Stack(), stack)
}

func TestMarshalZerologObject(t *testing.T) {
	class := MustDefine(&Definition{Name: "NotFound", Template: "%resource not found", StatusCode: Int(404)},
		WithIncludeStack(true))
	e := class.New(Data{"resource": "User"})

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Error().Object("error", e).Msg("request failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	obj, ok := entry["error"].(map[string]any)
	require.True(t, ok, "error should be logged as an object: %s", buf.String())
	require.Equal(t, "NotFound", obj["name"])
	require.Equal(t, "not-found", obj["code"])
	require.Equal(t, "fail", obj["status"])
	require.Equal(t, float64(404), obj["statusCode"])
	require.Equal(t, "User not found", obj["message"])
	require.Equal(t, map[string]any{"resource": "User"}, obj["data"])
	require.Equal(t, e.Stack(), obj["stack"])
	require.Equal(t, "request failed", entry["message"])
}
