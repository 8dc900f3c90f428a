package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf).Level(zerolog.InfoLevel)

	logger.Info().Str("artifact", "common_section.html").Msg("parsed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parsed", entry["message"])
	assert.Equal(t, "common_section.html", entry["artifact"])
}

func TestDefaultIsUsable(t *testing.T) {
	assert.NotNil(t, Default())
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	assert.Equal(t, &logger, FromContext(ctx))
	assert.Equal(t, &logger, Ctx(ctx))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))
	assert.Equal(t, Default(), FromContext(nil)) //nolint:staticcheck // exercising the nil guard
}
