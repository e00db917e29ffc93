package session

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Start(t *testing.T) {
	// when
	ctx, id := Start(context.Background())
	// then
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, ID(ctx))
	assert.Empty(t, ID(context.Background()))
}

func Test_ContextHandler(t *testing.T) {
	testCases := []struct {
		name     string
		ctx      context.Context
		expected any
	}{
		{
			name:     "with session",
			ctx:      WithID(context.Background(), "abc"),
			expected: "abc",
		},
		{
			name:     "without session",
			ctx:      context.Background(),
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			var buf bytes.Buffer
			logger := slog.New(NewContextHandler(slog.NewJSONHandler(&buf, nil))).With("component", "test")
			// when
			logger.InfoContext(tc.ctx, "hello")
			// then
			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, tc.expected, record["session_id"])
			assert.Equal(t, "test", record["component"])
		})
	}
}
