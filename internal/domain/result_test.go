package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnswered(t *testing.T) {
	r := NewAnswered("ship it")
	assert.Equal(t, StatusAnswered, r.Status)
	assert.Equal(t, "ship it", r.Text)
	assert.True(t, r.Answered())
}

func TestNewCancelled(t *testing.T) {
	r := NewCancelled()
	assert.Equal(t, StatusCancelled, r.Status)
	assert.Empty(t, r.Text)
	assert.False(t, r.Answered())
}

func TestResult_RoundTripPreservesText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain", "Continue"},
		{"punctuation", `use "--force", then retry; 100% sure`},
		{"unicode", "naïve café — 値段は¥500です 🚀"},
		{"newlines and tabs", "line one\n\tline two"},
		{"leading and trailing spaces", "  padded  "},
		{"backslashes", `C:\Users\dev\repo`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(NewAnswered(tt.text))
			require.NoError(t, err)

			var got Result
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.text, got.Text)
			assert.Equal(t, StatusAnswered, got.Status)
		})
	}
}

func TestResult_Validate(t *testing.T) {
	tests := []struct {
		name    string
		result  Result
		wantErr bool
	}{
		{"answered", NewAnswered("ok"), false},
		{"cancelled", NewCancelled(), false},
		{"unknown status", Result{Status: "done"}, true},
		{"empty status", Result{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
