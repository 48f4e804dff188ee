package messaging

import (
	"encoding/json"
	"testing"

	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRedirect(t *testing.T) {
	target, err := DecodeRedirect(json.RawMessage(`"/results?q=bio"`))
	require.NoError(t, err)
	assert.Equal(t, "/results?q=bio", target)

	target, err = DecodeRedirect(json.RawMessage(`{"url":"/results"}`))
	require.NoError(t, err)
	assert.Equal(t, "/results", target)

	_, err = DecodeRedirect(json.RawMessage(`""`))
	require.Error(t, err)
	_, err = DecodeRedirect(json.RawMessage(`42`))
	require.Error(t, err)
}

func TestDecodeSearchDone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: ``, want: DefaultResultsPath},
		{raw: `null`, want: DefaultResultsPath},
		{raw: `{}`, want: DefaultResultsPath},
		{raw: `{"url":""}`, want: DefaultResultsPath},
		{raw: `"oops"`, want: DefaultResultsPath},
		{raw: `{"url":"/results/42"}`, want: "/results/42"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DecodeSearchDone(json.RawMessage(tt.raw), DefaultResultsPath), "raw %q", tt.raw)
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	const fallback = "Search failed. Please try again."
	tests := []struct {
		raw  string
		want string
	}{
		{raw: `"No offers found"`, want: "No offers found"},
		{raw: `{"error":"Backend timeout"}`, want: "Backend timeout"},
		{raw: `{"message":"Rate limited"}`, want: "Rate limited"},
		{raw: `{}`, want: fallback},
		{raw: `""`, want: fallback},
		{raw: `null`, want: fallback},
		{raw: `[1,2]`, want: fallback},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DecodeErrorMessage(json.RawMessage(tt.raw), fallback), "raw %q", tt.raw)
	}
}

func TestDecodeRecommendations(t *testing.T) {
	recs, err := DecodeRecommendations(json.RawMessage(`[{"title":"Physics","summary":"Mechanics"}]`))
	require.NoError(t, err)
	assert.Equal(t, []entity.Recommendation{{Title: "Physics", Summary: "Mechanics"}}, recs)

	recs, err = DecodeRecommendations(json.RawMessage(`null`))
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = DecodeRecommendations(json.RawMessage(`"nope"`))
	require.Error(t, err)
}

func TestEnvelope(t *testing.T) {
	env, err := NewEnvelope(EventSearch, SearchRequest{Search: "calc"})
	require.NoError(t, err)
	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"Go_button_pushed","data":{"search":"calc"}}`, string(raw))

	parsed, err := ParseEnvelope(raw)
	require.NoError(t, err)
	assert.Equal(t, EventSearch, parsed.Event)
	assert.JSONEq(t, `{"search":"calc"}`, string(parsed.Data))

	_, err = ParseEnvelope([]byte(`{"data":1}`))
	require.Error(t, err)
	_, err = NewEnvelope("", nil)
	require.Error(t, err)
}

func TestRecommendationRequestWireNames(t *testing.T) {
	raw, err := json.Marshal(RecommendationRequest{CurrentBook: "Bio", History: []string{"a"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"currentBook":"Bio","history":["a"]}`, string(raw))
}
