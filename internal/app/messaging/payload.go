package messaging

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/bookmark/internal/domain/entity"
)

func isEmpty(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

// DecodeString reads a bare JSON string payload.
func DecodeString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("expected string payload: %w", err)
	}
	return s, nil
}

// DecodeRedirect reads the target URL of a redirect push.
func DecodeRedirect(raw json.RawMessage) (string, error) {
	target, err := DecodeString(raw)
	if err != nil {
		var obj struct {
			URL string `json:"url"`
		}
		if objErr := json.Unmarshal(raw, &obj); objErr != nil {
			return "", err
		}
		target = obj.URL
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return "", fmt.Errorf("redirect without target")
	}
	return target, nil
}

// DecodeSearchDone reads {url?} and falls back to fallback when absent.
func DecodeSearchDone(raw json.RawMessage, fallback string) string {
	if isEmpty(raw) {
		return fallback
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil || strings.TrimSpace(obj.URL) == "" {
		return fallback
	}
	return strings.TrimSpace(obj.URL)
}

// DecodeErrorMessage reads a string or {"error": string} payload.
// Anything else yields fallback.
func DecodeErrorMessage(raw json.RawMessage, fallback string) string {
	if isEmpty(raw) {
		return fallback
	}
	if s, err := DecodeString(raw); err == nil {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
		return fallback
	}
	var obj struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fallback
	}
	switch {
	case strings.TrimSpace(obj.Error) != "":
		return strings.TrimSpace(obj.Error)
	case strings.TrimSpace(obj.Message) != "":
		return strings.TrimSpace(obj.Message)
	default:
		return fallback
	}
}

// DecodeRecommendations reads the ai_recommendations list.
// A null payload is an empty list.
func DecodeRecommendations(raw json.RawMessage) ([]entity.Recommendation, error) {
	if isEmpty(raw) {
		return []entity.Recommendation{}, nil
	}
	var recs []entity.Recommendation
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, fmt.Errorf("expected recommendation list: %w", err)
	}
	return recs, nil
}
