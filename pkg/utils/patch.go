package utils

import (
	"encoding/json"

	"github.com/aarondl/null/v8"
)

// SentFields возвращает множество ключей верхнего уровня из тела запроса.
// Нужно для PATCH-семантики: "поле не прислали" и "прислали null" —
// разные состояния, и null.* сам по себе их не различает.
func SentFields(rawBody []byte) (map[string]struct{}, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rawBody, &raw); err != nil {
		return nil, err
	}
	sent := make(map[string]struct{}, len(raw))
	for key := range raw {
		sent[key] = struct{}{}
	}
	return sent, nil
}

func NullStringPtr(v null.String) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func NullIntPtr(v null.Int) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int)
	return &n
}
