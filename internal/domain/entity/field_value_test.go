package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomFieldValueString(t *testing.T) {
	date := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	cases := []struct {
		name string
		val  CustomFieldValue
		want string
	}{
		{"text", TextValue("espresso"), "espresso"},
		{"number whole", NumberValue(42), "42"},
		{"number fractional", NumberValue(4.5), "4.5"},
		{"date", DateValue(date), "2025-03-14T09:26:53Z"},
		{"boolean true", BooleanValue(true), "true"},
		{"boolean false", BooleanValue(false), "false"},
		{"url", URLValue("https://example.com/a"), "https://example.com/a"},
		{"image", ImageValue("https://example.com/a.png"), "https://example.com/a.png"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.val.String())
		})
	}
}

func TestCustomFieldValueJSONEnvelope(t *testing.T) {
	b, err := json.Marshal(NumberValue(4.5))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"number","value":4.5}`, string(b))

	b, err = json.Marshal(TextValue("hi"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"text","value":"hi"}`, string(b))
}

func TestCustomFieldValueJSONRoundTrip(t *testing.T) {
	date := time.Date(2024, 12, 1, 18, 0, 0, 0, time.UTC)
	vals := []CustomFieldValue{
		TextValue("pour over"),
		NumberValue(3.25),
		DateValue(date),
		BooleanValue(true),
		URLValue("https://example.com"),
		ImageValue("https://example.com/x.jpg"),
	}
	for _, v := range vals {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		var got CustomFieldValue
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, v.Kind, got.Kind)
		assert.Equal(t, v.String(), got.String())
	}
}

func TestDateValueRoundTripKeepsSubSecondPrecision(t *testing.T) {
	date := time.Date(2024, 12, 1, 18, 0, 0, 123456789, time.UTC)
	b, err := json.Marshal(DateValue(date))
	require.NoError(t, err)

	var got CustomFieldValue
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, got.Date.Equal(date), "stored form must not truncate nanoseconds")

	// the canonical projection stays at second precision
	assert.Equal(t, "2024-12-01T18:00:00Z", got.String())
}

func TestCustomFieldValueUnknownKind(t *testing.T) {
	var v CustomFieldValue
	err := json.Unmarshal([]byte(`{"type":"color","value":"red"}`), &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field value kind")

	_, err = json.Marshal(CustomFieldValue{Kind: "color"})
	require.Error(t, err)
}
