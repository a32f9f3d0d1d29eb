package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// FieldValueKind discriminates the closed set of custom field value types.
type FieldValueKind string

const (
	FieldText    FieldValueKind = "text"
	FieldNumber  FieldValueKind = "number"
	FieldDate    FieldValueKind = "date"
	FieldBoolean FieldValueKind = "boolean"
	FieldURL     FieldValueKind = "url"
	FieldImage   FieldValueKind = "image"
)

// CustomFieldValue is a tagged union over the six supported field value
// types. Only the payload selected by Kind is meaningful; the zero values of
// the other payload fields are ignored.
type CustomFieldValue struct {
	Kind     FieldValueKind
	Text     string
	Number   float64
	Date     time.Time
	Boolean  bool
	URL      string
	ImageURL string
}

func TextValue(s string) CustomFieldValue    { return CustomFieldValue{Kind: FieldText, Text: s} }
func NumberValue(n float64) CustomFieldValue { return CustomFieldValue{Kind: FieldNumber, Number: n} }
func DateValue(t time.Time) CustomFieldValue { return CustomFieldValue{Kind: FieldDate, Date: t} }
func BooleanValue(b bool) CustomFieldValue   { return CustomFieldValue{Kind: FieldBoolean, Boolean: b} }
func URLValue(u string) CustomFieldValue     { return CustomFieldValue{Kind: FieldURL, URL: u} }
func ImageValue(url string) CustomFieldValue { return CustomFieldValue{Kind: FieldImage, ImageURL: url} }

// String returns the canonical projection of the value: numbers via the
// default numeric formatting, dates as RFC 3339, booleans as "true"/"false",
// url/image as their absolute string form.
func (v CustomFieldValue) String() string {
	switch v.Kind {
	case FieldText:
		return v.Text
	case FieldNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case FieldDate:
		return v.Date.UTC().Format(time.RFC3339)
	case FieldBoolean:
		return strconv.FormatBool(v.Boolean)
	case FieldURL:
		return v.URL
	case FieldImage:
		return v.ImageURL
	}
	return ""
}

type fieldValueJSON struct {
	Type  FieldValueKind  `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON encodes the value as {"type": ..., "value": ...} so the stored
// form keeps its discriminator across a write-then-read cycle.
func (v CustomFieldValue) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.Kind {
	case FieldText:
		payload = v.Text
	case FieldNumber:
		payload = v.Number
	case FieldDate:
		// Nano precision in the stored form; String() stays at seconds.
		payload = v.Date.UTC().Format(time.RFC3339Nano)
	case FieldBoolean:
		payload = v.Boolean
	case FieldURL:
		payload = v.URL
	case FieldImage:
		payload = v.ImageURL
	default:
		return nil, fmt.Errorf("unknown field value kind %q", v.Kind)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(fieldValueJSON{Type: v.Kind, Value: raw})
}

func (v *CustomFieldValue) UnmarshalJSON(data []byte) error {
	var env fieldValueJSON
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	out := CustomFieldValue{Kind: env.Type}
	switch env.Type {
	case FieldText:
		if err := json.Unmarshal(env.Value, &out.Text); err != nil {
			return err
		}
	case FieldNumber:
		if err := json.Unmarshal(env.Value, &out.Number); err != nil {
			return err
		}
	case FieldDate:
		var s string
		if err := json.Unmarshal(env.Value, &s); err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return err
		}
		out.Date = t
	case FieldBoolean:
		if err := json.Unmarshal(env.Value, &out.Boolean); err != nil {
			return err
		}
	case FieldURL:
		if err := json.Unmarshal(env.Value, &out.URL); err != nil {
			return err
		}
	case FieldImage:
		if err := json.Unmarshal(env.Value, &out.ImageURL); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown field value kind %q", env.Type)
	}
	*v = out
	return nil
}
