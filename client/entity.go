package client

import (
	"bytes"
	"encoding/json"
)

// Progress tells whether a query has returned all of its data.
type Progress string

const (
	// ProgressComplete means no more data exists for the query.
	ProgressComplete Progress = "Complete"
	// ProgressIncomplete means more data may exist; query again.
	ProgressIncomplete Progress = "Incomplete"
)

// ParseProgress maps "Complete" to ProgressComplete and anything else,
// including the empty string, to ProgressIncomplete.
func ParseProgress(s string) Progress {
	if s == string(ProgressComplete) {
		return ProgressComplete
	}
	return ProgressIncomplete
}

// IsComplete reports whether p is ProgressComplete.
func (p Progress) IsComplete() bool {
	return p == ProgressComplete
}

// UnmarshalJSON normalises any value other than "Complete" to
// ProgressIncomplete.
func (p *Progress) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*p = ProgressIncomplete
		return nil
	}
	*p = ParseProgress(s)
	return nil
}

// HistogramEntity is one bucket of a time-bucketed count query.
type HistogramEntity struct {
	From     int64    `json:"from" yaml:"from"`
	To       int64    `json:"to" yaml:"to"`
	Count    int64    `json:"count" yaml:"count"`
	Progress Progress `json:"progress" yaml:"progress"`
}

// UnmarshalJSON decodes a bucket. A missing progress key reads as
// ProgressIncomplete.
func (h *HistogramEntity) UnmarshalJSON(b []byte) error {
	type bucket HistogramEntity
	v := bucket{Progress: ProgressIncomplete}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*h = HistogramEntity(v)
	return nil
}

// Reserved log fields, present in every LogEntity.
const (
	FieldTopic  = "__topic__"
	FieldSource = "__source__"
	FieldTime   = "__time__"
)

var reservedFields = []string{FieldTopic, FieldSource, FieldTime}

// LogEntity is one log line: the reserved fields plus the parsed key/value
// pairs of the log.
type LogEntity map[string]string

// Topic returns the __topic__ field.
func (e LogEntity) Topic() string { return e[FieldTopic] }

// Source returns the __source__ field.
func (e LogEntity) Source() string { return e[FieldSource] }

// Time returns the __time__ field (unix seconds, as sent by the service).
func (e LogEntity) Time() string { return e[FieldTime] }

// Contents returns the fields that are not reserved.
func (e LogEntity) Contents() map[string]string {
	contents := make(map[string]string, len(e))
	for k, v := range e {
		switch k {
		case FieldTopic, FieldSource, FieldTime:
			continue
		}
		contents[k] = v
	}
	return contents
}

// UnmarshalJSON decodes a JSON object into string fields. Non-string
// scalars keep their literal text and missing reserved fields are set to "".
// A null element decodes to an entity holding only the empty reserved fields.
func (e *LogEntity) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	entity := make(LogEntity, len(raw)+len(reservedFields))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			entity[k] = s
			continue
		}
		entity[k] = string(bytes.TrimSpace(v))
	}
	for _, k := range reservedFields {
		if _, ok := entity[k]; !ok {
			entity[k] = ""
		}
	}
	*e = entity
	return nil
}
