package client

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// IndexResult scores a position in the caller supplied texts or labels.
type IndexResult struct {
	ID    int     `json:"id"`
	Score float64 `json:"score"`
}

// SearchResult scores a document id of the embeddings index. Text is only
// set when the index stores content.
type SearchResult struct {
	ID    string  `json:"id"`
	Text  string  `json:"text,omitempty"`
	Score float64 `json:"score"`
}

type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// NewDocument returns a document with a random id.
func NewDocument(text string) Document {
	return Document{
		ID:   uuid.NewString(),
		Text: text,
	}
}

type Question struct {
	Name     string `json:"name"`
	Query    string `json:"query"`
	Question string `json:"question"`
	Snippet  bool   `json:"snippet"`
}

type Answer struct {
	Name   string `json:"name"`
	Answer string `json:"answer"`
}

func (a Answer) String() string {
	return a.Name + " " + a.Answer
}

type TextKind int

const (
	TextSingle TextKind = iota
	TextList
)

// Text is returned by pipelines that produce either one string or a list
// of strings for a single input.
type Text struct {
	kind TextKind

	value  string
	values []string
}

func SingleText(value string) Text {
	return Text{kind: TextSingle, value: value}
}

func ListText(values ...string) Text {
	return Text{kind: TextList, values: values}
}

func (t Text) Kind() TextKind {
	return t.kind
}

func (t Text) IsList() bool {
	return t.kind == TextList
}

func (t Text) Single() (string, bool) {
	return t.value, t.kind == TextSingle
}

func (t Text) List() ([]string, bool) {
	return t.values, t.kind == TextList
}

func (t Text) String() string {
	if t.kind == TextList {
		return strings.Join(t.values, "\n")
	}

	return t.value
}

func (t Text) MarshalJSON() ([]byte, error) {
	if t.kind == TextList {
		if t.values == nil {
			return []byte("[]"), nil
		}

		return json.Marshal(t.values)
	}

	return json.Marshal(t.value)
}

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '[' {
		var values []string

		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}

		*t = ListText(values...)
		return nil
	}

	var value string

	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	*t = SingleText(value)
	return nil
}
