package txtai

import (
	"slices"
	"sync"
)

// Index stores documents in insertion order. Added documents stay pending
// until Build or Upsert commits them.
type Index struct {
	mu sync.RWMutex

	pending []Document

	ids   []string
	texts map[string]string
}

func NewIndex() *Index {
	return &Index{
		texts: make(map[string]string),
	}
}

func (x *Index) Add(docs ...Document) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.pending = append(x.pending, docs...)
}

// Build replaces the committed documents with the pending ones.
func (x *Index) Build() {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.ids = nil
	x.texts = make(map[string]string)

	x.commit()
}

// Upsert merges the pending documents into the committed ones.
func (x *Index) Upsert() {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.commit()
}

func (x *Index) commit() {
	for _, d := range x.pending {
		if _, ok := x.texts[d.ID]; !ok {
			x.ids = append(x.ids, d.ID)
		}

		x.texts[d.ID] = d.Text
	}

	x.pending = nil
}

// Delete removes ids and returns those that existed, in request order.
func (x *Index) Delete(ids ...string) []string {
	x.mu.Lock()
	defer x.mu.Unlock()

	deleted := []string{}

	for _, id := range ids {
		if _, ok := x.texts[id]; !ok {
			continue
		}

		delete(x.texts, id)
		x.ids = slices.DeleteFunc(x.ids, func(s string) bool { return s == id })

		deleted = append(deleted, id)
	}

	return deleted
}

func (x *Index) Count() int {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return len(x.ids)
}

func (x *Index) Documents() []Document {
	x.mu.RLock()
	defer x.mu.RUnlock()

	docs := make([]Document, 0, len(x.ids))

	for _, id := range x.ids {
		docs = append(docs, Document{ID: id, Text: x.texts[id]})
	}

	return docs
}

func (x *Index) Search(query string, limit int) []Result {
	docs := x.Documents()

	texts := make([]string, len(docs))

	for i, d := range docs {
		texts[i] = d.Text
	}

	results := []Result{}

	for _, r := range rank(query, texts) {
		if len(results) >= limit {
			break
		}

		doc := docs[r.ID]

		results = append(results, Result{
			ID:    doc.ID,
			Text:  doc.Text,
			Score: r.Score,
		})
	}

	return results
}
