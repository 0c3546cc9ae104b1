// internal/metrics/decode.go
package metrics

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
)

// Object is a JSON object that remembers key order. A key repeated inside the
// same object keeps its first position and takes the last value.
type Object struct {
	keys   []string
	fields map[string]json.RawMessage
}

// Keys returns the keys in document order.
func (o *Object) Keys() []string { return o.keys }

// Len returns the number of distinct keys.
func (o *Object) Len() int { return len(o.keys) }

// Get returns the raw value stored under key.
func (o *Object) Get(key string) (json.RawMessage, bool) {
	v, ok := o.fields[key]
	return v, ok
}

func (o *Object) set(key string, value json.RawMessage) {
	if o.fields == nil {
		o.fields = make(map[string]json.RawMessage)
	}
	if _, seen := o.fields[key]; !seen {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = value
}

// RawLevel is one level record: the identifier and its compression and
// decompression sub-objects, still undecoded.
type RawLevel struct {
	ID     string
	Record *Object
}

// RawAlgorithm holds an algorithm's level records in document order.
type RawAlgorithm struct {
	Name   string
	Levels []RawLevel
}

// RawFile is one top-level entry of the benchmark document.
type RawFile struct {
	Name       string
	Algorithms []RawAlgorithm
}

// RawDocument is the benchmark document with document order preserved at
// every nesting level.
type RawDocument []RawFile

// DecodeDocument parses a benchmark document: an array of single-key objects
// mapping file -> algorithm -> level -> record. Structural deviations are
// reported as ErrMalformedJSONShape.
func DecodeDocument(data []byte) (RawDocument, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, shapeError("document is not valid JSON: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, shapeError("document must be a JSON array of single-key objects, found %v", tok)
	}

	var doc RawDocument
	for index := 0; dec.More(); index++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, shapeError("entry %d: %v", index, err)
		}
		entry, err := decodeObject(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d", index)
		}
		if entry.Len() != 1 {
			return nil, shapeError("entry %d must have exactly one key (the file name), found %d", index, entry.Len())
		}
		name := entry.Keys()[0]
		body, _ := entry.Get(name)
		file, err := decodeFile(name, body)
		if err != nil {
			return nil, err
		}
		doc = append(doc, file)
	}

	if _, err := dec.Token(); err != nil {
		return nil, shapeError("unterminated document array: %v", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, shapeError("trailing data after document array")
	}
	return doc, nil
}

func decodeFile(name string, body json.RawMessage) (RawFile, error) {
	algorithms, err := decodeObject(body)
	if err != nil {
		return RawFile{}, errors.Wrapf(err, "file %q", name)
	}
	file := RawFile{Name: name}
	for _, alg := range algorithms.Keys() {
		levelsRaw, _ := algorithms.Get(alg)
		levels, err := decodeObject(levelsRaw)
		if err != nil {
			return RawFile{}, errors.Wrapf(err, "file %q algorithm %q", name, alg)
		}
		ra := RawAlgorithm{Name: alg}
		for _, id := range levels.Keys() {
			recRaw, _ := levels.Get(id)
			rec, err := decodeObject(recRaw)
			if err != nil {
				return RawFile{}, errors.Wrapf(err, "file %q algorithm %q level %q", name, alg, id)
			}
			ra.Levels = append(ra.Levels, RawLevel{ID: id, Record: rec})
		}
		file.Algorithms = append(file.Algorithms, ra)
	}
	return file, nil
}

// decodeObject reads one JSON object, keeping key order.
func decodeObject(raw json.RawMessage) (*Object, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, shapeError("invalid JSON: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, shapeError("expected an object, found %s", describeToken(tok))
	}

	obj := &Object{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, shapeError("invalid object key: %v", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, shapeError("invalid object key %v", keyTok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, shapeError("invalid value for key %q: %v", key, err)
		}
		obj.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, shapeError("unterminated object: %v", err)
	}
	return obj, nil
}

func describeToken(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "an array"
		}
		return v.String()
	case string:
		return "a string"
	case json.Number:
		return "a number"
	case bool:
		return "a boolean"
	case nil:
		return "null"
	default:
		return "an unexpected token"
	}
}
