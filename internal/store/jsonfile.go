package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/arshia5/course-scheduler/internal/domain"
)

// JSONStore keeps every student's catalog in a single JSON file:
//
//	{ "s123": { "courses": { "Math": [["Monday", "08:00", "09:00"]] } } }
//
// Course key order in the file is catalog insertion order, so decoding walks
// the JSON tokens itself; letting encoding/json fill a map would lose the
// order. An unreadable or unparsable file is treated as an empty store.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the given file path. The file is
// created on first save.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

var _ Store = (*JSONStore)(nil)

func (s *JSONStore) Load(ctx context.Context, studentID string) (*domain.Catalog, error) {
	records := s.readAll()
	catalog, ok := records[studentID]
	if !ok {
		return domain.NewCatalog(), nil
	}
	return catalog, nil
}

func (s *JSONStore) Save(ctx context.Context, studentID string, catalog *domain.Catalog) error {
	records := s.readAll()
	records[studentID] = catalog.Clone()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	data, err := encodeRecords(records)
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	// Write-then-rename so a failed write never leaves a half-written store.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".schedules-*.json")
	if err != nil {
		return fmt.Errorf("creating temp store file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing store file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing store file: %w", err)
	}
	return nil
}

func (s *JSONStore) ListStudentIDs(ctx context.Context) ([]string, error) {
	records := s.readAll()
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// readAll loads the whole multi-student file. Missing or corrupt files load
// as an empty store; the next save rewrites the file whole.
func (s *JSONStore) readAll() map[string]*domain.Catalog {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]*domain.Catalog{}
	}
	records, err := decodeRecords(data)
	if err != nil {
		return map[string]*domain.Catalog{}
	}
	return records
}

// decodeRecords walks the JSON token stream by hand so that course key
// order survives the round trip.
func decodeRecords(data []byte) (map[string]*domain.Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	records := map[string]*domain.Catalog{}
	for dec.More() {
		studentID, err := expectString(dec)
		if err != nil {
			return nil, err
		}
		catalog, err := decodeStudent(dec)
		if err != nil {
			return nil, fmt.Errorf("student %q: %w", studentID, err)
		}
		records[studentID] = catalog
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeStudent(dec *json.Decoder) (*domain.Catalog, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	catalog := domain.NewCatalog()
	for dec.More() {
		key, err := expectString(dec)
		if err != nil {
			return nil, err
		}
		if key != "courses" {
			// Skip unknown keys for forward compatibility.
			var ignored json.RawMessage
			if err := dec.Decode(&ignored); err != nil {
				return nil, err
			}
			continue
		}
		if err := decodeCourses(dec, catalog); err != nil {
			return nil, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return catalog, nil
}

func decodeCourses(dec *json.Decoder, catalog *domain.Catalog) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		name, err := expectString(dec)
		if err != nil {
			return err
		}
		var triples [][3]string
		if err := dec.Decode(&triples); err != nil {
			return fmt.Errorf("course %q: %w", name, err)
		}
		sections := make([]domain.Section, 0, len(triples))
		for _, t := range triples {
			section, err := domain.ParseSection(t[0], t[1], t[2])
			if err != nil {
				return fmt.Errorf("course %q: %w", name, err)
			}
			sections = append(sections, section)
		}
		catalog.Upsert(domain.Course{Name: name, Sections: sections})
	}
	return expectDelim(dec, '}')
}

// encodeRecords writes students sorted by id and courses in catalog
// insertion order. encoding/json would sort course keys alphabetically, so
// the object is assembled explicitly.
func encodeRecords(records map[string]*domain.Catalog) ([]byte, error) {
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, id := range ids {
		if i > 0 {
			buf.WriteString(",\n")
		}
		if err := writeKey(&buf, "  ", id); err != nil {
			return nil, err
		}
		buf.WriteString("{\"courses\": {")
		catalog := records[id]
		for j, course := range catalog.Courses() {
			if j > 0 {
				buf.WriteString(", ")
			}
			if err := writeKey(&buf, "", course.Name); err != nil {
				return nil, err
			}
			triples := make([][3]string, len(course.Sections))
			for k, sec := range course.Sections {
				triples[k] = [3]string{sec.Day.String(), sec.Start.String(), sec.End.String()}
			}
			encoded, err := json.Marshal(triples)
			if err != nil {
				return nil, err
			}
			buf.Write(encoded)
		}
		buf.WriteString("}}")
	}
	buf.WriteString("\n}\n")
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, indent, key string) error {
	encoded, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.WriteString(indent)
	buf.Write(encoded)
	buf.WriteString(": ")
	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != want {
		return fmt.Errorf("malformed store: expected %q, got %v", want, tok)
	}
	return nil
}

func expectString(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("malformed store: expected string key, got %v", tok)
	}
	return s, nil
}
