package ini

import (
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/sidconf/pkg/fileutil"
)

// FilePerm is the permission applied to a newly written configuration file.
const FilePerm = 0o644

// Entry is one line within a section: either a key/value pair or, when Key
// is empty, a verbatim passthrough line (comment).
type Entry struct {
	Key   string
	Value string
}

// IsComment reports whether the entry is a passthrough line rather than a
// key/value pair.
func (e Entry) IsComment() bool {
	return e.Key == ""
}

// Section is a named, ordered group of entries. Handles are obtained from
// [Document.Section] or [Document.AddSection]; mutations mark the owning
// document dirty.
type Section struct {
	name    string
	entries []Entry
	doc     *Document
}

// Name returns the section name.
func (s *Section) Name() string {
	return s.name
}

// Entries returns a copy of the section's entries in document order,
// including passthrough comment entries.
func (s *Section) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Value returns the value of the first entry matching key.
// An empty string is a valid found value; the second return distinguishes
// "present but empty" from "absent".
func (s *Section) Value(key string) (string, bool) {
	for _, e := range s.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// AddValue appends a key/value entry to the end of the section.
// Duplicate keys are not checked; Value always returns the first match.
func (s *Section) AddValue(key, value string) {
	s.entries = append(s.entries, Entry{Key: key, Value: value})
	s.doc.dirty = true
}

// SetValue replaces the value of the first entry matching key in place,
// keeping its position. An absent key is appended like AddValue.
func (s *Section) SetValue(key, value string) {
	for i, e := range s.entries {
		if e.Key == key {
			s.entries[i].Value = value
			s.doc.dirty = true
			return
		}
	}
	s.AddValue(key, value)
}

// RemoveValue removes all entries matching key. Comment entries never match
// since their key is empty and key is expected to be non-empty.
func (s *Section) RemoveValue(key string) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Key != key {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.doc.dirty = true
}

// Document is an in-memory configuration file: an ordered list of sections
// bound to a backing path.
type Document struct {
	path     string
	sections []*Section

	// cur is the insertion anchor for AddSection: the index of the last
	// section found by Section, or len(sections) when the last lookup
	// failed (new sections then append).
	cur   int
	dirty bool
}

// Load reads and parses the file at path.
// A missing file is reported as an error satisfying errors.Is(err, fs.ErrNotExist)
// so callers can fall back to creating it; see [OpenOrCreate].
func Load(path string) (*Document, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	d := &Document{path: path}
	d.parse(data)
	d.cur = len(d.sections)
	return d, nil
}

// OpenOrCreate loads the file at path, creating it empty if it does not
// exist. It fails only if the file can neither be read nor created.
func OpenOrCreate(path string) (*Document, error) {
	d, err := Load(path)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err := os.WriteFile(path, nil, FilePerm); err != nil {
		return nil, errors.Wrapf(err, "creating %s", path)
	}
	return &Document{path: path}, nil
}

// Path returns the backing file path.
func (d *Document) Path() string {
	return d.path
}

// Dirty reports whether the in-memory document differs from the file on disk.
func (d *Document) Dirty() bool {
	return d.dirty
}

// Sections returns the document's sections in file order.
func (d *Document) Sections() []*Section {
	out := make([]*Section, len(d.sections))
	copy(out, d.sections)
	return out
}

// Section returns the first section whose name matches exactly.
// A successful lookup also records the section as the insertion anchor for
// a subsequent AddSection.
func (d *Document) Section(name string) (*Section, bool) {
	for i, s := range d.sections {
		if s.name == name {
			d.cur = i
			return s, true
		}
	}
	d.cur = len(d.sections)
	return nil, false
}

// AddSection inserts a new empty section immediately before the current
// insertion anchor (appending when the last lookup failed), makes it the
// anchor, and marks the document dirty.
func (d *Document) AddSection(name string) *Section {
	s := &Section{name: name, doc: d}

	if d.cur > len(d.sections) {
		d.cur = len(d.sections)
	}
	d.sections = append(d.sections, nil)
	copy(d.sections[d.cur+1:], d.sections[d.cur:])
	d.sections[d.cur] = s

	d.dirty = true
	return s
}

// Close rewrites the backing file if the document is dirty, then discards
// the in-memory state and clears the flag regardless of the write outcome.
func (d *Document) Close() error {
	var err error
	if d.dirty {
		err = d.Write(d.path)
	}

	d.sections = nil
	d.cur = 0
	d.dirty = false
	return err
}

// Write serializes the full document to path, overwriting any existing file.
func (d *Document) Write(path string) error {
	if err := fileutil.AtomicWriteFile(path, d.Marshal(), FilePerm); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
