package ini

import (
	"bufio"
	"bytes"
	"strings"
)

// parse tokenizes the file content into sections.
//
// Classification is by first character: ';' and '#' open passthrough comment
// entries, '[' opens a section header, anything else is a key/value line.
// Malformed lines (header without ']', key line without '=') are skipped
// silently, as are blank lines and any content before the first header.
func (d *Document) parse(data []byte) {
	sc := bufio.NewScanner(bytes.NewReader(data))

	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}

		switch line[0] {
		case ';', '#':
			if n := len(d.sections); n > 0 {
				last := d.sections[n-1]
				last.entries = append(last.entries, Entry{Value: line})
			}

		case '[':
			end := strings.IndexByte(line, ']')
			if end < 0 {
				continue
			}
			d.sections = append(d.sections, &Section{name: line[1:end], doc: d})

		default:
			if n := len(d.sections); n > 0 {
				if e, ok := parseKeyValue(line); ok {
					last := d.sections[n-1]
					last.entries = append(last.entries, e)
				}
			}
		}
	}
}

// parseKeyValue splits a line on its first '='. The key is the text before
// it with trailing spaces trimmed; the value starts after the run of spaces
// following '=' and keeps trailing spaces verbatim.
func parseKeyValue(line string) (Entry, bool) {
	sep := strings.IndexByte(line, '=')
	if sep < 0 {
		return Entry{}, false
	}

	key := strings.TrimRight(line[:sep], " ")
	value := strings.TrimLeft(line[sep+1:], " ")
	return Entry{Key: key, Value: value}, true
}

// Marshal serializes the document: each section as "[name]" followed by its
// entries ("key = value", or the bare value for passthrough entries), with a
// blank line after every section.
func (d *Document) Marshal() []byte {
	var buf bytes.Buffer

	for _, s := range d.sections {
		buf.WriteByte('[')
		buf.WriteString(s.name)
		buf.WriteString("]\n")

		for _, e := range s.entries {
			if e.Key != "" {
				buf.WriteString(e.Key)
				buf.WriteString(" = ")
			}
			buf.WriteString(e.Value)
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}
