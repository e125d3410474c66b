// Package parser turns lines from exported or hand-written log files back
// into dashboard log records, so a buffer can be seeded from disk.
package parser

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/atikulmunna/agribot/internal/model"
)

// TimestampLayout matches the buffer's display format.
const TimestampLayout = "15:04:05"

// Record is a parsed line. An empty Timestamp means the line carried none.
type Record struct {
	Timestamp string
	Level     model.Level
	Message   string
}

// Parser converts one line into a Record. ok is false when the line is not
// in the parser's format.
type Parser interface {
	Parse(line string) (rec Record, ok bool)
}

// ExportParser reads the "[HH:MM:SS] LEVEL: message" export format.
// Unrecognized levels are read as info.
type ExportParser struct {
	re *regexp.Regexp
}

func NewExportParser() *ExportParser {
	return &ExportParser{re: regexp.MustCompile(`^\[([^\]]*)\] ([A-Za-z]+): (.*)$`)}
}

func (p *ExportParser) Parse(line string) (Record, bool) {
	m := p.re.FindStringSubmatch(strings.TrimRight(line, "\r"))
	if m == nil {
		return Record{}, false
	}
	level, err := model.ParseLevel(m[2])
	if err != nil {
		level = model.LevelInfo
	}
	return Record{Timestamp: m[1], Level: level, Message: m[3]}, true
}

// JSONParser reads one JSON object per line. Recognized fields: level or
// severity, message or msg, timestamp or time or ts. RFC 3339 times are
// reformatted to the display layout.
type JSONParser struct{}

func NewJSONParser() *JSONParser { return &JSONParser{} }

func (p *JSONParser) Parse(line string) (Record, bool) {
	var data map[string]any
	if err := json.Unmarshal([]byte(line), &data); err != nil {
		return Record{}, false
	}
	msg, ok := strField(data, "message", "msg")
	if !ok {
		return Record{}, false
	}

	rec := Record{Level: model.LevelInfo, Message: msg}
	if v, ok := strField(data, "level", "severity"); ok {
		if l, err := model.ParseLevel(v); err == nil {
			rec.Level = l
		}
	}
	if v, ok := strField(data, "timestamp", "time", "ts"); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			rec.Timestamp = t.Format(TimestampLayout)
		} else {
			rec.Timestamp = v
		}
	}
	return rec, true
}

// AutoParser tries JSON, then the export format, then falls back to a
// keyword scan of plain text.
type AutoParser struct {
	jsonParser   *JSONParser
	exportParser *ExportParser
}

func NewAutoParser() *AutoParser {
	return &AutoParser{
		jsonParser:   NewJSONParser(),
		exportParser: NewExportParser(),
	}
}

func (p *AutoParser) Parse(line string) (Record, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Record{}, false
	}
	if trimmed[0] == '{' {
		if rec, ok := p.jsonParser.Parse(trimmed); ok {
			return rec, true
		}
	}
	if rec, ok := p.exportParser.Parse(trimmed); ok {
		return rec, true
	}
	return keywordParse(trimmed), true
}

// ParseAll reads r line by line. Blank and unrecognized lines are skipped.
func ParseAll(r io.Reader, p Parser) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		if rec, ok := p.Parse(sc.Text()); ok {
			out = append(out, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("read log lines: %w", err)
	}
	return out, nil
}

func keywordParse(line string) Record {
	rec := Record{Level: model.LevelInfo, Message: line}
	upper := strings.ToUpper(line)
	switch {
	case strings.Contains(upper, "ERROR"), strings.Contains(upper, "FAIL"):
		rec.Level = model.LevelError
	case strings.Contains(upper, "WARN"):
		rec.Level = model.LevelWarning
	case strings.Contains(upper, "SUCCESS"), strings.Contains(upper, "COMPLETED"):
		rec.Level = model.LevelSuccess
	}
	return rec
}

// strField returns the first non-empty value among keys.
func strField(data map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := data[k]; ok {
			s := fmt.Sprintf("%v", v)
			if s != "" {
				return s, true
			}
		}
	}
	return "", false
}
