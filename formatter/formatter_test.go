package formatter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/logbridge/core"
)

var fixedTime = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{})
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.Format(&core.Entry{
		Time:    fixedTime,
		Level:   core.InfoLevel,
		Source:  "libfoo",
		Message: "decoder ready",
	}, buf)

	want := "2026-10-16T09:00:00Z [INFO] libfoo: decoder ready\n"
	if got := buf.String(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTextFormatter_TrailingNewlineAndTruncation(t *testing.T) {
	f := NewTextFormatter(Config{OmitSource: true})
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.Format(&core.Entry{
		Time:      fixedTime,
		Level:     core.WarnLevel,
		Source:    "ignored",
		Message:   "partial\n",
		Truncated: true,
	}, buf)

	want := "2026-10-16T09:00:00Z [WARN] partial truncated=true\n"
	if got := buf.String(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTextFormatter_UnknownLevel(t *testing.T) {
	f := NewTextFormatter(Config{})
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.Format(&core.Entry{Time: fixedTime, Level: core.Level(9), Message: "m"}, buf)
	if !strings.Contains(buf.String(), "[UNKNOWN]") {
		t.Errorf("Expected '[UNKNOWN]' in output, got: %s", buf.String())
	}
}

func TestJSONFormatter_Valid(t *testing.T) {
	f := NewJSONFormatter(Config{})
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.Format(&core.Entry{
		Time:      fixedTime,
		Level:     core.ErrorLevel,
		Source:    "lib\"quoted\"",
		Message:   "line1\nline2\ttab \\ \x01",
		Truncated: true,
	}, buf)

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if got["level"] != "ERROR" {
		t.Errorf("level = %v", got["level"])
	}
	if got["source"] != "lib\"quoted\"" {
		t.Errorf("source = %v", got["source"])
	}
	if got["message"] != "line1\nline2\ttab \\ \x01" {
		t.Errorf("message = %q", got["message"])
	}
	if got["truncated"] != true {
		t.Errorf("truncated = %v", got["truncated"])
	}
	if got["time"] != "2026-10-16T09:00:00Z" {
		t.Errorf("time = %v", got["time"])
	}
}

func TestJSONFormatter_InvalidUTF8(t *testing.T) {
	f := NewJSONFormatter(Config{})
	buf := GetBuffer()
	defer PutBuffer(buf)

	// "€" is e2 82 ac; a byte-exact cut leaves the first two bytes.
	f.Format(&core.Entry{Time: fixedTime, Level: core.InfoLevel, Message: "price 5\xe2\x82", Truncated: true}, buf)

	if !json.Valid(buf.Bytes()) {
		t.Fatalf("output is not valid JSON: %q", buf.String())
	}
	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["message"] != "price 5\ufffd\ufffd" {
		t.Errorf("message = %q", got["message"])
	}
}

func TestJSONFormatter_ValidMultibyte(t *testing.T) {
	f := NewJSONFormatter(Config{})
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.Format(&core.Entry{Time: fixedTime, Level: core.InfoLevel, Message: "größe 5€ \"q\""}, buf)

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["message"] != "größe 5€ \"q\"" {
		t.Errorf("message = %q", got["message"])
	}
}

func TestJSONFormatter_OmitsEmpty(t *testing.T) {
	f := NewJSONFormatter(Config{})
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.Format(&core.Entry{Time: fixedTime, Level: core.InfoLevel, Message: "ok"}, buf)

	out := buf.String()
	if strings.Contains(out, `"source"`) || strings.Contains(out, `"truncated"`) {
		t.Errorf("unexpected optional keys in %s", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("expected newline-terminated object, got %q", out)
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	e := &core.Entry{Time: fixedTime, Level: core.InfoLevel, Source: "libfoo", Message: "frame decoded"}
	buf := GetBuffer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.Format(e, buf)
	}
}

func BenchmarkJSONFormatter(b *testing.B) {
	f := NewJSONFormatter(Config{})
	e := &core.Entry{Time: fixedTime, Level: core.InfoLevel, Source: "libfoo", Message: "frame decoded"}
	buf := GetBuffer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.Format(e, buf)
	}
}
