package logging

import (
	"log/slog"
	"testing"
)

func TestWithCommonAppendsServiceAndVersion(t *testing.T) {
	attrs := WithCommon(nil, "scoreboard", "v1")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[0].Value.String() != "scoreboard" {
		t.Fatalf("expected service attr, got %+v", attrs[0])
	}
	if attrs[1].Key != FieldVersion || attrs[1].Value.String() != "v1" {
		t.Fatalf("expected version attr, got %+v", attrs[1])
	}
}

func TestWithCommonKeepsExistingAndSkipsEmpty(t *testing.T) {
	attrs := WithCommon([]slog.Attr{slog.Uint64(FieldMatchID, 3)}, "", "v2")
	if len(attrs) != 2 || attrs[0].Key != FieldMatchID || attrs[1].Key != FieldVersion {
		t.Fatalf("expected match id then version, got %+v", attrs)
	}
}
