package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  provider  ", Value: "  Gemini  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "provider" || fields[0].String != "Gemini" {
		t.Errorf("unexpected field: %+v", fields[0])
	}

	if empty := StringFields(); len(empty) != 0 {
		t.Errorf("StringFields() = %d fields, want none", len(empty))
	}
}

func TestCommonFields(t *testing.T) {
	fields := CommonFields("  gemini  ", "gemini-2.5-flash")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldProvider || fields[0].String != "gemini" {
		t.Errorf("unexpected provider field: %+v", fields[0])
	}
	if fields[1].Key != FieldModel || fields[1].String != "gemini-2.5-flash" {
		t.Errorf("unexpected model field: %+v", fields[1])
	}

	if empty := CommonFields("", ""); len(empty) != 0 {
		t.Errorf("CommonFields(\"\", \"\") = %d fields, want none", len(empty))
	}
}

func TestWithCommonFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	enriched := WithCommonFields(zap.New(core), "gemini", "gemini-2.5-flash")
	enriched.Info("context request")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldProvider] != "gemini" {
		t.Errorf("provider field = %q, want gemini", ctx[FieldProvider])
	}
	if ctx[FieldModel] != "gemini-2.5-flash" {
		t.Errorf("model field = %q, want gemini-2.5-flash", ctx[FieldModel])
	}

	// A nil logger falls back to a no-op one instead of panicking.
	WithCommonFields(nil, "gemini", "gemini-2.5-flash").Info("dropped")
}

func TestWithFieldsNil(t *testing.T) {
	if got := WithFields(nil); got == nil {
		t.Fatal("expected fallback logger, got nil")
	}

	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	if got := WithFields(logger); got != logger {
		t.Error("expected the same logger when no fields are given")
	}

	WithFields(logger, zap.String("portal", "evergabe")).Info("check")
	if entries := observed.All(); len(entries) != 1 || entries[0].ContextMap()["portal"] != "evergabe" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}
