package i18n_test

import (
	"strings"
	"testing"

	"github.com/elicit-go/elicit/i18n"
)

func TestT_DefaultEnglish(t *testing.T) {
	msg := i18n.T("too_small", map[string]string{"min": "1", "got": "0"})
	if !strings.HasPrefix(msg, "too small") {
		t.Fatalf("unexpected message: %q", msg)
	}
	if !strings.Contains(msg, "min 1") || !strings.Contains(msg, "got 0") {
		t.Fatalf("expected metadata in message, got %q", msg)
	}
}

func TestT_UnknownCodeFallsBackToCode(t *testing.T) {
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("expected code echo, got %q", got)
	}
}

func TestSetLanguage(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	if got := i18n.T("too_big", nil); got != "大きすぎます" {
		t.Fatalf("expected japanese message, got %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string {
	return strings.ToUpper(code)
}

func TestSetTranslator(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)
	if got := i18n.T("too_few", nil); got != "TOO_FEW" {
		t.Fatalf("expected custom translator output, got %q", got)
	}
}
