package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"BuildID", KeyBuildID, "b1", BuildID("b1")},
		{"Stage", KeyStage, "render_posts", Stage("render_posts")},
		{"File", KeyFile, "post.md", File("post.md")},
		{"Path", KeyPath, "blog/index.html", Path("blog/index.html")},
		{"Template", KeyTemplate, "list.html", Template("list.html")},
		{"Tag", KeyTag, "Go", Tag("Go")},
		{"Class", KeyClass, "latest", Class("latest")},
	}
	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Fatalf("%s: expected key %s got %s", c.name, c.attrKey, c.attr.Key)
		}
		if c.attr.Value.String() != c.attrVal {
			t.Fatalf("%s: expected value %s got %s", c.name, c.attrVal, c.attr.Value.String())
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if got := Pages(3); got.Key != KeyPages || got.Value.Int64() != 3 {
		t.Fatalf("unexpected pages attr %v", got)
	}
	if got := Records(7); got.Key != KeyRecords || got.Value.Int64() != 7 {
		t.Fatalf("unexpected records attr %v", got)
	}
	if got := DurationMS(1.5); got.Key != KeyDurationMS || got.Value.Float64() != 1.5 {
		t.Fatalf("unexpected duration attr %v", got)
	}
}

func TestErrorHelper(t *testing.T) {
	if got := Error(nil); got.Value.String() != "" {
		t.Fatalf("expected empty error value, got %q", got.Value.String())
	}
	if got := Error(errors.New("boom")); got.Value.String() != "boom" {
		t.Fatalf("expected boom, got %q", got.Value.String())
	}
}
