package bot

import (
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		cmdName  string
		args     string
		wantKind CommandKind
		wantArg  string
	}{
		{"start", "start", "", CommandStart, ""},
		{"help ignores args", "help", "me please", CommandHelp, ""},
		{"search joins words", "search", "  villainess   tempest ", CommandSearch, "villainess tempest"},
		{"search without keyword", "search", "   ", CommandSearch, ""},
		{"browse first word", "browse", "a b", CommandBrowse, "a"},
		{"browse hash", "browse", "#", CommandBrowse, "#"},
		{"browse without letter", "browse", "", CommandBrowse, ""},
		{"random", "random", "", CommandRandom, ""},
		{"stats", "stats", "", CommandStats, ""},
		{"case insensitive", "SeArCh", "moon", CommandSearch, "moon"},
		{"unknown", "delete", "everything", CommandUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCommand(tt.cmdName, tt.args)

			if got.Kind != tt.wantKind {
				t.Errorf("ParseCommand(%q, %q).Kind = %v, want %v", tt.cmdName, tt.args, got.Kind, tt.wantKind)
			}

			if got.Arg != tt.wantArg {
				t.Errorf("ParseCommand(%q, %q).Arg = %q, want %q", tt.cmdName, tt.args, got.Arg, tt.wantArg)
			}
		})
	}
}

func TestCommandKindString(t *testing.T) {
	for name, kind := range commandKinds {
		if got := kind.String(); got != name {
			t.Errorf("%v.String() = %q, want %q", kind, got, name)
		}
	}

	if got := CommandUnknown.String(); got != "unknown" {
		t.Errorf("CommandUnknown.String() = %q, want unknown", got)
	}
}
