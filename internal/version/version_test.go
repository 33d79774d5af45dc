package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	cases := []struct {
		version, commit, date string
		want                  string
	}{
		{"1.2.3", "", "", "1.2.3"},
		{"", "", "", "dev"},
		{"1.2.3", "abc123", "", "1.2.3 (commit abc123)"},
		{"1.2.3", "abc123", "2024-01-15T10:30:00Z", "1.2.3 (commit abc123, built 2024-01-15T10:30:00Z)"},
		{" 0.1.0-dev ", "", "20240115", "0.1.0-dev (built 20240115)"},
	}
	for _, tc := range cases {
		Version, GitCommit, BuildDate = tc.version, tc.commit, tc.date
		if got := String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestColored(t *testing.T) {
	if got := Colored("1.2.3-rc.1", false); got != "1.2.3-rc.1" {
		t.Fatalf("Colored(disabled) = %q", got)
	}
	if got := Colored("dev", true); got != "dev" {
		t.Fatalf("Colored(dev) = %q", got)
	}
	got := Colored("1.2.3-rc.1", true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-rc.1") {
		t.Fatalf("Colored(enabled) = %q", got)
	}
}

func BenchmarkString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = String()
	}
}
