package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGetNormalizesNames(t *testing.T) {
	cases := []string{"nord", "Nord", " NORD ", "nord"}
	for _, name := range cases {
		th, ok := Get(name)
		if !ok {
			t.Fatalf("Get(%q) not found", name)
		}
		if th.Name != "nord" {
			t.Errorf("Get(%q) = %q, want nord", name, th.Name)
		}
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	th := Resolve("no-such-theme")
	if th.Name != RestdeckDark.Name {
		t.Errorf("Resolve fallback = %q, want %q", th.Name, RestdeckDark.Name)
	}
}

func TestMethodColor(t *testing.T) {
	th := Default()
	cases := []struct {
		method string
		want   lipgloss.Color
	}{
		{"GET", th.Green},
		{"POST", th.Yellow},
		{"DELETE", th.Red},
		{"TRACE", th.Text},
	}
	for _, tc := range cases {
		if got := th.MethodColor(tc.method); got != tc.want {
			t.Errorf("MethodColor(%q) = %v, want %v", tc.method, got, tc.want)
		}
	}
}

func TestStatusColorSentinelIsError(t *testing.T) {
	th := Default()
	if got := th.StatusColor(0); got != th.Red {
		t.Errorf("StatusColor(0) = %v, want %v", got, th.Red)
	}
	if got := th.StatusColor(200); got != th.Green {
		t.Errorf("StatusColor(200) = %v, want %v", got, th.Green)
	}
	if got := th.StatusColor(301); got != th.Blue {
		t.Errorf("StatusColor(301) = %v, want %v", got, th.Blue)
	}
	if got := th.StatusColor(404); got != th.Yellow {
		t.Errorf("StatusColor(404) = %v, want %v", got, th.Yellow)
	}
	if got := th.StatusColor(503); got != th.Red {
		t.Errorf("StatusColor(503) = %v, want %v", got, th.Red)
	}
}

func TestLoadCustomTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solar.yaml")
	data := []byte("name: solar\nbase: \"#002b36\"\ntext: \"#839496\"\nred: \"#dc322f\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadCustomTheme(path)
	if err != nil {
		t.Fatalf("LoadCustomTheme: %v", err)
	}
	if th.Name != "solar" {
		t.Errorf("Name = %q, want solar", th.Name)
	}
	if th.Base != lipgloss.Color("#002b36") {
		t.Errorf("Base = %v", th.Base)
	}

	themes := LoadCustomThemes(dir)
	if _, ok := themes["solar"]; !ok {
		t.Error("LoadCustomThemes missing solar")
	}
}

func TestLoadCustomThemeNameFromFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "midnight.yml")
	if err := os.WriteFile(path, []byte("base: \"#000000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := LoadCustomTheme(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "midnight" {
		t.Errorf("Name = %q, want midnight", th.Name)
	}
}
