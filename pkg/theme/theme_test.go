package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestColorForStability(t *testing.T) {
	th := Default()

	a := th.ColorFor("Scratch")
	b := th.ColorFor("Dent")
	if a == b {
		t.Error("different labels should get different palette slots")
	}

	// Same label keeps its color across later assignments
	th.ColorFor("Crack")
	if got := th.ColorFor("Scratch"); got != a {
		t.Errorf("ColorFor(Scratch) = %q after more assignments, want %q", got, a)
	}
	if got := th.ColorFor("Dent"); got != b {
		t.Errorf("ColorFor(Dent) = %q after more assignments, want %q", got, b)
	}
}

func TestColorForFirstSeenOrder(t *testing.T) {
	th := Default()
	if got := th.ColorFor("first"); got != DefaultPalette[0] {
		t.Errorf("first label color = %q, want %q", got, DefaultPalette[0])
	}
	if got := th.ColorFor("second"); got != DefaultPalette[1] {
		t.Errorf("second label color = %q, want %q", got, DefaultPalette[1])
	}
}

func TestColorForPaletteWrap(t *testing.T) {
	th := &Theme{Palette: []string{"#111111", "#222222"}}

	th.ColorFor("a")
	th.ColorFor("b")
	if got := th.ColorFor("c"); got != "#111111" {
		t.Errorf("palette should wrap, got %q", got)
	}
}

func TestAxisColor(t *testing.T) {
	th := Default()
	if got := th.AxisColor(); got != DefaultAxisLabelColor {
		t.Errorf("AxisColor() = %q, want %q", got, DefaultAxisLabelColor)
	}

	th.HighContrast = true
	if got := th.AxisColor(); got != DefaultForeground {
		t.Errorf("AxisColor() in high contrast = %q, want foreground %q", got, DefaultForeground)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	content := `
palette = ["#aa0000", "#00aa00"]
line_color = "#123456"
dimmed_opacity = 0.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if len(th.Palette) != 2 || th.Palette[0] != "#aa0000" {
		t.Errorf("Palette = %v, want the file's palette", th.Palette)
	}
	if th.LineColor != "#123456" {
		t.Errorf("LineColor = %q, want #123456", th.LineColor)
	}
	if th.DimmedOpacity != 0.5 {
		t.Errorf("DimmedOpacity = %v, want 0.5", th.DimmedOpacity)
	}

	// Unset fields keep defaults
	if th.SolidOpacity != DefaultSolidOpacity {
		t.Errorf("SolidOpacity = %v, want default %v", th.SolidOpacity, DefaultSolidOpacity)
	}
	if th.Foreground != DefaultForeground {
		t.Errorf("Foreground = %v, want default", th.Foreground)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for missing theme file")
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("palette = not-a-list"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed theme file")
	}
}
