package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestBlendCellsEndpoints(t *testing.T) {
	from := lipgloss.Color("#ff0000")
	to := lipgloss.Color("#0000ff")

	cells := BlendCells(5, from, to)

	if len(cells) != 5 {
		t.Fatalf("got %d cells, want 5", len(cells))
	}
	if cells[0] != from {
		t.Errorf("first cell = %v, want %v", cells[0], from)
	}
	if cells[4] != to {
		t.Errorf("last cell = %v, want %v", cells[4], to)
	}
}

func TestBlendCellsDegenerate(t *testing.T) {
	from := lipgloss.Color("#ff0000")
	to := lipgloss.Color("#0000ff")

	if cells := BlendCells(0, from, to); cells != nil {
		t.Errorf("BlendCells(0) = %v, want nil", cells)
	}
	if cells := BlendCells(1, from, to); len(cells) != 1 || cells[0] != from {
		t.Errorf("BlendCells(1) = %v, want just the first stop", cells)
	}
}

func TestBlendCellsAnsiFallback(t *testing.T) {
	// Palette indices have no hex form; blending falls back to gray instead
	// of erroring out.
	cells := BlendCells(3, lipgloss.Color("5"), lipgloss.Color("#0000ff"))
	if len(cells) != 3 {
		t.Fatalf("got %d cells, want 3", len(cells))
	}
}

func TestApplyGradientKeepsText(t *testing.T) {
	got := ApplyGradient("hello", lipgloss.Color("#ff0000"), lipgloss.Color("#0000ff"))

	if plain := ansi.Strip(got); plain != "hello" {
		t.Errorf("stripped = %q, want hello", plain)
	}
}

func TestApplyGradientEmpty(t *testing.T) {
	if got := ApplyGradient("", lipgloss.Color("#ff0000"), lipgloss.Color("#0000ff")); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
