package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected too small when width below minimum")
	}
	if !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("expected too small when height below minimum")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should be accepted")
	}
}

func TestRenderHeaderBack(t *testing.T) {
	withBack := RenderHeader("PokeFit", "Back", 70)
	if !strings.Contains(withBack, "Back") {
		t.Error("expected back label in header")
	}
	without := RenderHeader("PokeFit", "", 70)
	if strings.Contains(without, "←") {
		t.Error("header without back should not show an arrow")
	}
}

func TestRenderGradientHeight(t *testing.T) {
	out := RenderGradient("one\ntwo", 20, 6)
	if got := lipgloss.Height(out); got != 6 {
		t.Errorf("expected 6 lines, got %d", got)
	}
	if RenderGradient("x", 20, 0) != "" {
		t.Error("expected empty output for zero height")
	}
}

func TestRenderFrameFitsHeight(t *testing.T) {
	header := RenderHeader("PokeFit", "", 70)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}}, 70)
	frame := RenderFrame(header, "hello", footer, 70, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("expected frame height 30, got %d", got)
	}
	if !strings.Contains(frame, "hello") || !strings.Contains(frame, "Select") {
		t.Error("frame should contain content and footer")
	}
}
