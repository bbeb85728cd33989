package ui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algotrace/cmd/algorace/ui"
)

func TestKeyValuesAligns(t *testing.T) {
	out := ui.KeyValues("  ", ui.KV("winner", "quick"), ui.KV("session", "abc"))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], " quick"))
	assert.True(t, strings.HasSuffix(lines[1], " abc"))
	assert.Equal(t, strings.Index(lines[0], "quick"), strings.Index(lines[1], "abc"))
}

func TestTableContainsCells(t *testing.T) {
	out := ui.Table([]string{"Key", "Name"}, [][]string{{"bubble", "Bubble Sort"}, {"quick", "Quick Sort"}})
	for _, want := range []string{"Key", "Name", "bubble", "Bubble Sort", "quick", "Quick Sort"} {
		assert.Contains(t, out, want)
	}
}

func TestProgressBarClamps(t *testing.T) {
	assert.Contains(t, ui.ProgressBar(50, 10), " 50.0%")
	assert.Equal(t, 5, strings.Count(ui.ProgressBar(50, 10), "█"))
	assert.Contains(t, ui.ProgressBar(250, 4), "100.0%")
	assert.Equal(t, 4, strings.Count(ui.ProgressBar(250, 4), "█"))
	assert.Equal(t, 4, strings.Count(ui.ProgressBar(-3, 4), "░"))
	assert.Contains(t, ui.SuccessMsg("done %d", 1), "done 1")
}

func TestMessageMarkers(t *testing.T) {
	assert.Contains(t, ui.WarnMsg("graph has %d components", 2), "! graph has 2 components")
	assert.Contains(t, ui.ErrorMsg("boom: %v", "x"), "✗ boom: x")
	assert.Contains(t, ui.SuccessMsg("quick wins"), "✓ quick wins")
}
