package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archora/archora/internal/shell"
	"github.com/archora/archora/internal/vfs"
)

func TestRenderResult(t *testing.T) {
	assert.Empty(t, RenderResult(shell.Silent()))
	assert.Contains(t, RenderResult(shell.Output(shell.FormatPath, "/etc")), "/etc")
	assert.Contains(t, RenderResult(shell.Output(shell.FormatContent, "<b>raw</b>")), "<b>raw</b>")

	listing := RenderResult(shell.Listing([]vfs.Entry{{Name: "a.txt"}, {Name: "src", IsDir: true}}))
	assert.Contains(t, listing, SymbolFile+" a.txt")
	assert.Contains(t, listing, SymbolDir+" src")

	failure := RenderResult(shell.Failure(shell.UnknownCommand, "bash: x: command not found"))
	assert.Contains(t, failure, "bash: x: command not found")
	assert.Contains(t, failure, shell.UnknownCommandHint)
}
