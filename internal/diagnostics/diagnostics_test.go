package diagnostics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestReporter(level Level) (*Reporter, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	r := &Reporter{level: level, out: out, errOut: errOut}
	return r, out, errOut
}

func TestReporterLevelGating(t *testing.T) {
	r, out, errOut := newTestReporter(Warn)

	r.Info("should not appear")
	r.Verbose("should not appear either")
	r.Warn("visible warning")
	r.Error("visible error")

	assert.NotContains(t, out.String(), "should not appear", "Info/Verbose must be suppressed below their level")
	assert.Contains(t, out.String(), "visible warning")
	assert.Contains(t, errOut.String(), "visible error")
}

func TestReporterSilentSuppressesEverything(t *testing.T) {
	r, out, errOut := newTestReporter(Silent)

	r.Error("fatal")
	r.Warn("warn")
	r.Info("info")

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestReporterIndentPrefixesMessages(t *testing.T) {
	r, out, _ := newTestReporter(Info)

	r.Indent()
	r.Info("nested")
	r.Unindent()
	r.Info("top-level")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	assert.True(t, strings.HasPrefix(lines[0], "  "))
	assert.False(t, strings.HasPrefix(lines[1], "  "))
}

func TestReporterUnindentFloorsAtZero(t *testing.T) {
	r, out, _ := newTestReporter(Info)

	r.Unindent()
	r.Unindent()
	r.Info("message")

	assert.False(t, strings.HasPrefix(out.String(), "  "))
}

func TestReporterSummaryIncludesStats(t *testing.T) {
	r, out, _ := newTestReporter(Info)

	r.Summary("Generation complete", map[string]any{"beans": 3})

	assert.Contains(t, out.String(), "Generation complete")
	assert.Contains(t, out.String(), "beans: 3")
}
