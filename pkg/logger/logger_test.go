package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerWritesToBuffer(t *testing.T) {
	l := New(WithoutColor())
	l.Info("[qh] hello", zap.Int("points", 8))

	text := l.Text()
	assert.Contains(t, text, "INFO")
	assert.Contains(t, text, "[qh] hello")
	assert.Contains(t, text, `"points": 8`)
	html := l.HTML()
	require.Len(t, html, 1)
	assert.Contains(t, html[0], "<pre>")
	assert.Contains(t, html[0], "[qh] hello")

	l.ClearLogs()
	assert.Empty(t, l.Text())
	assert.Nil(t, l.HTML())
}

func TestLoggerManyLines(t *testing.T) {
	l := New()
	for i := 0; i < 20000; i++ {
		l.Debug("[qh-loop] Итерация", zap.Int("iteration", i))
	}

	html := l.HTML()
	require.Len(t, html, 1)
	assert.Equal(t, 20000, strings.Count(html[0], "[qh-loop] Итерация"))
	assert.Contains(t, html[0], `"iteration": 19999`)
}

func TestLoggerLevel(t *testing.T) {
	l := New(WithoutColor(), WithLevel(zap.InfoLevel))
	l.Debug("hidden")
	l.Warn("shown")

	assert.NotContains(t, l.Text(), "hidden")
	assert.Contains(t, l.Text(), "shown")

	quiet := New(WithLevel(zap.InfoLevel))
	quiet.Debug("hidden")
	assert.Empty(t, quiet.Text())
	assert.Nil(t, quiet.HTML())
}

func TestLoggerExtraOutput(t *testing.T) {
	var out bytes.Buffer
	l := New(WithOutput(&out))
	l.Error("boom")

	assert.Contains(t, out.String(), "boom")
	assert.Contains(t, l.Text(), "boom")
}

func TestLoggerNamedSharesBuffer(t *testing.T) {
	l := New(WithoutColor())
	child := l.Named("quickhull")
	child.Info("from child")

	assert.Contains(t, l.Text(), "quickhull")
	assert.Contains(t, l.Text(), "from child")
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("nothing")
	assert.Empty(t, l.Text())
}

func TestAnsiToHTML(t *testing.T) {
	got := ansiToHTML("\033[31merror\033[0m done")
	assert.Equal(t, `<pre><span style="color: red;">error</span> done</pre>`, got)

	got = ansiToHTML("\033[32mone\033[36mtwo")
	assert.Equal(t, `<pre><span style="color: green;">one</span><span style="color: cyan;">two</span></pre>`, got)
}

func TestLoggerWithoutBuffer(t *testing.T) {
	var out bytes.Buffer
	l := New(WithoutBuffer(), WithOutput(&out), WithoutColor())
	l.Info("only stdout")

	assert.Contains(t, out.String(), "only stdout")
	assert.Empty(t, l.Text())
}
