package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapGreedy(t *testing.T) {
	m := &monoMetrics{}
	lines := Wrap("hello world again", m, advance(11, 12), 12, nil)
	assert.Equal(t, []string{"hello world", "again"}, lines)
}

func TestWrapFitsOnOneLine(t *testing.T) {
	m := &monoMetrics{}
	lines := Wrap("Hello", m, 500, 12, nil)
	assert.Equal(t, []string{"Hello"}, lines)
}

func TestWrapEmptyParagraph(t *testing.T) {
	m := &monoMetrics{}
	assert.Empty(t, Wrap("", m, 500, 12, nil))
}

// 单个超宽单词独占一行，且不会被拆分或丢弃。
func TestWrapOverWideWordAlone(t *testing.T) {
	m := &monoMetrics{}
	long := strings.Repeat("x", 30)
	lines := Wrap("ab "+long+" cd", m, advance(10, 12), 12, nil)
	require.Equal(t, []string{"ab", long, "cd"}, lines)

	lines = Wrap(long, m, advance(10, 12), 12, nil)
	assert.Equal(t, []string{long}, lines)
}

func TestWrapWidthBoundAndWordPreservation(t *testing.T) {
	m := &monoMetrics{}
	paragraph := strings.TrimSpace(strings.Repeat("lorem ipsum dolor sit amet consectetur ", 20)) + " " + strings.Repeat("z", 40)
	maxWidth := advance(25, 12)
	lines := Wrap(paragraph, m, maxWidth, 12, nil)
	require.NotEmpty(t, lines)

	for i, line := range lines {
		w, err := m.WidthOf(line, 12)
		require.NoError(t, err)
		if w > maxWidth {
			assert.NotContains(t, line, " ", "line %d exceeds width and is not a lone word: %q", i, line)
		}
	}
	assert.Equal(t, strings.Fields(paragraph), strings.Fields(strings.Join(lines, " ")))
}

func TestWrapDropsUnmeasurableWord(t *testing.T) {
	m := &monoMetrics{reject: "ÿ"}
	var dropped []string
	lines := Wrap("keep bÿd words", m, 500, 12, func(word string, err error) {
		assert.Error(t, err)
		dropped = append(dropped, word)
	})
	assert.Equal(t, []string{"keep words"}, lines)
	assert.Equal(t, []string{"bÿd"}, dropped)
}

func TestWrapKeepsIndentation(t *testing.T) {
	m := &monoMetrics{}
	lines := Wrap("    indented  code", m, 500, 12, nil)
	assert.Equal(t, []string{"    indented  code"}, lines)
}

// 折行处的空格不会出现在新行开头。
func TestWrapSwallowsSpacesAtBreak(t *testing.T) {
	m := &monoMetrics{}
	lines := Wrap("aaaa  bbbb", m, advance(5, 12), 12, nil)
	assert.Equal(t, []string{"aaaa", "bbbb"}, lines)
}

func TestWrapTrimsTrailingSpaces(t *testing.T) {
	m := &monoMetrics{}
	assert.Empty(t, Wrap("   ", m, 500, 12, nil))
	assert.Equal(t, []string{"foo"}, Wrap("foo  ", m, 500, 12, nil))
	assert.Equal(t, []string{"  foo"}, Wrap("  foo ", m, 500, 12, nil))
}
