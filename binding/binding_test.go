package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolate(t *testing.T) {
	data := FileVars("/tmp/notes/meeting.txt")
	assert.Equal(t, "meeting", Interpolate("${file.base}", data))
	assert.Equal(t, "meeting.txt in /tmp/notes", Interpolate("${file.name} in ${file.dir}", data))
	assert.Equal(t, "no template", Interpolate("no template", data))
	assert.Equal(t, "${file.missing}", Interpolate("${file.missing}", data))
	assert.Equal(t, "untitled", Interpolate("${author|untitled}", data))
	assert.Equal(t, "meeting", Interpolate("${ file.base | x }", data))
	assert.Equal(t, "${}", Interpolate("${}", data))
	assert.Equal(t, "${file.base}", Interpolate("${file.base}", nil))
}

func TestFileVarsWithoutExtension(t *testing.T) {
	data := FileVars("README")
	file := data["file"].(map[string]any)
	assert.Equal(t, "README", file["base"])
	assert.Equal(t, ".", file["dir"])
	assert.NotEmpty(t, data["now"])
}
