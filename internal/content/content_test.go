package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText("notes.txt", []byte("The sky is blue.\n"))
	require.NoError(t, err)
	assert.Equal(t, "The sky is blue.\n", text)
}

func TestExtractText_ExtensionCaseInsensitive(t *testing.T) {
	_, err := ExtractText("NOTES.TXT", []byte("ok"))
	assert.NoError(t, err)
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	for _, name := range []string{"slides.pdf", "doc.docx", "archive"} {
		_, err := ExtractText(name, []byte("x"))
		var unsupported *UnsupportedFormatError
		require.ErrorAs(t, err, &unsupported, name)
	}
}

func TestExtractText_InvalidUTF8(t *testing.T) {
	_, err := ExtractText("bin.txt", []byte{0xff, 0xfe, 0xfd})
	assert.Error(t, err)
}
