package tabular_test

import (
	"testing"

	"github.com/coliin8/book-explorer/internal/core/domain"
	"github.com/coliin8/book-explorer/internal/core/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Success(t *testing.T) {
	// Arrange
	content := []byte("Book Author,Book Title\nJane Doe,First Book\nJohn Smith,Second Book\n")

	// Act
	doc, err := tabular.Decode(content)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"Book Author", "Book Title"}, doc.Columns)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "Jane Doe", doc.Rows[0]["Book Author"])
	assert.Equal(t, "Second Book", doc.Rows[1]["Book Title"])
}

func TestDecode_HeaderOnly(t *testing.T) {
	// Arrange
	content := []byte("Book Author,Book Title\n")

	// Act
	doc, err := tabular.Decode(content)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"Book Author", "Book Title"}, doc.Columns)
	assert.Empty(t, doc.Rows)
}

func TestDecode_QuotedFields(t *testing.T) {
	// Arrange
	content := []byte("Book Author,Book Title\n\"Doe, Jane\",\"A \"\"Great\"\" Book\"\n")

	// Act
	doc, err := tabular.Decode(content)

	// Assert
	require.NoError(t, err)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "Doe, Jane", doc.Rows[0]["Book Author"])
	assert.Equal(t, `A "Great" Book`, doc.Rows[0]["Book Title"])
}

func TestDecode_InvalidUTF8(t *testing.T) {
	// Arrange
	content := []byte{0xff, 0xfe, 0xfd}

	// Act
	doc, err := tabular.Decode(content)

	// Assert
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestDecode_EmptyInput(t *testing.T) {
	// Act
	doc, err := tabular.Decode([]byte{})

	// Assert
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestEncode_ZeroRowsFails(t *testing.T) {
	// Arrange
	doc := &domain.Document{Columns: []string{"Book Author"}}

	// Act
	content, err := tabular.Encode(doc)

	// Assert
	assert.Nil(t, content)
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
}

func TestEncode_QuotesDelimiterFields(t *testing.T) {
	// Arrange
	doc := &domain.Document{
		Columns: []string{"Book Author", "Book Title"},
		Rows: []domain.Row{
			{"Book Author": "Doe, Jane", "Book Title": "Plain"},
		},
	}

	// Act
	content, err := tabular.Encode(doc)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Book Author,Book Title\n\"Doe, Jane\",Plain\n", string(content))
}

func TestRoundTrip_PreservesRowsAndHeaderCasing(t *testing.T) {
	// Arrange
	doc := &domain.Document{
		Columns: []string{"Book Author", "Book Title", "Date Published"},
		Rows: []domain.Row{
			{"Book Author": "Jane Doe", "Book Title": "One", "Date Published": "2001"},
			{"Book Author": "John Smith", "Book Title": "Two, The Sequel", "Date Published": "2002"},
			{"Book Author": "", "Book Title": "Anonymous \"Work\"", "Date Published": "2003"},
		},
	}

	// Act
	encoded, err := tabular.Encode(doc)
	require.NoError(t, err)
	decoded, err := tabular.Decode(encoded)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, doc.Columns, decoded.Columns)
	assert.Equal(t, doc.Rows, decoded.Rows)
}
