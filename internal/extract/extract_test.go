package extract

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan_SurroundingCommentary(t *testing.T) {
	raw := "Sure! Here are your questions:\n```json\n{\"questions\":[]}\n```\nLet me know if you need more."
	span, err := Span(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"questions":[]}`, span)
}

func TestSpan_NoBrace(t *testing.T) {
	_, err := Span("I could not generate any questions, sorry.")
	var noObj *NoObjectError
	require.ErrorAs(t, err, &noObj)
	assert.Equal(t, "I could not generate any questions, sorry.", noObj.Raw)
}

func TestSpan_ClosingBeforeOpening(t *testing.T) {
	_, err := Span("} oops {")
	var noObj *NoObjectError
	assert.ErrorAs(t, err, &noObj)
}

func TestSpan_GreedyMergesFragments(t *testing.T) {
	// Two independent objects collapse into one span. This is the
	// documented behavior, not a bug to fix here.
	span, err := Span(`{"a":1} and also {"b":2}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1} and also {"b":2}`, span)
}

func TestObject_EscapesInvalidEscapeSequences(t *testing.T) {
	raw := `{"question":"What is 2\x2?"}`
	obj, err := Object(raw)
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal(obj, &m))
	assert.Equal(t, `What is 2\x2?`, m["question"])
}

func TestArray_RecoverEmbeddedQuestions(t *testing.T) {
	raw := "Here you go:\n" +
		`{"questions":[{"question":"What color is the sky?","choices":["Red","Blue","Green","Yellow"],"correct_answer":"Blue","explanation":"The passage says so."}]}` +
		"\nEnjoy!"

	arr, err := Array(raw, "questions")
	require.NoError(t, err)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(arr, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "What color is the sky?", items[0]["question"])
}

func TestArray_MissingKeyIsSchemaViolation(t *testing.T) {
	_, err := Array(`{"items":[]}`, "questions")
	var missing *MissingKeyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "questions", missing.Key)

	// Distinct from a syntax error.
	var decode *DecodeError
	assert.False(t, errors.As(err, &decode))
}

func TestArray_SyntaxErrorCarriesRawSpan(t *testing.T) {
	_, err := Array(`prefix {"questions":[} suffix`, "questions")
	var decode *DecodeError
	require.ErrorAs(t, err, &decode)
	assert.Contains(t, decode.Raw, `"questions"`)
}

func TestItems_DecodesTypedRecords(t *testing.T) {
	type item struct {
		Question string `json:"question"`
	}
	var items []item
	err := Items(`{"questions":[{"question":"a"},{"question":"b"}]}`, "questions", &items)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[1].Question)
}
