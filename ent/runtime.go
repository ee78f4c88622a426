// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/akiohm/quizlab/ent/generationevent"
	"github.com/akiohm/quizlab/ent/llmrequestevent"
	"github.com/akiohm/quizlab/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	generationeventMixin := schema.GenerationEvent{}.Mixin()
	generationeventMixinFields0 := generationeventMixin[0].Fields()
	_ = generationeventMixinFields0
	generationeventFields := schema.GenerationEvent{}.Fields()
	_ = generationeventFields
	// generationeventDescTimestamp is the schema descriptor for timestamp field.
	generationeventDescTimestamp := generationeventMixinFields0[1].Descriptor()
	// generationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	generationevent.DefaultTimestamp = generationeventDescTimestamp.Default.(func() time.Time)
	// generationeventDescRequestedCount is the schema descriptor for requested_count field.
	generationeventDescRequestedCount := generationeventFields[1].Descriptor()
	// generationevent.DefaultRequestedCount holds the default value on creation for the requested_count field.
	generationevent.DefaultRequestedCount = generationeventDescRequestedCount.Default.(int)
	// generationeventDescItemCount is the schema descriptor for item_count field.
	generationeventDescItemCount := generationeventFields[2].Descriptor()
	// generationevent.DefaultItemCount holds the default value on creation for the item_count field.
	generationevent.DefaultItemCount = generationeventDescItemCount.Default.(int)
	// generationeventDescContentChars is the schema descriptor for content_chars field.
	generationeventDescContentChars := generationeventFields[3].Descriptor()
	// generationevent.DefaultContentChars holds the default value on creation for the content_chars field.
	generationevent.DefaultContentChars = generationeventDescContentChars.Default.(int)
	// generationeventDescLevel is the schema descriptor for level field.
	generationeventDescLevel := generationeventFields[4].Descriptor()
	// generationevent.DefaultLevel holds the default value on creation for the level field.
	generationevent.DefaultLevel = generationeventDescLevel.Default.(string)
	// generationeventDescErrorKind is the schema descriptor for error_kind field.
	generationeventDescErrorKind := generationeventFields[6].Descriptor()
	// generationevent.DefaultErrorKind holds the default value on creation for the error_kind field.
	generationevent.DefaultErrorKind = generationeventDescErrorKind.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
