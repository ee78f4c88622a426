package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationEvent records every content-generation attempt: which mode,
// how much content went in, how many items came out, and how it ended.
type GenerationEvent struct {
	ent.Schema
}

func (GenerationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GenerationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("mode").
			Comment("Content mode: multiple_choice, free_response, flashcards, translation, listening"),
		field.Int("requested_count").
			Default(0).
			Comment("Items requested (0 for passage modes)"),
		field.Int("item_count").
			Default(0).
			Comment("Items actually produced"),
		field.Int("content_chars").
			Default(0).
			Comment("Length of the source content in characters"),
		field.String("level").
			Default("").
			Comment("Target proficiency level, verbatim"),
		field.Bool("success").
			Comment("Whether generation produced a usable payload"),
		field.String("error_kind").
			Default("").
			Comment("Failure classification: no_json, decode, missing_key, validation, rate_limit, max_tokens, provider, other"),
	}
}

func (GenerationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mode"),
		index.Fields("success"),
	}
}
