package ports

// TaggedEntity is one span recognized by an external named-entity tagger.
type TaggedEntity struct {
	Text  string
	Class string // entity class, e.g. "LOC"
}

// EntityTagger is an optional capability for entity extraction. The
// interpreter must function fully with a nil tagger.
type EntityTagger interface {
	Tag(text string) []TaggedEntity
}
