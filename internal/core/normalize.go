package core

// Default values for text fields that are absent or empty in the source.
const (
	DefaultArticleTitle = "Unknown Title"
	DefaultTargetName   = "Unknown Target"
	DefaultTargetType   = "Unknown Type"
	DefaultSequenceID   = "Unnamed"
)

// FieldSpec maps one source key onto a Record field.
type FieldSpec struct {
	Source string             // Key in the source object, e.g. "Target name"
	Apply  func(*Record, any) // Sets the field from the raw value
}

// textField returns an Apply func that stores trimmed text, or def when empty.
func textField(set func(*Record) *string, def string) func(*Record, any) {
	return func(r *Record, v any) {
		s := ToText(v)
		if s == "" {
			s = def
		}
		*set(r) = s
	}
}

// FieldSpecs is the source-to-record mapping, applied in order.
var FieldSpecs = []FieldSpec{
	{Source: "Article title", Apply: textField(func(r *Record) *string { return &r.ArticleTitle }, DefaultArticleTitle)},
	{Source: "Year", Apply: func(r *Record, v any) { r.Year = ToYear(v) }},
	{Source: "Journal", Apply: textField(func(r *Record) *string { return &r.Journal }, "")},
	{Source: "Doi", Apply: textField(func(r *Record) *string { return &r.DOI }, "")},

	{Source: "Target name", Apply: textField(func(r *Record) *string { return &r.TargetName }, DefaultTargetName)},
	{Source: "Target type", Apply: textField(func(r *Record) *string { return &r.TargetType }, DefaultTargetType)},
	{Source: "Gene_Symbol", Apply: textField(func(r *Record) *string { return &r.GeneSymbol }, "")},
	{Source: "External_ID", Apply: textField(func(r *Record) *string { return &r.ExternalID }, "")},
	{Source: "External_Name", Apply: textField(func(r *Record) *string { return &r.ExternalName }, "")},
	{Source: "ID_Type", Apply: textField(func(r *Record) *string { return &r.IDType }, "")},

	{Source: "Sequence ID", Apply: textField(func(r *Record) *string { return &r.SequenceID }, DefaultSequenceID)},
	{Source: "Aptamer sequence", Apply: textField(func(r *Record) *string { return &r.Sequence }, "")},

	{Source: "pKd", Apply: func(r *Record, v any) {
		// A zero pKd carries no affinity information; treat it as missing.
		if f, ok := ToNumeric(v); ok && f != 0 {
			r.PKd = &f
		}
	}},
	{Source: "Affinity", Apply: textField(func(r *Record) *string { return &r.Affinity }, "")},
	{Source: "Buffer condition", Apply: textField(func(r *Record) *string { return &r.BufferCondition }, "")},
	{Source: "Best", Apply: func(r *Record, v any) { r.Best = ToBool(v) }},

	{Source: "Level", Apply: func(r *Record, v any) { r.Level = ParseLevel(ToText(v)) }},
}

// Normalize builds a Record from a raw source object.
// Missing keys are applied as nil so every field gets its documented default.
func Normalize(raw RawRecord, id string) Record {
	r := Record{ID: id}
	for _, spec := range FieldSpecs {
		spec.Apply(&r, raw[spec.Source])
	}
	return r
}
