package relic

// SearchField selects the relic column an advanced search runs against.
type SearchField int

const (
	FieldName SearchField = iota
	FieldID
)

// ParseSearchField maps a caller-supplied field name onto a SearchField. Anything other than
// "id" or "name" falls back to FieldName rather than being rejected.
func ParseSearchField(s string) SearchField {
	if s == "id" {
		return FieldID
	}
	return FieldName
}

func (f SearchField) String() string {
	if f == FieldID {
		return "id"
	}
	return "name"
}

type advancedQuery struct {
	sql string
	arg func(term string) string
}

// advancedQueries is the only source of advanced search SQL; caller input is always bound.
var advancedQueries = map[SearchField]advancedQuery{
	// id is compared as text exactly as supplied: "007" and "7.0" do not match relic 7.
	FieldID: {
		sql: "SELECT id, name FROM relics WHERE CAST(id AS CHAR) = ? ORDER BY name",
		arg: func(term string) string { return term },
	},
	FieldName: {
		sql: "SELECT id, name FROM relics WHERE LOWER(name) LIKE LOWER(?) ESCAPE '!' ORDER BY name",
		arg: likePattern,
	},
}
