package match

// SynonymGroup lists the known spellings of one canonical schema field.
type SynonymGroup struct {
	// Key is the canonical field name in normalized form.
	Key     string
	Aliases []string
}

// Contains reports whether the normalized name is the key or an alias.
func (g SynonymGroup) Contains(normalized string) bool {
	if normalized == g.Key {
		return true
	}
	for _, a := range g.Aliases {
		if a == normalized {
			return true
		}
	}
	return false
}

// Synonyms is the curated alias table, in lookup order.
var Synonyms = []SynonymGroup{
	{Key: "question type", Aliases: []string{"q type", "qtype", "type", "question", "q_type"}},
	{Key: "difficulty level", Aliases: []string{"level", "difficulty", "diff level", "diff", "difficulty_level"}},
	{Key: "question text", Aliases: []string{"q text", "qtext", "question", "text", "q_text", "question_text"}},
	{Key: "option (a)", Aliases: optionAliases("a", "1")},
	{Key: "option (b)", Aliases: optionAliases("b", "2")},
	{Key: "option (c)", Aliases: optionAliases("c", "3")},
	{Key: "option (d)", Aliases: optionAliases("d", "4")},
	{Key: "option (e)", Aliases: optionAliases("e", "5")},
	{Key: "option (f)", Aliases: optionAliases("f", "6")},
	{Key: "correct answer", Aliases: []string{"answer", "correct", "correct_answer", "right answer", "right_answer"}},
	{Key: "answer explanation", Aliases: []string{"explanation", "answer_explanation", "solution", "rationale"}},
	{Key: "score", Aliases: []string{"marks", "points", "value", "weight"}},
	{Key: "topics", Aliases: []string{"topic", "subject", "category", "skill", "topics_list"}},
	{Key: "author", Aliases: []string{"author name", "created by", "writer", "author_name", "author email", "author's email"}},
}

func optionAliases(letter, n string) []string {
	return []string{
		"option " + letter,
		"option/ answer " + n,
		"option " + n,
		"option/answer " + n,
		"answer " + n,
		letter,
	}
}

// groupsFor returns the groups to consult for field: the field's own group
// first when it has one, then the rest in table order.
func groupsFor(field string) []SynonymGroup {
	key := Normalize(field)
	ordered := make([]SynonymGroup, 0, len(Synonyms))
	for _, g := range Synonyms {
		if g.Key == key {
			ordered = append(ordered, g)
		}
	}
	for _, g := range Synonyms {
		if g.Key != key {
			ordered = append(ordered, g)
		}
	}
	return ordered
}
