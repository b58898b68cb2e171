package domain

type Article struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type AgeBracket string

const (
	AgeBracketEarly AgeBracket = "early"
	AgeBracketMid   AgeBracket = "mid"
	AgeBracketLate  AgeBracket = "late"
)

// BracketForAge partitions all integers: under 40 is early, 40 through 59 is
// mid, 60 and over is late.
func BracketForAge(age int) AgeBracket {
	switch {
	case age < 40:
		return AgeBracketEarly
	case age <= 59:
		return AgeBracketMid
	default:
		return AgeBracketLate
	}
}
