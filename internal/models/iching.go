package models

type Trigram struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
	Character   string `json:"character"`
	Binary      string `json:"binary"`
	Attribute   string `json:"attribute"`
	Image       string `json:"image"`
	Element     string `json:"element"`
}

type HexagramLine struct {
	Position int    `json:"position"`
	Meaning  string `json:"meaning"`
}

// Hexagram is one of the 64 King Wen hexagrams. Binary reads bottom line to
// top line, left to right, 1 = yang.
type Hexagram struct {
	Number        int            `json:"number"`
	Name          string         `json:"name"`
	EnglishName   string         `json:"english_name"`
	Character     string         `json:"character"`
	Binary        string         `json:"binary"`
	TopTrigram    int            `json:"top_trigram"`
	BottomTrigram int            `json:"bottom_trigram"`
	Judgment      string         `json:"judgment"`
	Lines         []HexagramLine `json:"lines,omitempty"`
	Keywords      []string       `json:"keywords"`
}

// CastResult is the outcome of one three-coin cast of six lines.
// Line values are 6 (old yin), 7 (young yang), 8 (young yin) or 9 (old yang);
// ChangingLines holds 1-based positions of the 6s and 9s, bottom to top.
type CastResult struct {
	Lines                     []int  `json:"lines"`
	ChangingLines             []int  `json:"changing_lines"`
	HexagramNumber            int    `json:"hexagram_number"`
	TransformedHexagramNumber *int   `json:"transformed_hexagram_number,omitempty"`
	Binary                    string `json:"binary"`
	TransformedBinary         string `json:"transformed_binary,omitempty"`
}

// IChingReading is the immutable state of one I Ching session. RevealedLines
// counts changing lines already revealed (in ascending position order).
type IChingReading struct {
	Question            string          `json:"question"`
	Cast                CastResult      `json:"cast"`
	Hexagram            Hexagram        `json:"hexagram"`
	TransformedHexagram *Hexagram       `json:"transformed_hexagram,omitempty"`
	RevealedLines       int             `json:"revealed_lines"`
	Feedback            []FeedbackEntry `json:"feedback"`
}
