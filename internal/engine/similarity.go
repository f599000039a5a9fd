package engine

import "strings"

type relatedTerm struct {
	term  string
	score float64
}

type similarityAnchor struct {
	anchor  string
	related []relatedTerm
}

// similarityTable is scanned in order, anchors first and then each anchor's
// related terms; the first pair that matches wins.
var similarityTable = []similarityAnchor{
	{"sewing", []relatedTerm{
		{"tailoring", 0.95}, {"stitching", 0.9}, {"garment making", 0.9}, {"fashion design", 0.85},
		{"embroidery", 0.8}, {"alterations", 0.85}, {"pattern making", 0.85},
	}},
	{"cooking", []relatedTerm{
		{"culinary", 0.95}, {"food preparation", 0.9}, {"baking", 0.85}, {"catering", 0.85},
		{"recipe development", 0.8}, {"food service", 0.8},
	}},
	{"art & craft", []relatedTerm{
		{"handicrafts", 0.95}, {"creativity", 0.85}, {"traditional arts", 0.9}, {"pottery", 0.85},
		{"woodwork", 0.8}, {"jewelry making", 0.85}, {"handmade", 0.85},
	}},
	{"teaching", []relatedTerm{
		{"tutoring", 0.95}, {"education", 0.9}, {"training", 0.85}, {"mentoring", 0.85}, {"academic", 0.8},
	}},
	{"beauty & makeup", []relatedTerm{
		{"hair styling", 0.9}, {"skincare", 0.85}, {"aesthetics", 0.85}, {"cosmetics", 0.9}, {"beauty", 0.95},
	}},
	{"technology", []relatedTerm{
		{"digital marketing", 0.85}, {"online", 0.8}, {"e-commerce", 0.85}, {"social media", 0.8},
		{"content creation", 0.75},
	}},
}

const tokenOverlapScore = 0.6

// Similarity returns a partial-credit score for two normalized skill strings.
// Table hits return the related term's score. Otherwise, if a word longer
// than three characters in one string contains, or is contained in, such a
// word of the other, the result is tokenOverlapScore.
func Similarity(a, b string) float64 {
	for _, entry := range similarityTable {
		if strings.Contains(a, entry.anchor) {
			for _, rel := range entry.related {
				if strings.Contains(b, rel.term) {
					return rel.score
				}
			}
		}
		if strings.Contains(b, entry.anchor) {
			for _, rel := range entry.related {
				if strings.Contains(a, rel.term) {
					return rel.score
				}
			}
		}
	}

	if sharesToken(a, b) {
		return tokenOverlapScore
	}
	return 0
}

func sharesToken(a, b string) bool {
	wordsB := tokenize(b)
	for _, wa := range tokenize(a) {
		for _, wb := range wordsB {
			if strings.Contains(wa, wb) || strings.Contains(wb, wa) {
				return true
			}
		}
	}
	return false
}

// tokenize splits on whitespace, "&" and "-" and keeps words longer than
// three bytes.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '&' || r == '-' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) > 3 {
			out = append(out, f)
		}
	}
	return out
}
