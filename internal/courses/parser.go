package courses

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Hole is one hole of a scorecard
type Hole struct {
	Number int `json:"number"`
	Par    int `json:"par"`
}

// CourseInfo is what a scorecard page tells us about a course
type CourseInfo struct {
	Name         string  `json:"name"`
	Par          float64 `json:"par"`
	CourseRating float64 `json:"course_rating"`
	SlopeRating  float64 `json:"slope_rating"`
	Holes        []Hole  `json:"holes,omitempty"`
}

var (
	courseRatingPattern = regexp.MustCompile(`(?i)course\s+rating\s*[:=]?\s*(\d{2}(?:[.,]\d)?)`)
	slopePattern        = regexp.MustCompile(`(?i)slope(?:\s+rating)?\s*[:=]?\s*(\d{2,3})`)
	parPattern          = regexp.MustCompile(`(?i)\bpar\s*[:=]?\s*(\d{2})\b`)
	whitespace          = regexp.MustCompile(`\s+`)
)

// Parser extracts course data from scorecard pages
type Parser struct{}

// NewParser creates a new parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseScorecard extracts name, holes, par and ratings from a scorecard document.
// Hole pars come from a table with a "Hole" row and a "Par" row; summary columns such as
// Out, In and Total are skipped. The total par falls back to a "Par 72" label.
func (p *Parser) ParseScorecard(doc *goquery.Document) *CourseInfo {
	info := &CourseInfo{Name: p.parseName(doc)}

	info.Holes = p.parseHoles(doc)
	for _, h := range info.Holes {
		info.Par += float64(h.Par)
	}

	text := bodyText(doc)

	if info.Par == 0 {
		if m := parPattern.FindStringSubmatch(text); m != nil {
			info.Par = parseNumber(m[1])
		}
	}

	info.CourseRating = p.attrOrPattern(doc, "data-course-rating", courseRatingPattern, text)
	info.SlopeRating = p.attrOrPattern(doc, "data-slope-rating", slopePattern, text)

	return info
}

// bodyText joins the text nodes of the body with spaces so labels in neighbouring
// elements stay separate words. Script and style contents are skipped.
func bodyText(doc *goquery.Document) string {
	var b strings.Builder
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			switch goquery.NodeName(c) {
			case "#text":
				b.WriteString(c.Text())
				b.WriteByte(' ')
			case "script", "style", "#comment":
			default:
				walk(c)
			}
		})
	}
	walk(doc.Find("body"))
	return strings.TrimSpace(whitespace.ReplaceAllString(b.String(), " "))
}

func (p *Parser) parseName(doc *goquery.Document) string {
	if name := strings.TrimSpace(doc.Find("h1").First().Text()); name != "" {
		return name
	}
	title := strings.TrimSpace(doc.Find("title").Text())
	return strings.TrimSpace(strings.Split(title, "|")[0])
}

func (p *Parser) attrOrPattern(doc *goquery.Document, attr string, pattern *regexp.Regexp, text string) float64 {
	if v, ok := doc.Find("[" + attr + "]").First().Attr(attr); ok {
		if f := parseNumber(v); f > 0 {
			return f
		}
	}
	if m := pattern.FindStringSubmatch(text); m != nil {
		return parseNumber(m[1])
	}
	return 0
}

func (p *Parser) parseHoles(doc *goquery.Document) []Hole {
	var holes []Hole

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		var holeCells, parCells []string

		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := rowCells(row)
			if len(cells) < 2 {
				return
			}
			switch strings.ToLower(cells[0]) {
			case "hole", "holes", "hoyo", "hoyos":
				holeCells = cells[1:]
			case "par":
				parCells = cells[1:]
			}
		})

		if holeCells == nil || parCells == nil {
			return true
		}

		for i, hc := range holeCells {
			number, err := strconv.Atoi(hc)
			if err != nil || i >= len(parCells) {
				continue
			}
			par, err := strconv.Atoi(parCells[i])
			if err != nil || par <= 0 {
				continue
			}
			holes = append(holes, Hole{Number: number, Par: par})
		}
		return len(holes) == 0
	})

	return holes
}

func rowCells(row *goquery.Selection) []string {
	var cells []string
	row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(cell.Text()))
	})
	return cells
}

func parseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(s), ",", ".", 1), 64)
	if err != nil {
		return 0
	}
	return f
}
