package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"nshub/internal/platform/dates"
)

var (
	shortDateRe     = regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{2}`)
	leadingNonNumRe = regexp.MustCompile(`^\D+`)
)

// Parse extracts a grade report from the portal's report HTML. Term-based
// reports carry two extra header spans, which shifts the range and teacher
// positions; hasTerms selects the shifted positions. Every extraction
// degrades to its default on malformed markup.
func Parse(htmlText string, hasTerms bool) GradeReport {
	report := GradeReport{Raw: htmlText}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return report
	}

	rangePos, teacherPos := 3, 9
	if hasTerms {
		rangePos, teacherPos = 5, 11
	}

	rangeText := doc.Find(fmt.Sprintf("table td:nth-child(2) > span:nth-child(%d)", rangePos)).First().Text()
	if found := shortDateRe.FindAllString(rangeText, 2); len(found) > 0 {
		report.RangeStart = dates.ParseShort(found[0])
		if len(found) > 1 {
			report.RangeEnd = dates.ParseShort(found[1])
		}
	}

	report.Teacher = strings.TrimSpace(
		doc.Find(fmt.Sprintf("table td:nth-child(2) > span:nth-child(%d)", teacherPos)).First().Text())

	report.Average = parseAverage(doc.Find(".table-print tr.totals td:nth-child(3)").First().Text())
	report.Items = parseItems(doc)
	return report
}

// parseAverage handles the "Средний балл: 4,5" cell: decimal comma, a label
// prefix before the digits, and anything unparsable collapsing to zero.
func parseAverage(text string) float64 {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if stripped := leadingNonNumRe.ReplaceAllString(text, ""); stripped != "" {
		text = stripped
	}
	mark, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0.0
	}
	return mark
}

func parseItems(doc *goquery.Document) []GradedItem {
	rows := doc.Find(".table-print").First().Find("tr")
	if rows.Length() == 0 {
		return nil
	}

	var items []GradedItem
	// The last row holds the totals, not an assignment.
	rows.Slice(0, rows.Length()-1).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 5 {
			return
		}
		items = append(items, GradedItem{
			Type:      strings.TrimSpace(cells.Eq(0).Text()),
			Theme:     strings.TrimSpace(cells.Eq(1).Text()),
			Date:      dates.ParseShort(strings.TrimSpace(cells.Eq(2).Text())),
			IssueDate: dates.ParseShort(strings.TrimSpace(cells.Eq(3).Text())),
			Mark:      parseMark(strings.TrimSpace(cells.Eq(4).Text())),
		})
	})
	return items
}

func parseMark(text string) float64 {
	mark, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0.0
	}
	return mark
}
