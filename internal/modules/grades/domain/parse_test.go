package domain_test

import (
	"testing"
	"time"

	"nshub/internal/modules/grades/domain"
)

const reportHTML = `
<html><body>
<table>
  <tr>
    <td>1</td>
    <td>
      <span>Отчёт</span>
      <span>об успеваемости</span>
      <span>период: с 02.09.24 по 30.09.24</span>
      <span>класс</span>
      <span>9А</span>
      <span>предмет</span>
      <span>Алгебра</span>
      <span>учитель</span>
      <span>Иванова И. И.</span>
    </td>
  </tr>
</table>
<table class="table-print">
  <tr>
    <td>Ответ на уроке</td><td>Квадратные уравнения</td>
    <td>03.09.24</td><td>04.09.24</td><td>5</td>
  </tr>
  <tr>
    <td>Контрольная работа</td><td>Дискриминант</td>
    <td>10.09.24</td><td></td><td></td>
  </tr>
  <tr class="totals">
    <td>Итого</td><td></td><td>Средний балл: 4,5</td>
  </tr>
</table>
</body></html>`

const termsReportHTML = `
<html><body>
<table>
  <tr>
    <td>1</td>
    <td>
      <span>Отчёт</span>
      <span>об успеваемости</span>
      <span>учебный год</span>
      <span>2024/2025</span>
      <span>период: с 02.09.24 по 30.09.24</span>
      <span>класс</span>
      <span>9А</span>
      <span>предмет</span>
      <span>Алгебра</span>
      <span>четверть</span>
      <span>Петрова П. П.</span>
    </td>
  </tr>
</table>
<table class="table-print">
  <tr class="totals"><td>Итого</td><td></td><td>4.0</td></tr>
</table>
</body></html>`

func TestParseFullReport(t *testing.T) {
	t.Parallel()
	report := domain.Parse(reportHTML, false)

	wantStart := time.Date(2024, time.September, 2, 0, 0, 0, 0, time.UTC)
	if report.RangeStart == nil || !report.RangeStart.Equal(wantStart) {
		t.Fatalf("unexpected range start: %v", report.RangeStart)
	}
	wantEnd := time.Date(2024, time.September, 30, 0, 0, 0, 0, time.UTC)
	if report.RangeEnd == nil || !report.RangeEnd.Equal(wantEnd) {
		t.Fatalf("unexpected range end: %v", report.RangeEnd)
	}
	if report.Teacher != "Иванова И. И." {
		t.Fatalf("unexpected teacher: %q", report.Teacher)
	}
	if report.Average != 4.5 {
		t.Fatalf("expected average 4.5, got %v", report.Average)
	}
	if len(report.Items) != 2 {
		t.Fatalf("expected two items (totals row skipped), got %+v", report.Items)
	}
	first := report.Items[0]
	if first.Type != "Ответ на уроке" || first.Theme != "Квадратные уравнения" || first.Mark != 5 {
		t.Fatalf("unexpected first item: %+v", first)
	}
	if first.Date == nil || first.Date.Day() != 3 || first.IssueDate == nil || first.IssueDate.Day() != 4 {
		t.Fatalf("unexpected first item dates: %+v", first)
	}
	second := report.Items[1]
	if second.Mark != 0.0 || second.IssueDate != nil {
		t.Fatalf("empty cells must default, got %+v", second)
	}
}

func TestParseShiftsPositionsForTermReports(t *testing.T) {
	t.Parallel()
	report := domain.Parse(termsReportHTML, true)

	if report.RangeStart == nil || report.RangeStart.Day() != 2 {
		t.Fatalf("unexpected term-report range start: %v", report.RangeStart)
	}
	if report.Teacher != "Петрова П. П." {
		t.Fatalf("unexpected term-report teacher: %q", report.Teacher)
	}
	if report.Average != 4.0 {
		t.Fatalf("expected average 4.0, got %v", report.Average)
	}
}

func TestParseMalformedMarkupDegradesToDefaults(t *testing.T) {
	t.Parallel()
	report := domain.Parse("<html><body><p>ничего нет</p></body></html>", false)

	if report.RangeStart != nil || report.RangeEnd != nil {
		t.Fatalf("expected nil range dates, got %+v", report)
	}
	if report.Teacher != "" || report.Average != 0.0 || len(report.Items) != 0 {
		t.Fatalf("expected zero-value report, got %+v", report)
	}
}

func TestParseAverageStripsLabelPrefix(t *testing.T) {
	t.Parallel()
	const html = `<table class="table-print">
  <tr class="totals"><td></td><td></td><td>Средний балл: 3,75</td></tr>
</table>`
	report := domain.Parse(html, false)
	if report.Average != 3.75 {
		t.Fatalf("expected average 3.75, got %v", report.Average)
	}
}

func TestParseShortRowsAreSkipped(t *testing.T) {
	t.Parallel()
	const html = `<table class="table-print">
  <tr><td>только</td><td>четыре</td><td>ячейки</td><td>тут</td></tr>
  <tr><td>Ответ на уроке</td><td>Тема</td><td>03.09.24</td><td>04.09.24</td><td>4</td></tr>
  <tr class="totals"><td></td><td></td><td>4,0</td></tr>
</table>`
	report := domain.Parse(html, false)
	if len(report.Items) != 1 || report.Items[0].Mark != 4 {
		t.Fatalf("expected only the complete row, got %+v", report.Items)
	}
}
