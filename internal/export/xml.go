// Package export renders projection payloads as XML documents.
package export

import (
	"fmt"
	"strconv"

	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/Dan9191/serenity-service/internal/report"
	"github.com/beevik/etree"
)

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func ratio(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func newDocument(root string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc, doc.CreateElement(root)
}

func write(doc *etree.Document) ([]byte, error) {
	doc.Indent(2)
	b, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write XML: %w", err)
	}
	return b, nil
}

func addText(parent *etree.Element, tag, text string) *etree.Element {
	el := parent.CreateElement(tag)
	el.SetText(text)
	return el
}

func addKPI(parent *etree.Element, k models.KPI) {
	el := parent.CreateElement("kpi")
	addText(el, "income", money(k.Income))
	addText(el, "fixed", money(k.Fixed))
	addText(el, "variable", money(k.Variable))
	addText(el, "credit", money(k.Credit))
	addText(el, "total_expense", money(k.TotalExpense))
	addText(el, "debt_pct", money(k.DebtPct))
	addText(el, "free_cash", money(k.FreeCash))
	addText(el, "save_pct", money(k.SavePct))
}

func addMilestones(parent *etree.Element, m models.Milestones) {
	el := parent.CreateElement("milestones")
	addText(el, "m1", money(m.Month1))
	addText(el, "m6", money(m.Month6))
	addText(el, "m12", money(m.Month12))
}

func addCurve(parent *etree.Element, curve []models.BalancePoint) {
	el := parent.CreateElement("curve")
	for _, p := range curve {
		pt := el.CreateElement("point")
		pt.CreateAttr("date", p.Date)
		pt.CreateAttr("balance", money(p.Balance))
	}
}

func addBreakdown(parent *etree.Element, b models.Breakdown) {
	el := parent.CreateElement("breakdown")
	for _, group := range []struct {
		tag   string
		items []models.BreakdownItem
	}{
		{"by_category", b.ByCategory},
		{"by_recurrence", b.ByRecurrence},
	} {
		g := el.CreateElement(group.tag)
		for _, it := range group.items {
			item := g.CreateElement("item")
			item.CreateAttr("key", it.Key)
			item.CreateAttr("label", it.Label)
			item.SetText(money(it.Amount))
		}
	}
}

func addTips(parent *etree.Element, tips []string) {
	el := parent.CreateElement("tips")
	for _, tip := range tips {
		addText(el, "tip", tip)
	}
}

// ProjectionXML renders a projection result
func ProjectionXML(res *models.ProjectionResult) ([]byte, error) {
	doc, root := newDocument("projection")

	meta := root.CreateElement("meta")
	addText(meta, "currency", res.Meta.Currency)
	addText(meta, "horizon_days", strconv.Itoa(res.Meta.HorizonDays))

	inputs := root.CreateElement("inputs")
	addText(inputs, "base", money(res.Inputs.Base))
	sc := inputs.CreateElement("scenario")
	sc.CreateAttr("var_mul", ratio(res.Inputs.Scenario.VarMul))
	sc.CreateAttr("extra_income", money(float64(res.Inputs.Scenario.ExtraIncome)))
	sc.CreateAttr("extra_credit", money(float64(res.Inputs.Scenario.ExtraCredit)))

	addKPI(root, res.KPI)

	s := root.CreateElement("score")
	s.CreateAttr("level", string(res.Score.Level))
	s.CreateAttr("color", res.Score.Color)
	addText(s, "value", strconv.Itoa(res.Score.Score))
	addText(s, "message", res.Score.Message)
	if r := res.Score.Ratios; r != nil {
		ratios := s.CreateElement("ratios")
		ratios.CreateAttr("savings", ratio(r.Savings))
		ratios.CreateAttr("fixed", ratio(r.Fixed))
		ratios.CreateAttr("debt", ratio(r.Debt))
	}

	addMilestones(root, res.Milestones)
	addCurve(root, res.Curve)
	addBreakdown(root, res.Breakdown)
	addTips(root, res.Tips)

	return write(doc)
}

// ReportXML renders a report payload
func ReportXML(r *report.Report) ([]byte, error) {
	doc, root := newDocument("report")

	meta := root.CreateElement("meta")
	addText(meta, "currency", r.Meta.Currency)
	addText(meta, "generated_at", r.Meta.GeneratedAt)
	addText(meta, "horizon_days", strconv.Itoa(r.Meta.HorizonDays))

	summary := root.CreateElement("summary")
	summary.CreateAttr("level", string(r.Summary.Level))
	addText(summary, "score", strconv.Itoa(r.Summary.Score))
	addText(summary, "message", r.Summary.Message)
	addKPI(summary, r.Summary.KPI)

	addMilestones(root, r.Milestones)

	f := root.CreateElement("formatted")
	addText(f, "income", r.Formatted.Income)
	addText(f, "total_expense", r.Formatted.TotalExpense)
	addText(f, "free_cash", r.Formatted.FreeCash)
	addText(f, "m1", r.Formatted.Month1)
	addText(f, "m6", r.Formatted.Month6)
	addText(f, "m12", r.Formatted.Month12)

	addCurve(root, r.Curve)
	addBreakdown(root, r.Breakdown)
	addTips(root, r.Tips)
	addText(root, "disclaimer", r.Disclaimer)

	return write(doc)
}
