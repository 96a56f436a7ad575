package main

import (
	"fmt"
	"strings"

	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/Dan9191/serenity-service/internal/utils"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(16)
	tipStyle   = lipgloss.NewStyle().Italic(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var levelColors = map[models.Level]lipgloss.Color{
	models.LevelSerene:   lipgloss.Color("42"),
	models.LevelSound:    lipgloss.Color("220"),
	models.LevelStrained: lipgloss.Color("208"),
	models.LevelCritical: lipgloss.Color("196"),
}

func scoreLine(score int, level models.Level, message string) string {
	badge := lipgloss.NewStyle().Bold(true).Foreground(levelColors[level]).
		Render(fmt.Sprintf("%d/100 %s", score, level))
	return badge + "  " + message
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

func tipLines(tips []string) []string {
	lines := make([]string, 0, len(tips))
	for _, tip := range tips {
		lines = append(lines, tipStyle.Render("• "+tip))
	}
	return lines
}

func renderProjection(res *models.ProjectionResult) string {
	cur := res.Meta.Currency
	lines := []string{
		titleStyle.Render(fmt.Sprintf("Projection over %d days", res.Meta.HorizonDays)),
		scoreLine(res.Score.Score, res.Score.Level, res.Score.Message),
		"",
		row("Income", utils.FormatMoney(res.KPI.Income, cur)),
		row("Expenses", utils.FormatMoney(res.KPI.TotalExpense, cur)),
		row("Free cash", utils.FormatMoney(res.KPI.FreeCash, cur)),
		row("Savings rate", fmt.Sprintf("%.1f%%", res.KPI.SavePct)),
		row("Debt rate", fmt.Sprintf("%.1f%%", res.KPI.DebtPct)),
		"",
		row("Day 30", utils.FormatMoney(res.Milestones.Month1, cur)),
		row("Day 180", utils.FormatMoney(res.Milestones.Month6, cur)),
		row("Day 365", utils.FormatMoney(res.Milestones.Month12, cur)),
	}
	if n := len(res.Curve); n > 0 {
		last := res.Curve[n-1]
		lines = append(lines, row("On "+last.Date, utils.FormatMoney(last.Balance, cur)))
	}
	lines = append(lines, "")
	lines = append(lines, tipLines(res.Tips)...)

	return boxStyle.Render(strings.Join(lines, "\n"))
}

func renderQuick(res models.QuickResult) string {
	lines := []string{
		titleStyle.Render("Quick score"),
		scoreLine(res.Score, res.Level, res.Message),
		"",
		row("Income", utils.FormatMoney(res.Recap.Income, "")),
		row("Expenses", utils.FormatMoney(res.Recap.TotalExpense, "")),
		row("Balance", utils.FormatMoney(res.Balance, "")),
		row("Savings ratio", fmt.Sprintf("%.2f", res.Ratios.Savings)),
		row("Fixed ratio", fmt.Sprintf("%.2f", res.Ratios.Fixed)),
		row("Debt ratio", fmt.Sprintf("%.2f", res.Ratios.Debt)),
		"",
	}
	lines = append(lines, tipLines(res.Tips)...)

	return boxStyle.Render(strings.Join(lines, "\n"))
}
