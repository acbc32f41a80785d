package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders the view as a markdown document for terminals.
func Markdown(view *View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", view.Title)
	fmt.Fprintf(&b, "评估编号：`%s`\n\n", view.EvaluationID)

	if view.Fallback != nil {
		b.WriteString("> 为避免推荐结果为空，已执行以下放宽：\n")
		for _, step := range view.Fallback.Steps {
			fmt.Fprintf(&b, "> - %s\n", step)
		}
		b.WriteString("\n")
	}

	if len(view.Schools) == 0 {
		b.WriteString("暂无推荐院校。\n\n")
	}
	for i, school := range view.Schools {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, school.Name)
		meta := []string{school.Country}
		if school.Rank > 0 {
			meta = append(meta, fmt.Sprintf("排名 #%d", school.Rank))
		}
		if school.Tuition > 0 {
			meta = append(meta, "学费 "+formatTuition(school.Tuition))
		}
		b.WriteString(strings.Join(meta, " · ") + "\n\n")
		for _, line := range school.Explanation {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		if len(school.Explanation) > 0 {
			b.WriteString("\n")
		}
		if len(school.Tags) > 0 {
			fmt.Fprintf(&b, "标签：%s\n\n", strings.Join(school.Tags, "、"))
		}
		if len(school.Strengths) > 0 {
			fmt.Fprintf(&b, "优势专业：%s\n\n", strings.Join(school.Strengths, "、"))
		}
		if school.Website != "" {
			fmt.Fprintf(&b, "[访问官网](%s)\n\n", school.Website)
		}
	}

	for _, n := range view.Notes {
		fmt.Fprintf(&b, "### %s\n\n", n.Label)
		for _, line := range n.Lines {
			b.WriteString(line + "\n\n")
		}
	}
	if view.Guidance != "" {
		fmt.Fprintf(&b, "### 申请建议\n\n%s\n", view.Guidance)
	}
	return b.String()
}

// Terminal renders the view for a terminal of the given width.
func Terminal(view *View, width int) (string, error) {
	return RenderMarkdown(Markdown(view), width)
}

// RenderMarkdown styles any markdown document for the terminal.
func RenderMarkdown(md string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	return renderer.Render(md)
}
