package result

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
)

// Render formats a single invocation result for terminal output.
func Render(res domain.InvocationResult) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Claude Agent Response"),
		fmt.Sprintf("%s %s", s.label.Render("model:"), s.value.Render(res.Model)),
		fmt.Sprintf("%s %s", s.label.Render("prompt:"), s.value.Render(res.PromptUsed)),
		fmt.Sprintf("%s %s", s.label.Render("status:"), statusBadge(res.Status, s)),
	}

	if res.Error != "" {
		lines = append(lines, fmt.Sprintf("%s %s", s.label.Render("error:"), s.failure.Render(res.Error)))
	}
	if res.AgentResponse != "" {
		lines = append(lines, s.response.Render(res.AgentResponse))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderHistory formats recorded invocations, most recent last.
func RenderHistory(records []domain.InvocationRecord) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Invocation History"),
		s.label.Render(fmt.Sprintf("invocations: %d", len(records))),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No invocations recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range records {
		lines = append(lines, s.section.Render(renderRecord(record, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRecord(record domain.InvocationRecord, s styles) string {
	parts := []string{
		fmt.Sprintf("%s %s", statusBadge(record.Status, s), s.value.Render(record.Prompt)),
		s.label.Render(fmt.Sprintf("%s · %s · %s",
			record.CreatedAt.Local().Format(time.DateTime),
			record.Model,
			sourceLabel(record.Source),
		)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func statusBadge(status domain.InvocationStatus, s styles) string {
	if status == domain.InvocationStatusSuccess {
		return s.success.Render(string(status))
	}

	return s.failure.Render(string(status))
}

func sourceLabel(source domain.CredentialSource) string {
	if source == "" {
		return "source n/a"
	}

	return string(source)
}
