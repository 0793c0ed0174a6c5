package meeting

import (
	"fmt"
	"strings"
	"time"

	"github.com/lingonote/lingonote/internal/domain/entities"
)

// RenderExport renders the fixed-section summary document for a meeting and
// one of its cached translations. The heading text and section order are a
// compatibility surface; downstream tooling matches on them.
func RenderExport(m *entities.Meeting, t *entities.Translation, generatedAt time.Time) string {
	summary := t.StructuredSummary()

	source := m.SourceLanguage()
	if source == "" {
		source = "unknown"
	}

	var b strings.Builder

	b.WriteString("# Meeting Summary\n\n")
	fmt.Fprintf(&b, "**%s**\n\n", m.Title)
	fmt.Fprintf(&b, "Translated from %s to %s\n", source, t.TargetLanguage)
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.UTC().Format("2006-01-02 15:04:05 MST"))

	b.WriteString("## Overview\n\n")
	b.WriteString(summary.Summary)
	b.WriteString("\n\n")

	if len(summary.Participants) > 0 {
		b.WriteString("## Participants\n\n")
		for _, participant := range summary.Participants {
			fmt.Fprintf(&b, "- %s\n", participant)
		}
		b.WriteString("\n")
	}

	if len(summary.ActionItems) > 0 {
		b.WriteString("## Action Items\n\n")
		for i, item := range summary.ActionItems {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		b.WriteString("\n")
	}

	if len(summary.KeyPoints) > 0 {
		b.WriteString("## Key Points\n\n")
		for _, point := range summary.KeyPoints {
			fmt.Fprintf(&b, "- %s\n", point)
		}
		b.WriteString("\n")
	}

	if len(summary.Decisions) > 0 {
		b.WriteString("## Decisions Made\n\n")
		for _, decision := range summary.Decisions {
			fmt.Fprintf(&b, "- %s\n", decision)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Original Content\n\n")
	writeFenced(&b, m.OriginalContent)

	b.WriteString("## Translated Content\n\n")
	writeFenced(&b, t.TranslatedContent)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeFenced(b *strings.Builder, content string) {
	b.WriteString("```\n")
	b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n\n")
}
