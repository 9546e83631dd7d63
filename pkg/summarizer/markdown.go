package summarizer

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
)

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		"Screenshot Summary": "スクリーンショットサマリー",
		"Generated":          "生成日時",
		"Settings":           "設定",
		"Results":            "処理結果",
		"Item":               "項目",
		"Value":              "値",
		"Target Size":        "出力サイズ",
		"Input Directory":    "入力ディレクトリ",
		"Output Directory":   "出力ディレクトリ",
		"Dark Background":    "ダーク背景色",
		"Light Background":   "ライト背景色",
		"File":               "ファイル",
		"Status":             "状態",
		"Original":           "元のサイズ",
		"Scaled":             "縮尺後",
		"Position":           "配置",
		"Scale":              "倍率",
		"Background":         "背景色",
		"Size":               "ファイルサイズ",
		"processed":          "処理済み",
		"skipped":            "スキップ",
		"failed":             "失敗",

		"Processed: %d, Skipped: %d, Failed: %d": "処理済み: %d, スキップ: %d, 失敗: %d",
	})
}

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", l10n.T("Screenshot Summary"))
	fmt.Fprintf(&sb, "%s: %s\n\n", l10n.T("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&sb, "## %s\n\n", l10n.T("Settings"))
	fmt.Fprintf(&sb, "| %s | %s |\n|---|---|\n", l10n.T("Item"), l10n.T("Value"))
	fmt.Fprintf(&sb, "| %s | %dx%d |\n", l10n.T("Target Size"), s.Settings.TargetWidth, s.Settings.TargetHeight)
	fmt.Fprintf(&sb, "| %s | %s |\n", l10n.T("Input Directory"), escape(s.Settings.InputDir))
	fmt.Fprintf(&sb, "| %s | %s |\n", l10n.T("Output Directory"), escape(s.Settings.OutputDir))
	fmt.Fprintf(&sb, "| %s | %s |\n", l10n.T("Dark Background"), s.Settings.DarkBackground)
	fmt.Fprintf(&sb, "| %s | %s |\n\n", l10n.T("Light Background"), s.Settings.LightBackground)

	fmt.Fprintf(&sb, "## %s\n\n", l10n.T("Results"))
	fmt.Fprintf(&sb, "%s\n\n", l10n.F("Processed: %d, Skipped: %d, Failed: %d",
		s.Count(StatusProcessed), s.Count(StatusSkipped), s.Count(StatusFailed)))

	fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
		l10n.T("File"), l10n.T("Status"), l10n.T("Original"), l10n.T("Scaled"),
		l10n.T("Position"), l10n.T("Scale"), l10n.T("Background"), l10n.T("Size"))
	sb.WriteString("|---|---|---|---|---|---|---|---|\n")

	for _, e := range s.Files {
		switch e.Status {
		case StatusProcessed:
			fmt.Fprintf(&sb, "| %s | %s | %dx%d | %dx%d | (%d, %d) | %.3f | %s | %s |\n",
				escape(e.Name), l10n.T(string(e.Status)),
				e.Original.Width, e.Original.Height, e.Scaled.Width, e.Scaled.Height,
				e.X, e.Y, e.Scale, e.Background, formatBytes(e.Bytes))
		case StatusFailed:
			fmt.Fprintf(&sb, "| %s | %s: %s | - | - | - | - | - | - |\n",
				escape(e.Name), l10n.T(string(e.Status)), escape(e.Error))
		default:
			fmt.Fprintf(&sb, "| %s | %s | - | - | - | - | - | - |\n",
				escape(e.Name), l10n.T(string(e.Status)))
		}
	}

	return sb.String()
}

// escape keeps pipes and newlines from breaking table rows.
func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func formatBytes(n int) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
