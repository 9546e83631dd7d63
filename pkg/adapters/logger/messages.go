package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Batch (info)
		"Screenshot Resizer":                     "スクリーンショットリサイザー",
		"Target dimensions: %dx%d":               "出力サイズ: %dx%d",
		"Input directory: %s":                    "入力ディレクトリ: %s",
		"Output directory: %s":                   "出力ディレクトリ: %s",
		"Output directory ready: %s":             "出力ディレクトリを準備しました: %s",
		"Processing: %s":                         "処理中: %s",
		"Saved: %s":                              "保存しました: %s",
		"Successfully processed %d screenshots!": "%d 枚のスクリーンショットを処理しました",
		"%d of %d screenshots failed":            "%d / %d 枚のスクリーンショットが失敗しました",
		"Interrupted, stopping before %s":        "中断されました。%s の前で停止します",

		// Compose stage (debug)
		"Original dimensions: %dx%d": "元のサイズ: %dx%d",
		"Scaled dimensions: %dx%d":   "縮尺後のサイズ: %dx%d",
		"Position: (%d, %d)":         "配置: (%d, %d)",
		"Scale factor: %.3f":         "倍率: %.3f",
		"Background: %s":             "背景色: %s",
		"Alpha compositing enabled":  "アルファ合成を使用します",

		// Warnings
		"File not found: %s": "ファイルが見つかりません: %s",

		// Errors
		"Error processing %s: %s": "%s の処理中にエラーが発生しました: %s",
	})
}
