// Package main provides localization for the storeshots CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Configuration": "設定",
		"Output":        "出力",
		"Logging":       "ログ",

		// Root command
		"Resize store listing screenshots to a fixed canvas": "ストア掲載用スクリーンショットを固定サイズのキャンバスに収めます",
		"storeshots fits each screenshot onto a fixed-size canvas without cropping and fills the margins with a theme background.": "storeshotsは各スクリーンショットを切り抜かずに固定サイズのキャンバスに収め、余白をテーマの背景色で塗りつぶします。",

		// Flags
		"YAML file overriding the built-in settings":       "組み込み設定を上書きするYAMLファイル",
		"Write a Markdown summary of the run to this file": "実行サマリーをMarkdown形式でこのファイルに出力",
		"Log level (debug, info, warn, error)":             "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                          "全てのログ出力を抑制",

		// Runtime messages
		"Screenshot Resizer for Chrome Web Store": "Chrome ウェブストア用スクリーンショットリサイザー",
		"✓ imaging version: %s":                   "✓ imaging バージョン: %s",
		"Imaging library is not available: %v":    "画像ライブラリが利用できません: %v",
		"Summary saved to %s":                     "サマリーを %s に保存しました",
		"Failed to write summary: %s":             "サマリーの書き込みに失敗しました: %s",
	})
}
