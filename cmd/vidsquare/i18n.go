// Package main provides localization for the vidsquare CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Batch transcode videos to square resolution at 30 fps.": "動画を一括で正方形解像度・30fpsに変換します。",

		// Run command
		"Transcode all videos under the input directory.": "入力ディレクトリ以下の全動画を変換",

		// Probe command
		"Print metadata for a single video file.": "動画ファイルのメタデータを表示",

		// Version command
		"Show version information.":   "バージョン情報を表示",
		"vidsquare (Go) version %s":   "vidsquare (Go版) バージョン %s",

		// Run flags
		"Input directory to scan for videos (default: ./input).":      "動画を探す入力ディレクトリ（デフォルト: ./input）",
		"Output directory for transcoded videos (default: ./output).": "変換済み動画の出力ディレクトリ（デフォルト: ./output）",
		"Square output resolution: 360, 480 or 720 (default: 720).":   "正方形の出力解像度: 360, 480, 720（デフォルト: 720）",
		"Process only the first N videos found.":                      "見つかった最初のN件のみ処理",
		"YAML configuration file.":                                    "YAML設定ファイル",
		"Save a contact sheet image per output video.":                "出力動画ごとにコンタクトシート画像を保存",
		"Enable debug output.":                                        "デバッグ出力を有効化",
		"Directory for debug output.":                                 "デバッグ出力のディレクトリ",
		"Output execution summary to file (Markdown format).":         "実行サマリーをファイルに出力（Markdown形式）",
		"Log level (debug, info, warn, error).":                       "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":                                    "全てのログ出力を抑制",

		// Runtime messages
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
		"Summary saved to %s":           "サマリーを %s に保存しました",
		"Failed to write summary: %s":   "サマリーの書き込みに失敗しました: %s",
		"%d of %d videos failed":        "%d/%d 件の動画が失敗しました",

		// Validation errors
		"unsupported resolution %d, must be one of %v": "解像度 %d は未対応です。%v のいずれかを指定してください",
		"test count must be positive, got %d":          "テスト件数は正の値が必要です: %d",

		// Probe output
		"File":        "ファイル",
		"Codec":       "コーデック",
		"Dimensions":  "解像度",
		"Frame Rate":  "フレームレート",
		"Frame Count": "フレーム数",
		"Duration":    "再生時間",
		"Container":   "コンテナ",
		"samples":     "サンプル",

		// Summary content
		"Transcode Summary": "変換サマリー",
		"Generated":         "生成日時",
		"Settings":          "設定",
		"Input":             "入力",
		"Output":            "出力",
		"Format":            "フォーマット",
		"File cap":          "処理上限",
		"Results":           "実行結果",
		"Succeeded":         "成功",
		"Failed":            "失敗",
		"Frames read":       "読み込みフレーム数",
		"Frames written":    "書き込みフレーム数",
		"Files":             "ファイル",
		"Source":            "ソース",
		"Skip":              "スキップ",
		"Frames":            "フレーム",
		"Status":            "状態",
		"OK":                "OK",
		"FAILED":            "失敗",
	})
}
