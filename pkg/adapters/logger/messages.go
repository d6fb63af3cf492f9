package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Batch level messages (info)
		"Found %d video(s) to process":                     "%d 件の動画を処理します",
		"Output resolution: %dx%d @ %dfps":                 "出力解像度: %dx%d @ %dfps",
		"No video files found in %s":                       "%s に動画ファイルが見つかりませんでした",
		"Completed: %d/%d videos processed successfully":   "完了: %d/%d 件の動画を正常に処理しました",
		"Failed: %s":                                       "失敗: %s",
		"Interrupted, shutting down...":                    "中断されました。シャットダウン中...",
		"Processing %s":                                    "%s を処理中",

		// Transcode component
		"Source: %dx%d @ %.2f fps, %d frames":              "ソース: %dx%d @ %.2f fps, %d フレーム",
		"Frame skip factor: %d":                            "フレームスキップ係数: %d",
		"Wrote %d of %d frames":                            "%d/%d フレームを書き込みました",

		// Warnings
		"Source reports no frame rate, keeping every frame": "ソースのフレームレートが不明のため全フレームを保持します",
		"Failed to write failure log: %s":                   "失敗ログの書き込みに失敗しました: %s",
		"Failed to save debug output: %s":                   "デバッグ出力の保存に失敗しました: %s",

		// Errors
		"Error processing %s: %s": "%s の処理中にエラーが発生しました: %s",
	})
}
