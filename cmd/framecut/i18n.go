// Package main provides localization for the framecut CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Output":   "出力",
		"Strategy": "抽出方法",
		"Tools":    "ツール",
		"Logging":  "ログ",

		// Root command
		"Extract still frames from video files": "動画ファイルから静止画フレームを抽出",
		"framecut decodes a video and saves selected frames as numbered JPEG files. Frames can be selected all at once, by time range, or at scene changes.": "framecutは動画をデコードし、選択したフレームを連番のJPEGファイルとして保存します。全フレーム、時間範囲、シーンチェンジのいずれかでフレームを選択できます。",

		// Commands
		"Extract frames from a video": "動画からフレームを抽出",
		"Show video properties":       "動画のプロパティを表示",
		"Show version information":    "バージョン情報を表示",
		"framecut version %s":         "framecut バージョン %s",

		// Flags
		"Output directory (default: <Desktop or home>/<video>_frames)": "出力ディレクトリ（デフォルト: <デスクトップまたはホーム>/<動画名>_frames）",
		"JPEG quality (1-100)":                               "JPEG品質（1-100）",
		"Write a Markdown summary of the run to this file":   "実行結果のMarkdownサマリーをこのファイルに書き込む",
		"Disable progress output":                            "進捗表示を無効化",
		"Frame selection mode (%s)":                          "フレーム選択モード（%s）",
		"Range start as HH:MM:SS":                            "範囲の開始（HH:MM:SS）",
		"Range end as HH:MM:SS":                              "範囲の終了（HH:MM:SS）",
		"Scene change similarity threshold in (0, 1]":        "シーンチェンジの類似度しきい値（0より大きく1以下）",
		"Downscale width for scene analysis (0 = full size)": "シーン解析時の縮小幅（0 = 元のサイズ）",
		"YAML configuration file":                            "YAML設定ファイル",
		"Path to the ffmpeg executable":                      "ffmpeg実行ファイルのパス",
		"Path to the ffprobe executable":                     "ffprobe実行ファイルのパス",
		"Log level (debug, info, warn, error, quiet)":        "ログレベル（debug, info, warn, error, quiet）",

		// Runtime messages
		"No video file given":                              "動画ファイルが指定されていません",
		"Interrupted, stopping extraction...":              "中断されました。抽出を停止しています...",
		"Extraction did not stop in time, exiting":         "抽出が時間内に停止しなかったため終了します",
		"Extraction complete! %d frames saved to '%s'.":    "抽出完了！%d フレームを '%s' に保存しました。",
		"Extraction cancelled by user.":                    "ユーザーにより抽出が中止されました。",
		"Extraction failed.":                               "抽出に失敗しました。",
		"%d frames could not be written.":                  "%d フレームを書き込めませんでした。",
		"Failed to write summary: %s":                      "サマリーの書き込みに失敗しました: %s",

		// Info and summary labels
		"File":        "ファイル",
		"Resolution":  "解像度",
		"Duration":    "再生時間",
		"Frame Rate":  "フレームレート",
		"Frames":      "フレーム数",
		"Codec":       "コーデック",
		"File Size":   "ファイルサイズ",
		"Probed by":   "解析方法",
		"Unknown":     "不明",
		"Extraction Summary": "抽出サマリー",
		"Video":              "動画",
		"Settings":           "設定",
		"Result":             "結果",
		"Mode":               "モード",
		"Name":               "名前",
		"Output Directory":   "出力ディレクトリ",
		"JPEG Quality":       "JPEG品質",
		"Outcome":            "結果",
		"Frames Processed":   "処理フレーム数",
		"Frames Saved":       "保存フレーム数",
		"Frames Dropped":     "欠落フレーム数",
		"Elapsed":            "所要時間",
		"Error":              "エラー",
		"Generated at":       "生成日時",
		"Item":               "項目",
		"Value":              "値",
		"completed":          "完了",
		"cancelled":          "中止",
		"failed":             "失敗",
	})

	// Turkish, the language of the original desktop tool.
	l10n.Register("tr", l10n.LexiconMap{
		"Output":   "Çıktı",
		"Strategy": "Strateji",
		"Tools":    "Araçlar",
		"Logging":  "Günlük",

		"Extract still frames from video files": "Video dosyalarından kare çıkar",
		"Extract frames from a video":           "Videodan kareleri çıkar",
		"Show video properties":                 "Video özelliklerini göster",
		"Show version information":              "Sürüm bilgisini göster",
		"framecut version %s":                   "framecut sürüm %s",

		"JPEG quality (1-100)":    "JPEG kalitesi (1-100)",
		"Disable progress output": "İlerleme çıktısını kapat",
		"Frame selection mode (%s)": "Kare seçim modu (%s)",
		"Range start as HH:MM:SS": "Aralık başlangıcı (SS:DD:ss)",
		"Range end as HH:MM:SS":   "Aralık bitişi (SS:DD:ss)",

		"No video file given":                           "Video dosyası belirtilmedi",
		"Interrupted, stopping extraction...":           "Kesildi, çıkarma durduruluyor...",
		"Extraction did not stop in time, exiting":      "Çıkarma zamanında durmadı, çıkılıyor",
		"Extraction complete! %d frames saved to '%s'.": "Çıkarma tamamlandı! %d kare '%s' klasörüne kaydedildi.",
		"Extraction cancelled by user.":                 "Çıkarma kullanıcı tarafından iptal edildi.",
		"Extraction failed.":                            "Çıkarma başarısız oldu.",
		"%d frames could not be written.":               "%d kare yazılamadı.",
		"Failed to write summary: %s":                   "Özet yazılamadı: %s",

		"File":       "Dosya",
		"Resolution": "Çözünürlük",
		"Duration":   "Süre",
		"Frame Rate": "Kare hızı",
		"Frames":     "Toplam kare",
		"Codec":      "Kodek",
		"File Size":  "Dosya boyutu",
		"Probed by":  "Analiz",
		"Unknown":    "Bilinmiyor",
	})
}
