package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Engine
		"Extracting frames from %s with %s":                   "%s からフレームを抽出中 (%s)",
		"Saved %d frames to %s":                               "%d フレームを %s に保存しました",
		"Extraction cancelled after %d frames":                "%d フレーム処理後に抽出を中止しました",
		"Reported frame rate %.3f replaced with %.1f":         "報告されたフレームレート %.3f を %.1f に置き換えました",
		"Seek to frame %d failed, reading from the start: %s": "フレーム %d へのシークに失敗しました。先頭から読み込みます: %s",
		"Failed to encode frame %d: %s":                       "フレーム %d のエンコードに失敗しました: %s",
		"Failed to write %s: %s":                              "%s の書き込みに失敗しました: %s",
		"Failed to close stream: %s":                          "ストリームのクローズに失敗しました: %s",

		// Probe and decoder
		"Detected %s (%s)":                                  "%s を検出しました (%s)",
		"Container probe failed, falling back: %s":          "コンテナ解析に失敗しました。代替手段を使用します: %s",
		"Running %s %s":                                     "%s %s を実行中",
		"Starting %s %s":                                    "%s %s を開始します",
		"Probed %s: %dx%d, %.3f fps, %d frames, codec %s": "%s を解析しました: %dx%d, %.3f fps, %d フレーム, コーデック %s",
		"Restart from the first frame failed: %v":           "先頭フレームからの再起動に失敗しました: %v",

		// Progress
		"Progress: %d%%": "進捗: %d%%",
	})

	l10n.Register("tr", l10n.LexiconMap{
		"Extracting frames from %s with %s":                   "%s dosyasından kareler çıkarılıyor (%s)",
		"Saved %d frames to %s":                               "%d kare '%s' klasörüne kaydedildi",
		"Extraction cancelled after %d frames":                "%d kare işlendikten sonra çıkarma iptal edildi",
		"Reported frame rate %.3f replaced with %.1f":         "Bildirilen kare hızı %.3f yerine %.1f kullanılıyor",
		"Seek to frame %d failed, reading from the start: %s": "%d. kareye atlanamadı, baştan okunuyor: %s",
		"Failed to encode frame %d: %s":                       "%d. kare kodlanamadı: %s",
		"Failed to write %s: %s":                              "%s yazılamadı: %s",
		"Failed to close stream: %s":                          "Akış kapatılamadı: %s",

		"Detected %s (%s)":                                  "%s algılandı (%s)",
		"Container probe failed, falling back: %s":          "Kapsayıcı analizi başarısız, alternatif kullanılıyor: %s",
		"Running %s %s":                                     "%s %s çalıştırılıyor",
		"Starting %s %s":                                    "%s %s başlatılıyor",
		"Probed %s: %dx%d, %.3f fps, %d frames, codec %s": "%s analiz edildi: %dx%d, %.3f fps, %d kare, codec %s",
		"Restart from the first frame failed: %v":           "İlk kareden yeniden başlatma başarısız: %v",

		"Progress: %d%%": "İlerleme: %%%d",
	})
}
