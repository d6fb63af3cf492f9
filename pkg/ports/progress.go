package ports

// ProgressReporter displays batch and per-file progress.
// It is purely observational and must not affect control flow.
type ProgressReporter interface {
	// StartBatch begins progress for a batch of totalFiles files.
	StartBatch(totalFiles int)

	// StartFile begins per-frame progress for one file.
	// totalFrames is an estimate of frames to be written; 0 when unknown.
	StartFile(name string, totalFrames int)

	// Advance reports n additional frames written for the current file.
	Advance(n int)

	// FinishFile completes the current file's progress display.
	FinishFile()

	// FinishBatch completes the batch progress display.
	FinishBatch()
}
