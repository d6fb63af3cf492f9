package mocks

import (
	"github.com/user/vidsquare/pkg/ports"
)

// Progress is a mock implementation of ports.ProgressReporter.
type Progress struct {
	BatchTotal    int
	StartedFiles  []StartedFile
	Advanced      int
	FilesFinished int
	BatchFinished bool
}

// StartedFile records a call to StartFile.
type StartedFile struct {
	Name        string
	TotalFrames int
}

func (m *Progress) StartBatch(totalFiles int) {
	m.BatchTotal = totalFiles
}

func (m *Progress) StartFile(name string, totalFrames int) {
	m.StartedFiles = append(m.StartedFiles, StartedFile{Name: name, TotalFrames: totalFrames})
}

func (m *Progress) Advance(n int) {
	m.Advanced += n
}

func (m *Progress) FinishFile() {
	m.FilesFinished++
}

func (m *Progress) FinishBatch() {
	m.BatchFinished = true
}

var _ ports.ProgressReporter = (*Progress)(nil)
