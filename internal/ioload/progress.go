package ioload

import (
	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gn"
)

// reporter shows how many files of a directory are processed.
type reporter interface {
	Progress(done, total int)
	Finish()
}

// textReporter prints a line per committed file.
type textReporter struct{}

func (textReporter) Progress(done, total int) {
	gn.Message("%d/%d files processed.", done, total)
}

func (textReporter) Finish() {}

// barReporter draws a progress bar instead of progress lines.
type barReporter struct {
	bar *pb.ProgressBar
}

func newBarReporter(total int, prefix string) *barReporter {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return &barReporter{bar: bar}
}

func (r *barReporter) Progress(done, _ int) {
	r.bar.SetCurrent(int64(done))
}

func (r *barReporter) Finish() {
	r.bar.Finish()
}
