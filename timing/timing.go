//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

// Package timing records digest timing samples and renders them as
// a throughput report.
package timing

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// ByteSize is a data size in bytes.
type ByteSize uint64

func (s ByteSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Throughput returns the processing rate of s bytes in d as a
// human readable string.
func Throughput(s ByteSize, d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	rate := float64(s) / d.Seconds()
	return fmt.Sprintf("%s/s", ByteSize(rate))
}

// Timing records timing samples.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample for label that processed size bytes.
// The sample starts where the previous sample ended.
func (t *Timing) Sample(label string, size ByteSize) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
		Size:  size,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Total returns the total duration and the total data size of all
// samples.
func (t *Timing) Total() (time.Duration, ByteSize) {
	var size ByteSize
	for _, sample := range t.Samples {
		size += sample.Size
	}
	if len(t.Samples) == 0 {
		return 0, size
	}
	return t.Samples[len(t.Samples)-1].End.Sub(t.Start), size
}

// Print prints the timing report to out.
func (t *Timing) Print(out io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Data").SetAlign(tabulate.MR)
	tab.Header("Rate").SetAlign(tabulate.MR)

	total, size := t.Total()
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.Duration()
		row.Column(duration.String())
		row.Column(percent(duration, total))
		row.Column(sample.Size.String())
		row.Column(Throughput(sample.Size, duration))

		for idx, sub := range sample.Samples {
			row := tab.Row()

			var prefix string
			if idx+1 >= len(sample.Samples) {
				prefix = "\u2570\u2574"
			} else {
				prefix = "\u251C\u2574"
			}
			row.Column(prefix + sub.Label).SetFormat(tabulate.FmtItalic)

			d := sub.Duration()
			row.Column(d.String()).SetFormat(tabulate.FmtItalic)
			row.Column(percent(d, duration)).SetFormat(tabulate.FmtItalic)
			row.Column(sub.Size.String()).SetFormat(tabulate.FmtItalic)
			row.Column(Throughput(sub.Size, d)).SetFormat(tabulate.FmtItalic)
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(size.String()).SetFormat(tabulate.FmtBold)
	row.Column(Throughput(size, total)).SetFormat(tabulate.FmtBold)

	tab.Print(out)
}

func percent(d, total time.Duration) string {
	if total <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(d)/float64(total)*100)
}

// Sample contains information about one timing sample.
type Sample struct {
	Label   string
	Start   time.Time
	End     time.Time
	Abs     time.Duration
	Size    ByteSize
	Samples []*Sample
}

// Duration returns the sample duration.
func (s *Sample) Duration() time.Duration {
	if s.Abs > 0 {
		return s.Abs
	}
	return s.End.Sub(s.Start)
}

// SubSample adds a sub-sample for a timing sample.
func (s *Sample) SubSample(label string, end time.Time, size ByteSize) {
	start := s.Start
	if len(s.Samples) > 0 {
		start = s.Samples[len(s.Samples)-1].End
	}
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Start: start,
		End:   end,
		Size:  size,
	})
}

// AbsSubSample adds an absolute sub-sample for a timing sample.
func (s *Sample) AbsSubSample(label string, duration time.Duration,
	size ByteSize) {
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Abs:   duration,
		Size:  size,
	})
}
