package utils

import (
	"fmt"
	"github.com/schollz/progressbar/v3"
	"io"
	"os"
)

// CreateProgressBar returns nil in silent mode; the other helpers accept that nil bar.
func CreateProgressBar(max int, description string, silent bool) *progressbar.ProgressBar {
	if silent {
		return nil
	}
	return createProgressBar(max, description, os.Stderr)
}

func createProgressBar(max int, description string, writer io.Writer) *progressbar.ProgressBar {
	max = adjustMaxValue(max)
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionSetDescription(description),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(writer, "\n")
		}),
	)
}

func IncrementProgressBar(progressBar *progressbar.ProgressBar) {
	if progressBar != nil {
		progressBar.Add(1)
	}
}

func DescribeProgressBar(progressBar *progressbar.ProgressBar, description string) {
	if progressBar != nil {
		progressBar.Describe(description)
	}
}

func FinalizeProgressBar(progressBar *progressbar.ProgressBar, max int) {
	if progressBar != nil {
		max = adjustMaxValue(max)
		progressBar.ChangeMax(max)
		progressBar.Set(max)
		progressBar.Finish()
	}
}

func adjustMaxValue(max int) int {
	if max == 0 {
		return 1
	}
	return max
}
