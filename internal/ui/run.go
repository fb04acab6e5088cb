package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"exprc/internal/pipeline"
)

// RunProgress shows the progress view until work returns. work receives a
// sink that feeds the view; the events channel is closed when work is done,
// which ends the program.
func RunProgress(out io.Writer, title string, files []string, final pipeline.Stage, work func(pipeline.ProgressSink) error) error {
	events := make(chan pipeline.Event, 256)
	errCh := make(chan error, 1)

	go func() {
		err := work(pipeline.ChannelSink{Ch: events})
		close(events)
		errCh <- err
	}()

	program := tea.NewProgram(NewProgressModel(title, files, final, events), tea.WithOutput(out), tea.WithInput(nil))
	_, uiErr := program.Run()
	if uiErr != nil {
		// keep draining so work never blocks on a full channel
		go func() {
			for range events {
			}
		}()
	}
	workErr := <-errCh
	if uiErr != nil {
		return uiErr
	}
	return workErr
}
