package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"trygap/internal/driver"
	"trygap/internal/ui"
)

type fmtOutcome struct {
	results []driver.FormatResult
	err     error
}

func runFmtWithUI(ctx context.Context, title string, paths []string, opts driver.FormatOptions) ([]driver.FormatResult, error) {
	files, err := driver.CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan fmtOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.FormatPaths(ctx, paths, optsCopy)
		outcomeCh <- fmtOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// the driver must not block on a UI that already quit
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
