package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/deputui/internal/app"
	"github.com/runoshun/deputui/internal/asynctask"
	"github.com/runoshun/deputui/internal/domain"
	"github.com/runoshun/deputui/internal/review"
	"github.com/runoshun/deputui/internal/tui"
	"golang.org/x/term"
)

// launchReviewFunc is a function variable for launching the review screen, allowing it to be mocked in tests.
var launchReviewFunc = launchReview

// launchReview runs the review screen and returns the confirmed selection.
// stdin and stdout carry data, so keys are read from the controlling
// terminal and the screen is painted on stderr.
func launchReview(ctx context.Context, c *app.Container, releases []domain.Release) ([]domain.Release, error) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil, errors.New("review needs a terminal on stderr")
	}

	fetch := c.FetchReleaseNotesUseCase()
	if _, err := fetch.PruneNotesCache(); err != nil {
		c.Logger.Warn("cache", err.Error())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := make(chan struct{}, 1)
	runner := asynctask.New(ctx, fetch.Execute, updates)

	cfg := c.AppConfig
	session, err := review.NewSession(releases, runner, review.Options{
		ScrollStep:      cfg.Review.ScrollStep,
		LeftColumnWidth: cfg.Review.LeftColumnWidth,
	})
	if err != nil {
		return nil, err
	}

	model := tui.New(session, updates, tui.Options{
		NotesStyle:     cfg.Notes.Style,
		RenderMarkdown: cfg.Notes.RenderMarkdown,
	})

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithInputTTY(),
		tea.WithOutput(os.Stderr),
	)
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("review screen: %w", err)
	}

	// In-flight fetches observe the cancelled context and return promptly.
	cancel()
	runner.Wait()

	return selection(model.Result())
}

// selection maps a finished review to its outcome.
func selection(res tui.Result) ([]domain.Release, error) {
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Intent != review.ExitConfirm {
		return nil, domain.ErrAborted
	}
	return res.Selected, nil
}
