package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dverbin/phrasal/internal/audio"
	"github.com/dverbin/phrasal/internal/router"
	"github.com/dverbin/phrasal/internal/screen"
	"github.com/dverbin/phrasal/internal/screens/author"
	"github.com/dverbin/phrasal/internal/store"
	"github.com/dverbin/phrasal/internal/suggest"
	"github.com/dverbin/phrasal/internal/ui/components"
	"github.com/dverbin/phrasal/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu        components.Menu
	lessonCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(lessons store.LessonRepo, suggestSvc *suggest.Service, audioSvc audio.Service) *HomeScreen {
	var lessonCount int
	if lessons != nil {
		if all, err := lessons.LoadAll(context.Background()); err == nil {
			lessonCount = len(all)
		}
	}

	items := []components.MenuItem{
		{Label: "NEW LESSON", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: author.New(lessons, suggestSvc, audioSvc, author.StartNew),
				}
			}
		}},
		{Label: "MY LESSONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: author.New(lessons, suggestSvc, audioSvc, author.StartList),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		lessonCount: lessonCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("P H R A S A L")
	subtitle := theme.Subtitle.Render("author and play language lessons in your terminal")

	var count string
	if h.lessonCount == 1 {
		count = theme.Hint.Render("1 lesson in your library")
	} else {
		count = theme.Hint.Render(fmt.Sprintf("%d lessons in your library", h.lessonCount))
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		subtitle,
		"",
		count,
		"",
		h.menu.View(),
	)

	return components.CenterFrame(body, width, height)
}
