// Package author implements the lesson authoring screen: the saved
// lesson list, the metadata setup form and the activity builder with its
// nested draft editor. All state transitions go through the authoring
// reducer; this screen only translates keys into actions and performs
// the side effects the reducer asks for.
package author

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dverbin/phrasal/internal/audio"
	"github.com/dverbin/phrasal/internal/authoring"
	"github.com/dverbin/phrasal/internal/editor"
	"github.com/dverbin/phrasal/internal/lesson"
	"github.com/dverbin/phrasal/internal/router"
	"github.com/dverbin/phrasal/internal/screen"
	"github.com/dverbin/phrasal/internal/screens/player"
	"github.com/dverbin/phrasal/internal/store"
	"github.com/dverbin/phrasal/internal/suggest"
	"github.com/dverbin/phrasal/internal/ui/components"
	"github.com/dverbin/phrasal/internal/ui/layout"
)

// StartMode selects where the screen opens.
type StartMode int

const (
	// StartList opens on the saved-lesson list.
	StartList StartMode = iota

	// StartNew opens straight into the setup form for a fresh lesson.
	StartNew
)

// AuthorScreen hosts the authoring state machine.
type AuthorScreen struct {
	state      authoring.State
	lessons    store.LessonRepo
	suggestSvc *suggest.Service
	audioSvc   audio.Service

	// list view
	saved         []lesson.Lesson
	listCursor    int
	listLoading   bool
	confirmDelete bool

	// setup view
	form setupForm

	// builder view
	actCursor  int
	confirmAct bool // deleting the activity under the cursor

	typeMenu    bool
	typeCursor  int
	suggestMode bool // the type menu was opened for a suggestion

	topicPrompt bool
	topicInput  components.TextInput
	suggestType lesson.ActivityType
	suggesting  bool

	// draft view
	rows        []draftRow
	rowCursor   int
	editingRow  bool
	rowInput    components.TextInput
	audioPrompt bool
	audioInput  components.TextInput
	audioRef    mediaRef

	status string
	errs   []string
}

var (
	_ screen.Screen          = (*AuthorScreen)(nil)
	_ screen.KeyHintProvider = (*AuthorScreen)(nil)
	_ screen.EscInterceptor  = (*AuthorScreen)(nil)
)

// New creates the authoring screen.
func New(lessons store.LessonRepo, suggestSvc *suggest.Service, audioSvc audio.Service, mode StartMode) *AuthorScreen {
	s := &AuthorScreen{
		state:      authoring.NewState(),
		lessons:    lessons,
		suggestSvc: suggestSvc,
		audioSvc:   audioSvc,
	}
	if mode == StartNew {
		s.state, _ = authoring.Reduce(s.state, authoring.ResetLesson{})
		s.form = newSetupForm(s.state.Lesson)
	}
	return s
}

// NewForLesson creates the authoring screen open on the given lesson's
// setup view, used by the author CLI subcommand.
func NewForLesson(lessons store.LessonRepo, suggestSvc *suggest.Service, audioSvc audio.Service, l lesson.Lesson) *AuthorScreen {
	s := New(lessons, suggestSvc, audioSvc, StartList)
	s.state, _ = authoring.Reduce(s.state, authoring.LoadLesson{Lesson: l})
	s.form = newSetupForm(s.state.Lesson)
	return s
}

func (s *AuthorScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if s.state.View == authoring.ViewList {
		s.listLoading = true
		cmds = append(cmds, s.loadLessons())
	}
	if s.state.View == authoring.ViewSetup {
		cmds = append(cmds, s.form.Init())
	}
	return tea.Batch(cmds...)
}

func (s *AuthorScreen) Title() string {
	switch {
	case s.state.Editing():
		return "Edit Activity"
	case s.state.View == authoring.ViewSetup:
		return "Lesson Setup"
	case s.state.View == authoring.ViewBuilder:
		return "Builder"
	default:
		return "My Lessons"
	}
}

// InterceptEsc keeps Esc for internal navigation except on the entry
// list, where it pops back to home.
func (s *AuthorScreen) InterceptEsc() bool {
	return s.state.View != authoring.ViewList || s.confirmDelete
}

func (s *AuthorScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmDelete, s.confirmAct:
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	case s.state.Editing():
		if s.editingRow || s.audioPrompt {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Apply"},
				{Key: "Esc", Description: "Discard"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Edit field"},
			{Key: "S", Description: "Save"},
			{Key: "D", Description: "Difficulty"},
			{Key: "A", Description: "Audio"},
			{Key: "Esc", Description: "Cancel"},
		}
	case s.state.View == authoring.ViewSetup:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	case s.state.View == authoring.ViewBuilder:
		hints := []layout.KeyHint{
			{Key: "N", Description: "New activity"},
			{Key: "Enter", Description: "Edit"},
			{Key: "D", Description: "Delete"},
			{Key: "J/K", Description: "Reorder"},
			{Key: "P", Description: "Preview"},
		}
		if s.suggestSvc != nil {
			hints = append(hints, layout.KeyHint{Key: "G", Description: "Suggest"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Setup"})
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Open"},
			{Key: "P", Description: "Play"},
			{Key: "D", Description: "Delete"},
			{Key: "Esc", Description: "Home"},
		}
	}
}

// dispatch runs an action through the reducer and performs the returned
// effect.
func (s *AuthorScreen) dispatch(a authoring.Action) tea.Cmd {
	next, eff := authoring.Reduce(s.state, a)
	s.state = next

	if eff == authoring.EffectPersist && s.lessons != nil {
		saved := s.state.Lesson.Clone()
		return func() tea.Msg {
			return persistDoneMsg{Err: s.lessons.Upsert(context.Background(), saved)}
		}
	}
	return nil
}

func (s *AuthorScreen) loadLessons() tea.Cmd {
	return func() tea.Msg {
		if s.lessons == nil {
			return lessonsLoadedMsg{}
		}
		all, err := s.lessons.LoadAll(context.Background())
		return lessonsLoadedMsg{Lessons: all, Err: err}
	}
}

func suggestTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(time.Time) tea.Msg {
		return suggestTickMsg{}
	})
}

func (s *AuthorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonsLoadedMsg:
		s.listLoading = false
		if msg.Err != nil {
			s.status = "Load failed: " + msg.Err.Error()
			return s, nil
		}
		s.saved = msg.Lessons
		if s.listCursor >= len(s.saved) {
			s.listCursor = max(0, len(s.saved)-1)
		}
		return s, nil

	case persistDoneMsg:
		if msg.Err != nil {
			s.status = "Save failed: " + msg.Err.Error()
		}
		return s, nil

	case deleteDoneMsg:
		if msg.Err != nil {
			s.status = "Delete failed: " + msg.Err.Error()
			return s, nil
		}
		return s, s.loadLessons()

	case suggestTickMsg:
		return s.handleSuggestTick()

	case audioAttachedMsg:
		s.audioPrompt = false
		if msg.Err != nil {
			s.status = "Audio attach failed: " + msg.Err.Error()
			return s, nil
		}
		cmd := s.dispatch(authoring.EditDraft{Op: editor.SetAudio{
			Target: msg.Target,
			Index:  msg.Index,
			Name:   msg.Attachment.Name,
			URL:    msg.Attachment.URL,
		}})
		s.refreshRows()
		s.status = "Audio attached"
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to whichever input is live.
	return s, s.forwardToInput(msg)
}

func (s *AuthorScreen) forwardToInput(msg tea.Msg) tea.Cmd {
	switch {
	case s.audioPrompt:
		var cmd tea.Cmd
		s.audioInput, cmd = s.audioInput.Update(msg)
		return cmd
	case s.topicPrompt:
		var cmd tea.Cmd
		s.topicInput, cmd = s.topicInput.Update(msg)
		return cmd
	case s.editingRow:
		var cmd tea.Cmd
		s.rowInput, cmd = s.rowInput.Update(msg)
		return cmd
	case s.state.View == authoring.ViewSetup && !s.state.Editing():
		return s.form.Update(msg)
	}
	return nil
}

func (s *AuthorScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Modal sub-states first.
	switch {
	case s.confirmDelete:
		return s.handleConfirmDelete(msg)
	case s.confirmAct:
		return s.handleConfirmActivity(msg)
	case s.audioPrompt:
		return s.handleAudioPrompt(msg)
	case s.topicPrompt:
		return s.handleTopicPrompt(msg)
	case s.typeMenu:
		return s.handleTypeMenu(msg)
	case s.state.Editing():
		return s.handleDraftKey(msg)
	}

	switch s.state.View {
	case authoring.ViewList:
		return s.handleListKey(msg)
	case authoring.ViewSetup:
		return s.handleSetupKey(msg)
	case authoring.ViewBuilder:
		return s.handleBuilderKey(msg)
	}
	return s, nil
}

func (s *AuthorScreen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.listCursor > 0 {
			s.listCursor--
		}
	case "down", "j":
		if s.listCursor < len(s.saved)-1 {
			s.listCursor++
		}
	case "n":
		cmd := s.dispatch(authoring.ResetLesson{})
		s.form = newSetupForm(s.state.Lesson)
		return s, tea.Batch(cmd, s.form.Init())
	case "enter":
		if s.listCursor < len(s.saved) {
			cmd := s.dispatch(authoring.LoadLesson{Lesson: s.saved[s.listCursor]})
			s.form = newSetupForm(s.state.Lesson)
			return s, tea.Batch(cmd, s.form.Init())
		}
	case "p":
		if s.listCursor < len(s.saved) {
			l := s.saved[s.listCursor]
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: player.New(l)}
			}
		}
	case "d":
		if s.listCursor < len(s.saved) {
			s.confirmDelete = true
		}
	}
	return s, nil
}

func (s *AuthorScreen) handleConfirmDelete(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		s.confirmDelete = false
		if s.listCursor >= len(s.saved) || s.lessons == nil {
			return s, nil
		}
		id := s.saved[s.listCursor].ID
		return s, func() tea.Msg {
			return deleteDoneMsg{ID: id, Err: s.lessons.Delete(context.Background(), id)}
		}
	case "n", "N", "esc":
		s.confirmDelete = false
	}
	return s, nil
}

func (s *AuthorScreen) handleSetupKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return s, s.form.Next()
	case "shift+tab", "up":
		return s, s.form.Prev()
	case "enter":
		if !s.form.OnLastField() {
			return s, s.form.Next()
		}
		var cmds []tea.Cmd
		for _, a := range s.form.actions() {
			cmds = append(cmds, s.dispatch(a))
		}
		cmds = append(cmds, s.dispatch(authoring.ContinueToBuilder{}))
		s.errs = nil
		return s, tea.Batch(cmds...)
	case "esc":
		var cmds []tea.Cmd
		for _, a := range s.form.actions() {
			cmds = append(cmds, s.dispatch(a))
		}
		cmds = append(cmds, s.dispatch(authoring.BackToList{}), s.loadLessons())
		return s, tea.Batch(cmds...)
	}
	return s, s.form.Update(msg)
}

func (s *AuthorScreen) handleBuilderKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	acts := s.state.Lesson.Activities

	switch msg.String() {
	case "up", "k":
		if s.actCursor > 0 {
			s.actCursor--
		}
	case "down", "j":
		if s.actCursor < len(acts)-1 {
			s.actCursor++
		}
	case "n":
		s.typeMenu = true
		s.typeCursor = 0
		s.suggestMode = false
	case "g":
		if s.suggestSvc != nil && !s.suggesting {
			s.typeMenu = true
			s.typeCursor = 0
			s.suggestMode = true
		}
	case "enter", "e":
		if s.actCursor < len(acts) {
			s.errs = nil
			cmd := s.dispatch(authoring.EditActivity{ID: acts[s.actCursor].ID})
			s.refreshRows()
			return s, cmd
		}
	case "d":
		if s.actCursor < len(acts) {
			s.confirmAct = true
		}
	case "K":
		return s, s.moveActivity(-1)
	case "J":
		return s, s.moveActivity(1)
	case "p":
		if len(acts) > 0 {
			l := s.state.Lesson.Clone()
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: player.New(l)}
			}
		}
	case "esc", "b":
		s.form = newSetupForm(s.state.Lesson)
		cmd := s.dispatch(authoring.BackToSetup{})
		return s, tea.Batch(cmd, s.form.Init())
	}
	return s, nil
}

func (s *AuthorScreen) moveActivity(delta int) tea.Cmd {
	acts := s.state.Lesson.Activities
	target := s.actCursor + delta
	if s.actCursor >= len(acts) || target < 0 || target >= len(acts) {
		return nil
	}

	reordered := make([]lesson.Activity, len(acts))
	copy(reordered, acts)
	reordered[s.actCursor], reordered[target] = reordered[target], reordered[s.actCursor]
	s.actCursor = target
	return s.dispatch(authoring.ReorderActivities{Activities: reordered})
}

func (s *AuthorScreen) handleConfirmActivity(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		s.confirmAct = false
		acts := s.state.Lesson.Activities
		if s.actCursor < len(acts) {
			cmd := s.dispatch(authoring.DeleteActivity{ID: acts[s.actCursor].ID})
			if s.actCursor >= len(s.state.Lesson.Activities) {
				s.actCursor = max(0, len(s.state.Lesson.Activities)-1)
			}
			return s, cmd
		}
	case "n", "N", "esc":
		s.confirmAct = false
	}
	return s, nil
}

func (s *AuthorScreen) handleTypeMenu(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	types := lesson.AllTypes()
	switch msg.String() {
	case "up", "k":
		if s.typeCursor > 0 {
			s.typeCursor--
		}
	case "down", "j":
		if s.typeCursor < len(types)-1 {
			s.typeCursor++
		}
	case "enter":
		s.typeMenu = false
		chosen := types[s.typeCursor]
		if s.suggestMode {
			s.suggestType = chosen
			s.topicPrompt = true
			s.topicInput = components.NewTextInput("Topic, e.g. ordering food (optional)", false, 120)
			return s, s.topicInput.Init()
		}
		s.errs = nil
		cmd := s.dispatch(authoring.StartDraft{Type: chosen})
		s.refreshRows()
		return s, cmd
	case "esc":
		s.typeMenu = false
	}
	return s, nil
}

func (s *AuthorScreen) handleTopicPrompt(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		s.topicPrompt = false
		s.suggesting = true
		s.status = "Generating suggestion..."

		l := s.state.Lesson
		input := suggest.Input{
			Type:              s.suggestType,
			Topic:             s.topicInput.Value(),
			LessonTitle:       l.Title,
			LessonDescription: l.Description,
			Level:             l.Level,
			Objectives:        l.Objectives,
		}
		for _, a := range l.Activities {
			input.ExistingTitles = append(input.ExistingTitles, a.Title)
		}
		s.suggestSvc.Request(context.Background(), input)
		return s, suggestTick()
	case "esc":
		s.topicPrompt = false
	}

	var cmd tea.Cmd
	s.topicInput, cmd = s.topicInput.Update(msg)
	return s, cmd
}

func (s *AuthorScreen) handleSuggestTick() (screen.Screen, tea.Cmd) {
	if !s.suggesting || s.suggestSvc == nil {
		return s, nil
	}

	sug, ok := s.suggestSvc.Consume()
	if !ok {
		return s, suggestTick()
	}

	s.suggesting = false
	if sug.Err != nil {
		s.status = "Suggestion failed: " + sug.Err.Error()
		return s, nil
	}

	// Add the suggested activity, then open it as a draft for review.
	cmd := s.dispatch(authoring.AddActivity{Activity: sug.Activity})
	acts := s.state.Lesson.Activities
	if len(acts) == 0 {
		return s, cmd
	}
	editCmd := s.dispatch(authoring.EditActivity{ID: acts[len(acts)-1].ID})
	s.actCursor = len(acts) - 1
	s.refreshRows()
	s.status = "Suggestion ready - review and save"
	return s, tea.Batch(cmd, editCmd)
}

func (s *AuthorScreen) refreshRows() {
	if !s.state.Editing() {
		s.rows = nil
		s.rowCursor = 0
		return
	}
	s.rows = buildRows(*s.state.Draft)
	if s.rowCursor >= len(s.rows) {
		s.rowCursor = max(0, len(s.rows)-1)
	}
}

func (s *AuthorScreen) handleDraftKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.editingRow {
		switch msg.String() {
		case "enter":
			s.editingRow = false
			row := s.rows[s.rowCursor]
			if row.op == nil {
				return s, nil
			}
			cmd := s.dispatch(authoring.EditDraft{Op: row.op(s.rowInput.Value())})
			s.refreshRows()
			return s, cmd
		case "esc":
			s.editingRow = false
			return s, nil
		}
		var cmd tea.Cmd
		s.rowInput, cmd = s.rowInput.Update(msg)
		return s, cmd
	}

	switch msg.String() {
	case "up", "k":
		if s.rowCursor > 0 {
			s.rowCursor--
		}
	case "down", "j":
		if s.rowCursor < len(s.rows)-1 {
			s.rowCursor++
		}
	case "enter":
		if s.rowCursor < len(s.rows) && s.rows[s.rowCursor].op != nil {
			s.editingRow = true
			s.rowInput = components.NewTextInput("", false, 200)
			s.rowInput.SetValue(s.rows[s.rowCursor].value)
			return s, s.rowInput.Init()
		}
	case "d":
		cmd := s.dispatch(authoring.EditDraft{Op: editor.SetDifficulty{
			Value: nextDifficulty(s.state.Draft.Activity.Difficulty),
		}})
		s.refreshRows()
		return s, cmd
	case "o":
		return s, s.applyDraftOp(editor.AddOption{})
	case "i":
		return s, s.applyDraftOp(editor.AddItem{})
	case "P":
		return s, s.applyDraftOp(editor.AddPair{})
	case "x":
		if s.rowCursor >= len(s.rows) {
			return s, nil
		}
		row := s.rows[s.rowCursor]
		switch {
		case row.optIndex >= 0:
			return s, s.applyDraftOp(editor.RemoveOption{Index: row.optIndex})
		case row.itemIndex >= 0:
			return s, s.applyDraftOp(editor.RemoveItem{Index: row.itemIndex})
		case row.pairIndex >= 0:
			return s, s.applyDraftOp(editor.RemovePair{Index: row.pairIndex})
		}
	case "c":
		if s.rowCursor < len(s.rows) && s.rows[s.rowCursor].optIndex >= 0 {
			return s, s.applyDraftOp(editor.SetCorrectOption{Index: s.rows[s.rowCursor].optIndex})
		}
	case "a":
		if s.audioSvc == nil || s.rowCursor >= len(s.rows) || s.rows[s.rowCursor].media == nil {
			return s, nil
		}
		s.audioRef = *s.rows[s.rowCursor].media
		s.audioPrompt = true
		s.audioInput = components.NewTextInput("Path to audio file", false, 250)
		return s, s.audioInput.Init()
	case "s":
		errs := editor.Validate(s.state.Draft.Activity)
		if len(errs) > 0 {
			s.errs = editor.Messages(errs)
			return s, nil
		}
		s.errs = nil
		cmd := s.dispatch(authoring.SaveDraft{})
		s.refreshRows()
		s.actCursor = max(0, len(s.state.Lesson.Activities)-1)
		return s, cmd
	case "esc", "q":
		s.errs = nil
		cmd := s.dispatch(authoring.CancelDraft{})
		s.refreshRows()
		return s, cmd
	}
	return s, nil
}

func (s *AuthorScreen) applyDraftOp(op editor.Op) tea.Cmd {
	cmd := s.dispatch(authoring.EditDraft{Op: op})
	s.refreshRows()
	return cmd
}

func (s *AuthorScreen) handleAudioPrompt(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := s.audioInput.Value()
		ref := s.audioRef
		svc := s.audioSvc
		return s, func() tea.Msg {
			att, err := svc.Attach(context.Background(), path)
			return audioAttachedMsg{Target: ref.target, Index: ref.index, Attachment: att, Err: err}
		}
	case "esc":
		s.audioPrompt = false
		return s, nil
	}

	var cmd tea.Cmd
	s.audioInput, cmd = s.audioInput.Update(msg)
	return s, cmd
}
