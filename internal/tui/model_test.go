package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fahim1105/seu-matrimony/internal/notify"
	"github.com/fahim1105/seu-matrimony/internal/service"
	"github.com/fahim1105/seu-matrimony/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommands struct {
	mu sync.Mutex

	status  models.SyncSnapshot
	pending []models.PendingRequest

	sendRes   models.SendResult
	sendErr   error
	cancelRes models.Envelope
	cancelErr error
	syncRes   models.Envelope
	syncErr   error

	sent      []models.PendingRequestInput
	cancelled []string
	syncs     int
}

func (f *fakeCommands) SendConnectionRequest(_ context.Context, req models.PendingRequestInput) (models.SendResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, req)
	return f.sendRes, f.sendErr
}

func (f *fakeCommands) CancelConnectionRequest(_ context.Context, id, _ string) (models.Envelope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, id)
	return f.cancelRes, f.cancelErr
}

func (f *fakeCommands) ForceSync(context.Context) (models.Envelope, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncs++
	return f.syncRes, f.syncErr
}

func (f *fakeCommands) Status() models.SyncSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *fakeCommands) PendingRequests() []models.PendingRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.PendingRequest(nil), f.pending...)
}

func twoPending() []models.PendingRequest {
	return []models.PendingRequest{
		{ID: "local_1", SenderEmail: "a@seu.edu.bd", ReceiverEmail: "b@seu.edu.bd"},
		{ID: "local_2", SenderEmail: "a@seu.edu.bd", ReceiverEmail: "c@seu.edu.bd"},
	}
}

func newTestModel(f *fakeCommands) model {
	return newModel(context.Background(), f, nil, "a@seu.edu.bd", models.NewBuildInfo("1.0.0", "", ""))
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

// loaded returns a model that has received its first refresh.
func loaded(t *testing.T, f *fakeCommands) model {
	t.Helper()
	m := newTestModel(f)
	m, _ = update(t, m, m.cmdRefresh()())
	return m
}

func TestModel_RefreshLoadsStatusAndPending(t *testing.T) {
	f := &fakeCommands{
		status:  models.SyncSnapshot{PendingCount: 2, HasAutoSync: true},
		pending: twoPending(),
	}
	m := loaded(t, f)

	assert.Equal(t, 2, m.status.PendingCount)
	assert.Len(t, m.pending, 2)

	view := m.View()
	assert.Contains(t, view, "pending: 2")
	assert.Contains(t, view, "auto: on")
	assert.Contains(t, view, "b@seu.edu.bd")
}

func TestModel_EmptyQueueView(t *testing.T) {
	m := loaded(t, &fakeCommands{})
	assert.Contains(t, m.View(), "no queued requests")
}

func TestModel_SyncingIndicator(t *testing.T) {
	m := loaded(t, &fakeCommands{status: models.SyncSnapshot{IsSyncing: true}})
	assert.Contains(t, m.View(), "syncing")
}

func TestModel_Navigation(t *testing.T) {
	m := loaded(t, &fakeCommands{pending: twoPending()})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.idx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.idx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.idx)
}

func TestModel_RefreshClampsSelection(t *testing.T) {
	f := &fakeCommands{pending: twoPending()}
	m := loaded(t, f)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.idx)

	m, _ = update(t, m, refreshMsg{pending: twoPending()[:1]})
	assert.Equal(t, 0, m.idx)

	m, _ = update(t, m, refreshMsg{})
	assert.Equal(t, 0, m.idx)
}

func TestModel_ComposeAndSend(t *testing.T) {
	f := &fakeCommands{sendRes: models.SendResult{Envelope: models.Envelope{
		Success: true,
		Message: "queued offline",
		Offline: true,
	}}}
	m := loaded(t, f)

	m, _ = update(t, m, keyRunes("n"))
	require.True(t, m.composing)
	assert.Contains(t, m.View(), "send to:")

	m.receiver.SetValue("  b@seu.edu.bd ")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, m.composing)
	assert.True(t, m.busy)

	m, _ = update(t, m, cmd())
	assert.False(t, m.busy)
	assert.Equal(t, "queued offline", m.statusLine)
	require.Len(t, f.sent, 1)
	assert.Equal(t, "b@seu.edu.bd", f.sent[0].ReceiverEmail)
}

func TestModel_ComposeRejectsNonEmail(t *testing.T) {
	f := &fakeCommands{}
	m := loaded(t, f)

	m, _ = update(t, m, keyRunes("n"))
	m.receiver.SetValue("nobody")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, m.composing)
	assert.NotEmpty(t, m.errMsg)
	assert.Empty(t, f.sent)
}

func TestModel_ComposeEscCancels(t *testing.T) {
	m := loaded(t, &fakeCommands{})

	m, _ = update(t, m, keyRunes("n"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.composing)
}

func TestModel_ComposeKeysDoNotTriggerCommands(t *testing.T) {
	f := &fakeCommands{pending: twoPending()}
	m := loaded(t, f)

	m, _ = update(t, m, keyRunes("n"))
	m, _ = update(t, m, keyRunes("s"))
	m, _ = update(t, m, keyRunes("q"))

	assert.True(t, m.composing)
	assert.False(t, m.busy)
	assert.Equal(t, 0, f.syncs)
}

func TestModel_SendShowsDisplayError(t *testing.T) {
	de := &service.DisplayError{Kind: service.ErrRejected, Message: "Invalid data provided"}
	m := loaded(t, &fakeCommands{})

	m, _ = update(t, m, sendDoneMsg{err: de})

	assert.Equal(t, "Invalid data provided", m.errMsg)
	assert.Empty(t, m.statusLine)
	assert.Contains(t, m.View(), "Invalid data provided")
}

func TestModel_PlainErrorIsShown(t *testing.T) {
	m := loaded(t, &fakeCommands{})

	m, _ = update(t, m, syncDoneMsg{err: errors.New("boom")})

	assert.Equal(t, "boom", m.errMsg)
}

func TestModel_UnsuccessfulEnvelopeIsShownAsError(t *testing.T) {
	m := loaded(t, &fakeCommands{})

	m, _ = update(t, m, syncDoneMsg{result: models.Envelope{Success: false, Message: "sync already running"}})

	assert.Equal(t, "sync already running", m.errMsg)
	assert.Empty(t, m.statusLine)
}

func TestModel_WarningIsAppended(t *testing.T) {
	m := loaded(t, &fakeCommands{})

	m, _ = update(t, m, syncDoneMsg{result: models.Envelope{Success: true, Message: "done", Warning: "later"}})

	assert.Equal(t, "done (later)", m.statusLine)
}

func TestModel_CancelSelected(t *testing.T) {
	f := &fakeCommands{
		pending:   twoPending(),
		cancelRes: models.Envelope{Success: true, Message: "cancelled"},
	}
	m := loaded(t, f)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, cmd := update(t, m, keyRunes("d"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, []string{"local_2"}, f.cancelled)
	assert.Equal(t, "cancelled", m.statusLine)
}

func TestModel_CancelWithEmptyListIsNoop(t *testing.T) {
	f := &fakeCommands{}
	m := loaded(t, f)

	_, cmd := update(t, m, keyRunes("d"))

	assert.Nil(t, cmd)
	assert.Empty(t, f.cancelled)
}

func TestModel_ForceSync(t *testing.T) {
	f := &fakeCommands{syncRes: models.Envelope{Success: true, Message: "all synced"}}
	m := loaded(t, f)

	m, cmd := update(t, m, keyRunes("s"))
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	// A second press while the first is in flight is ignored.
	_, again := update(t, m, keyRunes("s"))
	assert.Nil(t, again)

	m, _ = update(t, m, cmd())
	assert.Equal(t, 1, f.syncs)
	assert.Equal(t, "all synced", m.statusLine)
}

func TestModel_ToastsAreKeptAndBounded(t *testing.T) {
	m := loaded(t, &fakeCommands{})

	for i := 0; i < maxToasts+2; i++ {
		m, _ = update(t, m, toastMsg{toast: notify.Toast{
			Level:   notify.LevelSuccess,
			Message: fmt.Sprintf("toast %d", i),
			At:      time.Now(),
		}})
	}

	require.Len(t, m.toasts, maxToasts)
	assert.Equal(t, "toast 2", m.toasts[0].Message)
	assert.Contains(t, m.View(), fmt.Sprintf("toast %d", maxToasts+1))
}

func TestWaitForToast(t *testing.T) {
	assert.Nil(t, waitForToast(nil))

	ch := make(chan notify.Toast, 1)
	ch <- notify.Toast{Level: notify.LevelInfo, Message: "hi"}

	msg := waitForToast(ch)()
	tm, ok := msg.(toastMsg)
	require.True(t, ok)
	assert.Equal(t, "hi", tm.toast.Message)

	close(ch)
	assert.Nil(t, waitForToast(ch)())
}

func TestModel_CopySelectedID(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m := loaded(t, &fakeCommands{pending: twoPending()})

	m, cmd := update(t, m, keyRunes("c"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, "local_1", copied)
	assert.Equal(t, "copied local_1", m.statusLine)
}

func TestModel_CopyFailure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = orig })

	m := loaded(t, &fakeCommands{pending: twoPending()})

	m, cmd := update(t, m, keyRunes("c"))
	m, _ = update(t, m, cmd())

	assert.Contains(t, m.errMsg, "no clipboard")
}

func TestModel_BuildInfoOverlay(t *testing.T) {
	m := loaded(t, &fakeCommands{})

	m, _ = update(t, m, keyRunes("v"))
	require.True(t, m.showBuildInfo)
	view := m.View()
	assert.Contains(t, view, "Build version: 1.0.0")
	assert.Contains(t, view, "Build date: N/A")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

func TestModel_QuitAndLogout(t *testing.T) {
	m := loaded(t, &fakeCommands{})

	quit, cmd := update(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, quit.logout)

	out, cmd := update(t, m, keyRunes("L"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, out.logout)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}
