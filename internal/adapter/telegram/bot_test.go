package telegram

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-rewards/internal/adapter/memory"
	"ad-rewards/internal/adapter/usecase"
	"ad-rewards/internal/core/domain"
)

type fakeSender struct {
	mu      sync.Mutex
	replies []string
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		f.replies = append(f.replies, m.Text)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.replies) == 0 {
		return ""
	}
	return f.replies[len(f.replies)-1]
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.replies)
}

type botFixture struct {
	store  *memory.Store
	sender *fakeSender
	bot    *BotHandler
	now    time.Time
}

func newBotFixture(t *testing.T) *botFixture {
	t.Helper()
	f := &botFixture{
		store:  memory.New(),
		sender: &fakeSender{},
		now:    time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	svc := usecase.NewRewardUseCase(f.store, f.store, nil)
	f.bot = NewBotHandler(f.sender, svc, nil, 5*time.Minute)
	f.bot.now = func() time.Time { return f.now }
	return f
}

const chatID int64 = 4242

func message(text string) tgbotapi.Update {
	msg := &tgbotapi.Message{
		MessageID: 1,
		Text:      text,
		Chat:      &tgbotapi.Chat{ID: chatID},
		From:      &tgbotapi.User{ID: chatID, UserName: "alice"},
	}
	if strings.HasPrefix(text, "/") {
		cmd := text
		if i := strings.IndexByte(text, ' '); i >= 0 {
			cmd = text[:i]
		}
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd)}}
	}
	return tgbotapi.Update{Message: msg}
}

func (f *botFixture) send(text string) string {
	f.bot.HandleUpdate(context.Background(), message(text))
	return f.sender.last()
}

func (f *botFixture) fund(t *testing.T, points int64) {
	t.Helper()
	_, err := f.store.Credit(context.Background(), "4242", points, domain.TxnViewAd, f.now)
	require.NoError(t, err)
}

func TestBotWithdrawDialogue(t *testing.T) {
	f := newBotFixture(t)

	assert.Contains(t, f.send("/start"), "Welcome")
	assert.Equal(t, "You are already registered.", f.send("/start"))
	f.fund(t, 1500)

	assert.Contains(t, f.send("/withdraw"), "set your payout number")

	assert.Contains(t, f.send("/set_payout"), "enter your payout number")
	assert.Contains(t, f.send("081234567890"), "registered successfully")

	u, err := f.store.GetUser(context.Background(), "4242")
	require.NoError(t, err)
	assert.Equal(t, "081234567890", u.PayoutHandle)
	assert.Equal(t, "alice", u.Username)

	assert.Contains(t, f.send("/withdraw"), "balance: 1500 points")
	assert.Contains(t, f.send("999"), "Minimum withdrawal amount is 1000 points")

	// The failed attempt ended the dialogue; plain numbers are ignored now.
	n := f.sender.count()
	f.bot.HandleUpdate(context.Background(), message("1000"))
	assert.Equal(t, n, f.sender.count())

	f.send("/withdraw")
	reply := f.send("1000")
	assert.Contains(t, reply, "10000.00")
	assert.Contains(t, reply, "Remaining balance: 500 points")
	assert.Contains(t, f.send("/balance"), "500 points")
}

func TestBotUnregisteredUser(t *testing.T) {
	f := newBotFixture(t)
	for _, cmd := range []string{"/withdraw", "/set_payout", "/balance"} {
		assert.Contains(t, f.send(cmd), "not registered", cmd)
	}
}

func TestBotNonNumericReplyResets(t *testing.T) {
	f := newBotFixture(t)
	f.send("/start")

	f.send("/set_payout")
	assert.Contains(t, f.send("my number"), "Expected a number")

	n := f.sender.count()
	f.bot.HandleUpdate(context.Background(), message("0812"))
	assert.Equal(t, n, f.sender.count())

	u, err := f.store.GetUser(context.Background(), "4242")
	require.NoError(t, err)
	assert.Empty(t, u.PayoutHandle)
}

func TestBotDialogueTimeout(t *testing.T) {
	f := newBotFixture(t)
	f.send("/start")
	f.send("/set_payout")

	f.now = f.now.Add(6 * time.Minute)
	n := f.sender.count()
	f.bot.HandleUpdate(context.Background(), message("0812"))
	assert.Equal(t, n, f.sender.count())

	u, err := f.store.GetUser(context.Background(), "4242")
	require.NoError(t, err)
	assert.Empty(t, u.PayoutHandle)
}

func TestBotCancelAndCommandAbandonDialogue(t *testing.T) {
	f := newBotFixture(t)
	f.send("/start")

	f.send("/set_payout")
	assert.Equal(t, "Cancelled.", f.send("/cancel"))
	n := f.sender.count()
	f.bot.HandleUpdate(context.Background(), message("0812"))
	assert.Equal(t, n, f.sender.count())

	f.send("/set_payout")
	assert.Contains(t, f.send("/balance"), "0 points")
	n = f.sender.count()
	f.bot.HandleUpdate(context.Background(), message("0812"))
	assert.Equal(t, n, f.sender.count())
}

func TestBotStartWithReferrer(t *testing.T) {
	f := newBotFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.CreateUser(ctx, domain.User{ID: "100", Username: "ref"}))

	assert.Contains(t, f.send("/start 100"), "Welcome")

	bal, err := f.store.Balance(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, domain.ReferralBonus, bal)

	u, err := f.store.GetUser(ctx, "4242")
	require.NoError(t, err)
	assert.Equal(t, "100", u.ReferredBy)
}

func TestBotRunStopsOnClosedChannel(t *testing.T) {
	f := newBotFixture(t)
	updates := make(chan tgbotapi.Update, 2)
	updates <- message("/start")
	updates <- tgbotapi.Update{}
	close(updates)

	require.NoError(t, f.bot.Run(context.Background(), updates))
	assert.Equal(t, 1, f.sender.count())
}

func TestBotRunStopsOnContext(t *testing.T) {
	f := newBotFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, f.bot.Run(ctx, make(chan tgbotapi.Update)))
}

func TestBotReplyErrorCoversEveryKind(t *testing.T) {
	f := newBotFixture(t)
	msg := message("/withdraw").Message

	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrUserNotFound, "not registered"},
		{domain.ErrAlreadyExists, "already registered"},
		{domain.ErrInsufficientBalance, "Insufficient balance"},
		{domain.ErrBelowMinimum, "Minimum withdrawal amount"},
		{domain.ErrPayoutHandleMissing, "/set_payout"},
		{domain.ErrViewTooSoon, "Try again in 10 minutes"},
		{domain.ErrInvalidArgument, "Invalid input"},
	}
	for _, tt := range tests {
		f.bot.replyError(msg, tt.err)
		reply := f.sender.last()
		assert.Contains(t, reply, tt.want, tt.err.Error())
		assert.NotContains(t, reply, "Something went wrong", tt.err.Error())
	}
}
