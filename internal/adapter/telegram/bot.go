package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ad-rewards/internal/core/domain"
	"ad-rewards/internal/core/port"
	"ad-rewards/internal/metrics"
)

// Sender is the part of the Bot API used to deliver replies.
// *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// step is the position of a chat in the two-step dialogues.
type step int

const (
	stepIdle step = iota
	stepAwaitingPayoutHandle
	stepAwaitingWithdrawAmount
)

func (s step) String() string {
	switch s {
	case stepAwaitingPayoutHandle:
		return "awaiting_payout_handle"
	case stepAwaitingWithdrawAmount:
		return "awaiting_withdraw_amount"
	default:
		return "idle"
	}
}

type dialogue struct {
	step  step
	since time.Time
}

// BotHandler is the conversational inbound adapter. Each chat is a user
// whose id is the decimal chat id. A chat is always in exactly one step;
// a step older than the dialogue timeout counts as idle.
type BotHandler struct {
	bot     Sender
	svc     port.RewardUseCase
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time

	mu        sync.Mutex
	dialogues map[int64]dialogue
}

// NewBotHandler creates a bot handler. A non-positive timeout disables
// dialogue expiry.
func NewBotHandler(bot Sender, svc port.RewardUseCase, logger *slog.Logger, timeout time.Duration) *BotHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BotHandler{
		bot:       bot,
		svc:       svc,
		logger:    logger,
		timeout:   timeout,
		now:       time.Now,
		dialogues: make(map[int64]dialogue),
	}
}

// Run handles updates until ctx is done or the channel is closed.
func (h *BotHandler) Run(ctx context.Context, updates <-chan tgbotapi.Update) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate processes a single update. Updates without a message are
// ignored.
func (h *BotHandler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}
	if msg.IsCommand() {
		metrics.BotUpdatesTotal.WithLabelValues("command").Inc()
		h.handleCommand(ctx, msg)
		return
	}
	h.handleReply(ctx, msg)
}

func (h *BotHandler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	// Any command abandons a dialogue in progress.
	h.setStep(msg.Chat.ID, stepIdle)

	switch msg.Command() {
	case "start":
		h.handleStart(ctx, msg)
	case "set_payout":
		h.handleSetPayout(ctx, msg)
	case "withdraw":
		h.handleWithdraw(ctx, msg)
	case "balance":
		h.handleBalance(ctx, msg)
	case "cancel":
		h.reply(msg, "Cancelled.")
	case "help":
		h.reply(msg, helpText)
	default:
		h.reply(msg, "Unknown command. Use /help to see what I can do.")
	}
}

const helpText = `Commands:
/start - register (optionally /start <referrer id>)
/balance - show your point balance
/set_payout - register your payout number
/withdraw - convert points into a withdrawal request
/cancel - abandon the current step`

func (h *BotHandler) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	err := h.svc.Register(ctx, port.RegisterReq{
		UserID:     userID(msg),
		Username:   username(msg),
		ReferredBy: strings.TrimSpace(msg.CommandArguments()),
	})
	switch {
	case err == nil:
		h.reply(msg, "Welcome! You earn points for every ad you watch.\n\n"+helpText)
	case domain.KindOf(err) == domain.KindAlreadyExists:
		h.reply(msg, "You are already registered.")
	default:
		h.replyError(msg, err)
	}
}

func (h *BotHandler) handleSetPayout(ctx context.Context, msg *tgbotapi.Message) {
	if _, err := h.svc.User(ctx, userID(msg)); err != nil {
		h.replyError(msg, err)
		return
	}
	h.setStep(msg.Chat.ID, stepAwaitingPayoutHandle)
	h.reply(msg, "Please enter your payout number.")
}

func (h *BotHandler) handleWithdraw(ctx context.Context, msg *tgbotapi.Message) {
	user, err := h.svc.User(ctx, userID(msg))
	if err != nil {
		h.replyError(msg, err)
		return
	}
	if !user.HasPayoutHandle() {
		h.replyError(msg, domain.ErrPayoutHandleMissing)
		return
	}
	h.setStep(msg.Chat.ID, stepAwaitingWithdrawAmount)
	h.reply(msg, fmt.Sprintf("Please enter the amount you want to withdraw. Your balance: %d points.", user.Balance))
}

func (h *BotHandler) handleBalance(ctx context.Context, msg *tgbotapi.Message) {
	balance, err := h.svc.Balance(ctx, userID(msg))
	if err != nil {
		h.replyError(msg, err)
		return
	}
	h.reply(msg, fmt.Sprintf("Your balance: %d points.", balance))
}

// handleReply consumes the answer to the pending dialogue step. Anything
// that is not a plain number resets the chat to idle.
func (h *BotHandler) handleReply(ctx context.Context, msg *tgbotapi.Message) {
	current := h.currentStep(msg.Chat.ID)
	metrics.BotUpdatesTotal.WithLabelValues(current.String()).Inc()
	if current == stepIdle {
		return
	}
	h.setStep(msg.Chat.ID, stepIdle)

	text := strings.TrimSpace(msg.Text)
	if !isDigits(text) {
		h.reply(msg, "Expected a number. Start again with /set_payout or /withdraw.")
		return
	}

	switch current {
	case stepAwaitingPayoutHandle:
		if err := h.svc.SetPayoutHandle(ctx, userID(msg), text); err != nil {
			h.replyError(msg, err)
			return
		}
		h.reply(msg, "Your payout number has been registered successfully!")

	case stepAwaitingWithdrawAmount:
		amount, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			h.reply(msg, "Amount is too large.")
			return
		}
		resp, err := h.svc.Withdraw(ctx, userID(msg), amount)
		if err != nil {
			h.replyError(msg, err)
			return
		}
		h.reply(msg, fmt.Sprintf("%s! Remaining balance: %d points", resp.Message, resp.RemainingBalance))
	}
}

func (h *BotHandler) currentStep(chatID int64) step {
	h.mu.Lock()
	defer h.mu.Unlock()
	d, ok := h.dialogues[chatID]
	if !ok {
		return stepIdle
	}
	if h.timeout > 0 && h.now().Sub(d.since) > h.timeout {
		delete(h.dialogues, chatID)
		return stepIdle
	}
	return d.step
}

func (h *BotHandler) setStep(chatID int64, s step) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s == stepIdle {
		delete(h.dialogues, chatID)
		return
	}
	h.dialogues[chatID] = dialogue{step: s, since: h.now()}
}

func (h *BotHandler) reply(msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID
	if _, err := h.bot.Send(out); err != nil {
		h.logger.Error("send reply", slog.Int64("chat_id", msg.Chat.ID), slog.Any("error", err))
	}
}

// replyError renders a core failure as a chat message.
func (h *BotHandler) replyError(msg *tgbotapi.Message, err error) {
	var text string
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		text = "You are not registered. Use /start to register."
	case domain.KindAlreadyExists:
		text = "You are already registered."
	case domain.KindInsufficientBalance:
		text = "Insufficient balance."
	case domain.KindBelowMinimum:
		text = fmt.Sprintf("Minimum withdrawal amount is %d points.", domain.MinWithdrawAmount)
	case domain.KindPayoutHandleMissing:
		text = "Please set your payout number first using /set_payout."
	case domain.KindViewTooSoon:
		text = fmt.Sprintf("You already watched this ad. Try again in %d minutes.", int(domain.ViewCooldown.Minutes()))
	case domain.KindInvalidArgument:
		text = "Invalid input."
	default:
		h.logger.Error("bot operation failed", slog.Int64("chat_id", msg.Chat.ID), slog.Any("error", err))
		text = "Something went wrong, please try again later."
	}
	h.reply(msg, text)
}

func userID(msg *tgbotapi.Message) string {
	return strconv.FormatInt(msg.Chat.ID, 10)
}

func username(msg *tgbotapi.Message) string {
	if msg.From == nil {
		return ""
	}
	if msg.From.UserName != "" {
		return msg.From.UserName
	}
	return msg.From.FirstName
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
