package handler

import (
	"strings"

	"countrybot/internal/domain"
	"countrybot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// callbackUnique tags every inline button this bot sends; the real routing
// payload travels in the callback data.
const callbackUnique = "cb"

// Handler wires the dialogue router into Telegram
type Handler struct {
	bot    *tele.Bot
	router *service.DialogueRouter
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, router *service.DialogueRouter, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		router: router,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.command("start"))
	h.bot.Handle("/help", h.command("help"))
	h.bot.Handle("/info", h.command("info"))
	h.bot.Handle("/pickcountry", h.command("pickcountry"))
	h.bot.Handle("/sethome", h.command("sethome"))
	h.bot.Handle("/home", h.command("home"))
	h.bot.Handle("/compare", h.command("compare"))

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&tele.Btn{Unique: callbackUnique}, h.handleCallback)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

func (h *Handler) command(name string) tele.HandlerFunc {
	return func(c tele.Context) error {
		ev := domain.Event{
			Kind:        domain.EventCommand,
			UserID:      c.Sender().ID,
			Command:     name,
			Args:        c.Message().Payload,
			DisplayName: displayName(c.Sender()),
		}

		h.logger.Info("Command received",
			zap.String("command", name),
			zap.Int64("user_id", ev.UserID),
		)

		return h.send(c, h.router.Handle(ev))
	}
}

// handleText handles all plain text messages
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Unregistered commands are not treated as queries
	if strings.HasPrefix(text, "/") {
		return nil
	}

	ev := domain.Event{
		Kind:        domain.EventText,
		UserID:      c.Sender().ID,
		Text:        text,
		DisplayName: displayName(c.Sender()),
	}

	return h.send(c, h.router.Handle(ev))
}

// handleCallback handles inline button presses
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Info("Callback received",
		zap.String("data", data),
		zap.Int64("user_id", c.Sender().ID),
	)

	ev := domain.Event{
		Kind:        domain.EventButton,
		UserID:      c.Sender().ID,
		Payload:     data,
		DisplayName: displayName(c.Sender()),
	}

	plan := h.router.Handle(ev)

	// Replies that carry inline buttons replace the menu message in place;
	// everything else goes out as a new message.
	if len(plan.Buttons) > 0 {
		if err := c.Edit(plan.Text, inlineMarkup(plan.Buttons)); err != nil {
			if handleErr := h.handleEditError(err, c, ev.UserID); handleErr == nil {
				return nil
			}
			return c.Send(plan.Text, inlineMarkup(plan.Buttons))
		}
		return c.Respond()
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.send(c, plan)
}

// send renders a reply plan into a Telegram message
func (h *Handler) send(c tele.Context, plan domain.ReplyPlan) error {
	opts := []interface{}{}

	if plan.Markup == domain.MarkupRich {
		opts = append(opts, tele.ModeHTML)
	}

	switch {
	case len(plan.Buttons) > 0:
		opts = append(opts, inlineMarkup(plan.Buttons))
	case plan.ShowMenu:
		opts = append(opts, mainMenuMarkup())
	}

	return c.Send(plan.Text, opts...)
}

// handleEditError handles errors from c.Edit() - if the message is not
// modified, just acknowledge the callback; otherwise acknowledge and return
// the error so the caller can send a new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// inlineMarkup builds an inline keyboard, one button per row
func inlineMarkup(buttons []domain.Button) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, markup.Row(markup.Data(b.Label, callbackUnique, b.Payload)))
	}
	markup.Inline(rows...)
	return markup
}

// mainMenuMarkup returns the persistent main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text("Инфо о стране"), menu.Text("Выбрать страну")),
		menu.Row(menu.Text("Сохранить домашнюю страну"), menu.Text("Сравнить страны")),
		menu.Row(menu.Text("Мои настройки"), menu.Text("Команды")),
	)
	return menu
}
