package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/event"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
)

const startMessage = "👋 Welcome to *Calendar Bot*!\n\n" +
	"I turn plain English into Google Calendar events.\n\n" +
	"First, link your Google account with /connect, then try:\n" +
	"`/addevent Dinner with Alex | tomorrow 7pm to 9pm`\n\n" +
	"Send /help for the full command list."

const helpMessage = "*Commands:*\n\n" +
	"/connect — link your Google Calendar\n" +
	"/status — show link state and timezone\n" +
	"/settz Australia/Melbourne — set your timezone\n" +
	"/addevent Title | when — create an event\n" +
	"/myevents — list upcoming events\n" +
	"/findevent query — search your events\n" +
	"/updateevent query | new time | new title — reschedule or rename an event\n" +
	"/deleteevent query — delete an event\n\n" +
	"*Time examples:*\n" +
	"`tomorrow 3pm to 5pm`\n" +
	"`next monday 2pm-4pm`\n" +
	"`in 2 hours`\n" +
	"`october 3 10am`"

const timeFormatHint = "Try formats like `tomorrow 3pm to 5pm`, `next monday 2pm-4pm`, or `in 2 hours`."

// replyTimeFormat renders event times for chat replies.
const replyTimeFormat = "Mon 2 Jan 3:04pm"

func (h *handler) handleConnect(ctx context.Context, sc model.Scope) error {
	out, err := h.accountUC.Connect(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Connect failed: %v", err)
		return h.bot.SendMessage(sc.ChatID, "Couldn't start the linking flow. Please try again.")
	}
	return h.bot.SendMessage(sc.ChatID,
		fmt.Sprintf("Open this link to connect your Google Calendar:\n\n%s\n\nIt expires in 5 minutes.", out.AuthURL))
}

func (h *handler) handleStatus(ctx context.Context, sc model.Scope) error {
	out, err := h.accountUC.Status(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Status failed: %v", err)
		return h.bot.SendMessage(sc.ChatID, "Couldn't look up your status. Please try again.")
	}

	if !out.Linked {
		return h.bot.SendMessage(sc.ChatID,
			fmt.Sprintf("❌ Not linked. Run /connect to link your Google Calendar.\nTimezone: %s", out.Timezone))
	}
	reply := fmt.Sprintf("✅ Linked as %s\nTimezone: %s", out.Email, out.Timezone)
	if out.Email == "" {
		reply = fmt.Sprintf("✅ Google Calendar linked\nTimezone: %s", out.Timezone)
	}
	return h.bot.SendMessage(sc.ChatID, reply)
}

func (h *handler) handleSetTimezone(ctx context.Context, sc model.Scope, args string) error {
	zone := strings.TrimSpace(args)
	if zone == "" {
		return h.bot.SendMessage(sc.ChatID, "Usage: /settz Australia/Melbourne")
	}

	if err := h.accountUC.SetTimezone(ctx, sc, zone); err != nil {
		return h.bot.SendMessage(sc.ChatID,
			fmt.Sprintf("Unknown timezone %q. Use an IANA name like Australia/Melbourne or Europe/London.", zone))
	}
	return h.bot.SendMessage(sc.ChatID, fmt.Sprintf("Timezone set to %s.", zone))
}

func (h *handler) handleAddEvent(ctx context.Context, sc model.Scope, args string) error {
	title, when, description := splitEventArgs(args)
	if title == "" || when == "" {
		return h.bot.SendMessage(sc.ChatID,
			"Usage: /addevent Title | when\nExample: /addevent Dinner with Alex | tomorrow 7pm to 9pm")
	}

	out, err := h.eventUC.Create(ctx, sc, event.CreateInput{
		Title:       title,
		When:        when,
		Description: description,
	})
	if err != nil {
		return h.replyError(ctx, sc, err)
	}

	e := out.Event
	reply := fmt.Sprintf("📅 *%s*\n%s – %s",
		e.Title,
		e.StartTime.Format(replyTimeFormat),
		e.EndTime.Format(replyTimeFormat),
	)
	if e.HTMLLink != "" {
		reply += fmt.Sprintf("\n[Open in Google Calendar](%s)", e.HTMLLink)
	}
	return h.bot.SendMessageWithMode(sc.ChatID, reply, "Markdown")
}

func (h *handler) handleMyEvents(ctx context.Context, sc model.Scope) error {
	out, err := h.eventUC.List(ctx, sc, event.ListInput{})
	if err != nil {
		return h.replyError(ctx, sc, err)
	}
	if len(out.Events) == 0 {
		return h.bot.SendMessage(sc.ChatID, "No upcoming events. Create one with /addevent.")
	}

	var b strings.Builder
	b.WriteString("*Upcoming events:*\n\n")
	for i, e := range out.Events {
		fmt.Fprintf(&b, "%d. *%s*\n   %s – %s\n", i+1, e.Title,
			e.StartTime.Format(replyTimeFormat), e.EndTime.Format(replyTimeFormat))
	}
	return h.bot.SendMessageWithMode(sc.ChatID, b.String(), "Markdown")
}

func (h *handler) handleFindEvent(ctx context.Context, sc model.Scope, args string) error {
	query := strings.TrimSpace(args)
	if query == "" {
		return h.bot.SendMessage(sc.ChatID, "Usage: /findevent query")
	}

	out, err := h.eventUC.Find(ctx, sc, event.FindInput{Query: query})
	if err != nil {
		return h.replyError(ctx, sc, err)
	}
	if len(out.Events) == 0 {
		return h.bot.SendMessage(sc.ChatID, fmt.Sprintf("No events matching %q.", query))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Events matching %q:*\n\n", query)
	for i, e := range out.Events {
		fmt.Fprintf(&b, "%d. *%s*\n   %s – %s\n", i+1, e.Title,
			e.StartTime.Format(replyTimeFormat), e.EndTime.Format(replyTimeFormat))
	}
	return h.bot.SendMessageWithMode(sc.ChatID, b.String(), "Markdown")
}

func (h *handler) handleUpdateEvent(ctx context.Context, sc model.Scope, args string) error {
	parts := strings.SplitN(args, "|", 3)
	if len(parts) < 2 {
		return h.bot.SendMessage(sc.ChatID,
			"Usage: /updateevent query | new time | new title\n"+
				"Example: /updateevent dinner | friday 8pm to 10pm\n"+
				"Leave the time blank to rename only: /updateevent dinner | | Team dinner")
	}
	input := event.UpdateInput{
		Query: strings.TrimSpace(parts[0]),
		When:  strings.TrimSpace(parts[1]),
	}
	if len(parts) == 3 {
		input.NewTitle = strings.TrimSpace(parts[2])
	}

	out, err := h.eventUC.Update(ctx, sc, input)
	if err != nil {
		return h.replyError(ctx, sc, err)
	}

	e := out.Event
	if input.When == "" {
		return h.bot.SendMessageWithMode(sc.ChatID,
			fmt.Sprintf("✏️ Renamed to *%s*.", e.Title), "Markdown")
	}
	return h.bot.SendMessageWithMode(sc.ChatID,
		fmt.Sprintf("🔁 *%s* moved to\n%s – %s", e.Title,
			e.StartTime.Format(replyTimeFormat), e.EndTime.Format(replyTimeFormat)),
		"Markdown")
}

func (h *handler) handleDeleteEvent(ctx context.Context, sc model.Scope, args string) error {
	query := strings.TrimSpace(args)
	if query == "" {
		return h.bot.SendMessage(sc.ChatID, "Usage: /deleteevent query")
	}

	out, err := h.eventUC.Delete(ctx, sc, event.DeleteInput{Query: query})
	if err != nil {
		return h.replyError(ctx, sc, err)
	}
	return h.bot.SendMessage(sc.ChatID, fmt.Sprintf("🗑 Deleted %q.", out.Title))
}

// splitCommand separates the leading /command from its arguments, dropping
// any @botname suffix.
func splitCommand(text string) (cmd, args string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	cmd = text
	if idx := strings.IndexAny(text, " \n"); idx > 0 {
		cmd = text[:idx]
		args = strings.TrimSpace(text[idx+1:])
	}
	if at := strings.Index(cmd, "@"); at > 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd), args
}

// splitEventArgs parses "Title | when | optional description".
func splitEventArgs(args string) (title, when, description string) {
	parts := strings.Split(args, "|")
	if len(parts) < 2 {
		return "", "", ""
	}
	title = strings.TrimSpace(parts[0])
	when = strings.TrimSpace(parts[1])
	if len(parts) > 2 {
		description = strings.TrimSpace(strings.Join(parts[2:], "|"))
	}
	return title, when, description
}
