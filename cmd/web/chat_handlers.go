package main

import (
	"html"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"hostup.co.in/hostup-web/internal/chat"
	mw "hostup.co.in/hostup-web/internal/middleware"
	"hostup.co.in/hostup-web/internal/observability"
)

const maxChatMessageRunes = 500

// chatTextPolicy strips markup from visitor messages before they are echoed.
var chatTextPolicy = bluemonday.StrictPolicy()

// ChatExchangeView is the visitor bubble plus the placeholder that loads the reply.
type ChatExchangeView struct {
	Text     string
	ReplyURL string
}

// ChatReplyView is one assistant bubble.
type ChatReplyView struct {
	Topic string
	HTML  template.HTML
}

// ChatMessageHandler echoes a typed message and schedules the keyword reply.
func (a *app) ChatMessageHandler(w http.ResponseWriter, r *http.Request) {
	a.chatExchange(w, r, r.FormValue("message"), false)
}

// ChatQuickHandler echoes a quick option and schedules its exact reply.
func (a *app) ChatQuickHandler(w http.ResponseWriter, r *http.Request) {
	a.chatExchange(w, r, r.FormValue("label"), true)
}

func (a *app) chatExchange(w http.ResponseWriter, r *http.Request, raw string, quick bool) {
	text := cleanChatText(raw)
	if text == "" {
		// nothing to send; htmx leaves the log untouched
		w.WriteHeader(http.StatusNoContent)
		return
	}
	q := url.Values{"q": {text}}
	if quick {
		q.Set("mode", string(chat.PathQuick))
	}
	renderFragment(w, r, http.StatusOK, "chat_exchange", ChatExchangeView{
		Text:     text,
		ReplyURL: "/chat/reply?" + q.Encode(),
	})
}

// ChatReplyHandler waits out the simulated latency and renders the reply.
// If the visitor goes away first nothing is written.
func (a *app) ChatReplyHandler(w http.ResponseWriter, r *http.Request) {
	text := cleanChatText(r.URL.Query().Get("q"))
	if text == "" {
		mw.WriteError(w, r, http.StatusBadRequest, "missing message")
		return
	}
	msg := chat.Message{Text: text, Quick: r.URL.Query().Get("mode") == string(chat.PathQuick)}
	reply, err := a.chat.Answer(r.Context(), msg)
	if err != nil {
		observability.FromContext(r.Context()).Debug("chat reply dropped", zap.Error(err))
		return
	}
	a.metrics.ObserveChatReply(string(reply.Path), string(reply.Topic))
	renderFragment(w, r, http.StatusOK, "chat_reply", ChatReplyView{
		Topic: string(reply.Topic),
		HTML:  reply.HTML,
	})
}

// cleanChatText strips markup and bounds the message length.
func cleanChatText(raw string) string {
	text := strings.TrimSpace(html.UnescapeString(chatTextPolicy.Sanitize(raw)))
	if utf8.RuneCountInString(text) > maxChatMessageRunes {
		text = string([]rune(text)[:maxChatMessageRunes])
	}
	return text
}
