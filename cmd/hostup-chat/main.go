// Command hostup-chat previews the site chat assistant in a terminal, using
// the same responder, quick options and typing delay as the web widget.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hostup.co.in/hostup-web/internal/chat"
	"hostup.co.in/hostup-web/internal/config"
)

func main() {
	var latency time.Duration
	flag.DurationVar(&latency, "latency", -1, "simulated typing delay (default $HOSTUP_CHAT_LATENCY)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if latency < 0 {
		latency = cfg.Chat.Latency
	}

	secondary := ""
	if len(cfg.Business.SupportNumbers) > 1 {
		secondary = cfg.Business.SupportNumbers[1]
	}
	responder := chat.NewResponder(chat.Contacts{
		WhatsApp:  cfg.Business.WhatsAppNumber,
		Secondary: secondary,
		Email:     cfg.Business.ContactEmail,
	}, chat.WithLatency(latency))

	p := tea.NewProgram(newModel(ctx, cfg.Business.Name, responder), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "hostup-chat: %v\n", err)
		os.Exit(1)
	}
}
