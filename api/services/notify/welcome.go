package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"strings"
	texttemplate "text/template"
)

// WelcomeSubject is the subject line of the welcome email.
const WelcomeSubject = "Welcome to StartupStack - Your AI Toolkit Awaits!"

//go:embed templates/welcome.html templates/welcome.txt
var templateFS embed.FS

var (
	welcomeHTML = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/welcome.html"))
	welcomeText = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/welcome.txt"))
)

// Tool is one entry of the toolkit list shown in the welcome email.
type Tool struct {
	Icon        string
	Name        string
	Description string
}

// Toolkit lists the tools every plan includes.
var Toolkit = []Tool{
	{"✨", "Business Name Generator", "Create unique, brandable names"},
	{"🎨", "Logo Creator", "Professional designs in seconds"},
	{"📊", "Pitch Deck Generator", "Investor-ready presentations"},
	{"🔍", "Market Research Tool", "Competitive analysis"},
	{"📅", "Content Calendar", "Social media planning"},
	{"📧", "Email Templates", "Marketing sequences"},
	{"📝", "Legal Document Generator", "Contracts & policies"},
	{"💰", "Financial Projections", "Revenue modeling"},
}

type welcomeData struct {
	Name         string
	Tools        []Tool
	DashboardURL string
}

// Welcomer renders the welcome email and hands it to a Sender.
type Welcomer struct {
	sender       Sender
	dashboardURL string
}

func NewWelcomer(sender Sender, dashboardURL string) *Welcomer {
	return &Welcomer{sender: sender, dashboardURL: dashboardURL}
}

// Notify sends exactly one welcome email to email. name is optional.
func (w *Welcomer) Notify(ctx context.Context, email, name string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrMissingRecipient
	}
	msg, err := w.render(email, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("error rendering welcome email: %w", err)
	}
	if err := w.sender.Send(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "welcome email failed", "err", err)
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	slog.InfoContext(ctx, "welcome email sent")
	return nil
}

func (w *Welcomer) render(email, name string) (Message, error) {
	data := welcomeData{Name: name, Tools: Toolkit, DashboardURL: w.dashboardURL}

	var html, text bytes.Buffer
	if err := welcomeHTML.Execute(&html, data); err != nil {
		return Message{}, err
	}
	if err := welcomeText.Execute(&text, data); err != nil {
		return Message{}, err
	}
	return Message{
		ToName:    name,
		ToAddress: email,
		Subject:   WelcomeSubject,
		HTML:      html.String(),
		PlainText: text.String(),
	}, nil
}
