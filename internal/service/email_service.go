package service

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/straatfanaat/shop/internal/config"
	"github.com/straatfanaat/shop/internal/constants"
	"github.com/straatfanaat/shop/internal/models"
)

// EmailService sends transactional mail over SMTP.
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates the email service.
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// OrderConfirmationInput carries the order snapshot for the email.
type OrderConfirmationInput struct {
	OrderNumber string
	FirstName   string
	GrandTotal  models.Money
	Currency    string
	Language    string
}

// SendOrderConfirmation sends the post-checkout confirmation.
func (s *EmailService) SendOrderConfirmation(toEmail string, input OrderConfirmationInput) error {
	subject, body := buildOrderConfirmationContent(input)
	return s.sendTextEmail(toEmail, subject, body)
}

// SendNewsletterWelcome sends the signup welcome mail.
func (s *EmailService) SendNewsletterWelcome(toEmail, language string) error {
	subject, body := buildNewsletterWelcomeContent(language)
	return s.sendTextEmail(toEmail, subject, body)
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	if s.cfg == nil || !s.cfg.Enabled {
		return ErrEmailDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	from := buildFromAddress(s.cfg.From, s.cfg.FromName)
	msg := buildEmailMessage(from, toEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if s.cfg.UseTLS {
		return sendMailWithStartTLS(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
	}
	return sendMailPlain(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
}

func buildOrderConfirmationContent(input OrderConfirmationInput) (string, string) {
	amount := input.GrandTotal.String()
	currency := strings.TrimSpace(input.Currency)
	if currency == "" {
		currency = constants.SiteCurrency
	}
	switch normalizeLanguage(input.Language) {
	case constants.LanguageEN:
		subject := fmt.Sprintf("Order %s confirmed", input.OrderNumber)
		body := fmt.Sprintf("Hey %s,\n\nYour order %s is confirmed. Total: %s %s.\n\nWe ship within 2 business days.\n\nSTRAATFANAAT",
			input.FirstName, input.OrderNumber, amount, currency)
		return subject, body
	case constants.LanguagePL:
		subject := fmt.Sprintf("Zamówienie %s potwierdzone", input.OrderNumber)
		body := fmt.Sprintf("Cześć %s,\n\nTwoje zamówienie %s zostało potwierdzone. Suma: %s %s.\n\nWysyłamy w ciągu 2 dni roboczych.\n\nSTRAATFANAAT",
			input.FirstName, input.OrderNumber, amount, currency)
		return subject, body
	default:
		subject := fmt.Sprintf("Bestelling %s bevestigd", input.OrderNumber)
		body := fmt.Sprintf("Hoi %s,\n\nJe bestelling %s is bevestigd. Totaal: %s %s.\n\nWe verzenden binnen 2 werkdagen.\n\nSTRAATFANAAT",
			input.FirstName, input.OrderNumber, amount, currency)
		return subject, body
	}
}

func buildNewsletterWelcomeContent(language string) (string, string) {
	switch normalizeLanguage(language) {
	case constants.LanguageEN:
		return "Welcome to the street", "You're on the list. Drops, restocks and street heat land in your inbox first.\n\nSTRAATFANAAT"
	case constants.LanguagePL:
		return "Witamy na ulicy", "Jesteś na liście. Dropy, restocki i uliczny ogień najpierw trafiają do Ciebie.\n\nSTRAATFANAAT"
	default:
		return "Welkom op de straat", "Je staat op de lijst. Drops, restocks en street heat landen eerst bij jou.\n\nSTRAATFANAAT"
	}
}

func buildFromAddress(from, name string) string {
	if strings.TrimSpace(name) == "" {
		return from
	}
	encoded := mime.QEncoding.Encode("UTF-8", name)
	return (&mail.Address{Name: encoded, Address: from}).String()
}

func buildEmailMessage(from, to, subject, body string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", from))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject)))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
}

func sendMailWithStartTLS(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return err
	}

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendMailPlain(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
