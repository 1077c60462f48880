// Package sender превращает сообщения очереди уведомлений в письма SMTP.
package sender

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/eventease/eventease/internal/lib/sl"
	"github.com/eventease/eventease/internal/lib/smtp"
	"github.com/eventease/eventease/internal/models"
)

// SenderService отправляет письма по сообщениям очереди.
type SenderService struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// New создает новый экземпляр SenderService.
func New(log *slog.Logger, transport smtp.TransportInterface) *SenderService {
	return &SenderService{
		transport: transport,
		log:       log,
	}
}

// SendResetEmail отправляет письмо со ссылкой на сброс пароля.
func (s *SenderService) SendResetEmail(body []byte) error {
	var message models.ResetEmail
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{message.Email}
	subject := "Reset Your Password"
	bodyText := fmt.Sprintf("Hello, %s!\n\nFollow this link to reset your password: %s\n\nThe link is valid for 15 minutes. If you did not request a reset, ignore this email.",
		message.Name, message.ResetLink)

	return s.sendEmail(to, subject, bodyText)
}

// SendBookingConfirmation отправляет письмо с подтверждением брони.
func (s *SenderService) SendBookingConfirmation(body []byte) error {
	var message models.BookingConfirmation
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{message.Email}
	subject := fmt.Sprintf("Booking Confirmed for %q", message.EventTitle)
	bodyText := fmt.Sprintf(`Hello, %s!

Your booking for %q is confirmed.

Date: %s
Time: %s
Location: %s
Price: $%.2f

Thank you for booking with EventEase!`,
		message.Name, message.EventTitle,
		message.EventDate.Format("Mon, 02 Jan 2006"), message.EventTime,
		message.Location, message.TicketPrice)

	return s.sendEmail(to, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", slog.String("from", s.transport.GetSMTPUser()), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get Data writer", sl.Err(err))
		return err
	}

	_, err = wc.Write([]byte(msg))
	if err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close Data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", slog.Any("to", to))
	return nil
}
