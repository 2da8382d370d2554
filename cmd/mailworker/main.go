package main

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/arnavshah/shift-scheduler-core/internal/config"
	"github.com/arnavshah/shift-scheduler-core/internal/domain"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("failed to create mail client", "error", err)
		return
	}
	defer client.Close()

	dialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(dialCtx); err != nil {
		logger.Error("failed to connect to mail server", "error", err)
		return
	}

	gob.Register(mail.NewMsg())

	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open channel", "error", err)
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare("email_queue", true, false, false, false, nil)
	if err != nil {
		logger.Error("failed to declare queue", "error", err)
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		logger.Error("failed to consume queue", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				handleMessage(logger, client, cfg.Email.SMTP.Username, msg)
			}
		}
	}()

	logger.Info("waiting for messages (ctrl+c to exit)")
	<-sigChan

	logger.Info("shutting down mail worker")
	cancel()
	wg.Wait()
	logger.Info("mail worker shut down cleanly")
}

var templateByType = map[string]struct {
	file    string
	subject string
}{
	"create_user":        {"./templates/new_account_email.html", "Shift Scheduler - Your New Account"},
	"reset_password":     {"./templates/reset_password_otp_email.html", "Shift Scheduler - Password Reset"},
	"change_email":       {"./templates/change_email_email.html", "Shift Scheduler - Confirm Email Change"},
	"schedule_generated": {"./templates/schedule_generated_email.html", "Shift Scheduler - Schedule Generated"},
}

func handleMessage(logger *slog.Logger, client *mail.Client, fromAddr string, msg amqp.Delivery) {
	logger.Info("received message", "message", string(msg.Body))

	mailMessage := domain.MailMessage{}
	if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
		logger.Error("failed to unmarshal mail message", "error", err)
		_ = msg.Nack(false, false)
		return
	}

	tc, ok := templateByType[mailMessage.Type]
	if !ok {
		logger.Error("unsupported mail type", "type", mailMessage.Type)
		_ = msg.Nack(false, false)
		return
	}

	m := mail.NewMsg()
	if err := m.From(fromAddr); err != nil {
		logger.Error("failed to set sender", "error", err)
		_ = msg.Nack(false, false)
		return
	}
	if err := m.To(mailMessage.To); err != nil {
		logger.Error("failed to set recipient", "error", err)
		_ = msg.Nack(false, false)
		return
	}

	tmpl, err := template.ParseFiles(tc.file)
	if err != nil {
		logger.Error("failed to parse mail template", "error", err)
		_ = msg.Nack(false, false)
		return
	}
	if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
		logger.Error("failed to set mail body", "error", err)
		_ = msg.Nack(false, false)
		return
	}
	m.Subject(tc.subject)

	if err := client.DialAndSend(m); err != nil {
		logger.Error("failed to send mail", "error", err)
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
}
