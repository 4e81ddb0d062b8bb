package service

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
)

const storeDisplayName = "Karachi Sofas"

// EmailService SMTP 邮件发送服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// StoreInbox 店铺接收通知的邮箱
func (s *EmailService) StoreInbox() string {
	if s == nil || s.cfg == nil {
		return ""
	}
	return strings.TrimSpace(s.cfg.StoreInbox)
}

// OrderEmailLine 邮件中的订单行
type OrderEmailLine struct {
	OrderID     uint
	ProductName string
	Quantity    int
	TotalPrice  models.Money
}

// OrderPlacedEmailInput 下单成功邮件输入
type OrderPlacedEmailInput struct {
	CustomerName     string
	Phone            string
	Address          string
	Area             string
	Block            string
	Landmark         string
	PaymentMethod    string
	Currency         string
	Lines            []OrderEmailLine
	Subtotal         string
	DeliveryFee      string
	DeliveryResolved bool
	GrandTotal       string
	BankDetails      *config.BankDetailsConfig
}

// OrderStatusEmailInput 订单状态邮件输入
type OrderStatusEmailInput struct {
	OrderID      uint
	CustomerName string
	ProductName  string
	Quantity     int
	Status       string
	TotalPrice   models.Money
	Currency     string
}

// AdminRequestEmailInput 管理员申请邮件输入
type AdminRequestEmailInput struct {
	AdminID uint
	Name    string
	Email   string
	Phone   string
}

// SendOrderPlacedEmail 发送下单成功通知
func (s *EmailService) SendOrderPlacedEmail(toEmail string, input OrderPlacedEmailInput) error {
	subject, body := buildOrderPlacedContent(input)
	return s.sendTextEmail(toEmail, subject, body)
}

// SendOrderStatusEmail 发送订单状态通知
func (s *EmailService) SendOrderStatusEmail(toEmail string, input OrderStatusEmailInput) error {
	subject, body := buildOrderStatusContent(input)
	return s.sendTextEmail(toEmail, subject, body)
}

// SendAdminRequestEmail 通知店铺有新的管理员申请
func (s *EmailService) SendAdminRequestEmail(toEmail string, input AdminRequestEmailInput) error {
	subject, body := buildAdminRequestContent(input)
	return s.sendTextEmail(toEmail, subject, body)
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	if s.cfg == nil || !s.cfg.Enabled {
		return ErrEmailServiceDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	msg := buildEmailMessage(buildFromAddress(s.cfg.From, s.cfg.FromName), toEmail, subject, body)
	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	client, err := s.dial()
	if err != nil {
		return normalizeEmailSendError(err)
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return normalizeEmailSendError(err)
			}
		}
	}
	return normalizeEmailSendError(sendSMTPData(client, s.cfg.From, []string{toEmail}, []byte(msg)))
}

// dial 按配置建立 SMTP 连接：SSL 直连、STARTTLS 或明文
func (s *EmailService) dial() (*smtp.Client, error) {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	tlsConfig := &tls.Config{ServerName: s.cfg.Host}
	if s.cfg.UseSSL {
		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return nil, err
		}
		client, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		return client, nil
	}

	client, err := smtp.Dial(addr)
	if err != nil {
		return nil, err
	}
	if s.cfg.UseTLS {
		if err := client.StartTLS(tlsConfig); err != nil {
			_ = client.Close()
			return nil, err
		}
	}
	return client, nil
}

func buildOrderPlacedContent(input OrderPlacedEmailInput) (string, string) {
	subject := fmt.Sprintf("%s - Order received (%d item(s))", storeDisplayName, len(input.Lines))

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", strings.TrimSpace(input.CustomerName))
	b.WriteString("Thank you! Your order has been placed. Our team will contact you for confirmation.\n\n")
	for _, line := range input.Lines {
		fmt.Fprintf(&b, "#%d  %s x %d  %s %s\n", line.OrderID, line.ProductName, line.Quantity, input.Currency, line.TotalPrice.String())
	}
	fmt.Fprintf(&b, "\nSubtotal: %s %s\n", input.Currency, input.Subtotal)
	if input.DeliveryResolved {
		fmt.Fprintf(&b, "Delivery: %s %s\n", input.Currency, input.DeliveryFee)
	} else {
		b.WriteString("Delivery: to be confirmed\n")
	}
	fmt.Fprintf(&b, "Total: %s %s\n", input.Currency, input.GrandTotal)
	fmt.Fprintf(&b, "Payment: %s\n", input.PaymentMethod)
	fmt.Fprintf(&b, "\nDeliver to: %s, %s, %s (near %s)\nPhone: %s\n",
		input.Address, input.Block, input.Area, input.Landmark, input.Phone)

	if input.PaymentMethod == constants.PaymentMethodBankTransfer && input.BankDetails != nil {
		b.WriteString("\nBank transfer details:\n")
		fmt.Fprintf(&b, "Bank: %s\nAccount title: %s\nAccount number: %s\nIBAN: %s\n",
			input.BankDetails.BankName,
			input.BankDetails.AccountTitle,
			input.BankDetails.AccountNumber,
			input.BankDetails.IBAN,
		)
	}
	return subject, b.String()
}

func buildOrderStatusContent(input OrderStatusEmailInput) (string, string) {
	label := orderStatusLabel(input.Status)
	subject := fmt.Sprintf("%s - Order #%d %s", storeDisplayName, input.OrderID, label)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", strings.TrimSpace(input.CustomerName))
	switch input.Status {
	case constants.OrderStatusCompleted:
		b.WriteString("Your order has been completed. Thank you for shopping with us.\n")
	case constants.OrderStatusRejected:
		b.WriteString("Unfortunately your order could not be accepted. Please contact us for details.\n")
	default:
		fmt.Fprintf(&b, "Your order status is now: %s.\n", label)
	}
	fmt.Fprintf(&b, "\nOrder #%d: %s x %d, %s %s\n", input.OrderID, input.ProductName, input.Quantity, input.Currency, input.TotalPrice.String())
	return subject, b.String()
}

func buildAdminRequestContent(input AdminRequestEmailInput) (string, string) {
	subject := fmt.Sprintf("%s - New admin request from %s", storeDisplayName, input.Name)
	body := fmt.Sprintf("A new admin account request is waiting for review.\n\nName: %s\nEmail: %s\nPhone: %s\nRequest ID: %d\n",
		input.Name, input.Email, input.Phone, input.AdminID)
	return subject, body
}

func orderStatusLabel(status string) string {
	switch status {
	case constants.OrderStatusPending:
		return "Pending"
	case constants.OrderStatusCompleted:
		return "Completed"
	case constants.OrderStatusRejected:
		return "Rejected"
	default:
		return status
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
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
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

func normalizeEmailSendError(err error) error {
	if err == nil {
		return nil
	}
	if isEmailRecipientRejected(err) {
		return fmt.Errorf("%w: %v", ErrEmailRecipientRejected, err)
	}
	return err
}

var recipientRejectedKeywords = []string{
	"no such recipient",
	"no such user",
	"recipient not found",
	"recipient address rejected",
	"invalid recipient",
	"user unknown",
	"unknown user",
	"unknown mailbox",
	"mailbox unavailable",
}

func isEmailRecipientRejected(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(strings.TrimSpace(err.Error()))
	for _, keyword := range recipientRejectedKeywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	if !strings.Contains(message, "550") {
		return false
	}
	for _, hint := range []string{"recipient", "user", "mailbox", "address", "rcpt"} {
		if strings.Contains(message, hint) {
			return true
		}
	}
	return false
}
