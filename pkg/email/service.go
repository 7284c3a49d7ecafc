package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will be logged to console (development mode)
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendOpportunityCreated notifies the owner that a lead conversion produced
// a new opportunity.
func (s *Service) SendOpportunityCreated(toEmail, toName, opportunityName string, amount float64) error {
	subject := fmt.Sprintf("New opportunity: %s", opportunityName)
	pipelineURL := fmt.Sprintf("%s/opportunities", s.baseURL)

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>A new opportunity is in your pipeline</h2>
			<p>Hi %s,</p>
			<p>The opportunity <strong>%s</strong> was just created from a converted lead.</p>
			<p>Estimated amount: <strong>$%.2f</strong></p>
			<p><a href="%s" style="background-color: #2563EB; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Open Pipeline</a></p>
			<p>Thanks,<br>The SalesDesk Team</p>
		</body>
		</html>
	`, toName, opportunityName, amount, pipelineURL)

	plainText := fmt.Sprintf("Hi %s, the opportunity %q ($%.2f) was created from a converted lead. View it at %s", toName, opportunityName, amount, pipelineURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}
	return s.logEmailToConsole(toEmail, toName, subject, pipelineURL)
}

// SendLeadAssigned notifies a user that a lead was assigned to them.
func (s *Service) SendLeadAssigned(toEmail, toName, leadName string) error {
	subject := fmt.Sprintf("Lead assigned to you: %s", leadName)
	leadsURL := fmt.Sprintf("%s/leads", s.baseURL)

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>You have a new lead</h2>
			<p>Hi %s,</p>
			<p>The lead <strong>%s</strong> has been assigned to you. Reach out while it's warm.</p>
			<p><a href="%s" style="background-color: #2563EB; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">View Leads</a></p>
			<p>Thanks,<br>The SalesDesk Team</p>
		</body>
		</html>
	`, toName, leadName, leadsURL)

	plainText := fmt.Sprintf("Hi %s, the lead %q has been assigned to you. View your leads at %s", toName, leadName, leadsURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}
	return s.logEmailToConsole(toEmail, toName, subject, leadsURL)
}

// SendWelcomeEmail sends a welcome email after registration
func (s *Service) SendWelcomeEmail(toEmail, toName string) error {
	subject := "Welcome to SalesDesk!"
	dashboardURL := fmt.Sprintf("%s/dashboard", s.baseURL)

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to SalesDesk!</h2>
			<p>Hi %s,</p>
			<p>Your account is ready. Here's how to get started:</p>
			<ul>
				<li>Import or create your first leads</li>
				<li>Qualify and convert leads into accounts and opportunities</li>
				<li>Track every call, meeting and note on the record timeline</li>
			</ul>
			<p><a href="%s" style="background-color: #2563EB; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Go to Dashboard</a></p>
			<p>Thanks,<br>The SalesDesk Team</p>
		</body>
		</html>
	`, toName, dashboardURL)

	plainText := fmt.Sprintf("Hi %s, welcome to SalesDesk! Get started at %s", toName, dashboardURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}
	return s.logEmailToConsole(toEmail, toName, subject, dashboardURL)
}

// SendActivityDigest sends a daily summary of activities due today.
func (s *Service) SendActivityDigest(toEmail, toName string, dueCount int) error {
	subject := fmt.Sprintf("You have %d activities due today", dueCount)
	activitiesURL := fmt.Sprintf("%s/activities", s.baseURL)

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your daily activity digest</h2>
			<p>Hi %s,</p>
			<p>You have <strong>%d</strong> activities due today.</p>
			<p><a href="%s" style="background-color: #2563EB; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">View Activities</a></p>
			<p>Thanks,<br>The SalesDesk Team</p>
		</body>
		</html>
	`, toName, dueCount, activitiesURL)

	plainText := fmt.Sprintf("Hi %s, you have %d activities due today. View them at %s", toName, dueCount, activitiesURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}
	return s.logEmailToConsole(toEmail, toName, subject, activitiesURL)
}

// SendExportReady notifies a user that their export file is ready to download.
func (s *Service) SendExportReady(toEmail, toName, entity, downloadURL string) error {
	subject := fmt.Sprintf("Your %s export is ready", entity)

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Export ready</h2>
			<p>Hi %s,</p>
			<p>Your %s export has finished processing and is ready to download.</p>
			<p><a href="%s" style="background-color: #2563EB; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Download Export</a></p>
			<p><strong>The download link expires in 24 hours.</strong></p>
			<p>Thanks,<br>The SalesDesk Team</p>
		</body>
		</html>
	`, toName, entity, downloadURL)

	plainText := fmt.Sprintf("Hi %s, your %s export is ready: %s (expires in 24 hours)", toName, entity, downloadURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}
	return s.logEmailToConsole(toEmail, toName, subject, downloadURL)
}

// sendViaSendGrid sends an email using the SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode)
func (s *Service) logEmailToConsole(toEmail, toName, subject, actionURL string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Action URL: %s", actionURL)
	log.Printf("   ---")
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	log.Printf("   Set SENDGRID_API_KEY environment variable to enable email sending")
	log.Printf("   ---")
	return nil
}
