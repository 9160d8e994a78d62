package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@sourcing.premierevision.com"
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
}

// SupplierInviteEmailData holds data for the supplier dashboard invite email
type SupplierInviteEmailData struct {
	SupplierName  string
	SupplierEmail string
	DashboardLink string
	TempPassword  string
}

// SendSupplierInviteEmail invites a newly seeded supplier to the dashboard
func (r *ResendClient) SendSupplierInviteEmail(data SupplierInviteEmailData) error {
	htmlBody := r.buildSupplierInviteHTML(data)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.SupplierEmail,
		"subject": "Your exhibitor dashboard is ready",
		"html":    htmlBody,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] supplier invite email sent to %s", data.SupplierEmail)
	return nil
}

func (r *ResendClient) buildSupplierInviteHTML(data SupplierInviteEmailData) string {
	return fmt.Sprintf(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Your exhibitor dashboard</title>
  </head>
  <body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #ffffff; color: #1a1a1a; line-height: 1.6;">
    <div style="background-color: #ffffff; padding: 60px 20px;">
      <div style="max-width: 600px; margin: 0 auto; background: #ffffff;">
        <div style="padding: 0 0 60px 0; text-align: left;">
          <div style="font-size: 24px; font-weight: 700; color: #1a1a1a; letter-spacing: -0.3px;">Sourcing Directory</div>
        </div>

        <div style="padding: 0;">
          <p style="font-size: 32px; font-weight: 700; color: #000000; margin-bottom: 24px; line-height: 1.2; margin-top: 0;">Manage your listing</p>

          <p style="font-size: 17px; color: #626262; line-height: 1.8; margin-bottom: 40px; margin-top: 0;">
            <span style="color: #000000; font-weight: 600;">%s</span>, your exhibitor dashboard account is ready. Sign in to review your company details and keep your product list up to date before the show.
          </p>

          <div style="background: #f5f5f5; padding: 24px; margin: 40px 0;">
            <span style="font-size: 12px; color: #626262; text-transform: uppercase; letter-spacing: 0.8px; margin-bottom: 12px; display: block; font-weight: 600;">Temporary password</span>
            <span style="font-size: 16px; color: #1a1a1a; font-family: monospace;">%s</span>
          </div>

          <div style="text-align: left; margin: 50px 0 60px 0;">
            <a href="%s" style="display: inline-block; padding: 16px 32px; background: #000000; color: #ffffff; text-decoration: none; border-radius: 6px; font-weight: 600; font-size: 16px;">Open Dashboard</a>
          </div>

          <p style="font-size: 13px; color: #626262; line-height: 1.7; margin-top: 40px;">
            You can also sign in with Google using this email address. If you didn't expect this email, feel free to disregard it.
          </p>
        </div>
      </div>
    </div>
  </body>
</html>`, data.SupplierName, data.TempPassword, data.DashboardLink)
}
