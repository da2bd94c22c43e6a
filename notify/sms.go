// Package notify is the SMS collaborator. Delivery is best-effort and
// fire-and-forget relative to the donation store: a failed send is logged and
// reported, never blocks or reverses a store mutation.
package notify

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// SMSSender delivers a text message to a phone number.
type SMSSender interface {
	Send(toPhone, message string) error
}

// TwilioSender posts to the Twilio Messages REST endpoint. Credentials come
// from the environment, never constants.
type TwilioSender struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	BaseURL    string
	Client     *http.Client
}

// NewTwilioSenderFromEnv returns a configured sender, or nil when the Twilio
// variables are absent (SMS silently disabled).
func NewTwilioSenderFromEnv() *TwilioSender {
	sid := os.Getenv("TWILIO_ACCOUNT_SID")
	token := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	if sid == "" || token == "" || from == "" {
		log.Println("Twilio credentials not set — SMS notifications disabled")
		return nil
	}
	return &TwilioSender{
		AccountSID: sid,
		AuthToken:  token,
		FromNumber: from,
		BaseURL:    twilioAPIBase,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *TwilioSender) Send(toPhone, message string) error {
	form := url.Values{}
	form.Set("To", toPhone)
	form.Set("From", s.FromNumber)
	form.Set("Body", message)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.BaseURL, s.AccountSID)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(s.AccountSID, s.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return errors.New("twilio rejected message: " + resp.Status)
	}
	return nil
}

// Default is the process-wide sender; nil means notifications are disabled.
var Default SMSSender

// SendAsync fires a notification without making the caller wait. Errors are
// logged only.
func SendAsync(toPhone, message string) {
	if Default == nil {
		return
	}
	go func() {
		if err := Default.Send(toPhone, message); err != nil {
			log.Printf("SMS to %s failed: %v", toPhone, err)
		}
	}()
}
