package mail

import (
	"bytes"
	"html/template"
	"time"
)

var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); border-radius: 10px; padding: 30px; text-align: center;">
    <div style="color: white; font-size: 24px; font-weight: bold; margin-bottom: 10px;">Partner App Verification</div>
    <div style="background: white; border-radius: 8px; padding: 30px; margin-top: 20px;">
      <h2>Hello {{.Name}}!</h2>
      <p>Thank you for registering with Partner App. Please use the OTP code below to verify your email address:</p>
      <div style="font-size: 32px; font-weight: bold; color: #667eea; letter-spacing: 8px; margin: 20px 0; padding: 15px; background: #f7f7f7; border-radius: 8px; display: inline-block;">{{.Code}}</div>
      <p>This OTP is valid for <strong>10 minutes</strong>.</p>
      <p style="color: #e74c3c; font-size: 14px; margin-top: 20px;">If you didn't request this code, please ignore this email.</p>
    </div>
    <div style="color: white; font-size: 12px; margin-top: 20px;">
      <p>&copy; {{.Year}} Partner App. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); border-radius: 10px; padding: 30px; text-align: center;">
    <div style="color: white; font-size: 24px; font-weight: bold; margin-bottom: 10px;">Welcome to Partner App!</div>
    <div style="background: white; border-radius: 8px; padding: 30px; margin-top: 20px;">
      <h2>Hello {{.Name}}!</h2>
      <p>Your account has been successfully verified!</p>
      <p>You can now enjoy all the features of Partner App.</p>
      <p>If you have any questions, feel free to reach out to our support team.</p>
    </div>
  </div>
</body>
</html>`))

func renderOTPBody(name, code string) (string, error) {
	var buf bytes.Buffer
	err := otpTemplate.Execute(&buf, struct {
		Name string
		Code string
		Year int
	}{name, code, time.Now().Year()})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderWelcomeBody(name string) (string, error) {
	var buf bytes.Buffer
	err := welcomeTemplate.Execute(&buf, struct{ Name string }{name})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
