package templates

import (
	"bytes"
	"fmt"
	htmpl "html/template"
)

// The product sends two transactional emails: a welcome note after
// registration and a password reset link. Both are rendered from inline
// templates so the worker binary stays self-contained.

var welcomeHTML = htmpl.Must(htmpl.New("welcome").Parse(`
<div style="font-family:sans-serif;max-width:560px;margin:0 auto">
  <h2>Welcome to Tranquilify, {{.Name}} 🌿</h2>
  <p>Your account is ready. Log a mood, build a habit streak, or just sit in
  one of the calm rooms for a while.</p>
  <p style="color:#6b7280">If you did not create this account, you can ignore
  this email.</p>
</div>`))

var passwordResetHTML = htmpl.Must(htmpl.New("password_reset").Parse(`
<div style="font-family:sans-serif;max-width:560px;margin:0 auto">
  <h2>Reset your password</h2>
  <p>Hi {{.Name}}, we received a request to reset your Tranquilify password.</p>
  <p><a href="{{.ResetURL}}">Choose a new password</a></p>
  <p style="color:#6b7280">The link expires in {{.ExpiresIn}}. If you did not
  request this, no action is needed.</p>
</div>`))

// Render returns subject and HTML body for a known template name.
func Render(name string, data map[string]any) (subject, html string, err error) {
	var tpl *htmpl.Template
	switch name {
	case "welcome":
		subject = "Welcome to Tranquilify"
		tpl = welcomeHTML
	case "password_reset":
		subject = "Reset your Tranquilify password"
		tpl = passwordResetHTML
	default:
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
