package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"gopkg.in/gomail.v2"
)

// mailSender delivers composed messages. *gomail.Dialer satisfies it.
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailNotifier implements Notifier via SMTP. The destination channel is
// the recipient address.
type EmailNotifier struct {
	from   string
	sender mailSender
}

// EmailOption configures an EmailNotifier.
type EmailOption func(*EmailNotifier)

// WithMailSender replaces the SMTP dialer.
func WithMailSender(s mailSender) EmailOption {
	return func(n *EmailNotifier) {
		n.sender = s
	}
}

// NewEmailNotifier creates an EmailNotifier sending through host:port.
func NewEmailNotifier(host string, port int, username, password, from string, opts ...EmailOption) *EmailNotifier {
	n := &EmailNotifier{
		from:   from,
		sender: gomail.NewDialer(host, port, username, password),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Send mails p as an HTML message.
func (n *EmailNotifier) Send(ctx context.Context, dest Destination, p *Payload) error {
	to := strings.TrimSpace(dest.Channel)
	if to == "" {
		return fmt.Errorf("empty email recipient")
	}

	body, err := renderEmail(p)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", emailSubject(p))
	m.SetBody("text/html", body)
	m.AddAlternative("text/plain", p.Text())

	return runWithContext(ctx, func() error {
		if err := n.sender.DialAndSend(m); err != nil {
			return fmt.Errorf("send email: %w", err)
		}
		return nil
	})
}

func emailSubject(p *Payload) string {
	status, _, _ := strings.Cut(p.Footer, " | ")
	if status == "" {
		return p.Title
	}
	return fmt.Sprintf("%s: %s", status, p.Title)
}

var markdownLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)

// linkify escapes s and turns markdown links into anchors.
func linkify(s string) template.HTML {
	var b strings.Builder
	last := 0
	for _, m := range markdownLink.FindAllStringSubmatchIndex(s, -1) {
		b.WriteString(template.HTMLEscapeString(s[last:m[0]]))
		fmt.Fprintf(&b, `<a href="%s">%s</a>`,
			template.HTMLEscapeString(s[m[4]:m[5]]),
			template.HTMLEscapeString(s[m[2]:m[3]]))
		last = m[1]
	}
	b.WriteString(template.HTMLEscapeString(s[last:]))
	return template.HTML(b.String()) //nolint:gosec // every fragment is escaped above
}

var emailTemplate = template.Must(template.New("email").Funcs(template.FuncMap{
	"linkify": linkify,
	"hex":     func(c int) string { return fmt.Sprintf("#%06X", c) },
}).Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <div style="max-width: 560px; margin: 0 auto; padding: 16px; border-left: 4px solid {{hex .Color}};">
    {{if .Author.Name}}<p style="color: #666;"><a href="{{.Author.URL}}">{{.Author.Name}}</a></p>{{end}}
    <h2><a href="{{.URL}}">{{.Title}}</a></h2>
    {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}" style="max-width: 100%;">{{end}}
    <table>
      {{range .Fields}}<tr><th align="left" style="padding-right: 12px;">{{.Name}}</th><td>{{linkify .Value}}</td></tr>
      {{end}}
    </table>
    {{if .Footer}}<p style="color: #666;">{{.Footer}}</p>{{end}}
  </div>
</body>
</html>
`))

func renderEmail(p *Payload) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("rendering email: %w", err)
	}
	return buf.String(), nil
}
