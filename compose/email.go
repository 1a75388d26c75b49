package compose

import (
	"fmt"
	"strings"
)

// EmailParams describes one per-recipient email document. Body carries the
// already-inlined edition plus footer; Intro is an optional block rendered
// between the greeting and the body.
type EmailParams struct {
	Name       string // recipient name; blank falls back to a generic greeting
	Intro      string // sanitized intro fragment, may be empty
	Body       string // sanitized edition + footer fragment
	BrowserURL string // view-in-browser link; empty disables the button
}

// Email renders a complete standalone email HTML document. The shell uses
// only inline styles and table layout for the CTA so it survives email
// client CSS stripping.
func Email(p EmailParams) string {
	greeting := fmt.Sprintf(`<p style="margin:0 0 12px">Hi %s,</p>`, escape(EnsureName(p.Name)))

	var button string
	if p.BrowserURL != "" {
		button = fmt.Sprintf(`<table role="presentation" cellpadding="0" cellspacing="0" border="0" style="margin:16px 0">
         <tr>
           <td align="center" bgcolor="#0b66ff" style="border-radius:8px">
             <a href="%s" target="_blank" rel="noopener"
                style="display:inline-block;padding:12px 16px;font:bold 14px/1.2 -apple-system,BlinkMacSystemFont,Segoe UI,Roboto,Arial;color:#ffffff;text-decoration:none;border-radius:8px">
               Trouble reading the email? Read on the web!
             </a>
           </td>
         </tr>
       </table>`, p.BrowserURL)
	}

	var parts []string
	if button != "" {
		parts = append(parts, button)
	}
	parts = append(parts, greeting)
	if strings.TrimSpace(p.Intro) != "" {
		parts = append(parts, p.Intro)
	}
	parts = append(parts, p.Body)

	return fmt.Sprintf(`<!doctype html>
<html>
<body style="margin:0;padding:0;background:#ffffff;color:#111111;font:16px/1.5 -apple-system,BlinkMacSystemFont,Segoe UI,Roboto,Helvetica,Arial">
  <div style="max-width:640px;margin:0 auto;padding:20px">
    <div style="margin-top:18px">
      %s
    </div>
  </div>
</body>
</html>`, strings.Join(parts, "\n      "))
}

// EnsureName trims a recipient name and substitutes a generic fallback for
// blank values so greetings never render empty.
func EnsureName(name string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return "there"
}
