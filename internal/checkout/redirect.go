package checkout

import (
	"html/template"
	"io"
	"net/url"
)

// The processor expects a browser POST carrying the server-issued token, so
// the storefront serves a self-submitting form: a synchronous full-page
// navigation away from the application.
var redirectFormTmpl = template.Must(template.New("payment-redirect").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Redirigiendo al pago...</title></head>
<body>
<p>Redirigiendo al portal de pago...</p>
<form id="payment-redirect" method="POST" action="{{.RedirectURL}}">
<input type="hidden" name="token" value="{{.Token}}">
</form>
<script>document.getElementById("payment-redirect").submit();</script>
</body>
</html>
`))

type redirectForm struct {
	RedirectURL string
	Token       string
}

// renderRedirectForm writes the auto-POST page. The URL must be absolute
// http(s); anything else is refused before it reaches the template.
func renderRedirectForm(w io.Writer, redirectURL, token string) error {
	u, err := url.Parse(redirectURL)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrUnexpectedResponse
	}
	return redirectFormTmpl.Execute(w, redirectForm{RedirectURL: redirectURL, Token: token})
}
