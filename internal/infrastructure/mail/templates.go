package mail

import (
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// view datos disponibles en todas las plantillas.
type view struct {
	App       string
	Name      string
	Email     string
	Link      string
	InvitedBy string
	Password  string
}

type template struct {
	subject string
	html    *htmltemplate.Template
	text    *texttemplate.Template
}

func newTemplate(name, subject, html, text string) template {
	return template{
		subject: subject,
		html:    htmltemplate.Must(htmltemplate.New(name).Parse(html)),
		text:    texttemplate.Must(texttemplate.New(name).Parse(text)),
	}
}

func (t template) render(v view) (subject, html, text string, err error) {
	var hb, tb strings.Builder
	if err = t.html.Execute(&hb, v); err != nil {
		return "", "", "", err
	}
	if err = t.text.Execute(&tb, v); err != nil {
		return "", "", "", err
	}
	subject = strings.ReplaceAll(t.subject, "{{app}}", v.App)
	return subject, hb.String(), tb.String(), nil
}

const layoutOpen = `<!DOCTYPE html><html><body style="font-family:Arial,sans-serif;color:#222">`
const layoutClose = `<p style="color:#888;font-size:12px">{{.App}}</p></body></html>`

var (
	invitationTemplate = newTemplate("invitation", "Invitación a {{app}}",
		layoutOpen+`<h2>Hola {{.Name}}</h2>
<p>{{.InvitedBy}} te ha invitado a {{.App}}.</p>
<p>Usuario: <b>{{.Email}}</b><br>Contraseña temporal: <b>{{.Password}}</b></p>
<p><a href="{{.Link}}">Iniciar sesión</a></p>
<p>Cambia la contraseña después de tu primer ingreso.</p>`+layoutClose,
		`Hola {{.Name}},

{{.InvitedBy}} te ha invitado a {{.App}}.
Usuario: {{.Email}}
Contraseña temporal: {{.Password}}
Iniciar sesión: {{.Link}}

Cambia la contraseña después de tu primer ingreso.
`)

	welcomeTemplate = newTemplate("welcome", "Bienvenido a {{app}}",
		layoutOpen+`<h2>Hola {{.Name}}</h2>
<p>Tu cuenta en {{.App}} fue creada con el correo <b>{{.Email}}</b>.</p>`+layoutClose,
		`Hola {{.Name}},

Tu cuenta en {{.App}} fue creada con el correo {{.Email}}.
`)

	verificationTemplate = newTemplate("verification", "Verifica tu cuenta en {{app}}",
		layoutOpen+`<h2>Hola {{.Name}}</h2>
<p>Confirma tu correo con el siguiente enlace:</p>
<p><a href="{{.Link}}">Verificar cuenta</a></p>`+layoutClose,
		`Hola {{.Name}},

Confirma tu correo con el siguiente enlace:
{{.Link}}
`)

	resetTemplate = newTemplate("reset", "Restablece tu contraseña de {{app}}",
		layoutOpen+`<h2>Hola {{.Name}}</h2>
<p>Recibimos una solicitud para restablecer tu contraseña.</p>
<p><a href="{{.Link}}">Restablecer contraseña</a></p>
<p>Si no la solicitaste, ignora este correo.</p>`+layoutClose,
		`Hola {{.Name}},

Recibimos una solicitud para restablecer tu contraseña.
{{.Link}}

Si no la solicitaste, ignora este correo.
`)
)
