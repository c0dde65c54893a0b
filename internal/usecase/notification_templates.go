package usecase

import (
	"html/template"
	"strings"

	"webstudio_backend/internal/domain/entities"
)

// Transactional email bodies. html/template escapes every lead-supplied value,
// which matters because these fields come straight from public forms.

var quoteCustomerTmpl = template.Must(template.New("quoteCustomer").Parse(`<html><body>
<h2>Thanks, {{.Name}}!</h2>
<p>We received your quote request for a <strong>{{.ProjectType}}</strong> project and will get back to you within one business day.</p>
{{if .ServiceList}}<p>Services requested: {{.ServiceList}}</p>{{end}}
{{if .Timeline}}<p>Timeline: {{.Timeline}}</p>{{end}}
{{if .Budget}}<p>Budget: {{.Budget}}</p>{{end}}
<p>— The studio team</p>
</body></html>`))

var quoteAdminTmpl = template.Must(template.New("quoteAdmin").Parse(`<html><body>
<h2>New quote request</h2>
<p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt;{{if .Company}} ({{.Company}}){{end}}{{if .Phone}}, {{.Phone}}{{end}}</p>
<p>Project type: {{.ProjectType}}</p>
{{if .ServiceList}}<p>Services: {{.ServiceList}}</p>{{end}}
{{if .Timeline}}<p>Timeline: {{.Timeline}}</p>{{end}}
{{if .Budget}}<p>Budget: {{.Budget}}</p>{{end}}
{{if .Description}}<p>Description:</p><blockquote>{{.Description}}</blockquote>{{end}}
</body></html>`))

var contactCustomerTmpl = template.Must(template.New("contactCustomer").Parse(`<html><body>
<h2>Thanks for reaching out, {{.Name}}!</h2>
<p>We received your message and will reply as soon as we can.</p>
<blockquote>{{.Message}}</blockquote>
<p>— The studio team</p>
</body></html>`))

var contactAdminTmpl = template.Must(template.New("contactAdmin").Parse(`<html><body>
<h2>New contact message</h2>
<p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt;{{if .Phone}}, {{.Phone}}{{end}}</p>
{{if .Subject}}<p>Subject: {{.Subject}}</p>{{end}}
<blockquote>{{.Message}}</blockquote>
</body></html>`))

var callbackCustomerTmpl = template.Must(template.New("callbackCustomer").Parse(`<html><body>
<h2>Callback requested</h2>
<p>Hi {{.Name}}, we'll call you at <strong>{{.Phone}}</strong>{{if .PreferredTime}} around {{.PreferredTime}}{{end}}.</p>
{{if .Message}}<blockquote>{{.Message}}</blockquote>{{end}}
<p>— The studio team</p>
</body></html>`))

type quoteEmailData struct {
	QuoteLead
	ServiceList string
}

func renderQuoteEmails(lead QuoteLead) (customer, admin string, err error) {
	data := quoteEmailData{QuoteLead: lead, ServiceList: serviceList(lead.Services)}

	customer, err = render(quoteCustomerTmpl, data)
	if err != nil {
		return "", "", err
	}
	admin, err = render(quoteAdminTmpl, data)
	if err != nil {
		return "", "", err
	}
	return customer, admin, nil
}

func renderContactEmails(lead ContactLead) (customer, admin string, err error) {
	customer, err = render(contactCustomerTmpl, lead)
	if err != nil {
		return "", "", err
	}
	admin, err = render(contactAdminTmpl, lead)
	if err != nil {
		return "", "", err
	}
	return customer, admin, nil
}

func renderCallbackEmail(lead CallbackLead) (string, error) {
	return render(callbackCustomerTmpl, lead)
}

func render(t *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func serviceList(f entities.ServiceFlags) string {
	var names []string
	for _, s := range []struct {
		on   bool
		name string
	}{
		{f.Design, "design"},
		{f.Development, "development"},
		{f.Ecommerce, "ecommerce"},
		{f.CustomSoftware, "custom software"},
		{f.SEO, "seo"},
		{f.Maintenance, "maintenance"},
	} {
		if s.on {
			names = append(names, s.name)
		}
	}
	return strings.Join(names, ", ")
}
