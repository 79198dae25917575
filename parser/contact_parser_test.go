package parser

import "testing"

func TestParseContactPage(t *testing.T) {
	html := `
<html><body>
<ul><li><a href="https://www.acme.example">acme.example</a></li></ul>
<span class="at-contact-name">Erika Mustermann</span>
<span class="at-contact-position">HR Manager</span>
<a class="at-contact-phone" href="tel:+49301234567">+49 30 1234567</a>
<a class="at-contact-email" href="mailto:jobs@acme.example">E-Mail</a>
</body></html>`

	p := NewParser()
	contact, err := p.ParseContactPage(html)
	if err != nil {
		t.Fatalf("ParseContactPage() error = %v", err)
	}

	if contact.Website != "https://www.acme.example" {
		t.Errorf("Website = %q", contact.Website)
	}
	if contact.Name != "Erika Mustermann" {
		t.Errorf("Name = %q", contact.Name)
	}
	if contact.Position != "HR Manager" {
		t.Errorf("Position = %q", contact.Position)
	}
	if contact.Phone != "+49 30 1234567" {
		t.Errorf("Phone = %q", contact.Phone)
	}
	if contact.Email != "jobs@acme.example" {
		t.Errorf("Email = %q (mailto prefix must be stripped)", contact.Email)
	}
}

func TestParseContactPage_MissingFieldsStayEmpty(t *testing.T) {
	p := NewParser()
	contact, err := p.ParseContactPage(`<html><body><p>nothing here</p></body></html>`)
	if err != nil {
		t.Fatalf("ParseContactPage() error = %v", err)
	}

	if contact.Website != "" || contact.Name != "" || contact.Position != "" ||
		contact.Phone != "" || contact.Email != "" {
		t.Errorf("expected all fields empty, got %+v", contact)
	}
}

func TestContactURL(t *testing.T) {
	got := ContactURL("https://www.stepstone.de/cmp/de/acme-gmbh/jobs.html")
	want := "https://www.stepstone.de/cmp/de/acme-gmbh/kontakte.html#menu"
	if got != want {
		t.Errorf("ContactURL() = %q, want %q", got, want)
	}
}

func TestParseAdditionalInfo_Anchors(t *testing.T) {
	html := `
<div class="at-section-text-additionalInformation">
  <p>Fragen beantwortet Ihnen</p>
  <a href="tel:+49897654321">+49 89 7654321</a>
  <a href="mailto:karriere@acme.example">karriere@acme.example</a>
  <a href="https://www.acme.example/karriere">www.acme.example/karriere</a>
</div>`

	p := NewParser()
	contact := p.ParseAdditionalInfo(html)

	if contact.Phone != "+49 89 7654321" {
		t.Errorf("Phone = %q", contact.Phone)
	}
	if contact.Email != "karriere@acme.example" {
		t.Errorf("Email = %q", contact.Email)
	}
	if contact.Website != "www.acme.example/karriere" {
		t.Errorf("Website = %q", contact.Website)
	}
}

func TestParseAdditionalInfo_RegexFallback(t *testing.T) {
	html := `
<div class="at-section-text-additionalInformation">
  Bewerbungen an bewerbung@acme.example oder https://jobs.acme.example online.
</div>`

	p := NewParser()
	contact := p.ParseAdditionalInfo(html)

	if contact.Email != "bewerbung@acme.example" {
		t.Errorf("Email = %q", contact.Email)
	}
	if contact.Website != "https://jobs.acme.example" {
		t.Errorf("Website = %q", contact.Website)
	}
}

func TestParseAdditionalInfo_NoSection(t *testing.T) {
	p := NewParser()
	contact := p.ParseAdditionalInfo(`<div>Kontakt: someone@acme.example</div>`)

	if contact.Email != "" {
		t.Errorf("Email = %q, want empty when section is absent", contact.Email)
	}
}

func TestContactDetailsMerge(t *testing.T) {
	contact := &ContactDetails{
		Name:  "Erika Mustermann",
		Phone: "+49 30 1234567",
	}
	contact.Merge(&ContactDetails{
		Website: "https://www.acme.example",
		Phone:   "+49 89 7654321",
		Email:   "jobs@acme.example",
	})

	if contact.Phone != "+49 30 1234567" {
		t.Errorf("Phone overwritten: %q", contact.Phone)
	}
	if contact.Website != "https://www.acme.example" {
		t.Errorf("Website not filled: %q", contact.Website)
	}
	if contact.Email != "jobs@acme.example" {
		t.Errorf("Email not filled: %q", contact.Email)
	}
	if contact.Name != "Erika Mustermann" {
		t.Errorf("Name changed: %q", contact.Name)
	}

	// nil fallback is a no-op
	contact.Merge(nil)
	if contact.Name != "Erika Mustermann" {
		t.Errorf("Name changed after nil merge: %q", contact.Name)
	}
}
