package domain

// ContactMessage is a visitor submission from the contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// Mail is a fully rendered outbound email.
type Mail struct {
	From     string
	To       []string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
}
