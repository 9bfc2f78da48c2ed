package gmail

// Message is a plain-text email.
type Message struct {
	To      string
	From    string
	Subject string
	Body    string
}
