package view

// FormInput reads the add-book form fields at submit time.
type FormInput interface {
	Title() string
	Author() string
	Pages() string
	Read() bool
	Reset()
}

// ReadLabel is the text shown next to the form's read checkbox.
func ReadLabel(checked bool) string {
	if checked {
		return "I have read this book already"
	}
	return "I have not yet read this book"
}
