package model

import "fmt"

// Book is the domain model for a catalog entry.
// It has no identity field: a book is addressed by its position in the library.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Pages  Pages  `json:"pages"`
	IsRead bool   `json:"isRead"`
}

// NewBook builds a book from raw field values.
func NewBook(title, author string, pages Pages, isRead bool) *Book {
	return &Book{Title: title, Author: author, Pages: pages, IsRead: isRead}
}

func (b Book) String() string {
	return fmt.Sprintf("%s by %s - %s pages - %t", b.Title, b.Author, b.Pages, b.IsRead)
}
