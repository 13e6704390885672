package catalog

// seedBooks builds the fixed catalog the shop launches with. ISBNs are the
// short numeric keys the upstream data set uses.
func seedBooks() map[string]*Book {
	entries := []struct {
		isbn   string
		author string
		title  string
	}{
		{"1", "Chinua Achebe", "Things Fall Apart"},
		{"2", "Hans Christian Andersen", "Fairy tales"},
		{"3", "Dante Alighieri", "The Divine Comedy"},
		{"4", "Unknown", "The Epic Of Gilgamesh"},
		{"5", "Unknown", "The Book Of Job"},
		{"6", "Unknown", "One Thousand and One Nights"},
		{"7", "Unknown", "Njál's Saga"},
		{"8", "Jane Austen", "Pride and Prejudice"},
		{"9", "Samuel Beckett", "Molloy, Malone Dies, The Unnamable, the trilogy"},
		{"10", "Giovanni Boccaccio", "The Decameron"},
	}

	books := make(map[string]*Book, len(entries))
	for _, e := range entries {
		books[e.isbn] = &Book{
			Author:  e.author,
			Title:   e.title,
			Reviews: make(map[string]string),
		}
	}
	return books
}
