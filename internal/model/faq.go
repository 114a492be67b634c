package model

// FAQEntry is a single question/answer pair inside a grouped FAQ
// response. Identifiers and timestamps are deliberately not exposed.
type FAQEntry struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// FAQGroup is one FAQ category with its entries, as served by /faqs.
// Items is always present, empty for categories without entries.
type FAQGroup struct {
	Name  string     `json:"name"`
	Items []FAQEntry `json:"items"`
}
