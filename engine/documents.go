package engine

// DefaultDocuments is the fixed evidence list shown on every page.
var DefaultDocuments = []string{
	"Impact-Report-Q1.pdf",
	"External-Audit.xlsx",
	"Photo-Proof.zip",
}

// BuildDocuments renders a fixed list of document names. Clicking an entry
// only acknowledges it; nothing is fetched or downloaded.
func BuildDocuments(names []string) DocumentsWidget {
	docs := make([]Document, 0, len(names))
	for _, name := range names {
		docs = append(docs, Document{
			Name:   name,
			Notice: "Pretend download: " + name,
		})
	}
	return DocumentsWidget{Documents: docs}
}
