package document

// Document is one generated legal document together with its provenance:
// the type it was generated for, the language it was requested in, and the
// question/answer pairs it was synthesized from.
//
// ID is assigned at creation and never reassigned. DocType and Language are
// immutable after creation; Title, DocumentText and Answers may be replaced
// through the service's edit operation.
type Document struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	DocumentText string            `json:"document_text"`
	DocType      string            `json:"doc_type"`
	Language     string            `json:"language"`
	Answers      map[string]string `json:"answers"`
}

// Clone returns a deep copy so stored records are never aliased by callers.
func (d *Document) Clone() *Document {
	cp := *d
	cp.Answers = make(map[string]string, len(d.Answers))
	for q, a := range d.Answers {
		cp.Answers[q] = a
	}
	return &cp
}
