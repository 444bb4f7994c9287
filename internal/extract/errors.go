package extract

import "fmt"

// ExtractionFailure means a required node or attribute was not in the document.
// It is always fatal to the extraction of the entity it names.
type ExtractionFailure struct {
	Entity string
	Id     int
	Field  string
}

func (e ExtractionFailure) Error() string {
	return fmt.Sprintf("extract %s %d: %s not found", e.Entity, e.Id, e.Field)
}
