package storage

import "fmt"

// DocumentField is an application-level identity field of a registered document.
type DocumentField string

const (
	DocumentFieldIntegraHash  DocumentField = "integraHash"
	DocumentFieldDocumentHash DocumentField = "documentHash"
	DocumentFieldProcessHash  DocumentField = "processHash"
	DocumentFieldMethod       DocumentField = "method"
)

// DocumentFieldStrategy decides where document identity fields are read from.
type DocumentFieldStrategy interface {
	Expression(dialect Dialect, field DocumentField) string
}

// JSONPathStrategy extracts fields from the document_data JSON blob.
type JSONPathStrategy struct {
	Column string
}

func (s JSONPathStrategy) Expression(dialect Dialect, field DocumentField) string {
	column := s.Column
	if column == "" {
		column = "document_data"
	}
	return dialect.JSONExtract(column, string(field))
}

var defaultDocumentColumns = map[DocumentField]string{
	DocumentFieldIntegraHash:  "integra_hash",
	DocumentFieldDocumentHash: "document_hash",
	DocumentFieldProcessHash:  "process_hash",
	DocumentFieldMethod:       "method",
}

// ColumnStrategy reads fields from promoted, indexable columns.
type ColumnStrategy struct {
	Columns map[DocumentField]string
}

func (s ColumnStrategy) Expression(dialect Dialect, field DocumentField) string {
	if column, ok := s.Columns[field]; ok {
		return column
	}
	if column, ok := defaultDocumentColumns[field]; ok {
		return column
	}
	// not promoted, read it from the document blob
	return JSONPathStrategy{}.Expression(dialect, field)
}

// DocumentFieldStrategyFor maps the storage.main.documentFields setting ("json" or "columns").
func DocumentFieldStrategyFor(mode string) (DocumentFieldStrategy, error) {
	switch mode {
	case "", "json":
		return JSONPathStrategy{}, nil
	case "columns":
		return ColumnStrategy{}, nil
	default:
		return nil, fmt.Errorf("unsupported document field mode %q", mode)
	}
}
