package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	goavro "github.com/linkedin/goavro/v2"
)

const avroNamespace = "ecommerce.dataset"

type avroCodec struct{}

type avroField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type avroSchema struct {
	Type      string      `json:"type"`
	Name      string      `json:"name"`
	Namespace string      `json:"namespace"`
	Fields    []avroField `json:"fields"`
}

// every column is carried as a string so both formats feed the same
// text-to-typed transform on load
func tableSchema(t *Table) (string, error) {
	s := avroSchema{Type: "record", Name: t.Name, Namespace: avroNamespace}
	for _, c := range t.Columns {
		s.Fields = append(s.Fields, avroField{Name: c, Type: "string"})
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (avroCodec) write(path string, t *Table) (err error) {
	schema, err := tableSchema(t)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w, err := goavro.NewOCFWriter(goavro.OCFConfig{
		W:               f,
		Schema:          schema,
		CompressionName: goavro.CompressionDeflateLabel,
	})
	if err != nil {
		return err
	}

	records := make([]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]any, len(t.Columns))
		for i, c := range t.Columns {
			rec[c] = row[i]
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil
	}
	return w.Append(records)
}

func (avroCodec) read(path, name string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := goavro.NewOCFReader(f)
	if err != nil {
		return nil, err
	}

	var schema avroSchema
	if err := json.Unmarshal([]byte(r.Codec().Schema()), &schema); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	t := &Table{Name: name}
	for _, fld := range schema.Fields {
		t.Columns = append(t.Columns, fld.Name)
	}

	for r.Scan() {
		datum, err := r.Read()
		if err != nil {
			return nil, err
		}
		rec, ok := datum.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected datum %T", datum)
		}
		row := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			row[i] = fmt.Sprint(rec[c])
		}
		t.Rows = append(t.Rows, row)
	}
	return t, r.Err()
}
