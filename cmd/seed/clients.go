package main

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/jhoicas/holding-tracker/internal/application/dto"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readClients lee filas name,contact,email. La cabecera es opcional y las filas sin nombre se ignoran.
func readClients(r io.Reader, latin1 bool) ([]dto.CreateClientRequest, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []dto.CreateClientRequest
	for i := 0; ; i++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "name") {
			continue
		}
		in := dto.CreateClientRequest{Name: strings.TrimSpace(rec[0])}
		if in.Name == "" {
			continue
		}
		if len(rec) > 1 {
			in.Contact = strings.TrimSpace(rec[1])
		}
		if len(rec) > 2 {
			in.Email = strings.TrimSpace(rec[2])
		}
		out = append(out, in)
	}
	return out, nil
}
