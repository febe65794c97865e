package codec

import (
	"encoding/xml"
	"fmt"

	"github.com/kchaow/filemanager"
)

// xmlIndent is the indentation used for written XML documents
const xmlIndent = "    "

// xmlPerson roots a record at the Person element
type xmlPerson struct {
	XMLName xml.Name `xml:"Person"`
	filemanager.PersonRecord
}

// WriteXML writes rec as an indented Person document, replacing the file.
// Previous content is not merged.
func WriteXML(path string, rec filemanager.PersonRecord) error {
	if err := CheckExt(path, XMLExt); err != nil {
		return err
	}
	body, err := xml.MarshalIndent(xmlPerson{PersonRecord: rec}, "", xmlIndent)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	data := make([]byte, 0, len(xml.Header)+len(body)+1)
	data = append(data, xml.Header...)
	data = append(data, body...)
	data = append(data, '\n')
	return replaceFile(path, data)
}

// ReadXML parses the Person document at path. A malformed document or a root
// element other than Person fails with ErrInvalidFormat.
func ReadXML(path string) (filemanager.PersonRecord, error) {
	if err := CheckExt(path, XMLExt); err != nil {
		return filemanager.PersonRecord{}, err
	}
	data, err := readFile(path)
	if err != nil {
		return filemanager.PersonRecord{}, err
	}
	var doc xmlPerson
	if err := xml.Unmarshal(data, &doc); err != nil {
		return filemanager.PersonRecord{}, fmt.Errorf("decode XML: %w: %w", filemanager.ErrInvalidFormat, err)
	}
	return doc.PersonRecord, nil
}
