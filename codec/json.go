package codec

import (
	"bytes"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/kchaow/filemanager"
	"github.com/kchaow/filemanager/internal/util"
)

// jsonAPI behaves like encoding/json but leaves HTML and non-ASCII text unescaped
var jsonAPI = sonic.Config{
	CopyString:     true,
	ValidateString: true,
}.Froze()

// jsonIndent is the indentation used for written JSON arrays
const jsonIndent = "    "

// ReadJSON parses the array of records stored at path. An empty file is an
// empty array; anything else that is not a JSON array of records fails with
// ErrInvalidFormat.
func ReadJSON(path string) ([]filemanager.PersonRecord, error) {
	if err := CheckExt(path, JSONExt); err != nil {
		return nil, err
	}
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return decodeJSON(data)
}

// WriteJSON serializes records as an indented JSON array, replacing the file
func WriteJSON(path string, records []filemanager.PersonRecord) error {
	if err := CheckExt(path, JSONExt); err != nil {
		return err
	}
	if records == nil {
		records = []filemanager.PersonRecord{}
	}
	data, err := jsonAPI.MarshalIndent(records, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return replaceFile(path, append(data, '\n'))
}

// AppendJSON reads the records at path, appends rec and writes the whole
// array back. Nothing is written when the existing content cannot be parsed.
func AppendJSON(path string, rec filemanager.PersonRecord) error {
	records, err := ReadJSON(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(path, append(records, rec)); err != nil {
		return err
	}
	logger := util.GetLogger("Codec.AppendJSON")
	logger.Debug().Str("path", path).Int("records", len(records)+1).Msg("Appended record")
	return nil
}

func decodeJSON(data []byte) ([]filemanager.PersonRecord, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []filemanager.PersonRecord{}, nil
	}
	var records []filemanager.PersonRecord
	if err := jsonAPI.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode JSON array: %w: %w", filemanager.ErrInvalidFormat, err)
	}
	if records == nil {
		records = []filemanager.PersonRecord{}
	}
	return records, nil
}
